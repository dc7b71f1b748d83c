package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eduquest/core/nav"
	"eduquest/core/school"
)

type publicApi struct {
	deps ServerDeps
}

func registerPublicAPI(g *echo.Group, deps ServerDeps) {
	api := publicApi{deps: deps}

	g.GET("/views", api.resolveView)
	g.GET("/home", api.home)
	g.GET("/news", api.news)
	g.GET("/gallery", api.gallery)
}

// resolveView maps a requested path to the view the client should render.
// The token is optional: without one the session is PUBLIC, and protected
// paths resolve to the login view instead of an error.
func (api *publicApi) resolveView(ctx echo.Context) error {
	path := ctx.QueryParam("path")

	role := school.RolePublic
	if claims, ok := claimsFromRequest(ctx, api.deps.Conf); ok {
		role = claims.Role
	}

	return ctx.JSON(http.StatusOK, ViewResponse{
		Path: nav.Normalize(path),
		View: nav.Resolve(role, path),
	})
}

func (api *publicApi) home(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.deps.ContentSvc.Home())
}

func (api *publicApi) news(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.deps.ContentSvc.News())
}

func (api *publicApi) gallery(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.deps.ContentSvc.Gallery())
}
