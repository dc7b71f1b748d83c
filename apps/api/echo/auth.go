package echoapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"eduquest/core"
	"eduquest/core/nav"
	"eduquest/core/school"
)

const contextTokenKey = "userToken"

func newJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    contextTokenKey,
		Claims:        new(Claims),
	}
}

// Claims represents the authorization claims transmitted via a JWT.
// StandardClaims.Subject carries the identity id.
type Claims struct {
	jwt.StandardClaims
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	Role          string `json:"role,omitempty"`
	TaughtSubject string `json:"subject,omitempty"`
	Status        string `json:"status,omitempty"`
	IsAdmin       bool   `json:"is_admin,omitempty"`   // -> ADMIN CONSOLE
	IsTeacher     bool   `json:"is_teacher,omitempty"` // -> GRADING PORTAL
}

func (c *Claims) Identity() school.Identity {
	return school.Identity{
		ID:      c.Subject,
		Name:    c.Name,
		Email:   c.Email,
		Role:    c.Role,
		Status:  c.Status,
		Subject: c.TaughtSubject,
	}
}

func GetIdentityClaims(identity school.Identity, conf *core.Config) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   identity.ID,
			Audience:  "EduQuest Academy",
			ExpiresAt: now.Add(conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Name:          identity.Name,
		Email:         identity.Email,
		Role:          identity.Role,
		TaughtSubject: identity.Subject,
		Status:        identity.Status,
		IsAdmin:       identity.Role == school.RoleAdmin,
		IsTeacher:     identity.Role == school.RoleTeacher,
	}
}

// GenerateToken generates a signed JWT token string representing the identity Claims.
func GenerateToken(claims *Claims, conf *core.Config) (string, error) {
	token := jwt.NewWithClaims(jwt.GetSigningMethod(middleware.AlgorithmHS256), claims)
	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

// adminIdentity is the single static administrator; it never lives in the
// mutable teacher collection.
func adminIdentity(admin core.AdminConfig) school.Identity {
	return school.Identity{
		ID:    admin.ID,
		Name:  admin.Name,
		Email: admin.Email,
		Role:  school.RoleAdmin,
	}
}

// authenticate runs the two-branch mock login: an exact-match check for the
// static admin pair, and a store lookup for teachers. Credentials are
// plaintext mock data; this is not security-grade.
func authenticate(data LoginRequest, deps ServerDeps) (school.Identity, error) {
	if data.Role == school.RoleAdmin {
		admin := deps.Conf.Admin
		if data.Email == admin.Email && data.Password == admin.Password {
			return adminIdentity(admin), nil
		}
		return school.Identity{}, errInvalidAdminCreds
	}

	t, err := deps.SchoolSvc.GetTeacherByEmail(data.Email)
	if err != nil {
		if errors.Cause(err) == school.ErrNotFound {
			return school.Identity{}, errUnknownTeacher
		}
		return school.Identity{}, errors.Wrap(err, "finding teacher by email")
	}
	if !t.IsActive() {
		return school.Identity{}, errAccountDisabled
	}
	if t.Password != data.Password {
		return school.Identity{}, errWrongPassword
	}
	return t.Identity(), nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(contextTokenKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

// claimsFromRequest parses an optional bearer token. Requests without a
// valid token resolve to no claims, not an error; callers treat them as a
// public session.
func claimsFromRequest(ctx echo.Context, conf *core.Config) (Claims, bool) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return Claims{}, false
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")

	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(conf.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return Claims{}, false
	}
	return *claims, true
}

type authApi struct {
	deps ServerDeps
}

func registerAuthAPI(g *echo.Group, deps ServerDeps) {
	api := authApi{deps: deps}
	g.POST("/auth/login", api.login)
}

func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	identity, err := authenticate(data, api.deps)
	if err != nil {
		return err
	}

	claims := GetIdentityClaims(identity, api.deps.Conf)
	token, err := GenerateToken(claims, api.deps.Conf)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:    token,
		User:     identity,
		Redirect: nav.HomeRedirect(identity.Role),
	})
}
