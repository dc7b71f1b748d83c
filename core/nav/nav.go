// Package nav maps navigation paths to views and gates them by role.
// It is a pure, synchronous mapping: no I/O happens during resolution.
package nav

import (
	"strings"

	"eduquest/core/school"
)

// Navigable paths. Unknown paths alias to PathHome.
const (
	PathHome    = "/"
	PathNews    = "/news"
	PathGallery = "/gallery"
	PathLogin   = "/login"
	PathAdmin   = "/admin"
	PathTeacher = "/teacher"
)

type View string

const (
	ViewHome    View = "home"
	ViewNews    View = "news"
	ViewGallery View = "gallery"
	ViewLogin   View = "login"
	ViewAdmin   View = "admin"
	ViewTeacher View = "teacher"
)

var routes = map[string]View{
	PathHome:    ViewHome,
	PathNews:    ViewNews,
	PathGallery: ViewGallery,
	PathLogin:   ViewLogin,
	PathAdmin:   ViewAdmin,
	PathTeacher: ViewTeacher,
}

var requiredRoles = map[string]string{
	PathAdmin:   school.RoleAdmin,
	PathTeacher: school.RoleTeacher,
}

// Normalize trims the path and aliases anything unrecognized to PathHome.
func Normalize(path string) string {
	path = strings.TrimSpace(path)
	if _, ok := routes[path]; !ok {
		return PathHome
	}
	return path
}

// RequiredRole reports the role a path demands, if any.
func RequiredRole(path string) (string, bool) {
	role, ok := requiredRoles[Normalize(path)]
	return role, ok
}

// Resolve maps a (session role, requested path) pair to the view to render.
// A protected path requested without the matching role resolves to the
// login view, never an error.
func Resolve(role, path string) View {
	path = Normalize(path)
	if required, ok := requiredRoles[path]; ok && role != required {
		return ViewLogin
	}
	return routes[path]
}

// HomeRedirect is the path a freshly authenticated identity lands on.
func HomeRedirect(role string) string {
	if role == school.RoleAdmin {
		return PathAdmin
	}
	return PathTeacher
}

// Fragment serializes a path into the browser address fragment.
func Fragment(path string) string {
	return "#" + Normalize(path)
}

// FromFragment restores the path carried by an address fragment. An empty
// or bare "#" fragment means PathHome.
func FromFragment(frag string) string {
	frag = strings.TrimPrefix(strings.TrimSpace(frag), "#")
	if frag == "" {
		return PathHome
	}
	return Normalize(frag)
}
