package nav

import (
	"testing"

	"eduquest/core/school"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"home", "/", PathHome},
		{"news", "/news", PathNews},
		{"gallery", "/gallery", PathGallery},
		{"login", "/login", PathLogin},
		{"admin", "/admin", PathAdmin},
		{"teacher", "/teacher", PathTeacher},
		{"padded", "  /news  ", PathNews},
		{"empty aliases to home", "", PathHome},
		{"unknown aliases to home", "/nope", PathHome},
		{"nested aliases to home", "/admin/teachers", PathHome},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.path); got != tt.want {
				t.Errorf("Normalize(%q) = %q; want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		role string
		path string
		want View
	}{
		// public paths render for everyone
		{"public home", school.RolePublic, "/", ViewHome},
		{"public news", school.RolePublic, "/news", ViewNews},
		{"public gallery", school.RolePublic, "/gallery", ViewGallery},
		{"public login", school.RolePublic, "/login", ViewLogin},
		{"admin news", school.RoleAdmin, "/news", ViewNews},

		// protected paths gate on the exact role
		{"admin console", school.RoleAdmin, "/admin", ViewAdmin},
		{"teacher portal", school.RoleTeacher, "/teacher", ViewTeacher},
		{"public hits admin", school.RolePublic, "/admin", ViewLogin},
		{"public hits teacher", school.RolePublic, "/teacher", ViewLogin},
		{"teacher hits admin", school.RoleTeacher, "/admin", ViewLogin},
		{"admin hits teacher", school.RoleAdmin, "/teacher", ViewLogin},
		{"no role hits admin", "", "/admin", ViewLogin},

		// unknown paths alias to home before gating
		{"unknown path", school.RolePublic, "/whatever", ViewHome},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.role, tt.path); got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q; want %q", tt.role, tt.path, got, tt.want)
			}
		})
	}
}

func TestRequiredRole(t *testing.T) {
	if role, ok := RequiredRole("/admin"); !ok || role != school.RoleAdmin {
		t.Errorf("RequiredRole(/admin) = %q, %v; want %q, true", role, ok, school.RoleAdmin)
	}
	if role, ok := RequiredRole("/teacher"); !ok || role != school.RoleTeacher {
		t.Errorf("RequiredRole(/teacher) = %q, %v; want %q, true", role, ok, school.RoleTeacher)
	}
	if _, ok := RequiredRole("/news"); ok {
		t.Error("RequiredRole(/news) should not demand a role")
	}
	if _, ok := RequiredRole("/unknown"); ok {
		t.Error("RequiredRole should not demand a role for aliased paths")
	}
}

func TestHomeRedirect(t *testing.T) {
	if got := HomeRedirect(school.RoleAdmin); got != PathAdmin {
		t.Errorf("HomeRedirect(ADMIN) = %q; want %q", got, PathAdmin)
	}
	if got := HomeRedirect(school.RoleTeacher); got != PathTeacher {
		t.Errorf("HomeRedirect(TEACHER) = %q; want %q", got, PathTeacher)
	}
}

func TestFragmentRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantFrag string
	}{
		{"home", "/", "#/"},
		{"gallery", "/gallery", "#/gallery"},
		{"admin", "/admin", "#/admin"},
		{"unknown collapses", "/bogus", "#/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frag := Fragment(tt.path)
			if frag != tt.wantFrag {
				t.Errorf("Fragment(%q) = %q; want %q", tt.path, frag, tt.wantFrag)
			}
			if got := FromFragment(frag); got != Normalize(tt.path) {
				t.Errorf("FromFragment(%q) = %q; want %q", frag, got, Normalize(tt.path))
			}
		})
	}

	if got := FromFragment(""); got != PathHome {
		t.Errorf("FromFragment(\"\") = %q; want %q", got, PathHome)
	}
	if got := FromFragment("#"); got != PathHome {
		t.Errorf("FromFragment(\"#\") = %q; want %q", got, PathHome)
	}
}
