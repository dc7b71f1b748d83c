package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduquest/core/school"
)

func Test_authApi_login(t *testing.T) {
	app, _ := setup(t)

	login := func(role, email, password string) []byte {
		return marchallObj(t, LoginRequest{Role: role, Email: email, Password: password})
	}

	// the four mutually exclusive failure messages
	tests := []httpTest{
		{
			name: "Admin: wrong password", body: login(school.RoleAdmin, "admin@gmail.com", "nope"),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "Invalid administrator credentials."}),
		},
		{
			name: "Admin: wrong email", body: login(school.RoleAdmin, "root@gmail.com", "12345678"),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "Invalid administrator credentials."}),
		},
		{
			// the admin pair matches exactly; a case-variant email is a different credential
			name: "Admin: email case must match", body: login(school.RoleAdmin, "ADMIN@GMAIL.COM", "12345678"),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "Invalid administrator credentials."}),
		},
		{
			name: "Teacher: unknown email", body: login(school.RoleTeacher, "nobody@gmail.com", "123"),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "No teacher found with this email."}),
		},
		{
			name: "Teacher: disabled account", body: login(school.RoleTeacher, "m.brown@gmail.com", "789"),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "This account has been disabled. Please contact Admin."}),
		},
		{
			name: "Teacher: disabled account wins over wrong password", body: login(school.RoleTeacher, "m.brown@gmail.com", "nope"),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "This account has been disabled. Please contact Admin."}),
		},
		{
			name: "Teacher: wrong password", body: login(school.RoleTeacher, "john.smith@gmail.com", "nope"),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "Incorrect password for this account."}),
		},
		{
			name: "Unknown role rejected", body: login("STUDENT", "john.smith@gmail.com", "123"),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"role": "role must be one of [ADMIN TEACHER]"}),
		},
		{
			name: "Missing fields rejected", body: login(school.RoleAdmin, "", ""),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"email": "this field is required", "password": "this field is required"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/api/auth/login", tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("Admin: success", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/api/auth/login", login(school.RoleAdmin, "admin@gmail.com", "12345678"))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var res LoginResponse
		decodeBody(t, rec, &res)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, "admin-001", res.User.ID)
		assert.Equal(t, "Principal", res.User.Name)
		assert.Equal(t, school.RoleAdmin, res.User.Role)
		assert.Equal(t, "/admin", res.Redirect)
	})

	t.Run("Teacher: success", func(t *testing.T) {
		// email matching ignores case
		req, rec := newRequest(http.MethodPost, "/api/auth/login", login(school.RoleTeacher, "John.Smith@Gmail.com", "123"))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var res LoginResponse
		decodeBody(t, rec, &res)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, "John Smith", res.User.Name)
		assert.Equal(t, school.RoleTeacher, res.User.Role)
		assert.Equal(t, "Mathematics", res.User.Subject)
		assert.Equal(t, "/teacher", res.Redirect)
	})
}

func Test_authApi_tokenClaims(t *testing.T) {
	_, env := setup(t)

	teacher, err := env.schoolSvc.GetTeacherByEmail("sarah.w@gmail.com")
	require.NoError(t, err)

	claims := GetIdentityClaims(teacher.Identity(), env.conf)
	assert.Equal(t, teacher.ID, claims.Subject)
	assert.Equal(t, "Physics", claims.TaughtSubject)
	assert.True(t, claims.IsTeacher)
	assert.False(t, claims.IsAdmin)
	assert.Equal(t, teacher.Identity(), claims.Identity())

	admin := GetIdentityClaims(adminIdentity(env.conf.Admin), env.conf)
	assert.True(t, admin.IsAdmin)
	assert.False(t, admin.IsTeacher)
}
