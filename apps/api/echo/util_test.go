package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"eduquest/core"
	"eduquest/core/content"
	"eduquest/core/school"
	dummyinsight "eduquest/services/insight/dummy"
	inmemdb "eduquest/storage/inmem"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type testLogger struct{}

func (testLogger) Enable(bool)                  {}
func (testLogger) Debug(string, ...interface{}) {}
func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}
func (testLogger) Fatal(string, ...interface{}) {}

func testConfig() *core.Config {
	return &core.Config{
		AppName:   "EduQuest",
		Env:       "TEST",
		TestMode:  true,
		SecretKey: "test-secret",
		Server: core.ServerConfig{
			JWTExpirationDelta: time.Hour,
		},
		Admin: core.AdminConfig{
			ID:       "admin-001",
			Name:     "Principal",
			Email:    "admin@gmail.com",
			Password: "12345678",
		},
	}
}

type testEnv struct {
	conf       *core.Config
	schoolSvc  *school.Service
	insightSvc *dummyinsight.Service
}

func setup(t *testing.T) (*Server, *testEnv) {
	conf := testConfig()

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	schoolSvc := school.NewService(
		inmemdb.NewTeacherRepository(db),
		inmemdb.NewStudentRepository(db),
		inmemdb.NewClassRepository(db),
	)
	insightSvc := dummyinsight.NewService()

	validate := validator.New()
	_en := en.New()
	translator, _ := ut.New(_en, _en).GetTranslator("en")
	core.InitValidators(validate, translator)
	school.InitValidators(validate, translator)

	server := NewServer(
		ServerDeps{
			Conf:       conf,
			Logger:     testLogger{},
			SchoolSvc:  schoolSvc,
			ContentSvc: content.NewService(),
			InsightSvc: insightSvc,
			Validate:   validate,
			Translator: translator,
		},
	)
	return server, &testEnv{conf: conf, schoolSvc: schoolSvc, insightSvc: insightSvc}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, identity school.Identity, conf *core.Config) string {
	claims := GetIdentityClaims(identity, conf)
	token, err := GenerateToken(claims, conf)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func adminToken(t *testing.T, env *testEnv) string {
	return getToken(t, adminIdentity(env.conf.Admin), env.conf)
}

func teacherToken(t *testing.T, env *testEnv, email string) string {
	teacher, err := env.schoolSvc.GetTeacherByEmail(email)
	if err != nil {
		t.Fatalf("teacherToken() failed: %v", err)
	}
	return getToken(t, teacher.Identity(), env.conf)
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decodeBody() failed: %v; body %s", err, rec.Body.String())
	}
}
