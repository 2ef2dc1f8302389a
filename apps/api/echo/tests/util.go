package tests

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

	echoapi "github.com/RedSolnishko/Digital-Teaching-Assistant/apps/api/echo"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/assignment"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/catalog"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/teacher"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/topic"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/user"
	dummydb "github.com/RedSolnishko/Digital-Teaching-Assistant/storage/database/dummy"
)

var (
	errMissingToken = httpErr{Message: "missing or malformed jwt"}
	errAuthRequired = httpErr{Message: "authentication required"}
	errForbidden    = httpErr{Message: "permission denied"}
	errNotFound     = httpErr{Message: "not found"}
)

type testEnv struct {
	conf    *core.Config
	app     echoapi.Server
	usrRepo user.Repository
	usrSvc  *user.Service
	tchSvc  *teacher.Service
	tpcSvc  *topic.Service
	catSvc  *catalog.Service
}

// nopLogger discards everything; tests assert on responses, not logs.
type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func testConfig() *core.Config {
	return &core.Config{
		Debug:       true,
		TestMode:    true,
		Env:         "TEST",
		AppName:     "Digital Teaching Assistant",
		SecretKey:   "secret",
		Departments: []string{"Математика", "Информатика", "Физика"},
		Server: core.ServerConfig{
			JWTExpirationDelta: 2 * time.Hour,
		},
	}
}

// setup builds a full server over a freshly seeded in-memory store.
func setup(t *testing.T) *testEnv {
	conf := testConfig()

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	if err = dummydb.LoadFixtures(db); err != nil {
		t.Fatalf("setup() failed: %v", err)
	}

	topicRepo := dummydb.NewTopicRepository(db)
	env := &testEnv{
		conf:    conf,
		usrRepo: dummydb.NewUserRepository(db),
		tpcSvc:  topic.NewService(topicRepo),
		catSvc:  catalog.NewService(dummydb.NewTaskRepository(db), conf.Departments),
		tchSvc:  teacher.NewService(dummydb.NewTeacherRepository(db)),
	}
	env.usrSvc = user.NewService(env.usrRepo)
	asgSvc := assignment.NewService(
		topicRepo,
		dummydb.NewGeneratedTaskRepository(db),
		assignment.DefaultTaskContent,
		assignment.DefaultAnswerKeys,
	)

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	teacher.InitValidators(validate, translator, conf.Departments)

	env.app = echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:           conf,
			Logger:         nopLogger{},
			DisableReqLogs: true,
			UserSvc:        env.usrSvc,
			TeacherSvc:     env.tchSvc,
			TopicSvc:       env.tpcSvc,
			CatalogSvc:     env.catSvc,
			AssignmentSvc:  asgSvc,
			Validate:       validate,
			Translator:     translator,
		},
	)
	return env
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

// getUser fetches a seeded user so expected response bodies match the store.
func (env *testEnv) getUser(t *testing.T, id int) user.User {
	usr, err := env.usrRepo.GetUserByID(id)
	if err != nil {
		t.Fatalf("getUser() failed: %v", err)
	}
	return usr
}

func (env *testEnv) getToken(t *testing.T, usr user.User) string {
	claims := echoapi.GetUserClaims(env.conf, usr)
	token, err := echoapi.GenerateToken(env.conf, claims)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

type httpErr struct {
	Message string `json:"message"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
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

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
