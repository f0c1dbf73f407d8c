package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/prachishaw/ClassCapsule/core/course"
	"github.com/prachishaw/ClassCapsule/core/theme"
	"github.com/prachishaw/ClassCapsule/core/user"
	inmemkv "github.com/prachishaw/ClassCapsule/storage/keyvalue/inmem"
	"github.com/prachishaw/ClassCapsule/storage/mockdata"
	"github.com/prachishaw/ClassCapsule/tests"
)

type testApp struct {
	*Server
	gate    *user.Gate
	courses *course.Service
	theme   *theme.Service
}

func setup(t *testing.T) testApp {
	t.Helper()

	orig := nowFunc
	nowFunc = testutil.Clock(testutil.Today)
	t.Cleanup(func() { nowFunc = orig })

	validate, translator := testutil.NewValidator()
	logger := testutil.NewLogger()
	gate := testutil.NewGate(t, nil)
	courses := testutil.NewCourseService(t)
	themeSvc := theme.NewService(inmemkv.New(), false, logger)

	server := NewServer(ServerDeps{
		Conf:       testutil.NewConfig(),
		Logger:     logger,
		Gate:       gate,
		CourseSvc:  courses,
		ThemeSvc:   themeSvc,
		Report:     mockdata.Report(),
		Validate:   validate,
		Translator: translator,
	})
	t.Cleanup(server.stop)

	return testApp{Server: server, gate: gate, courses: courses, theme: themeSvc}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
	extra    interface{}
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
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
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app testApp, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		if tt.method == "" {
			tt.method = http.MethodGet
		}
		if tt.wantCode == 0 {
			tt.wantCode = http.StatusOK
		}

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
