package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	echoapi "github.com/RedSolnishko/Digital-Teaching-Assistant/apps/api/echo"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/assignment"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/topic"
)

func Test_topicApi_query(t *testing.T) {
	env := setup(t)

	topics, err := env.tpcSvc.QueryAll()
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}

	tt := httpTest{
		name: "reads are public", method: http.MethodGet, path: "/api/topics",
		wantCode: http.StatusOK, wantData: marchallObj(t, topics),
	}
	t.Run(tt.name, func(t *testing.T) {
		req, rec := newRequest(tt.method, tt.path)
		env.app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}

func Test_topicApi_retrieve(t *testing.T) {
	env := setup(t)

	tpc, err := env.tpcSvc.GetByID(1)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}

	tests := []httpTest{
		{name: "Found", path: "/api/topics/1", wantCode: http.StatusOK, wantData: marchallObj(t, tpc)},
		{name: "Not found", path: "/api/topics/999", wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound)},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path)
			env.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_topicApi_create(t *testing.T) {
	env := setup(t)
	adminToken := env.getToken(t, env.getUser(t, 1))
	learnerToken := env.getToken(t, env.getUser(t, 2))

	newTpc := topic.NewTopic{
		Title:     "Тема 4: Графы",
		Template:  "Постройте граф: {graph}",
		TeacherID: 2,
	}
	wantTpc := topic.Topic{
		ID:        4, // fixtures seed 3 topics
		Title:     newTpc.Title,
		Template:  newTpc.Template,
		TeacherID: 2,
	}

	reqMsg := "this field is required"
	tests := []httpTest{
		{name: "Auth required", body: marchallObj(t, newTpc), wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "Admin required", token: learnerToken, body: marchallObj(t, newTpc),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "required fields", token: adminToken, body: []byte("{}"), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"title": reqMsg, "teacherId": reqMsg}),
		},
		{
			name: "unknown difficulty", token: adminToken, wantCode: http.StatusBadRequest,
			body: marchallObj(t, topic.NewTopic{
				Title: "Тема X", TeacherID: 1,
				Parameters: topic.Parameters{Difficulty: "extreme"},
			}),
			wantData: marchallObj(t, map[string]string{"difficulty": "invalid value"}),
		},
		{
			name: "unknown teacher", token: adminToken, wantCode: http.StatusNotFound,
			body:     marchallObj(t, topic.NewTopic{Title: "Тема X", TeacherID: 999}),
			wantData: marchallObj(t, errNotFound),
		},
		{
			name: "created", token: adminToken, body: marchallObj(t, newTpc),
			wantCode: http.StatusCreated, wantData: marchallObj(t, wantTpc),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/api/topics"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			env.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	// the owning teacher's topics list gains the new id
	tch, err := env.tchSvc.GetByID(2)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if len(tch.Topics) != 1 || tch.Topics[0] != wantTpc.ID {
		t.Errorf("failed! owner topics = %v; want [%v]", tch.Topics, wantTpc.ID)
	}
}

func Test_topicApi_update(t *testing.T) {
	env := setup(t)
	adminToken := env.getToken(t, env.getUser(t, 1))

	tpc, err := env.tpcSvc.GetByID(3)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	renamed := tpc
	renamed.Title = "Тема 3: Доказательства"

	tests := []httpTest{
		{
			name: "Not found", path: "/api/topics/999", token: adminToken,
			body:     marchallObj(t, topic.UpdateTopic{Title: &renamed.Title}),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound),
		},
		{
			name: "updated", path: "/api/topics/3", token: adminToken,
			body:     marchallObj(t, topic.UpdateTopic{Title: &renamed.Title}),
			wantCode: http.StatusOK, wantData: marchallObj(t, renamed),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPut

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			env.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_topicApi_generateTask(t *testing.T) {
	env := setup(t)
	learnerToken := env.getToken(t, env.getUser(t, 2))

	want := assignment.GeneratedTask{
		ID:        1,
		Title:     "Тема 1: Уравнения",
		Content:   "Решите уравнение: x^2 - 4 = 0",
		TeacherID: 1,
	}

	tests := []httpTest{
		{name: "Auth required", path: "/api/topics/1/task", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "Not found", path: "/api/topics/999/task", token: learnerToken, wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound)},
		{name: "generated", path: "/api/topics/1/task", token: learnerToken, wantCode: http.StatusOK, wantData: marchallObj(t, want)},
		{name: "repeated call is identical", path: "/api/topics/1/task", token: learnerToken, wantCode: http.StatusOK, wantData: marchallObj(t, want)},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token)
			env.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	// a topic rename does not invalidate what the learner already received
	title := "Тема 1: Переименована"
	if _, err := env.tpcSvc.Update(1, topic.UpdateTopic{Title: &title}); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	tt := httpTest{
		name: "stable after topic update", method: http.MethodGet, path: "/api/topics/1/task",
		token: learnerToken, wantCode: http.StatusOK, wantData: marchallObj(t, want),
	}
	t.Run(tt.name, func(t *testing.T) {
		req, rec := newAuthRequest(tt.method, tt.path, tt.token)
		env.app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}

func Test_topicApi_submitAnswer(t *testing.T) {
	env := setup(t)
	learnerToken := env.getToken(t, env.getUser(t, 2))

	correct := marchallObj(t, assignment.Result{IsCorrect: true})
	incorrect := marchallObj(t, assignment.Result{IsCorrect: false})

	tests := []httpTest{
		{
			name: "Auth required", path: "/api/topics/1/submit",
			body:     marchallObj(t, echoapi.SubmitAnswerRequest{Answer: "x = 2, x = -2"}),
			wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken),
		},
		{
			name: "Not found", path: "/api/topics/999/submit", token: learnerToken,
			body:     marchallObj(t, echoapi.SubmitAnswerRequest{Answer: "x = 2, x = -2"}),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound),
		},
		{
			name: "exact match", path: "/api/topics/1/submit", token: learnerToken,
			body:     marchallObj(t, echoapi.SubmitAnswerRequest{Answer: "x = 2, x = -2"}),
			wantCode: http.StatusOK, wantData: correct,
		},
		{
			name: "surrounding whitespace trimmed", path: "/api/topics/1/submit", token: learnerToken,
			body:     marchallObj(t, echoapi.SubmitAnswerRequest{Answer: "  x = 2, x = -2\n"}),
			wantCode: http.StatusOK, wantData: correct,
		},
		{
			name: "wrong answer", path: "/api/topics/1/submit", token: learnerToken,
			body:     marchallObj(t, echoapi.SubmitAnswerRequest{Answer: "x = 4"}),
			wantCode: http.StatusOK, wantData: incorrect,
		},
		{
			name: "case matters", path: "/api/topics/2/submit", token: learnerToken,
			body:     marchallObj(t, echoapi.SubmitAnswerRequest{Answer: `PRINT("Hello, World!")`}),
			wantCode: http.StatusOK, wantData: incorrect,
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			env.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

// A learner's full journey: log in, receive a task, fail it, pass it, then
// record the completion.
func Test_topicApi_learnerScenario(t *testing.T) {
	env := setup(t)
	learner := env.getUser(t, 2)

	// log in
	body := marchallObj(t, echoapi.LoginRequest{Email: learner.Email, Password: "123"})
	req, rec := newRequest(http.MethodPost, "/api/login", body)
	env.app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed! code = %v", rec.Code)
	}
	var login echoapi.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("json.Unmarshal() failed! err %v", err)
	}

	// receive the task for topic 3
	req, rec = newAuthRequest(http.MethodGet, "/api/topics/3/task", login.Token)
	env.app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("task generation failed! code = %v", rec.Code)
	}
	var gt assignment.GeneratedTask
	if err := json.Unmarshal(rec.Body.Bytes(), &gt); err != nil {
		t.Fatalf("json.Unmarshal() failed! err %v", err)
	}
	if gt.Content != "Докажите теорему Пифагора" {
		t.Fatalf("failed! content = %q", gt.Content)
	}

	// a wrong answer is rejected, the right one accepted
	steps := []struct {
		answer string
		want   bool
	}{
		{"a + b = c", false},
		{"By Pythagorean theorem, a^2 + b^2 = c^2", true},
	}
	for _, step := range steps {
		body = marchallObj(t, echoapi.SubmitAnswerRequest{Answer: step.answer})
		req, rec = newAuthRequest(http.MethodPost, "/api/topics/3/submit", login.Token, body)
		env.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("submit failed! code = %v", rec.Code)
		}
		var res assignment.Result
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if res.IsCorrect != step.want {
			t.Errorf("failed! isCorrect = %v; want %v (answer %q)", res.IsCorrect, step.want, step.answer)
		}
	}

	// record the completion; topic 1 is not yet in the learner's set
	path := fmt.Sprintf("/api/users/%d/tasks", learner.ID)
	req, rec = newAuthRequest(http.MethodPost, path, login.Token, []byte("1"))
	env.app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("adding completed task failed! code = %v", rec.Code)
	}

	refreshed := env.getUser(t, learner.ID)
	if !refreshed.HasCompletedTask(1) {
		t.Error("failed! task 1 not recorded as completed")
	}
}
