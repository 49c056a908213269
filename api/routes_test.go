package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SlpAus/skillswap-connect-backend/internal/badge"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/config"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/database"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/health"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/startup"
	"github.com/SlpAus/skillswap-connect-backend/internal/session"
	"github.com/SlpAus/skillswap-connect-backend/internal/skill"
	"github.com/SlpAus/skillswap-connect-backend/internal/user"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
	base   string
	db     *gorm.DB
}

func newTestServer(t *testing.T, basePath string, seed bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(config.SqliteConfig{DSN: database.MemoryDSN()}, false)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	stores, err := startup.InitializeApplication(context.Background(), db, seed)
	if err != nil {
		t.Fatalf("InitializeApplication failed: %v", err)
	}
	router := gin.New()
	SetupRoutes(router, basePath, stores, health.NewChecker(db))
	return &testServer{t: t, router: router, base: basePath, db: db}
}

// do 发送请求，并在 out 非空时解析响应体
func (s *testServer) do(method, path, body string, out any) int {
	s.t.Helper()
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, s.base+path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	if out != nil {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			s.t.Fatalf("%s %s: cannot decode %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w.Code
}

func (s *testServer) login(name string) user.Profile {
	s.t.Helper()
	var p user.Profile
	if code := s.do(http.MethodPost, "/auth", `{"username":"`+name+`"}`, &p); code != http.StatusOK {
		s.t.Fatalf("login %s: status %d", name, code)
	}
	return p
}

func TestMatchSessionFlow(t *testing.T) {
	s := newTestServer(t, "/api", false)

	alex := s.login("alex")
	sam := s.login("sam")

	if code := s.do(http.MethodPost, "/profile", `{"id":"`+alex.ID+`","skillsOffered":["Guitar"],"skillsWanted":["Coding"]}`, nil); code != http.StatusOK {
		t.Fatalf("profile alex: status %d", code)
	}
	if code := s.do(http.MethodPost, "/profile", `{"id":"`+sam.ID+`","skillsOffered":["Coding"],"skillsWanted":["Guitar"]}`, nil); code != http.StatusOK {
		t.Fatalf("profile sam: status %d", code)
	}

	var matches []user.Profile
	if code := s.do(http.MethodGet, "/matches/"+alex.ID, "", &matches); code != http.StatusOK {
		t.Fatalf("matches: status %d", code)
	}
	if len(matches) != 1 || matches[0].Username != "sam" {
		t.Fatalf("expected alex to match sam, got %+v", matches)
	}

	var proposed session.View
	body := `{"fromId":"` + alex.ID + `","toId":"` + sam.ID + `","skill":"Guitar","time":"2025-09-08 18:00"}`
	if code := s.do(http.MethodPost, "/session", body, &proposed); code != http.StatusOK {
		t.Fatalf("propose: status %d", code)
	}
	if proposed.Status != session.StatusPending {
		t.Errorf("expected pending, got %s", proposed.Status)
	}

	var accepted session.View
	if code := s.do(http.MethodPost, "/session/accept", `{"sessionId":"`+proposed.ID+`"}`, &accepted); code != http.StatusOK {
		t.Fatalf("accept: status %d", code)
	}
	if accepted.Status != session.StatusAccepted {
		t.Errorf("expected accepted, got %s", accepted.Status)
	}

	var listed []session.NamedView
	if code := s.do(http.MethodGet, "/sessions/"+sam.ID, "", &listed); code != http.StatusOK {
		t.Fatalf("sessions: status %d", code)
	}
	if len(listed) != 1 || listed[0].FromName != "alex" || listed[0].ToName != "sam" {
		t.Errorf("unexpected session list %+v", listed)
	}
}

func TestSessionTimeOutOfRange(t *testing.T) {
	s := newTestServer(t, "/api", false)
	alex := s.login("alex")
	sam := s.login("sam")

	for _, at := range []string{`253402300800000`, `1e30`, `"9999-12-31T23:00:00-02:00"`} {
		var resp map[string]string
		body := `{"fromId":"` + alex.ID + `","toId":"` + sam.ID + `","skill":"Guitar","time":` + at + `}`
		if code := s.do(http.MethodPost, "/session", body, &resp); code != http.StatusBadRequest {
			t.Errorf("time %s: expected 400, got %d", at, code)
		}
		if resp["error"] == "" {
			t.Errorf("time %s: expected an error message", at)
		}
	}

	var listed []session.NamedView
	s.do(http.MethodGet, "/sessions/"+alex.ID, "", &listed)
	if len(listed) != 0 {
		t.Errorf("rejected proposals must not be stored, got %+v", listed)
	}
}

func TestMessagesAndThanks(t *testing.T) {
	s := newTestServer(t, "/api", false)

	s.do(http.MethodPost, "/message", `{"fromId":"A","toId":"B","text":"hi"}`, nil)
	s.do(http.MethodPost, "/message", `{"fromId":"B","toId":"A","text":"hello"}`, nil)

	var conv []map[string]any
	if code := s.do(http.MethodGet, "/messages/A/B", "", &conv); code != http.StatusOK {
		t.Fatalf("conversation: status %d", code)
	}
	if len(conv) != 2 || conv[0]["text"] != "hi" || conv[1]["text"] != "hello" {
		t.Errorf("unexpected conversation %v", conv)
	}

	for _, m := range []string{"one", "two", "three"} {
		var resp map[string]any
		code := s.do(http.MethodPost, "/thanks", `{"from":"demo","to":"alex","message":"`+m+`"}`, &resp)
		if code != http.StatusOK || resp["success"] != true {
			t.Fatalf("thanks %s: status %d body %v", m, code, resp)
		}
	}
	var wall []map[string]any
	s.do(http.MethodGet, "/thanks", "", &wall)
	if len(wall) != 3 || wall[0]["message"] != "one" || wall[2]["message"] != "three" {
		t.Errorf("unexpected thanks wall %v", wall)
	}
}

func TestBadgesAndLeaderboard(t *testing.T) {
	s := newTestServer(t, "/api", false)
	alex := s.login("alex")

	s.do(http.MethodPost, "/badge", `{"username":"alex","badge":"Mentor"}`, nil)
	s.do(http.MethodPost, "/badge", `{"userId":"`+alex.ID+`","badge":"mentor"}`, nil)
	s.do(http.MethodPost, "/badge", `{"username":"ghost","badge":"Helper"}`, nil)

	var board []badge.Row
	if code := s.do(http.MethodGet, "/leaderboard", "", &board); code != http.StatusOK {
		t.Fatalf("leaderboard: status %d", code)
	}
	if len(board) != 2 || board[0].Username != "alex" || board[0].Badges != 1 {
		t.Fatalf("unexpected leaderboard %+v", board)
	}

	var removed map[string]any
	s.do(http.MethodDelete, "/badge", `{"username":"ghost","badge":"Nope"}`, &removed)
	if removed["success"] != true || removed["removed"] != false {
		t.Errorf("unexpected remove response %v", removed)
	}
	s.do(http.MethodDelete, "/badge", `{"username":"GHOST","badge":"helper"}`, &removed)
	if removed["removed"] != true {
		t.Errorf("expected badge to be removed, got %v", removed)
	}

	var resp map[string]string
	if code := s.do(http.MethodPost, "/badge", `{"username":"alex"}`, &resp); code != http.StatusBadRequest {
		t.Errorf("missing badge: status %d", code)
	}
	if resp["error"] != "username (or userId) and badge are required" {
		t.Errorf("unexpected error %q", resp["error"])
	}
}

func TestErrorResponses(t *testing.T) {
	s := newTestServer(t, "/api", false)

	testCases := []struct {
		Description string
		Method      string
		Path        string
		Body        string
		Status      int
		Error       string
	}{
		{"empty username", http.MethodPost, "/auth", `{"username":""}`, http.StatusBadRequest, "Username required"},
		{"unknown profile", http.MethodPost, "/profile", `{"id":"missing"}`, http.StatusNotFound, "User not found"},
		{"unknown matches", http.MethodGet, "/matches/missing", "", http.StatusNotFound, "User not found"},
		{"incomplete session", http.MethodPost, "/session", `{"fromId":"A"}`, http.StatusBadRequest, "fromId, toId and skill are required"},
		{"unknown session", http.MethodPost, "/session/accept", `{"sessionId":"missing"}`, http.StatusNotFound, "Session not found"},
		{"malformed accept", http.MethodPost, "/session/accept", `{"sessionId":`, http.StatusBadRequest, "Invalid request body"},
		{"malformed profile", http.MethodPost, "/profile", `{"id":42}`, http.StatusBadRequest, "Invalid request body"},
		{"empty message", http.MethodPost, "/message", `{"fromId":"A","toId":"B"}`, http.StatusBadRequest, "fromId, toId and text are required"},
		{"empty thanks", http.MethodPost, "/thanks", `{"from":"A"}`, http.StatusBadRequest, "from, to and message are required"},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			var resp map[string]string
			if code := s.do(tc.Method, tc.Path, tc.Body, &resp); code != tc.Status {
				t.Errorf("expected status %d, got %d", tc.Status, code)
			}
			if resp["error"] != tc.Error {
				t.Errorf("expected error %q, got %q", tc.Error, resp["error"])
			}
		})
	}
}

func TestRootMountedWithSeed(t *testing.T) {
	s := newTestServer(t, "", true)

	var board []badge.Row
	s.do(http.MethodGet, "/leaderboard", "", &board)
	if len(board) != 5 || board[0].Username != "alex" || board[0].Badges != 3 {
		t.Errorf("unexpected seeded leaderboard %+v", board)
	}

	var suggestion map[string]string
	if code := s.do(http.MethodGet, "/suggest", "", &suggestion); code != http.StatusOK {
		t.Fatalf("suggest: status %d", code)
	}
	found := false
	for _, c := range skill.Catalog {
		if c == suggestion["suggestion"] {
			found = true
		}
	}
	if !found {
		t.Errorf("suggestion %q is not in the catalog", suggestion["suggestion"])
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, "/api", false)

	var ok map[string]any
	if code := s.do(http.MethodGet, "/health", "", &ok); code != http.StatusOK || ok["ok"] != true {
		t.Fatalf("healthy: status %d body %v", code, ok)
	}

	if err := database.Close(s.db); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	var down map[string]any
	if code := s.do(http.MethodGet, "/health", "", &down); code != http.StatusServiceUnavailable || down["ok"] != false {
		t.Errorf("unhealthy: status %d body %v", code, down)
	}
}
