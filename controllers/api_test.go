package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"otherhalf_server/models"
	"otherhalf_server/routes"
	"otherhalf_server/services"
	"otherhalf_server/storage"
	"otherhalf_server/store"

	"github.com/gorilla/mux"
)

func newTestRouter() (*mux.Router, *store.Store) {
	adapter := storage.NewMemoryAdapter()
	st := store.New(adapter, store.Config{})
	auth := &services.AuthService{Storage: adapter, Store: st}

	r := mux.NewRouter()
	routes.RegisterProfileRoutes(r, auth)
	routes.RegisterMatchRoutes(r, st, auth)
	routes.RegisterChatRoutes(r, st)
	routes.RegisterNotificationRoutes(r, st)
	routes.RegisterConfessionRoutes(r, st)
	routes.RegisterIcebreakerRoutes(r, &services.IcebreakerService{})
	routes.RegisterCallRoutes(r, services.NewStubSignaler())
	return r, st
}

func performRequest(r http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func urlQuery(s string) string {
	return url.QueryEscape(s)
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewReader(b)
}

func login(t *testing.T, r http.Handler) models.UserProfile {
	t.Helper()
	profile := models.UserProfile{
		ID:          "u1",
		AnonymousID: "User#A001",
		Gender:      models.GenderMale,
		University:  "Amity University, Raipur",
	}
	resp := performRequest(r, http.MethodPost, "/api/profiles/login", jsonBody(t, profile))
	if resp.Code != http.StatusOK {
		t.Fatalf("login failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	return profile
}

func TestMatchFlow(t *testing.T) {
	r, _ := newTestRouter()
	login(t, r)

	// Queue returns only opposite-gender candidates.
	resp := performRequest(r, http.MethodGet, "/api/matches/queue", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("queue failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var queue []models.MatchProfile
	if err := json.Unmarshal(resp.Body.Bytes(), &queue); err != nil {
		t.Fatalf("decode queue: %v", err)
	}
	if len(queue) == 0 {
		t.Fatal("empty match queue for seeded pool")
	}
	for _, c := range queue {
		if c.Gender != models.GenderFemale {
			t.Errorf("queue candidate %s has gender %q", c.ID, c.Gender)
		}
	}

	// Swipe right.
	candidate := queue[0]
	resp = performRequest(r, http.MethodPost, "/api/matches", jsonBody(t, map[string]interface{}{
		"candidate":   candidate,
		"requesterId": "u1",
	}))
	if resp.Code != http.StatusOK {
		t.Fatalf("add match failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// Session exists with no messages.
	resp = performRequest(r, http.MethodGet, "/api/chat/session?matchId="+candidate.ID, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("get session failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var session models.ChatSession
	if err := json.Unmarshal(resp.Body.Bytes(), &session); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if len(session.Messages) != 0 {
		t.Errorf("new session has %d messages", len(session.Messages))
	}

	// Head notification is an unread match alert.
	resp = performRequest(r, http.MethodGet, "/api/notifications", nil)
	var notifications []models.Notification
	if err := json.Unmarshal(resp.Body.Bytes(), &notifications); err != nil {
		t.Fatalf("decode notifications: %v", err)
	}
	if notifications[0].Type != models.NotificationTypeMatch || notifications[0].Read {
		t.Errorf("head notification = %+v, want unread match", notifications[0])
	}

	// Send a message.
	resp = performRequest(r, http.MethodPost, "/api/chat/message", jsonBody(t, map[string]string{
		"matchId":  candidate.ID,
		"senderId": "u1",
		"text":     "hi",
	}))
	if resp.Code != http.StatusOK {
		t.Fatalf("send message failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// Message to a never-matched id is a 404.
	resp = performRequest(r, http.MethodPost, "/api/chat/message", jsonBody(t, map[string]string{
		"matchId":  "M999",
		"senderId": "u1",
		"text":     "void",
	}))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("message to unknown match status=%d, want 404", resp.Code)
	}

	// Remove the match; its session disappears.
	resp = performRequest(r, http.MethodDelete, "/api/matches/"+candidate.ID, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("remove match failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	resp = performRequest(r, http.MethodGet, "/api/chat/session?matchId="+candidate.ID, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("session after removal status=%d, want 404", resp.Code)
	}
}

func TestMatchQueueRequiresLogin(t *testing.T) {
	r, _ := newTestRouter()
	resp := performRequest(r, http.MethodGet, "/api/matches/queue", nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("queue without session status=%d, want 401", resp.Code)
	}
}

func TestConfessionEndpoints(t *testing.T) {
	r, _ := newTestRouter()
	const uni = "Kalinga University, Raipur"

	resp := performRequest(r, http.MethodPost, "/api/confessions", jsonBody(t, map[string]string{
		"userId":     "User#A001",
		"text":       "midnight maggi at the hostel gate is elite",
		"university": uni,
	}))
	if resp.Code != http.StatusOK {
		t.Fatalf("post confession failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var posted models.Confession
	if err := json.Unmarshal(resp.Body.Bytes(), &posted); err != nil {
		t.Fatalf("decode confession: %v", err)
	}
	if posted.ID == "" || posted.Comments == nil {
		t.Errorf("posted confession missing id or comments: %+v", posted)
	}

	// Like twice, comment once.
	likePath := fmt.Sprintf("/api/confessions/%s/like", posted.ID)
	for i := 0; i < 2; i++ {
		if resp := performRequest(r, http.MethodPost, likePath, nil); resp.Code != http.StatusOK {
			t.Fatalf("like failed status=%d", resp.Code)
		}
	}
	resp = performRequest(r, http.MethodPost, fmt.Sprintf("/api/confessions/%s/comments", posted.ID),
		jsonBody(t, map[string]string{"userId": "User#B002", "text": "facts"}))
	if resp.Code != http.StatusOK {
		t.Fatalf("comment failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	resp = performRequest(r, http.MethodGet, "/api/confessions?university="+urlQuery(uni), nil)
	var list []models.Confession
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode confessions: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("confession count = %d, want 1", len(list))
	}
	if list[0].Likes != 2 {
		t.Errorf("likes = %d, want 2", list[0].Likes)
	}
	if len(list[0].Comments) != 1 {
		t.Errorf("comments = %d, want 1", len(list[0].Comments))
	}

	// Like on a nonexistent confession is a 404.
	resp = performRequest(r, http.MethodPost, "/api/confessions/nope/like", nil)
	if resp.Code != http.StatusNotFound {
		t.Errorf("like unknown confession status=%d, want 404", resp.Code)
	}
}

func TestIcebreakerFallbackEndpoint(t *testing.T) {
	r, _ := newTestRouter()

	resp := performRequest(r, http.MethodPost, "/api/icebreaker", jsonBody(t, map[string]interface{}{
		"interests": []string{"AI"},
		"profile":   models.MatchProfile{AnonymousID: "User#X92A", Branch: "CS"},
	}))
	if resp.Code != http.StatusOK {
		t.Fatalf("icebreaker failed status=%d", resp.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode icebreaker: %v", err)
	}
	if body["message"] != services.FallbackIceBreaker {
		t.Errorf("message = %q, want fallback", body["message"])
	}
}

func TestCallLifecycleEndpoints(t *testing.T) {
	r, _ := newTestRouter()

	resp := performRequest(r, http.MethodPost, "/api/calls", jsonBody(t, map[string]string{
		"matchId":  "m1",
		"callerId": "u1",
		"type":     models.CallTypeVideo,
	}))
	if resp.Code != http.StatusOK {
		t.Fatalf("start call failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var call services.CallSession
	if err := json.Unmarshal(resp.Body.Bytes(), &call); err != nil {
		t.Fatalf("decode call: %v", err)
	}
	if call.Status != models.CallStatusConnecting {
		t.Errorf("initial status = %q", call.Status)
	}

	resp = performRequest(r, http.MethodDelete, "/api/calls/"+call.ID, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("end call failed status=%d", resp.Code)
	}
	resp = performRequest(r, http.MethodGet, "/api/calls/"+call.ID, nil)
	var ended services.CallSession
	if err := json.Unmarshal(resp.Body.Bytes(), &ended); err != nil {
		t.Fatalf("decode ended call: %v", err)
	}
	if ended.Status != models.CallStatusEnded {
		t.Errorf("status after end = %q", ended.Status)
	}
}

func TestLogoutResetsState(t *testing.T) {
	r, st := newTestRouter()
	login(t, r)

	candidate := st.GetMatchQueue(models.UserProfile{ID: "u1", Gender: models.GenderMale})[0]
	resp := performRequest(r, http.MethodPost, "/api/matches", jsonBody(t, map[string]interface{}{
		"candidate":   candidate,
		"requesterId": "u1",
	}))
	if resp.Code != http.StatusOK {
		t.Fatalf("add match failed status=%d", resp.Code)
	}

	resp = performRequest(r, http.MethodPost, "/api/profiles/logout", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("logout failed status=%d", resp.Code)
	}

	if got := len(st.GetMatches()); got != 0 {
		t.Errorf("matches after logout = %d, want 0", got)
	}
	resp = performRequest(r, http.MethodGet, "/api/profiles/me", nil)
	if resp.Code != http.StatusUnauthorized {
		t.Errorf("me after logout status=%d, want 401", resp.Code)
	}
}
