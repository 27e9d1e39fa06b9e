package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"maitri/internal/chat"
	"maitri/internal/counsel"
	"maitri/internal/db"
	"maitri/internal/models"
	"maitri/internal/testutil"
)

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

func newTestApp(t *testing.T, store db.Store, sessions *chat.Registry) *fiber.App {
	t.Helper()

	app := fiber.New()
	sessionMiddleware, _ := session.NewWithStore()
	app.Use(sessionMiddleware)

	topics := NewTopicHandler(counsel.DefaultCatalog())
	resolve := NewResolveHandler(counsel.DefaultResolver())
	wellbeingHandler := &WellbeingHandler{pick: func(int) int { return 1 }}
	stats := NewStatsHandler(store, sessions)
	transcript := NewTranscriptHandler(sessions)

	v1 := app.Group("/api/v1")
	v1.Get("/topics", topics.List)
	v1.Get("/topics/:slug", topics.Get)
	v1.Post("/resolve", resolve.Resolve)
	v1.Post("/wellbeing/assess", wellbeingHandler.Assess)
	v1.Get("/stats", stats.Stats)
	v1.Get("/chat", transcript.Get)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode body: %v", method, path, err)
	}
	return resp.StatusCode, env
}

func TestTopics(t *testing.T) {
	app := newTestApp(t, testutil.TestStore(t), testutil.TestRegistry(t))

	status, env := doJSON(t, app, http.MethodGet, "/api/v1/topics", "")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	var topics []counsel.TopicEntry
	if err := json.Unmarshal(env.Data, &topics); err != nil {
		t.Fatalf("decode topics: %v", err)
	}
	if len(topics) != 8 {
		t.Errorf("got %d topics, want 8", len(topics))
	}
	if topics[0].Slug != "isolation" || topics[7].Slug != "general" {
		t.Errorf("unexpected topic order: first %q, last %q", topics[0].Slug, topics[7].Slug)
	}
}

func TestTopicBySlug(t *testing.T) {
	app := newTestApp(t, testutil.TestStore(t), testutil.TestRegistry(t))

	tests := []struct {
		name       string
		slug       string
		wantStatus int
		wantID     string
	}{
		{"known", "sleep", fiber.StatusOK, "😴 Sleep & Circadian Issues"},
		{"case insensitive", "SLEEP", fiber.StatusOK, "😴 Sleep & Circadian Issues"},
		{"unknown", "gravity", fiber.StatusNotFound, ""},
		{"invalid", "no_such", fiber.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := doJSON(t, app, http.MethodGet, "/api/v1/topics/"+tt.slug, "")
			if status != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", status, tt.wantStatus, env.Error)
			}
			if tt.wantID == "" {
				return
			}
			var topic counsel.TopicEntry
			if err := json.Unmarshal(env.Data, &topic); err != nil {
				t.Fatalf("decode topic: %v", err)
			}
			if topic.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", topic.ID, tt.wantID)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	app := newTestApp(t, testutil.TestStore(t), testutil.TestRegistry(t))

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantRule   string
		wantReply  string
	}{
		{"greeting", `{"message":"Hello there"}`, fiber.StatusOK, "hello", "Hi astronaut! 🚀 How’s your day going?"},
		{"earlier rule wins", `{"message":"stress about isro"}`, fiber.StatusOK, "stress", ""},
		{"fallback", `{"message":"the view is nice"}`, fiber.StatusOK, counsel.FallbackRule, counsel.FallbackReply},
		{"empty", `{"message":"   "}`, fiber.StatusBadRequest, "", ""},
		{"too long", `{"message":"` + strings.Repeat("a", chat.MaxMessageLength+1) + `"}`, fiber.StatusRequestEntityTooLarge, "", ""},
		{"malformed", `{"message":`, fiber.StatusBadRequest, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := doJSON(t, app, http.MethodPost, "/api/v1/resolve", tt.body)
			if status != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", status, tt.wantStatus, env.Error)
			}
			if tt.wantRule == "" {
				return
			}
			var res models.ResolveResponse
			if err := json.Unmarshal(env.Data, &res); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if res.Rule != tt.wantRule {
				t.Errorf("Rule = %q, want %q", res.Rule, tt.wantRule)
			}
			if tt.wantReply != "" && res.Reply != tt.wantReply {
				t.Errorf("Reply = %q, want %q", res.Reply, tt.wantReply)
			}
		})
	}
}

func TestAssess(t *testing.T) {
	app := newTestApp(t, testutil.TestStore(t), testutil.TestRegistry(t))

	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantLevel   string
		wantMessage string
	}{
		{"high stress", `{"emotion":"sad","confidence":0.9}`, fiber.StatusOK, "high", "🚨 HIGH STRESS: 💙 Earth supports you."},
		{"moderate stress", `{"emotion":"Fear","confidence":0.6}`, fiber.StatusOK, "medium", "🔸 MODERATE STRESS: 🔒 Ground monitors."},
		{"happy is never stressful", `{"emotion":"happy","confidence":0.99}`, fiber.StatusOK, "low", "✅ NORMAL: 🚀 Excellent mood!"},
		{"unknown emotion", `{"emotion":"bored","confidence":0.5}`, fiber.StatusBadRequest, "", ""},
		{"confidence out of range", `{"emotion":"sad","confidence":1.5}`, fiber.StatusBadRequest, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := doJSON(t, app, http.MethodPost, "/api/v1/wellbeing/assess", tt.body)
			if status != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", status, tt.wantStatus, env.Error)
			}
			if tt.wantLevel == "" {
				return
			}
			var got struct {
				Level   string `json:"level"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(env.Data, &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Level != tt.wantLevel || got.Message != tt.wantMessage {
				t.Errorf("got (%q, %q), want (%q, %q)", got.Level, got.Message, tt.wantLevel, tt.wantMessage)
			}
		})
	}
}

func TestStats(t *testing.T) {
	store := testutil.TestStore(t)
	sessions := testutil.TestRegistry(t)
	ctx := context.Background()

	if err := store.IncrementResolution(ctx, chat.SourceTopic, "sleep"); err != nil {
		t.Fatalf("IncrementResolution: %v", err)
	}
	if err := store.CreateAlert(ctx, &models.Alert{Level: "high"}); err != nil {
		t.Fatalf("CreateAlert: %v", err)
	}
	sessions.Get("browser-1")

	app := newTestApp(t, store, sessions)
	status, env := doJSON(t, app, http.MethodGet, "/api/v1/stats", "")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var stats models.StatsResponse
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(stats.Resolutions) != 1 || stats.Resolutions[0].Name != "sleep" || stats.Resolutions[0].Count != 1 {
		t.Errorf("Resolutions = %+v", stats.Resolutions)
	}
	if len(stats.RecentAlerts) != 1 || stats.RecentAlerts[0].Level != "high" {
		t.Errorf("RecentAlerts = %+v", stats.RecentAlerts)
	}
	if stats.ActiveSessions != 1 {
		t.Errorf("ActiveSessions = %d, want 1", stats.ActiveSessions)
	}
}

func TestTranscript_NewBrowser(t *testing.T) {
	sessions := testutil.TestRegistry(t)
	app := newTestApp(t, testutil.TestStore(t), sessions)

	status, env := doJSON(t, app, http.MethodGet, "/api/v1/chat", "")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var got struct {
		Turns []struct {
			Speaker string `json:"speaker"`
			Text    string `json:"text"`
		} `json:"turns"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Turns) != 1 || got.Turns[0].Text != chat.WelcomeMessage || got.Turns[0].Speaker != "Bot" {
		t.Errorf("Turns = %+v, want only the welcome message", got.Turns)
	}
	if got.Status != "● Online" {
		t.Errorf("Status = %q, want ● Online", got.Status)
	}
	if sessions.Len() != 1 {
		t.Errorf("registry has %d sessions, want 1", sessions.Len())
	}
}
