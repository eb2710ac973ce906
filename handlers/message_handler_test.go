package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"prospect-outreach/config"
	"prospect-outreach/database"
	"prospect-outreach/models"
	"prospect-outreach/services"

	"github.com/gin-gonic/gin"
)

type fixedCompleter struct {
	summary string
	message string
	err     error
}

func (f fixedCompleter) Complete(_ context.Context, prompt, _ string, _ float64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if strings.Contains(prompt, "Bullet points:") {
		return f.summary, nil
	}
	return f.message, nil
}

func newTestRouter(t *testing.T, llm services.Completer, withHistory bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	history := services.NewHistoryService(nil)
	if withHistory {
		cfg.DatabasePath = filepath.Join(t.TempDir(), "handlers.db")
		db, err := database.InitDB(cfg)
		if err != nil {
			t.Fatalf("InitDB() error = %v", err)
		}
		history = services.NewHistoryService(db)
	}

	pipeline := services.NewPipeline(services.NewSummarizer(cfg, llm), services.NewMessageComposer(cfg, llm))
	r := gin.New()
	NewMessageHandler(pipeline, history).RegisterRoutes(r)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

const generateBody = `{
	"prospect_name": "Jane Doe",
	"designation": "VP Engineering",
	"company": "Acme Corp",
	"prospect_background": "Jane Doe led engineering at Acme Corp...",
	"my_background": "I run partnerships...",
	"event_name": "Ai4 Vegas 2025",
	"event_details": "August 12-14, MGM Grand Las Vegas",
	"final_message": "ignored"
}`

func TestGenerateMessage(t *testing.T) {
	llm := fixedCompleter{
		summary: "Jane led engineering at Acme Corp\n- Scaled the team\n- Shipped the platform",
		message: "Hi Jane,\nI see that you'll be attending Ai4 Vegas 2025. Your engineering leadership at Acme Corp caught my attention. Looking forward to meeting you!\nBest, Sumana\nBest, Sumana",
	}
	r := newTestRouter(t, llm, true)

	w := postJSON(r, "/api/v1/messages/generate", generateBody)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp models.GenerateMessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.RunID == "" {
		t.Error("expected a run id when history is enabled")
	}
	if !strings.HasPrefix(resp.FinalMessage, "Hi Jane,") || strings.Count(resp.FinalMessage, "Best, Sumana") != 1 {
		t.Errorf("unexpected final message %q", resp.FinalMessage)
	}
	if resp.Prospect == nil || resp.Prospect.ProspectBackground != llm.summary {
		t.Errorf("expected summarized record in response, got %+v", resp.Prospect)
	}
	if resp.Prospect.FinalMessage != resp.FinalMessage {
		t.Errorf("record and response disagree on final message")
	}

	stats := get(r, "/api/v1/messages/stats")
	if stats.Code != http.StatusOK || !strings.Contains(stats.Body.String(), `"total_runs":1`) {
		t.Errorf("stats = %d %s", stats.Code, stats.Body.String())
	}

	history := get(r, "/api/v1/messages/history?limit=5")
	if history.Code != http.StatusOK || !strings.Contains(history.Body.String(), resp.RunID) {
		t.Errorf("history = %d %s", history.Code, history.Body.String())
	}
}

func TestGenerateMessageCompletionFailure(t *testing.T) {
	r := newTestRouter(t, fixedCompleter{err: errors.New("network down")}, false)

	w := postJSON(r, "/api/v1/messages/generate", generateBody)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", w.Code)
	}

	var resp models.GenerateMessageResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.FinalMessage != models.MessageGenerationFailed {
		t.Errorf("FinalMessage = %q, expected sentinel", resp.FinalMessage)
	}
	if resp.Prospect.ProspectBackground != models.SummaryUnavailable || resp.Prospect.MyBackground != models.SummaryUnavailable {
		t.Errorf("expected summary fallbacks, got %+v", resp.Prospect)
	}
	if resp.RunID != "" {
		t.Errorf("expected no run id without history, got %q", resp.RunID)
	}
}

func TestGenerateMessageBadRequest(t *testing.T) {
	r := newTestRouter(t, fixedCompleter{}, false)

	tests := []struct {
		name string
		body string
	}{
		{name: "Malformed JSON", body: `{"company": `},
		{name: "Company too long", body: `{"company": "` + strings.Repeat("x", 201) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/api/v1/messages/generate", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, expected 400", w.Code)
			}
		})
	}
}

func TestHistoryEndpoints(t *testing.T) {
	tests := []struct {
		name        string
		withHistory bool
		path        string
		expected    int
	}{
		{name: "History disabled", withHistory: false, path: "/api/v1/messages/history", expected: http.StatusServiceUnavailable},
		{name: "Stats disabled", withHistory: false, path: "/api/v1/messages/stats", expected: http.StatusServiceUnavailable},
		{name: "Limit out of range", withHistory: true, path: "/api/v1/messages/history?limit=500", expected: http.StatusBadRequest},
		{name: "Default limit", withHistory: true, path: "/api/v1/messages/history", expected: http.StatusOK},
		{name: "Health", withHistory: false, path: "/api/v1/health", expected: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, fixedCompleter{}, tt.withHistory)
			w := get(r, tt.path)
			if w.Code != tt.expected {
				t.Errorf("GET %s = %d, expected %d (%s)", tt.path, w.Code, tt.expected, w.Body.String())
			}
		})
	}
}
