package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/btjones-me/llm-browser-use/agent"
	"github.com/btjones-me/llm-browser-use/config"
	"github.com/btjones-me/llm-browser-use/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	history *history.History
	err     error
}

func (e *fakeEngine) Run(ctx context.Context, options agent.Options) (*history.History, error) {
	return e.history, e.err
}

func testConfig() *config.Config {
	return &config.Config{
		Provider:       "gemini",
		GIFSpeedFactor: 2,
		GoogleAPIKey:   "g-test",
		OpenAIAPIKey:   "sk-test",
	}
}

func postRun(t *testing.T, s *Server, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/run", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestIndexShowsTaskForm(t *testing.T) {
	s := NewServer(testConfig(), &fakeEngine{}, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Enter your task")
	assert.Contains(t, body, "Use Vision")
	assert.Contains(t, body, "Use Browser Instance")
}

func TestRunRejectsEmptyTask(t *testing.T) {
	engine := &fakeEngine{history: history.New(history.Records{})}
	s := NewServer(testConfig(), engine, nil)
	rec := postRun(t, s, url.Values{"task": {""}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please enter a task first!")
}

func TestRunRendersOutcome(t *testing.T) {
	engine := &fakeEngine{history: history.New(history.Records{
		ActionNames:      []string{"navigate", "done"},
		URLs:             []string{"https://example.com"},
		ExtractedContent: []string{"hello", "world"},
	})}
	s := NewServer(testConfig(), engine, nil)
	rec := postRun(t, s, url.Values{"task": {"say hello"}})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Task completed successfully: world")
	assert.Contains(t, body, "Step 2")
	assert.Contains(t, body, history.Placeholder)
	assert.Contains(t, body, "Debug View")
	assert.Contains(t, body, "action_names")
}

func TestRunRendersEngineFailure(t *testing.T) {
	engine := &fakeEngine{err: errors.New("browser crashed")}
	s := NewServer(testConfig(), engine, nil)
	rec := postRun(t, s, url.Values{"task": {"do something"}})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Task failed: browser crashed")
	assert.NotContains(t, body, "Step 1")
}

func TestRunRejectsUnknownProvider(t *testing.T) {
	s := NewServer(testConfig(), &fakeEngine{}, nil)
	rec := postRun(t, s, url.Values{"task": {"x"}, "provider": {"claude"}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown provider")
}

func TestGIFUnknownID(t *testing.T) {
	s := NewServer(testConfig(), &fakeEngine{}, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/gif?id=nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
