// Package web serves the demonstration UI: a task form, the reconciled
// step list for the last run, a collapsible raw-history view, and the
// sped-up replay GIF.
package web

import (
	"fmt"
	"html/template"
	"net/http"
	"sync"

	"github.com/btjones-me/llm-browser-use/agent"
	"github.com/btjones-me/llm-browser-use/browser"
	"github.com/btjones-me/llm-browser-use/config"
	"github.com/btjones-me/llm-browser-use/gifx"
	"github.com/btjones-me/llm-browser-use/history"
	"github.com/btjones-me/llm-browser-use/llm"
	"github.com/btjones-me/llm-browser-use/render"
	"github.com/btjones-me/llm-browser-use/utils/iox"
	"github.com/google/uuid"
	"github.com/yosssi/gohtml"
	"go.uber.org/zap"
)

type Server struct {
	cfg      *config.Config
	engine   agent.Engine
	renderer *render.Renderer
	logger   *zap.Logger
	mux      *http.ServeMux

	// runMu serializes runs: exactly one task execution in flight.
	runMu sync.Mutex

	mu   sync.Mutex
	gifs map[string][]byte
}

func NewServer(cfg *config.Config, engine agent.Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:      cfg,
		engine:   engine,
		renderer: render.NewRenderer(),
		logger:   logger,
		mux:      http.NewServeMux(),
		gifs:     map[string][]byte{},
	}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/run", s.handleRun)
	s.mux.HandleFunc("/gif", s.handleGIF)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) ListenAndServe() error {
	s.logger.Info("serving browser use agent UI", zap.String("addr", s.cfg.Addr))
	return http.ListenAndServe(s.cfg.Addr, s.mux)
}

type formView struct {
	Provider string
	Error    string
}

type stepView struct {
	history.Step
	ExtractedHTML string
}

type runView struct {
	Banner    string
	Succeeded bool
	RunID     string
	Steps     []stepView
	DebugJSON string
	GIFID     string
	GIFLabel  string
	GIFError  string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.renderTemplate(w, indexTemplate, formView{Provider: s.cfg.Provider})
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	if !s.runMu.TryLock() {
		http.Error(w, "a run is already in progress", http.StatusConflict)
		return
	}
	defer s.runMu.Unlock()

	task := r.FormValue("task")
	if task == "" {
		s.renderTemplate(w, indexTemplate, formView{
			Provider: s.cfg.Provider,
			Error:    "Please enter a task first!",
		})
		return
	}

	runID := uuid.NewString()
	logger := s.logger.With(zap.String("run_id", runID))

	providerKey := r.FormValue("provider")
	if providerKey == "" {
		providerKey = s.cfg.Provider
	}
	provider, err := llm.ParseProvider(providerKey)
	if err != nil {
		s.renderTemplate(w, indexTemplate, formView{Provider: s.cfg.Provider, Error: err.Error()})
		return
	}
	model, err := llm.NewChatModel(provider, &llm.ClientOptions{
		OpenAIAPIKey: s.cfg.OpenAIAPIKey,
		GoogleAPIKey: s.cfg.GoogleAPIKey,
	})
	if err != nil {
		s.renderTemplate(w, indexTemplate, formView{Provider: s.cfg.Provider, Error: err.Error()})
		return
	}

	options := agent.Options{
		Task:      task,
		Model:     model,
		UseVision: r.FormValue("vision") != "",
	}
	if r.FormValue("use_browser") != "" {
		session, err := browser.NewSession(r.Context(), &browser.Options{
			RunHeadful: true,
			ChromePath: s.cfg.ChromePath,
		}, logger)
		if err != nil {
			s.renderTemplate(w, indexTemplate, formView{Provider: s.cfg.Provider, Error: fmt.Sprintf("failed to start browser session: %v", err)})
			return
		}
		defer session.Close()
		options.Session = session
	}

	invoker := agent.NewInvoker(s.engine, history.ReconcileOptions{StrictErrors: s.cfg.StrictErrors}, logger)
	outcome, err := invoker.Invoke(r.Context(), options)

	view := runView{RunID: runID}
	if err != nil {
		view.Banner = s.renderer.FailureBanner(err)
		view.GIFLabel = "Task execution before failure"
	} else {
		view.Banner = s.renderer.Banner(outcome)
		view.Succeeded = outcome.Succeeded
		view.GIFLabel = "Task execution"
		view.Steps = s.stepViews(outcome)
		if debug, err := s.renderer.Debug(outcome); err == nil {
			view.DebugJSON = debug
		}
	}
	s.attachGIF(&view, logger)
	s.renderTemplate(w, resultTemplate, view)
}

func (s *Server) stepViews(outcome *history.Outcome) []stepView {
	views := make([]stepView, len(outcome.Steps))
	for i, step := range outcome.Steps {
		views[i] = stepView{Step: step}
		if render.LooksLikeHTML(step.Extracted) {
			views[i].ExtractedHTML = gohtml.Format(step.Extracted)
		}
	}
	return views
}

// attachGIF speeds up and stages the replay GIF when the engine left one
// behind. A decode failure is isolated: the outcome renders regardless,
// with the failure noted next to where the GIF would be.
func (s *Server) attachGIF(view *runView, logger *zap.Logger) {
	if !iox.FileExists(agent.HistoryGIFPath) {
		return
	}
	data, err := gifx.SpeedUp(agent.HistoryGIFPath, s.cfg.GIFSpeedFactor)
	if err != nil {
		logger.Warn("failed to speed up history gif", zap.Error(err))
		view.GIFError = fmt.Sprintf("Could not process the replay GIF: %v", err)
		return
	}
	s.mu.Lock()
	s.gifs[view.RunID] = data
	s.mu.Unlock()
	view.GIFID = view.RunID
}

func (s *Server) handleGIF(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	s.mu.Lock()
	data, ok := s.gifs[id]
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/gif")
	_, _ = w.Write(data)
}

func (s *Server) renderTemplate(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("failed to render template", zap.Error(err))
	}
}
