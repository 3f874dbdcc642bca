package agent

import (
	"context"
	"strings"

	"github.com/btjones-me/llm-browser-use/history"
	"github.com/btjones-me/llm-browser-use/llm"
	"go.uber.org/zap"
)

// Invoker wraps the engine call in a synchronous boundary. One invocation
// runs at a time from the caller's perspective; the caller blocks until the
// engine completes or fails. No timeout is imposed here — a caller that
// wants a bound puts a deadline on the context.
type Invoker struct {
	engine           Engine
	reconcileOptions history.ReconcileOptions
	logger           *zap.Logger
}

func NewInvoker(engine Engine, reconcileOptions history.ReconcileOptions, logger *zap.Logger) *Invoker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Invoker{
		engine:           engine,
		reconcileOptions: reconcileOptions,
		logger:           logger,
	}
}

// Invoke validates the task, runs the engine exactly once, and reconciles
// the returned bundle. An empty task yields *ValidationError without
// touching the engine; an engine error yields *RunFailure carrying its
// message verbatim. No steps are rendered on failure — if the engine never
// returned a bundle there is nothing to reconcile.
func (inv *Invoker) Invoke(ctx context.Context, options Options) (*history.Outcome, error) {
	if strings.TrimSpace(options.Task) == "" {
		return nil, &ValidationError{Message: "task description must not be empty"}
	}
	if numTokens, err := llm.CountTokens(options.Task); err == nil {
		inv.logger.Info("invoking agent run",
			zap.String("task", options.Task),
			zap.Int("task_tokens", numTokens),
			zap.Bool("use_vision", options.UseVision),
			zap.Bool("own_browser_session", options.Session != nil),
		)
	}
	h, err := inv.engine.Run(ctx, options)
	if err != nil {
		inv.logger.Warn("agent run failed", zap.Error(err))
		return nil, &RunFailure{Err: err}
	}
	outcome := history.ReconcileWithOptions(h, inv.reconcileOptions)
	inv.logger.Info("agent run completed",
		zap.Bool("succeeded", outcome.Succeeded),
		zap.Int("steps", len(outcome.Steps)),
	)
	return outcome, nil
}
