// Package replayengine is an agent.Engine that replays a previously
// recorded run from a history JSON file. It drives no browser and calls no
// model, which makes it the engine of choice for demos and tests.
package replayengine

import (
	"context"
	"fmt"

	"github.com/btjones-me/llm-browser-use/agent"
	"github.com/btjones-me/llm-browser-use/history"
	"github.com/btjones-me/llm-browser-use/utils/iox"
	"go.uber.org/zap"
)

type Engine struct {
	path   string
	logger *zap.Logger
}

func New(path string, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{path: path, logger: logger}
}

func (e *Engine) Run(ctx context.Context, options agent.Options) (*history.History, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	modelID := "none"
	if options.Model != nil {
		modelID = string(options.Model.ID())
	}
	e.logger.Info("replaying recorded run",
		zap.String("path", e.path),
		zap.String("task", options.Task),
		zap.String("model", modelID),
		zap.Bool("use_vision", options.UseVision),
	)
	data, err := iox.ReadFile(e.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recorded run %s: %w", e.path, err)
	}
	h, err := history.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode recorded run %s: %w", e.path, err)
	}
	return h, nil
}
