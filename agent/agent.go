// Package agent is the boundary to the external automation engine: it
// bundles the collaborator handles a run needs, invokes the engine exactly
// once, and turns the engine's result contract into a display-ready outcome.
package agent

import (
	"context"

	"github.com/btjones-me/llm-browser-use/browser"
	"github.com/btjones-me/llm-browser-use/history"
	"github.com/btjones-me/llm-browser-use/llm"
)

// HistoryGIFPath is the well-known file the engine may write a replay GIF
// to as a side effect of a run. This package never manages the file; it is
// observed read-only after a run completes or fails.
const HistoryGIFPath = "agent_history.gif"

// Engine runs one natural-language task end to end and reports what
// happened as a history bundle. Implementations live outside this
// repository and are treated as black boxes; the planning loop, browser
// driving, and action execution are theirs.
type Engine interface {
	Run(ctx context.Context, options Options) (*history.History, error)
}

// Options carries the collaborator handles and switches for one run.
type Options struct {
	// Task is the natural-language description of what to do.
	Task string
	// Model is the configured LLM client the engine plans with.
	Model llm.ChatModel
	// UseVision lets the engine send screenshots to the model.
	UseVision bool
	// Session is an optional pre-existing browser session; nil lets the
	// engine manage its own browser.
	Session *browser.Session
}
