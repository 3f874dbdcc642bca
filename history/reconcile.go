package history

import (
	"github.com/btjones-me/llm-browser-use/utils/jsonx"
	"github.com/btjones-me/llm-browser-use/utils/slicesx"
)

const (
	// Placeholder marks a step field whose source list was shorter than the
	// reconciled step count.
	Placeholder = "N/A"
	// NoResult is the summary of a run that extracted no content.
	NoResult = "No result"
	// ActionDone is the action name an engine records when it considers the
	// task complete.
	ActionDone = "done"
)

// Step is one reconciled unit of displayed progress, aligned by position
// across the run's result lists.
type Step struct {
	Index       int    `json:"index"`
	Action      string `json:"action"`
	URL         string `json:"url"`
	Extracted   string `json:"extracted"`
	ModelAction string `json:"model_action"`
}

// Outcome is the display-ready view of a run: an overall verdict, a summary
// line, the ordered steps, and the raw bundle for diagnostics.
type Outcome struct {
	Succeeded bool
	Summary   string
	Steps     []Step
	Debug     *History
}

type ReconcileOptions struct {
	// StrictErrors fails the run on any recorded error even when a "done"
	// action is present. Off by default: a run that reached "done" reports
	// success regardless of errors recorded along the way, matching the
	// engine's own notion of completion.
	StrictErrors bool
}

// Reconcile builds an Outcome from a run's result bundle with default
// options. It is pure and total: the same bundle always yields the same
// outcome, and no input can make it fail.
func Reconcile(h *History) *Outcome {
	return ReconcileWithOptions(h, ReconcileOptions{})
}

// ReconcileWithOptions aligns the bundle's positional lists into one ordered
// list of steps. The step count is the maximum length across action names,
// extracted content, model actions, and urls; a list too short to cover a
// given index contributes Placeholder for its field. Order is preserved
// exactly: step i corresponds to positional index i across every list.
func ReconcileWithOptions(h *History, options ReconcileOptions) *Outcome {
	r := h.records
	stepCount := max(len(r.ActionNames), len(r.ExtractedContent), len(r.ModelActions), len(r.URLs))
	steps := make([]Step, stepCount)
	for i := 0; i < stepCount; i++ {
		steps[i] = Step{
			Index:       i + 1,
			Action:      slicesx.At(r.ActionNames, i, Placeholder),
			URL:         slicesx.At(r.URLs, i, Placeholder),
			Extracted:   slicesx.At(r.ExtractedContent, i, Placeholder),
			ModelAction: modelActionAt(r.ModelActions, i),
		}
	}
	succeeded := len(r.Errors) == 0
	if !succeeded && !options.StrictErrors && slicesx.Contains(r.ActionNames, ActionDone) {
		succeeded = true
	}
	summary := NoResult
	if len(r.ExtractedContent) > 0 {
		summary = r.ExtractedContent[len(r.ExtractedContent)-1]
	}
	return &Outcome{
		Succeeded: succeeded,
		Summary:   summary,
		Steps:     steps,
		Debug:     h,
	}
}

func modelActionAt(actions []ModelAction, idx int) string {
	if idx < 0 || idx >= len(actions) {
		return Placeholder
	}
	text, err := jsonx.StructToString(actions[idx])
	if err != nil {
		return Placeholder
	}
	return text
}
