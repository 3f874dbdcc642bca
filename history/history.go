// Package history holds the result bundle of one agent run and the
// reconciliation of its unevenly-sized result lists into ordered per-step
// records for display.
package history

// ModelAction is the opaque record of a model-chosen action and its
// structured parameters. Its shape is owned by the agent engine.
type ModelAction map[string]any

// Records carries the six result collections an agent run produces, keyed
// by the engine's documented collection names. The positional lists (urls,
// action_names, extracted_content, model_actions, screenshots) are not
// guaranteed to be equal length. Errors are a presence signal plus text and
// are not positionally aligned with the other lists.
type Records struct {
	URLs             []string      `json:"urls"`
	Screenshots      []string      `json:"screenshots"`
	ActionNames      []string      `json:"action_names"`
	ExtractedContent []string      `json:"extracted_content"`
	ModelActions     []ModelAction `json:"model_actions"`
	Errors           []string      `json:"errors"`
}

// History is the immutable result bundle of one agent run. Accessors return
// the underlying lists; callers must not mutate them.
type History struct {
	records Records
}

func New(records Records) *History {
	return &History{records: records}
}

func (h *History) URLs() []string {
	return h.records.URLs
}

func (h *History) Screenshots() []string {
	return h.records.Screenshots
}

func (h *History) ActionNames() []string {
	return h.records.ActionNames
}

func (h *History) ExtractedContent() []string {
	return h.records.ExtractedContent
}

func (h *History) ModelActions() []ModelAction {
	return h.records.ModelActions
}

func (h *History) Errors() []string {
	return h.records.Errors
}
