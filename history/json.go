package history

import (
	"encoding/json"
	"fmt"
)

// Marshal encodes the bundle as JSON keyed by the engine's documented
// collection names (urls, screenshots, action_names, extracted_content,
// model_actions, errors). The encoding is what recorded-run files contain.
func Marshal(h *History) ([]byte, error) {
	data, err := json.MarshalIndent(h.records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal history: %w", err)
	}
	return data, nil
}

func Unmarshal(data []byte) (*History, error) {
	var records Records
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history: %w", err)
	}
	return New(records), nil
}
