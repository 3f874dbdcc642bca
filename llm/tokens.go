package llm

import (
	"fmt"

	"github.com/tiktoken-go/tokenizer"
)

// CountTokens counts BPE tokens under the cl100k_base encoding, the one the
// supported OpenAI chat models use.
func CountTokens(text string) (int, error) {
	codec, err := tokenizer.Get(tokenizer.Cl100kBase)
	if err != nil {
		return 0, fmt.Errorf("failed to load tokenizer: %w", err)
	}
	ids, _, err := codec.Encode(text)
	if err != nil {
		return 0, fmt.Errorf("failed to encode text: %w", err)
	}
	return len(ids), nil
}

func CountMessageTokens(messages []*Message) (int, error) {
	total := 0
	for _, message := range messages {
		numTokens, err := CountTokens(message.Content)
		if err != nil {
			return 0, err
		}
		total += numTokens
	}
	return total, nil
}
