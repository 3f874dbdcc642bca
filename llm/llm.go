package llm

import (
	"context"
)

type ChatModelID string

const (
	ChatModelGPT4o       ChatModelID = "gpt-4o"
	ChatModelGeminiFlash ChatModelID = "gemini-2.0-flash-exp"
)

type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

type MessageRole string

const (
	MessageRoleSystem    MessageRole = "system"
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

type MessageOptions struct {
	Temperature   float32  `json:"temperature"`
	MaxTokens     int      `json:"max_tokens"`
	StopSequences []string `json:"stop_sequences"`
}

// ChatModel is the configured client handle handed to the agent engine. The
// engine treats it as opaque; this package only selects and constructs it.
type ChatModel interface {
	ID() ChatModelID
	Message(ctx context.Context, messages []*Message, options *MessageOptions) (*Message, error)
}

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
