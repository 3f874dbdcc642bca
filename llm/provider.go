package llm

import (
	"fmt"
)

// Provider identifies one of the two supported LLM backends.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	case ProviderGemini:
		return ProviderGemini, nil
	default:
		return "", fmt.Errorf("unknown provider %q; must be one of [%q, %q]", s, ProviderOpenAI, ProviderGemini)
	}
}

type ClientOptions struct {
	OpenAIAPIKey string
	GoogleAPIKey string
}

// NewChatModel resolves a provider key to a configured client.
func NewChatModel(provider Provider, options *ClientOptions) (ChatModel, error) {
	if options == nil {
		options = &ClientOptions{}
	}
	switch provider {
	case ProviderOpenAI:
		if options.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY must be set for the %s provider", provider)
		}
		return NewOpenAIChatModel(ChatModelGPT4o, options.OpenAIAPIKey), nil
	case ProviderGemini:
		if options.GoogleAPIKey == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY must be set for the %s provider", provider)
		}
		return NewGeminiChatModel(ChatModelGeminiFlash, options.GoogleAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
