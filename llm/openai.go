package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const OPENAI_API_URL = "https://api.openai.com/v1"

// Context window of the supported OpenAI chat models, in tokens.
const openaiMaxContextTokens = 128000

type OpenAIModel struct {
	modelID ChatModelID
	apiKey  string
}

func NewOpenAIChatModel(modelID ChatModelID, apiKey string) ChatModel {
	return &OpenAIModel{modelID: modelID, apiKey: apiKey}
}

func (m *OpenAIModel) ID() ChatModelID {
	return m.modelID
}

func (m *OpenAIModel) Message(ctx context.Context, messages []*Message, options *MessageOptions) (*Message, error) {
	if numTokens, err := CountMessageTokens(messages); err != nil {
		return nil, fmt.Errorf("failed to count prompt tokens: %w", err)
	} else if numTokens > openaiMaxContextTokens {
		return nil, &Error{Message: fmt.Sprintf("max context length exceeded: %d > %d tokens", numTokens, openaiMaxContextTokens)}
	}
	args := m.buildArgs(messages, options)
	if response, err := openaiAPIRequest(ctx, m.apiKey, "/chat/completions", args); err != nil {
		return nil, err
	} else {
		return parseOpenAIResponse(response)
	}
}

func (m *OpenAIModel) buildArgs(messages []*Message, options *MessageOptions) map[string]any {
	jsonMessages := []map[string]string{}
	for _, message := range messages {
		jsonMessages = append(jsonMessages, map[string]string{
			"role":    string(message.Role),
			"content": message.Content,
		})
	}
	args := map[string]any{
		"model":    m.modelID,
		"messages": jsonMessages,
	}
	if options != nil {
		args["temperature"] = options.Temperature
		if options.MaxTokens > 0 {
			args["max_tokens"] = options.MaxTokens
		}
		if len(options.StopSequences) > 0 {
			args["stop"] = options.StopSequences
		}
	}
	return args
}

func parseOpenAIResponse(response map[string]any) (*Message, error) {
	if choices, ok := response["choices"].([]any); !ok {
		return nil, &Error{Message: "invalid response, no choices"}
	} else if len(choices) != 1 {
		return nil, &Error{Message: "invalid response, expected 1 choice"}
	} else if choice, ok := choices[0].(map[string]any); !ok {
		return nil, &Error{Message: "invalid response, choice is not a map"}
	} else if message, ok := choice["message"].(map[string]any); !ok {
		return nil, &Error{Message: "invalid response, message is not a map"}
	} else if content, ok := message["content"].(string); !ok {
		return nil, &Error{Message: "invalid response, no content"}
	} else {
		return &Message{
			Role:    MessageRoleAssistant,
			Content: content,
		}, nil
	}
}

func openaiAPIRequest(ctx context.Context, apiKey string, endpoint string, args map[string]any) (map[string]any, error) {
	if encoded, err := json.Marshal(args); err != nil {
		return nil, err
	} else if request, err := http.NewRequestWithContext(ctx, "POST", OPENAI_API_URL+endpoint, bytes.NewBuffer(encoded)); err != nil {
		return nil, err
	} else {
		request.Header.Set("Content-Type", "application/json; charset=utf-8")
		request.Header.Set("Authorization", "Bearer "+apiKey)
		client := &http.Client{}
		response, err := client.Do(request)
		if err != nil {
			return nil, err
		}
		defer response.Body.Close()
		responseBody, err := io.ReadAll(response.Body)
		if err != nil {
			return nil, err
		}
		result := map[string]any{}
		if err := json.Unmarshal(responseBody, &result); err != nil {
			return nil, err
		}
		if apiErr, ok := result["error"].(map[string]any); ok {
			responseErr := Error{Message: "OpenAI error"}
			if value, ok := apiErr["code"].(string); ok {
				responseErr.Code = value
			}
			if value, ok := apiErr["message"].(string); ok {
				responseErr.Message = value
			}
			return nil, &responseErr
		}
		return result, nil
	}
}
