package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const GEMINI_API_URL = "https://generativelanguage.googleapis.com/v1beta"

type GeminiModel struct {
	modelID ChatModelID
	apiKey  string
}

func NewGeminiChatModel(modelID ChatModelID, apiKey string) ChatModel {
	return &GeminiModel{modelID: modelID, apiKey: apiKey}
}

func (m *GeminiModel) ID() ChatModelID {
	return m.modelID
}

func (m *GeminiModel) Message(ctx context.Context, messages []*Message, options *MessageOptions) (*Message, error) {
	args := m.buildArgs(messages, options)
	endpoint := fmt.Sprintf("/models/%s:generateContent", m.modelID)
	if response, err := geminiAPIRequest(ctx, m.apiKey, endpoint, args); err != nil {
		return nil, err
	} else {
		return parseGeminiResponse(response)
	}
}

// buildArgs maps chat messages onto the generateContent request shape. The
// Gemini API has no system role; system messages are folded into the user
// turn that follows them.
func (m *GeminiModel) buildArgs(messages []*Message, options *MessageOptions) map[string]any {
	contents := []map[string]any{}
	pendingSystemText := ""
	for _, message := range messages {
		switch message.Role {
		case MessageRoleSystem:
			pendingSystemText += message.Content + "\n"
		case MessageRoleAssistant:
			contents = append(contents, map[string]any{
				"role":  "model",
				"parts": []map[string]string{{"text": message.Content}},
			})
		default:
			contents = append(contents, map[string]any{
				"role":  "user",
				"parts": []map[string]string{{"text": pendingSystemText + message.Content}},
			})
			pendingSystemText = ""
		}
	}
	args := map[string]any{"contents": contents}
	if options != nil {
		generationConfig := map[string]any{"temperature": options.Temperature}
		if options.MaxTokens > 0 {
			generationConfig["maxOutputTokens"] = options.MaxTokens
		}
		if len(options.StopSequences) > 0 {
			generationConfig["stopSequences"] = options.StopSequences
		}
		args["generationConfig"] = generationConfig
	}
	return args
}

func parseGeminiResponse(response map[string]any) (*Message, error) {
	if candidates, ok := response["candidates"].([]any); !ok || len(candidates) == 0 {
		return nil, &Error{Message: "invalid response, no candidates"}
	} else if candidate, ok := candidates[0].(map[string]any); !ok {
		return nil, &Error{Message: "invalid response, candidate is not a map"}
	} else if content, ok := candidate["content"].(map[string]any); !ok {
		return nil, &Error{Message: "invalid response, candidate has no content"}
	} else if parts, ok := content["parts"].([]any); !ok || len(parts) == 0 {
		return nil, &Error{Message: "invalid response, content has no parts"}
	} else if part, ok := parts[0].(map[string]any); !ok {
		return nil, &Error{Message: "invalid response, part is not a map"}
	} else if text, ok := part["text"].(string); !ok {
		return nil, &Error{Message: "invalid response, part has no text"}
	} else {
		return &Message{
			Role:    MessageRoleAssistant,
			Content: text,
		}, nil
	}
}

func geminiAPIRequest(ctx context.Context, apiKey string, endpoint string, args map[string]any) (map[string]any, error) {
	if encoded, err := json.Marshal(args); err != nil {
		return nil, err
	} else if request, err := http.NewRequestWithContext(ctx, "POST", GEMINI_API_URL+endpoint, bytes.NewBuffer(encoded)); err != nil {
		return nil, err
	} else {
		request.Header.Set("Content-Type", "application/json; charset=utf-8")
		request.Header.Set("x-goog-api-key", apiKey)
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
			responseErr := Error{Message: "Gemini error"}
			if value, ok := apiErr["status"].(string); ok {
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
