package geminiservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	defaultGroqURL   = "https://api.groq.com/openai/v1/chat/completions"
	defaultGroqModel = "llama-3.3-70b-versatile"

	// json_object mode only accepts a top-level object.
	groqObjectWrapper = "\n\nReturn a JSON object with a single key \"dishes\" whose value is the array."
)

// GroqClient calls an OpenAI-compatible chat completions endpoint.
type GroqClient struct {
	APIKey     string
	Model      string
	URL        string
	HTTPClient *http.Client
}

// NewGroqClient returns a client for model (default llama-3.3-70b-versatile).
func NewGroqClient(apiKey, model string) *GroqClient {
	if model == "" {
		model = defaultGroqModel
	}
	return &GroqClient{
		APIKey:     apiKey,
		Model:      model,
		URL:        defaultGroqURL,
		HTTPClient: &http.Client{Timeout: requestTimeout},
	}
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqRequest struct {
	Model          string            `json:"model"`
	Messages       []groqMessage     `json:"messages"`
	Temperature    float32           `json:"temperature"`
	TopP           float32           `json:"top_p,omitempty"`
	MaxTokens      int32             `json:"max_tokens,omitempty"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

// Complete sends one chat completion request.
func (c *GroqClient) Complete(ctx context.Context, cr CompletionRequest) (string, error) {
	system := cr.System
	body := groqRequest{
		Model:       c.Model,
		Temperature: cr.Temperature,
		TopP:        cr.TopP,
		MaxTokens:   cr.MaxTokens,
	}
	if cr.JSONMode {
		system += groqObjectWrapper
		body.ResponseFormat = map[string]string{"type": "json_object"}
	}
	if system != "" {
		body.Messages = append(body.Messages, groqMessage{Role: "system", Content: system})
	}
	body.Messages = append(body.Messages, groqMessage{Role: "user", Content: cr.User})

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to send request: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", statusError("groq", resp.StatusCode, string(bodyBytes))
	}

	var groqResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&groqResp); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %w", ErrTransport, err)
	}
	if len(groqResp.Choices) == 0 {
		return "", fmt.Errorf("%w: no content generated", ErrTransport)
	}
	return groqResp.Choices[0].Message.Content, nil
}
