// Package geminiservice talks to hosted chat-completion models and turns
// their replies into dish drafts for one meal.
package geminiservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// --- Gemini API Configuration ---
const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/"
	defaultGeminiModel   = "gemini-2.5-flash"
	requestTimeout       = 60 * time.Second
	structuredMimeType   = "application/json"
)

/* =================================================================================
								FAILURE TAXONOMY
=================================================================================*/

var (
	ErrTransport         = errors.New("llm transport error")
	ErrAuth              = errors.New("llm auth error")
	ErrSchemaViolation   = errors.New("llm schema violation after retry")
	ErrRateLimited       = errors.New("llm rate limited")
	ErrCacheMissDisabled = errors.New("llm disabled and cache miss")
)

// Kind names the failure for advisories and logs.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrAuth):
		return "auth-error"
	case errors.Is(err, ErrRateLimited):
		return "rate-limited"
	case errors.Is(err, ErrSchemaViolation):
		return "schema-violation"
	case errors.Is(err, ErrCacheMissDisabled):
		return "cache-miss-and-disabled"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "transport-error"
	}
}

func statusError(provider string, code int, body string) error {
	kind := ErrTransport
	if code == http.StatusUnauthorized || code == http.StatusForbidden {
		kind = ErrAuth
	}
	return fmt.Errorf("%w: %s returned status %d: %s", kind, provider, code, strings.TrimSpace(body))
}

/* =================================================================================
								CHAT COMPLETION
=================================================================================*/

// CompletionRequest carries everything a provider needs for one call.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float32
	TopP        float32
	MaxTokens   int32
	JSONMode    bool
	Schema      *GeminiSchema // honoured by providers that support structured output
}

// ChatCompleter is a hosted chat-completion model. Implementations make
// exactly one call per Complete and never retry.
type ChatCompleter interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// --- Structs for Gemini API Request/Response ---

type GeminiPayload struct {
	Contents          []GeminiContent   `json:"contents"`
	SystemInstruction *GeminiContent    `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text,omitempty"`
}

type GenerationConfig struct {
	Temperature      float32       `json:"temperature"`
	TopP             float32       `json:"topP,omitempty"`
	MaxOutputTokens  int32         `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string        `json:"responseMimeType,omitempty"`
	ResponseSchema   *GeminiSchema `json:"responseSchema,omitempty"`
}

type GeminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// GeminiClient calls the generateContent REST endpoint directly.
type GeminiClient struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// NewGeminiClient returns a REST client for model (default gemini-2.5-flash).
func NewGeminiClient(apiKey, model string) *GeminiClient {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiClient{
		APIKey:     apiKey,
		Model:      model,
		BaseURL:    defaultGeminiBaseURL,
		HTTPClient: &http.Client{Timeout: requestTimeout},
	}
}

// Complete sends one generateContent request and returns the text of the
// first candidate.
func (c *GeminiClient) Complete(ctx context.Context, cr CompletionRequest) (string, error) {
	payload := GeminiPayload{
		Contents: []GeminiContent{
			{Role: "user", Parts: []GeminiPart{{Text: cr.User}}},
		},
		GenerationConfig: &GenerationConfig{
			Temperature:     cr.Temperature,
			TopP:            cr.TopP,
			MaxOutputTokens: cr.MaxTokens,
		},
	}
	if cr.System != "" {
		payload.SystemInstruction = &GeminiContent{Parts: []GeminiPart{{Text: cr.System}}}
	}
	if cr.JSONMode {
		payload.GenerationConfig.ResponseMimeType = structuredMimeType
		payload.GenerationConfig.ResponseSchema = cr.Schema
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := strings.TrimRight(c.BaseURL, "/") + "/" + c.Model + ":generateContent?key=" + c.APIKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", statusError("gemini", resp.StatusCode, string(body))
	}

	var geminiResp GeminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %w", ErrTransport, err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content found in Gemini response", ErrTransport)
	}

	var sb strings.Builder
	for _, p := range geminiResp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
