package geminiservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// SDKClient is the generative-ai-go flavoured Gemini client.
type SDKClient struct {
	client *genai.Client
	model  string
}

// NewSDKClient dials the Gemini API with apiKey. Close releases the client.
func NewSDKClient(ctx context.Context, apiKey, model string) (*SDKClient, error) {
	if model == "" {
		model = defaultGeminiModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &SDKClient{client: client, model: model}, nil
}

// Complete runs one GenerateContent call on a freshly configured model.
func (c *SDKClient) Complete(ctx context.Context, cr CompletionRequest) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(cr.Temperature)
	if cr.TopP > 0 {
		m.SetTopP(cr.TopP)
	}
	if cr.MaxTokens > 0 {
		m.SetMaxOutputTokens(cr.MaxTokens)
	}
	if cr.System != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(cr.System)}}
	}
	if cr.JSONMode {
		m.ResponseMIMEType = structuredMimeType
		m.ResponseSchema = toGenaiSchema(cr.Schema)
	}

	resp, err := m.GenerateContent(ctx, genai.Text(cr.User))
	if err != nil {
		return "", classifySDKError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no content generated", ErrTransport)
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: generated content is not text", ErrTransport)
	}
	return sb.String(), nil
}

// Close closes the underlying Gemini client.
func (c *SDKClient) Close() error {
	return c.client.Close()
}

func classifySDKError(err error) error {
	code := 0
	var ae *apierror.APIError
	var ge *googleapi.Error
	switch {
	case errors.As(err, &ae):
		code = ae.HTTPCode()
	case errors.As(err, &ge):
		code = ge.Code
	}
	if code == http.StatusUnauthorized || code == http.StatusForbidden {
		return fmt.Errorf("%w: %w", ErrAuth, err)
	}
	return fmt.Errorf("%w: %w", ErrTransport, err)
}

var genaiTypes = map[string]genai.Type{
	"OBJECT":  genai.TypeObject,
	"ARRAY":   genai.TypeArray,
	"STRING":  genai.TypeString,
	"NUMBER":  genai.TypeNumber,
	"INTEGER": genai.TypeInteger,
	"BOOLEAN": genai.TypeBoolean,
}

// toGenaiSchema converts the REST schema to the SDK's representation.
func toGenaiSchema(s *GeminiSchema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        genaiTypes[strings.ToUpper(s.Type)],
		Format:      s.Format,
		Description: s.Description,
		Enum:        s.Enum,
		Required:    s.Required,
		Items:       toGenaiSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for k, v := range s.Properties {
			out.Properties[k] = toGenaiSchema(v)
		}
	}
	return out
}
