package matching

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is used when GEMINI_MODEL is not set.
const DefaultModel = "gemini-2.5-flash"

// Config parameterizes the Gemini client. BaseURL and HTTPClient exist so
// tests can point the client at a stub server; leave them zero in production.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Client wraps the Gemini SDK for the one call this service makes.
type Client struct {
	genai *genai.Client
	model string
}

// New builds a Gemini-backed client. The API key must be non-empty; callers
// decide what a missing key means (the HTTP layer reports it per request).
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("matching: empty API key")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("matching: create gemini client: %w", err)
	}
	return &Client{genai: gc, model: model}, nil
}

// MatchCandidates issues exactly one generateContent call carrying the
// evaluator instruction, the composed query and the result schema, and
// returns the generated text with markdown fences stripped. Failures come
// back as *Error so the boundary can log the detail and relay the message.
func (c *Client) MatchCandidates(ctx context.Context, req *Request) (string, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(buildQuery(req)), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction(), genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    resultSchema(),
	})
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &Error{
				Kind:    KindUpstream,
				Message: fmt.Sprintf("Gemini API error: %d %s", apiErr.Code, apiErr.Status),
				Err:     err,
			}
		}
		return "", &Error{Kind: KindUpstream, Message: "Gemini API request failed", Err: err}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &Error{Kind: KindEmptyResponse, Message: "No response generated by Gemini"}
	}
	return CleanJSON(text), nil
}
