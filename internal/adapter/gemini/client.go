package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"page-assist/internal/config"
	"page-assist/internal/domain"
	"page-assist/internal/logger"

	"go.uber.org/zap"
)

// Client calls the Gemini generateContent REST endpoint. The API key travels
// as the "key" query parameter.
type Client struct {
	endpoint   string
	apiKey     string
	generation config.GenerationConfig
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Gemini client. The default HTTP client has no timeout;
// a call lasts until the transport resolves or the context ends.
func NewClient(cfg config.GeminiConfig, gen config.GenerationConfig, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, fmt.Errorf("gemini endpoint cannot be empty")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("gemini API key cannot be empty")
	}
	c := &Client{
		endpoint:   strings.TrimSpace(cfg.Endpoint),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		generation: gen,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ErrEmptyResponse is returned when a 2xx reply carries no candidate text.
var ErrEmptyResponse = errors.New("empty response from Gemini")

// Generate sends prompt and returns candidates[0].content.parts[0].text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     c.generation.Temperature,
			TopK:            c.generation.TopK,
			TopP:            c.generation.TopP,
			MaxOutputTokens: c.generation.MaxOutputTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode Gemini request: %w", err)
	}

	reqURL, err := c.requestURL()
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build Gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Get().Debug("Calling Gemini", zap.Int("prompt_chars", len(prompt)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Get().Error("Error calling Gemini API", zap.Error(err))
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read Gemini response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := statusText(resp)
		var apiErr errorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		logger.Get().Error("Gemini API returned an error",
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg))
		return "", &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("failed to decode Gemini response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

func (c *Client) requestURL() (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid Gemini endpoint %q: %w", c.endpoint, err)
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// statusText is the transport's description of the status, e.g. "Not Found".
func statusText(resp *http.Response) string {
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return resp.Status
}

// APIError is a non-2xx reply from the endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error: %s", e.Message)
}

// Static assertion to ensure Client implements domain.Generator
var _ domain.Generator = (*Client)(nil)
