// Package gemini implements the client side of the generative-AI
// collaborator contract: structured profile + score data goes out as a
// prompt, a JSON object with four string/string-array fields comes back.
// The collaborator is advisory only; every failure path degrades to a
// static fallback so scoring results are never affected.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultRequestTimeout = 30 * time.Second

// Config holds client construction parameters. The client is always an
// explicit dependency of whatever component performs the call — there is no
// package-level singleton.
type Config struct {
	BaseURL string // e.g. https://generativelanguage.googleapis.com
	Model   string // e.g. gemini-3-flash-preview
	APIKey  string // empty key is allowed: every call falls back
	Timeout time.Duration
	Log     zerolog.Logger
}

// Client talks to the generative language API.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	log        zerolog.Logger
}

// New creates a new generative-AI client.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultRequestTimeout
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        cfg.Log.With().Str("component", "gemini_client").Logger(),
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// --- wire types ---------------------------------------------------------

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// text extracts the concatenated text parts of the first candidate.
func (r generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	out := ""
	for _, p := range r.Candidates[0].Content.Parts {
		out += p.Text
	}
	return out
}

// generateContent performs a single non-streaming generation call and
// returns the first candidate's text.
func (c *Client) generateContent(ctx context.Context, req generateRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, payload)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	text := decoded.text()
	if text == "" {
		return "", fmt.Errorf("empty response")
	}
	return text, nil
}
