package gemini

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// StreamChat sends one chat message and returns a lazy sequence of text
// fragments as the model produces them. The channel is closed when the
// stream ends or ctx is cancelled; a superseded request is simply abandoned
// by its consumer and torn down via context cancellation.
//
// Setup failures (no key, connection refused, non-200) are returned as an
// error before any fragment is produced. Mid-stream failures close the
// channel early; chat is best-effort by contract.
func (c *Client) StreamChat(ctx context.Context, systemInstruction, message string) (<-chan string, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("gemini API key not configured")
	}

	req := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: message}}}},
	}
	if systemInstruction != "" {
		req.SystemInstruction = &content{Parts: []part{{Text: systemInstruction}}}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:streamGenerateContent?alt=sse&key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, payload)
	}

	fragments := make(chan string)
	go c.readStream(ctx, resp.Body, fragments)
	return fragments, nil
}

// readStream parses server-sent events off the response body and forwards
// each chunk's text to the fragment channel.
func (c *Client) readStream(ctx context.Context, body io.ReadCloser, fragments chan<- string) {
	defer close(fragments)
	defer body.Close()

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" || payload == "[DONE]" {
			continue
		}

		var chunk generateResponse
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			c.log.Warn().Err(err).Msg("Skipping malformed stream chunk")
			continue
		}

		text := chunk.text()
		if text == "" {
			continue
		}

		select {
		case fragments <- text:
		case <-ctx.Done():
			return
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		c.log.Warn().Err(err).Msg("Chat stream ended with error")
	}
}
