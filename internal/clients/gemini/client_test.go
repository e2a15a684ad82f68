package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashbhanu1/Alternate-Credit/internal/domain"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(Config{
		BaseURL: srv.URL,
		Model:   "test-model",
		APIKey:  "test-key",
		Log:     zerolog.Nop(),
	})
}

func candidateResponse(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
}

func TestAnalyze_ParsesStructuredResponse(t *testing.T) {
	analysisJSON := `{"summary":"Strong savings discipline.","positiveFactors":["Stable phone history","High bill payment rate"],"negativeFactors":["Volatile income","Low location consistency"],"recommendations":["Build a buffer","Automate bills","Keep one device"]}`

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "models/test-model:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.GenerationConfig)
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMIMEType)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "FINAL TRUST SCORE: 712")

		json.NewEncoder(w).Encode(candidateResponse(analysisJSON))
	})

	profile := domain.RawSignals{ProfileID: "p1", Name: "Ravi Kumar", Utilities: domain.UtilityData{TotalBills: 12, OnTimePayments: 11}}
	score := domain.ScoreResult{TrustScore: 712, Grade: "B"}

	analysis := client.Analyze(context.Background(), profile, domain.EngineeredFeatures{}, score)

	assert.Equal(t, "Strong savings discipline.", analysis.Summary)
	assert.Len(t, analysis.PositiveFactors, 2)
	assert.Len(t, analysis.Recommendations, 3)
}

func TestAnalyze_MissingKeyFallback(t *testing.T) {
	client := New(Config{BaseURL: "http://unused", Model: "m", APIKey: "", Log: zerolog.Nop()})

	analysis := client.Analyze(context.Background(), domain.RawSignals{}, domain.EngineeredFeatures{}, domain.ScoreResult{})

	assert.Equal(t, "AI analysis unavailable (Missing API Key).", analysis.Summary)
	assert.Equal(t, []string{"N/A"}, analysis.PositiveFactors)
}

func TestAnalyze_HTTPErrorFallback(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	analysis := client.Analyze(context.Background(), domain.RawSignals{}, domain.EngineeredFeatures{}, domain.ScoreResult{})

	assert.Equal(t, "Could not generate AI analysis at this time.", analysis.Summary)
	assert.Equal(t, []string{"Manual Review Required"}, analysis.NegativeFactors)
}

func TestAnalyze_MalformedJSONFallback(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(candidateResponse("this is not json"))
	})

	analysis := client.Analyze(context.Background(), domain.RawSignals{}, domain.EngineeredFeatures{}, domain.ScoreResult{})

	assert.Equal(t, "Could not generate AI analysis at this time.", analysis.Summary)
}

func TestStreamChat_YieldsFragments(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, ":streamGenerateContent")
		assert.Equal(t, "sse", r.URL.Query().Get("alt"))

		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for _, text := range []string{"Hello", ", ", "Ravi!"} {
			chunk, _ := json.Marshal(candidateResponse(text))
			fmt.Fprintf(w, "data: %s\n\n", chunk)
			flusher.Flush()
		}
	})

	fragments, err := client.StreamChat(context.Background(), "You are a helpful credit coach.", "Hi")
	require.NoError(t, err)

	var got []string
	for fragment := range fragments {
		got = append(got, fragment)
	}
	assert.Equal(t, []string{"Hello", ", ", "Ravi!"}, got)
}

func TestStreamChat_MissingKey(t *testing.T) {
	client := New(Config{BaseURL: "http://unused", Model: "m", Log: zerolog.Nop()})

	_, err := client.StreamChat(context.Background(), "", "Hi")
	assert.ErrorContains(t, err, "not configured")
}
