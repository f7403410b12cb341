package narrator_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/atlas/internal/adapters/narrator"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/zerr"
)

type capturedRequest struct {
	path   string
	header http.Header
	body   map[string]any
}

// newServer answers every request with status and body and records the last request.
func newServer(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.header = r.Header.Clone()
		data, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(data, &captured.body))

		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func TestAnthropic_Narrate(t *testing.T) {
	srv, req := newServer(t, http.StatusOK, `{"content":[{"type":"text","text":"  **Athens** in 400 BCE\n"}]}`)
	n, err := narrator.New(domain.NarratorConfig{
		Provider: domain.ProviderAnthropic,
		BaseURL:  srv.URL,
		APIKey:   "sk-test",
	}, srv.Client())
	require.NoError(t, err)

	text, err := n.Narrate(t.Context(), "tell me about Athens")
	require.NoError(t, err)
	assert.Equal(t, "**Athens** in 400 BCE", text)

	assert.Equal(t, "/v1/messages", req.path)
	assert.Equal(t, "sk-test", req.header.Get("x-api-key"))
	assert.Equal(t, narrator.AnthropicVersion, req.header.Get("anthropic-version"))
	assert.Equal(t, "application/json", req.header.Get("Content-Type"))
	assert.Equal(t, narrator.AnthropicModel, req.body["model"])
	assert.InDelta(t, narrator.AnthropicMaxTokens, req.body["max_tokens"], 0)
	assert.Equal(t, []any{map[string]any{"role": "user", "content": "tell me about Athens"}}, req.body["messages"])
}

func TestGemini_Narrate(t *testing.T) {
	srv, req := newServer(t, http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"Rome was a republic."}]}}]}`)
	n, err := narrator.New(domain.NarratorConfig{
		Provider:  domain.ProviderGemini,
		Model:     "gemini-test",
		MaxTokens: 64,
		BaseURL:   srv.URL + "/",
		APIKey:    "g-key",
	}, srv.Client())
	require.NoError(t, err)

	text, err := n.Narrate(t.Context(), "Rome")
	require.NoError(t, err)
	assert.Equal(t, "Rome was a republic.", text)

	assert.Equal(t, "/v1beta/models/gemini-test:generateContent", req.path)
	assert.Equal(t, "g-key", req.header.Get("x-goog-api-key"))
	gen, ok := req.body["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, narrator.GeminiTemperature, gen["temperature"], 1e-9)
	assert.InDelta(t, 64, gen["maxOutputTokens"], 0)
}

func TestNarrate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		status   int
		body     string
		wantErr  error
	}{
		{"anthropic rate limited", domain.ProviderAnthropic, http.StatusTooManyRequests, `{"error":"slow down"}`, domain.ErrRateLimited},
		{"anthropic server error", domain.ProviderAnthropic, http.StatusInternalServerError, "", domain.ErrNetwork},
		{"anthropic empty content", domain.ProviderAnthropic, http.StatusOK, `{"content":[]}`, domain.ErrEmptyResponse},
		{"anthropic malformed body", domain.ProviderAnthropic, http.StatusOK, `not json`, domain.ErrNetwork},
		{"gemini rate limited", domain.ProviderGemini, http.StatusTooManyRequests, "", domain.ErrRateLimited},
		{"gemini forbidden", domain.ProviderGemini, http.StatusForbidden, `denied`, domain.ErrNetwork},
		{"gemini no candidates", domain.ProviderGemini, http.StatusOK, `{"candidates":[]}`, domain.ErrEmptyResponse},
		{"gemini blank text", domain.ProviderGemini, http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":" "}]}}]}`, domain.ErrEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, tt.status, tt.body)
			n, err := narrator.New(domain.NarratorConfig{Provider: tt.provider, BaseURL: srv.URL, APIKey: "k"}, srv.Client())
			require.NoError(t, err)

			text, err := n.Narrate(t.Context(), "prompt")
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, text)

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, tt.provider, zErr.Metadata()["provider"])
		})
	}
}

func TestNarrate_StatusMetadata(t *testing.T) {
	srv, _ := newServer(t, http.StatusBadGateway, "upstream down\n")
	n, err := narrator.New(domain.NarratorConfig{Provider: domain.ProviderAnthropic, BaseURL: srv.URL, APIKey: "k"}, srv.Client())
	require.NoError(t, err)

	_, err = n.Narrate(t.Context(), "prompt")
	require.ErrorIs(t, err, domain.ErrNetwork)
	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, http.StatusBadGateway, zErr.Metadata()["status"])
	assert.Equal(t, "upstream down", zErr.Metadata()["body"])
}

func TestNarrate_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	n, err := narrator.New(domain.NarratorConfig{Provider: domain.ProviderGemini, BaseURL: url, APIKey: "k"}, nil)
	require.NoError(t, err)

	_, err = n.Narrate(t.Context(), "prompt")
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestNew_Errors(t *testing.T) {
	_, err := narrator.New(domain.NarratorConfig{Provider: domain.ProviderAnthropic}, nil)
	require.ErrorIs(t, err, domain.ErrMissingCredentials)

	_, err = narrator.New(domain.NarratorConfig{Provider: "oracle", APIKey: "k"}, nil)
	require.ErrorIs(t, err, domain.ErrUnknownProvider)
}
