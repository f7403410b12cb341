package narrator

import (
	"context"
	"net/http"
	"strings"

	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/zerr"
)

// Gemini generateContent defaults.
const (
	GeminiURL         = "https://generativelanguage.googleapis.com"
	GeminiModel       = "gemini-2.0-flash"
	GeminiMaxTokens   = 500
	GeminiTemperature = 0.3
)

// Gemini narrates through the Gemini generateContent API.
type Gemini struct {
	client    *http.Client
	url       string
	apiKey    string
	maxTokens int
}

// NewGemini creates a Gemini narrator. Empty config fields take the defaults above.
func NewGemini(cfg domain.NarratorConfig, client *http.Client) *Gemini {
	base := strings.TrimRight(orDefault(cfg.BaseURL, GeminiURL), "/")
	return &Gemini{
		client:    client,
		url:       base + "/v1beta/models/" + orDefault(cfg.Model, GeminiModel) + ":generateContent",
		apiKey:    cfg.APIKey,
		maxTokens: orDefault(cfg.MaxTokens, GeminiMaxTokens),
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Narrate returns the first part of the first candidate.
func (g *Gemini) Narrate(ctx context.Context, prompt string) (string, error) {
	header := http.Header{}
	header.Set("x-goog-api-key", g.apiKey)

	req := geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}}
	req.GenerationConfig.Temperature = GeminiTemperature
	req.GenerationConfig.MaxOutputTokens = g.maxTokens

	var resp geminiResponse
	if err := postJSON(ctx, g.client, g.url, header, req, &resp); err != nil {
		return "", zerr.With(err, "provider", domain.ProviderGemini)
	}

	if len(resp.Candidates) > 0 && len(resp.Candidates[0].Content.Parts) > 0 {
		if text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text); text != "" {
			return text, nil
		}
	}
	return "", zerr.With(zerr.Wrap(domain.ErrEmptyResponse, "no candidates in response"), "provider", domain.ProviderGemini)
}
