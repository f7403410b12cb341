package narrator

import (
	"context"
	"net/http"
	"strings"

	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/zerr"
)

// Anthropic Messages API defaults.
const (
	AnthropicURL       = "https://api.anthropic.com"
	AnthropicModel     = "claude-sonnet-4-20250514"
	AnthropicVersion   = "2023-06-01"
	AnthropicMaxTokens = 400
)

// Anthropic narrates through the Anthropic Messages API.
type Anthropic struct {
	client    *http.Client
	url       string
	apiKey    string
	model     string
	maxTokens int
}

// NewAnthropic creates an Anthropic narrator. Empty config fields take the defaults above.
func NewAnthropic(cfg domain.NarratorConfig, client *http.Client) *Anthropic {
	return &Anthropic{
		client:    client,
		url:       strings.TrimRight(orDefault(cfg.BaseURL, AnthropicURL), "/") + "/v1/messages",
		apiKey:    cfg.APIKey,
		model:     orDefault(cfg.Model, AnthropicModel),
		maxTokens: orDefault(cfg.MaxTokens, AnthropicMaxTokens),
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Narrate sends prompt as a single user message and returns the first text block.
func (a *Anthropic) Narrate(ctx context.Context, prompt string) (string, error) {
	header := http.Header{}
	header.Set("x-api-key", a.apiKey)
	header.Set("anthropic-version", AnthropicVersion)

	var resp anthropicResponse
	err := postJSON(ctx, a.client, a.url, header, anthropicRequest{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	}, &resp)
	if err != nil {
		return "", zerr.With(err, "provider", domain.ProviderAnthropic)
	}

	for _, block := range resp.Content {
		if text := strings.TrimSpace(block.Text); text != "" {
			return text, nil
		}
	}
	return "", zerr.With(zerr.Wrap(domain.ErrEmptyResponse, "no text in response"), "provider", domain.ProviderAnthropic)
}
