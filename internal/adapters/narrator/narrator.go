// Package narrator implements ports.Narrator on hosted language model APIs.
package narrator

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	defaultTimeout = 30 * time.Second
	// maxErrorBody bounds how much of a failed response is kept for the error.
	maxErrorBody = 512
)

// New returns the narrator selected by cfg. A nil client gets a default with a timeout.
func New(cfg domain.NarratorConfig, client *http.Client) (ports.Narrator, error) {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	if cfg.APIKey == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingCredentials, "narrator disabled"), "provider", cfg.Provider)
	}

	switch cfg.Provider {
	case domain.ProviderAnthropic:
		return NewAnthropic(cfg, client), nil
	case domain.ProviderGemini:
		return NewGemini(cfg, client), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownProvider, "narrator disabled"), "provider", cfg.Provider)
	}
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// postJSON sends body to url and decodes a 2xx response into out.
func postJSON(ctx context.Context, client *http.Client, url string, header http.Header, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return zerr.Wrap(err, "failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return zerr.Wrap(domain.ErrNetwork, err.Error())
	}
	req.Header = header.Clone()
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return zerr.Wrap(ctx.Err(), "narrator request aborted")
		}
		return zerr.Wrap(domain.ErrNetwork, err.Error())
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return zerr.Wrap(domain.ErrNetwork, "invalid response body: "+err.Error())
	}
	return nil
}

func statusError(resp *http.Response) error {
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	sentinel := domain.ErrNetwork
	if resp.StatusCode == http.StatusTooManyRequests {
		sentinel = domain.ErrRateLimited
	}
	err := zerr.With(zerr.Wrap(sentinel, "API error"), "status", resp.StatusCode)
	if len(detail) > 0 {
		err = zerr.With(err, "body", string(bytes.TrimSpace(detail)))
	}
	return err
}
