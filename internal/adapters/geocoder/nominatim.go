// Package geocoder resolves coordinates to place names with Nominatim.
package geocoder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports"
	"go.trai.ch/zerr"
)

const defaultTimeout = 10 * time.Second

var _ ports.Geocoder = (*Nominatim)(nil)

// Nominatim implements ports.Geocoder on the Nominatim reverse endpoint.
type Nominatim struct {
	client    *http.Client
	baseURL   string
	userAgent string
	logger    ports.Logger
}

// NewNominatim creates a geocoder. A nil client gets a default with a timeout.
func NewNominatim(cfg domain.GeocoderConfig, client *http.Client, logger ports.Logger) *Nominatim {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = domain.DefaultGeocoderURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = domain.DefaultUserAgent
	}
	return &Nominatim{
		client:    client,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		logger:    logger,
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"address"`
}

// ReverseGeocode returns "settlement, county, state, country" for p. Any failure
// falls back to "Coordinates <lat>, <lng>".
func (n *Nominatim) ReverseGeocode(ctx context.Context, p domain.GeoPoint) string {
	name, err := n.reverse(ctx, p)
	if err != nil {
		n.logger.Warn(zerr.With(err, "point", p.String()).Error())
		return Fallback(p)
	}
	return name
}

// Fallback is the place name used when reverse geocoding fails.
func Fallback(p domain.GeoPoint) string {
	return "Coordinates " + p.String()
}

func (n *Nominatim) reverse(ctx context.Context, p domain.GeoPoint) (string, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(p.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(p.Lng, 'f', -1, 64))
	q.Set("format", "json")
	q.Set("zoom", "10")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/reverse?"+q.Encode(), http.NoBody)
	if err != nil {
		return "", zerr.Wrap(domain.ErrNetwork, err.Error())
	}
	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return "", zerr.Wrap(domain.ErrNetwork, err.Error())
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode != http.StatusOK {
		return "", zerr.With(zerr.Wrap(domain.ErrNetwork, "reverse geocoding failed"), "status", resp.StatusCode)
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", zerr.Wrap(domain.ErrNetwork, "invalid reverse geocoding response: "+err.Error())
	}
	return placeName(body), nil
}

func placeName(r reverseResponse) string {
	var parts []string
	for _, s := range []string{r.Address.City, r.Address.Town, r.Address.Village} {
		if s != "" {
			parts = append(parts, s)
			break
		}
	}
	for _, s := range []string{r.Address.County, r.Address.State, r.Address.Country} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	switch {
	case len(parts) > 0:
		return strings.Join(parts, ", ")
	case r.DisplayName != "":
		return r.DisplayName
	default:
		return "Unknown location"
	}
}
