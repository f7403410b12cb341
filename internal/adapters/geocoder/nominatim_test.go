package geocoder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/atlas/internal/adapters/geocoder"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestNominatim_ReverseGeocode(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "city with region",
			body: `{"address":{"city":"Athens","county":"Central Athens","state":"Attica","country":"Greece"}}`,
			want: "Athens, Central Athens, Attica, Greece",
		},
		{
			name: "village preferred only when no city or town",
			body: `{"address":{"town":"Cuzco","village":"Ignored","country":"Peru"}}`,
			want: "Cuzco, Peru",
		},
		{
			name: "display name fallback",
			body: `{"display_name":"Pacific Ocean","address":{}}`,
			want: "Pacific Ocean",
		},
		{
			name: "nothing known",
			body: `{}`,
			want: "Unknown location",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery, gotAgent string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/reverse", r.URL.Path)
				gotQuery = r.URL.RawQuery
				gotAgent = r.Header.Get("User-Agent")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			ctrl := gomock.NewController(t)
			g := geocoder.NewNominatim(domain.GeocoderConfig{BaseURL: srv.URL, UserAgent: "atlas-test"}, srv.Client(), mocks.NewMockLogger(ctrl))

			got := g.ReverseGeocode(t.Context(), domain.GeoPoint{Lat: 37.9838, Lng: 23.7275})
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "format=json&lat=37.9838&lon=23.7275&zoom=10", gotQuery)
			assert.Equal(t, "atlas-test", gotAgent)
		})
	}
}

func TestNominatim_FailuresFallBackToCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}},
		{"malformed body", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			ctrl := gomock.NewController(t)
			log := mocks.NewMockLogger(ctrl)
			log.EXPECT().Warn(gomock.Any()).Times(1)

			g := geocoder.NewNominatim(domain.GeocoderConfig{BaseURL: srv.URL}, srv.Client(), log)
			got := g.ReverseGeocode(t.Context(), domain.GeoPoint{Lat: 41.0082, Lng: 28.9784})
			assert.Equal(t, "Coordinates 41.01, 28.98", got)
		})
	}
}

func TestNominatim_DefaultUserAgent(t *testing.T) {
	var agent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"address":{"country":"Egypt"}}`))
	}))
	defer srv.Close()

	ctrl := gomock.NewController(t)
	g := geocoder.NewNominatim(domain.GeocoderConfig{BaseURL: srv.URL}, nil, mocks.NewMockLogger(ctrl))
	assert.Equal(t, "Egypt", g.ReverseGeocode(t.Context(), domain.GeoPoint{Lat: 30, Lng: 31}))
	assert.Equal(t, domain.DefaultUserAgent, agent)
}
