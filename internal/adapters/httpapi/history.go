package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/engine/lookup"
	"go.trai.ch/zerr"
)

// historyRequest is the POST body of /api/history. Coordinates select a cached
// location lookup; a bare place name is narrated directly.
type historyRequest struct {
	Place     string   `json:"place"`
	PlaceName string   `json:"placeName"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	Year      *int     `json:"year"`
}

type historyResponse struct {
	Result    string           `json:"result"`
	PlaceName string           `json:"placeName,omitempty"`
	Key       *domain.QueryKey `json:"key,omitempty"`
	Cached    bool             `json:"cached,omitempty"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	req, err := parseHistoryRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if s.narrator == nil || s.resolver == nil {
		s.writeError(w, zerr.Wrap(domain.ErrMissingCredentials, "API key not configured"))
		return
	}
	y := domain.Year(*req.Year)

	if req.Lat != nil && req.Lng != nil {
		res, err := s.resolver.Lookup(r.Context(), domain.GeoPoint{Lat: *req.Lat, Lng: *req.Lng}, y)
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, historyResponse{
			Result:    res.Entry.Narrative,
			PlaceName: res.Entry.PlaceName,
			Key:       &res.Key,
			Cached:    res.Cached,
		})
		return
	}

	text, err := s.narrator.Narrate(r.Context(), lookup.PlacePrompt(req.place(), y))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{Result: text, PlaceName: req.place()})
}

func (h historyRequest) place() string {
	if h.Place != "" {
		return h.Place
	}
	return h.PlaceName
}

func parseHistoryRequest(r *http.Request) (historyRequest, error) {
	var req historyRequest
	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, zerr.Wrap(errBadRequest, "Invalid JSON body")
		}
	} else {
		q := r.URL.Query()
		req.Place = strings.TrimSpace(q.Get("place"))
		if raw := q.Get("year"); raw != "" {
			y, err := domain.ParseYear(raw)
			if err != nil {
				return req, err
			}
			year := int(y)
			req.Year = &year
		}
	}

	hasPoint := req.Lat != nil && req.Lng != nil
	if req.Year == nil || (!hasPoint && strings.TrimSpace(req.place()) == "") {
		return req, missing("place", "year")
	}
	return req, nil
}

type lookupResponse struct {
	State     string              `json:"state"`
	Key       *domain.QueryKey    `json:"key,omitempty"`
	Entry     *domain.LookupEntry `json:"entry,omitempty"`
	Label     string              `json:"label,omitempty"`
	HTML      string              `json:"html,omitempty"`
	Cached    bool                `json:"cached,omitempty"`
	Threshold int                 `json:"zoomThreshold,omitempty"`
}

// handleLookup resolves a settled map view. Each request is already a settled
// event, so there is no debounce; below the zoom threshold the panel stays idle.
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	p, err := pointParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	y, err := yearParam(r, s.coord.Year())
	if err != nil {
		s.writeError(w, err)
		return
	}
	threshold := s.zoomThreshold
	if threshold == 0 {
		threshold = domain.DefaultZoomThreshold
	}
	if raw := r.URL.Query().Get("zoom"); raw != "" {
		zoom, err := floatParam(r, "zoom")
		if err != nil {
			s.writeError(w, zerr.Wrap(errBadRequest, "Invalid zoom parameter"))
			return
		}
		if int(zoom) < threshold {
			writeJSON(w, http.StatusOK, lookupResponse{State: domain.LookupIdle.String(), Threshold: threshold})
			return
		}
	}
	if s.resolver == nil {
		s.writeError(w, zerr.Wrap(domain.ErrMissingCredentials, "API key not configured"))
		return
	}

	res, err := s.resolver.Lookup(r.Context(), p, y)
	if err != nil {
		s.writeError(w, err)
		return
	}
	update := domain.LookupUpdate{State: domain.LookupResolved, Key: res.Key, Entry: res.Entry}
	writeJSON(w, http.StatusOK, lookupResponse{
		State:  update.State.String(),
		Key:    &res.Key,
		Entry:  &res.Entry,
		Label:  update.Label(),
		HTML:   lookup.FormatNarrative(res.Entry.Narrative),
		Cached: res.Cached,
	})
}

func (s *Server) handleReverse(w http.ResponseWriter, r *http.Request) {
	p, err := pointParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"placeName": s.geocoder.ReverseGeocode(r.Context(), p),
		"point":     p,
	})
}
