package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/zerr"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusOf maps domain errors onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidYear),
		errors.Is(err, domain.ErrInvalidCoordinates),
		errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrTopicRequired),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTechNotFound), errors.Is(err, domain.ErrRegionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrMissingCredentials),
		errors.Is(err, domain.ErrCycleDetected),
		errors.Is(err, domain.ErrDuplicateTech),
		errors.Is(err, domain.ErrDatasetNotFound),
		errors.Is(err, domain.ErrDatasetParse),
		errors.Is(err, domain.ErrDatasetRead):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrLookupTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrNetwork), errors.Is(err, domain.ErrEmptyResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with {error} and logs server side failures.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(err)
	}
	writeJSON(w, status, errorBody{Error: publicMessage(err)})
}

// publicMessage drops the sentinel suffix from request validation errors.
func publicMessage(err error) string {
	var zErr *zerr.Error
	if errors.Is(err, errBadRequest) && errors.As(err, &zErr) {
		return zErr.Message()
	}
	return err.Error()
}

var errBadRequest = zerr.New("bad request")

func notFound(sentinel error, key string, value any) error {
	return zerr.With(zerr.Wrap(sentinel, "not found"), key, value)
}

func missing(params ...string) error {
	return zerr.With(zerr.Wrap(errBadRequest, "Missing "+strings.Join(params, " or ")+" parameter"), "params", params)
}

// yearParam parses the year query parameter, falling back to def when absent.
func yearParam(r *http.Request, def domain.Year) (domain.Year, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return def, nil
	}
	return domain.ParseYear(raw)
}

func floatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, missing(name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidCoordinates, "not a number"), name, raw)
	}
	return v, nil
}

func pointParam(r *http.Request) (domain.GeoPoint, error) {
	lat, err := floatParam(r, "lat")
	if err != nil {
		return domain.GeoPoint{}, err
	}
	lng, err := floatParam(r, "lng")
	if err != nil {
		return domain.GeoPoint{}, err
	}
	p := domain.GeoPoint{Lat: lat, Lng: lng}
	return p, p.Validate()
}
