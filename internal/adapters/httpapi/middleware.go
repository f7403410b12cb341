package httpapi

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.trai.ch/atlas/internal/core/ports"
	"go.trai.ch/zerr"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// cors allows any origin, as the map front end may be hosted separately.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, If-None-Match")
		h.Set("Access-Control-Expose-Headers", "ETag, "+RequestIDHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestID echoes the caller's id or assigns a new one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func recoverPanics(logger ports.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer zerr.Defer(func(err error) {
			logger.Error(zerr.With(zerr.With(err, "method", r.Method), "path", r.URL.Path))
			writeJSON(w, http.StatusInternalServerError, errorBody{Error: fmt.Sprintf("internal error (%s)", w.Header().Get(RequestIDHeader))})
		})
		next.ServeHTTP(w, r)
	})
}
