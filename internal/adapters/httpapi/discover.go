package httpapi

import (
	"net/http"
	"strings"

	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/engine/rabbithole"
	"go.trai.ch/zerr"
)

type exploreResponse struct {
	Topic *domain.Topic `json:"topic"`
	Trail []string      `json:"trail"`
}

func (s *Server) handleDayLife(w http.ResponseWriter, r *http.Request) {
	region := strings.TrimSpace(r.URL.Query().Get("region"))
	if region == "" {
		s.writeError(w, missing("region"))
		return
	}
	y, err := yearParam(r, s.coord.Year())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if s.almanac == nil {
		s.writeError(w, zerr.Wrap(domain.ErrDatasetNotFound, "daily life unavailable"))
		return
	}
	life, err := s.almanac.Life(region, y)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, life)
}

// handleExplore answers a topic and extends the client's breadcrumbs with it.
func (s *Server) handleExplore(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("topic"))
	if name == "" {
		s.writeError(w, missing("topic"))
		return
	}
	if s.explorer == nil {
		s.writeError(w, zerr.Wrap(domain.ErrDatasetNotFound, "topic explorer unavailable"))
		return
	}
	topic, err := s.explorer.Explore(r.Context(), name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	trail := rabbithole.NewTrail(r.URL.Query()["trail"]...)
	if !topic.Fallback {
		trail.Visit(topic.Name)
	}
	writeJSON(w, http.StatusOK, exploreResponse{Topic: &topic, Trail: breadcrumbs(trail)})
}

// handleExploreBack steps the client's breadcrumbs back and answers the previous topic.
func (s *Server) handleExploreBack(w http.ResponseWriter, r *http.Request) {
	if s.explorer == nil {
		s.writeError(w, zerr.Wrap(domain.ErrDatasetNotFound, "topic explorer unavailable"))
		return
	}
	trail := rabbithole.NewTrail(r.URL.Query()["trail"]...)
	prev, ok := trail.Back()
	if !ok {
		writeJSON(w, http.StatusOK, exploreResponse{Trail: breadcrumbs(trail)})
		return
	}
	topic, err := s.explorer.Explore(r.Context(), prev)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exploreResponse{Topic: &topic, Trail: breadcrumbs(trail)})
}

func breadcrumbs(t *rabbithole.Trail) []string {
	if topics := t.Topics(); topics != nil {
		return topics
	}
	return []string{}
}
