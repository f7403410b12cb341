package httpapi

import (
	"net/http"
	"strings"

	"go.trai.ch/atlas/internal/adapters/dataset"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/engine/overlay"
)

// handleOverlays returns the frame for year and the categories in show.
// Without show every overlay is drawn. Responses carry the catalog fingerprint as ETag.
func (s *Server) handleOverlays(w http.ResponseWriter, r *http.Request) {
	y, err := yearParam(r, s.coord.Year())
	if err != nil {
		s.writeError(w, err)
		return
	}
	cats := domain.OverlayCategories()
	if show := r.URL.Query().Get("show"); show != "" {
		if cats, err = domain.ParseCategories(show); err != nil {
			s.writeError(w, err)
			return
		}
	}

	etag := dataset.FormatFingerprint(s.coord.Fingerprint())
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	writeJSON(w, http.StatusOK, s.coord.FrameFor(y, cats))
}

type techListResponse struct {
	Year         domain.Year     `json:"year"`
	Count        int             `json:"count"`
	Technologies []techListEntry `json:"technologies"`
}

type techListEntry struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Category  string      `json:"category"`
	Icon      string      `json:"icon"`
	Color     string      `json:"color"`
	Date      domain.Year `json:"date"`
	Available bool        `json:"available"`
}

// handleTechList lists technologies, optionally filtered by category and a search term.
func (s *Server) handleTechList(w http.ResponseWriter, r *http.Request) {
	y, err := yearParam(r, s.coord.Year())
	if err != nil {
		s.writeError(w, err)
		return
	}
	g := s.coord.Graph()
	if g == nil {
		s.writeError(w, s.techUnavailable())
		return
	}

	nodes := g.Nodes()
	if c := r.URL.Query().Get("category"); c != "" {
		nodes = g.ByCategory(c)
	}
	if q := r.URL.Query().Get("q"); q != "" {
		matches := make(map[string]bool)
		for _, n := range g.Search(q) {
			matches[n.ID] = true
		}
		kept := nodes[:0:0]
		for _, n := range nodes {
			if matches[n.ID] {
				kept = append(kept, n)
			}
		}
		nodes = kept
	}

	resp := techListResponse{Year: y, Technologies: make([]techListEntry, 0, len(nodes))}
	for _, n := range nodes {
		resp.Technologies = append(resp.Technologies, techListEntry{
			ID:        n.ID,
			Name:      n.Name,
			Category:  n.Category,
			Icon:      overlay.TechIcon(n.Category),
			Color:     overlay.TechColor(n.Category),
			Date:      n.Origin.Date,
			Available: n.AvailableAt(y),
		})
	}
	resp.Count = len(resp.Technologies)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTechDetail(w http.ResponseWriter, r *http.Request) {
	y, err := yearParam(r, s.coord.Year())
	if err != nil {
		s.writeError(w, err)
		return
	}
	g := s.coord.Graph()
	if g == nil {
		s.writeError(w, s.techUnavailable())
		return
	}
	id := r.PathValue("id")
	d, ok := overlay.Detail(g, id, y)
	if !ok {
		s.writeError(w, notFound(domain.ErrTechNotFound, "id", id))
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// techUnavailable explains why the technology graph is missing.
func (s *Server) techUnavailable() error {
	if err, ok := s.coord.Failures()[domain.CategoryTechnology]; ok {
		return err
	}
	return notFound(domain.ErrTechNotFound, "reason", "no technology dataset")
}

func (s *Server) handleRulers(w http.ResponseWriter, r *http.Request) {
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
	res, ok := overlay.RulerAt(s.coord.Rulers(), region, y)
	if !ok {
		s.writeError(w, notFound(domain.ErrRegionNotFound, "region", region))
		return
	}
	writeJSON(w, http.StatusOK, res)
}
