package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// TechOrigin is where and when a technology first appeared.
type TechOrigin struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Region string  `json:"region,omitempty"`
	Date   Year    `json:"date"`
}

// Invention is an independent invention of a technology elsewhere.
type Invention struct {
	Region   string `json:"region"`
	Date     Year   `json:"date"`
	Inventor string `json:"inventor,omitempty"`
}

// TechSpread is a dated adoption of a technology in a region.
type TechSpread struct {
	Region string  `json:"region"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Date   Year    `json:"date"`
}

// TechNode is a technology with its prerequisite and unlock edges.
type TechNode struct {
	ID                    string       `json:"id"`
	Name                  string       `json:"name"`
	Category              string       `json:"category"`
	Origin                TechOrigin   `json:"origin"`
	Requires              []string     `json:"requires,omitempty"`
	Enables               []string     `json:"enables,omitempty"`
	IndependentInventions []Invention  `json:"independent_inventions,omitempty"`
	Spread                []TechSpread `json:"spread,omitempty"`
	Description           string       `json:"description,omitempty"`
	Impact                string       `json:"impact,omitempty"`
	Sources               []string     `json:"sources,omitempty"`
}

// AvailableAt reports whether the technology has been invented by y.
func (n TechNode) AvailableAt(y Year) bool {
	return n.Origin.Date <= y
}

// Diffusion converts the technology to its temporal shape.
func (n TechNode) Diffusion() Diffusion {
	d := Diffusion{
		Origin: Spread{
			Point: GeoPoint{Lat: n.Origin.Lat, Lng: n.Origin.Lng},
			Date:  n.Origin.Date,
			Label: n.Origin.Region,
		},
		Spreads: make([]Spread, len(n.Spread)),
	}
	for i, s := range n.Spread {
		d.Spreads[i] = Spread{Point: GeoPoint{Lat: s.Lat, Lng: s.Lng}, Date: s.Date, Label: s.Region}
	}
	return d
}

// TechRef is a resolved or unresolved reference to a technology.
// Node is nil when the referenced id is not in the graph.
type TechRef struct {
	ID   string    `json:"id"`
	Node *TechNode `json:"node,omitempty"`
}

// Resolved reports whether the reference points at a known technology.
func (r TechRef) Resolved() bool {
	return r.Node != nil
}

// Unlock is a technology enabled by another, with its availability at the query year.
// Unresolved references are never available.
type Unlock struct {
	TechRef
	Available bool `json:"available"`
}

// TechGraph is the immutable prerequisite graph of technologies.
type TechGraph struct {
	nodes map[TechID]TechNode
	order []TechID
	topo  []TechID
}

// NewTechGraph builds a graph and validates it.
// Duplicate ids and prerequisite cycles are rejected; references to unknown ids are tolerated.
func NewTechGraph(nodes []TechNode) (*TechGraph, error) {
	g := &TechGraph{
		nodes: make(map[TechID]TechNode, len(nodes)),
		order: make([]TechID, 0, len(nodes)),
	}
	for i := range nodes {
		id := NewTechID(nodes[i].ID)
		if _, exists := g.nodes[id]; exists {
			return nil, zerr.With(zerr.Wrap(ErrDuplicateTech, "invalid technology graph"), "tech_id", nodes[i].ID)
		}
		g.nodes[id] = nodes[i]
		g.order = append(g.order, id)
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// validate checks the requires edges for cycles with a depth-first search
// and records a prerequisite-first order for Walk.
func (g *TechGraph) validate() error {
	g.topo = make([]TechID, 0, len(g.nodes))
	visited := make(map[TechID]int) // 0: unvisited, 1: visiting, 2: visited
	var path []TechID

	var visit func(u TechID) error
	visit = func(u TechID) error {
		visited[u] = 1
		path = append(path, u)

		for _, raw := range g.nodes[u].Requires {
			dep := NewTechID(raw)
			if _, known := g.nodes[dep]; !known {
				continue
			}
			if visited[dep] == 1 {
				return buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.topo = append(g.topo, u)
		return nil
	}

	// Load order keeps Walk and cycle reports deterministic.
	for _, id := range g.order {
		if visited[id] == 0 {
			if err := visit(id); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildCycleError constructs an error with cycle path metadata, e.g. "a -> b -> a".
func buildCycleError(path []TechID, dep TechID) error {
	startIdx := slices.Index(path, dep)
	parts := make([]string, 0, len(path)-startIdx+1)
	for _, node := range path[startIdx:] {
		parts = append(parts, node.String())
	}
	parts = append(parts, dep.String())
	return zerr.With(zerr.Wrap(ErrCycleDetected, "invalid technology graph"), "cycle", strings.Join(parts, " -> "))
}

// Len returns the number of technologies.
func (g *TechGraph) Len() int {
	return len(g.order)
}

// Node returns a copy of the technology with the given id.
func (g *TechGraph) Node(id string) (TechNode, bool) {
	n, ok := g.nodes[NewTechID(id)]
	return n, ok
}

// Nodes returns all technologies in load order.
func (g *TechGraph) Nodes() []TechNode {
	out := make([]TechNode, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// IsAvailable reports whether id has been invented by y. Unknown ids are never available.
func (g *TechGraph) IsAvailable(id string, y Year) bool {
	n, ok := g.nodes[NewTechID(id)]
	return ok && n.AvailableAt(y)
}

// PrerequisitesOf resolves the requires list of id, keeping unresolved entries as placeholders.
// An unknown id has no prerequisites.
func (g *TechGraph) PrerequisitesOf(id string) []TechRef {
	n, ok := g.nodes[NewTechID(id)]
	if !ok {
		return nil
	}
	return g.resolve(n.Requires)
}

// UnlocksOf resolves the enables list of id and flags each entry available at the query year y.
func (g *TechGraph) UnlocksOf(id string, y Year) []Unlock {
	n, ok := g.nodes[NewTechID(id)]
	if !ok {
		return nil
	}
	refs := g.resolve(n.Enables)
	out := make([]Unlock, len(refs))
	for i, ref := range refs {
		out[i] = Unlock{
			TechRef:   ref,
			Available: ref.Resolved() && ref.Node.AvailableAt(y),
		}
	}
	return out
}

func (g *TechGraph) resolve(ids []string) []TechRef {
	refs := make([]TechRef, len(ids))
	for i, raw := range ids {
		refs[i] = TechRef{ID: raw}
		if n, ok := g.nodes[NewTechID(raw)]; ok {
			refs[i].Node = &n
		}
	}
	return refs
}

// Available returns the technologies invented by y, in load order.
func (g *TechGraph) Available(y Year) []TechNode {
	return g.filter(func(n TechNode) bool { return n.AvailableAt(y) })
}

// ByCategory returns the technologies of a category, in load order.
func (g *TechGraph) ByCategory(category string) []TechNode {
	return g.filter(func(n TechNode) bool { return n.Category == category })
}

// Search returns the technologies whose name or description contains q, ignoring case.
func (g *TechGraph) Search(q string) []TechNode {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	return g.filter(func(n TechNode) bool {
		return strings.Contains(strings.ToLower(n.Name), q) ||
			strings.Contains(strings.ToLower(n.Description), q)
	})
}

func (g *TechGraph) filter(keep func(TechNode) bool) []TechNode {
	var out []TechNode
	for _, id := range g.order {
		if n := g.nodes[id]; keep(n) {
			out = append(out, n)
		}
	}
	return out
}

// Walk returns an iterator that yields technologies with prerequisites first.
func (g *TechGraph) Walk() iter.Seq[TechNode] {
	return func(yield func(TechNode) bool) {
		for _, id := range g.topo {
			if !yield(g.nodes[id]) {
				return
			}
		}
	}
}
