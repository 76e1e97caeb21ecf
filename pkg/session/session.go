// Package session owns the lifecycle of one visualization session: the
// committed canonical graph, the accumulated color scheme, and the
// derivation of views for the rendering widget. The engine in pkg/graph is
// pure; the session is where its inputs live.
package session

import (
	"context"
	"sync"

	"github.com/kgview/kgview/pkg/common"
	"github.com/kgview/kgview/pkg/graph"
	"github.com/kgview/kgview/pkg/query"
	"github.com/kgview/kgview/pkg/render"
)

// ViewMode selects between the full data view and the schema overview.
type ViewMode string

const (
	ViewModeData   ViewMode = "data"
	ViewModeSchema ViewMode = "schema"
)

// Session holds one user's canonical graph and scheme. All methods are
// safe for concurrent use; the graph is only ever replaced wholesale, so
// readers never observe a half-applied load.
type Session struct {
	ID string

	mu     sync.Mutex
	nodes  []common.Node
	rels   []common.Relationship
	scheme common.Scheme
	loaded bool
}

// New creates a session with the given (possibly previously stored)
// scheme, so colors survive across reloads of the same session.
func New(id string, scheme common.Scheme) *Session {
	return &Session{
		ID:     id,
		scheme: scheme.Clone(),
	}
}

// LoadInfo summarizes one committed load for caller-side logging and the
// "no data" status of an empty result.
type LoadInfo struct {
	NodeCount            int  `json:"node_count"`
	RelationshipCount    int  `json:"relationship_count"`
	SkippedNodes         int  `json:"skipped_nodes,omitempty"`
	SkippedRelationships int  `json:"skipped_relationships,omitempty"`
	Empty                bool `json:"empty"`
}

// Load fetches raw data and commits a fresh canonical graph. The previous
// graph is replaced only after the fetch succeeded and the whole
// normalization pass completed: a failed or cancelled fetch returns the
// error and leaves the committed state exactly as it was. The scheme is
// threaded forward, never reset by a load.
func (s *Session) Load(ctx context.Context, fetch func(context.Context) (query.Result, error)) (LoadInfo, error) {
	raw, err := fetch(ctx)
	if err != nil {
		return LoadInfo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := graph.Normalize(raw.Nodes, raw.Relationships, s.scheme)
	s.nodes = res.Nodes
	s.rels = res.Relationships
	s.scheme = res.Scheme
	s.loaded = true

	return LoadInfo{
		NodeCount:            len(res.Nodes),
		RelationshipCount:    len(res.Relationships),
		SkippedNodes:         res.SkippedNodes,
		SkippedRelationships: res.SkippedRelationships,
		Empty:                len(res.Nodes) == 0 && len(res.Relationships) == 0,
	}, nil
}

// Restore replaces the session state from a stored snapshot without a
// fetch, used when hydrating a session from persistence.
func (s *Session) Restore(nodes []common.Node, rels []common.Relationship, scheme common.Scheme) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nodes = nodes
	s.rels = rels
	s.scheme = scheme.Clone()
	s.loaded = len(nodes) > 0 || len(rels) > 0
}

// ViewOptions drive one view computation. Categories and Query follow the
// filter engine's contract; Mode selects data or schema output.
type ViewOptions struct {
	Mode       ViewMode
	Categories []common.GraphType
	Query      string
}

// View is a computed visible set, ready for the rendering widget.
type View struct {
	Mode          ViewMode              `json:"mode"`
	Nodes         []common.Node         `json:"nodes"`
	Relationships []common.Relationship `json:"relationships"`
	Status        graph.FilterStatus    `json:"status"`
}

// View recomputes the visible subset from the full canonical graph. Every
// call starts from the committed graph, so repeated calls with changing
// criteria never narrow cumulatively. In schema mode the filtered set is
// reduced to its structural summary.
func (s *Session) View(opts ViewOptions) View {
	s.mu.Lock()
	nodes, rels := s.nodes, s.rels
	s.mu.Unlock()

	visibleNodes, visibleRels, status := graph.Filter(graph.FilterParams{
		Categories:    opts.Categories,
		Nodes:         nodes,
		Relationships: rels,
		Query:         opts.Query,
	})

	mode := opts.Mode
	if mode == "" {
		mode = ViewModeData
	}
	if mode == ViewModeSchema {
		visibleNodes, visibleRels = graph.ExtractSchema(visibleNodes, visibleRels)
	}

	return View{
		Mode:          mode,
		Nodes:         visibleNodes,
		Relationships: visibleRels,
		Status:        status,
	}
}

// Render pushes a view to a rendering widget and frames it.
func (s *Session) Render(w render.Widget, v View) {
	w.SetNodes(v.Nodes)
	w.SetRelationships(v.Relationships)

	ids := make([]string, 0, len(v.Nodes))
	for _, n := range v.Nodes {
		ids = append(ids, n.ID)
	}
	w.FitView(ids)
}

// Conditions reports the per-category presence booleans for the UI
// toggles.
func (s *Session) Conditions() map[common.GraphType]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return graph.Conditions(s.nodes)
}

// Categories returns the distinct categories present in the committed
// graph, in precedence order.
func (s *Session) Categories() []common.GraphType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return graph.Categories(s.nodes)
}

// Scheme returns a copy of the accumulated scheme for persistence.
func (s *Session) Scheme() common.Scheme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheme.Clone()
}

// Snapshot returns the committed graph for persistence or export.
func (s *Session) Snapshot() ([]common.Node, []common.Relationship) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nodes, s.rels
}

// Loaded reports whether any load has been committed.
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Reset clears the graph and the scheme. This is the only operation that
// drops color assignments; plain reloads always keep them.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes = nil
	s.rels = nil
	s.scheme = common.Scheme{}
	s.loaded = false
}
