package session

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/kgview/kgview/pkg/common"
	"github.com/kgview/kgview/pkg/fixture"
	"github.com/kgview/kgview/pkg/graph"
	"github.com/kgview/kgview/pkg/query"
	"github.com/kgview/kgview/pkg/store"
)

func fixtureFetch(context.Context) (query.Result, error) {
	nodes, rels := fixture.SampleGraph()
	return query.Result{Nodes: nodes, Relationships: rels}, nil
}

func TestLoadCommitsGraph(t *testing.T) {
	s := New("s1", common.Scheme{})

	info, err := s.Load(context.Background(), fixtureFetch)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if info.Empty {
		t.Error("sample load reported empty")
	}
	if info.SkippedRelationships != 1 {
		t.Errorf("SkippedRelationships = %d, want 1 (the dangling fixture edge)", info.SkippedRelationships)
	}
	if !s.Loaded() {
		t.Error("session not marked loaded")
	}
}

func TestLoadFailureKeepsCommittedGraph(t *testing.T) {
	s := New("s1", common.Scheme{})
	if _, err := s.Load(context.Background(), fixtureFetch); err != nil {
		t.Fatalf("initial Load() error = %v", err)
	}
	before := s.View(ViewOptions{Categories: common.GraphTypes})

	_, err := s.Load(context.Background(), func(context.Context) (query.Result, error) {
		return query.Result{}, &query.FetchError{Timeout: true, Err: context.DeadlineExceeded}
	})
	if err == nil {
		t.Fatal("expected fetch error")
	}
	if !query.IsTimeout(err) {
		t.Errorf("timeout not preserved: %v", err)
	}

	after := s.View(ViewOptions{Categories: common.GraphTypes})
	if !reflect.DeepEqual(before, after) {
		t.Error("failed load modified the committed graph")
	}
}

func TestLoadCancelledKeepsCommittedGraph(t *testing.T) {
	s := New("s1", common.Scheme{})
	if _, err := s.Load(context.Background(), fixtureFetch); err != nil {
		t.Fatalf("initial Load() error = %v", err)
	}
	before := s.View(ViewOptions{Categories: common.GraphTypes})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Load(ctx, func(ctx context.Context) (query.Result, error) {
		return query.Result{}, ctx.Err()
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}

	after := s.View(ViewOptions{Categories: common.GraphTypes})
	if !reflect.DeepEqual(before, after) {
		t.Error("cancelled load modified the committed graph")
	}
}

func TestSchemeSurvivesReload(t *testing.T) {
	s := New("s1", common.Scheme{})
	if _, err := s.Load(context.Background(), fixtureFetch); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	first := s.Scheme()

	if _, err := s.Load(context.Background(), fixtureFetch); err != nil {
		t.Fatalf("reload error = %v", err)
	}
	second := s.Scheme()

	for label, color := range first {
		if second[label] != color {
			t.Errorf("label %q recolored on reload: %q then %q", label, color, second[label])
		}
	}
}

func TestResetClearsScheme(t *testing.T) {
	s := New("s1", common.Scheme{})
	if _, err := s.Load(context.Background(), fixtureFetch); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	s.Reset()

	if s.Loaded() {
		t.Error("session still loaded after reset")
	}
	if len(s.Scheme()) != 0 {
		t.Errorf("scheme not cleared: %v", s.Scheme())
	}
}

func TestViewSchemaMode(t *testing.T) {
	s := New("s1", common.Scheme{})
	if _, err := s.Load(context.Background(), fixtureFetch); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	data := s.View(ViewOptions{Categories: common.GraphTypes})
	schema := s.View(ViewOptions{Mode: ViewModeSchema, Categories: common.GraphTypes})

	if len(schema.Nodes) >= len(data.Nodes) {
		t.Errorf("schema view (%d nodes) not smaller than data view (%d nodes)",
			len(schema.Nodes), len(data.Nodes))
	}
	if schema.Status != graph.FilterStatusOK {
		t.Errorf("schema status = %v", schema.Status)
	}
}

func TestViewEmptyCategories(t *testing.T) {
	s := New("s1", common.Scheme{})
	if _, err := s.Load(context.Background(), fixtureFetch); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	v := s.View(ViewOptions{})
	if len(v.Nodes) != 0 || v.Status != graph.FilterStatusNoCategories {
		t.Errorf("view = %d nodes, status %v; want 0 nodes, no_categories", len(v.Nodes), v.Status)
	}
}

type recordingWidget struct {
	nodes  []common.Node
	rels   []common.Relationship
	fitted []string
	zoom   float64
}

func (w *recordingWidget) SetNodes(nodes []common.Node)               { w.nodes = nodes }
func (w *recordingWidget) SetRelationships(rels []common.Relationship) { w.rels = rels }
func (w *recordingWidget) FitView(ids []string)                        { w.fitted = ids }
func (w *recordingWidget) Zoom() float64                               { return w.zoom }
func (w *recordingWidget) SetZoom(level float64)                       { w.zoom = level }
func (w *recordingWidget) OnNodeClick(func(id string))                 {}
func (w *recordingWidget) OnRelationshipClick(func(id string))         {}

func TestRenderPushesViewToWidget(t *testing.T) {
	s := New("s1", common.Scheme{})
	if _, err := s.Load(context.Background(), fixtureFetch); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	v := s.View(ViewOptions{Categories: []common.GraphType{common.GraphTypeDocument}})
	w := &recordingWidget{}
	s.Render(w, v)

	if len(w.nodes) != len(v.Nodes) || len(w.rels) != len(v.Relationships) {
		t.Errorf("widget received %d/%d, want %d/%d",
			len(w.nodes), len(w.rels), len(v.Nodes), len(v.Relationships))
	}
	if len(w.fitted) != len(v.Nodes) {
		t.Errorf("FitView got %d ids, want %d", len(w.fitted), len(v.Nodes))
	}
}

type memoryStorage struct {
	schemes   map[string]common.Scheme
	snapNodes map[string][]common.Node
	snapRels  map[string][]common.Relationship
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{
		schemes:   make(map[string]common.Scheme),
		snapNodes: make(map[string][]common.Node),
		snapRels:  make(map[string][]common.Relationship),
	}
}

func (m *memoryStorage) SaveScheme(_ context.Context, id string, scheme common.Scheme) error {
	m.schemes[id] = scheme.Clone()
	return nil
}

func (m *memoryStorage) GetScheme(_ context.Context, id string) (common.Scheme, error) {
	scheme, ok := m.schemes[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return scheme.Clone(), nil
}

func (m *memoryStorage) SaveSnapshot(_ context.Context, id string, nodes []common.Node, rels []common.Relationship) error {
	m.snapNodes[id] = nodes
	m.snapRels[id] = rels
	return nil
}

func (m *memoryStorage) GetSnapshot(_ context.Context, id string) ([]common.Node, []common.Relationship, error) {
	nodes, ok := m.snapNodes[id]
	if !ok {
		return nil, nil, store.ErrNotFound
	}
	return nodes, m.snapRels[id], nil
}

func (m *memoryStorage) DeleteSession(_ context.Context, id string) error {
	delete(m.schemes, id)
	delete(m.snapNodes, id)
	delete(m.snapRels, id)
	return nil
}

func TestManagerHydratesFromStorage(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryStorage()

	mgr := NewManager(storage)
	s, err := mgr.Create(ctx)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := s.Load(ctx, fixtureFetch); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := mgr.Persist(ctx, s); err != nil {
		t.Fatalf("Persist() error = %v", err)
	}
	scheme := s.Scheme()

	// A fresh manager simulates a process restart.
	restarted := NewManager(storage)
	hydrated, err := restarted.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("Get() after restart error = %v", err)
	}
	if !hydrated.Loaded() {
		t.Error("hydrated session has no snapshot")
	}
	if !reflect.DeepEqual(hydrated.Scheme(), scheme) {
		t.Errorf("hydrated scheme differs: %v vs %v", hydrated.Scheme(), scheme)
	}
}

func TestManagerUnknownSession(t *testing.T) {
	mgr := NewManager(newMemoryStorage())
	if _, err := mgr.Get(context.Background(), "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get() error = %v, want ErrSessionNotFound", err)
	}
}

func TestManagerDelete(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryStorage()
	mgr := NewManager(storage)

	s, err := mgr.Create(ctx)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := mgr.Delete(ctx, s.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := mgr.Get(ctx, s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("deleted session still resolvable: %v", err)
	}
}
