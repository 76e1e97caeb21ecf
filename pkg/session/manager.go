package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kgview/kgview/internal/util"
	"github.com/kgview/kgview/pkg/common"
	"github.com/kgview/kgview/pkg/store"
)

// ErrSessionNotFound is returned when an id matches neither a live session
// nor a stored one.
var ErrSessionNotFound = errors.New("session not found")

// Manager is the id-keyed registry of live sessions. When a session is not
// in memory it is hydrated from storage, which is how schemes (and the
// last snapshot) survive process restarts and page reloads.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	storage  store.SessionStorage
}

// NewManager creates a Manager. storage may be nil for a purely in-memory
// setup (tests, single-process demos).
func NewManager(storage store.SessionStorage) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		storage:  storage,
	}
}

// Create registers a new session under a fresh public id and persists its
// (empty) scheme row so later reloads find it.
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	id, err := util.NewPublicID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	s := New(id, common.Scheme{})

	if m.storage != nil {
		if err := m.storage.SaveScheme(ctx, id, common.Scheme{}); err != nil {
			return nil, fmt.Errorf("failed to persist session: %w", err)
		}
	}

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	return s, nil
}

// Get returns the live session for id, hydrating it from storage when the
// process has not seen it yet.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.Lock()
	if s, ok := m.sessions[id]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	if m.storage == nil {
		return nil, ErrSessionNotFound
	}

	scheme, err := m.storage.GetScheme(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session scheme: %w", err)
	}

	s := New(id, scheme)

	nodes, rels, err := m.storage.GetSnapshot(ctx, id)
	if err == nil {
		s.Restore(nodes, rels, scheme)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to load session snapshot: %w", err)
	}

	m.mu.Lock()
	// Another request may have hydrated the same id concurrently.
	if existing, ok := m.sessions[id]; ok {
		m.mu.Unlock()
		return existing, nil
	}
	m.sessions[id] = s
	m.mu.Unlock()

	return s, nil
}

// Persist writes the session's scheme and snapshot to storage.
func (m *Manager) Persist(ctx context.Context, s *Session) error {
	if m.storage == nil {
		return nil
	}

	if err := m.storage.SaveScheme(ctx, s.ID, s.Scheme()); err != nil {
		return fmt.Errorf("failed to persist scheme: %w", err)
	}
	nodes, rels := s.Snapshot()
	if err := m.storage.SaveSnapshot(ctx, s.ID, nodes, rels); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

// Delete drops the session from memory and storage.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()

	if m.storage == nil {
		return nil
	}
	if err := m.storage.DeleteSession(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to delete stored session: %w", err)
	}
	return nil
}
