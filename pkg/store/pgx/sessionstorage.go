// Package pgx implements store.SessionStorage on PostgreSQL. Schemes and
// snapshots are stored as jsonb so the schema never chases the display
// model.
package pgx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	pgxv5 "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kgview/kgview/pkg/common"
	"github.com/kgview/kgview/pkg/store"
)

type pgxIConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...any) (pgxv5.Rows, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...any) pgxv5.Row
}

// SessionDBStorage implements store.SessionStorage using a pgx connection
// or pool.
type SessionDBStorage struct {
	conn pgxIConn
}

func NewSessionDBStorage(conn pgxIConn) *SessionDBStorage {
	return &SessionDBStorage{conn: conn}
}

func (s *SessionDBStorage) SaveScheme(ctx context.Context, sessionID string, scheme common.Scheme) error {
	payload, err := json.Marshal(scheme)
	if err != nil {
		return fmt.Errorf("failed to encode scheme: %w", err)
	}

	_, err = s.conn.Exec(ctx, `
		INSERT INTO viz_sessions (id, scheme)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE
		SET scheme = EXCLUDED.scheme, updated_at = now()
	`, sessionID, payload)
	if err != nil {
		return fmt.Errorf("failed to save scheme: %w", err)
	}
	return nil
}

func (s *SessionDBStorage) GetScheme(ctx context.Context, sessionID string) (common.Scheme, error) {
	var payload []byte
	err := s.conn.QueryRow(ctx, `
		SELECT scheme FROM viz_sessions WHERE id = $1
	`, sessionID).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgxv5.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load scheme: %w", err)
	}

	scheme := common.Scheme{}
	if err := json.Unmarshal(payload, &scheme); err != nil {
		return nil, fmt.Errorf("failed to decode scheme: %w", err)
	}
	return scheme, nil
}

func (s *SessionDBStorage) SaveSnapshot(ctx context.Context, sessionID string, nodes []common.Node, rels []common.Relationship) error {
	nodePayload, err := json.Marshal(nodes)
	if err != nil {
		return fmt.Errorf("failed to encode nodes: %w", err)
	}
	relPayload, err := json.Marshal(rels)
	if err != nil {
		return fmt.Errorf("failed to encode relationships: %w", err)
	}

	_, err = s.conn.Exec(ctx, `
		INSERT INTO viz_snapshots (session_id, nodes, relationships)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id) DO UPDATE
		SET nodes = EXCLUDED.nodes, relationships = EXCLUDED.relationships, updated_at = now()
	`, sessionID, nodePayload, relPayload)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (s *SessionDBStorage) GetSnapshot(ctx context.Context, sessionID string) ([]common.Node, []common.Relationship, error) {
	var nodePayload, relPayload []byte
	err := s.conn.QueryRow(ctx, `
		SELECT nodes, relationships FROM viz_snapshots WHERE session_id = $1
	`, sessionID).Scan(&nodePayload, &relPayload)
	if err != nil {
		if errors.Is(err, pgxv5.ErrNoRows) {
			return nil, nil, store.ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var nodes []common.Node
	if err := json.Unmarshal(nodePayload, &nodes); err != nil {
		return nil, nil, fmt.Errorf("failed to decode nodes: %w", err)
	}
	var rels []common.Relationship
	if err := json.Unmarshal(relPayload, &rels); err != nil {
		return nil, nil, fmt.Errorf("failed to decode relationships: %w", err)
	}
	return nodes, rels, nil
}

func (s *SessionDBStorage) DeleteSession(ctx context.Context, sessionID string) error {
	tag, err := s.conn.Exec(ctx, `
		DELETE FROM viz_sessions WHERE id = $1
	`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
