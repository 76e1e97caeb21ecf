// Package store defines persistence for visualization sessions: the color
// scheme (so labels keep their colors across reloads of the same session)
// and the last committed graph snapshot (so workers can refresh sessions
// out of band).
package store

import (
	"context"
	"errors"

	"github.com/kgview/kgview/pkg/common"
)

// ErrNotFound is returned when a session id has no stored row.
var ErrNotFound = errors.New("session not found")

// SessionStorage persists per-session schemes and graph snapshots.
type SessionStorage interface {
	SaveScheme(ctx context.Context, sessionID string, scheme common.Scheme) error
	GetScheme(ctx context.Context, sessionID string) (common.Scheme, error)

	SaveSnapshot(ctx context.Context, sessionID string, nodes []common.Node, rels []common.Relationship) error
	GetSnapshot(ctx context.Context, sessionID string) ([]common.Node, []common.Relationship, error)

	DeleteSession(ctx context.Context, sessionID string) error
}
