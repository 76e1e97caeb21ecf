package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kgview/kgview/internal/util"
	"github.com/kgview/kgview/pkg/graph"
	"github.com/kgview/kgview/pkg/logger"
	"github.com/kgview/kgview/pkg/query"
	"github.com/kgview/kgview/pkg/store"
)

// RefreshMessage is the payload of one refresh job.
type RefreshMessage struct {
	SessionID string `json:"session_id"`
	GraphID   string `json:"graph_id"`
}

// ProcessRefreshMessage re-fetches a session's source graph, normalizes it
// against the stored scheme (threading the scheme forward so existing
// labels keep their colors), and persists the fresh snapshot. Fetch
// retries live here; a failed refresh leaves the stored snapshot as it
// was.
func ProcessRefreshMessage(
	ctx context.Context,
	queryClient query.Client,
	storage store.SessionStorage,
	body string,
) error {
	var msg RefreshMessage
	if err := json.Unmarshal([]byte(body), &msg); err != nil {
		return fmt.Errorf("invalid refresh message: %w", err)
	}
	if msg.SessionID == "" || msg.GraphID == "" {
		return fmt.Errorf("refresh message missing session_id or graph_id")
	}

	scheme, err := storage.GetScheme(ctx, msg.SessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Session was deleted since the job was queued; drop the job.
			logger.Warn("[Refresh] Session no longer exists", "session_id", msg.SessionID)
			return nil
		}
		return fmt.Errorf("failed to load scheme: %w", err)
	}

	maxRetries := int(util.GetEnvNumeric("FETCH_MAX_RETRIES", 3))
	raw, err := util.RetryWithContext(ctx, maxRetries, func(ctx context.Context) (query.Result, error) {
		return queryClient.FetchGraph(ctx, msg.GraphID)
	})
	if err != nil {
		return fmt.Errorf("failed to fetch graph %s: %w", msg.GraphID, err)
	}

	res := graph.Normalize(raw.Nodes, raw.Relationships, scheme)
	if res.SkippedNodes > 0 || res.SkippedRelationships > 0 {
		logger.Debug(
			"[Refresh] Skipped malformed records",
			"session_id", msg.SessionID,
			"nodes", res.SkippedNodes,
			"relationships", res.SkippedRelationships,
		)
	}

	if err := storage.SaveScheme(ctx, msg.SessionID, res.Scheme); err != nil {
		return err
	}
	if err := storage.SaveSnapshot(ctx, msg.SessionID, res.Nodes, res.Relationships); err != nil {
		return err
	}

	logger.Info(
		"[Refresh] Snapshot updated",
		"session_id", msg.SessionID,
		"nodes", len(res.Nodes),
		"relationships", len(res.Relationships),
	)
	return nil
}
