package routes

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kgview/kgview/internal/server/middleware"
	"github.com/kgview/kgview/pkg/fixture"
	"github.com/kgview/kgview/pkg/logger"
	"github.com/kgview/kgview/pkg/query"
	"github.com/kgview/kgview/pkg/session"
)

// LoadSessionHandler fetches a source graph into a session. A failed or
// timed-out fetch leaves the session's committed graph untouched.
func LoadSessionHandler(c echo.Context) error {
	type loadSessionBody struct {
		SessionID string `param:"id" validate:"required"`
		Source    string `json:"source"`
		GraphID   string `json:"graph_id"`
	}

	type loadSessionResponse struct {
		Message string            `json:"message"`
		Info    *session.LoadInfo `json:"info,omitempty"`
	}

	data := new(loadSessionBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, loadSessionResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, loadSessionResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	s, err := app.Sessions.Get(ctx, data.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, loadSessionResponse{
				Message: "Session not found",
			})
		}
		logger.Error("Failed to load session", "err", err)
		return c.JSON(http.StatusInternalServerError, loadSessionResponse{
			Message: "Internal server error",
		})
	}

	var fetch func(context.Context) (query.Result, error)
	switch data.Source {
	case "", "sample":
		fetch = func(context.Context) (query.Result, error) {
			nodes, rels := fixture.SampleGraph()
			return query.Result{Nodes: nodes, Relationships: rels}, nil
		}
	case "remote":
		if data.GraphID == "" {
			return c.JSON(http.StatusBadRequest, loadSessionResponse{
				Message: "graph_id is required for remote loads",
			})
		}
		fetch = func(ctx context.Context) (query.Result, error) {
			return app.QueryClient.FetchGraph(ctx, data.GraphID)
		}
	default:
		return c.JSON(http.StatusBadRequest, loadSessionResponse{
			Message: "Unknown source",
		})
	}

	info, err := s.Load(ctx, fetch)
	if err != nil {
		logger.Error("Failed to fetch graph", "session_id", s.ID, "err", err)
		if query.IsTimeout(err) {
			return c.JSON(http.StatusGatewayTimeout, loadSessionResponse{
				Message: "Fetching the graph timed out",
			})
		}
		return c.JSON(http.StatusBadGateway, loadSessionResponse{
			Message: "Failed to fetch the graph",
		})
	}

	if info.SkippedNodes > 0 || info.SkippedRelationships > 0 {
		logger.Warn(
			"Skipped malformed records during load",
			"session_id", s.ID,
			"nodes", info.SkippedNodes,
			"relationships", info.SkippedRelationships,
		)
	}

	if err := app.Sessions.Persist(ctx, s); err != nil {
		logger.Error("Failed to persist session", "session_id", s.ID, "err", err)
	}

	msg := "Graph loaded successfully"
	if info.Empty {
		msg = "The query returned no data"
	}
	return c.JSON(http.StatusOK, loadSessionResponse{
		Message: msg,
		Info:    &info,
	})
}
