package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kgview/kgview/internal/queue"
	"github.com/kgview/kgview/internal/server/middleware"
	"github.com/kgview/kgview/pkg/logger"
	"github.com/kgview/kgview/pkg/session"
)

// RefreshSessionHandler queues a background snapshot refresh for a session
func RefreshSessionHandler(c echo.Context) error {
	type refreshSessionBody struct {
		SessionID string `param:"id" validate:"required"`
		GraphID   string `json:"graph_id" validate:"required"`
	}

	type refreshSessionResponse struct {
		Message string `json:"message"`
	}

	data := new(refreshSessionBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, refreshSessionResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, refreshSessionResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	if _, err := app.Sessions.Get(ctx, data.SessionID); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, refreshSessionResponse{
				Message: "Session not found",
			})
		}
		logger.Error("Failed to load session", "err", err)
		return c.JSON(http.StatusInternalServerError, refreshSessionResponse{
			Message: "Internal server error",
		})
	}

	msg, err := json.Marshal(queue.RefreshMessage{
		SessionID: data.SessionID,
		GraphID:   data.GraphID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, refreshSessionResponse{
			Message: "Internal server error",
		})
	}

	if err := queue.PublishFIFO(app.Queue, queue.RefreshQueue, msg); err != nil {
		logger.Error("Failed to publish to refresh_queue", "err", err)
		return c.JSON(http.StatusInternalServerError, refreshSessionResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, refreshSessionResponse{
		Message: "Refresh queued",
	})
}
