package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kgview/kgview/internal/server/middleware"
	"github.com/kgview/kgview/pkg/logger"
	"github.com/kgview/kgview/pkg/session"
)

// DeleteSessionHandler resets and removes a session, dropping its stored
// scheme and snapshot
func DeleteSessionHandler(c echo.Context) error {
	type deleteSessionParams struct {
		SessionID string `param:"id" validate:"required"`
	}

	type deleteSessionResponse struct {
		Message string `json:"message"`
	}

	params := new(deleteSessionParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteSessionResponse{
			Message: "Invalid request",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteSessionResponse{
			Message: "Invalid request",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ctx := c.Request().Context()
	sessions := c.(*middleware.AppContext).App.Sessions

	s, err := sessions.Get(ctx, params.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, deleteSessionResponse{
				Message: "Session not found",
			})
		}
		logger.Error("Failed to load session", "err", err)
		return c.JSON(http.StatusInternalServerError, deleteSessionResponse{
			Message: "Internal server error",
		})
	}

	s.Reset()
	if err := sessions.Delete(ctx, params.SessionID); err != nil {
		logger.Error("Failed to delete session", "session_id", params.SessionID, "err", err)
		return c.JSON(http.StatusInternalServerError, deleteSessionResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, deleteSessionResponse{
		Message: "Session deleted successfully",
	})
}
