package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kgview/kgview/internal/server/middleware"
	"github.com/kgview/kgview/pkg/logger"
)

// CreateSessionHandler creates a new visualization session
func CreateSessionHandler(c echo.Context) error {
	type createSessionResponse struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id,omitempty"`
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ctx := c.Request().Context()
	sessions := c.(*middleware.AppContext).App.Sessions

	s, err := sessions.Create(ctx)
	if err != nil {
		logger.Error("Failed to create session", "err", err)
		return c.JSON(http.StatusInternalServerError, createSessionResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createSessionResponse{
		Message:   "Session created successfully",
		SessionID: s.ID,
	})
}
