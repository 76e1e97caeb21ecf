package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kgview/kgview/internal/server/middleware"
	"github.com/kgview/kgview/pkg/common"
	"github.com/kgview/kgview/pkg/logger"
	"github.com/kgview/kgview/pkg/session"
)

// GetSessionConditionsHandler reports which categories are present in the
// committed graph, for the UI's filter toggles
func GetSessionConditionsHandler(c echo.Context) error {
	type getConditionsParams struct {
		SessionID string `param:"id" validate:"required"`
	}

	type getConditionsResponse struct {
		Message    string                    `json:"message,omitempty"`
		Conditions map[common.GraphType]bool `json:"conditions,omitempty"`
		Categories []common.GraphType        `json:"categories,omitempty"`
	}

	params := new(getConditionsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getConditionsResponse{
			Message: "Invalid request",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getConditionsResponse{
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
			return c.JSON(http.StatusNotFound, getConditionsResponse{
				Message: "Session not found",
			})
		}
		logger.Error("Failed to load session", "err", err)
		return c.JSON(http.StatusInternalServerError, getConditionsResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, getConditionsResponse{
		Conditions: s.Conditions(),
		Categories: s.Categories(),
	})
}
