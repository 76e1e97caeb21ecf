package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kgview/kgview/internal/server/middleware"
	"github.com/kgview/kgview/pkg/logger"
	"github.com/kgview/kgview/pkg/session"
)

// GetSessionSchemaHandler returns the structural summary of the session's
// visible set, honoring the same filter parameters as the graph route
func GetSessionSchemaHandler(c echo.Context) error {
	type getSchemaParams struct {
		SessionID string `param:"id" validate:"required"`
		Types     string `query:"types"`
		Search    string `query:"search"`
	}

	type getSchemaResponse struct {
		Message string        `json:"message,omitempty"`
		View    *session.View `json:"view,omitempty"`
	}

	params := new(getSchemaParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getSchemaResponse{
			Message: "Invalid request",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getSchemaResponse{
			Message: "Invalid request",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	types, ok := parseGraphTypes(params.Types)
	if !ok {
		return c.JSON(http.StatusBadRequest, getSchemaResponse{
			Message: "Unknown category",
		})
	}

	ctx := c.Request().Context()
	sessions := c.(*middleware.AppContext).App.Sessions

	s, err := sessions.Get(ctx, params.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, getSchemaResponse{
				Message: "Session not found",
			})
		}
		logger.Error("Failed to load session", "err", err)
		return c.JSON(http.StatusInternalServerError, getSchemaResponse{
			Message: "Internal server error",
		})
	}

	view := s.View(session.ViewOptions{
		Mode:       session.ViewModeSchema,
		Categories: types,
		Query:      params.Search,
	})

	return c.JSON(http.StatusOK, getSchemaResponse{
		View: &view,
	})
}
