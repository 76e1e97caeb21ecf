package routes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kgview/kgview/internal/server/middleware"
	"github.com/kgview/kgview/pkg/common"
	"github.com/kgview/kgview/pkg/logger"
	"github.com/kgview/kgview/pkg/session"
)

// parseGraphTypes parses a comma-separated category list. Unknown names
// are rejected so a typo does not silently hide a category.
func parseGraphTypes(raw string) ([]common.GraphType, bool) {
	if raw == "" {
		return nil, true
	}

	parts := strings.Split(raw, ",")
	types := make([]common.GraphType, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		found := false
		for _, t := range common.GraphTypes {
			if string(t) == name {
				types = append(types, t)
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return types, true
}

// GetSessionGraphHandler computes the visible set for a session from the
// requested categories, search query and view mode
func GetSessionGraphHandler(c echo.Context) error {
	type getGraphParams struct {
		SessionID string `param:"id" validate:"required"`
		Types     string `query:"types"`
		Search    string `query:"search"`
		Mode      string `query:"mode"`
	}

	type getGraphResponse struct {
		Message string        `json:"message,omitempty"`
		View    *session.View `json:"view,omitempty"`
	}

	params := new(getGraphParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getGraphResponse{
			Message: "Invalid request",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getGraphResponse{
			Message: "Invalid request",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	mode := session.ViewModeData
	switch params.Mode {
	case "", "data":
	case "schema":
		mode = session.ViewModeSchema
	default:
		return c.JSON(http.StatusBadRequest, getGraphResponse{
			Message: "Unknown view mode",
		})
	}

	types, ok := parseGraphTypes(params.Types)
	if !ok {
		return c.JSON(http.StatusBadRequest, getGraphResponse{
			Message: "Unknown category",
		})
	}

	ctx := c.Request().Context()
	sessions := c.(*middleware.AppContext).App.Sessions

	s, err := sessions.Get(ctx, params.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, getGraphResponse{
				Message: "Session not found",
			})
		}
		logger.Error("Failed to load session", "err", err)
		return c.JSON(http.StatusInternalServerError, getGraphResponse{
			Message: "Internal server error",
		})
	}

	view := s.View(session.ViewOptions{
		Mode:       mode,
		Categories: types,
		Query:      params.Search,
	})

	return c.JSON(http.StatusOK, getGraphResponse{
		View: &view,
	})
}
