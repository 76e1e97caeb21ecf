package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/kgview/kgview/internal/server/middleware"
	"github.com/kgview/kgview/internal/storage"
	"github.com/kgview/kgview/pkg/common"
	"github.com/kgview/kgview/pkg/logger"
	"github.com/kgview/kgview/pkg/session"
)

// ExportSessionHandler uploads the session's current visible set as JSON
// and returns a time-limited download link
func ExportSessionHandler(c echo.Context) error {
	type exportSessionBody struct {
		SessionID string `param:"id" validate:"required"`
		Types     string `json:"types"`
		Search    string `json:"search"`
		Mode      string `json:"mode"`
	}

	type exportSessionResponse struct {
		Message string `json:"message"`
		URL     string `json:"url,omitempty"`
	}

	type exportPayload struct {
		SessionID     string                `json:"session_id"`
		Mode          session.ViewMode      `json:"mode"`
		Nodes         []common.Node         `json:"nodes"`
		Relationships []common.Relationship `json:"relationships"`
	}

	data := new(exportSessionBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, exportSessionResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, exportSessionResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	mode := session.ViewModeData
	switch data.Mode {
	case "", "data":
	case "schema":
		mode = session.ViewModeSchema
	default:
		return c.JSON(http.StatusBadRequest, exportSessionResponse{
			Message: "Unknown view mode",
		})
	}

	types, ok := parseGraphTypes(data.Types)
	if !ok {
		return c.JSON(http.StatusBadRequest, exportSessionResponse{
			Message: "Unknown category",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	s, err := app.Sessions.Get(ctx, data.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, exportSessionResponse{
				Message: "Session not found",
			})
		}
		logger.Error("Failed to load session", "err", err)
		return c.JSON(http.StatusInternalServerError, exportSessionResponse{
			Message: "Internal server error",
		})
	}

	view := s.View(session.ViewOptions{
		Mode:       mode,
		Categories: types,
		Query:      data.Search,
	})

	payload, err := json.Marshal(exportPayload{
		SessionID:     s.ID,
		Mode:          view.Mode,
		Nodes:         view.Nodes,
		Relationships: view.Relationships,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, exportSessionResponse{
			Message: "Internal server error",
		})
	}

	exportID, err := gonanoid.New()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, exportSessionResponse{
			Message: "Internal server error",
		})
	}

	key, err := storage.PutJSON(ctx, app.S3, fmt.Sprintf("%s_%s", s.ID, exportID), payload)
	if err != nil {
		logger.Error("Failed to upload export", "session_id", s.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, exportSessionResponse{
			Message: "Internal server error",
		})
	}

	link, err := storage.GenerateDownloadLink(ctx, app.S3, key)
	if err != nil {
		logger.Error("Failed to generate download link", "session_id", s.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, exportSessionResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, exportSessionResponse{
		Message: "Export created successfully",
		URL:     link,
	})
}
