package routes

import (
	"errors"
	"net/http"

	"github.com/graphmind-ai/backend/internal/server/middleware"
	"github.com/graphmind-ai/backend/pkg/logger"
	"github.com/graphmind-ai/backend/pkg/store"

	"github.com/labstack/echo/v4"
)

// GetDocumentGraphHandler returns the visualization graph for one document.
func GetDocumentGraphHandler(c echo.Context) error {
	type graphParams struct {
		DocumentID string `param:"doc_id" validate:"required"`
	}

	type errorResponse struct {
		Message string `json:"message"`
	}

	params := new(graphParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	view, err := app.Graph.DocumentGraph(ctx, params.DocumentID)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{
				Message: "Document not found",
			})
		}
		logger.Error("Failed to build document graph", "doc_id", params.DocumentID, "err", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, view)
}
