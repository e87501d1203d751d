package routes

import (
	"net/http"

	"github.com/graphmind-ai/backend/internal/server/middleware"
	"github.com/graphmind-ai/backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// GetDocumentsHandler lists every stored document ordered by filename.
func GetDocumentsHandler(c echo.Context) error {
	type errorResponse struct {
		Message string `json:"message"`
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	documents, err := app.Graph.ListDocuments(ctx)
	if err != nil {
		logger.Error("Failed to list documents", "err", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Message: "Internal server error",
		})
	}
	if len(documents) == 0 {
		return c.JSON(http.StatusNotFound, errorResponse{
			Message: "No documents found",
		})
	}

	return c.JSON(http.StatusOK, documents)
}
