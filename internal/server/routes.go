package server

import (
	"github.com/graphmind-ai/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.POST("/upload", routes.UploadDocumentsHandler)
	e.GET("/documents", routes.GetDocumentsHandler)
	e.GET("/graph/:doc_id", routes.GetDocumentGraphHandler)
}
