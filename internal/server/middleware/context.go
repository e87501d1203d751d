package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/graphmind-ai/backend/pkg/graph"
	"github.com/graphmind-ai/backend/pkg/store"
)

// App holds the process-wide collaborators shared by all request handlers.
type App struct {
	Store store.GraphStore
	Graph *graph.GraphClient
}

// AppContext wraps the echo context with the shared application state.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware attaches the shared App to every request context.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{c, app})
		}
	}
}
