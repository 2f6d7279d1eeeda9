// Package router registers the API routes on an Echo instance.
package router

import (
	"github.com/labstack/echo/v4"

	"matchproxy/internal/handler"
)

func Register(e *echo.Echo, m *handler.MatchHandler) {
	e.GET("/healthz", handler.Health)
	e.POST("/api/match", m.Match)
}
