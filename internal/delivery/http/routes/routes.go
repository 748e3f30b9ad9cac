package routes

import (
	"jobquery/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	query  *handler.QueryHandler
}

func NewRegistry(health *handler.HealthHandler, query *handler.QueryHandler) *Registry {
	return &Registry{health: health, query: query}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil || r == nil {
		return
	}

	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
	if r.query != nil {
		r.query.RegisterRoutes(app)
	}
}
