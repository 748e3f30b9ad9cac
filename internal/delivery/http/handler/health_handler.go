package handler

import (
	"context"
	"time"

	"jobquery/internal/delivery/http/dto"
	"jobquery/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler always answers 200; a down cache only degrades the service.
type HealthHandler struct {
	cache Pinger
}

func NewHealthHandler(cache Pinger) *HealthHandler {
	return &HealthHandler{cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	status := "down"
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Context(), time.Second)
		defer cancel()
		if err := h.cache.Ping(ctx); err == nil {
			status = "up"
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.HealthResponse{Cache: status})
}
