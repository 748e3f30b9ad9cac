package app

import (
	"context"
	"fmt"
	"strings"

	"jobquery/internal/config"
	"jobquery/internal/delivery/http/handler"
	"jobquery/internal/delivery/http/middleware"
	"jobquery/internal/delivery/http/routes"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber *fiber.App
}

func New(cfg config.Config, c *Container, logger *log.Logger) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, cfg, logger)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

// Bootstrap builds the container and the fiber app. The returned cleanup
// releases Redis and Postgres connections.
func Bootstrap(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(cfg, c, logger), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())

	origins := cfg.App.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	app.Use(cors.New(cors.Config{AllowOrigins: origins}))
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	var pinger handler.Pinger
	if c.Cache != nil {
		pinger = c.Cache
	}
	routes.NewRegistry(
		handler.NewHealthHandler(pinger),
		handler.NewQueryHandler(c.Queries),
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
