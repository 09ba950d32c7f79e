package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"tradeaskill/internal/config"
	"tradeaskill/internal/delivery/http/handler"
	"tradeaskill/internal/delivery/http/middleware"
	"tradeaskill/internal/delivery/http/routes"
	"tradeaskill/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the HTTP app around an already wired container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)

	session := middleware.NewSessionMiddleware(
		c.JWT,
		c.Config.Session.CookieName,
		c.Config.Session.TTL,
		c.Config.Session.Secure,
		c.Logger,
	)
	registry := routes.NewRegistry(routes.Handlers{
		Skills:  handler.NewSkillHandler(c.Browser),
		Profile: handler.NewProfileHandler(c.Profiles),
		Signup:  handler.NewSignupHandler(c.Signup),
	}, session.Middleware(), ws.NewHandler(c.Hub, c.Logger))
	registry.Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.Default()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	logger.Printf("[App] %s starting env=%s store=%s skills_fallback=%s", cfg.App.AppName, cfg.App.Environment, cfg.Store.Backend, cfg.Upstream.SkillsFallback)
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	accessLog := middleware.NewAccessLogMiddleware(logger, "/health", "/metrics")
	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(accessLog.Middleware())
	app.Use(errMw.Middleware())
	app.Use(middleware.Metrics())
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
