package routes

import (
	"tradeaskill/internal/delivery/http/handler"
	"tradeaskill/internal/pkg/metrics"
	"tradeaskill/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	health  *handler.HealthHandler
	handler Handlers
	session fiber.Handler
	ws      *ws.Handler
}

// Handlers are the session-scoped API handlers mounted under /api/v1.
type Handlers struct {
	Skills  *handler.SkillHandler
	Profile *handler.ProfileHandler
	Signup  *handler.SignupHandler
}

func NewRegistry(h Handlers, session fiber.Handler, wsHandler *ws.Handler) *Registry {
	return &Registry{health: handler.NewHealthHandler(), handler: h, session: session, ws: wsHandler}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerMetrics(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerMetrics(app *fiber.App) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws == nil {
		return
	}
	app.Get("/ws/profile", r.session, r.ws.HandleProfileWS)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api", r.session)
	RegisterV1(api.Group("/v1"), r.handler)
}
