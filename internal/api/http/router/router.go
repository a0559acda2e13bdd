package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/exitthree/formgate/config"
	"github.com/exitthree/formgate/internal/api/http/handler"
	"github.com/exitthree/formgate/internal/api/http/middleware"
	"github.com/exitthree/formgate/internal/service/lead"
	"github.com/exitthree/formgate/internal/service/notify"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg       *config.Config
	Redis     *redis.Client
	LeadSvc   lead.Service
	NotifySvc notify.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	leadH := handler.NewLeadHandler(r.p.LeadSvc)
	contactH := handler.NewContactHandler(r.p.NotifySvc)

	// Edge quotas, one sliding window per route per client.
	leadLimit := middleware.NewRouteLimiter(r.p.Redis, "lead", r.p.Cfg.RateLimit.Lead)
	emailLimit := middleware.NewRouteLimiter(r.p.Redis, "email", r.p.Cfg.RateLimit.Email)

	api := app.Group("/api")

	r.registerLeadRoutes(api, leadH, leadLimit)
	r.registerContactRoutes(api, contactH, emailLimit)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
