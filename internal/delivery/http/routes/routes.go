package routes

import (
	"log"

	"job-insight/internal/config"
	"job-insight/internal/database"
	"job-insight/internal/delivery/http/handler"
	v1 "job-insight/internal/delivery/http/routes/v1"
	"job-insight/internal/scraper"
	"job-insight/internal/usecase"
	"job-insight/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries everything the route tree needs to build its handlers.
type Deps struct {
	Config  config.Config
	DB      database.DB
	Cache   usecase.Cache
	Hub     *ws.Hub
	Scraper *scraper.Service
	Logger  *log.Logger
}

type Registry struct {
	deps   Deps
	health *handler.HealthHandler
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{
		deps:   deps,
		health: handler.NewHealthHandler(deps.DB),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), v1.Deps{
		Config:  r.deps.Config,
		DB:      r.deps.DB,
		Cache:   r.deps.Cache,
		Hub:     r.deps.Hub,
		Scraper: r.deps.Scraper,
		Logger:  r.deps.Logger,
	})
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.deps.Hub == nil {
		return
	}
	wsHandler := ws.NewHandler(r.deps.Hub, r.deps.Logger)
	app.Get("/ws/analysis", wsHandler.HandleAnalysisWS)
}
