package v1

import (
	"log"

	"job-insight/internal/config"
	"job-insight/internal/database"
	"job-insight/internal/delivery/http/handler"
	"job-insight/internal/delivery/http/middleware"
	"job-insight/internal/pkg/jwt"
	"job-insight/internal/repository"
	"job-insight/internal/scraper"
	"job-insight/internal/usecase"
	"job-insight/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config  config.Config
	DB      database.DB
	Cache   usecase.Cache
	Hub     *ws.Hub
	Scraper *scraper.Service
	Logger  *log.Logger
}

// Register wires the v1 API: repositories, usecases and handlers.
// Reads are public, everything under /users requires a valid token.
func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessTTL,
		deps.Config.JWT.RefreshTTL,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(deps.DB)
	jobRepo := repository.NewPostgresJobRepository(deps.DB)

	var notifier usecase.Notifier
	if deps.Hub != nil {
		notifier = deps.Hub
	}

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo, deps.Cache)
	jobUC := usecase.NewJobUsecase(jobRepo, deps.Cache, deps.Logger)
	recommendUC := usecase.NewRecommendationUsecase(userRepo, jobRepo, deps.Cache, notifier, deps.Logger)
	analysisUC := usecase.NewAnalysisUsecase(jobRepo, deps.Cache, deps.Logger)
	skillUC := usecase.NewSkillUsecase(jobRepo)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC, recommendUC)
	jobHandler := handler.NewJobHandler(jobUC)
	skillHandler := handler.NewSkillHandler(skillUC)
	analysisHandler := handler.NewAnalysisHandler(analysisUC)

	authHandler.RegisterRoutes(r.Group("/auth"))
	jobHandler.RegisterRoutes(r.Group("/jobs"))
	skillHandler.RegisterRoutes(r.Group("/skills"))
	analysisHandler.RegisterRoutes(r.Group("/analysis"))

	if deps.Scraper != nil {
		scrapingHandler := handler.NewScrapingHandler(deps.Scraper)
		scrapingHandler.RegisterRoutes(r.Group("/scraping"))
	}

	protected := r.Group("", authMw.Middleware())
	userHandler.RegisterRoutes(protected.Group("/users"))
}
