package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"job-insight/internal/config"
	"job-insight/internal/database/migration"
	"job-insight/internal/database/seeder"
	"job-insight/internal/delivery/http/middleware"
	"job-insight/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap connects the dependencies, applies migrations, runs the
// seeders and builds the HTTP app. The returned cleanup closes
// everything the container opened.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := prepareStorage(c); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	go c.Hub.Run()

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, c.Logger)

	registry := routes.NewRegistry(routes.Deps{
		Config:  c.Config,
		DB:      c.DB,
		Cache:   c.Cache,
		Hub:     c.Hub,
		Scraper: c.Scraper,
		Logger:  c.Logger,
	})
	registry.Register(f)

	app := &App{Fiber: f, Container: c}
	return app, c.Close, nil
}

func prepareStorage(c *Container) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	runner := migration.Runner{Dir: "migrations", Logger: c.Logger}
	if err := runner.Run(ctx, c.DB.SQLDB()); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	seedRunner := seeder.Runner{Seeders: seeder.Defaults(), Logger: c.Logger}
	if err := seedRunner.Run(ctx, c.DB); err != nil {
		return fmt.Errorf("seed storage: %w", err)
	}
	return nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())

	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(errMw.Middleware())
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
