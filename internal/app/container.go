package app

import (
	"context"
	"log"
	"os"
	"time"

	"job-insight/internal/config"
	"job-insight/internal/database"
	dbpostgres "job-insight/internal/database/postgres"
	"job-insight/internal/infrastructure/cache"
	"job-insight/internal/repository"
	"job-insight/internal/scraper"
	"job-insight/internal/ws"
)

// Container holds the process-wide dependencies shared by the HTTP
// server and the scraper command.
type Container struct {
	Config  config.Config
	DB      database.DB
	Cache   *cache.Redis
	Hub     *ws.Hub
	Scraper *scraper.Service
	Logger  *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redis := cache.NewRedis(cfg.Redis, logger)
	hub := ws.NewHub(logger)

	jobRepo := repository.NewPostgresJobRepository(db)
	scrapeSvc := scraper.NewService(jobRepo, cfg.Scraper, hub, redis, redis, logger)

	return &Container{
		Config:  cfg,
		DB:      db,
		Cache:   redis,
		Hub:     hub,
		Scraper: scrapeSvc,
		Logger:  logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
