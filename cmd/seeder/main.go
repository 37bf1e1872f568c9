package main

import (
	"context"
	"log"
	"time"

	"job-insight/internal/app"
	"job-insight/internal/config"
	"job-insight/internal/database/migration"
	"job-insight/internal/database/seeder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	r := migration.Runner{Dir: "migrations", Logger: c.Logger}
	if err := r.Run(ctx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	runner := seeder.Runner{Seeders: seeder.Defaults(), Logger: c.Logger}
	if err := runner.Run(ctx, c.DB); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("seeding finished")
}
