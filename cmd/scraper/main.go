package main

import (
	"context"
	"flag"
	"log"
	"time"

	"job-insight/internal/app"
	"job-insight/internal/config"
	"job-insight/internal/database/migration"
)

func main() {
	source := flag.String("source", "mock", "ingest source: mock, board or headless")
	pages := flag.Int("pages", 0, "listing pages to crawl (0 uses SCRAPER_PAGE_LIMIT)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *pages > 0 {
		cfg.Scraper.PageLimit = *pages
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	r := migration.Runner{Dir: "migrations", Logger: c.Logger}
	if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if err := c.Scraper.Trigger(*source); err != nil {
		log.Fatalf("trigger failed: %v", err)
	}

	// The run executes on a background goroutine, poll until it settles.
	for {
		time.Sleep(time.Second)
		st := c.Scraper.Status()
		if st.IsRunning {
			continue
		}
		if st.Error != "" {
			log.Fatalf("scrape failed: %s", st.Error)
		}
		log.Printf("scrape finished source=%s written=%d total=%d", *source, st.JobCount, st.TotalJobs)
		return
	}
}
