package scraper

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"job-insight/internal/config"
	"job-insight/internal/domain/job"
	"job-insight/internal/repository"
)

var (
	ErrAlreadyRunning = errors.New("a scrape run is already in progress")
	ErrUnknownSource  = errors.New("unknown scrape source")
)

const runTimeout = 10 * time.Minute

// Notifier receives ingest announcements. Satisfied by the ws hub.
type Notifier interface {
	NotifyJobsIngested(count int)
}

// Locker guards against concurrent runs across instances. Satisfied by
// the redis cache; a nil locker falls back to the in-process mutex only.
type Locker interface {
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

// Invalidator drops cached query results once a run has changed the
// posting set. Satisfied by the redis cache.
type Invalidator interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

const runLockKey = "scrape:lock"

// Status is a snapshot of the last and current scrape run.
type Status struct {
	IsRunning bool   `json:"is_running"`
	LastRun   string `json:"last_run,omitempty"`
	JobCount  int    `json:"job_count"`
	TotalJobs int    `json:"total_jobs"`
	Error     string `json:"error,omitempty"`
}

type CityStat struct {
	City         string  `json:"city"`
	Count        int     `json:"count"`
	AvgMinSalary float64 `json:"avg_min_salary"`
	AvgMaxSalary float64 `json:"avg_max_salary"`
}

type CategoryStat struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type Stats struct {
	TotalJobs     int            `json:"total_jobs"`
	CityStats     []CityStat     `json:"city_stats"`
	CategoryStats []CategoryStat `json:"category_stats"`
}

// Service coordinates scrape runs and exposes their status.
type Service struct {
	repo     repository.JobRepository
	cfg      config.ScraperConfig
	notifier Notifier
	locker   Locker
	cache    Invalidator
	logger   *log.Logger

	mu     sync.Mutex
	status Status
}

func NewService(
	repo repository.JobRepository,
	cfg config.ScraperConfig,
	notifier Notifier,
	locker Locker,
	cache Invalidator,
	logger *log.Logger,
) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		repo:     repo,
		cfg:      cfg,
		notifier: notifier,
		locker:   locker,
		cache:    cache,
		logger:   logger,
	}
}

// Trigger starts a background run for the given source. Returns
// ErrAlreadyRunning when one is in flight.
func (s *Service) Trigger(source string) error {
	fetch, err := s.fetcher(source)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.status.IsRunning {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.status.IsRunning = true
	s.status.Error = ""
	s.mu.Unlock()

	go s.run(source, fetch)
	return nil
}

// Status returns the current run snapshot.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Stats aggregates storage by city and category.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	postings, err := s.repo.ListAll(ctx)
	if err != nil {
		return Stats{}, err
	}

	type cityAcc struct {
		count  int
		sumMin int
		sumMax int
	}
	cities := map[string]*cityAcc{}
	categories := map[string]int{}
	for _, p := range postings {
		if p.City != "" {
			acc := cities[p.City]
			if acc == nil {
				acc = &cityAcc{}
				cities[p.City] = acc
			}
			acc.count++
			acc.sumMin += p.SalaryMin
			acc.sumMax += p.SalaryMax
		}
		if p.Category != "" {
			categories[p.Category]++
		}
	}

	out := Stats{
		TotalJobs:     len(postings),
		CityStats:     make([]CityStat, 0, len(cities)),
		CategoryStats: make([]CategoryStat, 0, len(categories)),
	}
	for city, acc := range cities {
		out.CityStats = append(out.CityStats, CityStat{
			City:         city,
			Count:        acc.count,
			AvgMinSalary: float64(acc.sumMin) / float64(acc.count),
			AvgMaxSalary: float64(acc.sumMax) / float64(acc.count),
		})
	}
	for category, count := range categories {
		out.CategoryStats = append(out.CategoryStats, CategoryStat{Category: category, Count: count})
	}
	sortCityStats(out.CityStats)
	sortCategoryStats(out.CategoryStats)
	return out, nil
}

// Clear wipes all stored postings. Refused while a run is in flight.
func (s *Service) Clear(ctx context.Context) (int, error) {
	s.mu.Lock()
	running := s.status.IsRunning
	s.mu.Unlock()
	if running {
		return 0, ErrAlreadyRunning
	}

	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.status.TotalJobs = 0
	s.status.JobCount = 0
	s.mu.Unlock()
	return deleted, nil
}

type fetchFunc func(ctx context.Context) ([]job.Posting, error)

func (s *Service) fetcher(source string) (fetchFunc, error) {
	switch source {
	case "mock":
		return func(context.Context) ([]job.Posting, error) {
			return NewMockSource(time.Now().UnixNano()).Fetch(50), nil
		}, nil
	case "board":
		return func(ctx context.Context) ([]job.Posting, error) {
			board := NewBoardScraper(s.cfg.BoardBaseURL, s.cfg.Concurrency, s.cfg.RatePerSec, s.logger)
			return board.Scrape(ctx, s.cfg.PageLimit)
		}, nil
	case "headless":
		return func(ctx context.Context) ([]job.Posting, error) {
			return s.scrapeHeadless(ctx)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, source)
	}
}

// scrapeHeadless renders the listing with Chrome, then reuses the colly
// detail parser for the discovered links.
func (s *Service) scrapeHeadless(ctx context.Context) ([]job.Posting, error) {
	fetcher := NewHeadlessFetcher(s.cfg.BoardBaseURL, s.cfg.ChromeTimeout)
	board := NewBoardScraper(s.cfg.BoardBaseURL, s.cfg.Concurrency, s.cfg.RatePerSec, s.logger)

	pool := NewWorkerPool(s.cfg.Concurrency, s.cfg.Concurrency*2)
	pool.SetRateLimit(s.cfg.RatePerSec)
	results := pool.Run(ctx)

	var mu sync.Mutex
	var postings []job.Posting

	for page := 1; page <= s.cfg.PageLimit; page++ {
		links, err := fetcher.ListingLinks(ctx, page, 30)
		if err != nil {
			s.logger.Printf("[Scraper] headless listing page=%d error: %v", page, err)
			continue
		}
		for _, link := range links {
			link := link
			pool.Submit(func(ctx context.Context) error {
				raw, err := board.scrapeDetail(ctx, link)
				if err != nil {
					return err
				}
				p := ToPosting(raw)
				if p.Title == "" || p.Company == "" {
					return nil
				}
				mu.Lock()
				postings = append(postings, p)
				mu.Unlock()
				return nil
			})
		}
	}

	pool.Close()
	for res := range results {
		if res.Err != nil {
			s.logger.Printf("[Scraper] headless item: %v", res.Err)
		}
	}
	return postings, ctx.Err()
}

func (s *Service) run(source string, fetch fetchFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	defer func() {
		s.mu.Lock()
		s.status.IsRunning = false
		s.mu.Unlock()
	}()

	if s.locker != nil {
		ok, err := s.locker.SetIfNotExists(ctx, runLockKey, source, runTimeout)
		if err == nil && !ok {
			s.setError("another instance is already scraping")
			return
		}
		if err == nil && ok {
			defer func() { _ = s.locker.Delete(context.Background(), runLockKey) }()
		}
	}

	s.logger.Printf("[Scraper] run started source=%s", source)

	postings, err := fetch(ctx)
	if err != nil {
		s.setError(fmt.Sprintf("fetch %s: %v", source, err))
		s.logger.Printf("[Scraper] run failed source=%s err=%v", source, err)
		return
	}

	written, err := s.repo.UpsertBatch(ctx, postings)
	if err != nil {
		s.setError(fmt.Sprintf("store %s: %v", source, err))
		s.logger.Printf("[Scraper] store failed source=%s err=%v", source, err)
		return
	}

	total := written
	if n, err := s.repo.Count(ctx, repository.JobFilter{}); err == nil {
		total = n
	}

	s.mu.Lock()
	s.status.JobCount = written
	s.status.TotalJobs = total
	s.status.LastRun = time.Now().UTC().Format(time.RFC3339)
	s.status.Error = ""
	s.mu.Unlock()

	if written > 0 {
		s.invalidate(ctx)
		if s.notifier != nil {
			s.notifier.NotifyJobsIngested(written)
		}
	}
	s.logger.Printf("[Scraper] run finished source=%s written=%d total=%d", source, written, total)
}

// Cached lists, analyses and per-user recommendations are all stale once
// the posting set has changed.
func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	for _, pattern := range []string{"jobs:list:*", "analysis:*", "recommend:user:*"} {
		if err := s.cache.DeleteByPattern(ctx, pattern); err != nil {
			s.logger.Printf("[Scraper] cache invalidate failed pattern=%s err=%v", pattern, err)
		}
	}
}

func (s *Service) setError(msg string) {
	s.mu.Lock()
	s.status.Error = msg
	s.mu.Unlock()
}

func sortCityStats(stats []CityStat) {
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].City < stats[j].City
	})
}

func sortCategoryStats(stats []CategoryStat) {
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Category < stats[j].Category
	})
}
