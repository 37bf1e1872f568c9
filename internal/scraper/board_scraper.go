package scraper

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"

	"job-insight/internal/domain/job"
)

// BoardSelectors maps a job board's markup to posting fields.
type BoardSelectors struct {
	ListingLink string
	Title       string
	Company     string
	Location    string
	Salary      string
	Experience  string
	Education   string
	Description string
	Requirement string
}

func defaultSelectors() BoardSelectors {
	return BoardSelectors{
		ListingLink: "a.job-card, a[href*='/job/'], a[href*='/position/']",
		Title:       "h1.job-title, h1",
		Company:     ".company-name",
		Location:    ".job-location",
		Salary:      ".job-salary",
		Experience:  ".job-experience",
		Education:   ".job-education",
		Description: ".job-description",
		Requirement: ".job-requirement",
	}
}

// BoardScraper crawls a listing-and-detail style job board with colly.
type BoardScraper struct {
	baseURL     string
	allowedHost string
	selectors   BoardSelectors
	workers     int
	ratePerSec  int
	logger      *log.Logger
}

func NewBoardScraper(baseURL string, workers, ratePerSec int, logger *log.Logger) *BoardScraper {
	baseURL = strings.TrimSpace(baseURL)
	if logger == nil {
		logger = log.Default()
	}
	if workers <= 0 {
		workers = 4
	}
	if ratePerSec <= 0 {
		ratePerSec = 2
	}
	return &BoardScraper{
		baseURL:     baseURL,
		allowedHost: hostOf(baseURL),
		selectors:   defaultSelectors(),
		workers:     workers,
		ratePerSec:  ratePerSec,
		logger:      logger,
	}
}

// SetSelectors overrides the default markup mapping for boards with a
// different page structure.
func (s *BoardScraper) SetSelectors(sel BoardSelectors) {
	s.selectors = sel
}

// Scrape walks listing pages 1..pages, visits every posting link and
// returns the parsed postings. Individual page failures are logged and
// skipped.
func (s *BoardScraper) Scrape(ctx context.Context, pages int) ([]job.Posting, error) {
	if s == nil || s.baseURL == "" {
		return nil, fmt.Errorf("scraper not configured")
	}
	if pages <= 0 {
		pages = 1
	}

	pool := NewWorkerPool(s.workers, s.workers*2)
	pool.SetRateLimit(s.ratePerSec)
	results := pool.Run(ctx)

	var mu sync.Mutex
	var postings []job.Posting

	for page := 1; page <= pages; page++ {
		links, err := s.collectListingLinks(ctx, page)
		if err != nil {
			s.logger.Printf("[Scraper] listing page=%d error: %v", page, err)
			continue
		}
		for _, link := range links {
			link := link
			pool.Submit(func(ctx context.Context) error {
				raw, err := s.scrapeDetail(ctx, link)
				if err != nil {
					return fmt.Errorf("detail %s: %w", link, err)
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
			s.logger.Printf("[Scraper] %v", res.Err)
		}
	}

	if err := ctx.Err(); err != nil {
		return postings, err
	}
	return postings, nil
}

func (s *BoardScraper) collectListingLinks(ctx context.Context, page int) ([]string, error) {
	listURL := fmt.Sprintf("%s/jobs?page=%d", strings.TrimRight(s.baseURL, "/"), page)

	c := s.newCollector()

	var links []string
	c.OnHTML(s.selectors.ListingLink, func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" {
			return
		}
		if abs := e.Request.AbsoluteURL(href); abs != "" {
			links = append(links, abs)
		}
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.Visit(listURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	seen := make(map[string]struct{}, len(links))
	out := make([]string, 0, len(links))
	for _, l := range links {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out, nil
}

func (s *BoardScraper) scrapeDetail(ctx context.Context, link string) (RawJob, error) {
	c := s.newCollector()

	var raw RawJob
	raw.URL = link

	bind := func(selector string, dst *string) {
		if strings.TrimSpace(selector) == "" {
			return
		}
		c.OnHTML(selector, func(e *colly.HTMLElement) {
			if *dst == "" {
				*dst = strings.TrimSpace(e.Text)
			}
		})
	}
	bind(s.selectors.Title, &raw.Title)
	bind(s.selectors.Company, &raw.Company)
	bind(s.selectors.Location, &raw.Location)
	bind(s.selectors.Salary, &raw.SalaryText)
	bind(s.selectors.Experience, &raw.Experience)
	bind(s.selectors.Education, &raw.Education)
	bind(s.selectors.Description, &raw.Description)
	bind(s.selectors.Requirement, &raw.Requirement)

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if err := ctx.Err(); err != nil {
		return RawJob{}, err
	}
	if err := c.Visit(link); err != nil {
		return RawJob{}, err
	}
	c.Wait()
	if reqErr != nil {
		return RawJob{}, reqErr
	}
	return raw, nil
}

func (s *BoardScraper) newCollector() *colly.Collector {
	var c *colly.Collector
	if s.allowedHost == "" {
		c = colly.NewCollector()
	} else {
		c = colly.NewCollector(colly.AllowedDomains(s.allowedHost))
	}
	_ = c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 2,
		Delay:       400 * time.Millisecond,
		RandomDelay: 750 * time.Millisecond,
	})
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "JobInsightBot/0.1")
		r.Headers.Set("Accept-Language", "zh-CN,zh;q=0.9,en;q=0.8")
	})
	return c
}

func hostOf(base string) string {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil || u.Host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(u.Host); err == nil {
		return h
	}
	return u.Host
}
