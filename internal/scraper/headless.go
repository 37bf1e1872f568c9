package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// HeadlessFetcher collects posting links from boards that render their
// listings with JavaScript.
type HeadlessFetcher struct {
	baseURL string
	timeout time.Duration
}

func NewHeadlessFetcher(baseURL string, timeout time.Duration) *HeadlessFetcher {
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &HeadlessFetcher{baseURL: strings.TrimSpace(baseURL), timeout: timeout}
}

// ListingLinks renders the listing page in headless Chrome and returns
// absolute posting URLs.
func (f *HeadlessFetcher) ListingLinks(ctx context.Context, page int, limit int) ([]string, error) {
	if f == nil || f.baseURL == "" {
		return nil, fmt.Errorf("fetcher not configured")
	}
	if limit <= 0 {
		limit = 30
	}

	base := strings.TrimRight(f.baseURL, "/")
	listURL := fmt.Sprintf("%s/jobs?page=%d", base, page)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, f.timeout)
	defer reqCancel()

	var hrefs []string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(listURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(`Array.from(document.querySelectorAll('a[href]'))
			.map(a => a.getAttribute('href'))
			.filter(h => h && (h.includes('/job/') || h.includes('/position/')))`, &hrefs),
	)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	out := make([]string, 0, limit)
	for _, h := range hrefs {
		if len(out) >= limit {
			break
		}
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if strings.HasPrefix(h, "/") {
			h = base + h
		} else if !strings.HasPrefix(h, "http://") && !strings.HasPrefix(h, "https://") {
			h = base + "/" + h
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no posting links found")
	}
	return out, nil
}
