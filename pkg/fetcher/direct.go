package fetcher

import (
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/tabscrape/tabscrape/internal/logger"
)

// fetchDirect performs a single plain GET using Colly, presenting a desktop
// browser User-Agent. Non-2xx responses and transport failures are errors.
func (f *Fetcher) fetchDirect(targetURL, userAgent string, timeout time.Duration) (string, error) {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	logger.Debug("direct fetch", "url", targetURL, "timeout", timeout)

	// A new collector per request: no shared cookie jar or cache between calls.
	c := colly.NewCollector(
		colly.UserAgent(userAgent),
	)
	c.SetRequestTimeout(timeout)

	var (
		body     string
		fetchErr error
	)

	c.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode != 0 {
			fetchErr = fmt.Errorf("fetch failed with status %d: %w", r.StatusCode, err)
			return
		}
		fetchErr = fmt.Errorf("fetch failed: %w", err)
	})

	// Visit returns the same error OnError sees; prefer the handler's
	// version, which carries the status code.
	err := c.Visit(targetURL)
	if fetchErr != nil {
		return "", fetchErr
	}
	if err != nil {
		return "", fmt.Errorf("failed to visit %s: %w", targetURL, err)
	}

	logger.Debug("direct fetch complete", "url", targetURL, "bytes", len(body))
	return body, nil
}
