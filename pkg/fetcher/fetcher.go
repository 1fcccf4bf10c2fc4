// Package fetcher retrieves raw HTML for a URL, either directly or through a
// remote scraping provider.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/tabscrape/tabscrape/internal/logger"
)

// Provider identifies a fetch strategy.
type Provider string

const (
	// Direct fetches the page with a plain GET and a browser User-Agent.
	Direct Provider = "direct"

	ScraperAPI  Provider = "scraperapi"
	ScrapingBee Provider = "scrapingbee"
	ScrapingDog Provider = "scrapingdog"
	ZenRows     Provider = "zenrows"
)

// Chrome user agent for better compatibility with picky sites.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultTimeout bounds a single fetch when the caller supplies none.
const DefaultTimeout = 30 * time.Second

var (
	// ErrMissingAPIKey is returned when a delegated provider is selected
	// without a credential. No request is issued.
	ErrMissingAPIKey = errors.New("api key is required for this provider")

	// ErrNoProvider is returned for the "none"/"basic" pseudo-providers:
	// the caller must select Direct explicitly rather than fall through.
	ErrNoProvider = errors.New("no provider selected: use the direct fetcher or choose a provider")
)

// Options controls a single fetch.
type Options struct {
	Provider  Provider
	APIKey    string        // required for delegated providers
	RenderJS  bool          // forwarded only to providers that support it
	UserAgent string        // direct mode only; defaults to a Chrome UA
	Timeout   time.Duration // per-call; defaults to DefaultTimeout
}

// Fetcher issues single-attempt page fetches. Retry policy belongs to the
// caller.
type Fetcher struct {
	client    *http.Client
	endpoints map[Provider]endpointSpec
}

// New creates a Fetcher. A nil client uses a fresh http.Client; timeouts are
// applied per call.
func New(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	eps := make(map[Provider]endpointSpec, len(providerEndpoints))
	for p, spec := range providerEndpoints {
		eps[p] = spec
	}
	return &Fetcher{client: client, endpoints: eps}
}

// Fetch retrieves the raw HTML for targetURL. Every failure mode — missing
// credential, unknown provider, transport error, non-2xx status — comes back
// as an error; Fetch never panics past this boundary.
func (f *Fetcher) Fetch(ctx context.Context, targetURL string, opts Options) (string, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	switch opts.Provider {
	case "", Direct:
		return f.fetchDirect(targetURL, opts.UserAgent, timeout)
	case "none", "basic":
		return "", ErrNoProvider
	}

	spec, ok := f.endpoints[opts.Provider]
	if !ok {
		return "", fmt.Errorf("unknown provider: %s", opts.Provider)
	}
	if opts.APIKey == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingAPIKey, opts.Provider)
	}

	logger.Debug("delegated fetch", "provider", opts.Provider, "render_js", opts.RenderJS)
	return f.fetchDelegated(ctx, spec, targetURL, opts.APIKey, opts.RenderJS, timeout)
}

// keyEnvVars maps each delegated provider to its conventional credential
// environment variable.
var keyEnvVars = map[Provider]string{
	ScraperAPI:  "SCRAPERAPI_KEY",
	ScrapingBee: "SCRAPINGBEE_KEY",
	ScrapingDog: "SCRAPINGDOG_KEY",
	ZenRows:     "ZENROWS_KEY",
}

// KeyFromEnv resolves the conventional credential environment variable for a
// provider. Unknown providers resolve to the empty string.
func KeyFromEnv(p Provider) string {
	name, ok := keyEnvVars[p]
	if !ok {
		return ""
	}
	return os.Getenv(name)
}

// Providers returns the delegated provider identifiers.
func Providers() []Provider {
	return []Provider{ScraperAPI, ScrapingBee, ScrapingDog, ZenRows}
}
