package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// endpointSpec is the static per-provider configuration: endpoint plus the
// provider's query-parameter naming. Adding a provider means adding a row
// here and, if it has a credential convention, one in keyEnvVars.
type endpointSpec struct {
	endpoint string
	keyParam string
	urlParam string

	// renderParam names the JS-rendering flag, empty when unsupported.
	// alwaysRender providers receive the flag on every request (ScraperAPI
	// expects an explicit render=false).
	renderParam  string
	alwaysRender bool
}

var providerEndpoints = map[Provider]endpointSpec{
	ScraperAPI: {
		endpoint:     "https://api.scraperapi.com",
		keyParam:     "api_key",
		urlParam:     "url",
		renderParam:  "render",
		alwaysRender: true,
	},
	ScrapingBee: {
		endpoint:    "https://app.scrapingbee.com/api/v1",
		keyParam:    "api_key",
		urlParam:    "url",
		renderParam: "render_js",
	},
	ScrapingDog: {
		endpoint: "https://api.scrapingdog.com/scrape",
		keyParam: "api_key",
		urlParam: "url",
	},
	ZenRows: {
		endpoint: "https://api.zenrows.com/v1/",
		keyParam: "apikey",
		urlParam: "url",
	},
}

// fetchDelegated issues one GET against the provider's endpoint, passing the
// target URL and credential using the provider's parameter names.
func (f *Fetcher) fetchDelegated(ctx context.Context, spec endpointSpec, targetURL, apiKey string, renderJS bool, timeout time.Duration) (string, error) {
	params := url.Values{}
	params.Set(spec.keyParam, apiKey)
	params.Set(spec.urlParam, targetURL)
	if spec.renderParam != "" {
		if spec.alwaysRender {
			params.Set(spec.renderParam, strconv.FormatBool(renderJS))
		} else if renderJS {
			params.Set(spec.renderParam, "true")
		}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, spec.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build provider request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read provider response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(body))
	}
	return string(body), nil
}
