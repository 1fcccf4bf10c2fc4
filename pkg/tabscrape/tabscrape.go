// Package tabscrape wires the full pipeline together: fetch a page, normalize
// it to text, chunk it, run LLM extraction over the chunks, and reconstruct a
// table from the merged output.
//
// The package is stateless between calls. Everything a run needs — including
// credentials — travels in the Request, and everything it produces comes back
// in the Result.
package tabscrape

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tabscrape/tabscrape/internal/logger"
	"github.com/tabscrape/tabscrape/pkg/chunk"
	"github.com/tabscrape/tabscrape/pkg/extract"
	"github.com/tabscrape/tabscrape/pkg/fetcher"
	"github.com/tabscrape/tabscrape/pkg/llm"
	"github.com/tabscrape/tabscrape/pkg/normalize"
	"github.com/tabscrape/tabscrape/pkg/tabular"
)

// Request describes one end-to-end extraction run.
type Request struct {
	// URL of the page to scrape.
	URL string `validate:"required,url"`

	// FetchProvider selects direct fetching or a scraping proxy.
	// Empty means direct.
	FetchProvider fetcher.Provider
	FetchAPIKey   string
	RenderJS      bool

	// LLMProvider is the extraction backend: gemini, groq, or openai.
	LLMProvider string `validate:"required"`
	LLMAPIKey   string `validate:"required"`
	LLMModel    string // empty selects the provider default

	// Instruction is the natural-language description of what to extract.
	Instruction string `validate:"required"`

	// ChunkSize bounds each extraction chunk, in characters.
	// Zero selects chunk.DefaultMaxLength.
	ChunkSize int

	// Timeout applies per network call, not to the whole run.
	Timeout time.Duration
}

// Result is the explicit output of one run. Callers wanting the "last
// scraped content" keep Result.Content around; the pipeline itself holds no
// state.
type Result struct {
	URL             string
	Content         string // normalized document text
	ChunkCount      int
	Merged          string // merged extraction output, per-chunk errors inline
	Table           tabular.Table
	FetchedAt       time.Time
	FetchDuration   time.Duration
	ExtractDuration time.Duration
	Provider        string
}

// Client runs the pipeline.
type Client struct {
	fetcher  *fetcher.Fetcher
	validate *validator.Validate
}

// Option configures the Client.
type Option func(*Client)

// WithFetcher substitutes the page fetcher.
func WithFetcher(f *fetcher.Fetcher) Option {
	return func(c *Client) {
		c.fetcher = f
	}
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{
		fetcher:  fetcher.New(nil),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes the pipeline for one request. Fetch-level failures abort the
// run; extraction-level failures degrade the merged output per chunk;
// reconstruction never fails.
func (c *Client) Run(ctx context.Context, req Request) (*Result, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	provider, err := llm.New(req.LLMProvider, llm.Config{
		APIKey:  req.LLMAPIKey,
		Model:   req.LLMModel,
		Timeout: req.Timeout,
	})
	if err != nil {
		return nil, err
	}

	fetchedAt := time.Now()
	rawHTML, err := c.fetcher.Fetch(ctx, req.URL, fetcher.Options{
		Provider: req.FetchProvider,
		APIKey:   req.FetchAPIKey,
		RenderJS: req.RenderJS,
		Timeout:  req.Timeout,
	})
	fetchDuration := time.Since(fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}

	content := normalize.Clean(normalize.ExtractBody(rawHTML))
	chunks := chunk.Split(content, req.ChunkSize)
	logger.Info("page normalized",
		"url", req.URL,
		"content_chars", len(content),
		"chunks", len(chunks))

	extractStart := time.Now()
	merged := extract.New(provider).Extract(ctx, chunks, req.Instruction)
	extractDuration := time.Since(extractStart)

	table := tabular.Reconstruct(merged)
	logger.Info("extraction complete",
		"provider", provider.Name(),
		"rows", len(table.Rows),
		"columns", len(table.Columns))

	return &Result{
		URL:             req.URL,
		Content:         content,
		ChunkCount:      len(chunks),
		Merged:          merged,
		Table:           table,
		FetchedAt:       fetchedAt,
		FetchDuration:   fetchDuration,
		ExtractDuration: extractDuration,
		Provider:        provider.Name(),
	}, nil
}
