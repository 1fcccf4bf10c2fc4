// Package extract drives per-chunk LLM extraction and merges the results.
//
// The driver is deliberately forgiving: one failing chunk degrades the merged
// output with an inline error string instead of aborting the batch, and the
// caller always receives a non-empty result.
package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tabscrape/tabscrape/internal/logger"
	"github.com/tabscrape/tabscrape/pkg/llm"
)

// Fixed user-facing messages for the two "nothing to show" outcomes.
const (
	EmptyContentMessage = "Error: The text content to parse is empty. Please check your scraping step."
	NoMatchMessage      = "No matching data found in the content."
)

// Driver runs the extraction instruction over every chunk through a single
// provider. The provider binding is fixed for the lifetime of the driver; no
// per-chunk provider switching.
type Driver struct {
	provider llm.Provider
}

// New creates a Driver bound to one provider.
func New(provider llm.Provider) *Driver {
	return &Driver{provider: provider}
}

// Extract applies instruction to each chunk in order and returns the
// newline-joined merge of the retained per-chunk results. It never returns an
// error: per-chunk failures are embedded inline, and the empty cases map to
// fixed messages.
//
// Chunks that are whitespace-only are skipped outright — no request, no
// error, no placeholder in the output. Responses containing the sentinel
// token are dropped entirely, even when other text surrounds it.
func (d *Driver) Extract(ctx context.Context, chunks []string, instruction string) string {
	if allBlank(chunks) {
		logger.Debug("extraction skipped: no content")
		return EmptyContentMessage
	}

	logger.Debug("extraction starting",
		"provider", d.provider.Name(),
		"chunks", len(chunks))

	var merged []string
	for i, chunk := range chunks {
		if strings.TrimSpace(chunk) == "" {
			continue
		}

		text, err := d.provider.Complete(ctx, buildPrompt(instruction, chunk))
		if err != nil {
			var statusErr *llm.StatusError
			if errors.As(err, &statusErr) {
				// Surface which chunk failed and exactly what the API said.
				merged = append(merged, fmt.Sprintf("Error (Chunk %d): %v", i, statusErr))
			} else {
				merged = append(merged, fmt.Sprintf("Critical Error: %v", err))
			}
			logger.Debug("chunk extraction failed", "chunk", i, "error", err)
			continue
		}

		if strings.Contains(text, Sentinel) {
			logger.Debug("chunk returned sentinel", "chunk", i)
			continue
		}
		merged = append(merged, text)
	}

	if len(merged) == 0 {
		return NoMatchMessage
	}
	return strings.Join(merged, "\n")
}

func allBlank(chunks []string) bool {
	for _, c := range chunks {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
