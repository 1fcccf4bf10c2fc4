// Package output serializes reconstructed tables for export.
package output

import (
	"fmt"
	"io"

	"github.com/tabscrape/tabscrape/pkg/tabular"
)

// Format represents output format types.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatPDF  Format = "pdf"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatJSON, FormatYAML, FormatPDF:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (available: csv, json, yaml, pdf)", s)
	}
}

// Writer serializes one table.
type Writer interface {
	Write(t tabular.Table) error
}

// WriterOption configures a writer.
type WriterOption func(*writerConfig)

type writerConfig struct {
	pretty bool
	indent string
	title  string
}

// WithPretty enables pretty-printing for JSON output.
func WithPretty(enabled bool) WriterOption {
	return func(c *writerConfig) {
		c.pretty = enabled
	}
}

// WithTitle sets the document title for PDF output.
func WithTitle(title string) WriterOption {
	return func(c *writerConfig) {
		c.title = title
	}
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format, opts ...WriterOption) (Writer, error) {
	cfg := &writerConfig{
		pretty: true,
		indent: "  ",
		title:  "Parsed Table",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	switch format {
	case FormatCSV:
		return &csvWriter{w: w}, nil
	case FormatJSON:
		return &jsonWriter{w: w, pretty: cfg.pretty, indent: cfg.indent}, nil
	case FormatYAML:
		return &yamlWriter{w: w}, nil
	case FormatPDF:
		return &pdfWriter{w: w, title: cfg.title}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

type csvWriter struct {
	w io.Writer
}

func (c *csvWriter) Write(t tabular.Table) error {
	return t.WriteCSV(c.w)
}

type pdfWriter struct {
	w     io.Writer
	title string
}

func (p *pdfWriter) Write(t tabular.Table) error {
	return t.WritePDF(p.w, p.title)
}
