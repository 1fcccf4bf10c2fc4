package tabular

import (
	"encoding/csv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tabscrape/tabscrape/internal/logger"
)

// Reconstruct coerces free-form extraction output into a Table, trying
// strategies in strict priority order:
//
//  1. the first HTML <table> in the text;
//  2. delimiter-separated lines (tab, pipe, comma, semicolon — decided by
//     the first line, parsed strictly);
//  3. whitespace-aligned columns (uniform field count across all lines);
//  4. a single "text" column, one row per non-empty line.
//
// Reconstruct never fails: a strategy that cannot parse the input falls
// through to the next, and the fallback always succeeds. Empty input yields
// an empty table.
func Reconstruct(text string) Table {
	if t, ok := fromHTMLTable(text); ok {
		logger.Debug("reconstructed via html table", "rows", len(t.Rows))
		return t
	}

	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return Table{}
	}

	if t, ok := fromDelimited(lines); ok {
		logger.Debug("reconstructed via delimiter", "rows", len(t.Rows))
		return t
	}
	if t, ok := fromWhitespace(lines); ok {
		logger.Debug("reconstructed via whitespace columns", "rows", len(t.Rows))
		return t
	}

	logger.Debug("reconstruction fell back to single column", "rows", len(lines))
	return fallback(lines)
}

// fromHTMLTable parses the first <table> element, header = first row.
func fromHTMLTable(text string) (Table, bool) {
	if !strings.Contains(strings.ToLower(text), "<table") {
		return Table{}, false
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return Table{}, false
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return Table{}, false
	}

	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	})
	if len(rows) == 0 {
		return Table{}, false
	}

	columns := rows[0]
	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		data = append(data, normalizeRow(row, len(columns)))
	}
	return Table{Columns: columns, Rows: data}, true
}

// delimiterCandidates in fixed priority order.
var delimiterCandidates = []rune{'\t', '|', ',', ';'}

// fromDelimited inspects the first line for a delimiter and parses the whole
// line-set as delimited records. A candidate whose strict parse fails falls
// to the next candidate.
func fromDelimited(lines []string) (Table, bool) {
	header := lines[0]
	for _, delim := range delimiterCandidates {
		if !strings.ContainsRune(header, delim) {
			continue
		}

		r := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
		r.Comma = delim
		r.LazyQuotes = true
		records, err := r.ReadAll()
		if err != nil || len(records) == 0 {
			// Inconsistent column counts; try the next candidate.
			continue
		}

		columns := records[0]
		data := make([][]string, 0, len(records)-1)
		for _, rec := range records[1:] {
			data = append(data, normalizeRow(rec, len(columns)))
		}
		return Table{Columns: columns, Rows: data}, true
	}
	return Table{}, false
}

// fromWhitespace treats runs of whitespace as column separators when every
// line splits into the same multi-field width.
func fromWhitespace(lines []string) (Table, bool) {
	if len(lines) < 2 {
		return Table{}, false
	}

	parts := make([][]string, len(lines))
	for i, line := range lines {
		parts[i] = strings.Fields(line)
	}

	width := len(parts[0])
	if width <= 1 {
		return Table{}, false
	}
	for _, p := range parts[1:] {
		if len(p) != width {
			return Table{}, false
		}
	}

	return Table{Columns: parts[0], Rows: parts[1:]}, true
}

// fallback wraps the lines into a single "text" column.
func fallback(lines []string) Table {
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = []string{line}
	}
	return Table{Columns: []string{"text"}, Rows: rows}
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
