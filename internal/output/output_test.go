package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/tabscrape/tabscrape/pkg/tabular"
)

var testTable = tabular.Table{
	Columns: []string{"name", "value"},
	Rows:    [][]string{{"a", "1"}, {"b", "2"}},
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"csv", "json", "yaml", "pdf"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q) error = %v", s, err)
		}
	}
	if _, err := ParseFormat("xlsx"); err == nil {
		t.Error("ParseFormat(xlsx) should fail")
	}
}

func TestCSVWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, FormatCSV)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	if err := w.Write(testTable); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	want := "name,value\na,1\nb,2\n"
	if buf.String() != want {
		t.Errorf("CSV output = %q, want %q", buf.String(), want)
	}
}

func TestJSONWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, FormatJSON)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	if err := w.Write(testTable); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var recs []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &recs); err != nil {
		t.Fatalf("failed to unmarshal output: %v", err)
	}
	if len(recs) != 2 || recs[0]["name"] != "a" || recs[1]["value"] != "2" {
		t.Errorf("unexpected records: %v", recs)
	}
}

func TestYAMLWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, FormatYAML)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	if err := w.Write(testTable); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var recs []map[string]string
	if err := yaml.Unmarshal(buf.Bytes(), &recs); err != nil {
		t.Fatalf("failed to unmarshal output: %v", err)
	}
	if len(recs) != 2 || recs[1]["name"] != "b" {
		t.Errorf("unexpected records: %v", recs)
	}
}

func TestPDFWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, FormatPDF, WithTitle("Export"))
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	if err := w.Write(testTable); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not look like a PDF")
	}
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, Format("xml"))
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("error = %v, want unsupported format", err)
	}
}
