package tabscrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tabscrape/tabscrape/pkg/llm"
)

// fakeProvider answers every prompt with a fixed response.
type fakeProvider struct {
	response string
	calls    int
}

func (f *fakeProvider) Complete(context.Context, string) (string, error) {
	f.calls++
	return f.response, nil
}

func (f *fakeProvider) Name() string { return "fake" }

func registerFake(t *testing.T, response string) *fakeProvider {
	t.Helper()
	p := &fakeProvider{response: response}
	llm.Register("fake", func(llm.Config) (llm.Provider, error) {
		return p, nil
	})
	return p
}

func validRequest(url string) Request {
	return Request{
		URL:         url,
		LLMProvider: "fake",
		LLMAPIKey:   "test-key",
		Instruction: "extract the things",
	}
}

func TestRun_Validation(t *testing.T) {
	registerFake(t, "ignored")
	c := New()

	cases := []struct {
		name string
		req  Request
	}{
		{"missing url", Request{LLMProvider: "fake", LLMAPIKey: "k", Instruction: "i"}},
		{"malformed url", Request{URL: "not a url", LLMProvider: "fake", LLMAPIKey: "k", Instruction: "i"}},
		{"missing provider", Request{URL: "https://example.com", LLMAPIKey: "k", Instruction: "i"}},
		{"missing key", Request{URL: "https://example.com", LLMProvider: "fake", Instruction: "i"}},
		{"missing instruction", Request{URL: "https://example.com", LLMProvider: "fake", LLMAPIKey: "k"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := c.Run(context.Background(), tc.req); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRun_InvalidLLMProvider(t *testing.T) {
	c := New()
	req := validRequest("https://example.com")
	req.LLMProvider = "mystery"
	_, err := c.Run(context.Background(), req)
	if err == nil || !strings.Contains(err.Error(), "invalid provider") {
		t.Errorf("error = %v, want invalid provider", err)
	}
}

func TestRun_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<script>ignore()</script>
			<h1>Course Catalog</h1>
			<p>Go Basics has a 4.8 rating</p>
		</body></html>`))
	}))
	defer srv.Close()

	fake := registerFake(t, "course,rating\nGo Basics,4.8")
	c := New()

	res, err := c.Run(context.Background(), validRequest(srv.URL))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if fake.calls != 1 {
		t.Errorf("provider calls = %d, want 1", fake.calls)
	}
	if strings.Contains(res.Content, "ignore()") {
		t.Errorf("normalized content contains script text: %q", res.Content)
	}
	if !strings.Contains(res.Content, "Course Catalog") {
		t.Errorf("normalized content missing page text: %q", res.Content)
	}
	if res.ChunkCount != 1 {
		t.Errorf("ChunkCount = %d, want 1", res.ChunkCount)
	}
	if res.Merged != "course,rating\nGo Basics,4.8" {
		t.Errorf("Merged = %q", res.Merged)
	}
	if len(res.Table.Columns) != 2 || res.Table.Columns[0] != "course" {
		t.Errorf("Table.Columns = %v", res.Table.Columns)
	}
	if len(res.Table.Rows) != 1 || res.Table.Rows[0][1] != "4.8" {
		t.Errorf("Table.Rows = %v", res.Table.Rows)
	}
}

func TestRun_FetchFailureAbortsBeforeExtraction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer srv.Close()

	fake := registerFake(t, "should never run")
	c := New()

	_, err := c.Run(context.Background(), validRequest(srv.URL))
	if err == nil || !strings.Contains(err.Error(), "fetch failed") {
		t.Fatalf("error = %v, want fetch failure", err)
	}
	if fake.calls != 0 {
		t.Errorf("provider called %d times after fetch failure, want 0", fake.calls)
	}
}

func TestRun_EmptyPageYieldsEmptyContentMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><script>only scripts</script></body></html>"))
	}))
	defer srv.Close()

	fake := registerFake(t, "should never run")
	c := New()

	res, err := c.Run(context.Background(), validRequest(srv.URL))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if fake.calls != 0 {
		t.Errorf("provider called %d times for empty content, want 0", fake.calls)
	}
	if !strings.Contains(res.Merged, "empty") {
		t.Errorf("Merged = %q, want empty-content message", res.Merged)
	}
}
