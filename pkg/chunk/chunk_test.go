package chunk

import (
	"strings"
	"testing"
)

func TestSplit_Empty(t *testing.T) {
	if got := Split("", 100); got != nil {
		t.Errorf("Split(\"\") = %v, want nil", got)
	}
}

func TestSplit_ShorterThanBound(t *testing.T) {
	got := Split("hello", 100)
	if len(got) != 1 || got[0] != "hello" {
		t.Errorf("Split() = %v, want [hello]", got)
	}
}

func TestSplit_ExactMultiple(t *testing.T) {
	got := Split("abcdef", 3)
	if len(got) != 2 || got[0] != "abc" || got[1] != "def" {
		t.Errorf("Split() = %v, want [abc def]", got)
	}
}

func TestSplit_Remainder(t *testing.T) {
	got := Split("abcdefg", 3)
	want := []string{"abc", "def", "g"}
	if len(got) != len(want) {
		t.Fatalf("Split() returned %d chunks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplit_ReconstructsInput(t *testing.T) {
	docs := []string{
		"short",
		strings.Repeat("line of text\n", 500),
		strings.Repeat("ünïcödé ", 1000),
	}
	bounds := []int{1, 7, 100, DefaultMaxLength}

	for _, doc := range docs {
		for _, bound := range bounds {
			chunks := Split(doc, bound)
			if joined := strings.Join(chunks, ""); joined != doc {
				t.Errorf("Split(len=%d, bound=%d): concatenation does not reconstruct input", len(doc), bound)
			}

			runeLen := len([]rune(doc))
			wantCount := (runeLen + bound - 1) / bound
			if len(chunks) != wantCount {
				t.Errorf("Split(len=%d, bound=%d): %d chunks, want %d", runeLen, bound, len(chunks), wantCount)
			}

			// All chunks except the last must be exactly the bound.
			for i, c := range chunks[:max(0, len(chunks)-1)] {
				if l := len([]rune(c)); l != bound {
					t.Errorf("chunk %d has length %d, want %d", i, l, bound)
				}
			}
		}
	}
}

func TestSplit_Deterministic(t *testing.T) {
	doc := strings.Repeat("abc123 ", 4000)
	first := Split(doc, 250)
	second := Split(doc, 250)
	if len(first) != len(second) {
		t.Fatalf("chunk counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}

func TestSplit_NonPositiveBoundUsesDefault(t *testing.T) {
	doc := strings.Repeat("x", DefaultMaxLength+1)
	got := Split(doc, 0)
	if len(got) != 2 {
		t.Errorf("Split(bound=0) produced %d chunks, want 2", len(got))
	}
}
