// Package chunk splits normalized document text into bounded-size segments
// so that each piece fits within an LLM provider's input limits.
package chunk

// DefaultMaxLength is the default upper bound, in characters, for a single chunk.
const DefaultMaxLength = 6000

// Split slices doc into consecutive chunks of at most maxLength characters.
// Slicing is fixed-stride over runes: chunk k covers doc[k*maxLength :
// (k+1)*maxLength). The last chunk may be shorter. There is no overlap and no
// awareness of word or tag boundaries. An empty document yields no chunks.
//
// Split is pure: the same (doc, maxLength) pair always produces the same
// sequence, and concatenating the result reproduces doc exactly.
func Split(doc string, maxLength int) []string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	if doc == "" {
		return nil
	}

	runes := []rune(doc)
	chunks := make([]string, 0, (len(runes)+maxLength-1)/maxLength)
	for start := 0; start < len(runes); start += maxLength {
		end := start + maxLength
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
