package extract

import "fmt"

// Sentinel is the token the model is instructed to return when a chunk
// contains none of the requested information. Any response containing it is
// dropped from the merged output.
const Sentinel = "NO_DATA"

// buildPrompt embeds the user's instruction and one chunk verbatim. The
// output format is deliberately unconstrained; only the no-data case is
// pinned to the sentinel so responses can be filtered.
func buildPrompt(instruction, chunk string) string {
	return fmt.Sprintf(`Extract the following information: %s
From this content: %s

If the information is NOT found, reply exactly with: %q`, instruction, chunk, Sentinel)
}
