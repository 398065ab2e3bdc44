// Package diffing produces the word-level edit previews shown alongside
// edit history. The algorithm is a deliberate simplification: both versions
// are split on single spaces and walked index-by-index, so an insertion or
// removal misaligns every following word. That is acceptable for previews
// and is the shipped behavior; do not replace it with a minimal-edit-distance
// diff without product sign-off.
package diffing

import "strings"

// SpanKind classifies one diff span.
type SpanKind string

const (
	SpanUnchanged SpanKind = "unchanged"
	SpanAdded     SpanKind = "added"
	SpanRemoved   SpanKind = "removed"
)

// Span is one word of diff output.
type Span struct {
	Kind SpanKind `json:"kind"`
	Text string   `json:"text"`
}

// Words diffs two content strings word by word. Equal words at the same
// index emit an unchanged span; a mismatch emits a removed span for the old
// word followed by an added span for the new word. Leftover words on either
// side are emitted as removed or added respectively.
func Words(oldContent, newContent string) []Span {
	oldWords := splitWords(oldContent)
	newWords := splitWords(newContent)

	var spans []Span
	n := len(oldWords)
	if len(newWords) > n {
		n = len(newWords)
	}
	for i := 0; i < n; i++ {
		switch {
		case i >= len(oldWords):
			spans = append(spans, Span{Kind: SpanAdded, Text: newWords[i]})
		case i >= len(newWords):
			spans = append(spans, Span{Kind: SpanRemoved, Text: oldWords[i]})
		case oldWords[i] == newWords[i]:
			spans = append(spans, Span{Kind: SpanUnchanged, Text: oldWords[i]})
		default:
			spans = append(spans,
				Span{Kind: SpanRemoved, Text: oldWords[i]},
				Span{Kind: SpanAdded, Text: newWords[i]},
			)
		}
	}
	return spans
}

// splitWords splits on single spaces, preserving empty-string semantics:
// an empty input has zero words, not one empty word.
func splitWords(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, " ")
}

// Join reassembles the text of all spans matching any keep kind,
// space-separated. Join(Words(s, s), SpanUnchanged) == s for any s;
// Join(spans, SpanUnchanged, SpanAdded) reconstructs the new side.
func Join(spans []Span, keep ...SpanKind) string {
	var words []string
	for _, sp := range spans {
		for _, k := range keep {
			if sp.Kind == k {
				words = append(words, sp.Text)
				break
			}
		}
	}
	return strings.Join(words, " ")
}

// Changed reports whether the diff contains any added or removed span.
func Changed(spans []Span) bool {
	for _, sp := range spans {
		if sp.Kind != SpanUnchanged {
			return true
		}
	}
	return false
}
