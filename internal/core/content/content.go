// Package content transforms raw reply text into renderable annotated
// segments and derives display metrics. Everything here is pure; callers
// decide how segments map to styling and click targets.
package content

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/colonyops/threadview/internal/core/thread"
)

// wordsPerMinute is the fixed reading speed used for reading-time estimates.
// Not user-configurable.
const wordsPerMinute = 200

// SegmentKind discriminates rendered segment types.
type SegmentKind string

const (
	SegmentText    SegmentKind = "text"
	SegmentMention SegmentKind = "mention"
	SegmentHashtag SegmentKind = "hashtag"
	SegmentLink    SegmentKind = "link"
	SegmentSearch  SegmentKind = "search"
)

// Segment is one contiguous run of reply content. Non-text segments carry
// enough metadata for the caller to attach an activation handler.
type Segment struct {
	Kind SegmentKind
	Text string

	// Annotation metadata, populated per kind.
	UserID string
	Tag    string
	LinkID string
	URL    string
}

// Interactive reports whether the segment is an activatable span.
func (s Segment) Interactive() bool {
	return s.Kind == SegmentMention || s.Kind == SegmentHashtag || s.Kind == SegmentLink
}

// Metrics holds derived display metrics for a piece of content.
type Metrics struct {
	WordCount      int `json:"word_count"`
	CharCount      int `json:"char_count"`
	ReadingTimeMin int `json:"reading_time_min"`
}

// Measure computes word count, character count, and reading time for the
// given content. Words are whitespace-separated non-empty runs; reading time
// is ceil(words / 200) minutes.
func Measure(content string) Metrics {
	words := len(strings.Fields(content))
	return Metrics{
		WordCount:      words,
		CharCount:      utf8.RuneCountInString(content),
		ReadingTimeMin: (words + wordsPerMinute - 1) / wordsPerMinute,
	}
}

// Segments splits content into renderable segments. Annotations with offsets
// outside the content are skipped, as are spans overlapping an earlier one;
// a malformed annotation never fails the whole transform. When query is
// non-empty, case-insensitive matches inside plain text segments become
// SegmentSearch segments. Content without annotations and without a query
// round-trips as a single text segment.
func Segments(raw string, query string, annotations []thread.Annotation) []Segment {
	valid := make([]thread.Annotation, 0, len(annotations))
	for _, a := range annotations {
		if a.Start < 0 || a.End <= a.Start || a.End > len(raw) {
			continue
		}
		valid = append(valid, a)
	}
	sort.SliceStable(valid, func(i, j int) bool { return valid[i].Start < valid[j].Start })

	var segs []Segment
	pos := 0
	for _, a := range valid {
		if a.Start < pos {
			// Overlaps the previous span; first annotation wins.
			continue
		}
		if a.Start > pos {
			segs = append(segs, emphasize(raw[pos:a.Start], query)...)
		}
		segs = append(segs, annotated(raw[a.Start:a.End], a))
		pos = a.End
	}
	if pos < len(raw) {
		segs = append(segs, emphasize(raw[pos:], query)...)
	}
	if segs == nil {
		segs = []Segment{}
	}
	return segs
}

func annotated(text string, a thread.Annotation) Segment {
	seg := Segment{Text: text}
	switch a.Kind {
	case thread.AnnotationMention:
		seg.Kind = SegmentMention
		seg.UserID = a.UserID
	case thread.AnnotationHashtag:
		seg.Kind = SegmentHashtag
		seg.Tag = a.Tag
	case thread.AnnotationLink:
		seg.Kind = SegmentLink
		seg.LinkID = a.LinkID
		seg.URL = a.URL
	default:
		seg.Kind = SegmentText
	}
	return seg
}

// emphasize splits plain text around case-insensitive query matches.
func emphasize(text string, query string) []Segment {
	if text == "" {
		return nil
	}
	if query == "" {
		return []Segment{{Kind: SegmentText, Text: text}}
	}

	var segs []Segment
	pos := 0
	for pos < len(text) {
		start, end := foldIndex(text[pos:], query)
		if start < 0 {
			break
		}
		start += pos
		end += pos
		if start > pos {
			segs = append(segs, Segment{Kind: SegmentText, Text: text[pos:start]})
		}
		segs = append(segs, Segment{Kind: SegmentSearch, Text: text[start:end]})
		pos = end
	}
	if pos < len(text) {
		segs = append(segs, Segment{Kind: SegmentText, Text: text[pos:]})
	}
	return segs
}

// foldIndex reports the byte offsets in text of the first case-insensitive
// match of query. Comparison folds rune by rune over the original text, so
// the offsets stay valid even when case folding changes a rune's byte length.
func foldIndex(text string, query string) (start int, end int) {
	for i := range text {
		if n, ok := foldPrefix(text[i:], query); ok {
			return i, i + n
		}
	}
	return -1, -1
}

// foldPrefix reports the byte length of a case-insensitive match of query at
// the start of text, if any.
func foldPrefix(text string, query string) (int, bool) {
	n := 0
	for _, q := range query {
		r, size := utf8.DecodeRuneInString(text[n:])
		if size == 0 || unicode.ToLower(r) != unicode.ToLower(q) {
			return 0, false
		}
		n += size
	}
	return n, true
}

// Plain reassembles the original content from segments. Segmentation never
// drops or reorders characters, so Plain(Segments(s, q, a)) == s.
func Plain(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}
