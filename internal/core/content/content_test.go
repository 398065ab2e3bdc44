package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/threadview/internal/core/thread"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Metrics
	}{
		{
			name:    "short sentence",
			content: "The quick brown fox",
			want:    Metrics{WordCount: 4, CharCount: 19, ReadingTimeMin: 1},
		},
		{
			name:    "empty content",
			content: "",
			want:    Metrics{WordCount: 0, CharCount: 0, ReadingTimeMin: 0},
		},
		{
			name:    "collapses repeated whitespace",
			content: "one   two\n\nthree\t four",
			want:    Metrics{WordCount: 4, CharCount: 22, ReadingTimeMin: 1},
		},
		{
			name:    "counts runes not bytes",
			content: "héllo wörld",
			want:    Metrics{WordCount: 2, CharCount: 11, ReadingTimeMin: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Measure(tt.content))
		})
	}
}

func TestMeasure_ReadingTimeCeiling(t *testing.T) {
	// 200 words reads in exactly one minute; 201 rounds up to two.
	word := "word "
	at200 := ""
	for range 200 {
		at200 += word
	}
	assert.Equal(t, 1, Measure(at200).ReadingTimeMin)
	assert.Equal(t, 2, Measure(at200+"word").ReadingTimeMin)
}

func TestSegments_PlainContentIsSingleTextSegment(t *testing.T) {
	segs := Segments("nothing special here", "", nil)

	require.Len(t, segs, 1)
	assert.Equal(t, SegmentText, segs[0].Kind)
	assert.Equal(t, "nothing special here", segs[0].Text)
}

func TestSegments_Annotations(t *testing.T) {
	raw := "thanks @ana for the #deal info"
	annotations := []thread.Annotation{
		{Kind: thread.AnnotationMention, Start: 7, End: 11, UserID: "u-ana"},
		{Kind: thread.AnnotationHashtag, Start: 20, End: 25, Tag: "deal"},
	}

	segs := Segments(raw, "", annotations)

	require.Len(t, segs, 5)
	assert.Equal(t, "thanks ", segs[0].Text)
	assert.Equal(t, SegmentMention, segs[1].Kind)
	assert.Equal(t, "@ana", segs[1].Text)
	assert.Equal(t, "u-ana", segs[1].UserID)
	assert.Equal(t, SegmentHashtag, segs[3].Kind)
	assert.Equal(t, "#deal", segs[3].Text)
	assert.Equal(t, "deal", segs[3].Tag)

	assert.Equal(t, raw, Plain(segs))
}

func TestSegments_OutOfRangeOffsetsIgnored(t *testing.T) {
	raw := "short"
	annotations := []thread.Annotation{
		{Kind: thread.AnnotationMention, Start: 2, End: 50, UserID: "u1"},
		{Kind: thread.AnnotationLink, Start: -1, End: 3, LinkID: "l1"},
	}

	segs := Segments(raw, "", annotations)

	require.Len(t, segs, 1)
	assert.Equal(t, SegmentText, segs[0].Kind)
	assert.Equal(t, raw, Plain(segs))
}

func TestSegments_OverlappingAnnotationsFirstWins(t *testing.T) {
	raw := "abcdefgh"
	annotations := []thread.Annotation{
		{Kind: thread.AnnotationHashtag, Start: 0, End: 4, Tag: "one"},
		{Kind: thread.AnnotationHashtag, Start: 2, End: 6, Tag: "two"},
	}

	segs := Segments(raw, "", annotations)

	tags := []string{}
	for _, s := range segs {
		if s.Kind == SegmentHashtag {
			tags = append(tags, s.Tag)
		}
	}
	assert.Equal(t, []string{"one"}, tags)
	assert.Equal(t, raw, Plain(segs))
}

func TestSegments_QueryHighlight(t *testing.T) {
	segs := Segments("Great battery, the Battery life rocks", "battery", nil)

	var hits []string
	for _, s := range segs {
		if s.Kind == SegmentSearch {
			hits = append(hits, s.Text)
		}
	}
	// Case-insensitive matching preserves the original casing of each hit.
	assert.Equal(t, []string{"battery", "Battery"}, hits)
	assert.Equal(t, "Great battery, the Battery life rocks", Plain(segs))
}

func TestSegments_QueryWithFoldWidthChange(t *testing.T) {
	// Lowercasing U+023A grows it from two bytes to three, so highlight
	// offsets must be computed against the original text, not a folded copy.
	raw := "Ⱥ battery works"

	segs := Segments(raw, "battery", nil)

	var hits []string
	for _, s := range segs {
		if s.Kind == SegmentSearch {
			hits = append(hits, s.Text)
		}
	}
	assert.Equal(t, []string{"battery"}, hits)
	assert.Equal(t, raw, Plain(segs))

	// Folded runes also match in either direction.
	segs = Segments("Ⱥx marks", "ⱥx", nil)
	require.NotEmpty(t, segs)
	assert.Equal(t, SegmentSearch, segs[0].Kind)
	assert.Equal(t, "Ⱥx", segs[0].Text)
}

func TestSegments_QueryDoesNotSplitAnnotations(t *testing.T) {
	raw := "see @battery for details"
	annotations := []thread.Annotation{
		{Kind: thread.AnnotationMention, Start: 4, End: 12, UserID: "u1"},
	}

	segs := Segments(raw, "battery", annotations)

	for _, s := range segs {
		if s.Kind == SegmentMention {
			assert.Equal(t, "@battery", s.Text)
		}
	}
	assert.Equal(t, raw, Plain(segs))
}

func TestInteractive(t *testing.T) {
	assert.True(t, Segment{Kind: SegmentMention}.Interactive())
	assert.True(t, Segment{Kind: SegmentHashtag}.Interactive())
	assert.True(t, Segment{Kind: SegmentLink}.Interactive())
	assert.False(t, Segment{Kind: SegmentText}.Interactive())
	assert.False(t, Segment{Kind: SegmentSearch}.Interactive())
}
