package thread

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/colonyops/threadview/internal/core/content"
	"github.com/colonyops/threadview/internal/core/styles"
	corethread "github.com/colonyops/threadview/internal/core/thread"
)

// renderSegments styles processed content segments. The segment at
// focusIdx (counting interactive segments only) renders inverted so the
// user can see which mention/hashtag/link activation will target.
func renderSegments(segs []content.Segment, focusIdx int) string {
	var b strings.Builder
	interactive := 0
	for _, seg := range segs {
		var rendered string
		switch seg.Kind {
		case content.SegmentMention:
			rendered = styles.MentionStyle.Render(seg.Text)
		case content.SegmentHashtag:
			rendered = styles.HashtagStyle.Render(seg.Text)
		case content.SegmentLink:
			rendered = styles.LinkStyle.Render(seg.Text)
		case content.SegmentSearch:
			rendered = styles.SearchHitStyle.Render(seg.Text)
		default:
			rendered = seg.Text
		}
		if seg.Interactive() {
			if interactive == focusIdx {
				rendered = styles.SegmentFocused.Render(seg.Text)
			}
			interactive++
		}
		b.WriteString(rendered)
	}
	return b.String()
}

// interactiveSegments returns the activatable segments in display order.
func interactiveSegments(segs []content.Segment) []content.Segment {
	var out []content.Segment
	for _, seg := range segs {
		if seg.Interactive() {
			out = append(out, seg)
		}
	}
	return out
}

// renderMarkdown renders plain (unannotated) content through glamour.
// Returns the raw content when rendering fails; a styling failure must
// never lose the text.
func renderMarkdown(raw string, width int) string {
	if width < 10 {
		width = 10
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return raw
	}
	out, err := r.Render(raw)
	if err != nil {
		return raw
	}
	return strings.TrimRight(out, "\n")
}

// renderBody produces the body block for one reply: content (original or
// translated), overflow truncation, metrics line, and transient
// affordances. Content processing may not have happened yet for nodes that
// never crossed the visibility threshold; those render raw text.
func renderBody(r *corethread.Reply, bs *bodyState, collapseHeight, width int) string {
	text := bodyText(r, bs, width)

	lines := strings.Split(text, "\n")
	bs.overflows = len(lines) > collapseHeight
	if bs.overflows && !bs.expanded {
		lines = lines[:collapseHeight]
		lines = append(lines, styles.TextPrimaryStyle.Render("… show more (o)"))
	}

	var footer []string
	if bs.processed {
		footer = append(footer, styles.MetricsStyle.Render(
			fmt.Sprintf("%d words · %d chars · %d min read",
				bs.metrics.WordCount, bs.metrics.CharCount, bs.metrics.ReadingTimeMin)))
	}
	if bs.translating {
		footer = append(footer, styles.TextWarningStyle.Render(styles.IconTranslate+" translating…"))
	} else if bs.translated {
		footer = append(footer, styles.TextMutedStyle.Render(styles.IconTranslate+" translated (t to revert)"))
	}
	if bs.copied {
		footer = append(footer, styles.CopiedStyle.Render("copied!"))
	}

	out := strings.Join(lines, "\n")
	if len(footer) > 0 {
		out += "\n" + strings.Join(footer, "  ")
	}
	return out
}

func bodyText(r *corethread.Reply, bs *bodyState, width int) string {
	if bs.translated && bs.translatedText != "" {
		return bs.translatedText
	}
	if !bs.processed {
		return r.Content
	}
	// Annotated or search-matched content renders segment-styled so offsets
	// stay faithful; plain content goes through the markdown renderer.
	if len(interactiveSegments(bs.segments)) > 0 || hasSearchHits(bs.segments) {
		return renderSegments(bs.segments, bs.focusSegment)
	}
	return renderMarkdown(r.Content, width)
}

func hasSearchHits(segs []content.Segment) bool {
	for _, seg := range segs {
		if seg.Kind == content.SegmentSearch {
			return true
		}
	}
	return false
}
