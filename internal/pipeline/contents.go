package pipeline

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// DefaultContentsTitle is the heading of the generated contents page.
const DefaultContentsTitle = "목차"

// ContentsFileName is the archive file name of the contents page.
const ContentsFileName = "contents.xhtml"

// ContentsEntry is one chapter listed on the contents page.
type ContentsEntry struct {
	Title string
	Href  string
	Level int
}

// ContentsData configures the contents page.
type ContentsData struct {
	Title    string // heading; empty omits it
	Numbered bool   // prefix entries with hierarchical numbers
}

// numberingState tracks hierarchical numbering for contents entries.
// Supports normalization (first entry becomes level 1) and gap skipping.
type numberingState struct {
	counters     [6]int // counters[0] = level 1 count, etc.
	minLevelSeen int    // for normalization (0 = not set)
	lastLevel    int    // for tracking parent relationships
}

func newNumberingState() *numberingState {
	return &numberingState{}
}

// next returns the number string and effective depth for the given level.
// The effective depth drives indentation.
func (n *numberingState) next(level int) (numStr string, effectiveDepth int) {
	level = min(max(level, 1), 6)
	if n.minLevelSeen == 0 || level < n.minLevelSeen {
		n.minLevelSeen = level
	}

	effectiveDepth = max(level-n.minLevelSeen+1, 1)

	// H1 -> H3 becomes depth 1 -> depth 2, not depth 3.
	if n.lastLevel > 0 && effectiveDepth > n.lastLevel+1 {
		effectiveDepth = n.lastLevel + 1
	}

	for i := effectiveDepth; i < len(n.counters); i++ {
		n.counters[i] = 0
	}
	n.counters[effectiveDepth-1]++
	n.lastLevel = effectiveDepth

	parts := make([]string, effectiveDepth)
	for i := range effectiveDepth {
		parts[i] = strconv.Itoa(n.counters[i])
	}
	return strings.Join(parts, ".") + ".", effectiveDepth
}

// GenerateContents builds the body of the contents page.
// Uses <div> elements instead of <ul>/<li> so the book stylesheet's list
// rules do not apply. Returns "" when there are no entries.
func GenerateContents(entries []ContentsEntry, data ContentsData) string {
	if len(entries) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(`<nav class="toc">`)
	buf.WriteString("\n")

	if data.Title != "" {
		buf.WriteString(`<h1 class="toc-title">`)
		buf.WriteString(html.EscapeString(data.Title))
		buf.WriteString("</h1>\n")
	}

	buf.WriteString(`<div class="toc-list">`)
	buf.WriteString("\n")

	numbering := newNumberingState()
	for _, e := range entries {
		num, depth := numbering.next(e.Level)

		buf.WriteString(`<div class="toc-item"`)
		if indent := float64(depth-1) * 1.5; indent > 0 {
			fmt.Fprintf(&buf, ` style="padding-left:%.1fem"`, indent)
		}
		buf.WriteString(`><a href="`)
		buf.WriteString(html.EscapeString(e.Href))
		buf.WriteString(`">`)
		if data.Numbered {
			buf.WriteString(num)
			buf.WriteString(" ")
		}
		buf.WriteString(html.EscapeString(e.Title))
		buf.WriteString("</a></div>\n")
	}

	buf.WriteString("</div>\n</nav>")
	return buf.String()
}
