package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Block patterns, matched against a trimmed line.
var (
	headingLinePattern = compileLine(`^(#{1,6})\s+(.+)$`)
	bulletLinePattern  = compileLine(`^[-*+]\s+(.+)$`)
	blockImagePattern  = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]+)\)$`)
)

// listState tracks whether a <ul> is open while rendering.
type listState int

const (
	listClosed listState = iota
	listOpen
)

// blockWriter accumulates rendered lines and owns the list state.
type blockWriter struct {
	lines []string
	list  listState
}

func (w *blockWriter) emit(line string) {
	w.lines = append(w.lines, line)
}

func (w *blockWriter) openList() {
	if w.list == listOpen {
		return
	}
	w.emit("<ul>")
	w.list = listOpen
}

func (w *blockWriter) closeList() {
	if w.list == listClosed {
		return
	}
	w.emit("</ul>")
	w.list = listClosed
}

func (w *blockWriter) String() string {
	return strings.Join(w.lines, "\n")
}

// Render converts a chapter body to an XHTML fragment.
//
// Each input line becomes at most one output line. Blank lines are kept as
// empty separators, headings render at their own level, consecutive bullet
// lines share one <ul>, a line holding only an image becomes a block image
// and every other line becomes a paragraph. A list is always closed before
// any non-bullet line and at the end of input. Render never fails.
func Render(body string) string {
	w := &blockWriter{}

	for _, line := range strings.Split(body, "\n") {
		stripped := strings.TrimSpace(line)

		if stripped == "" {
			w.closeList()
			w.emit("")
			continue
		}

		if m := headingLinePattern.FindStringSubmatch(stripped); m != nil {
			w.closeList()
			level := strconv.Itoa(len(m[1]))
			w.emit("<h" + level + ">" + FormatInline(strings.TrimSpace(m[2])) + "</h" + level + ">")
			continue
		}

		if m := bulletLinePattern.FindStringSubmatch(stripped); m != nil {
			w.openList()
			w.emit("  <li>" + FormatInline(m[1]) + "</li>")
			continue
		}

		if m := blockImagePattern.FindStringSubmatch(stripped); m != nil {
			w.closeList()
			w.emit("<p>" + imageTag(m[1], m[2]) + "</p>")
			continue
		}

		w.closeList()
		w.emit("<p>" + FormatInline(stripped) + "</p>")
	}

	w.closeList()
	return w.String()
}
