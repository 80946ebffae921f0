package pipeline

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// titleParser is safe for concurrent use.
var titleParser = goldmark.New().Parser()

// FirstHeading returns the plain text of the first non-empty level-1
// heading in markdown, or "" if there is none. Both ATX (# Title) and
// setext (Title / =====) headings count; headings inside code blocks and
// block quotes do not.
func FirstHeading(markdown string) string {
	src := []byte(markdown)
	doc := titleParser.Parse(text.NewReader(src))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindDocument:
			return ast.WalkContinue, nil
		case ast.KindHeading:
			h := n.(*ast.Heading)
			if h.Level == 1 {
				if t := strings.TrimSpace(plainText(h, src)); t != "" {
					title = t
					return ast.WalkStop, nil
				}
			}
		}
		return ast.WalkSkipChildren, nil
	})
	return title
}

// plainText concatenates the text content of n's inline children.
func plainText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		default:
			b.WriteString(plainText(c, src))
		}
	}
	return b.String()
}
