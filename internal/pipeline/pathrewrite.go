package pipeline

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// imageSelector matches every image that carries a source.
var imageSelector = cascadia.MustCompile("img[src]")

// ImageResolver maps a file name under ImageDir to its packaged location.
// It reports false for names that were not packaged.
type ImageResolver func(name string) (string, bool)

// RewriteImagePaths points images/<name> references at their packaged
// locations and re-serializes the fragment.
//
// References the resolver does not know, and references outside ImageDir
// (URLs, data URIs), are left untouched. Serialization escapes text and
// closes void elements, so the result is well-formed XHTML even when the
// fragment contains a stray '<' in running text.
func RewriteImagePaths(fragment string, resolve ImageResolver) (string, error) {
	doc, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	for _, img := range cascadia.QueryAll(doc, imageSelector) {
		for i, attr := range img.Attr {
			if attr.Key != "src" {
				continue
			}
			name, ok := strings.CutPrefix(attr.Val, ImageDir+"/")
			if !ok || name == "" {
				continue
			}
			if packaged, ok := resolve(name); ok {
				img.Attr[i].Val = packaged
			}
		}
	}

	return renderFragment(doc)
}

// ImageNames returns the file names referenced under ImageDir, in document
// order and without duplicates.
func ImageNames(fragment string) ([]string, error) {
	doc, err := parseFragment(fragment)
	if err != nil {
		return nil, err
	}

	var names []string
	seen := make(map[string]bool)
	for _, img := range cascadia.QueryAll(doc, imageSelector) {
		for _, attr := range img.Attr {
			if attr.Key != "src" {
				continue
			}
			name, ok := strings.CutPrefix(attr.Val, ImageDir+"/")
			if !ok || name == "" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names, nil
}

// parseFragment parses a body fragment with a body context so the parser
// does not wrap it in <html><body>.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders only the container's children.
func renderFragment(doc *html.Node) (string, error) {
	var buf strings.Builder
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
