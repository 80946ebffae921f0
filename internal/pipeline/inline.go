package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Inline patterns, applied in this order. Longest emphasis run first so
// that ***x*** is not split into ** and *.
var (
	inlineImagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	strongEmPattern    = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	strongPattern      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	emPattern          = regexp.MustCompile(`\*(.+?)\*`)

	imagePlaceholderPattern = regexp.MustCompile(imageStartPlaceholder + `([0-9]+)` + imageEndPlaceholder)
)

// placeholderStripper removes placeholder characters already present in
// the source so they cannot be taken for an image slot.
var placeholderStripper = strings.NewReplacer(imageStartPlaceholder, "", imageEndPlaceholder, "")

// ImageDir is the directory, relative to a chapter document, that image
// references are rewritten into.
const ImageDir = "images"

// FormatInline applies inline formatting to a single line of text.
//
// Images become <img> elements pointing into ImageDir by base name, runs
// of *, ** and *** become emphasis, and bare ampersands are escaped.
// Unbalanced markers are left as literal text. Image tags are swapped out
// for placeholders while the other passes run, so an alt text or file name
// containing * or & is never reformatted. The placeholder characters
// U+E000 and U+E001 are dropped from the input.
func FormatInline(text string) string {
	text = placeholderStripper.Replace(text)

	var images []string
	text = inlineImagePattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := inlineImagePattern.FindStringSubmatch(m)
		images = append(images, imageTag(sub[1], sub[2]))
		return imageStartPlaceholder + strconv.Itoa(len(images)-1) + imageEndPlaceholder
	})

	text = strongEmPattern.ReplaceAllString(text, "<strong><em>${1}</em></strong>")
	text = strongPattern.ReplaceAllString(text, "<strong>${1}</strong>")
	text = emPattern.ReplaceAllString(text, "<em>${1}</em>")
	text = escapeAmpersands(text)

	if len(images) == 0 {
		return text
	}
	return imagePlaceholderPattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := imagePlaceholderPattern.FindStringSubmatch(m)
		i, err := strconv.Atoi(sub[1])
		if err != nil || i >= len(images) {
			return m
		}
		return images[i]
	})
}

// imageTag renders an inline <img> element for a Markdown image reference.
func imageTag(alt, src string) string {
	return `<img src="` + ImageDir + "/" + escapeAttr(baseName(src)) + `" alt="` + escapeAttr(alt) + `"/>`
}

// escapeAmpersands escapes & without double-escaping an existing &amp;.
// Other entities are not recognized: &lt; becomes &amp;lt;.
func escapeAmpersands(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	s = strings.ReplaceAll(s, "&", "&amp;")
	return strings.ReplaceAll(s, "&amp;amp;", "&amp;")
}

// escapeAttr makes s safe inside a double-quoted XHTML attribute.
func escapeAttr(s string) string {
	s = escapeAmpersands(s)
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return strings.ReplaceAll(s, "<", "&lt;")
}

// baseName returns the final element of a path written with either
// separator. Markdown sources from Windows use backslashes.
func baseName(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}
