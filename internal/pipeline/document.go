package pipeline

import (
	"fmt"
	"html"
)

// StylesheetHref is the stylesheet location relative to a chapter document.
const StylesheetHref = "css/style.css"

// chapterShell wraps a chapter body in a standalone XHTML document.
const chapterShell = `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="%[1]s" lang="%[1]s">
<head>
    <title>%[2]s</title>
    <link href="%[3]s" rel="stylesheet" type="text/css"/>
</head>
<body>
%[4]s
</body>
</html>
`

// ChapterFileName returns the archive file name of the chapter at index i
// (zero-based). Names are one-based and zero-padded: chapter_001.xhtml.
func ChapterFileName(i int) string {
	return fmt.Sprintf("chapter_%03d.xhtml", i+1)
}

// ChapterBody prefixes a rendered fragment with the chapter heading.
// Levels outside 1-6 are clamped.
func ChapterBody(title string, level int, fragment string) string {
	level = min(max(level, 1), 6)
	return fmt.Sprintf("<h%d>%s</h%d>\n%s", level, html.EscapeString(title), level, fragment)
}

// ChapterDocument builds the complete XHTML document for one chapter.
func ChapterDocument(title string, level int, fragment, lang string) string {
	return fmt.Sprintf(chapterShell,
		html.EscapeString(lang),
		html.EscapeString(title),
		StylesheetHref,
		ChapterBody(title, level, fragment),
	)
}
