package pipeline

import (
	"regexp"
	"strings"
)

// Default placeholder titles for chapters that have no heading line.
const (
	DefaultFrontMatterTitle = "서두" // text before the first boundary
	DefaultBodyTitle        = "본문" // a book with no boundary at all
)

// Chapter is one segment of a manuscript.
//
// Heading holds the boundary line exactly as it appeared in the source
// (including its newline), or "" for placeholder chapters. Content holds
// the lines that follow it, also byte-for-byte. Concatenating Heading and
// Content of every chapter in order reproduces the input.
type Chapter struct {
	Title   string
	Content string
	Level   int
	Heading string
}

// boundaryRule recognizes one kind of chapter boundary on a trimmed line.
type boundaryRule struct {
	name  string
	match func(stripped string) (title string, level int, ok bool)
}

// compileLine compiles a line pattern in which \s also matches Unicode
// space separators such as NO-BREAK SPACE and IDEOGRAPHIC SPACE. RE2's \s
// is ASCII only.
func compileLine(expr string) *regexp.Regexp {
	return regexp.MustCompile(strings.ReplaceAll(expr, `\s`, `[\s\p{Zs}]`))
}

// headingRule matches a Markdown heading marker and takes the captured
// text as the title.
func headingRule(name, expr string, level int) boundaryRule {
	re := compileLine(expr)
	return boundaryRule{
		name: name,
		match: func(stripped string) (string, int, bool) {
			m := re.FindStringSubmatch(stripped)
			if m == nil {
				return "", 0, false
			}
			return strings.TrimSpace(m[1]), level, true
		},
	}
}

// markerRule matches a chapter-marker phrase at the start of a line and
// takes the whole line as the title.
func markerRule(name, expr string) boundaryRule {
	re := compileLine(expr)
	return boundaryRule{
		name: name,
		match: func(stripped string) (string, int, bool) {
			if !re.MatchString(stripped) {
				return "", 0, false
			}
			return stripped, 1, true
		},
	}
}

// boundaryRules are tried in order; the first match wins.
var boundaryRules = []boundaryRule{
	headingRule("h1", `^#\s+(.+)$`, 1),
	headingRule("h2", `^##\s+(.+)$`, 2),
	markerRule("korean-part", `^\s*제?\s*\p{Nd}+\s*부`),
	markerRule("korean-chapter", `^\s*제?\s*\p{Nd}+\s*장`),
	markerRule("korean-volume", `^\s*제?\s*\p{Nd}+\s*편`),
	markerRule("english-chapter", `(?i)^\s*chapter\s+\p{Nd}+`),
	markerRule("english-part", `(?i)^\s*part\s+\p{Nd}+`),
	markerRule("english-part-roman", `(?i)^\s*part\s+[ivx\p{Nd}]+`),
	markerRule("cjk-chapter", `^\s*第\s*\p{Nd}+\s*[章部編]`),
	markerRule("korean-prologue", `^\s*프롤로그`),
	markerRule("korean-epilogue", `^\s*에필로그`),
	markerRule("korean-preface", `^\s*서문`),
	markerRule("prologue", `(?i)^\s*prologue`),
	markerRule("epilogue", `(?i)^\s*epilogue`),
	markerRule("preface", `(?i)^\s*preface`),
	markerRule("introduction", `(?i)^\s*introduction`),
}

// matchBoundary reports whether line opens a new chapter.
func matchBoundary(line string) (title string, level int, ok bool) {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return "", 0, false
	}
	for _, rule := range boundaryRules {
		if title, level, ok := rule.match(stripped); ok {
			return title, level, true
		}
	}
	return "", 0, false
}

// Segmenter splits manuscript text into chapters.
// The zero value uses the default placeholder titles.
type Segmenter struct {
	FrontMatterTitle string
	BodyTitle        string
}

// NewSegmenter creates a Segmenter with the default placeholder titles.
func NewSegmenter() *Segmenter {
	return &Segmenter{
		FrontMatterTitle: DefaultFrontMatterTitle,
		BodyTitle:        DefaultBodyTitle,
	}
}

// Segment splits text with the default placeholder titles.
func Segment(text string) []Chapter {
	return NewSegmenter().Segment(text)
}

// Segment splits text into chapters at boundary lines.
//
// A boundary line is consumed as the chapter heading and never appears in
// any chapter's Content. Text before the first boundary becomes a chapter
// titled FrontMatterTitle. A text without boundaries yields exactly one
// chapter titled BodyTitle holding the whole input. Segment never fails and
// always returns at least one chapter.
func (s *Segmenter) Segment(text string) []Chapter {
	var (
		chapters []Chapter
		current  Chapter
		body     strings.Builder
	)

	flush := func(title string) {
		current.Title = title
		current.Content = body.String()
		if current.Level == 0 {
			current.Level = 1
		}
		chapters = append(chapters, current)
		current = Chapter{}
		body.Reset()
	}

	for _, line := range splitLines(text) {
		title, level, ok := matchBoundary(line)
		if !ok {
			body.WriteString(line)
			continue
		}
		switch {
		case current.Title != "":
			flush(current.Title)
		case body.Len() > 0:
			flush(s.frontMatterTitle())
		}
		current = Chapter{Title: title, Level: level, Heading: line}
	}

	if current.Title != "" || body.Len() > 0 {
		title := current.Title
		if title == "" {
			title = s.bodyTitle()
		}
		flush(title)
	}

	if len(chapters) == 0 {
		return []Chapter{{Title: s.bodyTitle(), Content: text, Level: 1}}
	}
	return chapters
}

func (s *Segmenter) frontMatterTitle() string {
	if s.FrontMatterTitle == "" {
		return DefaultFrontMatterTitle
	}
	return s.FrontMatterTitle
}

func (s *Segmenter) bodyTitle() string {
	if s.BodyTitle == "" {
		return DefaultBodyTitle
	}
	return s.BodyTitle
}

// splitLines splits text after each \n, keeping the terminators.
func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
