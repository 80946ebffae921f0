package md2epub

// Notes:
// - Tests Converter.Convert with a mocked packager to isolate unit logic
// - The mock records the book it receives so tests can check what would
//   have been packaged without building an archive
// - Internal test options (withPackager, withPreprocessor) enable dependency injection
// - packager_test.go covers the real go-epub packager

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2epub/internal/pipeline"
)

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

type mockPackager struct {
	called bool
	book   *book
	output []byte
	err    error
}

func (m *mockPackager) Package(ctx context.Context, b *book) ([]byte, error) {
	m.called = true
	m.book = b
	if m.err != nil {
		return nil, m.err
	}
	if m.output != nil {
		return m.output, nil
	}
	return []byte("PK mock"), nil
}

type mockPreprocessor struct {
	called bool
	input  string
	output string
}

func (m *mockPreprocessor) PreprocessSource(ctx context.Context, content string) string {
	m.called = true
	m.input = content
	if m.output != "" {
		return m.output
	}
	return content
}

type panickingPackager struct{}

func (panickingPackager) Package(ctx context.Context, b *book) ([]byte, error) {
	panic("boom")
}

type mockAssetLoader struct {
	styles map[string]string
}

func (m *mockAssetLoader) LoadStyle(name string) (string, error) {
	if css, ok := m.styles[name]; ok {
		return css, nil
	}
	return "", ErrStyleNotFound
}

// ---------------------------------------------------------------------------
// Test Options (Internal Dependency Injection)
// ---------------------------------------------------------------------------

func withPackager(p packager) Option {
	return func(c *Converter) {
		c.packager = p
	}
}

func withPreprocessor(p pipeline.SourcePreprocessor) Option {
	return func(c *Converter) {
		c.preprocessor = p
	}
}

// newTestConverter builds a converter around a fresh mock packager.
func newTestConverter(t *testing.T, opts ...Option) (*Converter, *mockPackager) {
	t.Helper()
	pkg := &mockPackager{}
	conv, err := NewConverter(append([]Option{withPackager(pkg)}, opts...)...)
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	return conv, pkg
}

// ---------------------------------------------------------------------------
// TestConvert_Success - Successful Conversion Pipeline
// ---------------------------------------------------------------------------

func TestConvert_Success(t *testing.T) {
	t.Parallel()

	conv, pkg := newTestConverter(t)

	result, err := conv.Convert(context.Background(), Input{
		Markdown:   "# Title\n\nHello **world**\n\n- a\n- b\n",
		SourcePath: "/books/rain.md",
		Author:     "김작가",
	})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	if string(result.EPUB) != "PK mock" {
		t.Errorf("EPUB = %q, want %q", result.EPUB, "PK mock")
	}
	if !pkg.called {
		t.Fatal("packager was not called")
	}
	if len(result.Chapters) != 1 {
		t.Fatalf("got %d chapters, want 1", len(result.Chapters))
	}

	ch := result.Chapters[0]
	if ch.Title != "Title" || ch.Level != 1 || ch.FileName != "chapter_001.xhtml" {
		t.Errorf("chapter = %+v", ch)
	}
	for _, want := range []string{
		"<p>Hello <strong>world</strong></p>",
		"<ul>\n  <li>a</li>\n  <li>b</li>\n</ul>",
		`xml:lang="ko"`,
		"<title>Title</title>",
	} {
		if !strings.Contains(ch.XHTML, want) {
			t.Errorf("chapter XHTML missing %q:\n%s", want, ch.XHTML)
		}
	}

	b := pkg.book
	if b.Title != "Title" {
		t.Errorf("book title = %q, want %q", b.Title, "Title")
	}
	if b.Author != "김작가" {
		t.Errorf("book author = %q, want %q", b.Author, "김작가")
	}
	if b.Language != DefaultLanguage {
		t.Errorf("book language = %q, want %q", b.Language, DefaultLanguage)
	}
	if !strings.HasPrefix(b.Identifier, "urn:uuid:") {
		t.Errorf("identifier = %q, want urn:uuid prefix", b.Identifier)
	}
	if b.Contents == nil || b.Contents.FileName != "contents.xhtml" {
		t.Fatalf("contents = %+v, want contents.xhtml", b.Contents)
	}
	if !strings.Contains(b.Contents.Body, `<a href="chapter_001.xhtml">Title</a>`) {
		t.Errorf("contents body missing chapter link:\n%s", b.Contents.Body)
	}
	if len(b.Chapters) != 1 || !strings.HasPrefix(b.Chapters[0].Body, "<h1>Title</h1>\n") {
		t.Errorf("chapters = %+v", b.Chapters)
	}
}

func TestConvert_NoHeadingsUsesBodyPlaceholder(t *testing.T) {
	t.Parallel()

	conv, pkg := newTestConverter(t)

	result, err := conv.Convert(context.Background(), Input{
		Markdown:   "just text\nmore text",
		SourcePath: "notes.md",
	})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	if len(result.Chapters) != 1 {
		t.Fatalf("got %d chapters, want 1", len(result.Chapters))
	}
	if result.Chapters[0].Title != "본문" {
		t.Errorf("chapter title = %q, want %q", result.Chapters[0].Title, "본문")
	}
	if pkg.book.Title != "notes" {
		t.Errorf("book title = %q, want file stem %q", pkg.book.Title, "notes")
	}
}

func TestConvert_EmptyMarkdown(t *testing.T) {
	t.Parallel()

	conv, _ := newTestConverter(t)

	result, err := conv.Convert(context.Background(), Input{})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	if len(result.Chapters) != 1 {
		t.Errorf("got %d chapters, want 1", len(result.Chapters))
	}
	if result.Title != untitled {
		t.Errorf("title = %q, want %q", result.Title, untitled)
	}
}

func TestConvert_ChapterOrderAndNames(t *testing.T) {
	t.Parallel()

	conv, pkg := newTestConverter(t)

	result, err := conv.Convert(context.Background(), Input{
		Markdown: "서문\n머리말\n제1장 시작\n하나\n## 장면\n둘\n에필로그\n끝\n",
	})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	want := []struct {
		title string
		level int
		file  string
	}{
		{"서문", 1, "chapter_001.xhtml"},
		{"제1장 시작", 1, "chapter_002.xhtml"},
		{"장면", 2, "chapter_003.xhtml"},
		{"에필로그", 1, "chapter_004.xhtml"},
	}
	if len(result.Chapters) != len(want) {
		t.Fatalf("got %d chapters, want %d", len(result.Chapters), len(want))
	}
	for i, w := range want {
		got := result.Chapters[i]
		if got.Title != w.title || got.Level != w.level || got.FileName != w.file {
			t.Errorf("chapter %d = {%q %d %q}, want {%q %d %q}",
				i, got.Title, got.Level, got.FileName, w.title, w.level, w.file)
		}
		if pkg.book.Chapters[i].FileName != w.file {
			t.Errorf("packaged chapter %d file = %q, want %q", i, pkg.book.Chapters[i].FileName, w.file)
		}
	}
	if !strings.Contains(result.Chapters[2].XHTML, "<h2>장면</h2>") {
		t.Errorf("level 2 chapter heading missing:\n%s", result.Chapters[2].XHTML)
	}
}

func TestConvert_NormalizesSource(t *testing.T) {
	t.Parallel()

	conv, _ := newTestConverter(t)

	result, err := conv.Convert(context.Background(), Input{
		Markdown: "\uFEFF# A\r\nx\r\n# B\ry\r",
	})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	if len(result.Chapters) != 2 {
		t.Fatalf("got %d chapters, want 2", len(result.Chapters))
	}
	if result.Chapters[0].Title != "A" || result.Chapters[1].Title != "B" {
		t.Errorf("titles = %q, %q", result.Chapters[0].Title, result.Chapters[1].Title)
	}
	if strings.Contains(result.Chapters[0].XHTML, "\r") {
		t.Error("chapter XHTML contains carriage return")
	}
}

func TestConvert_UsesPreprocessorOutput(t *testing.T) {
	t.Parallel()

	pre := &mockPreprocessor{output: "# Replaced\n"}
	conv, _ := newTestConverter(t, withPreprocessor(pre))

	result, err := conv.Convert(context.Background(), Input{Markdown: "# Original\n"})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	if !pre.called || pre.input != "# Original\n" {
		t.Errorf("preprocessor called=%v input=%q", pre.called, pre.input)
	}
	if result.Chapters[0].Title != "Replaced" {
		t.Errorf("title = %q, want %q", result.Chapters[0].Title, "Replaced")
	}
}

// ---------------------------------------------------------------------------
// TestConvert_Metadata - Title, Author, Language, Identifier
// ---------------------------------------------------------------------------

func TestConvert_Metadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    Input
		wantBook book
	}{
		{
			name:     "explicit title wins over heading",
			input:    Input{Markdown: "# Heading\n", Title: "Explicit"},
			wantBook: book{Title: "Explicit", Language: "ko"},
		},
		{
			name:     "first heading when no title",
			input:    Input{Markdown: "intro\n\n# First\n\n# Second\n", SourcePath: "a.md"},
			wantBook: book{Title: "First", Language: "ko"},
		},
		{
			name:     "unknown author omitted",
			input:    Input{Markdown: "x", Title: "T", Author: "Unknown"},
			wantBook: book{Title: "T", Language: "ko"},
		},
		{
			name:     "language passed through",
			input:    Input{Markdown: "x", Title: "T", Language: "en-US"},
			wantBook: book{Title: "T", Language: "en-US"},
		},
		{
			name:     "explicit identifier kept",
			input:    Input{Markdown: "x", Title: "T", Identifier: "urn:isbn:9780000000000"},
			wantBook: book{Title: "T", Language: "ko", Identifier: "urn:isbn:9780000000000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, pkg := newTestConverter(t)
			if _, err := conv.Convert(context.Background(), tt.input); err != nil {
				t.Fatalf("Convert() unexpected error: %v", err)
			}
			got := pkg.book
			if got.Title != tt.wantBook.Title {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantBook.Title)
			}
			if got.Author != tt.wantBook.Author {
				t.Errorf("Author = %q, want %q", got.Author, tt.wantBook.Author)
			}
			if got.Language != tt.wantBook.Language {
				t.Errorf("Language = %q, want %q", got.Language, tt.wantBook.Language)
			}
			if tt.wantBook.Identifier != "" && got.Identifier != tt.wantBook.Identifier {
				t.Errorf("Identifier = %q, want %q", got.Identifier, tt.wantBook.Identifier)
			}
		})
	}
}

func TestBookIdentifier_StableAcrossRuns(t *testing.T) {
	t.Parallel()

	a := bookIdentifier(Input{SourcePath: "/one/dir/novel.md"}, "A")
	b := bookIdentifier(Input{SourcePath: "/other/novel.markdown"}, "B")
	if a != b {
		t.Errorf("identifiers differ for the same stem: %q vs %q", a, b)
	}
	c := bookIdentifier(Input{SourcePath: "/one/dir/other.md"}, "A")
	if a == c {
		t.Errorf("identifiers equal for different stems: %q", a)
	}
	if got := bookIdentifier(Input{}, "Title"); got != bookIdentifier(Input{}, "Title") || !strings.HasPrefix(got, "urn:uuid:") {
		t.Errorf("title-based identifier = %q", got)
	}
}

func TestSourceStem(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                  "",
		"novel.md":          "novel",
		"/a/b/novel.md":     "novel",
		`C:\books\novel.md`: "novel",
		"archive.tar.gz":    "archive.tar",
		"no-extension":      "no-extension",
		"/a/b/비 오는 날.md":    "비 오는 날",
	}
	for in, want := range tests {
		if got := sourceStem(in); got != want {
			t.Errorf("sourceStem(%q) = %q, want %q", in, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestConvert_Images - Collection, Override, Cover Choice
// ---------------------------------------------------------------------------

// writeImages creates empty image files in a new directory.
func writeImages(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("img"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	return dir
}

func TestConvert_Images(t *testing.T) {
	t.Parallel()

	t.Run("collected from directory and first is cover", func(t *testing.T) {
		t.Parallel()

		dir := writeImages(t, "b.png", "a.jpg", "notes.txt")
		conv, pkg := newTestConverter(t)

		result, err := conv.Convert(context.Background(), Input{Markdown: "![x](a.jpg)", ImageDir: dir})
		if err != nil {
			t.Fatalf("Convert() unexpected error: %v", err)
		}
		if len(result.Images) != 2 {
			t.Fatalf("got %d images, want 2", len(result.Images))
		}
		if result.Images[0].FileName != "a.jpg" {
			t.Errorf("first image = %q, want a.jpg", result.Images[0].FileName)
		}
		wantCover := filepath.Join(dir, "a.jpg")
		if result.Cover != wantCover || pkg.book.Cover != wantCover {
			t.Errorf("cover = %q, want %q", result.Cover, wantCover)
		}
	})

	t.Run("explicit images override directory", func(t *testing.T) {
		t.Parallel()

		dir := writeImages(t, "a.png")
		override := []ImageAsset{{SourcePath: "/elsewhere/z.png", FileName: "z.png", MIMEType: "image/png"}}
		conv, pkg := newTestConverter(t)

		if _, err := conv.Convert(context.Background(), Input{Markdown: "x", ImageDir: dir, Images: override}); err != nil {
			t.Fatalf("Convert() unexpected error: %v", err)
		}
		if len(pkg.book.Images) != 1 || pkg.book.Images[0].FileName != "z.png" {
			t.Errorf("images = %+v, want override", pkg.book.Images)
		}
	})

	t.Run("explicit existing cover", func(t *testing.T) {
		t.Parallel()

		dir := writeImages(t, "a.png", "cover.jpg")
		cover := filepath.Join(dir, "cover.jpg")
		conv, pkg := newTestConverter(t)

		if _, err := conv.Convert(context.Background(), Input{Markdown: "x", ImageDir: dir, Cover: cover}); err != nil {
			t.Fatalf("Convert() unexpected error: %v", err)
		}
		if pkg.book.Cover != cover {
			t.Errorf("cover = %q, want %q", pkg.book.Cover, cover)
		}
	})

	t.Run("missing explicit cover falls back to first image", func(t *testing.T) {
		t.Parallel()

		dir := writeImages(t, "a.png")
		conv, pkg := newTestConverter(t)

		_, err := conv.Convert(context.Background(), Input{
			Markdown: "x",
			ImageDir: dir,
			Cover:    filepath.Join(dir, "missing.jpg"),
		})
		if err != nil {
			t.Fatalf("Convert() unexpected error: %v", err)
		}
		if want := filepath.Join(dir, "a.png"); pkg.book.Cover != want {
			t.Errorf("cover = %q, want %q", pkg.book.Cover, want)
		}
	})

	t.Run("no images no cover", func(t *testing.T) {
		t.Parallel()

		conv, pkg := newTestConverter(t)

		_, err := conv.Convert(context.Background(), Input{
			Markdown: "x",
			ImageDir: filepath.Join(t.TempDir(), "absent"),
			Cover:    "/no/such/cover.png",
		})
		if err != nil {
			t.Fatalf("Convert() unexpected error: %v", err)
		}
		if pkg.book.Cover != "" {
			t.Errorf("cover = %q, want empty", pkg.book.Cover)
		}
		if len(pkg.book.Images) != 0 {
			t.Errorf("images = %+v, want none", pkg.book.Images)
		}
	})

	t.Run("URL cover is kept", func(t *testing.T) {
		t.Parallel()

		conv, pkg := newTestConverter(t)
		cover := "https://example.com/cover.png"

		if _, err := conv.Convert(context.Background(), Input{Markdown: "x", Cover: cover}); err != nil {
			t.Fatalf("Convert() unexpected error: %v", err)
		}
		if pkg.book.Cover != cover {
			t.Errorf("cover = %q, want %q", pkg.book.Cover, cover)
		}
	})
}

func TestConvert_WarnsOnUnresolvedImages(t *testing.T) {
	t.Parallel()

	dir := writeImages(t, "known.png")
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	conv, _ := newTestConverter(t, WithLogger(logger))

	_, err := conv.Convert(context.Background(), Input{
		Markdown: "# A\n![k](media/known.png)\n![m](media/missing.png)\n",
		ImageDir: dir,
	})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	out := logs.String()
	if !strings.Contains(out, "image=missing.png") {
		t.Errorf("log missing warning for missing.png:\n%s", out)
	}
	if strings.Contains(out, "image=known.png") {
		t.Errorf("log warns about bundled image:\n%s", out)
	}
}

// ---------------------------------------------------------------------------
// TestConvert_Errors - Validation, Packaging, Cancellation, Panics
// ---------------------------------------------------------------------------

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		pkg     packager
		wantErr error
	}{
		{
			name:    "invalid language",
			input:   Input{Markdown: "x", Language: "not a tag"},
			pkg:     &mockPackager{},
			wantErr: ErrInvalidLanguage,
		},
		{
			name:    "image with directory in file name",
			input:   Input{Markdown: "x", Images: []ImageAsset{{SourcePath: "a/b.png", FileName: "a/b.png"}}},
			pkg:     &mockPackager{},
			wantErr: ErrInvalidImage,
		},
		{
			name:    "packaging failure",
			input:   Input{Markdown: "x"},
			pkg:     &mockPackager{err: ErrPackage},
			wantErr: ErrPackage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := NewConverter(withPackager(tt.pkg))
			if err != nil {
				t.Fatalf("NewConverter() error = %v", err)
			}
			_, err = conv.Convert(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Convert() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConvert_CancelledContext(t *testing.T) {
	t.Parallel()

	conv, pkg := newTestConverter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := conv.Convert(ctx, Input{Markdown: "# A\n"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
	if pkg.called {
		t.Error("packager called after cancellation")
	}
}

func TestConvert_RecoversPanic(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter(withPackager(panickingPackager{}))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	_, err = conv.Convert(context.Background(), Input{Markdown: "x"})
	if err == nil || !strings.Contains(err.Error(), "internal error: boom") {
		t.Errorf("Convert() error = %v, want recovered panic", err)
	}
}

// ---------------------------------------------------------------------------
// TestWithContents - Contents Page Options
// ---------------------------------------------------------------------------

func TestWithContents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      []Option
		wantNil   bool
		wantTitle string
		wantNum   bool
	}{
		{name: "default", wantTitle: "목차"},
		{name: "custom title numbered", opts: []Option{WithContents("Contents", true)}, wantTitle: "Contents", wantNum: true},
		{name: "empty title keeps default", opts: []Option{WithContents("", false)}, wantTitle: "목차"},
		{name: "disabled", opts: []Option{WithoutContents()}, wantNil: true},
		{name: "re-enabled after disable", opts: []Option{WithoutContents(), WithContents("C", false)}, wantTitle: "C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, pkg := newTestConverter(t, tt.opts...)
			if _, err := conv.Convert(context.Background(), Input{Markdown: "# A\n## B\n"}); err != nil {
				t.Fatalf("Convert() unexpected error: %v", err)
			}
			got := pkg.book.Contents
			if tt.wantNil {
				if got != nil {
					t.Errorf("Contents = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("Contents = nil")
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Contents.Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if hasNum := strings.Contains(got.Body, ">1. A<"); hasNum != tt.wantNum {
				t.Errorf("numbered = %v, want %v:\n%s", hasNum, tt.wantNum, got.Body)
			}
		})
	}
}

func TestWithPlaceholderTitles(t *testing.T) {
	t.Parallel()

	conv, _ := newTestConverter(t, WithPlaceholderTitles("Front", "Body"))

	result, err := conv.Convert(context.Background(), Input{Markdown: "dedication\n# One\n"})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	if result.Chapters[0].Title != "Front" {
		t.Errorf("front matter title = %q, want %q", result.Chapters[0].Title, "Front")
	}

	result, err = conv.Convert(context.Background(), Input{Markdown: "plain"})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	if result.Chapters[0].Title != "Body" {
		t.Errorf("body title = %q, want %q", result.Chapters[0].Title, "Body")
	}
}

// ---------------------------------------------------------------------------
// TestWithStyle - Style Option
// ---------------------------------------------------------------------------

func TestWithStyle(t *testing.T) {
	t.Parallel()

	cssFile := filepath.Join(t.TempDir(), "custom.css")
	if err := os.WriteFile(cssFile, []byte("p { color: teal; }"), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name     string
		style    string
		contains string
		wantErr  error
	}{
		{name: "default", style: "", contains: "font-family"},
		{name: "named style", style: "plain", contains: "sans-serif"},
		{name: "inline CSS", style: "h1 { color: navy; }", contains: "color: navy"},
		{name: "CSS file path", style: cssFile, contains: "color: teal"},
		{name: "unknown name", style: "nonexistent", wantErr: ErrStyleNotFound},
		{name: "missing file", style: "./no/such/style.css", wantErr: ErrStyleNotFound},
		{name: "malformed CSS", style: "} p { color: red; }", wantErr: ErrInvalidStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := NewConverter(WithStyle(tt.style), withPackager(&mockPackager{}))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewConverter() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewConverter() error = %v", err)
			}
			if !strings.Contains(conv.cfg.resolvedStyle, tt.contains) {
				t.Errorf("resolved style missing %q", tt.contains)
			}
		})
	}
}

func TestConvert_AppendsInputCSS(t *testing.T) {
	t.Parallel()

	conv, pkg := newTestConverter(t, WithStyle("body { margin: 0; }"))

	if _, err := conv.Convert(context.Background(), Input{Markdown: "x", CSS: "p { margin: 1em; }"}); err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	want := "body { margin: 0; }\np { margin: 1em; }"
	if pkg.book.CSS != want {
		t.Errorf("CSS = %q, want %q", pkg.book.CSS, want)
	}
}

// ---------------------------------------------------------------------------
// TestWithAssetPath - Asset Path Option
// ---------------------------------------------------------------------------

func TestWithAssetPath(t *testing.T) {
	t.Parallel()

	t.Run("custom style found", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, "styles"), 0750); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "styles", "novel.css"), []byte("p { text-indent: 2em; }"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
		conv, err := NewConverter(WithAssetPath(dir), WithStyle("novel"), WithLogger(logger))
		if err != nil {
			t.Fatalf("NewConverter() error = %v", err)
		}
		if !strings.Contains(conv.cfg.resolvedStyle, "text-indent: 2em") {
			t.Errorf("resolved style = %q", conv.cfg.resolvedStyle)
		}
		if !strings.Contains(logs.String(), "custom_assets=true") {
			t.Errorf("style log does not report custom assets:\n%s", logs.String())
		}
	})

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
		if _, err := NewConverter(WithLogger(logger)); err != nil {
			t.Fatalf("NewConverter() error = %v", err)
		}
		if !strings.Contains(logs.String(), "custom_assets=false") {
			t.Errorf("style log does not report embedded assets:\n%s", logs.String())
		}
	})

	t.Run("falls back to embedded default", func(t *testing.T) {
		t.Parallel()

		conv, err := NewConverter(WithAssetPath(t.TempDir()))
		if err != nil {
			t.Fatalf("NewConverter() error = %v", err)
		}
		if conv.cfg.resolvedStyle == "" {
			t.Error("resolved style is empty")
		}
	})

	t.Run("nonexistent path", func(t *testing.T) {
		t.Parallel()

		_, err := NewConverter(WithAssetPath("/nonexistent/assets/dir"))
		if !errors.Is(err, ErrInvalidAssetPath) {
			t.Errorf("NewConverter() error = %v, want ErrInvalidAssetPath", err)
		}
	})
}

func TestWithAssetLoader(t *testing.T) {
	t.Parallel()

	loader := &mockAssetLoader{styles: map[string]string{"default": "p { color: olive; }"}}

	conv, err := NewConverter(WithAssetLoader(loader))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	if conv.cfg.resolvedStyle != "p { color: olive; }" {
		t.Errorf("resolved style = %q", conv.cfg.resolvedStyle)
	}

	_, err = NewConverter(WithAssetLoader(loader), WithStyle("missing"))
	if !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("NewConverter() error = %v, want ErrStyleNotFound", err)
	}
}
