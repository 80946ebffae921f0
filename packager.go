package md2epub

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/bmaupin/go-epub"

	"github.com/alnah/go-md2epub/internal/fileutil"
	"github.com/alnah/go-md2epub/internal/pipeline"
)

// stylesheetName is the file name of the book stylesheet inside the package.
const stylesheetName = "style.css"

// packager turns prepared chapters and assets into an EPUB archive.
type packager interface {
	Package(ctx context.Context, b *book) ([]byte, error)
}

// book is everything the packaging step needs.
type book struct {
	Title      string
	Author     string // Empty = no creator entry
	Language   string
	Identifier string
	CSS        string
	Images     []ImageAsset
	Cover      string   // Image source, "" for none
	Contents   *section // nil for no contents page
	Chapters   []section
}

// section is one spine item. Body is an XHTML fragment that references
// images as images/<name>.
type section struct {
	Title    string
	FileName string
	Body     string
}

// goEpubPackager builds EPUB 3 archives with go-epub, which also writes the
// navigation document and the NCX from the section titles.
type goEpubPackager struct{}

func newGoEpubPackager() *goEpubPackager {
	return &goEpubPackager{}
}

// Package assembles the archive in memory.
func (p *goEpubPackager) Package(ctx context.Context, b *book) ([]byte, error) {
	e := epub.NewEpub(b.Title)
	e.SetLang(b.Language)
	e.SetIdentifier(b.Identifier)
	if b.Author != "" {
		e.SetAuthor(b.Author)
	}

	cssPath, cleanup, err := addStylesheet(e, b.CSS)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	packaged := make(map[string]string, len(b.Images))
	bySource := make(map[string]string, len(b.Images))
	for _, img := range b.Images {
		internal, err := e.AddImage(img.SourcePath, img.FileName)
		if err != nil {
			return nil, fmt.Errorf("%w: adding image %s: %v", ErrPackage, img.FileName, err)
		}
		packaged[img.FileName] = internal
		bySource[img.SourcePath] = internal
	}

	if b.Cover != "" {
		internal, ok := bySource[b.Cover]
		if !ok {
			internal, err = e.AddImage(b.Cover, coverFileName(b.Cover, packaged))
			if err != nil {
				return nil, fmt.Errorf("%w: adding cover %s: %v", ErrPackage, b.Cover, err)
			}
		}
		e.SetCover(internal, "")
	}

	if b.Contents != nil {
		// Untitled sections stay out of the nav document and the NCX.
		if _, err := e.AddSection(b.Contents.Body, "", b.Contents.FileName, cssPath); err != nil {
			return nil, fmt.Errorf("%w: adding contents page: %v", ErrPackage, err)
		}
	}

	resolve := func(name string) (string, bool) {
		internal, ok := packaged[name]
		return internal, ok
	}
	for _, s := range b.Chapters {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		body, err := pipeline.RewriteImagePaths(s.Body, resolve)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrPackage, s.FileName, err)
		}
		if _, err := e.AddSection(body, s.Title, s.FileName, cssPath); err != nil {
			return nil, fmt.Errorf("%w: adding %s: %v", ErrPackage, s.FileName, err)
		}
	}

	var buf bytes.Buffer
	if _, err := e.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPackage, err)
	}
	return buf.Bytes(), nil
}

// addStylesheet writes css to a temp file for go-epub to copy into the
// package. The returned path is "" when css is blank.
func addStylesheet(e *epub.Epub, css string) (path string, cleanup func(), err error) {
	cleanup = func() {}
	if css == "" {
		return "", cleanup, nil
	}
	tmp, remove, err := fileutil.WriteTempFile(css, "css")
	if err != nil {
		return "", cleanup, fmt.Errorf("%w: %v", ErrPackage, err)
	}
	path, err = e.AddCSS(tmp, stylesheetName)
	if err != nil {
		remove()
		return "", cleanup, fmt.Errorf("%w: adding stylesheet: %v", ErrPackage, err)
	}
	return path, remove, nil
}

// coverFileName picks a package name for a cover that is not one of the
// book images, avoiding names already taken.
func coverFileName(source string, taken map[string]string) string {
	ext := filepath.Ext(baseName(source))
	name := "cover" + ext
	for i := 1; ; i++ {
		if _, used := taken[name]; !used {
			return name
		}
		name = fmt.Sprintf("cover-%d%s", i, ext)
	}
}
