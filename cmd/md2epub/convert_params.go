package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"golang.org/x/text/language"

	md2epub "github.com/alnah/go-md2epub"
	"github.com/alnah/go-md2epub/internal/config"
	"github.com/alnah/go-md2epub/internal/fileutil"
)

// mediaDirName is the image directory looked up next to each input file.
const mediaDirName = "media"

// conversionParams groups values shared by every file of a batch.
type conversionParams struct {
	title      string
	author     string
	lang       string
	identifier string
	cover      string
	mediaDir   string // Empty = <input dir>/media per file
	xhtml      bool
}

// newConversionParams resolves book metadata from the merged config, then
// fills the gaps from the glossary. Title and identifier left empty are
// derived per file by the converter.
func newConversionParams(cfg *config.Config, xhtml bool) (*conversionParams, error) {
	meta := md2epub.LoadMetadata(cfg.Glossary.Path)

	p := &conversionParams{
		title:      firstNonEmpty(cfg.Book.Title, meta.Title),
		author:     firstNonEmpty(cfg.Book.Author, meta.Author),
		lang:       firstNonEmpty(cfg.Book.Language, meta.Language, md2epub.DefaultLanguage),
		identifier: firstNonEmpty(cfg.Book.Identifier, meta.Identifier),
		cover:      cfg.Images.Cover,
		mediaDir:   cfg.Images.Dir,
		xhtml:      xhtml,
	}

	if _, err := language.Parse(p.lang); err != nil {
		return nil, fmt.Errorf("%w: %q", md2epub.ErrInvalidLanguage, p.lang)
	}
	if err := validateCover(p.cover); err != nil {
		return nil, err
	}

	return p, nil
}

// input builds the converter input for one markdown file.
func (p *conversionParams) input(markdown, sourcePath string) md2epub.Input {
	return md2epub.Input{
		Markdown:   markdown,
		SourcePath: sourcePath,
		Title:      p.title,
		Author:     p.author,
		Language:   p.lang,
		Identifier: p.identifier,
		Cover:      p.cover,
		ImageDir:   resolveMediaDir(p.mediaDir, sourcePath),
	}
}

// resolveMediaDir returns the explicit directory, else <input dir>/media
// when it exists, else "".
func resolveMediaDir(explicit, inputPath string) string {
	if explicit != "" {
		return explicit
	}
	candidate := filepath.Join(filepath.Dir(inputPath), mediaDirName)
	if info, err := os.Stat(candidate); err == nil && info.IsDir() {
		return candidate
	}
	return ""
}

// validateCover rejects cover images whose type cannot go into an EPUB.
// A cover file that does not exist is not checked: the converter ignores
// it and uses the first image.
func validateCover(cover string) error {
	if cover == "" {
		return nil
	}
	name := cover
	switch {
	case fileutil.IsURL(cover):
		u, err := url.Parse(cover)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidCover, cover)
		}
		name = u.Path
	case !fileutil.FileExists(cover):
		return nil
	}
	if _, ok := md2epub.ImageMIMEType(name); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidCover, cover)
	}
	return nil
}

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
