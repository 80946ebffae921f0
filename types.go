package md2epub

import (
	"fmt"

	"golang.org/x/text/language"
)

// DefaultLanguage is the book language when Input.Language is empty.
const DefaultLanguage = "ko"

// Input contains conversion parameters.
type Input struct {
	Markdown   string       // Markdown content (may be empty)
	SourcePath string       // Source file path; its stem names and identifies the book as a last resort
	Title      string       // Book title (default: first # heading, then file stem)
	Author     string       // Book author; "" and "Unknown" are omitted
	Language   string       // BCP 47 tag (default: DefaultLanguage)
	Identifier string       // Package identifier (default: urn:uuid derived from SourcePath)
	Cover      string       // Cover image path or URL; a missing file is ignored
	ImageDir   string       // Directory scanned with CollectImages
	Images     []ImageAsset // Explicit image list; overrides ImageDir when non-nil
	CSS        string       // Custom CSS appended after the converter style (optional)
}

// Validate checks the fields the packaging step cannot recover from.
func (in Input) Validate() error {
	if in.Language != "" {
		if _, err := language.Parse(in.Language); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLanguage, in.Language)
		}
	}
	for _, img := range in.Images {
		if err := img.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ImageAsset is an image file bundled into the book.
type ImageAsset struct {
	SourcePath string // Local path or URL the image is read from
	FileName   string // Base name referenced as images/<FileName> in chapters
	MIMEType   string // e.g. "image/png"
}

// Validate checks that the asset can be referenced from a chapter.
func (a ImageAsset) Validate() error {
	if a.SourcePath == "" {
		return fmt.Errorf("%w: empty source path", ErrInvalidImage)
	}
	if a.FileName == "" || a.FileName != baseName(a.FileName) {
		return fmt.Errorf("%w: file name %q must be a plain base name", ErrInvalidImage, a.FileName)
	}
	return nil
}

// ChapterResult describes one chapter of the produced book.
type ChapterResult struct {
	Title    string
	Level    int    // 1 or 2
	FileName string // Stable positional name, e.g. chapter_001.xhtml
	XHTML    string // Standalone chapter document
}

// ConvertResult holds the packaged book and what went into it.
type ConvertResult struct {
	EPUB       []byte
	Title      string
	Identifier string
	Chapters   []ChapterResult
	Images     []ImageAsset
	Cover      string // Cover source, "" when the book has none
}
