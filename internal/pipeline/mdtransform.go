package pipeline

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Image placeholders use Unicode Private Use Area characters.
// They shield already-rendered <img> tags from the emphasis and
// ampersand passes of the inline formatter.
const (
	imageStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	imageEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

const byteOrderMark = "\uFEFF"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)
)

// SourcePreprocessor defines the contract for Markdown source preprocessing.
type SourcePreprocessor interface {
	PreprocessSource(ctx context.Context, content string) string
}

// NormalizingPreprocessor prepares manuscript text for segmentation.
type NormalizingPreprocessor struct{}

// PreprocessSource strips a leading byte order mark, converts line endings
// to \n and normalizes the text to Unicode NFC so that decomposed Hangul
// (common in files saved on macOS) matches the chapter marker patterns.
func (p *NormalizingPreprocessor) PreprocessSource(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	content = normalizeLineEndings(content)
	content = normalizeUnicode(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// normalizeUnicode composes the text to NFC, skipping the copy when it
// already is.
func normalizeUnicode(content string) string {
	if norm.NFC.IsNormalString(content) {
		return content
	}
	return norm.NFC.String(content)
}
