// Package pipeline implements the Markdown-to-XHTML stages of the EPUB build.
//
// This package handles the text-level work that happens before packaging:
//   - Source preprocessing (line endings, byte order mark, NFC normalization)
//   - Chapter segmentation on heading and chapter-marker lines
//   - Block and inline rendering of the Markdown subset to XHTML fragments
//   - Chapter document shells and the contents page
//   - Image reference rewriting to packaged locations
//   - Book title detection via Goldmark
//
// Archive assembly is handled separately by the root md2epub package using
// go-epub. This keeps the pipeline free of I/O: every stage here is a pure
// string transformation.
package pipeline
