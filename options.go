package md2epub

import (
	"log/slog"

	"github.com/alnah/go-md2epub/internal/pipeline"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	styleInput       string // Name, file path, or CSS content
	resolvedStyle    string // CSS content after resolution
	assetPath        string
	frontMatterTitle string
	bodyTitle        string
	contents         *pipeline.ContentsData // nil disables the contents page
}

// WithStyle sets the book stylesheet. Accepts a style name ("default",
// "plain"), a CSS file path ("./custom.css"), or raw CSS content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath sets a directory whose styles/ folder overrides the
// built-in styles. Missing styles fall back to the embedded ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom AssetLoader. Takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithPlaceholderTitles sets the titles of untitled chapters: text before
// the first boundary, and a book without any boundary. Empty strings keep
// the defaults.
func WithPlaceholderTitles(frontMatter, body string) Option {
	return func(c *Converter) {
		c.cfg.frontMatterTitle = frontMatter
		c.cfg.bodyTitle = body
	}
}

// WithContents configures the contents page placed before the first chapter.
// An empty title keeps the default.
func WithContents(title string, numbered bool) Option {
	return func(c *Converter) {
		if title == "" {
			title = pipeline.DefaultContentsTitle
		}
		c.cfg.contents = &pipeline.ContentsData{Title: title, Numbered: numbered}
	}
}

// WithoutContents omits the contents page. Reading systems still get the
// navigation document.
func WithoutContents() Option {
	return func(c *Converter) {
		c.cfg.contents = nil
	}
}

// WithLogger sets the logger used for warnings such as image references
// that match no bundled image. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}
