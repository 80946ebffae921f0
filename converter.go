package md2epub

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/alnah/go-md2epub/internal/assets"
	"github.com/alnah/go-md2epub/internal/fileutil"
	"github.com/alnah/go-md2epub/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.SourcePreprocessor = (*pipeline.NormalizingPreprocessor)(nil)
	_ packager                    = (*goEpubPackager)(nil)
	_ AssetLoader                 = (*assetLoaderAdapter)(nil)
)

// unknownAuthor is the glossary convention for "no author".
const unknownAuthor = "Unknown"

// untitled names a book with no title, heading or source file.
const untitled = "Untitled"

// Converter orchestrates the markdown-to-EPUB conversion pipeline.
// Create with NewConverter() and use Convert() for conversion.
// A Converter holds no per-run state and is safe for concurrent use.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	preprocessor      pipeline.SourcePreprocessor
	segmenter         *pipeline.Segmenter
	packager          packager
	logger            *slog.Logger
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithStyle, WithAssetPath, WithContents).
// Returns error if the style cannot be loaded or does not parse as CSS.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			contents: &pipeline.ContentsData{Title: pipeline.DefaultContentsTitle},
		},
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.NormalizingPreprocessor{},
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Handle WithAssetPath: resolve to internal loader
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	// Handle WithAssetLoader (public interface): same method set as the internal one
	if c.publicAssetLoader != nil {
		c.assetLoader = c.publicAssetLoader
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	c.segmenter = &pipeline.Segmenter{
		FrontMatterTitle: c.cfg.frontMatterTitle,
		BodyTitle:        c.cfg.bodyTitle,
	}

	// Create packager if not injected (e.g., by tests)
	if c.packager == nil {
		c.packager = newGoEpubPackager()
	}

	return c, nil
}

// Convert runs the full pipeline and returns the packaged book.
// The context is checked between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	lang := input.Language
	if lang == "" {
		lang = DefaultLanguage
	}

	text := c.preprocessor.PreprocessSource(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	chapters := c.segmenter.Segment(text)
	res := &ConvertResult{
		Title:    bookTitle(input, text),
		Chapters: make([]ChapterResult, len(chapters)),
	}
	sections := make([]section, len(chapters))
	entries := make([]pipeline.ContentsEntry, len(chapters))
	for i, ch := range chapters {
		fragment := pipeline.Render(ch.Content)
		name := pipeline.ChapterFileName(i)
		res.Chapters[i] = ChapterResult{
			Title:    ch.Title,
			Level:    ch.Level,
			FileName: name,
			XHTML:    pipeline.ChapterDocument(ch.Title, ch.Level, fragment, lang),
		}
		sections[i] = section{
			Title:    ch.Title,
			FileName: name,
			Body:     pipeline.ChapterBody(ch.Title, ch.Level, fragment),
		}
		entries[i] = pipeline.ContentsEntry{Title: ch.Title, Href: name, Level: ch.Level}
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	images := input.Images
	if images == nil {
		images, err = CollectImages(input.ImageDir)
		if err != nil {
			return nil, err
		}
	}
	res.Images = images
	c.warnUnresolvedImages(sections, images)

	res.Cover = c.chooseCover(input.Cover, images)
	res.Identifier = bookIdentifier(input, res.Title)

	css := c.cfg.resolvedStyle
	if input.CSS != "" {
		css += "\n" + input.CSS
	}

	b := &book{
		Title:      res.Title,
		Author:     bookAuthor(input.Author),
		Language:   lang,
		Identifier: res.Identifier,
		CSS:        css,
		Images:     images,
		Cover:      res.Cover,
		Chapters:   sections,
	}
	if c.cfg.contents != nil {
		b.Contents = &section{
			Title:    c.cfg.contents.Title,
			FileName: pipeline.ContentsFileName,
			Body:     pipeline.GenerateContents(entries, *c.cfg.contents),
		}
	}

	res.EPUB, err = c.packager.Package(ctx, b)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("book packaged",
		"title", res.Title,
		"chapters", len(res.Chapters),
		"images", len(res.Images),
		"bytes", len(res.EPUB))
	return res, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS
// content and checks that it parses. Called during NewConverter() after
// options are applied and the asset loader is configured.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	var css string
	switch {
	case fileutil.IsFilePath(input):
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: loading style file %q: %w", ErrStyleNotFound, input, err)
		}
		css = string(content)
	case fileutil.IsCSS(input):
		css = input
	default:
		content, err := c.assetLoader.LoadStyle(input)
		if err != nil {
			return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
		}
		css = content
	}

	rules, err := assets.ValidateCSS(css)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}
	c.logger.Debug("style resolved", "style", input, "rules", rules, "custom_assets", c.customAssets())

	c.cfg.resolvedStyle = css
	return nil
}

// customAssets reports whether styles can come from outside the embedded set.
func (c *Converter) customAssets() bool {
	if r, ok := c.assetLoader.(*assets.AssetResolver); ok {
		return r.HasCustomLoader()
	}
	return c.publicAssetLoader != nil
}

// warnUnresolvedImages logs chapter image references that match no bundled
// image. Reading systems show those as broken images.
func (c *Converter) warnUnresolvedImages(sections []section, images []ImageAsset) {
	known := make(map[string]bool, len(images))
	for _, img := range images {
		known[img.FileName] = true
	}
	for _, s := range sections {
		names, err := pipeline.ImageNames(s.Body)
		if err != nil {
			continue
		}
		for _, name := range names {
			if !known[name] {
				c.logger.Warn("image not found", "chapter", s.FileName, "image", name)
			}
		}
	}
}

// chooseCover returns the explicit cover when it exists, else the first
// image, else "". A missing explicit cover is ignored.
func (c *Converter) chooseCover(explicit string, images []ImageAsset) string {
	if explicit != "" {
		if fileutil.IsURL(explicit) || fileutil.FileExists(explicit) {
			return explicit
		}
		c.logger.Debug("cover image not found, ignoring", "cover", explicit)
	}
	if len(images) > 0 {
		return images[0].SourcePath
	}
	return ""
}

// bookTitle picks the explicit title, else the first level-1 heading, else
// the source file stem.
func bookTitle(input Input, text string) string {
	if t := strings.TrimSpace(input.Title); t != "" {
		return t
	}
	if t := pipeline.FirstHeading(text); t != "" {
		return t
	}
	if stem := sourceStem(input.SourcePath); stem != "" {
		return stem
	}
	return untitled
}

// bookAuthor drops the placeholder author.
func bookAuthor(author string) string {
	author = strings.TrimSpace(author)
	if author == unknownAuthor {
		return ""
	}
	return author
}

// bookIdentifier returns the explicit identifier, else a name-based UUID
// of the source stem (or the title), so rebuilding a book keeps its identity.
func bookIdentifier(input Input, title string) string {
	if input.Identifier != "" {
		return input.Identifier
	}
	key := sourceStem(input.SourcePath)
	if key == "" {
		key = title
	}
	return "urn:uuid:" + uuid.NewSHA1(uuid.NameSpaceURL, []byte("md2epub:"+key)).String()
}

// sourceStem returns the file name of path without its extension.
func sourceStem(path string) string {
	if path == "" {
		return ""
	}
	name := baseName(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
