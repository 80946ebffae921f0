// Package md2epub converts translated Markdown documents to EPUB books.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2epub.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2epub.Input{
//	    Markdown:   "# 제1장\n\n비가 **많이** 왔다.",
//	    SourcePath: "novel.md",
//	    Language:   "ko",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("novel.epub", result.EPUB, 0644)
//
// The result also carries the standalone XHTML of every chapter
// (result.Chapters) for debugging.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Source preprocessing (line endings, Unicode NFC)
//  2. Chapter segmentation on heading lines and chapter keywords
//     ("# Title", "제1장", "Chapter 3", "프롤로그", ...)
//  3. Markup rendering per chapter (headings, bullet lists, images,
//     paragraphs, emphasis)
//  4. Packaging via go-epub (stylesheet, images, cover, contents page,
//     chapters, navigation document)
//
// Segmentation and rendering never fail: malformed markdown is passed
// through as text.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2epub.NewConverter(
//	    md2epub.WithStyle("plain"),
//	    md2epub.WithAssetPath("/path/to/custom/assets"),
//	    md2epub.WithContents("Contents", true),
//	    md2epub.WithPlaceholderTitles("Front Matter", "Text"),
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, md2epub.Input{
//	    Markdown: content,
//	    Title:    "비 오는 날",
//	    Author:   "김작가",
//	    ImageDir: "/path/to/media", // images/<name> references resolve here
//	    Cover:    "/path/to/media/cover.jpg",
//	    CSS:      "p { text-indent: 0; }",
//	})
//
// Book metadata can be read from a translation glossary:
//
//	meta := md2epub.LoadMetadata("glossary.json")
//
// # Images
//
// Chapters reference images as images/<base name>, whatever directory the
// markdown names. CollectImages lists the jpg, jpeg, png, gif, svg and webp
// files of a directory; when no cover is given the first one becomes the
// cover.
//
// # Custom Assets
//
// Override built-in styles using AssetLoader:
//
//	loader, err := md2epub.NewAssetLoader("/path/to/assets")
//	conv, err := md2epub.NewConverter(md2epub.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	└── styles/
//	    └── custom.css
package md2epub
