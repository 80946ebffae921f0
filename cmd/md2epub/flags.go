package main

import (
	"io"

	flag "github.com/spf13/pflag"

	md2epub "github.com/alnah/go-md2epub"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// bookFlags holds package metadata flags.
type bookFlags struct {
	title      string
	author     string
	lang       string
	langSet    bool // --lang given explicitly; the default "ko" yields to env and config
	identifier string
	glossary   string
}

// imageFlags holds image source flags.
type imageFlags struct {
	cover    string
	mediaDir string
}

// contentsFlags holds contents page flags.
type contentsFlags struct {
	title    string
	numbered bool
	disabled bool
}

// assetFlags holds stylesheet flags.
type assetFlags struct {
	style     string // Name, path, or empty for default
	assetPath string // Override asset directory
}

// outputFlags holds output mode flags for debugging.
type outputFlags struct {
	xhtml bool // Write chapter documents alongside the EPUB
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	output     string
	workers    int
	book       bookFlags
	images     imageFlags
	contents   contentsFlags
	assets     assetFlags
	outputMode outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing and warnings")
}

// addBookFlags adds package metadata flags to a FlagSet.
func addBookFlags(fs *flag.FlagSet, f *bookFlags) {
	fs.StringVar(&f.title, "title", "", "book title (\"\" = first # heading, then file name)")
	fs.StringVar(&f.author, "author", "", "book author")
	fs.StringVar(&f.lang, "lang", md2epub.DefaultLanguage, "book language (BCP 47)")
	fs.StringVar(&f.identifier, "identifier", "", "package identifier (\"\" = derived from file name)")
	fs.StringVar(&f.glossary, "glossary", "", "glossary file with a metadata block (JSON or YAML)")
}

// addImageFlags adds image flags to a FlagSet.
func addImageFlags(fs *flag.FlagSet, f *imageFlags) {
	fs.StringVar(&f.cover, "cover", "", "cover image path or URL (\"\" = first image)")
	fs.StringVar(&f.mediaDir, "media-dir", "", "image directory (\"\" = <input dir>/media)")
}

// addContentsFlags adds contents page flags to a FlagSet.
func addContentsFlags(fs *flag.FlagSet, f *contentsFlags) {
	fs.StringVar(&f.title, "contents-title", "", "contents page heading")
	fs.BoolVar(&f.numbered, "contents-numbered", false, "number contents entries")
	fs.BoolVar(&f.disabled, "no-contents", false, "omit the contents page")
}

// addAssetFlags adds stylesheet flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.xhtml, "xhtml", false, "write chapter XHTML next to the EPUB")
}

// newConvertFlagSet registers every convert flag into f.
// Shared by parseConvertFlags and shell completion.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addBookFlags(fs, &f.book)
	addImageFlags(fs, &f.images)
	addContentsFlags(fs, &f.contents)
	addAssetFlags(fs, &f.assets)
	addOutputFlags(fs, &f.outputMode)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// Errors are reported by the caller; flag.ErrHelp is returned for -h.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.book.langSet = fs.Changed("lang")

	return f, fs.Args(), nil
}
