package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2epub <command> [flags] [args]")
	fmt.Fprintln(w, "       md2epub <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert markdown files to EPUB (default)")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2epub help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2epub convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to EPUB. Chapters start at # and ## headings")
	fmt.Fprintln(w, "and at chapter markers such as \"제1장\", \"Chapter 3\" or \"Prologue\".")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>          Output .epub file or directory")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>            Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Book:")
	fmt.Fprintln(w, "      --title <s>              Title (\"\" = first # heading, then file name)")
	fmt.Fprintln(w, "      --author <s>             Author")
	fmt.Fprintln(w, "      --lang <tag>             Language, BCP 47 (default: ko)")
	fmt.Fprintln(w, "      --identifier <s>         Package identifier (\"\" = derived from file name)")
	fmt.Fprintln(w, "      --glossary <path>        Glossary whose metadata block fills unset fields")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Images:")
	fmt.Fprintln(w, "      --cover <path>           Cover image path or URL (\"\" = first image)")
	fmt.Fprintln(w, "      --media-dir <dir>        Image directory (\"\" = <input dir>/media)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Contents:")
	fmt.Fprintln(w, "      --contents-title <s>     Contents page heading (default: 목차)")
	fmt.Fprintln(w, "      --contents-numbered      Number contents entries")
	fmt.Fprintln(w, "      --no-contents            Omit the contents page")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name|path>      CSS style name or file path")
	fmt.Fprintln(w, "      --asset-path <dir>       Custom asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --xhtml                  Write chapter XHTML next to the EPUB")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show detailed timing and warnings")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2EPUB_CONFIG, MD2EPUB_LANG, MD2EPUB_AUTHOR, MD2EPUB_MEDIA_DIR,")
	fmt.Fprintln(w, "  MD2EPUB_STYLE, MD2EPUB_OUTPUT_DIR, MD2EPUB_WORKERS")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2epub version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2epub help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	case "completion":
		printCompletionUsage(env.Stdout)
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return nil
}
