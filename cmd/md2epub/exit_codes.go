package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	md2epub "github.com/alnah/go-md2epub"
	"github.com/alnah/go-md2epub/internal/config"
)

// Exit codes for md2epub CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // Missing input, I/O, packaging or unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	// Missing input is reported like any I/O failure (exit 1)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, ErrReadMarkdown) {
		return ExitGeneral
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidCover) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidLanguage) ||
		errors.Is(err, md2epub.ErrInvalidLanguage) ||
		errors.Is(err, md2epub.ErrStyleNotFound) ||
		errors.Is(err, md2epub.ErrInvalidStyle) ||
		errors.Is(err, md2epub.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
