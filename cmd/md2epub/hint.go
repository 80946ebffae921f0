package main

import (
	"errors"
	"os"
	"strings"

	md2epub "github.com/alnah/go-md2epub"
	"github.com/alnah/go-md2epub/internal/config"
	"github.com/alnah/go-md2epub/internal/hints"
)

// hintedError appends an actionable hint to an error message while keeping
// the chain intact for exitCodeFor.
type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string { return e.err.Error() + e.hint }

func (e *hintedError) Unwrap() error { return e.err }

// withHint returns err with a hint for the failures users can fix themselves.
// Errors without a matching hint are returned unchanged.
func withHint(err error) error {
	if err == nil {
		return nil
	}

	var hint string
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		hint = hints.ForConfigNotFound(triedPaths(err.Error()))
	case errors.Is(err, ErrReadMarkdown) && errors.Is(err, os.ErrNotExist):
		hint = hints.ForInputNotFound()
	case errors.Is(err, ErrInvalidExtension):
		hint = hints.ForInputNotFound()
	case errors.Is(err, ErrCreateOutputDir):
		hint = hints.ForOutputDirectory()
	case errors.Is(err, md2epub.ErrStyleNotFound):
		hint = hints.ForStyleNotFound(md2epub.Styles())
	case errors.Is(err, md2epub.ErrInvalidStyle):
		hint = hints.ForInvalidStyle()
	case errors.Is(err, ErrInvalidCover):
		hint = hints.ForCoverImage()
	case errors.Is(err, md2epub.ErrInvalidLanguage), errors.Is(err, config.ErrInvalidLanguage):
		hint = hints.ForLanguage()
	}

	if hint == "" {
		return err
	}
	return &hintedError{err: err, hint: hint}
}

// triedPaths extracts the searched locations from a config lookup error
// ("...: tried a.yaml, b.yml").
func triedPaths(msg string) []string {
	_, list, ok := strings.Cut(msg, "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}
