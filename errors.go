package md2epub

import "errors"

// Sentinel errors for library operations.
var (
	ErrPackage = errors.New("EPUB packaging failed")

	// Input validation errors.
	ErrInvalidLanguage = errors.New("invalid language tag")
	ErrInvalidImage    = errors.New("invalid image asset")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidStyle     = errors.New("invalid stylesheet")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
