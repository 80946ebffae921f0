package assets

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots (which could allow extension manipulation), or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// ValidateCSS parses css and returns ErrInvalidCSS if it is malformed.
// Blank input is valid. The number of parsed rules is returned so callers
// can log it.
func ValidateCSS(css string) (int, error) {
	if strings.TrimSpace(css) == "" {
		return 0, nil
	}
	sheet, err := parser.Parse(css)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCSS, err)
	}
	return len(sheet.Rules), nil
}
