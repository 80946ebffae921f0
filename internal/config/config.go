package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/alnah/go-md2epub/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidLanguage = errors.New("invalid language tag")
)

// Field length limits.
const (
	MaxTitleLength      = 500  // Book title
	MaxNameLength       = 200  // Author name
	MaxLanguageLength   = 35   // BCP 47 tags are short; RFC 5646 suggests 35
	MaxIdentifierLength = 256  // urn:uuid:..., urn:isbn:..., URL
	MaxPathLength       = 4096 // PATH_MAX on Linux
	MaxLabelLength      = 100  // Placeholder and contents titles
)

// Config holds all configuration for book generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Book     BookConfig     `yaml:"book"`
	Images   ImagesConfig   `yaml:"images"`
	Glossary GlossaryConfig `yaml:"glossary"`
	Style    StyleConfig    `yaml:"style"`
	Chapters ChaptersConfig `yaml:"chapters"`
	Contents ContentsConfig `yaml:"contents"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// BookConfig defines package metadata. Empty fields fall back to the
// glossary and then to values derived from the source.
type BookConfig struct {
	Title      string `yaml:"title"`
	Author     string `yaml:"author"`
	Language   string `yaml:"language"`   // BCP 47 tag, e.g. "ko", "en-US"
	Identifier string `yaml:"identifier"` // Empty = derived from the file name
}

// ImagesConfig defines where images come from.
type ImagesConfig struct {
	Dir   string `yaml:"dir"`   // Empty = <input dir>/media when present
	Cover string `yaml:"cover"` // Empty = first collected image
}

// GlossaryConfig points at a translation glossary carrying book metadata.
type GlossaryConfig struct {
	Path string `yaml:"path"`
}

// StyleConfig defines stylesheet options.
type StyleConfig struct {
	Name      string `yaml:"name"`      // Style name, CSS file path, or empty for default
	AssetPath string `yaml:"assetPath"` // Custom asset directory (empty = embedded only)
}

// ChaptersConfig defines placeholder titles for untitled chapters.
type ChaptersConfig struct {
	FrontMatterTitle string `yaml:"frontMatterTitle"`
	BodyTitle        string `yaml:"bodyTitle"`
}

// ContentsConfig defines the generated contents page.
type ContentsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Title    string `yaml:"title"`
	Numbered bool   `yaml:"numbered"`
}

// Validate checks field lengths and the language tag.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"book.title", c.Book.Title, MaxTitleLength},
		{"book.author", c.Book.Author, MaxNameLength},
		{"book.language", c.Book.Language, MaxLanguageLength},
		{"book.identifier", c.Book.Identifier, MaxIdentifierLength},
		{"images.dir", c.Images.Dir, MaxPathLength},
		{"images.cover", c.Images.Cover, MaxPathLength},
		{"glossary.path", c.Glossary.Path, MaxPathLength},
		{"style.name", c.Style.Name, MaxPathLength},
		{"style.assetPath", c.Style.AssetPath, MaxPathLength},
		{"chapters.frontMatterTitle", c.Chapters.FrontMatterTitle, MaxLabelLength},
		{"chapters.bodyTitle", c.Chapters.BodyTitle, MaxLabelLength},
		{"contents.title", c.Contents.Title, MaxLabelLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Book.Language != "" {
		if _, err := language.Parse(c.Book.Language); err != nil {
			return fmt.Errorf("%w: book.language %q", ErrInvalidLanguage, c.Book.Language)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// contents page on, everything else derived from the input.
func DefaultConfig() *Config {
	return &Config{
		Input:    InputConfig{DefaultDir: ""},
		Output:   OutputConfig{DefaultDir: ""},
		Book:     BookConfig{},
		Images:   ImagesConfig{},
		Glossary: GlossaryConfig{},
		Style:    StyleConfig{},
		Chapters: ChaptersConfig{},
		Contents: ContentsConfig{Enabled: true},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Keys absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2epub/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2epub", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
