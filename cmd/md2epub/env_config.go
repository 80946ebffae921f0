package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-md2epub/internal/config"
)

// envPrefix starts every variable the CLI reads.
const envPrefix = "MD2EPUB_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2EPUB_CONFIG: config file name or path
	Lang       string // MD2EPUB_LANG: book language
	Author     string // MD2EPUB_AUTHOR: book author
	MediaDir   string // MD2EPUB_MEDIA_DIR: image directory
	Style      string // MD2EPUB_STYLE: CSS style name or path
	OutputDir  string // MD2EPUB_OUTPUT_DIR: default output directory
	Workers    int    // MD2EPUB_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2EPUB_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2EPUB_CONFIG":     true,
	"MD2EPUB_LANG":       true,
	"MD2EPUB_AUTHOR":     true,
	"MD2EPUB_MEDIA_DIR":  true,
	"MD2EPUB_STYLE":      true,
	"MD2EPUB_OUTPUT_DIR": true,
	"MD2EPUB_WORKERS":    true,
}

// loadEnvConfig reads configuration through getenv.
// Invalid or non-positive worker counts are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MD2EPUB_CONFIG"),
		Lang:       getenv("MD2EPUB_LANG"),
		Author:     getenv("MD2EPUB_AUTHOR"),
		MediaDir:   getenv("MD2EPUB_MEDIA_DIR"),
		Style:      getenv("MD2EPUB_STYLE"),
		OutputDir:  getenv("MD2EPUB_OUTPUT_DIR"),
	}

	if workers := getenv("MD2EPUB_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized MD2EPUB_* variable.
// Catches typos like MD2EPUB_AUTOR.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overlays set environment values on the config file values.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Lang != "" {
		cfg.Book.Language = env.Lang
	}
	if env.Author != "" {
		cfg.Book.Author = env.Author
	}
	if env.MediaDir != "" {
		cfg.Images.Dir = env.MediaDir
	}
	if env.Style != "" {
		cfg.Style.Name = env.Style
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
}
