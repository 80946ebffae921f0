package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	flag "github.com/spf13/pflag"

	md2epub "github.com/alnah/go-md2epub"
	"github.com/alnah/go-md2epub/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrNoInput          = errors.New("no input specified")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteEPUB        = errors.New("failed to write EPUB file")
	ErrCreateOutputDir  = errors.New("failed to create output directory")
	ErrInvalidCover     = errors.New("unsupported cover image")
	ErrConversionFailed = errors.New("conversion failed")
)

// runConvertCmd parses convert flags and runs the conversion.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printConvertUsage(env.Stdout)
			return nil
		}
		return fmt.Errorf("%w: %v (see 'md2epub help convert')", ErrUsage, err)
	}
	return runConvert(ctx, positional, flags, env)
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	// Load configuration
	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}

	// Env over config, then CLI flags over both
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	params, err := newConversionParams(cfg, flags.outputMode.xhtml)
	if err != nil {
		return err
	}

	// Resolve input path
	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	// Discover files to convert
	files, err := discoverFiles(inputPath, resolveOutputDir(flags.output, cfg))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}

	logger := newLogger(env.Stderr, flags.common)
	conv, err := md2epub.NewConverter(converterOptions(cfg, logger)...)
	if err != nil {
		return fmt.Errorf("initializing converter: %w", err)
	}

	workers := resolveWorkerCount(flags.workers, envCfg.Workers)
	logger.Debug("starting conversion", "files", len(files), "workers", workers)

	results := convertBatch(ctx, conv, workers, files, params)

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrConversionFailed, failedCount, len(results))
	}

	return nil
}

// loadConfig loads the config named by the flag, else by MD2EPUB_CONFIG,
// else returns the defaults.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	// Book flags
	if flags.book.title != "" {
		cfg.Book.Title = flags.book.title
	}
	if flags.book.author != "" {
		cfg.Book.Author = flags.book.author
	}
	if flags.book.langSet {
		cfg.Book.Language = flags.book.lang
	}
	if flags.book.identifier != "" {
		cfg.Book.Identifier = flags.book.identifier
	}
	if flags.book.glossary != "" {
		cfg.Glossary.Path = flags.book.glossary
	}

	// Image flags
	if flags.images.cover != "" {
		cfg.Images.Cover = flags.images.cover
	}
	if flags.images.mediaDir != "" {
		cfg.Images.Dir = flags.images.mediaDir
	}

	// Contents flags
	if flags.contents.title != "" {
		cfg.Contents.Title = flags.contents.title
	}
	if flags.contents.numbered {
		cfg.Contents.Numbered = true
	}
	if flags.contents.disabled {
		cfg.Contents.Enabled = false
	}

	// Asset flags
	if flags.assets.style != "" {
		cfg.Style.Name = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Style.AssetPath = flags.assets.assetPath
	}
}

// converterOptions translates the merged config into converter options.
func converterOptions(cfg *config.Config, logger *slog.Logger) []md2epub.Option {
	opts := []md2epub.Option{
		md2epub.WithStyle(cfg.Style.Name),
		md2epub.WithPlaceholderTitles(cfg.Chapters.FrontMatterTitle, cfg.Chapters.BodyTitle),
		md2epub.WithLogger(logger),
	}
	if cfg.Style.AssetPath != "" {
		opts = append(opts, md2epub.WithAssetPath(cfg.Style.AssetPath))
	}
	if cfg.Contents.Enabled {
		opts = append(opts, md2epub.WithContents(cfg.Contents.Title, cfg.Contents.Numbered))
	} else {
		opts = append(opts, md2epub.WithoutContents())
	}
	return opts
}

// newLogger returns the diagnostic logger handed to the converter.
// Verbose shows debug records, quiet only errors, otherwise warnings.
func newLogger(w io.Writer, common commonFlags) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case common.quiet:
		level = slog.LevelError
	case common.verbose:
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// resolveInputPath returns the positional input, else the config default directory.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir returns the -o value, else the config default directory.
// Empty means next to each input file.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
