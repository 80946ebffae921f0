package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Input.DefaultDir != "" {
		t.Errorf("Input.DefaultDir = %q, want empty", cfg.Input.DefaultDir)
	}
	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	if cfg.Book.Language != "" {
		t.Errorf("Book.Language = %q, want empty", cfg.Book.Language)
	}
	if cfg.Style.Name != "" {
		t.Errorf("Style.Name = %q, want empty", cfg.Style.Name)
	}
	if !cfg.Contents.Enabled {
		t.Error("Contents.Enabled = false, want true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fieldName string
		value     string
		maxLength int
		wantErr   bool
	}{
		{
			name:      "empty value is valid",
			fieldName: "test",
			value:     "",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value at limit is valid",
			fieldName: "test",
			value:     "1234567890",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value over limit returns error",
			fieldName: "test.field",
			value:     "12345678901",
			maxLength: 10,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength(tt.fieldName, tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				if err != nil && !strings.Contains(err.Error(), tt.fieldName) {
					t.Errorf("error %q does not name field %q", err, tt.fieldName)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name: "valid book",
			mutate: func(c *Config) {
				c.Book = BookConfig{Title: "비 오는 날", Author: "김작가", Language: "ko", Identifier: "urn:isbn:9780000000000"}
			},
		},
		{
			name:   "region subtag",
			mutate: func(c *Config) { c.Book.Language = "en-US" },
		},
		{
			name:    "malformed language",
			mutate:  func(c *Config) { c.Book.Language = "not a tag" },
			wantErr: ErrInvalidLanguage,
		},
		{
			name:    "title too long",
			mutate:  func(c *Config) { c.Book.Title = strings.Repeat("x", MaxTitleLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "author too long",
			mutate:  func(c *Config) { c.Book.Author = strings.Repeat("x", MaxNameLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "placeholder title too long",
			mutate:  func(c *Config) { c.Chapters.BodyTitle = strings.Repeat("x", MaxLabelLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "contents title too long",
			mutate:  func(c *Config) { c.Contents.Title = strings.Repeat("x", MaxLabelLength+1) },
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `book:
  title: "비 오는 날"
  author: "김작가"
  language: "ko"
images:
  dir: "./media"
  cover: "./media/cover.jpg"
glossary:
  path: "./glossary.json"
style:
  name: "plain"
chapters:
  frontMatterTitle: "Front"
  bodyTitle: "Body"
contents:
  enabled: false
  title: "Contents"
  numbered: true
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Book.Title != "비 오는 날" {
			t.Errorf("Book.Title = %q, want %q", cfg.Book.Title, "비 오는 날")
		}
		if cfg.Book.Author != "김작가" {
			t.Errorf("Book.Author = %q, want %q", cfg.Book.Author, "김작가")
		}
		if cfg.Images.Cover != "./media/cover.jpg" {
			t.Errorf("Images.Cover = %q, want %q", cfg.Images.Cover, "./media/cover.jpg")
		}
		if cfg.Glossary.Path != "./glossary.json" {
			t.Errorf("Glossary.Path = %q, want %q", cfg.Glossary.Path, "./glossary.json")
		}
		if cfg.Style.Name != "plain" {
			t.Errorf("Style.Name = %q, want %q", cfg.Style.Name, "plain")
		}
		if cfg.Chapters.FrontMatterTitle != "Front" || cfg.Chapters.BodyTitle != "Body" {
			t.Errorf("Chapters = %+v, want Front/Body", cfg.Chapters)
		}
		if cfg.Contents.Enabled {
			t.Error("Contents.Enabled = true, want false")
		}
		if !cfg.Contents.Numbered || cfg.Contents.Title != "Contents" {
			t.Errorf("Contents = %+v, want numbered with title", cfg.Contents)
		}
	})

	t.Run("absent section keeps defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "book:\n  title: \"x\"\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if !cfg.Contents.Enabled {
			t.Error("Contents.Enabled = false, want default true")
		}
	})

	t.Run("loads input and output directories", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `input:
  defaultDir: "/path/to/input"
output:
  defaultDir: "/path/to/output"
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.DefaultDir != "/path/to/input" {
			t.Errorf("Input.DefaultDir = %q, want %q", cfg.Input.DefaultDir, "/path/to/input")
		}
		if cfg.Output.DefaultDir != "/path/to/output" {
			t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "/path/to/output")
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "book: [unclosed")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `book:
  title: "x"
unknownField: "should fail"
`)
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("field too long returns ErrFieldTooLong", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "book:\n  author: \""+strings.Repeat("a", MaxNameLength+1)+"\"\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("invalid language returns ErrInvalidLanguage", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "book:\n  language: \"not a tag\"\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidLanguage) {
			t.Errorf("error = %v, want ErrInvalidLanguage", err)
		}
	})

	t.Run("unreadable file returns read error not ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("permission bits are not enforced here")
		}
		path := writeConfig(t, "book:\n  title: x\n")
		if err := os.Chmod(path, 0000); err != nil {
			t.Fatalf("setup chmod: %v", err)
		}
		defer func() { _ = os.Chmod(path, 0600) }()

		_, err := LoadConfig(path)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, should not be ErrConfigNotFound", err)
		}
	})
}

func TestResolveConfigPath_NotFound(t *testing.T) {
	t.Parallel()

	_, err := resolveConfigPath("no-such-config-abc123")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), "no-such-config-abc123.yaml") {
		t.Errorf("error %q does not list tried paths", err)
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"book":          false,
		"./book.yaml":   true,
		"configs/book":  true,
		`C:\cfg\b.yaml`: true,
		"book.yaml":     false,
	}
	for in, want := range tests {
		if got := isFilePath(in); got != want {
			t.Errorf("isFilePath(%q) = %v, want %v", in, got, want)
		}
	}
}
