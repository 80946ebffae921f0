// Package assets provides the CSS styles bundled into generated books.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default styles)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in styles (default, plain) embedded at
// compile time.
//
// FilesystemLoader allows users to provide custom styles from a directory,
// with path traversal protection and symlink resolution.
//
// AssetResolver is the primary loader used by the converter. It tries the
// custom FilesystemLoader first, falling back to EmbeddedLoader if the style
// is not found. This enables overriding the default style while keeping
// the others.
//
// # Directory Structure
//
//	{basePath}/
//	└── styles/
//	    └── {name}.css           # CSS styles (e.g., default.css)
//
// # Validation
//
// ValidateCSS parses a stylesheet with douceur before it is packaged, so a
// malformed user stylesheet is reported instead of shipped.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
