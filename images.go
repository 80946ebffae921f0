package md2epub

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// imageTypes maps the accepted image extensions to their MIME types.
var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".webp": "image/webp",
}

// ImageMIMEType returns the MIME type for an image file name, matching the
// extension case-insensitively. It reports false for other files.
func ImageMIMEType(name string) (string, bool) {
	mime, ok := imageTypes[strings.ToLower(filepath.Ext(name))]
	return mime, ok
}

// CollectImages lists the image files directly inside dir, sorted by name.
// Subdirectories are not searched. A missing directory, or a path that is
// not a directory, yields no images and no error.
func CollectImages(dir string) ([]ImageAsset, error) {
	if dir == "" {
		return nil, nil
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	// ReadDir sorts entries by file name.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading image directory %s: %w", dir, err)
	}

	var images []ImageAsset
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		mime, ok := ImageMIMEType(e.Name())
		if !ok {
			continue
		}
		images = append(images, ImageAsset{
			SourcePath: filepath.Join(dir, e.Name()),
			FileName:   e.Name(),
			MIMEType:   mime,
		})
	}
	return images, nil
}

// baseName strips both / and \ directory components so Windows paths
// reduce the same way on every platform.
func baseName(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}
