package md2epub

import (
	"os"

	"github.com/alnah/go-md2epub/internal/yamlutil"
)

// maxGlossarySize bounds glossary files, which carry the full term list
// alongside the metadata block.
const maxGlossarySize = 64 << 20

// Metadata is the book description found in a translation glossary.
// Every field is optional.
type Metadata struct {
	Title          string `yaml:"title"`
	Author         string `yaml:"author"`
	Identifier     string `yaml:"identifier"`
	SourceLanguage string `yaml:"source_language"`
	Language       string `yaml:"target_language"`
}

// glossaryFile is the part of a glossary this package reads.
type glossaryFile struct {
	Metadata Metadata `yaml:"metadata"`
}

// LoadMetadata reads the metadata block of a JSON or YAML glossary.
// A missing, unreadable or malformed file yields empty Metadata.
func LoadMetadata(path string) Metadata {
	if path == "" {
		return Metadata{}
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return Metadata{}
	}
	var g glossaryFile
	if err := yamlutil.UnmarshalWithLimit(data, &g, maxGlossarySize); err != nil {
		return Metadata{}
	}
	return g.Metadata
}
