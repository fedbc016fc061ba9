package descriptor

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"kijilayout/internal/core"
)

// TOMLParser reads a descriptor from its TOML form. As with the JSON form,
// the struct tags on core.Descriptor already describe the TOML shape
// directly, so no intermediate conversion type is needed.
type TOMLParser struct{}

// NewTOMLParser creates a new TOML descriptor parser.
func NewTOMLParser() *TOMLParser {
	return &TOMLParser{}
}

// ParseFile opens the file at path and decodes it as a TOML descriptor.
func (p *TOMLParser) ParseFile(path string) (*core.Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("descriptor: open file %q: %w", path, err)
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse decodes TOML content from r into a core.Descriptor.
func (p *TOMLParser) Parse(r io.Reader) (*core.Descriptor, error) {
	var d core.Descriptor
	if _, err := toml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("descriptor: toml decode: %w", err)
	}
	return &d, nil
}
