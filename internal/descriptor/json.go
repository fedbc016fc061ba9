// Package descriptor reads table-layout descriptors off disk in the
// formats the builder accepts, converting each into the canonical
// core.Descriptor without performing any of the builder's own validation
// (parsing only decodes; the layout builder still does all checking).
package descriptor

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"kijilayout/internal/core"
)

// JSONParser reads a descriptor from its JSON wire form.
type JSONParser struct{}

// NewJSONParser creates a new JSON descriptor parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// ParseFile opens the file at path and decodes it as a JSON descriptor.
func (p *JSONParser) ParseFile(path string) (*core.Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("descriptor: open file %q: %w", path, err)
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse decodes JSON content from r into a core.Descriptor.
func (p *JSONParser) Parse(r io.Reader) (*core.Descriptor, error) {
	var d core.Descriptor
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("descriptor: json decode: %w", err)
	}
	return &d, nil
}

// ParseJSONBytes decodes a JSON descriptor already held in memory, the
// path CreateFromEffectiveJSON and CreateFromEffectiveJSONResource both
// funnel through.
func ParseJSONBytes(data []byte) (*core.Descriptor, error) {
	var d core.Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("descriptor: json decode: %w", err)
	}
	return &d, nil
}
