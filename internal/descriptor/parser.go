package descriptor

import (
	"io"
	"path/filepath"

	"kijilayout/internal/core"
)

// Parser reads a descriptor file in one specific format.
type Parser interface {
	Parse(r io.Reader) (*core.Descriptor, error)
	ParseFile(path string) (*core.Descriptor, error)
}

// ParseFile dispatches to the reader matching path's extension.
func ParseFile(path string) (*core.Descriptor, error) {
	switch filepath.Ext(path) {
	case ".json":
		return NewJSONParser().ParseFile(path)
	case ".toml":
		return NewTOMLParser().ParseFile(path)
	default:
		return nil, &UnsupportedFormatError{Path: path}
	}
}

// UnsupportedFormatError is returned by ParseFile for an unrecognized
// extension.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return "unsupported descriptor file format: " + e.Path
}
