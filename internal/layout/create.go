package layout

import (
	"embed"
	"fmt"
	"io"

	"kijilayout/internal/core"
	"kijilayout/internal/descriptor"
)

//go:embed resources/*.json
var resources embed.FS

// CreateFromEffectiveJSON reads a descriptor from r in its JSON wire form
// and builds a from-scratch table layout (no prior). r is drained to end
// and closed, if it implements io.Closer, on every exit path.
func CreateFromEffectiveJSON(r io.Reader, opts ...Option) (*core.TableLayout, error) {
	if closer, ok := r.(io.Closer); ok {
		defer closer.Close()
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("layout: reading effective JSON: %w", err)
	}
	desc, err := descriptor.ParseJSONBytes(data)
	if err != nil {
		return nil, err
	}
	return Build(desc, nil, opts...)
}

// CreateFromEffectiveJSONResource builds a from-scratch table layout from
// one of the small set of reference layouts bundled with the module under
// internal/layout/resources, named without its .json extension (e.g.
// "wide_column_example").
func CreateFromEffectiveJSONResource(name string, opts ...Option) (*core.TableLayout, error) {
	f, err := resources.Open("resources/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("layout: bundled resource %q: %w", name, err)
	}
	defer f.Close()
	return CreateFromEffectiveJSON(f, opts...)
}
