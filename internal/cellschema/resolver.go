package cellschema

import (
	"encoding/json"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"kijilayout/internal/core"
)

// classNameRe validates a fully-qualified class name: dot-separated
// identifiers, e.g. "com.example.MySchema".
var classNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// primitiveSchemas are the bare schema literals accepted without a full
// JSON parse, mirroring the primitive type names an Avro-like schema
// system recognizes on their own.
var primitiveSchemas = map[string]struct{}{
	"string": {}, "bytes": {}, "int": {}, "long": {},
	"float": {}, "double": {}, "boolean": {}, "null": {},
}

// Resolve validates and, where possible, resolves a cell schema. It always
// runs for its validation side effect during layout construction; its
// return value is also consulted directly by the read-side query surface.
//
//   - INLINE: the Value is parsed as a schema literal. Any parse failure is
//     fatal (InvalidSchema).
//   - CLASS: the Value must be a legal qualified class name. If resolver is
//     non-nil and finds it, its schema is returned. A miss is NOT fatal: it
//     is logged and validation succeeds with a nil ResolvedSchema, because
//     layouts may be validated on nodes without the caller's compiled
//     classes.
//   - COUNTER: returns (nil, nil) — no schema; values are raw 64-bit
//     big-endian integers.
func Resolve(desc core.CellSchemaDesc, resolver ClassResolver, logger *zap.SugaredLogger) (*core.ResolvedSchema, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if err := validateStorage(desc.Storage); err != nil {
		return nil, err
	}

	switch desc.Type {
	case core.SchemaInline:
		if !isValidSchemaLiteral(desc.Value) {
			return nil, core.NewInvalidLayoutError(core.ReasonInvalidSchema, "cell schema", "",
				"Invalid schema: %q is not a recognized schema literal", desc.Value)
		}
		return &core.ResolvedSchema{Text: desc.Value}, nil

	case core.SchemaClass:
		if !classNameRe.MatchString(desc.Value) {
			return nil, core.NewInvalidLayoutError(core.ReasonInvalidSchema, "cell schema", "",
				"Invalid schema: %q is not a valid qualified class name", desc.Value)
		}
		if resolver == nil {
			logger.Debugw("schema class not found: no class resolver registered, tolerating", "class", desc.Value)
			return nil, nil
		}
		schema, ok := resolver.ResolveClass(desc.Value)
		if !ok {
			logger.Debugw("schema class not found, tolerating", "class", desc.Value)
			return nil, nil
		}
		return &schema, nil

	case core.SchemaCounter:
		return nil, nil

	default:
		return nil, core.NewInvalidLayoutError(core.ReasonInvalidSchema, "cell schema", "",
			"unrecognized schema type %q", desc.Type)
	}
}

// isValidSchemaLiteral accepts either a bare primitive type name or any
// syntactically valid JSON value (records, unions, arrays, and so on are
// all JSON in an Avro-like schema).
func isValidSchemaLiteral(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if _, ok := primitiveSchemas[trimmed]; ok {
		return true
	}
	return json.Valid([]byte(trimmed))
}

func validateStorage(s core.SchemaStorage) error {
	switch s {
	case core.StorageHash, core.StorageUID, core.StorageFinal:
		return nil
	default:
		return core.NewInvalidLayoutError(core.ReasonInvalidParameter, "cell schema", "",
			"unrecognized storage %q", s)
	}
}

// CellFormat returns the on-disk storage variant for a frozen cell
// schema. It is a thin accessor today (the storage enum is carried
// verbatim from the descriptor) but kept as its own function since the
// query surface calls it independently of Resolve.
func CellFormat(schema core.CellSchema) core.SchemaStorage {
	return schema.Storage
}
