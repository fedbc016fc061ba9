package layout

import (
	"kijilayout/internal/cellschema"
	"kijilayout/internal/core"
)

// GetCellSchema looks up the cell schema for name: if the named family is
// MAP, its value schema applies regardless of qualifier; if GROUP, a
// qualifier is required and must name a known column.
func GetCellSchema(t *core.TableLayout, name core.KijiColumnName) (core.CellSchema, error) {
	family := t.Family(name.Family)
	if family == nil {
		return core.CellSchema{}, &core.NoSuchColumnError{Column: name}
	}
	if family.Kind == core.FamilyMap {
		return family.MapSchema, nil
	}
	if name.Qualifier == nil {
		return core.CellSchema{}, core.NewInvalidLayoutError(core.ReasonInvalidParameter, "column", name.Family,
			"a qualifier is required to look up a column in GROUP family %q", name.Family)
	}
	col := family.Column(*name.Qualifier)
	if col == nil {
		return core.CellSchema{}, &core.NoSuchColumnError{Column: name}
	}
	return col.Schema, nil
}

// GetSchema resolves the cell schema named by name, reusing the same
// class-resolution path construction did.
func GetSchema(t *core.TableLayout, name core.KijiColumnName, opts ...Option) (*core.ResolvedSchema, error) {
	cfg := newConfig(opts)
	schema, err := GetCellSchema(t, name)
	if err != nil {
		return nil, err
	}
	return cellschema.Resolve(core.CellSchemaDesc{
		Type:    schema.Type,
		Value:   schema.Value,
		Storage: schema.Storage,
	}, cfg.classes, cfg.logger)
}

// GetCellFormat returns the on-disk storage variant for the column named
// by name.
func GetCellFormat(t *core.TableLayout, name core.KijiColumnName) (core.SchemaStorage, error) {
	schema, err := GetCellSchema(t, name)
	if err != nil {
		return "", err
	}
	return cellschema.CellFormat(schema), nil
}

// Exists reports whether name resolves to a column: unknown family is
// false; a MAP family admits any qualifier; a GROUP family requires the
// qualifier (if any) to name a known column.
func Exists(t *core.TableLayout, name core.KijiColumnName) bool {
	family := t.Family(name.Family)
	if family == nil {
		return false
	}
	if family.Kind == core.FamilyMap {
		return true
	}
	if name.Qualifier == nil {
		return true
	}
	return family.Column(*name.Qualifier) != nil
}
