package layout

import (
	"kijilayout/internal/cellschema"
	"kijilayout/internal/core"
)

// buildColumn builds one column layout, reconciling it against
// priorColumn (nil for a from-scratch creation). desc is the caller's
// working copy; it must already be the family builder's clone.
func buildColumn(cfg *config, desc core.ColumnDesc, priorColumn *core.Column) (*core.Column, error) {
	if !cfg.names.IsValidName(desc.Name) {
		return nil, core.NewInvalidLayoutError(core.ReasonInvalidName, "column", desc.Name,
			"%q is not a valid name", desc.Name)
	}
	for _, n := range append([]string{desc.Name}, desc.Aliases...) {
		if !cfg.names.IsValidAlias(n) {
			return nil, core.NewInvalidLayoutError(core.ReasonInvalidAlias, "column", desc.Name,
				"%q is not a valid alias", n)
		}
	}

	id := 0
	if desc.ID > 0 {
		if priorColumn != nil && desc.ID != priorColumn.ID {
			return nil, core.NewInvalidLayoutError(core.ReasonIDMismatch, "column", desc.Name,
				"descriptor id %d does not match prior id %d", desc.ID, priorColumn.ID)
		}
		id = desc.ID
	} else if priorColumn != nil {
		id = priorColumn.ID
	}

	if priorColumn != nil && desc.ColumnSchema.Storage != priorColumn.Schema.Storage {
		return nil, core.NewInvalidLayoutError(core.ReasonForbiddenMutation, "column", desc.Name,
			"storage cannot change from %s to %s", priorColumn.Schema.Storage, desc.ColumnSchema.Storage)
	}

	resolved, err := cellschema.Resolve(desc.ColumnSchema, cfg.classes, cfg.logger)
	if err != nil {
		return nil, err
	}
	_ = resolved // consulted again by the query surface; here only for validation

	return &core.Column{
		PrimaryName: desc.Name,
		Aliases:     append([]string(nil), desc.Aliases...),
		Description: desc.Description,
		ID:          id,
		Schema: core.CellSchema{
			Type:    desc.ColumnSchema.Type,
			Value:   desc.ColumnSchema.Value,
			Storage: desc.ColumnSchema.Storage,
		},
	}, nil
}
