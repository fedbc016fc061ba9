package layout

import (
	"sort"

	"kijilayout/internal/cellschema"
	"kijilayout/internal/core"
)

// buildFamily builds one family, reconciling its children (columns)
// against priorFamily (nil for a from-scratch creation).
func buildFamily(cfg *config, desc core.FamilyDesc, priorFamily *core.Family) (*core.Family, error) {
	if len(desc.Columns) > 0 && desc.MapSchema != nil {
		return nil, core.NewInvalidLayoutError(core.ReasonInvalidParameter, "family", desc.Name,
			"a family cannot declare both columns and a map schema")
	}

	if !cfg.names.IsValidName(desc.Name) {
		return nil, core.NewInvalidLayoutError(core.ReasonInvalidName, "family", desc.Name,
			"%q is not a valid name", desc.Name)
	}
	for _, n := range append([]string{desc.Name}, desc.Aliases...) {
		if !cfg.names.IsValidAlias(n) {
			return nil, core.NewInvalidLayoutError(core.ReasonInvalidAlias, "family", desc.Name,
				"%q is not a valid alias", n)
		}
	}

	id := 0
	if desc.ID > 0 {
		if priorFamily != nil && desc.ID != priorFamily.ID {
			return nil, core.NewInvalidLayoutError(core.ReasonIDMismatch, "family", desc.Name,
				"descriptor id %d does not match prior id %d", desc.ID, priorFamily.ID)
		}
		id = desc.ID
	} else if priorFamily != nil {
		id = priorFamily.ID
	}

	isMap := desc.MapSchema != nil
	if priorFamily != nil {
		priorIsMap := priorFamily.Kind == core.FamilyMap
		if isMap != priorIsMap {
			return nil, core.NewInvalidLayoutError(core.ReasonForbiddenMutation, "family", desc.Name,
				"family kind cannot change from %s to %s", priorFamily.Kind, familyKindOf(isMap))
		}
	}

	family := &core.Family{
		PrimaryName: desc.Name,
		Aliases:     append([]string(nil), desc.Aliases...),
		Description: desc.Description,
		ID:          id,
	}

	if isMap {
		family.Kind = core.FamilyMap
		if priorFamily != nil && priorFamily.Kind == core.FamilyMap &&
			desc.MapSchema.Storage != priorFamily.MapSchema.Storage {
			return nil, core.NewInvalidLayoutError(core.ReasonForbiddenMutation, "family", desc.Name,
				"storage cannot change from %s to %s", priorFamily.MapSchema.Storage, desc.MapSchema.Storage)
		}
		resolved, err := cellschema.Resolve(*desc.MapSchema, cfg.classes, cfg.logger)
		if err != nil {
			return nil, err
		}
		_ = resolved
		family.MapSchema = core.CellSchema{
			Type:    desc.MapSchema.Type,
			Value:   desc.MapSchema.Value,
			Storage: desc.MapSchema.Storage,
		}
		return family, nil
	}

	family.Kind = core.FamilyGroup
	columns, nameToColumn, err := reconcileColumns(cfg, desc.Name, desc.Columns, priorFamily)
	if err != nil {
		return nil, err
	}
	family.Columns = columns
	for _, col := range columns {
		core.SetFamilyBackRef(col, family)
	}
	core.SetColumnIndex(family, nameToColumn)
	return family, nil
}

func familyKindOf(isMap bool) core.FamilyKind {
	if isMap {
		return core.FamilyMap
	}
	return core.FamilyGroup
}

// reconcileColumns runs the child-reconciliation algorithm at the column
// level: rename / delete / modify / add, with every prior column
// accounted for.
func reconcileColumns(cfg *config, familyName string, descs []core.ColumnDesc, priorFamily *core.Family) ([]*core.Column, map[string]*core.Column, error) {
	priorByName := map[string]*core.Column{}
	if priorFamily != nil {
		for _, pc := range priorFamily.Columns {
			priorByName[pc.PrimaryName] = pc
		}
	}

	var built []*core.Column
	nameToColumn := map[string]*core.Column{}
	idToName := map[int]string{}
	var unassignedIdx []int

	for _, c := range descs {
		lookupName := c.Name
		renamedFrom := c.RenamedFrom
		if renamedFrom != "" {
			lookupName = renamedFrom
		}
		c.RenamedFrom = ""

		var priorColumn *core.Column
		if renamedFrom != "" {
			pc, ok := priorByName[lookupName]
			if !ok {
				return nil, nil, core.NewInvalidLayoutError(core.ReasonInvalidRename, "column", c.Name,
					"Invalid renaming: no prior column named %q", lookupName)
			}
			priorColumn = pc
		} else if priorFamily != nil {
			priorColumn = priorByName[lookupName]
		}

		delete(priorByName, lookupName)

		if c.Delete {
			if priorColumn == nil {
				return nil, nil, core.NewInvalidLayoutError(core.ReasonInvalidDelete, "column", c.Name,
					"delete requested but %q has no prior column", c.Name)
			}
			continue
		}

		built1, err := buildColumn(cfg, c, priorColumn)
		if err != nil {
			return nil, nil, err
		}

		for _, n := range built1.Names() {
			if _, dup := nameToColumn[n]; dup {
				return nil, nil, core.NewInvalidLayoutError(core.ReasonDuplicateName, "column", built1.PrimaryName,
					"duplicate column name or alias %q in family %q", n, familyName)
			}
		}
		for _, n := range built1.Names() {
			nameToColumn[n] = built1
		}

		if built1.ID > 0 {
			if existing, dup := idToName[built1.ID]; dup {
				return nil, nil, core.NewInvalidLayoutError(core.ReasonDuplicateID, "column", built1.PrimaryName,
					"duplicate column id %d shared with %q in family %q", built1.ID, existing, familyName)
			}
			idToName[built1.ID] = built1.PrimaryName
		} else {
			unassignedIdx = append(unassignedIdx, len(built))
		}
		built = append(built, built1)
	}

	if len(priorByName) > 0 {
		return nil, nil, core.NewInvalidLayoutError(core.ReasonOrphanPriorEntity, "family", familyName,
			"prior columns not accounted for: %v", sortedKeys(priorByName))
	}

	used := map[int]struct{}{}
	for id := range idToName {
		used[id] = struct{}{}
	}
	core.AllocateIDs(used, len(unassignedIdx), func(i, id int) {
		built[unassignedIdx[i]].ID = id
	})

	return built, nameToColumn, nil
}

func sortedKeys(m map[string]*core.Column) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
