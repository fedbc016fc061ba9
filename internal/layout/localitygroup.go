package layout

import (
	"sort"

	"kijilayout/internal/core"
)

// buildLocalityGroup runs the same reconciliation pattern as buildFamily,
// one level up, with two extra local checks (ttlSeconds/maxVersions
// positive). Family IDs are scoped to this locality group, not to the
// whole table.
func buildLocalityGroup(cfg *config, desc core.LocalityGroupDesc, priorLG *core.LocalityGroup) (*core.LocalityGroup, error) {
	if !cfg.names.IsValidName(desc.Name) {
		return nil, core.NewInvalidLayoutError(core.ReasonInvalidName, "locality group", desc.Name,
			"%q is not a valid name", desc.Name)
	}
	for _, n := range append([]string{desc.Name}, desc.Aliases...) {
		if !cfg.names.IsValidAlias(n) {
			return nil, core.NewInvalidLayoutError(core.ReasonInvalidAlias, "locality group", desc.Name,
				"%q is not a valid alias", n)
		}
	}
	if desc.TTLSeconds <= 0 {
		return nil, core.NewInvalidLayoutError(core.ReasonInvalidParameter, "locality group", desc.Name,
			"ttlSeconds must be positive, got %d", desc.TTLSeconds)
	}
	if desc.MaxVersions <= 0 {
		return nil, core.NewInvalidLayoutError(core.ReasonInvalidParameter, "locality group", desc.Name,
			"maxVersions must be positive, got %d", desc.MaxVersions)
	}

	id := 0
	if desc.ID > 0 {
		if priorLG != nil && desc.ID != priorLG.ID {
			return nil, core.NewInvalidLayoutError(core.ReasonIDMismatch, "locality group", desc.Name,
				"descriptor id %d does not match prior id %d", desc.ID, priorLG.ID)
		}
		id = desc.ID
	} else if priorLG != nil {
		id = priorLG.ID
	}

	lg := &core.LocalityGroup{
		PrimaryName: desc.Name,
		Aliases:     append([]string(nil), desc.Aliases...),
		Description: desc.Description,
		ID:          id,
		InMemory:    desc.InMemory,
		TTLSeconds:  desc.TTLSeconds,
		MaxVersions: desc.MaxVersions,
		Compression: desc.Compression,
	}

	families, nameToFamily, err := reconcileFamilies(cfg, desc.Name, desc.Families, priorLG)
	if err != nil {
		return nil, err
	}
	lg.Families = families
	for _, f := range families {
		core.SetLocalityGroupBackRef(f, lg)
	}
	core.SetFamilyIndex(lg, nameToFamily)
	return lg, nil
}

// reconcileFamilies mirrors reconcileColumns one level up: rename / delete
// / modify / add, with every prior family accounted for.
func reconcileFamilies(cfg *config, lgName string, descs []core.FamilyDesc, priorLG *core.LocalityGroup) ([]*core.Family, map[string]*core.Family, error) {
	priorByName := map[string]*core.Family{}
	if priorLG != nil {
		for _, pf := range priorLG.Families {
			priorByName[pf.PrimaryName] = pf
		}
	}

	var built []*core.Family
	nameToFamily := map[string]*core.Family{}
	idToName := map[int]string{}
	var unassignedIdx []int

	for _, f := range descs {
		lookupName := f.Name
		renamedFrom := f.RenamedFrom
		if renamedFrom != "" {
			lookupName = renamedFrom
		}
		f.RenamedFrom = ""

		var priorFamily *core.Family
		if renamedFrom != "" {
			pf, ok := priorByName[lookupName]
			if !ok {
				return nil, nil, core.NewInvalidLayoutError(core.ReasonInvalidRename, "family", f.Name,
					"Invalid renaming: no prior family named %q", lookupName)
			}
			priorFamily = pf
		} else if priorLG != nil {
			priorFamily = priorByName[lookupName]
		}

		delete(priorByName, lookupName)

		if f.Delete {
			if priorFamily == nil {
				return nil, nil, core.NewInvalidLayoutError(core.ReasonInvalidDelete, "family", f.Name,
					"delete requested but %q has no prior family", f.Name)
			}
			continue
		}

		built1, err := buildFamily(cfg, f, priorFamily)
		if err != nil {
			return nil, nil, err
		}

		for _, n := range built1.Names() {
			if _, dup := nameToFamily[n]; dup {
				return nil, nil, core.NewInvalidLayoutError(core.ReasonDuplicateName, "family", built1.PrimaryName,
					"duplicate family name or alias %q in locality group %q", n, lgName)
			}
		}
		for _, n := range built1.Names() {
			nameToFamily[n] = built1
		}

		if built1.ID > 0 {
			if existing, dup := idToName[built1.ID]; dup {
				return nil, nil, core.NewInvalidLayoutError(core.ReasonDuplicateID, "family", built1.PrimaryName,
					"duplicate family id %d shared with %q in locality group %q", built1.ID, existing, lgName)
			}
			idToName[built1.ID] = built1.PrimaryName
		} else {
			unassignedIdx = append(unassignedIdx, len(built))
		}
		built = append(built, built1)
	}

	if len(priorByName) > 0 {
		return nil, nil, core.NewInvalidLayoutError(core.ReasonOrphanPriorEntity, "locality group", lgName,
			"prior families not accounted for: %v", sortedFamilyKeys(priorByName))
	}

	used := map[int]struct{}{}
	for id := range idToName {
		used[id] = struct{}{}
	}
	core.AllocateIDs(used, len(unassignedIdx), func(i, id int) {
		built[unassignedIdx[i]].ID = id
	})

	return built, nameToFamily, nil
}

func sortedFamilyKeys(m map[string]*core.Family) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
