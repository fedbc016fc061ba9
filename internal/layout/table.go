package layout

import (
	"sort"
	"strconv"

	"kijilayout/internal/core"
)

// Build is the top-level table builder. prior is nil for a from-scratch
// creation.
func Build(desc *core.Descriptor, prior *core.TableLayout, opts ...Option) (*core.TableLayout, error) {
	cfg := newConfig(opts)
	working := desc.Clone()

	if !cfg.names.IsValidName(working.Name) {
		return nil, core.NewInvalidLayoutError(core.ReasonInvalidName, "table", working.Name,
			"%q is not a valid table name", working.Name)
	}

	if prior != nil {
		if working.Name != prior.Name {
			return nil, core.NewInvalidLayoutError(core.ReasonForbiddenMutation, "table", working.Name,
				"table name cannot change from %q to %q", prior.Name, working.Name)
		}
		if working.KeysFormat != prior.KeysFormat {
			return nil, core.NewInvalidLayoutError(core.ReasonForbiddenMutation, "table", working.Name,
				"keysFormat cannot change from %s to %s", prior.KeysFormat, working.KeysFormat)
		}
	}

	layoutID, err := nextLayoutID(working.LayoutID, prior)
	if err != nil {
		return nil, err
	}

	table := &core.TableLayout{
		Name:        working.Name,
		Description: working.Description,
		KeysFormat:  working.KeysFormat,
		LayoutID:    layoutID,
	}

	localityGroups, lgByName, err := reconcileLocalityGroups(cfg, working.LocalityGroups, prior)
	if err != nil {
		return nil, err
	}
	table.LocalityGroups = localityGroups

	familyByName := map[string]*core.Family{}
	columnNames := map[core.KijiColumnName]struct{}{}
	for _, lg := range localityGroups {
		for _, f := range lg.Families {
			for _, n := range f.Names() {
				if _, dup := familyByName[n]; dup {
					return nil, core.NewInvalidLayoutError(core.ReasonDuplicateName, "family", f.PrimaryName,
						"duplicate family name or alias %q across the table", n)
				}
			}
			for _, n := range f.Names() {
				familyByName[n] = f
			}
			switch f.Kind {
			case core.FamilyMap:
				columnNames[core.KijiColumnName{Family: f.PrimaryName, Qualifier: nil}] = struct{}{}
			case core.FamilyGroup:
				for _, col := range f.Columns {
					q := col.PrimaryName
					columnNames[core.KijiColumnName{Family: f.PrimaryName, Qualifier: &q}] = struct{}{}
				}
			}
		}
	}

	localityGroupIDName := map[int]string{}
	for _, lg := range localityGroups {
		if lg.ID > 0 {
			if existing, dup := localityGroupIDName[lg.ID]; dup {
				return nil, core.NewInvalidLayoutError(core.ReasonDuplicateID, "locality group", lg.PrimaryName,
					"duplicate locality group id %d shared with %q", lg.ID, existing)
			}
			localityGroupIDName[lg.ID] = lg.PrimaryName
		}
	}

	table.Freeze(lgByName, familyByName, localityGroupIDName, columnNames)
	return table, nil
}

// nextLayoutID picks the new layout id: an explicit value wins outright,
// otherwise it is the prior numeric layout id plus one, or "1" with no
// prior layout at all.
func nextLayoutID(explicit string, prior *core.TableLayout) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if prior == nil {
		return "1", nil
	}
	n, err := strconv.Atoi(prior.LayoutID)
	if err != nil {
		return "", core.NewInvalidLayoutError(core.ReasonInvalidLayoutID, "table", "",
			"prior layoutId %q is not numeric and no explicit layoutId was supplied", prior.LayoutID)
	}
	return strconv.Itoa(n + 1), nil
}

// reconcileLocalityGroups mirrors reconcileFamilies one level up.
func reconcileLocalityGroups(cfg *config, descs []core.LocalityGroupDesc, prior *core.TableLayout) ([]*core.LocalityGroup, map[string]*core.LocalityGroup, error) {
	priorByName := map[string]*core.LocalityGroup{}
	if prior != nil {
		for _, plg := range prior.LocalityGroups {
			priorByName[plg.PrimaryName] = plg
		}
	}

	var built []*core.LocalityGroup
	nameToLG := map[string]*core.LocalityGroup{}
	idToName := map[int]string{}
	var unassignedIdx []int

	for _, lg := range descs {
		lookupName := lg.Name
		renamedFrom := lg.RenamedFrom
		if renamedFrom != "" {
			lookupName = renamedFrom
		}
		lg.RenamedFrom = ""

		var priorLG *core.LocalityGroup
		if renamedFrom != "" {
			plg, ok := priorByName[lookupName]
			if !ok {
				return nil, nil, core.NewInvalidLayoutError(core.ReasonInvalidRename, "locality group", lg.Name,
					"Invalid renaming: no prior locality group named %q", lookupName)
			}
			priorLG = plg
		} else if prior != nil {
			priorLG = priorByName[lookupName]
		}

		delete(priorByName, lookupName)

		if lg.Delete {
			if priorLG == nil {
				return nil, nil, core.NewInvalidLayoutError(core.ReasonInvalidDelete, "locality group", lg.Name,
					"delete requested but %q has no prior locality group", lg.Name)
			}
			continue
		}

		built1, err := buildLocalityGroup(cfg, lg, priorLG)
		if err != nil {
			return nil, nil, err
		}

		for _, n := range built1.Names() {
			if _, dup := nameToLG[n]; dup {
				return nil, nil, core.NewInvalidLayoutError(core.ReasonDuplicateName, "locality group", built1.PrimaryName,
					"duplicate locality group name or alias %q", n)
			}
		}
		for _, n := range built1.Names() {
			nameToLG[n] = built1
		}

		if built1.ID > 0 {
			if existing, dup := idToName[built1.ID]; dup {
				return nil, nil, core.NewInvalidLayoutError(core.ReasonDuplicateID, "locality group", built1.PrimaryName,
					"duplicate locality group id %d shared with %q", built1.ID, existing)
			}
			idToName[built1.ID] = built1.PrimaryName
		} else {
			unassignedIdx = append(unassignedIdx, len(built))
		}
		built = append(built, built1)
	}

	if len(priorByName) > 0 {
		return nil, nil, core.NewInvalidLayoutError(core.ReasonOrphanPriorEntity, "table", "",
			"prior locality groups not accounted for: %v", sortedLGKeys(priorByName))
	}

	used := map[int]struct{}{}
	for id := range idToName {
		used[id] = struct{}{}
	}
	core.AllocateIDs(used, len(unassignedIdx), func(i, id int) {
		built[unassignedIdx[i]].ID = id
	})

	return built, nameToLG, nil
}

func sortedLGKeys(m map[string]*core.LocalityGroup) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
