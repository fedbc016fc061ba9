// Package report summarizes what changed between a prior TableLayout and
// a freshly built one. Unlike a similarity-scored diff, every match here
// is an exact ID lookup: the builder has already bound renames via the
// descriptor's renamedFrom field, so a report only needs to replay the
// stable IDs it assigned.
package report

import (
	"sort"

	"kijilayout/internal/core"
)

// ColumnChange records one column-level event inside a family.
type ColumnChange struct {
	Family string
	Name   string
	OldID  int
	NewID  int
}

// FamilyChange records one family-level event inside a locality group.
type FamilyChange struct {
	LocalityGroup string
	Name          string
	OldID         int
	NewID         int
}

// LocalityGroupChange records one locality-group-level event.
type LocalityGroupChange struct {
	Name  string
	OldID int
	NewID int
}

// Report is the full set of additions, renames, and deletions between two
// layouts of the same table.
type Report struct {
	AddedLocalityGroups   []LocalityGroupChange
	RenamedLocalityGroups []LocalityGroupChange
	DeletedLocalityGroups []LocalityGroupChange

	AddedFamilies   []FamilyChange
	RenamedFamilies []FamilyChange
	DeletedFamilies []FamilyChange

	AddedColumns   []ColumnChange
	RenamedColumns []ColumnChange
	DeletedColumns []ColumnChange
}

// IsEmpty reports whether nothing changed at all.
func (r *Report) IsEmpty() bool {
	return len(r.AddedLocalityGroups) == 0 && len(r.RenamedLocalityGroups) == 0 && len(r.DeletedLocalityGroups) == 0 &&
		len(r.AddedFamilies) == 0 && len(r.RenamedFamilies) == 0 && len(r.DeletedFamilies) == 0 &&
		len(r.AddedColumns) == 0 && len(r.RenamedColumns) == 0 && len(r.DeletedColumns) == 0
}

// Compute diffs prior against next, both already-frozen TableLayouts
// produced by the same builder. prior may be nil, in which case every
// entity in next is reported as added.
func Compute(prior, next *core.TableLayout) *Report {
	r := &Report{}

	priorLGByID := map[int]*core.LocalityGroup{}
	if prior != nil {
		for _, lg := range prior.LocalityGroups {
			priorLGByID[lg.ID] = lg
		}
	}
	seenLG := map[int]struct{}{}

	for _, lg := range next.LocalityGroups {
		seenLG[lg.ID] = struct{}{}
		priorLG, ok := priorLGByID[lg.ID]
		switch {
		case !ok:
			r.AddedLocalityGroups = append(r.AddedLocalityGroups, LocalityGroupChange{Name: lg.PrimaryName, NewID: lg.ID})
		case priorLG.PrimaryName != lg.PrimaryName:
			r.RenamedLocalityGroups = append(r.RenamedLocalityGroups, LocalityGroupChange{
				Name: lg.PrimaryName, OldID: priorLG.ID, NewID: lg.ID,
			})
		}
		computeFamilies(r, priorLG, lg)
	}
	for id, lg := range priorLGByID {
		if _, ok := seenLG[id]; !ok {
			r.DeletedLocalityGroups = append(r.DeletedLocalityGroups, LocalityGroupChange{Name: lg.PrimaryName, OldID: lg.ID})
		}
	}

	r.sort()
	return r
}

func computeFamilies(r *Report, priorLG, nextLG *core.LocalityGroup) {
	priorFamByID := map[int]*core.Family{}
	if priorLG != nil {
		for _, f := range priorLG.Families {
			priorFamByID[f.ID] = f
		}
	}
	seenFam := map[int]struct{}{}

	for _, f := range nextLG.Families {
		seenFam[f.ID] = struct{}{}
		priorFam, ok := priorFamByID[f.ID]
		switch {
		case !ok:
			r.AddedFamilies = append(r.AddedFamilies, FamilyChange{LocalityGroup: nextLG.PrimaryName, Name: f.PrimaryName, NewID: f.ID})
		case priorFam.PrimaryName != f.PrimaryName:
			r.RenamedFamilies = append(r.RenamedFamilies, FamilyChange{
				LocalityGroup: nextLG.PrimaryName, Name: f.PrimaryName, OldID: priorFam.ID, NewID: f.ID,
			})
		}
		computeColumns(r, priorFam, f)
	}
	for id, f := range priorFamByID {
		if _, ok := seenFam[id]; !ok {
			r.DeletedFamilies = append(r.DeletedFamilies, FamilyChange{LocalityGroup: nextLG.PrimaryName, Name: f.PrimaryName, OldID: f.ID})
		}
	}
}

func computeColumns(r *Report, priorFam, nextFam *core.Family) {
	if nextFam.Kind != core.FamilyGroup {
		return
	}
	priorColByID := map[int]*core.Column{}
	if priorFam != nil {
		for _, c := range priorFam.Columns {
			priorColByID[c.ID] = c
		}
	}
	seenCol := map[int]struct{}{}

	for _, c := range nextFam.Columns {
		seenCol[c.ID] = struct{}{}
		priorCol, ok := priorColByID[c.ID]
		switch {
		case !ok:
			r.AddedColumns = append(r.AddedColumns, ColumnChange{Family: nextFam.PrimaryName, Name: c.PrimaryName, NewID: c.ID})
		case priorCol.PrimaryName != c.PrimaryName:
			r.RenamedColumns = append(r.RenamedColumns, ColumnChange{
				Family: nextFam.PrimaryName, Name: c.PrimaryName, OldID: priorCol.ID, NewID: c.ID,
			})
		}
	}
	for id, c := range priorColByID {
		if _, ok := seenCol[id]; !ok {
			r.DeletedColumns = append(r.DeletedColumns, ColumnChange{Family: nextFam.PrimaryName, Name: c.PrimaryName, OldID: c.ID})
		}
	}
}

func (r *Report) sort() {
	sort.Slice(r.AddedLocalityGroups, func(i, j int) bool { return r.AddedLocalityGroups[i].Name < r.AddedLocalityGroups[j].Name })
	sort.Slice(r.RenamedLocalityGroups, func(i, j int) bool { return r.RenamedLocalityGroups[i].Name < r.RenamedLocalityGroups[j].Name })
	sort.Slice(r.DeletedLocalityGroups, func(i, j int) bool { return r.DeletedLocalityGroups[i].Name < r.DeletedLocalityGroups[j].Name })
	sort.Slice(r.AddedFamilies, func(i, j int) bool { return r.AddedFamilies[i].Name < r.AddedFamilies[j].Name })
	sort.Slice(r.RenamedFamilies, func(i, j int) bool { return r.RenamedFamilies[i].Name < r.RenamedFamilies[j].Name })
	sort.Slice(r.DeletedFamilies, func(i, j int) bool { return r.DeletedFamilies[i].Name < r.DeletedFamilies[j].Name })
	sort.Slice(r.AddedColumns, func(i, j int) bool { return r.AddedColumns[i].Name < r.AddedColumns[j].Name })
	sort.Slice(r.RenamedColumns, func(i, j int) bool { return r.RenamedColumns[i].Name < r.RenamedColumns[j].Name })
	sort.Slice(r.DeletedColumns, func(i, j int) bool { return r.DeletedColumns[i].Name < r.DeletedColumns[j].Name })
}
