package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleLayout(layoutID string) *TableLayout {
	col := &Column{PrimaryName: "name", ID: 1, Schema: CellSchema{Type: SchemaInline, Value: "string", Storage: StorageHash}}
	family := &Family{PrimaryName: "info", ID: 1, Kind: FamilyGroup, Columns: []*Column{col}}
	SetFamilyBackRef(col, family)
	SetColumnIndex(family, map[string]*Column{"name": col})
	lg := &LocalityGroup{PrimaryName: "default", ID: 1, MaxVersions: 1, Families: []*Family{family}}
	SetLocalityGroupBackRef(family, lg)
	SetFamilyIndex(lg, map[string]*Family{"info": family})

	table := &TableLayout{Name: "users", KeysFormat: KeyEncodingHashed, LayoutID: layoutID, LocalityGroups: []*LocalityGroup{lg}}
	table.Freeze(
		map[string]*LocalityGroup{"default": lg},
		map[string]*Family{"info": family},
		map[int]string{1: "default"},
		map[KijiColumnName]struct{}{{Family: "info", Qualifier: strPtr("name")}: {}},
	)
	return table
}

func strPtr(s string) *string { return &s }

func TestTableLayoutEqualIgnoresDerivedIndices(t *testing.T) {
	a := sampleLayout("1")
	b := sampleLayout("1")
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.String(), b.String())
}

func TestTableLayoutEqualDetectsDifference(t *testing.T) {
	a := sampleLayout("1")
	b := sampleLayout("2")
	assert.False(t, a.Equal(b))
}

func TestTableLayoutEqualNil(t *testing.T) {
	var a, b *TableLayout
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(sampleLayout("1")))
}
