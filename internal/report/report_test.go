package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kijilayout/internal/core"
	"kijilayout/internal/layout"
)

func build(t *testing.T, d *core.Descriptor, prior *core.TableLayout) *core.TableLayout {
	t.Helper()
	table, err := layout.Build(d, prior)
	require.NoError(t, err)
	return table
}

func baseDescriptor() *core.Descriptor {
	return &core.Descriptor{
		Name:       "users",
		KeysFormat: core.KeyEncodingHashed,
		LocalityGroups: []core.LocalityGroupDesc{
			{
				Name: "default", TTLSeconds: 3600, MaxVersions: 1, Compression: core.CompressionNone,
				Families: []core.FamilyDesc{
					{
						Name: "info",
						Columns: []core.ColumnDesc{
							{Name: "name", ColumnSchema: core.CellSchemaDesc{Type: core.SchemaCounter, Storage: core.StorageFinal}},
						},
					},
				},
			},
		},
	}
}

func TestComputeFromScratchReportsAdditions(t *testing.T) {
	table := build(t, baseDescriptor(), nil)
	r := Compute(nil, table)
	assert.Len(t, r.AddedLocalityGroups, 1)
	assert.Len(t, r.AddedFamilies, 1)
	assert.Len(t, r.AddedColumns, 1)
	assert.False(t, r.IsEmpty())
}

func TestComputeDetectsRename(t *testing.T) {
	prior := build(t, baseDescriptor(), nil)

	next := baseDescriptor()
	next.LocalityGroups[0].Families[0].Columns[0].Name = "full_name"
	next.LocalityGroups[0].Families[0].Columns[0].RenamedFrom = "name"

	table := build(t, next, prior)
	r := Compute(prior, table)
	require.Len(t, r.RenamedColumns, 1)
	assert.Equal(t, "full_name", r.RenamedColumns[0].Name)
	assert.Equal(t, r.RenamedColumns[0].OldID, r.RenamedColumns[0].NewID)
	assert.Empty(t, r.AddedColumns)
	assert.Empty(t, r.DeletedColumns)
}

func TestComputeDetectsDeletion(t *testing.T) {
	prior := build(t, baseDescriptor(), nil)

	next := baseDescriptor()
	next.LocalityGroups[0].Families[0].Columns[0].Delete = true

	table := build(t, next, prior)
	r := Compute(prior, table)
	require.Len(t, r.DeletedColumns, 1)
	assert.Equal(t, "name", r.DeletedColumns[0].Name)
}

func TestComputeNoChangesIsEmpty(t *testing.T) {
	prior := build(t, baseDescriptor(), nil)
	next := baseDescriptor()
	table := build(t, next, prior)
	r := Compute(prior, table)
	assert.True(t, r.IsEmpty())
}
