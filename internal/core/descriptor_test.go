package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptorCloneIsolation(t *testing.T) {
	d := &Descriptor{
		Name:       "t",
		KeysFormat: KeyEncodingRaw,
		LocalityGroups: []LocalityGroupDesc{
			{
				Name: "lg",
				Families: []FamilyDesc{
					{
						Name: "f",
						Columns: []ColumnDesc{
							{Name: "c", RenamedFrom: "old", Aliases: []string{"alias1"}},
						},
					},
				},
			},
		},
	}

	clone := d.Clone()
	require.NotSame(t, d, clone)

	// Mutating the clone must never reach back into the original.
	clone.LocalityGroups[0].Families[0].Columns[0].RenamedFrom = ""
	clone.LocalityGroups[0].Families[0].Columns[0].Aliases[0] = "mutated"

	assert.Equal(t, "old", d.LocalityGroups[0].Families[0].Columns[0].RenamedFrom)
	assert.Equal(t, "alias1", d.LocalityGroups[0].Families[0].Columns[0].Aliases[0])
}

func TestDescriptorCloneNil(t *testing.T) {
	var d *Descriptor
	assert.Nil(t, d.Clone())
}
