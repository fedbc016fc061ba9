package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kijilayout/internal/core"
)

func TestBuildColumnRejectsInvalidName(t *testing.T) {
	cfg := newConfig(nil)
	_, err := buildColumn(cfg, core.ColumnDesc{
		Name:         "1bad",
		ColumnSchema: core.CellSchemaDesc{Type: core.SchemaCounter, Storage: core.StorageFinal},
	}, nil)
	require.Error(t, err)
	var ile *core.InvalidLayoutError
	require.ErrorAs(t, err, &ile)
	assert.Equal(t, core.ReasonInvalidName, ile.Reason)
}

func TestBuildColumnRejectsIDMismatchAgainstPrior(t *testing.T) {
	cfg := newConfig(nil)
	prior := &core.Column{PrimaryName: "name", ID: 5}
	_, err := buildColumn(cfg, core.ColumnDesc{
		Name:         "name",
		ID:           9,
		ColumnSchema: core.CellSchemaDesc{Type: core.SchemaCounter, Storage: core.StorageFinal},
	}, prior)
	require.Error(t, err)
	var ile *core.InvalidLayoutError
	require.ErrorAs(t, err, &ile)
	assert.Equal(t, core.ReasonIDMismatch, ile.Reason)
}

func TestBuildColumnAdoptsPriorIDWhenUnset(t *testing.T) {
	cfg := newConfig(nil)
	prior := &core.Column{
		PrimaryName: "name",
		ID:          5,
		Schema:      core.CellSchema{Type: core.SchemaCounter, Storage: core.StorageFinal},
	}
	col, err := buildColumn(cfg, core.ColumnDesc{
		Name:         "name",
		ColumnSchema: core.CellSchemaDesc{Type: core.SchemaCounter, Storage: core.StorageFinal},
	}, prior)
	require.NoError(t, err)
	assert.Equal(t, 5, col.ID)
}

func TestBuildColumnRejectsStorageChange(t *testing.T) {
	cfg := newConfig(nil)
	prior := &core.Column{
		PrimaryName: "name",
		ID:          5,
		Schema:      core.CellSchema{Type: core.SchemaInline, Value: "string", Storage: core.StorageHash},
	}
	_, err := buildColumn(cfg, core.ColumnDesc{
		Name:         "name",
		ColumnSchema: core.CellSchemaDesc{Type: core.SchemaInline, Value: "string", Storage: core.StorageUID},
	}, prior)
	require.Error(t, err)
	var ile *core.InvalidLayoutError
	require.ErrorAs(t, err, &ile)
	assert.Equal(t, core.ReasonForbiddenMutation, ile.Reason)
}

func TestBuildColumnPropagatesSchemaError(t *testing.T) {
	cfg := newConfig(nil)
	_, err := buildColumn(cfg, core.ColumnDesc{
		Name:         "name",
		ColumnSchema: core.CellSchemaDesc{Type: core.SchemaInline, Value: "not valid {{{", Storage: core.StorageHash},
	}, nil)
	require.Error(t, err)
	var ile *core.InvalidLayoutError
	require.ErrorAs(t, err, &ile)
	assert.Equal(t, core.ReasonInvalidSchema, ile.Reason)
}
