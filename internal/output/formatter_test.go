package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kijilayout/internal/core"
	"kijilayout/internal/layout"
	"kijilayout/internal/report"
)

func sampleLayout(t *testing.T) *core.TableLayout {
	t.Helper()
	d := &core.Descriptor{
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
	tl, err := layout.Build(d, nil)
	require.NoError(t, err)
	return tl
}

func TestNewFormatterUnknown(t *testing.T) {
	_, err := NewFormatter("xml")
	require.Error(t, err)
}

func TestHumanFormatLayout(t *testing.T) {
	f, err := NewFormatter("human")
	require.NoError(t, err)
	out, err := f.FormatLayout(sampleLayout(t))
	require.NoError(t, err)
	assert.Contains(t, out, "table users")
	assert.Contains(t, out, "column name")
}

func TestJSONFormatLayout(t *testing.T) {
	f, err := NewFormatter("json")
	require.NoError(t, err)
	out, err := f.FormatLayout(sampleLayout(t))
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "users"`)
}

func TestSummaryFormatReportEmpty(t *testing.T) {
	f, err := NewFormatter("summary")
	require.NoError(t, err)
	out, err := f.FormatReport(&report.Report{})
	require.NoError(t, err)
	assert.Equal(t, "No changes detected.\n", out)
}

func TestSummaryFormatReportWithChanges(t *testing.T) {
	f, err := NewFormatter("summary")
	require.NoError(t, err)
	out, err := f.FormatReport(&report.Report{
		AddedColumns: []report.ColumnChange{{Family: "info", Name: "email", NewID: 2}},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Columns:         +1, ~0, -0")
}
