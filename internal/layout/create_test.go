package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFromEffectiveJSON(t *testing.T) {
	const doc = `{
		"name": "widgets",
		"keysFormat": "RAW",
		"localityGroups": [
			{
				"name": "default", "ttlSeconds": 100, "maxVersions": 1, "compression": "NONE",
				"families": [
					{"name": "info", "columns": [
						{"name": "sku", "columnSchema": {"type": "COUNTER", "storage": "FINAL"}}
					]}
				]
			}
		]
	}`
	table, err := CreateFromEffectiveJSON(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "widgets", table.Name)
}

func TestCreateFromEffectiveJSONResource(t *testing.T) {
	table, err := CreateFromEffectiveJSONResource("wide_column_example")
	require.NoError(t, err)
	assert.Equal(t, "wide_column_example", table.Name)
	assert.NotNil(t, table.Family("tags"))

	_, err = CreateFromEffectiveJSONResource("does_not_exist")
	require.Error(t, err)
}
