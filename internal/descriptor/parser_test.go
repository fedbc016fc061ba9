package descriptor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonDoc = `{
  "name": "users",
  "keysFormat": "HASHED",
  "localityGroups": [
    {
      "name": "default",
      "ttlSeconds": 86400,
      "maxVersions": 1,
      "compression": "NONE",
      "families": [
        {
          "name": "info",
          "columns": [
            {"name": "fullName", "columnSchema": {"type": "INLINE", "value": "string", "storage": "HASH"}}
          ]
        }
      ]
    }
  ]
}`

const tomlDoc = `
name = "users"
keys_format = "HASHED"

[[locality_groups]]
name = "default"
ttl_seconds = 86400
max_versions = 1
compression = "NONE"

  [[locality_groups.families]]
  name = "info"

    [[locality_groups.families.columns]]
    name = "fullName"

      [locality_groups.families.columns.column_schema]
      type = "INLINE"
      value = "string"
      storage = "HASH"
`

func TestParseJSON(t *testing.T) {
	d, err := NewJSONParser().Parse(strings.NewReader(jsonDoc))
	require.NoError(t, err)
	assert.Equal(t, "users", d.Name)
	require.Len(t, d.LocalityGroups, 1)
	assert.Equal(t, "info", d.LocalityGroups[0].Families[0].Name)
}

func TestParseTOML(t *testing.T) {
	d, err := NewTOMLParser().Parse(strings.NewReader(tomlDoc))
	require.NoError(t, err)
	assert.Equal(t, "users", d.Name)
	require.Len(t, d.LocalityGroups, 1)
	assert.Equal(t, "fullName", d.LocalityGroups[0].Families[0].Columns[0].Name)
}

func TestParseFileUnsupportedExtension(t *testing.T) {
	_, err := ParseFile("layout.yaml")
	require.Error(t, err)
	var ufe *UnsupportedFormatError
	require.ErrorAs(t, err, &ufe)
}
