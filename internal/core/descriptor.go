// Package core contains the data model for the table-layout compiler: the
// mutable, wire-shaped Descriptor the caller supplies, and the frozen
// TableLayout the builder produces from it.
package core

// KeyEncoding selects how a logical row key maps to the underlying
// row-store key.
type KeyEncoding string

const (
	KeyEncodingRaw          KeyEncoding = "RAW"
	KeyEncodingHashed       KeyEncoding = "HASHED"
	KeyEncodingHashPrefixed KeyEncoding = "HASH_PREFIXED"
)

// Compression names a locality group's block compression codec.
type Compression string

const (
	CompressionNone   Compression = "NONE"
	CompressionGzip   Compression = "GZIP"
	CompressionLZ4    Compression = "LZ4"
	CompressionSnappy Compression = "SNAPPY"
)

// SchemaType selects how a CellSchemaDesc's Value field is interpreted.
type SchemaType string

const (
	SchemaInline  SchemaType = "INLINE"
	SchemaClass   SchemaType = "CLASS"
	SchemaCounter SchemaType = "COUNTER"
)

// SchemaStorage controls how a decoded cell value is prefixed on disk.
type SchemaStorage string

const (
	StorageHash  SchemaStorage = "HASH"
	StorageUID   SchemaStorage = "UID"
	StorageFinal SchemaStorage = "FINAL"
)

// CellSchemaDesc is the wire shape of a column or map-family value schema.
type CellSchemaDesc struct {
	Type    SchemaType    `json:"type" toml:"type"`
	Value   string        `json:"value,omitempty" toml:"value,omitempty"`
	Storage SchemaStorage `json:"storage" toml:"storage"`
}

// ColumnDesc is the wire shape of one column inside a GROUP family.
type ColumnDesc struct {
	Name         string         `json:"name" toml:"name"`
	Aliases      []string       `json:"aliases,omitempty" toml:"aliases,omitempty"`
	Description  string         `json:"description,omitempty" toml:"description,omitempty"`
	ID           int            `json:"id,omitempty" toml:"id,omitempty"`
	RenamedFrom  string         `json:"renamedFrom,omitempty" toml:"renamed_from,omitempty"`
	Delete       bool           `json:"delete,omitempty" toml:"delete,omitempty"`
	ColumnSchema CellSchemaDesc `json:"columnSchema" toml:"column_schema"`
}

// FamilyDesc is the wire shape of one column family. Exactly one of
// Columns (a GROUP family) or MapSchema (a MAP family) must be set.
type FamilyDesc struct {
	Name        string          `json:"name" toml:"name"`
	Aliases     []string        `json:"aliases,omitempty" toml:"aliases,omitempty"`
	Description string          `json:"description,omitempty" toml:"description,omitempty"`
	ID          int             `json:"id,omitempty" toml:"id,omitempty"`
	RenamedFrom string          `json:"renamedFrom,omitempty" toml:"renamed_from,omitempty"`
	Delete      bool            `json:"delete,omitempty" toml:"delete,omitempty"`
	Columns     []ColumnDesc    `json:"columns,omitempty" toml:"columns,omitempty"`
	MapSchema   *CellSchemaDesc `json:"mapSchema,omitempty" toml:"map_schema,omitempty"`
}

// LocalityGroupDesc is the wire shape of one locality group.
type LocalityGroupDesc struct {
	Name        string       `json:"name" toml:"name"`
	Aliases     []string     `json:"aliases,omitempty" toml:"aliases,omitempty"`
	Description string       `json:"description,omitempty" toml:"description,omitempty"`
	InMemory    bool         `json:"inMemory,omitempty" toml:"in_memory,omitempty"`
	TTLSeconds  int          `json:"ttlSeconds" toml:"ttl_seconds"`
	MaxVersions int          `json:"maxVersions" toml:"max_versions"`
	Compression Compression  `json:"compression" toml:"compression"`
	ID          int          `json:"id,omitempty" toml:"id,omitempty"`
	RenamedFrom string       `json:"renamedFrom,omitempty" toml:"renamed_from,omitempty"`
	Delete      bool         `json:"delete,omitempty" toml:"delete,omitempty"`
	Families    []FamilyDesc `json:"families,omitempty" toml:"families,omitempty"`
}

// Descriptor is the top-level, self-describing layout record the caller
// supplies. ReferenceLayout is carried as data only: the builder never
// reads it. Whether a build is a from-scratch creation or an update is
// decided by the builder's prior-layout parameter alone, which carries the
// actual prior TableLayout to reconcile against.
type Descriptor struct {
	Name            string              `json:"name" toml:"name"`
	Description     string              `json:"description,omitempty" toml:"description,omitempty"`
	KeysFormat      KeyEncoding         `json:"keysFormat" toml:"keys_format"`
	LayoutID        string              `json:"layoutId,omitempty" toml:"layout_id,omitempty"`
	LocalityGroups  []LocalityGroupDesc `json:"localityGroups,omitempty" toml:"locality_groups,omitempty"`
	ReferenceLayout string              `json:"referenceLayout,omitempty" toml:"reference_layout,omitempty"`
}

// Clone returns a deep copy of the descriptor so the builder never mutates
// the caller's original value, even though it clears RenamedFrom fields on
// its working copy during reconciliation.
func (d *Descriptor) Clone() *Descriptor {
	if d == nil {
		return nil
	}
	out := *d
	out.LocalityGroups = make([]LocalityGroupDesc, len(d.LocalityGroups))
	for i, lg := range d.LocalityGroups {
		out.LocalityGroups[i] = lg.clone()
	}
	return &out
}

func (lg LocalityGroupDesc) clone() LocalityGroupDesc {
	out := lg
	out.Aliases = append([]string(nil), lg.Aliases...)
	out.Families = make([]FamilyDesc, len(lg.Families))
	for i, f := range lg.Families {
		out.Families[i] = f.clone()
	}
	return out
}

func (f FamilyDesc) clone() FamilyDesc {
	out := f
	out.Aliases = append([]string(nil), f.Aliases...)
	if f.MapSchema != nil {
		schema := *f.MapSchema
		out.MapSchema = &schema
	}
	out.Columns = make([]ColumnDesc, len(f.Columns))
	for i, c := range f.Columns {
		out.Columns[i] = c.clone()
	}
	return out
}

func (c ColumnDesc) clone() ColumnDesc {
	out := c
	out.Aliases = append([]string(nil), c.Aliases...)
	return out
}
