package core

import (
	"encoding/json"
	"fmt"
)

// ResolvedSchema is what a CellSchema resolves to: an Avro-like schema
// description opaque to the core beyond its textual form. A nil
// ResolvedSchema (with no error) means "no schema": either the COUNTER
// case, whose values are raw 64-bit big-endian integers, or a CLASS schema
// whose class the environment could not locate.
type ResolvedSchema struct {
	// Text is the resolved schema literal, verbatim for INLINE and
	// derived-from-class for CLASS.
	Text string
}

// CellSchema is the frozen, validated form of a CellSchemaDesc.
type CellSchema struct {
	Type    SchemaType
	Value   string
	Storage SchemaStorage
}

// Column is a single named cell inside a GROUP family.
type Column struct {
	PrimaryName string
	Aliases     []string
	Description string
	ID          int
	Schema      CellSchema

	family *Family
}

// Names returns the union of the column's primary name and its aliases.
func (c *Column) Names() []string {
	return append([]string{c.PrimaryName}, c.Aliases...)
}

// Family returns the locality-group-scoped family this column belongs to.
func (c *Column) Family() *Family { return c.family }

// FamilyKind distinguishes a GROUP family (fixed, named columns) from a
// MAP family (arbitrary qualifiers sharing one value schema).
type FamilyKind int

const (
	FamilyGroup FamilyKind = iota
	FamilyMap
)

func (k FamilyKind) String() string {
	if k == FamilyMap {
		return "MAP"
	}
	return "GROUP"
}

// Family is a named column grouping: either GROUP (Columns populated) or
// MAP (MapSchema populated).
type Family struct {
	PrimaryName string
	Aliases     []string
	Description string
	ID          int
	Kind        FamilyKind

	// Columns is populated only for a GROUP family, in descriptor order.
	Columns []*Column
	// MapSchema is populated only for a MAP family.
	MapSchema CellSchema

	columnsByName map[string]*Column
	localityGroup *LocalityGroup
}

// Names returns the union of the family's primary name and its aliases.
func (f *Family) Names() []string {
	return append([]string{f.PrimaryName}, f.Aliases...)
}

// LocalityGroup returns the back-pointer to this family's enclosing
// locality group, patched in once the parent has been frozen.
func (f *Family) LocalityGroup() *LocalityGroup { return f.localityGroup }

// Column looks up a column by its primary name or alias. Returns nil for
// a MAP family or an unknown name.
func (f *Family) Column(nameOrAlias string) *Column {
	return f.columnsByName[nameOrAlias]
}

// LocalityGroup groups a set of families sharing storage-tier placement.
type LocalityGroup struct {
	PrimaryName string
	Aliases     []string
	Description string
	ID          int

	InMemory    bool
	TTLSeconds  int
	MaxVersions int
	Compression Compression

	Families []*Family

	familiesByName map[string]*Family
}

// Names returns the union of the locality group's primary name and its
// aliases.
func (lg *LocalityGroup) Names() []string {
	return append([]string{lg.PrimaryName}, lg.Aliases...)
}

// Family looks up a family by its primary name or alias, scoped to this
// locality group only.
func (lg *LocalityGroup) Family(nameOrAlias string) *Family {
	return lg.familiesByName[nameOrAlias]
}

// KijiColumnName is the pair (family, qualifier). A nil Qualifier denotes
// the whole family — valid for a MAP family or a coarse existence check.
type KijiColumnName struct {
	Family    string
	Qualifier *string
}

// String renders "family" or "family:qualifier".
func (k KijiColumnName) String() string {
	if k.Qualifier == nil {
		return k.Family
	}
	return fmt.Sprintf("%s:%s", k.Family, *k.Qualifier)
}

// TableLayout is the immutable, fully-resolved result of a build. Every
// entity carries a stable ID and every index below is frozen at
// construction time.
type TableLayout struct {
	Name           string
	Description    string
	KeysFormat     KeyEncoding
	LayoutID       string
	LocalityGroups []*LocalityGroup

	localityGroupsByName map[string]*LocalityGroup
	familiesByName       map[string]*Family
	localityGroupIDName  map[int]string
	columnNames          map[KijiColumnName]struct{}
}

// LocalityGroup looks up a locality group by primary name or alias,
// table-wide.
func (t *TableLayout) LocalityGroup(nameOrAlias string) *LocalityGroup {
	return t.localityGroupsByName[nameOrAlias]
}

// Family looks up a family by primary name or alias, table-wide (families
// are unique across the whole table, not merely within their locality
// group).
func (t *TableLayout) Family(nameOrAlias string) *Family {
	return t.familiesByName[nameOrAlias]
}

// LocalityGroupNameByID returns the primary name owning the given locality
// group ID, or "" if unassigned.
func (t *TableLayout) LocalityGroupNameByID(id int) (string, bool) {
	name, ok := t.localityGroupIDName[id]
	return name, ok
}

// HasColumnName reports whether name is a known primary KijiColumnName in
// this layout.
func (t *TableLayout) HasColumnName(name KijiColumnName) bool {
	_, ok := t.columnNames[name]
	return ok
}

// Freeze installs the table-wide derived indices built by the table
// builder. It is called exactly once, by internal/layout, before the
// TableLayout is returned to any caller.
func (t *TableLayout) Freeze(
	localityGroupsByName map[string]*LocalityGroup,
	familiesByName map[string]*Family,
	localityGroupIDName map[int]string,
	columnNames map[KijiColumnName]struct{},
) {
	t.localityGroupsByName = localityGroupsByName
	t.familiesByName = familiesByName
	t.localityGroupIDName = localityGroupIDName
	t.columnNames = columnNames
}

// SetLocalityGroupBackRef patches the back-pointer from a family to its
// enclosing locality group after the locality group's own Families slice
// has been finalized. Exported for internal/layout, which builds children
// before their parent exists.
func SetLocalityGroupBackRef(f *Family, lg *LocalityGroup) { f.localityGroup = lg }

// SetFamilyBackRef patches the back-pointer from a column to its enclosing
// family, same two-phase pattern as SetLocalityGroupBackRef.
func SetFamilyBackRef(c *Column, f *Family) { c.family = f }

// SetColumnIndex installs a family's resolved column-by-name map. Exported
// for internal/layout.
func SetColumnIndex(f *Family, idx map[string]*Column) { f.columnsByName = idx }

// SetFamilyIndex installs a locality group's resolved family-by-name map.
func SetFamilyIndex(lg *LocalityGroup, idx map[string]*Family) { lg.familiesByName = idx }

// String serialises the layout to JSON: the canonical textual form used
// for logging, diffing by eye, and as the basis for Equal.
func (t *TableLayout) String() string {
	b, err := json.Marshal(t)
	if err != nil {
		return fmt.Sprintf("%+v", *t)
	}
	return string(b)
}

// Equal reports whether two layouts are structurally identical: same
// name, description, keys format, layout id, and locality groups down to
// every family and column, compared on their serialised form. The
// unexported derived indices (name lookups, back-pointers) are never
// part of the comparison since they are rebuilt deterministically from
// the same data.
func (t *TableLayout) Equal(other *TableLayout) bool {
	if t == nil || other == nil {
		return t == other
	}
	a, errA := json.Marshal(t)
	b, errB := json.Marshal(other)
	if errA != nil || errB != nil {
		return false
	}
	return string(a) == string(b)
}
