package core

import "fmt"

// InvalidLayoutReason tags the taxonomy of validation failures the
// builder can raise. Callers may switch on it; the message is always
// populated for display regardless of reason.
type InvalidLayoutReason string

const (
	ReasonInvalidName       InvalidLayoutReason = "InvalidName"
	ReasonInvalidAlias      InvalidLayoutReason = "InvalidAlias"
	ReasonDuplicateName     InvalidLayoutReason = "DuplicateName"
	ReasonDuplicateID       InvalidLayoutReason = "DuplicateId"
	ReasonIDMismatch        InvalidLayoutReason = "IdMismatch"
	ReasonForbiddenMutation InvalidLayoutReason = "ForbiddenMutation"
	ReasonInvalidRename     InvalidLayoutReason = "InvalidRename"
	ReasonInvalidDelete     InvalidLayoutReason = "InvalidDelete"
	ReasonOrphanPriorEntity InvalidLayoutReason = "OrphanPriorEntity"
	ReasonInvalidSchema     InvalidLayoutReason = "InvalidSchema"
	ReasonInvalidParameter  InvalidLayoutReason = "InvalidParameter"
	ReasonInvalidLayoutID   InvalidLayoutReason = "InvalidLayoutId"
)

// InvalidLayoutError is the single structured error kind the core raises.
// Every validation failure during Build surfaces through this type; the
// construction call either returns a fully frozen TableLayout or one of
// these, never a partial result.
type InvalidLayoutError struct {
	Reason InvalidLayoutReason
	// Entity names the kind of thing that failed (e.g. "column", "family",
	// "locality group", "table"), for message formatting.
	Entity string
	// Name is the primary name involved, when there is one.
	Name string
	Message string
}

func (e *InvalidLayoutError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid layout: %s %q: %s", e.Entity, e.Name, e.Message)
	}
	if e.Entity != "" {
		return fmt.Sprintf("invalid layout: %s: %s", e.Entity, e.Message)
	}
	return fmt.Sprintf("invalid layout: %s", e.Message)
}

// NewInvalidLayoutError builds an InvalidLayoutError for the given reason.
func NewInvalidLayoutError(reason InvalidLayoutReason, entity, name, format string, args ...any) *InvalidLayoutError {
	return &InvalidLayoutError{
		Reason:  reason,
		Entity:  entity,
		Name:    name,
		Message: fmt.Sprintf(format, args...),
	}
}

// NoSuchColumnError is raised by the read-side query surface, not by
// construction — it is a lookup-time error, distinct from the
// InvalidLayoutError validation taxonomy.
type NoSuchColumnError struct {
	Column KijiColumnName
}

func (e *NoSuchColumnError) Error() string {
	return fmt.Sprintf("no such column: %s", e.Column.String())
}
