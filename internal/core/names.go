package core

import "regexp"

// identifierRe matches a restricted identifier: letters, digits, and
// underscore, with no leading digit.
var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// NamePredicates is the injectable name-validation collaborator. The
// builders (internal/layout) consult it for every primary name and every
// alias; they raise InvalidLayoutError themselves on rejection, so these
// predicates stay pure booleans with no error type of their own.
type NamePredicates interface {
	IsValidName(s string) bool
	IsValidAlias(s string) bool
}

// defaultNamePredicates is the restricted-identifier ruleset: letters,
// digits, underscore, no leading digit. Aliases share the primary-name
// ruleset in this system; primary names are also run through
// IsValidAlias as a belt-and-suspenders check.
type defaultNamePredicates struct{}

func (defaultNamePredicates) IsValidName(s string) bool  { return identifierRe.MatchString(s) }
func (defaultNamePredicates) IsValidAlias(s string) bool { return identifierRe.MatchString(s) }

// DefaultNamePredicates is the restricted-identifier validator used unless
// a caller supplies its own via layout.WithNamePredicates.
var DefaultNamePredicates NamePredicates = defaultNamePredicates{}
