// Package cellschema resolves a core.CellSchemaDesc (INLINE, CLASS, or
// COUNTER) into a core.ResolvedSchema, and derives the on-disk storage
// format for a frozen core.CellSchema. It is invoked by the layout builder
// for its validation side effect; the read-side query surface consults it
// again to answer GetSchema.
package cellschema

import (
	"sync"

	"kijilayout/internal/core"
)

// ClassResolver is the injectable "ambient type-loading environment"
// collaborator: given a fully-qualified class name, it returns the schema
// the compiled type carries, or false if the environment cannot locate it.
// A miss is never fatal — see Resolve.
type ClassResolver interface {
	ResolveClass(name string) (core.ResolvedSchema, bool)
}

// ClassResolverFunc adapts a plain function to a ClassResolver.
type ClassResolverFunc func(name string) (core.ResolvedSchema, bool)

func (f ClassResolverFunc) ResolveClass(name string) (core.ResolvedSchema, bool) { return f(name) }

var (
	registryMu sync.RWMutex
	registry   ClassResolver
)

// RegisterClassResolver installs the process-wide class resolver used by
// Resolve for CLASS schemas. Passing nil restores the "nothing is ever
// found" default, which is a perfectly valid environment: layouts may be
// validated on nodes without the user's compiled classes available.
func RegisterClassResolver(r ClassResolver) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = r
}

// CurrentClassResolver returns the process-wide class resolver, or nil if
// none has been registered.
func CurrentClassResolver() ClassResolver {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry
}
