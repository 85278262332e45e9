// Package registry provides the builtin type registry: the fixed mapping
// from elementary type names to their canonical type references. It is the
// first layer consulted during resolution.
package registry

import (
	"sort"

	"github.com/griffnb/core-annotation/internal/domain"
)

// Service holds the builtin registry. The mapping is populated once in
// NewService and never mutated afterwards, so concurrent reads from
// multiple resolution calls are safe.
type Service struct {
	builtins map[string]*domain.TypeRef
}

// NewService creates a registry seeded with the elementary builtin types
// and the literal objects for the dynamic-any and null types.
func NewService() *Service {
	builtins := map[string]*domain.TypeRef{
		"int":       domain.NewBuiltin("int", domain.KindInteger),
		"str":       domain.NewBuiltin("str", domain.KindString),
		"float":     domain.NewBuiltin("float", domain.KindNumber),
		"bool":      domain.NewBuiltin("bool", domain.KindBoolean),
		"list":      domain.NewBuiltin("list", domain.KindArray),
		"dict":      domain.NewBuiltin("dict", domain.KindObject),
		"tuple":     domain.NewBuiltin("tuple", domain.KindArray),
		"set":       domain.NewBuiltin("set", domain.KindArray),
		"frozenset": domain.NewBuiltin("frozenset", domain.KindArray),
		"bytes":     domain.NewBuiltin("bytes", domain.KindString),
		"bytearray": domain.NewBuiltin("bytearray", domain.KindString),
		"object":    domain.NewBuiltin("object", domain.KindClass),
		"type":      domain.NewBuiltin("type", domain.KindClass),
		"NoneType":  domain.NewBuiltin("NoneType", domain.KindNull),
	}

	// Literal tokens resolve to the same shared objects as their
	// registry entries.
	builtins["Any"] = domain.NewBuiltin("Any", domain.KindAny)
	builtins["None"] = builtins["NoneType"]

	return &Service{builtins: builtins}
}

// Lookup returns the canonical reference registered under name.
func (s *Service) Lookup(name string) (*domain.TypeRef, bool) {
	ref, ok := s.builtins[name]
	return ref, ok
}

// Has reports whether name is a registered builtin.
func (s *Service) Has(name string) bool {
	_, ok := s.builtins[name]
	return ok
}

// Names returns all registered builtin names in alphabetic order.
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.builtins))
	for name := range s.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
