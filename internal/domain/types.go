// Package domain contains core domain types shared across the annotation
// resolver: type references, parsed type expressions, resolution outcomes,
// and the caller-supplied fallback scope.
package domain

import (
	"strings"
)

// Kind classifies a type reference into a small set of structural categories.
type Kind string

const (
	// KindAny represents the dynamic "anything" type.
	KindAny Kind = "any"
	// KindNull represents the null/none type.
	KindNull Kind = "null"
	// KindBoolean represents a boolean type.
	KindBoolean Kind = "boolean"
	// KindInteger represents an integer type.
	KindInteger Kind = "integer"
	// KindNumber represents a floating point type.
	KindNumber Kind = "number"
	// KindString represents a textual or binary string type.
	KindString Kind = "string"
	// KindArray represents an ordered or unordered collection type.
	KindArray Kind = "array"
	// KindObject represents a mapping type.
	KindObject Kind = "object"
	// KindClass represents a user-defined class or an opaque named type.
	KindClass Kind = "class"
	// KindModule represents an imported module object placed in a scope.
	KindModule Kind = "module"
)

// TypeRef is a concrete, resolved type reference. Builtins carry an empty
// Module; types loaded from a module carry its dotted path. Parameterized
// forms keep their resolved arguments in Args in original order.
type TypeRef struct {
	Kind     Kind       `json:"kind"`
	Name     string     `json:"name"`
	Module   string     `json:"module,omitempty"`
	Nullable bool       `json:"nullable,omitempty"`
	Args     []*TypeRef `json:"args,omitempty"`
}

// NewBuiltin creates a type reference for an elementary builtin type.
func NewBuiltin(name string, kind Kind) *TypeRef {
	return &TypeRef{Kind: kind, Name: name}
}

// NewClass creates a type reference for a named type defined in a module.
func NewClass(module, name string) *TypeRef {
	return &TypeRef{Kind: KindClass, Name: name, Module: module}
}

// NewModuleRef creates a reference representing an imported module object.
// Callers place these in a Scope to mark a module root as available.
func NewModuleRef(path string) *TypeRef {
	return &TypeRef{Kind: KindModule, Name: path, Module: path}
}

// NewConstruct creates a parameterized type reference such as List[int].
func NewConstruct(name string, kind Kind, args ...*TypeRef) *TypeRef {
	return &TypeRef{Kind: kind, Name: name, Args: args}
}

// AsNullable returns a copy of the reference marked nullable. The receiver
// is never mutated; resolved builtins are shared across calls.
func (t *TypeRef) AsNullable() *TypeRef {
	if t == nil {
		return nil
	}
	clone := *t
	clone.Nullable = true
	return &clone
}

// FullName returns the module-qualified name, e.g. "pathlib.Path".
func (t *TypeRef) FullName() string {
	if t.Module == "" || t.Module == t.Name {
		return t.Name
	}
	return t.Module + "." + t.Name
}

// String renders a canonical textual form of the reference.
func (t *TypeRef) String() string {
	if t == nil {
		return "<nil>"
	}

	name := t.FullName()
	if len(t.Args) > 0 {
		parts := make([]string, 0, len(t.Args))
		for _, arg := range t.Args {
			parts = append(parts, arg.String())
		}
		name += "[" + strings.Join(parts, ", ") + "]"
	}

	if t.Nullable {
		return "Optional[" + name + "]"
	}
	return name
}

// Scope is the caller-supplied fallback namespace consulted after the
// builtin registry. It is owned by the caller and read-only to the core;
// one scope per resolution call, no cross-call retention.
type Scope map[string]*TypeRef

// Lookup returns the entry registered under name.
func (s Scope) Lookup(name string) (*TypeRef, bool) {
	if s == nil {
		return nil, false
	}
	ref, ok := s[name]
	return ref, ok
}

// HasRoot reports whether a module root name is present in the scope.
// This is a pure membership check used to decide, before any load is
// attempted, whether a dotted path must fail with a missing dependency.
func (s Scope) HasRoot(root string) bool {
	if s == nil {
		return false
	}
	_, ok := s[root]
	return ok
}

// Module is a loaded module namespace: a dotted path and the attributes
// the loader exposed for it.
type Module struct {
	Path  string
	Attrs map[string]*TypeRef
}

// Attr fetches an attribute of the module by name.
func (m *Module) Attr(name string) (*TypeRef, bool) {
	if m == nil {
		return nil, false
	}
	ref, ok := m.Attrs[name]
	return ref, ok
}
