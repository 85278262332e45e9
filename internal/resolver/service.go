// Package resolver resolves parsed type expressions against the layered
// resolution environment: the builtin registry, the reserved namespaces,
// the caller-supplied fallback scope, and the module loader, in that fixed
// order.
package resolver

import (
	"strings"

	"github.com/griffnb/core-annotation/internal/domain"
	"github.com/griffnb/core-annotation/internal/loader"
	"github.com/griffnb/core-annotation/internal/parser/annotation"
	"github.com/griffnb/core-annotation/internal/registry"
)

// Reserved root segments with dedicated resolution rules.
const (
	rootMain     = "__main__"
	rootBuiltins = "builtins"
)

// Debugger is the interface for debug logging.
type Debugger interface {
	Printf(format string, v ...interface{})
}

type noOpDebugger struct{}

func (noOpDebugger) Printf(string, ...interface{}) {}

// Service resolves type expressions. Resolution is memo-free and
// stateless: identical input always re-parses and re-resolves from
// scratch.
type Service struct {
	registry *registry.Service
	loader   *loader.Service
	debug    Debugger
}

// NewService creates a resolver over the given registry and loader.
func NewService(reg *registry.Service, ldr *loader.Service) *Service {
	return &Service{
		registry: reg,
		loader:   ldr,
		debug:    &noOpDebugger{},
	}
}

// SetDebugger sets the debugger.
func (s *Service) SetDebugger(debug Debugger) {
	if debug != nil {
		s.debug = debug
	}
}

// ResolveAnnotation runs the whole pipeline for one annotation string:
// classify, parse, resolve. Construct arguments recursively re-enter here,
// so the missing-dependency pre-check applies to nested arguments exactly
// as it does to top-level input.
func (s *Service) ResolveAnnotation(annotationStr string, scope domain.Scope) *domain.Outcome {
	return s.ResolveExpression(annotation.Parse(annotationStr), scope)
}

// ResolveExpression resolves a parsed expression against the environment.
func (s *Service) ResolveExpression(expr *domain.TypeExpression, scope domain.Scope) *domain.Outcome {
	switch expr.Kind {
	case domain.ExprStandardRepr:
		// The quoted path bypasses the dependency pre-check: a repr that
		// names an unloadable module resolves to not-found, never to a
		// missing dependency. Source behavior, kept deliberately.
		if expr.ObjectPath == "" {
			return domain.NotFoundOutcome(expr.Raw)
		}
		return s.resolveObjectPath(expr.ObjectPath, scope, expr.Raw)

	case domain.ExprLiteral:
		return s.resolveName(expr.Name, scope, expr.Raw)

	case domain.ExprConstruct:
		return s.buildConstruct(expr, scope)

	case domain.ExprDottedPath:
		root := expr.Segments[0]
		if root != rootMain && root != rootBuiltins && !scope.HasRoot(root) {
			// Short-circuit before any load is attempted so the caller gets
			// a structured signal instead of a deep import failure.
			return domain.MissingDependencyOutcome(expr.Raw, root)
		}
		return s.resolveObjectPath(strings.Join(expr.Segments, "."), scope, expr.Raw)

	default:
		return s.resolveName(expr.Name, scope, expr.Raw)
	}
}

// resolveName resolves an unqualified name: builtin registry first, then
// the fallback scope.
func (s *Service) resolveName(name string, scope domain.Scope, original string) *domain.Outcome {
	if ref, ok := s.registry.Lookup(name); ok {
		return domain.ResolvedOutcome(original, ref)
	}
	if ref, ok := scope.Lookup(name); ok {
		return domain.ResolvedOutcome(original, ref)
	}
	return domain.NotFoundOutcome(original)
}

// resolveObjectPath resolves a dotted object path such as "__main__.ABC" or
// "pathlib.Path". The reserved roots never reach the module loader; any
// load or attribute failure past this point collapses to not-found, since
// the dependency-presence check has already had its chance to report.
func (s *Service) resolveObjectPath(objectPath string, scope domain.Scope, original string) *domain.Outcome {
	if !strings.Contains(objectPath, ".") {
		return s.resolveName(objectPath, scope, original)
	}

	parts := strings.Split(objectPath, ".")
	objectName := parts[len(parts)-1]

	switch parts[0] {
	case rootMain:
		if ref, ok := scope.Lookup(objectName); ok {
			return domain.ResolvedOutcome(original, ref)
		}
		return domain.NotFoundOutcome(original)

	case rootBuiltins:
		if ref, ok := s.registry.Lookup(objectName); ok {
			return domain.ResolvedOutcome(original, ref)
		}
		return domain.NotFoundOutcome(original)

	default:
		modulePath := strings.Join(parts[:len(parts)-1], ".")
		ref, err := s.loader.LoadAttribute(modulePath, objectName)
		if err != nil {
			s.debug.Printf("resolver: %s: %v", original, err)
			return domain.NotFoundOutcome(original)
		}
		return domain.ResolvedOutcome(original, ref)
	}
}
