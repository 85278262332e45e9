package resolver

import (
	"github.com/griffnb/core-annotation/internal/domain"
)

// Construct heads with a generic rebuild rule, mapped to the structural
// kind of the rebuilt reference.
var genericHeads = map[string]domain.Kind{
	"List":  domain.KindArray,
	"Tuple": domain.KindArray,
	"Set":   domain.KindArray,
	"Dict":  domain.KindObject,
}

// buildConstruct reassembles a parsed composite expression into a concrete
// type reference by resolving each argument through the whole pipeline and
// rebinding the survivors to the container form.
//
// Union collapses to its first successfully resolved argument: the target
// environment has no dynamic multi-member union value, so the one-argument
// collapse is exact and the multi-argument case is a documented
// approximation, not a defect. Heads without a rebuild rule (Callable,
// Literal, FrozenSet, TypeVar, NewType, and anything unrecognized) resolve
// to not-found.
func (s *Service) buildConstruct(expr *domain.TypeExpression, scope domain.Scope) *domain.Outcome {
	switch expr.Name {
	case "Union":
		return s.buildUnion(expr, scope)

	case "Optional":
		return s.buildOptional(expr, scope)

	default:
		kind, ok := genericHeads[expr.Name]
		if !ok {
			return domain.NotFoundOutcome(expr.Raw)
		}
		return s.buildGeneric(expr, kind, scope)
	}
}

// buildUnion resolves every member and returns the first that resolved.
// A single-member union collapses to that member exactly.
func (s *Service) buildUnion(expr *domain.TypeExpression, scope domain.Scope) *domain.Outcome {
	resolved, missing := s.resolveArgs(expr.Args, scope)
	if missing != nil {
		return missing
	}
	if len(resolved) == 0 {
		return domain.NotFoundOutcome(expr.Raw)
	}
	return domain.ResolvedOutcome(expr.Raw, resolved[0])
}

// buildOptional resolves the single inner argument and wraps it nullable.
func (s *Service) buildOptional(expr *domain.TypeExpression, scope domain.Scope) *domain.Outcome {
	if len(expr.Args) != 1 {
		return domain.NotFoundOutcome(expr.Raw)
	}

	inner := s.ResolveExpression(expr.Args[0], scope)
	if inner.Status == domain.StatusMissingDependency {
		return inner
	}
	if !inner.Resolved() {
		return domain.NotFoundOutcome(expr.Raw)
	}

	return domain.ResolvedOutcome(expr.Raw, inner.Ref.AsNullable())
}

// buildGeneric rebuilds a parameterized container from the arguments that
// resolved; zero resolved arguments fails the whole construct. A missing
// dependency in any member also fails the whole construct to not-found
// rather than propagating, even when other members resolved: only Union
// and Optional surface a member's missing dependency.
func (s *Service) buildGeneric(expr *domain.TypeExpression, kind domain.Kind, scope domain.Scope) *domain.Outcome {
	resolved, missing := s.resolveArgs(expr.Args, scope)
	if missing != nil {
		return domain.NotFoundOutcome(expr.Raw)
	}
	if len(resolved) == 0 {
		return domain.NotFoundOutcome(expr.Raw)
	}

	return domain.ResolvedOutcome(expr.Raw, domain.NewConstruct(expr.Name, kind, resolved...))
}

// resolveArgs resolves each argument independently, keeping original order.
// Not-found arguments are skipped. A missing dependency stops resolution and
// is reported to the caller, carrying the argument's own annotation text;
// whether it propagates or collapses the construct is the caller's call.
func (s *Service) resolveArgs(args []*domain.TypeExpression, scope domain.Scope) ([]*domain.TypeRef, *domain.Outcome) {
	resolved := make([]*domain.TypeRef, 0, len(args))
	for _, arg := range args {
		outcome := s.ResolveExpression(arg, scope)
		if outcome.Status == domain.StatusMissingDependency {
			return nil, outcome
		}
		if outcome.Resolved() {
			resolved = append(resolved, outcome.Ref)
		}
	}
	return resolved, nil
}
