package resolver

import (
	"testing"

	"github.com/griffnb/core-annotation/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAnnotation_Optional(t *testing.T) {
	svc := newTestService()

	t.Run("wraps the inner type nullable", func(t *testing.T) {
		outcome := svc.ResolveAnnotation("Optional[int]", nil)
		require.True(t, outcome.Resolved())
		assert.Equal(t, domain.KindInteger, outcome.Ref.Kind)
		assert.True(t, outcome.Ref.Nullable)
	})

	t.Run("leaves the shared builtin untouched", func(t *testing.T) {
		_ = svc.ResolveAnnotation("Optional[int]", nil)

		plain := svc.ResolveAnnotation("int", nil)
		require.True(t, plain.Resolved())
		assert.False(t, plain.Ref.Nullable)
	})

	t.Run("typing prefix is accepted", func(t *testing.T) {
		outcome := svc.ResolveAnnotation("typing.Optional[str]", nil)
		require.True(t, outcome.Resolved())
		assert.Equal(t, domain.KindString, outcome.Ref.Kind)
		assert.True(t, outcome.Ref.Nullable)
	})

	t.Run("unresolvable inner type fails the construct", func(t *testing.T) {
		outcome := svc.ResolveAnnotation("Optional[Widget]", nil)
		assert.Equal(t, domain.StatusNotFound, outcome.Status)
	})
}

func TestResolveAnnotation_Union(t *testing.T) {
	svc := newTestService()

	t.Run("collapses to the first resolved member", func(t *testing.T) {
		outcome := svc.ResolveAnnotation("Union[int, str]", nil)
		require.True(t, outcome.Resolved())
		assert.Equal(t, domain.KindInteger, outcome.Ref.Kind)
	})

	t.Run("skips unresolvable members", func(t *testing.T) {
		outcome := svc.ResolveAnnotation("Union[Widget, str]", nil)
		require.True(t, outcome.Resolved())
		assert.Equal(t, domain.KindString, outcome.Ref.Kind)
	})

	t.Run("fails when no member resolves", func(t *testing.T) {
		outcome := svc.ResolveAnnotation("Union[Widget, Gadget]", nil)
		assert.Equal(t, domain.StatusNotFound, outcome.Status)
	})
}

func TestResolveAnnotation_Generics(t *testing.T) {
	svc := newTestService()

	t.Run("list of ints", func(t *testing.T) {
		outcome := svc.ResolveAnnotation("List[int]", nil)
		require.True(t, outcome.Resolved())
		assert.Equal(t, domain.KindArray, outcome.Ref.Kind)
		assert.Equal(t, "List", outcome.Ref.Name)
		require.Len(t, outcome.Ref.Args, 1)
		assert.Equal(t, domain.KindInteger, outcome.Ref.Args[0].Kind)
	})

	t.Run("dict keeps both arguments in order", func(t *testing.T) {
		outcome := svc.ResolveAnnotation("Dict[str, int]", nil)
		require.True(t, outcome.Resolved())
		assert.Equal(t, domain.KindObject, outcome.Ref.Kind)
		require.Len(t, outcome.Ref.Args, 2)
		assert.Equal(t, domain.KindString, outcome.Ref.Args[0].Kind)
		assert.Equal(t, domain.KindInteger, outcome.Ref.Args[1].Kind)
	})

	t.Run("nested constructs resolve recursively", func(t *testing.T) {
		outcome := svc.ResolveAnnotation("Dict[str, List[int]]", nil)
		require.True(t, outcome.Resolved())
		require.Len(t, outcome.Ref.Args, 2)

		inner := outcome.Ref.Args[1]
		assert.Equal(t, domain.KindArray, inner.Kind)
		require.Len(t, inner.Args, 1)
		assert.Equal(t, domain.KindInteger, inner.Args[0].Kind)
	})

	t.Run("unresolvable arguments are dropped from the rebuild", func(t *testing.T) {
		outcome := svc.ResolveAnnotation("Tuple[int, Widget, str]", nil)
		require.True(t, outcome.Resolved())
		require.Len(t, outcome.Ref.Args, 2)
		assert.Equal(t, domain.KindInteger, outcome.Ref.Args[0].Kind)
		assert.Equal(t, domain.KindString, outcome.Ref.Args[1].Kind)
	})

	t.Run("all arguments unresolvable fails the construct", func(t *testing.T) {
		outcome := svc.ResolveAnnotation("List[Widget]", nil)
		assert.Equal(t, domain.StatusNotFound, outcome.Status)
	})

	t.Run("heads without a rebuild rule resolve to not found", func(t *testing.T) {
		for _, annotation := range []string{
			"Callable[[int], str]",
			"Literal['a', 'b']",
			"FrozenSet[int]",
			"ClassVar[int]",
			"TypeVar",
		} {
			outcome := svc.ResolveAnnotation(annotation, nil)
			assert.Equal(t, domain.StatusNotFound, outcome.Status, "annotation %q", annotation)
		}
	})
}

func TestResolveAnnotation_MissingDependencyInArgs(t *testing.T) {
	svc := newTestService()

	t.Run("generic swallows a member missing dependency", func(t *testing.T) {
		outcome := svc.ResolveAnnotation("List[np.ndarray]", domain.Scope{})
		require.Equal(t, domain.StatusNotFound, outcome.Status)
		assert.Empty(t, outcome.MissingModule)
	})

	t.Run("generic fails whole even when other members resolved", func(t *testing.T) {
		outcome := svc.ResolveAnnotation("Tuple[int, np.ndarray]", domain.Scope{})
		require.Equal(t, domain.StatusNotFound, outcome.Status)
		assert.Nil(t, outcome.Ref)
	})

	t.Run("optional propagates the inner missing dependency", func(t *testing.T) {
		outcome := svc.ResolveAnnotation("Optional[np.ndarray]", domain.Scope{})
		require.Equal(t, domain.StatusMissingDependency, outcome.Status)
		assert.Equal(t, "np", outcome.MissingModule)
	})

	t.Run("union stops at the first missing dependency", func(t *testing.T) {
		outcome := svc.ResolveAnnotation("Union[np.ndarray, int]", domain.Scope{})
		require.Equal(t, domain.StatusMissingDependency, outcome.Status)
		assert.Equal(t, "np", outcome.MissingModule)
	})
}
