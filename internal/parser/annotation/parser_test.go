package annotation

import (
	"testing"

	"github.com/griffnb/core-annotation/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTypeArgs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single argument",
			input: "int",
			want:  []string{"int"},
		},
		{
			name:  "two flat arguments",
			input: "int, str",
			want:  []string{"int", "str"},
		},
		{
			name:  "nested bracket is not split",
			input: "str, Sequence[int]",
			want:  []string{"str", "Sequence[int]"},
		},
		{
			name:  "deeply nested mapping",
			input: "str, Dict[str, List[int]]",
			want:  []string{"str", "Dict[str, List[int]]"},
		},
		{
			name:  "round brackets count toward depth",
			input: "Callable[(int, str), bool], float",
			want:  []string{"Callable[(int, str), bool]", "float"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "unbalanced trailing text kept as final argument",
			input: "int, List[str",
			want:  []string{"int", "List[str"},
		},
		{
			name:  "whitespace trimmed",
			input: " int ,  str ",
			want:  []string{"int", "str"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTypeArgs(tt.input))
		})
	}
}

func TestParseStandardRepr(t *testing.T) {
	expr := Parse("<class '__main__.MyClass'>")
	require.Equal(t, domain.ExprStandardRepr, expr.Kind)
	assert.Equal(t, "__main__.MyClass", expr.ObjectPath)
	assert.Equal(t, "<class '__main__.MyClass'>", expr.Raw)
}

func TestParseStandardReprSingleQuoteChar(t *testing.T) {
	// A repr with only one quote cannot yield a path; the expression
	// degrades to an empty ref instead of failing.
	expr := Parse("<class 'broken>")
	require.Equal(t, domain.ExprStandardRepr, expr.Kind)
	assert.Empty(t, expr.ObjectPath)
}

func TestParseLiteral(t *testing.T) {
	expr := Parse("Any")
	require.Equal(t, domain.ExprLiteral, expr.Kind)
	assert.Equal(t, "Any", expr.Name)
}

func TestParseDottedPath(t *testing.T) {
	expr := Parse("matplotlib.pyplot.Figure")
	require.Equal(t, domain.ExprDottedPath, expr.Kind)
	assert.Equal(t, []string{"matplotlib", "pyplot", "Figure"}, expr.Segments)
}

func TestParseBareName(t *testing.T) {
	expr := Parse("MyClass")
	require.Equal(t, domain.ExprBareName, expr.Kind)
	assert.Equal(t, "MyClass", expr.Name)
}

func TestParseConstruct(t *testing.T) {
	t.Run("union with two arguments", func(t *testing.T) {
		expr := Parse("Union[int, str]")
		require.Equal(t, domain.ExprConstruct, expr.Kind)
		assert.Equal(t, "Union", expr.Name)
		require.Len(t, expr.Args, 2)
		assert.Equal(t, domain.ExprBareName, expr.Args[0].Kind)
		assert.Equal(t, "int", expr.Args[0].Name)
		assert.Equal(t, "str", expr.Args[1].Name)
	})

	t.Run("typing qualifier stripped from head", func(t *testing.T) {
		expr := Parse("typing.List[int]")
		require.Equal(t, domain.ExprConstruct, expr.Kind)
		assert.Equal(t, "List", expr.Name)
		require.Len(t, expr.Args, 1)
	})

	t.Run("nested construct arguments preserve order and depth", func(t *testing.T) {
		expr := Parse("Dict[str, List[Optional[int]]]")
		require.Equal(t, domain.ExprConstruct, expr.Kind)
		assert.Equal(t, "Dict", expr.Name)
		require.Len(t, expr.Args, 2)

		inner := expr.Args[1]
		require.Equal(t, domain.ExprConstruct, inner.Kind)
		assert.Equal(t, "List", inner.Name)
		require.Len(t, inner.Args, 1)

		assert.Equal(t, "Optional", inner.Args[0].Name)
	})

	t.Run("indicator without bracket keeps whole text as head", func(t *testing.T) {
		expr := Parse("MyTypeVar")
		require.Equal(t, domain.ExprConstruct, expr.Kind)
		assert.Equal(t, "MyTypeVar", expr.Name)
		assert.Empty(t, expr.Args)
	})

	t.Run("unbalanced argument list is lenient", func(t *testing.T) {
		expr := Parse("List[int")
		require.Equal(t, domain.ExprConstruct, expr.Kind)
		assert.Equal(t, "List", expr.Name)
		require.Len(t, expr.Args, 1)
		assert.Equal(t, "int", expr.Args[0].Name)
	})
}
