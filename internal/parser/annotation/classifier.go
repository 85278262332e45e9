// Package annotation parses stringified type annotations into structured
// type expressions: a format classifier plus a recursive, bracket-depth
// aware expression parser.
package annotation

import "strings"

// Format identifies which recognized surface syntax an annotation
// string matches.
type Format string

const (
	// FormatStandardRepr matches rendered object representations like
	// "<class 'pkg.Name'>".
	FormatStandardRepr Format = "standard_repr"
	// FormatLiteral matches the exact literal tokens "Any" and "None".
	FormatLiteral Format = "literal"
	// FormatConstruct matches parameterized typing constructs like
	// "Union[int, str]".
	FormatConstruct Format = "construct"
	// FormatDottedPath matches attribute chains like "np.ndarray".
	FormatDottedPath Format = "dotted_path"
	// FormatBareName matches any other single identifier.
	FormatBareName Format = "bare_name"
)

// constructIndicators is the fixed vocabulary of construct head tokens.
// Classification tests substring containment, not an anchored prefix, so a
// token appearing anywhere in the string is sufficient. A bare name that
// happens to contain one of these (e.g. a type literally named
// "MyTypeVar") is misclassified as a construct; that permissive heuristic
// is intentional and the construct builder degrades such input to
// not-found.
var constructIndicators = []string{
	"typing.",
	"Union[",
	"Optional[",
	"List[",
	"Dict[",
	"Tuple[",
	"Set[",
	"FrozenSet[",
	"Callable[",
	"Literal[",
	"ClassVar[",
	"Final[",
	"Annotated[",
	"Generic[",
	"TypeVar",
	"NewType",
}

// literalTokens is the closed set of bare literal annotations.
var literalTokens = map[string]struct{}{
	"Any":  {},
	"None": {},
}

// Classify determines which surface syntax the annotation matches. The
// precedence order is fixed so overlapping patterns never double-match:
// standard representation, then literal tokens, then constructs, then
// dotted paths, then bare names. Pure function; every string falls into
// exactly one category.
func Classify(s string) Format {
	switch {
	case IsStandardRepr(s):
		return FormatStandardRepr
	case isLiteral(s):
		return FormatLiteral
	case isConstruct(s):
		return FormatConstruct
	case strings.Contains(s, ".") && !strings.HasPrefix(s, "<"):
		return FormatDottedPath
	default:
		return FormatBareName
	}
}

// IsStandardRepr reports whether the annotation is a rendered object
// representation: opens and closes with angle brackets and contains at
// least one space and one quote character.
func IsStandardRepr(s string) bool {
	return strings.HasPrefix(s, "<") &&
		strings.HasSuffix(s, ">") &&
		strings.Contains(s, " ") &&
		strings.Contains(s, "'")
}

func isLiteral(s string) bool {
	_, ok := literalTokens[s]
	return ok
}

func isConstruct(s string) bool {
	for _, indicator := range constructIndicators {
		if strings.Contains(s, indicator) {
			return true
		}
	}
	return false
}
