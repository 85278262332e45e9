package annotation

import (
	"strings"

	"github.com/griffnb/core-annotation/internal/domain"
)

// Parse turns an annotation string into a structured type expression.
// Parsing never fails loudly: irregular input (missing quotes, unbalanced
// brackets) degrades to an expression that resolves to not-found.
func Parse(s string) *domain.TypeExpression {
	expr := parse(s)
	expr.Raw = s
	return expr
}

func parse(s string) *domain.TypeExpression {
	switch Classify(s) {
	case FormatStandardRepr:
		return domain.StandardReprExpr(extractQuotedPath(s))
	case FormatLiteral:
		return domain.LiteralExpr(s)
	case FormatConstruct:
		return parseConstruct(s)
	case FormatDottedPath:
		return domain.DottedPathExpr(strings.Split(s, ".")...)
	default:
		return domain.BareNameExpr(s)
	}
}

// extractQuotedPath returns the text between the first and last single
// quote of a standard representation. Fewer than two quote characters
// yields an empty path, which resolves to not-found downstream.
func extractQuotedPath(s string) string {
	start := strings.Index(s, "'")
	end := strings.LastIndex(s, "'")
	if start == -1 || end == -1 || start == end {
		return ""
	}
	return s[start+1 : end]
}

// parseConstruct splits a construct annotation into its head token and the
// bracketed argument list immediately following it. An optional leading
// "typing." qualifier is stripped so "typing.List[int]" parses like
// "List[int]". Arguments are split at top-level commas and recursively
// parsed. A list that never balances back to depth zero is handled
// leniently: the trailing partial text still becomes a final argument.
func parseConstruct(s string) *domain.TypeExpression {
	work := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "typing."))

	open := strings.Index(work, "[")
	if open < 0 {
		// Indicator matched without a bracketed list, e.g. "TypeVar" or a
		// bare name containing a reserved substring.
		return domain.ConstructExpr(work)
	}

	head := strings.TrimSpace(work[:open])
	inner := work[open+1:]
	inner = strings.TrimSuffix(inner, "]")

	segments := SplitTypeArgs(inner)
	args := make([]*domain.TypeExpression, 0, len(segments))
	for _, segment := range segments {
		args = append(args, Parse(strings.TrimSpace(segment)))
	}

	return domain.ConstructExpr(head, args...)
}

// SplitTypeArgs splits a type argument list into top-level comma-separated
// segments. Depth increments on any opening bracket (square or round) and
// decrements on the matching closers; a comma only terminates an argument
// at depth zero, so "str, Sequence[int]" yields exactly two segments.
func SplitTypeArgs(argsStr string) []string {
	if argsStr == "" {
		return nil
	}

	var (
		args       []string
		currentArg strings.Builder
		depth      int
	)

	for _, r := range argsStr {
		switch {
		case r == '[' || r == '(':
			depth++
			currentArg.WriteRune(r)
		case r == ']' || r == ')':
			depth--
			currentArg.WriteRune(r)
		case r == ',' && depth == 0:
			args = append(args, strings.TrimSpace(currentArg.String()))
			currentArg.Reset()
		default:
			currentArg.WriteRune(r)
		}
	}

	if trailing := strings.TrimSpace(currentArg.String()); trailing != "" {
		args = append(args, trailing)
	}

	return args
}
