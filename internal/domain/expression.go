package domain

// ExprKind tags the variant of a parsed type expression.
type ExprKind string

const (
	// ExprStandardRepr is a rendered object representation such as
	// "<class 'pkg.Name'>"; ObjectPath holds the quoted dotted path.
	ExprStandardRepr ExprKind = "standard_repr"
	// ExprLiteral is one of the bare literal tokens ("Any", "None").
	ExprLiteral ExprKind = "literal"
	// ExprConstruct is a parameterized construct such as "Union[int, str]";
	// Name holds the head token and Args the nested expressions.
	ExprConstruct ExprKind = "construct"
	// ExprDottedPath is an attribute access chain such as "np.ndarray";
	// Segments holds the dot-separated parts in order.
	ExprDottedPath ExprKind = "dotted_path"
	// ExprBareName is a single unqualified identifier.
	ExprBareName ExprKind = "bare_name"
)

// TypeExpression is a parsed annotation string. Exactly one variant applies
// per expression; nested construct arguments preserve the original
// left-to-right order and bracket nesting depth.
type TypeExpression struct {
	Kind       ExprKind
	Raw        string
	ObjectPath string
	Name       string
	Segments   []string
	Args       []*TypeExpression
}

// StandardReprExpr creates a standard-representation expression.
func StandardReprExpr(objectPath string) *TypeExpression {
	return &TypeExpression{Kind: ExprStandardRepr, ObjectPath: objectPath}
}

// LiteralExpr creates a literal-token expression.
func LiteralExpr(name string) *TypeExpression {
	return &TypeExpression{Kind: ExprLiteral, Name: name}
}

// ConstructExpr creates a composite-construct expression.
func ConstructExpr(head string, args ...*TypeExpression) *TypeExpression {
	return &TypeExpression{Kind: ExprConstruct, Name: head, Args: args}
}

// DottedPathExpr creates a dotted-path expression.
func DottedPathExpr(segments ...string) *TypeExpression {
	return &TypeExpression{Kind: ExprDottedPath, Segments: segments}
}

// BareNameExpr creates a bare-name expression.
func BareNameExpr(name string) *TypeExpression {
	return &TypeExpression{Kind: ExprBareName, Name: name}
}
