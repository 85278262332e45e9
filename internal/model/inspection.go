// Package model contains the function-inspection data model: the
// signature metadata whose annotation strings the resolver consumes.
package model

// ParameterKind mirrors the parameter kinds of the producing language's
// signature machinery.
type ParameterKind string

const (
	// PositionalOnly parameters appear before the positional-only marker.
	PositionalOnly ParameterKind = "positional_only"
	// PositionalOrKeyword is the default parameter kind.
	PositionalOrKeyword ParameterKind = "positional_or_keyword"
	// VarPositional is the variadic positional parameter (*args).
	VarPositional ParameterKind = "var_positional"
	// KeywordOnly parameters appear after the variadic marker.
	KeywordOnly ParameterKind = "keyword_only"
	// VarKeyword is the variadic keyword parameter (**kwargs).
	VarKeyword ParameterKind = "var_keyword"
)

// Parameter is one parameter of an inspected function signature.
type Parameter struct {
	Name         string        `json:"name"`
	Kind         ParameterKind `json:"kind"`
	Annotation   string        `json:"annotation"`
	DefaultValue *string       `json:"default_value,omitempty"`
	HasDefault   bool          `json:"has_default"`
	Position     *int          `json:"position,omitempty"`
	IsOptional   bool          `json:"is_optional"`
}

// Variadic reports whether the parameter is a *args or **kwargs form.
func (p *Parameter) Variadic() bool {
	return p.Kind == VarPositional || p.Kind == VarKeyword
}

// FunctionInspection is the complete inspection of one function signature.
type FunctionInspection struct {
	Name                  string      `json:"name,omitempty"`
	Awaitable             bool        `json:"awaitable"`
	Parameters            []Parameter `json:"parameters"`
	ReturnAnnotation      string      `json:"return_annotation"`
	DetectedAsMethod      bool        `json:"detected_as_method"`
	DetectedAsClassmethod bool        `json:"detected_as_classmethod"`
}

// IsMethod reports whether this is an instance method.
func (f *FunctionInspection) IsMethod() bool {
	return f.DetectedAsMethod
}

// IsClassmethod reports whether this is a class method.
func (f *FunctionInspection) IsClassmethod() bool {
	return f.DetectedAsClassmethod
}

// IsFunction reports whether this is a regular function, not a method.
func (f *FunctionInspection) IsFunction() bool {
	return !f.DetectedAsMethod && !f.DetectedAsClassmethod
}

// IsCoroutineFunction reports whether this is an async function.
func (f *FunctionInspection) IsCoroutineFunction() bool {
	return f.Awaitable
}

// ParamsOfKind returns the parameters of the given kind in signature order.
func (f *FunctionInspection) ParamsOfKind(kind ParameterKind) []Parameter {
	var params []Parameter
	for _, p := range f.Parameters {
		if p.Kind == kind {
			params = append(params, p)
		}
	}
	return params
}

// VarPositionalParam returns the *args parameter if present.
func (f *FunctionInspection) VarPositionalParam() *Parameter {
	for i := range f.Parameters {
		if f.Parameters[i].Kind == VarPositional {
			return &f.Parameters[i]
		}
	}
	return nil
}

// VarKeywordParam returns the **kwargs parameter if present.
func (f *FunctionInspection) VarKeywordParam() *Parameter {
	for i := range f.Parameters {
		if f.Parameters[i].Kind == VarKeyword {
			return &f.Parameters[i]
		}
	}
	return nil
}

// RequiredParams returns the parameters without default values, excluding
// the variadic forms.
func (f *FunctionInspection) RequiredParams() []Parameter {
	var params []Parameter
	for _, p := range f.Parameters {
		if !p.HasDefault && !p.Variadic() {
			params = append(params, p)
		}
	}
	return params
}

// OptionalParams returns the parameters carrying default values.
func (f *FunctionInspection) OptionalParams() []Parameter {
	var params []Parameter
	for _, p := range f.Parameters {
		if p.HasDefault {
			params = append(params, p)
		}
	}
	return params
}

// Annotations returns every annotation string of the signature, with the
// return annotation last.
func (f *FunctionInspection) Annotations() []string {
	annotations := make([]string, 0, len(f.Parameters)+1)
	for _, p := range f.Parameters {
		annotations = append(annotations, p.Annotation)
	}
	return append(annotations, f.ReturnAnnotation)
}
