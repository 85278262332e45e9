package domain

import "fmt"

// Status classifies the result of a resolution call.
type Status string

const (
	// StatusResolved means a concrete type reference was produced.
	StatusResolved Status = "resolved"
	// StatusNotFound means the annotation was syntactically handled but the
	// symbol is absent from every consulted layer. Recoverable, not an error.
	StatusNotFound Status = "not_found"
	// StatusMissingDependency means the annotation requires a module that was
	// never made available. A hard, reportable condition distinct from
	// StatusNotFound.
	StatusMissingDependency Status = "missing_dependency"
)

// Outcome is the result of resolving one annotation string.
type Outcome struct {
	Status        Status   `json:"status"`
	Annotation    string   `json:"annotation"`
	Ref           *TypeRef `json:"ref,omitempty"`
	MissingModule string   `json:"missing_module,omitempty"`
}

// ResolvedOutcome creates a successful outcome.
func ResolvedOutcome(annotation string, ref *TypeRef) *Outcome {
	return &Outcome{Status: StatusResolved, Annotation: annotation, Ref: ref}
}

// NotFoundOutcome creates a not-found outcome.
func NotFoundOutcome(annotation string) *Outcome {
	return &Outcome{Status: StatusNotFound, Annotation: annotation}
}

// MissingDependencyOutcome creates a missing-dependency outcome carrying the
// missing module root and the original annotation text verbatim.
func MissingDependencyOutcome(annotation, module string) *Outcome {
	return &Outcome{
		Status:        StatusMissingDependency,
		Annotation:    annotation,
		MissingModule: module,
	}
}

// Resolved reports whether the outcome carries a resolved reference.
func (o *Outcome) Resolved() bool {
	return o != nil && o.Status == StatusResolved
}

// Err returns the outcome as an error. Only a missing dependency converts to
// a non-nil error; not-found is an ordinary return value by policy.
func (o *Outcome) Err() error {
	if o == nil || o.Status != StatusMissingDependency {
		return nil
	}
	return &MissingDependencyError{
		Module:     o.MissingModule,
		Annotation: o.Annotation,
	}
}

// MissingDependencyError reports that an annotation names a module that was
// never made available to the resolver.
type MissingDependencyError struct {
	Module     string
	Annotation string
}

// Error implements the error interface.
func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("module %q required for annotation %q is not imported", e.Module, e.Annotation)
}
