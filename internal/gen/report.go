package gen

import (
	"sort"
	"strings"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-annotation/internal/domain"
	"github.com/griffnb/core-annotation/internal/model"
	"github.com/griffnb/core-annotation/internal/orchestrator"
	"github.com/griffnb/core-annotation/internal/schema"
)

// Report is the generated resolution report.
type Report struct {
	Title          string           `json:"title"`
	Functions      []FunctionReport `json:"functions"`
	MissingModules []string         `json:"missing_modules,omitempty"`
}

// FunctionReport covers one inspected function.
type FunctionReport struct {
	Name       string             `json:"name,omitempty"`
	Schema     *spec.Schema       `json:"schema"`
	Parameters []AnnotationReport `json:"parameters"`
	Return     AnnotationReport   `json:"return"`
}

// AnnotationReport covers one resolved annotation.
type AnnotationReport struct {
	Name          string          `json:"name,omitempty"`
	Annotation    string          `json:"annotation"`
	Status        domain.Status   `json:"status"`
	Type          *domain.TypeRef `json:"type,omitempty"`
	OpenAPIType   string          `json:"openapi_type"`
	MissingModule string          `json:"missing_module,omitempty"`
}

// buildReport resolves every annotation of every inspection and assembles
// the report. Each function's annotations resolve as one parallel batch.
func (g *Gen) buildReport(config *Config, orc *orchestrator.Service, inspections []model.FunctionInspection, scope domain.Scope) *Report {
	report := &Report{
		Title: titleCaser.String(strings.ReplaceAll(config.InstanceName, "_", " ")),
	}

	missing := make(map[string]struct{})

	for i := range inspections {
		insp := &inspections[i]

		// The return annotation is last in the batch by contract.
		outcomes := orc.ResolveAll(insp.Annotations(), scope)

		fn := FunctionReport{
			Name:   insp.Name,
			Schema: insp.JSONSchema(),
		}

		for j, param := range insp.Parameters {
			fn.Parameters = append(fn.Parameters, annotationReport(param.Name, outcomes[j]))
		}
		fn.Return = annotationReport("", outcomes[len(outcomes)-1])

		for _, outcome := range outcomes {
			if outcome.Status == domain.StatusMissingDependency {
				missing[outcome.MissingModule] = struct{}{}
			}
		}

		report.Functions = append(report.Functions, fn)
	}

	for module := range missing {
		report.MissingModules = append(report.MissingModules, module)
	}
	sort.Strings(report.MissingModules)

	return report
}

func annotationReport(name string, outcome *domain.Outcome) AnnotationReport {
	return AnnotationReport{
		Name:          name,
		Annotation:    outcome.Annotation,
		Status:        outcome.Status,
		Type:          outcome.Ref,
		OpenAPIType:   schema.AnnotationType(outcome.Annotation),
		MissingModule: outcome.MissingModule,
	}
}
