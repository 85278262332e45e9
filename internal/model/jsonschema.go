package model

import (
	"fmt"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-annotation/internal/schema"
)

// JSONSchema generates the OpenAPI parameter-object schema for the
// inspected signature: one property per parameter, self/cls skipped, an
// array for *args, an open object for **kwargs, and function metadata as a
// vendor extension.
func (f *FunctionInspection) JSONSchema() *spec.Schema {
	properties := make(map[string]spec.Schema)
	required := []string{}

	for _, param := range f.Parameters {
		if param.Name == "self" || param.Name == "cls" {
			continue
		}

		switch param.Kind {
		case VarPositional:
			prop := spec.ArrayProperty(schema.PrimitiveSchema(schema.ANY))
			prop.Description = fmt.Sprintf("Variable positional arguments (*%s)", param.Name)
			properties[param.Name] = *prop

		case VarKeyword:
			prop := schema.PrimitiveSchema(schema.OBJECT)
			prop.AdditionalProperties = &spec.SchemaOrBool{Allows: true}
			prop.Description = fmt.Sprintf("Variable keyword arguments (**%s)", param.Name)
			properties[param.Name] = *prop

		default:
			prop := schema.PrimitiveSchema(schema.AnnotationType(param.Annotation))
			prop.Description = fmt.Sprintf("Parameter %q of kind %s", param.Name, param.Kind)
			if param.HasDefault && param.DefaultValue != nil {
				prop.Default = *param.DefaultValue
			}
			properties[param.Name] = *prop

			if !param.HasDefault {
				required = append(required, param.Name)
			}
		}
	}

	result := &spec.Schema{
		SchemaProps: spec.SchemaProps{
			Type:                 []string{schema.OBJECT},
			Description:          f.schemaDescription(),
			Properties:           properties,
			Required:             required,
			AdditionalProperties: &spec.SchemaOrBool{Allows: false},
		},
	}

	result.AddExtension("x-function-metadata", map[string]interface{}{
		"awaitable":             f.Awaitable,
		"return_annotation":     f.ReturnAnnotation,
		"is_method":             f.IsMethod(),
		"is_classmethod":        f.IsClassmethod(),
		"is_coroutine_function": f.IsCoroutineFunction(),
	})

	return result
}

func (f *FunctionInspection) schemaDescription() string {
	switch {
	case f.IsMethod():
		return "Parameters for instance method"
	case f.IsClassmethod():
		return "Parameters for class method"
	case f.IsCoroutineFunction():
		return "Parameters for async function"
	default:
		return "Parameters for function"
	}
}
