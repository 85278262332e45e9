package schema

import (
	"strings"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-annotation/internal/domain"
)

// annotationTypes maps elementary annotation names to OpenAPI types.
var annotationTypes = map[string]string{
	"str":      STRING,
	"int":      INTEGER,
	"float":    NUMBER,
	"bool":     BOOLEAN,
	"list":     ARRAY,
	"dict":     OBJECT,
	"NoneType": NULL,
	"None":     NULL,
}

// AnnotationType converts an annotation string to its OpenAPI type without
// resolving it: a plain lookup on the cleaned head name. Union and
// optional forms have no single OpenAPI type and map to "any".
func AnnotationType(annotationStr string) string {
	clean := strings.ReplaceAll(annotationStr, "typing.", "")
	clean = strings.TrimSpace(strings.SplitN(clean, "[", 2)[0])

	if strings.Contains(annotationStr, "Union") || strings.Contains(annotationStr, "Optional") {
		return ANY
	}

	switch clean {
	case "List", "Sequence", "Tuple":
		return ARRAY
	case "Dict", "Mapping":
		return OBJECT
	}

	if mapped, ok := annotationTypes[clean]; ok {
		return mapped
	}
	return ANY
}

// TypeRefSchema builds an OpenAPI schema from a resolved type reference.
// Parameterized arrays take their first argument as the item schema and
// parameterized objects take their last argument as the value schema,
// mirroring List[T] and Dict[K, V] conventions.
func TypeRefSchema(ref *domain.TypeRef) *spec.Schema {
	if ref == nil {
		return PrimitiveSchema(ANY)
	}

	var schema *spec.Schema

	switch ref.Kind {
	case domain.KindBoolean:
		schema = PrimitiveSchema(BOOLEAN)
	case domain.KindInteger:
		schema = PrimitiveSchema(INTEGER)
	case domain.KindNumber:
		schema = PrimitiveSchema(NUMBER)
	case domain.KindString:
		schema = PrimitiveSchema(STRING)
	case domain.KindNull:
		schema = PrimitiveSchema(NULL)
	case domain.KindArray:
		var items *spec.Schema
		if len(ref.Args) > 0 {
			items = TypeRefSchema(ref.Args[0])
		}
		schema = spec.ArrayProperty(items)
	case domain.KindObject:
		if len(ref.Args) > 0 {
			schema = spec.MapProperty(TypeRefSchema(ref.Args[len(ref.Args)-1]))
		} else {
			schema = PrimitiveSchema(OBJECT)
		}
	case domain.KindClass:
		schema = PrimitiveSchema(OBJECT)
		schema.Title = ref.FullName()
	default:
		schema = PrimitiveSchema(ANY)
	}

	if ref.Nullable {
		schema.AddExtension("x-nullable", true)
	}

	return schema
}
