package payload

import (
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// Schema describes Payload as a closed OpenAPI 3 object: every property is a
// required string or nested object, and unknown properties are rejected.
func Schema() *openapi3.Schema {
	str := func() *openapi3.Schema { return openapi3.NewStringSchema() }
	triple := func() *openapi3.Schema {
		return object(map[string]*openapi3.Schema{
			"min":    str(),
			"max":    str(),
			"normal": str(),
		})
	}

	return object(map[string]*openapi3.Schema{
		"sheetType": str(),
		"company":   str(),
		"location":  str(),
		"layout":    str(),
		"application": object(map[string]*openapi3.Schema{
			"equipmentId":        str(),
			"equipmentType":      str(),
			"equipmentReference": str(),
			"department":         str(),
			"pipingDiagram":      str(),
			"tankId":             str(),
		}),
		"process": object(map[string]*openapi3.Schema{
			"product": str(),
			"chemicalMakeup": object(map[string]*openapi3.Schema{
				"constituents":  str(),
				"concentration": str(),
			}),
			"solidsByVolume":   triple(),
			"solidsByWeight":   triple(),
			"dynamicViscosity": triple(),
			"specificGravity":  triple(),
		}),
	})
}

// ValidateShape checks values against Schema. Callers holding a Payload can
// pass p.Values(); decoded JSON documents can be passed as-is.
func ValidateShape(values map[string]any) error {
	if err := Schema().VisitJSON(values, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("payload: shape: %w", err)
	}
	return nil
}

func object(props map[string]*openapi3.Schema) *openapi3.Schema {
	schema := openapi3.NewObjectSchema().WithProperties(props)
	required := make([]string, 0, len(props))
	for name := range props {
		required = append(required, name)
	}
	sort.Strings(required)
	schema.Required = required
	closed := false
	schema.AdditionalProperties = openapi3.AdditionalProperties{Has: &closed}
	return schema
}
