package tools

import (
	"github.com/invopop/jsonschema"
)

var schemaReflector = jsonschema.Reflector{
	AllowAdditionalProperties: false,
	DoNotReference:            true,
}

// GenerateParams derives a descriptor's parameters mapping and required
// list from a Go input struct. Field names come from json tags,
// descriptions from jsonschema_description tags.
func GenerateParams[T any]() (map[string]ParamSpec, []string) {
	var v T
	schema := schemaReflector.Reflect(&v)

	params := map[string]ParamSpec{}
	if schema.Properties != nil {
		for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
			params[pair.Key] = ParamSpec{
				Type:        pair.Value.Type,
				Description: pair.Value.Description,
			}
		}
	}

	required := schema.Required
	if required == nil {
		required = []string{}
	}
	return params, required
}
