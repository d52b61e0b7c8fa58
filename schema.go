package enumset

import "github.com/invopop/jsonschema"

// JSONSchema returns a JSON Schema that accepts exactly the enumeration's
// keys, in member order. Use it to compose the enumeration with schema-based
// validation pipelines.
func (e *Enum) JSONSchema() *jsonschema.Schema {
	values := make([]any, len(e.keys))
	for i, k := range e.keys {
		values[i] = k
	}
	return &jsonschema.Schema{
		Title: e.name,
		Type:  "string",
		Enum:  values,
	}
}
