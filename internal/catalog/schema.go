package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const poolsSchemaURL = "schema://question-pools.json"

// poolsSchema describes the serialized form of a set of question pools.
var poolsSchema = map[string]any{
	"type":          "object",
	"minProperties": 1,
	"propertyNames": map[string]any{
		"pattern": "^[a-z][a-z0-9_]*$",
	},
	"additionalProperties": map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":    "string",
					"pattern": "^[A-Za-z0-9_.-]+$",
				},
				"text": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
				"priority": map[string]any{
					"type":    "integer",
					"minimum": 1,
					"maximum": 5,
				},
				"options": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"key": map[string]any{
								"type":    "string",
								"pattern": "^[A-Za-z0-9]{1,4}$",
							},
							"text": map[string]any{
								"type":      "string",
								"minLength": 1,
							},
						},
						"required":             []any{"key", "text"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"id", "text", "priority", "options"},
			"additionalProperties": false,
		},
	},
}

var compilePoolsSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants a decoded JSON value, not Go maps with typed slices.
	defBytes, err := json.Marshal(poolsSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(poolsSchemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(poolsSchemaURL)
})

// ValidateSchema checks the serialized shape of pools against the catalog
// JSON schema. Returns a *ConfigurationError on failure.
func ValidateSchema(pools map[Domain][]Question) error {
	compiled, err := compilePoolsSchema()
	if err != nil {
		return &ConfigurationError{Err: fmt.Errorf("compile schema: %w", err)}
	}

	raw, err := json.Marshal(pools)
	if err != nil {
		return &ConfigurationError{Err: fmt.Errorf("marshal pools: %w", err)}
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ConfigurationError{Err: fmt.Errorf("parse pools: %w", err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ConfigurationError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}
