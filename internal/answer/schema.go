package answer

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const valueSchemaURL = "schema://answer-value.json"

var nonNegativeInteger = map[string]any{"type": "integer", "minimum": 0}

var stringArray = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

var point2D = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"x": map[string]any{"type": "number"},
		"y": map[string]any{"type": "number"},
	},
	"required": []any{"x", "y"},
}

var fractionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"is_negative":  map[string]any{"type": "boolean"},
		"whole_number": nonNegativeInteger,
		"numerator":    nonNegativeInteger,
		"denominator":  nonNegativeInteger,
	},
	"required":             []any{"numerator", "denominator"},
	"additionalProperties": false,
}

// payloadSchemas gives the shape of "value" for each variant.
var payloadSchemas = map[Tag]map[string]any{
	TagNormalizedString: {"type": "string"},
	TagSignedInt:        {"type": "integer"},
	TagNonNegativeInt:   nonNegativeInteger,
	TagReal:             {"type": "number"},
	TagBool:             {"type": "boolean"},
	TagNumberWithUnits: {
		"type": "object",
		"properties": map[string]any{
			"kind":     map[string]any{"enum": []any{string(NumberKindReal), string(NumberKindFraction)}},
			"real":     map[string]any{"type": "number"},
			"fraction": fractionSchema,
			"units": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"unit":     map[string]any{"type": "string", "minLength": 1},
						"exponent": map[string]any{"type": "integer"},
					},
					"required": []any{"unit", "exponent"},
				},
			},
		},
		"required": []any{"kind"},
	},
	TagSetOfHTMLString: stringArray,
	TagFraction:        fractionSchema,
	TagListOfSetsOfHTMLString: {
		"type":  "array",
		"items": stringArray,
	},
	TagImageWithRegions: {
		"type": "object",
		"properties": map[string]any{
			"image_path": map[string]any{"type": "string"},
			"labeled_regions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"label": map[string]any{"type": "string"},
						"area": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"upper_left":  point2D,
								"lower_right": point2D,
							},
							"required": []any{"upper_left", "lower_right"},
						},
					},
					"required": []any{"label", "area"},
				},
			},
		},
		"required": []any{"image_path"},
	},
	TagClickOnImage: {
		"type": "object",
		"properties": map[string]any{
			"click_position":  point2D,
			"clicked_regions": stringArray,
		},
		"required": []any{"click_position"},
	},
	TagRatioExpression: {
		"type":  "array",
		"items": nonNegativeInteger,
	},
}

// valueSchemaDefinition builds the schema for one encoded Value:
// {"type": "<TAG>", "value": <payload>}.
func valueSchemaDefinition() map[string]any {
	var names []any
	var branches []any
	for _, tag := range AllTags() {
		names = append(names, tag.String())
		branches = append(branches, map[string]any{
			"if": map[string]any{
				"properties": map[string]any{"type": map[string]any{"const": tag.String()}},
			},
			"then": map[string]any{
				"properties": map[string]any{"value": payloadSchemas[tag]},
			},
		})
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type":  map[string]any{"enum": names},
			"value": map[string]any{},
		},
		"required":             []any{"type", "value"},
		"additionalProperties": false,
		"allOf":                branches,
	}
}

var compiledValueSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler expects a decoded JSON document, so round-trip the
	// Go map through encoding/json.
	defBytes, err := json.Marshal(valueSchemaDefinition())
	if err != nil {
		return nil, fmt.Errorf("marshal value schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse value schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(valueSchemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(valueSchemaURL)
})

// validateDocument checks a decoded JSON document against the value schema.
func validateDocument(doc any) error {
	schema, err := compiledValueSchema()
	if err != nil {
		return fmt.Errorf("compile value schema: %w", err)
	}
	return schema.Validate(doc)
}
