package options

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/KirkDiggler/aus-world/internal/errors"
)

const schemaURL = "https://aus-world/options.schema.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// JSONSchema renders the option definitions as a JSON Schema document.
// Name strings are listed in lower case; Validate folds case before
// checking.
func JSONSchema() ([]byte, error) {
	props := make(map[string]any, len(definitions))
	for _, d := range definitions {
		props[d.Key] = definitionSchema(d)
	}

	doc := map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"$id":                  schemaURL,
		"title":                "An Untitled Story options",
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
	return json.MarshalIndent(doc, "", "  ")
}

func definitionSchema(d Definition) map[string]any {
	out := map[string]any{
		"title":       d.DisplayName,
		"description": d.Description,
	}

	number := map[string]any{"type": "integer", "minimum": d.Min, "maximum": d.Max}
	numeric := map[string]any{"type": "string", "pattern": "^-?[0-9]+$"}

	switch d.Kind {
	case KindRange:
		out["default"] = d.Default
		out["oneOf"] = []any{number, numeric}
		return out
	case KindToggle:
		out["default"] = d.Default == 1
		out["oneOf"] = []any{
			map[string]any{"type": "boolean"},
			number,
			numeric,
			map[string]any{"type": "string", "enum": d.nameList()},
		}
		return out
	case KindChoice:
		values := make([]int, len(d.Names))
		for i, n := range d.Names {
			values[i] = n.Value
		}
		number = map[string]any{"type": "integer", "enum": values}
	}

	out["default"] = d.Name(d.Default)
	out["oneOf"] = []any{
		number,
		numeric,
		map[string]any{"type": "string", "enum": d.nameList()},
	}
	return out
}

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var doc []byte
		doc, compileErr = JSONSchema()
		if compileErr != nil {
			return
		}

		compiler := jsonschema.NewCompiler()
		if compileErr = compiler.AddResource(schemaURL, bytes.NewReader(doc)); compileErr != nil {
			return
		}
		compiled, compileErr = compiler.Compile(schemaURL)
	})
	if compileErr != nil {
		return nil, errors.Wrap(compileErr, "failed to compile options schema")
	}
	return compiled, nil
}

// Validate checks a raw option document against JSONSchema. The document
// may come from YAML or JSON; it is normalised to JSON values first.
func Validate(doc map[string]any) error {
	s, err := schema()
	if err != nil {
		return err
	}

	normalized, err := normalize(doc)
	if err != nil {
		return err
	}

	if err := s.Validate(normalized); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "options document does not match schema").
			WithMeta("schema_error", err.Error())
	}
	return nil
}

func normalize(doc map[string]any) (any, error) {
	if doc == nil {
		doc = map[string]any{}
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "options document is not representable as JSON")
	}

	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, errors.Wrap(err, "failed to decode normalised options")
	}
	for k, v := range out {
		if s, ok := v.(string); ok {
			out[k] = strings.ToLower(strings.TrimSpace(s))
		}
	}
	return out, nil
}
