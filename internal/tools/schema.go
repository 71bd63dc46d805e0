package tools

import (
	"reflect"
	"slices"

	"github.com/google/jsonschema-go/jsonschema"
)

// GenerateSchema generates the input schema of a tool. Nullable fields are
// rewritten to "nullable": true instead of type arrays, which some clients
// (the Gemini API among them) reject, and content_format is restricted to
// the supported formats.
func GenerateSchema[T any]() *jsonschema.Schema {
	schema, err := jsonschema.ForType(reflect.TypeFor[T](), &jsonschema.ForOptions{})
	if err != nil {
		// Should not happen for valid Go types used in tools
		panic(err)
	}
	walkSchema(schema, fixNullable)
	if prop, ok := schema.Properties["content_format"]; ok {
		for _, f := range ContentFormatValues {
			prop.Enum = append(prop.Enum, f)
		}
	}
	return schema
}

// fixNullable replaces ["type", "null"] with "type" and nullable: true
func fixNullable(s *jsonschema.Schema) {
	if len(s.Types) != 2 || !slices.Contains(s.Types, "null") {
		return
	}
	for _, t := range s.Types {
		if t != "null" {
			s.Type = t
		}
	}
	s.Types = nil
	if s.Extra == nil {
		s.Extra = make(map[string]any)
	}
	s.Extra["nullable"] = true
}

// walkSchema calls fn on s and every schema nested in it
func walkSchema(s *jsonschema.Schema, fn func(*jsonschema.Schema)) {
	if s == nil {
		return
	}
	fn(s)

	for _, prop := range s.Properties {
		walkSchema(prop, fn)
	}
	for _, def := range s.Definitions {
		walkSchema(def, fn)
	}
	for _, def := range s.Defs {
		walkSchema(def, fn)
	}
	for _, group := range [][]*jsonschema.Schema{s.ItemsArray, s.OneOf, s.AnyOf, s.AllOf} {
		for _, sub := range group {
			walkSchema(sub, fn)
		}
	}
	for _, sub := range []*jsonschema.Schema{s.Items, s.AdditionalProperties, s.Not, s.If, s.Then, s.Else} {
		walkSchema(sub, fn)
	}
}
