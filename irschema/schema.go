package irschema

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/sebastian-peter/tscfg/model"
	"github.com/sebastian-peter/tscfg/typespec"
)

// JSON Schema "type" keyword values.
const (
	typeBoolean = "boolean"
	typeInteger = "integer"
	typeNumber  = "number"
	typeString  = "string"
	typeArray   = "array"
	typeObject  = "object"
)

// Render converts a built model.ObjectType into a JSON Schema document
// describing the shape every value produced against that IR must have.
func Render(root *model.ObjectType) *jsonschema.Schema {
	return objectSchema(root.Members)
}

// objectSchema renders members as an object schema: Properties keyed by
// field name, PropertyOrder following the order of members, Required listing
// every non-optional field, and AdditionalProperties pinned false — a
// tscfg object never tolerates unknown keys.
func objectSchema(members []model.Member) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:                 typeObject,
		Properties:           make(map[string]*jsonschema.Schema, len(members)),
		AdditionalProperties: FalseSchema(),
	}

	for _, m := range members {
		schema.Properties[m.Name] = fieldSchema(m.Ann)
		schema.PropertyOrder = append(schema.PropertyOrder, m.Name)

		if !m.Ann.Optional {
			schema.Required = append(schema.Required, m.Name)
		}
	}

	return schema
}

// fieldSchema renders a single AnnType: the underlying type's schema,
// enriched with the field's source comments (as Description) and default
// value.
func fieldSchema(ann *model.AnnType) *jsonschema.Schema {
	s := typeSchema(ann.T)

	if ann.Comments != nil {
		s.Description = *ann.Comments
	}

	if ann.Default != nil {
		s.Default = DefaultValue(*ann.Default)
	}

	return s
}

// typeSchema dispatches on the IR's Type sum.
func typeSchema(t model.Type) *jsonschema.Schema {
	switch v := t.(type) {
	case model.Basic:
		return basicSchema(v.BasicType)
	case *model.ObjectType:
		return objectSchema(v.Members)
	case *model.AbstractObjectType:
		// Never instantiated directly, but still renders its own shape for
		// inspection — schema consumers never see an AbstractObjectType
		// value anyway, since the model builder filters it from every
		// ObjectType's Members.
		return objectSchema(v.Members)
	case *model.EnumObjectType:
		return enumSchema(v.Values)
	case *model.ListType:
		return &jsonschema.Schema{Type: typeArray, Items: typeSchema(v.Element)}
	default:
		return TrueSchema()
	}
}

func basicSchema(bt typespec.BasicType) *jsonschema.Schema {
	switch bt.Kind {
	case typespec.KindString:
		return &jsonschema.Schema{Type: typeString}
	case typespec.KindBoolean:
		return &jsonschema.Schema{Type: typeBoolean}
	case typespec.KindInteger, typespec.KindLong:
		return &jsonschema.Schema{Type: typeInteger}
	case typespec.KindDouble:
		return &jsonschema.Schema{Type: typeNumber}
	case typespec.KindDuration, typespec.KindSize:
		// Duration/size values are carried as qualified string literals
		// (e.g. "5 s", "4KiB"); the schema only asserts their wire shape.
		return &jsonschema.Schema{Type: typeString}
	default:
		return TrueSchema()
	}
}

func enumSchema(values []string) *jsonschema.Schema {
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = v
	}

	return &jsonschema.Schema{Type: typeString, Enum: enum}
}

// RenderEffective is like Render, but for a single AnnType that carries
// ParentClassMembers (populated via "@define extends"): parent fields are
// listed ahead of the field's own so the rendered shape matches what a
// generated accessor actually exposes.
func RenderEffective(ann *model.AnnType) *jsonschema.Schema {
	obj, ok := ann.T.(*model.ObjectType)
	if !ok || len(ann.ParentClassMembers) == 0 {
		return fieldSchema(ann)
	}

	members := make([]model.Member, 0, len(ann.ParentClassMembers)+len(obj.Members))
	members = append(members, ann.ParentClassMembers...)
	members = append(members, obj.Members...)

	s := objectSchema(members)
	if ann.Comments != nil {
		s.Description = *ann.Comments
	}

	return s
}

// DefaultValue converts a Go value to a json.RawMessage suitable for use as
// a JSON Schema default.
func DefaultValue(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	return b
}

// TrueSchema returns a schema that validates everything.
func TrueSchema() *jsonschema.Schema {
	return &jsonschema.Schema{}
}

// FalseSchema returns a schema that validates nothing: the JSON Schema
// representation for a boolean "false" schema.
func FalseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}
