// Package irschema renders a built model.ObjectType as a JSON Schema
// document, giving the IR a generic, inspectable view independent of any
// target-language emitter: plain *jsonschema.Schema construction, no
// intermediate AST of its own.
package irschema
