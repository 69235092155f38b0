// Package tscfg compiles a HOCON-style configuration document — one whose
// leaf values carry either concrete defaults or a type-spec DSL string, and
// whose key-preceding comments carry "@define"/"@optional" annotations —
// into a typed intermediate representation (IR) describing the shape every
// value produced against that config must have.
//
// The pipeline runs in two stages, leaves first:
//
//  1. Structural derivation ([structtree]): the flat path/value entry set a
//     [hocon.Config] exposes is folded into a nested Struct tree.
//  2. Typed model building ([model]): the Struct tree is enriched into an
//     [model.ObjectType] by inferring types, parsing the inline type-spec
//     DSL ([typespec]) on leaf strings, and resolving user-defined named
//     types and inheritance via a scoped [namespace.Namespace].
//
// [irschema] renders a built IR as a [jsonschema.Schema], a generic,
// target-language-independent inspection of the shape the IR describes.
// CLI argument parsing and file I/O are layered on top by cmd/tscfg; this
// package exposes the pure transformation. The module contains no
// target-language code emitter.
//
// Typical usage parses a document, builds the model, and renders it:
//
//	conf, err := hocon.Parse(input)
//	cfg := tscfg.NewConfig()
//	result, err := cfg.Build(conf)
//	schema := irschema.Render(result.Root)
package tscfg
