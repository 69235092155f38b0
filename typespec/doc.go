// Package typespec implements the embedded type-spec DSL used by leaf
// string values in a tscfg config: "type[?][:qualifier][ | default]", plus
// the bare duration/size literal grammar HOCON itself defines (e.g. "10ms",
// "4KiB").
//
// ParseSpec is the single entry point; it applies the grammar's precedence
// rules in order and reports ok=false when the value string does not
// describe a type at all (callers then fall back to treating it as a plain
// default string).
package typespec
