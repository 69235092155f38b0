// Package structtree reconstructs the nested tree of names implied by a
// flat set of dotted config paths.
//
// The resulting Struct tree carries only structure (names and
// containment) — no values, no types, no annotations. It exists so the
// model builder can ask "does this child have members" without consulting
// the config value's own kind, decoupling structural shape from value
// classification.
package structtree
