// Package hocon defines tscfg's input contract — the parsed config tree the
// rest of the pipeline consumes — and a minimal, hand-rolled reader for the
// HOCON subset tscfg needs: braces-delimited objects, dotted bare keys as
// path shorthand, arrays, quoted and bare scalars, and "#"/"//" line
// comments attached to the key that follows them.
//
// This package is intentionally small: it exists to give the CLI and the
// end-to-end tests something concrete to run against, not to be a complete
// HOCON implementation. It implements exactly the surface the rest of the
// pipeline requires of "the parser": EntrySet, GetValue, GetConfig on
// Config, and ValueType/Unwrapped/Render/Origin on Value.
package hocon
