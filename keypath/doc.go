// Package keypath provides the dotted-path utilities shared by the rest of
// tscfg's pipeline: splitting a flat config path into parent/simple
// segments and recognizing the root path.
//
// A Key never owns allocation beyond the string it wraps; Parent and Simple
// are cheap substring operations over the original dotted path.
package keypath
