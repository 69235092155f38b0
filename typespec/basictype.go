package typespec

import "fmt"

// Kind enumerates the atomic type names tscfg recognizes in the type-spec
// DSL.
type Kind int

const (
	// KindString is a string-valued field.
	KindString Kind = iota
	// KindBoolean is a boolean-valued field.
	KindBoolean
	// KindInteger is a 32-bit integer field.
	KindInteger
	// KindLong is a 64-bit integer field.
	KindLong
	// KindDouble is a floating point field.
	KindDouble
	// KindDuration is a duration field, carrying its display unit.
	KindDuration
	// KindSize is a byte-size field (e.g. "4KiB").
	KindSize
)

// String returns the lowercase type-spec name for k.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "int"
	case KindLong:
		return "long"
	case KindDouble:
		return "double"
	case KindDuration:
		return "duration"
	case KindSize:
		return "size"
	default:
		return "unknown"
	}
}

// BasicType is an atomic type. Unit is only meaningful when Kind is
// KindDuration; it names the display unit (e.g. "seconds", "ms") carried
// by a qualified duration type.
type BasicType struct {
	Kind Kind
	Unit string
}

// String renders bt the way error messages and debug output expect.
func (bt BasicType) String() string {
	if bt.Kind == KindDuration && bt.Unit != "" {
		return fmt.Sprintf("duration:%s", bt.Unit)
	}

	return bt.Kind.String()
}

// atomicTypes is the fixed lookup table of type-spec DSL base type names.
var atomicTypes = map[string]Kind{
	"string":   KindString,
	"boolean":  KindBoolean,
	"int":      KindInteger,
	"long":     KindLong,
	"double":   KindDouble,
	"duration": KindDuration,
	"size":     KindSize,
}

// lookupAtomic returns the Kind named by base, and whether base names a
// known atomic type.
func lookupAtomic(base string) (Kind, bool) {
	k, ok := atomicTypes[base]

	return k, ok
}
