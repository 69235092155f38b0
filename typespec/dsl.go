package typespec

import (
	"regexp"
	"strings"
)

// Spec is the parsed result of the type-spec DSL: a basic type, whether the
// field is optional, and an optional default-value token (still a raw
// string; parsing it into a concrete value is a target emitter's concern).
type Spec struct {
	Type     BasicType
	Optional bool
	Default  *string
}

// durationPattern matches a bare HOCON duration literal: a signed decimal
// number immediately (optionally with whitespace) followed by a duration
// unit, long or short form.
var durationPattern = regexp.MustCompile(
	`^\s*[+-]?[0-9]+(?:\.[0-9]+)?\s*(?:ns|nanoseconds?|us|µs|microseconds?|ms|milliseconds?|s|seconds?|m|minutes?|h|hours?|d|days?)\s*$`,
)

// sizePattern matches a bare HOCON memory-size literal: a decimal number
// followed by a byte-size unit (SI or IEC, long or short form).
var sizePattern = regexp.MustCompile(
	`^\s*[0-9]+(?:\.[0-9]+)?\s*(?:B|b|` +
		`kB|KB|MB|GB|TB|PB|EB|ZB|YB|` +
		`KiB|MiB|GiB|TiB|PiB|EiB|ZiB|YiB|` +
		`bytes?|kilobytes?|megabytes?|gigabytes?|terabytes?|petabytes?|exabytes?|` +
		`kibibytes?|mebibytes?|gibibytes?|tebibytes?|pebibytes?|exbibytes?)\s*$`,
)

// ParseSpec parses a leaf value string, applying the precedence rules in
// order: bare duration literal, bare size literal, then the
// "type[?][:qualifier][ | default]" grammar. ok is false when value names
// no recognizable type at all, in which case the caller should treat value
// as a plain default string.
func ParseSpec(value string) (spec Spec, ok bool) {
	if durationPattern.MatchString(value) {
		// A bare duration literal (e.g. "10ms") is reported in milliseconds,
		// the underlying HOCON parser's default getDuration unit, regardless
		// of the unit written in the literal itself.
		return Spec{
			Type:     BasicType{Kind: KindDuration, Unit: "ms"},
			Optional: true,
			Default:  ptr(value),
		}, true
	}

	if sizePattern.MatchString(value) {
		return Spec{
			Type:     BasicType{Kind: KindSize},
			Optional: true,
			Default:  ptr(value),
		}, true
	}

	typePart, defaultToken, hasDefault := splitOnce(value, "|")

	typePart = strings.ToLower(strings.TrimSpace(typePart))

	isOpt := hasDefault

	if after, cut := strings.CutSuffix(typePart, "?"); cut {
		typePart = after
		isOpt = true
	}

	base, qualification, hasQual := splitOnce(typePart, ":")
	base = strings.TrimSpace(base)

	kind, known := lookupAtomic(base)
	if !known {
		return Spec{}, false
	}

	bt := BasicType{Kind: kind}

	if kind == KindDuration && hasQual {
		bt.Unit = strings.TrimSpace(qualification)
	}

	var def *string

	if hasDefault {
		def = ptr(strings.TrimSpace(defaultToken))
	}

	return Spec{Type: bt, Optional: isOpt, Default: def}, true
}

// splitOnce splits s on the first occurrence of sep into at most two parts,
// trimming surrounding whitespace from each. ok reports whether sep was
// found.
func splitOnce(s, sep string) (first, second string, ok bool) {
	i := strings.Index(s, sep)
	if i < 0 {
		return strings.TrimSpace(s), "", false
	}

	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(sep):]), true
}

func ptr(s string) *string {
	return &s
}
