package typespec

import (
	"errors"
	"strconv"
)

// ErrNotNumeric is returned by NarrowNumeric when a value the config parser
// already classified as NUMBER fails to parse under any of tscfg's three
// numeric kinds — a case that should never occur for a well-formed numeric
// literal.
var ErrNotNumeric = errors.New("value not a parseable number")

// NarrowNumeric picks the narrowest of KindInteger, KindLong, KindDouble
// that parses s, a numeric literal's decimal string form, trying each in
// that order.
func NarrowNumeric(s string) (BasicType, error) {
	if _, err := strconv.ParseInt(s, 10, 32); err == nil {
		return BasicType{Kind: KindInteger}, nil
	}

	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return BasicType{Kind: KindLong}, nil
	}

	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return BasicType{Kind: KindDouble}, nil
	}

	return BasicType{}, ErrNotNumeric
}
