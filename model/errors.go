package model

import (
	"errors"
	"fmt"
)

// ErrNullValue reports a NULL-kinded config value reaching a dispatch that
// has no case for it: an unreachable branch in a well-formed config tree.
var ErrNullValue = errors.New("model: unexpected null value")

// ErrEmptyList reports a list literal with no elements.
var ErrEmptyList = errors.New("model: empty list literal")

// ExtendsError reports a field's "@define extends P" directive naming a P
// that isn't a visible, registered abstract define.
type ExtendsError struct {
	Field  string
	Parent string
	Reason string
}

func (e *ExtendsError) Error() string {
	return fmt.Sprintf("field %q extends %q: %s", e.Field, e.Parent, e.Reason)
}
