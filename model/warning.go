package model

import "sort"

// Warning is a non-fatal diagnostic produced while building the model.
type Warning struct {
	Line    int
	Source  string
	Message string
}

// MultElemListWarning reports a list literal with more than one element;
// only the first element's type is used.
func MultElemListWarning(line int, source string) Warning {
	return Warning{
		Line:    line,
		Source:  source,
		Message: "list has more than one element, only the first is used",
	}
}

// OptListElemWarning reports a list's first element DSL-parsing as
// optional, a property lists themselves don't carry.
func OptListElemWarning(line int, source string) Warning {
	return Warning{
		Line:    line,
		Source:  source,
		Message: "list element type is optional, this has no effect on the list itself",
	}
}

// DefaultListElemWarning reports a list's first element DSL-parsing with a
// default, a property lists themselves don't carry.
func DefaultListElemWarning(line int, source string) Warning {
	return Warning{
		Line:    line,
		Source:  source,
		Message: "list element type carries a default, this has no effect on the list itself",
	}
}

// Warnings is the mutable, append-only buffer threaded through one build
// call, passed explicitly through the builder rather than held as ambient
// mutable state.
type Warnings struct {
	items []Warning
}

// Add appends warning to the buffer.
func (w *Warnings) Add(warning Warning) {
	w.items = append(w.items, warning)
}

// Sorted returns the collected warnings ordered by line number, the order
// Result exposes them in.
func (w *Warnings) Sorted() []Warning {
	out := make([]Warning, len(w.items))
	copy(out, w.items)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Line < out[j].Line
	})

	return out
}
