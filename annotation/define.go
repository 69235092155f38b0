package annotation

import (
	"fmt"
	"strings"
)

// Kind tags the variant of an extracted @define directive.
type Kind int

const (
	// Plain marks a bare "@define".
	Plain Kind = iota
	// Abstract marks "@define abstract".
	Abstract
	// Extends marks "@define extends <Name>".
	Extends
	// Enum marks "@define enum".
	Enum
)

// DefineCase is the tag extracted from a @define comment.
type DefineCase struct {
	Kind   Kind
	Parent string // only set when Kind == Extends
}

// IsParent reports whether the define registers as a parent class other
// fields may extend. A plain "@define extends" registers a concrete,
// non-extensible define, not a further-extensible parent.
func (d DefineCase) IsParent() bool {
	return d.Kind == Abstract
}

// IsEnum reports whether the define marks its value as an enumeration.
func (d DefineCase) IsEnum() bool {
	return d.Kind == Enum
}

// ObjectDefinitionError reports a malformed or duplicated @define directive.
// It is fatal to the build.
type ObjectDefinitionError struct {
	Name string
	Msg  string
}

func (e *ObjectDefinitionError) Error() string {
	return fmt.Sprintf("object definition error for %q: %s", e.Name, e.Msg)
}

// ReadDefine extracts the single @define directive, if any, from comments:
// the trimmed lines preceding a key. name is used only to annotate error
// messages. Returns (nil, nil) when no @define line is present.
func ReadDefine(name string, comments []string) (*DefineCase, error) {
	var found []string

	for _, c := range comments {
		t := strings.TrimSpace(c)
		if strings.HasPrefix(t, "@define") {
			found = append(found, t)
		}
	}

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		dc, err := parseDefine(found[0])
		if err != nil {
			return nil, &ObjectDefinitionError{Name: name, Msg: err.Error()}
		}

		return dc, nil
	default:
		return nil, &ObjectDefinitionError{Name: name, Msg: fmt.Sprintf("multiple @define's for %s", name)}
	}
}

func parseDefine(line string) (*DefineCase, error) {
	const extendsPrefix = "@define extends "

	switch {
	case line == "@define":
		return &DefineCase{Kind: Plain}, nil
	case line == "@define abstract":
		return &DefineCase{Kind: Abstract}, nil
	case line == "@define enum":
		return &DefineCase{Kind: Enum}, nil
	case strings.HasPrefix(line, extendsPrefix):
		parent := strings.TrimSpace(strings.TrimPrefix(line, extendsPrefix))
		if parent == "" {
			return nil, fmt.Errorf("malformed @define: %q", line)
		}

		return &DefineCase{Kind: Extends, Parent: parent}, nil
	default:
		return nil, fmt.Errorf("malformed @define: %q", line)
	}
}

// OptFromComments reports whether any trimmed comment line starts with
// "@optional".
func OptFromComments(comments []string) bool {
	for _, c := range comments {
		if strings.HasPrefix(strings.TrimSpace(c), "@optional") {
			return true
		}
	}

	return false
}
