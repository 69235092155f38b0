package structtree

import "github.com/sebastian-peter/tscfg/keypath"

// Struct is a node in the name tree derived from a config's flat path set.
// A leaf Struct (no Members) corresponds to a scalar or list config value;
// a non-leaf Struct corresponds to an object value.
type Struct struct {
	Name    string
	Members []*Struct
}

// IsLeaf reports whether s has no members.
func (s *Struct) IsLeaf() bool {
	return len(s.Members) == 0
}

// Member returns the immediate child named name, if any.
func (s *Struct) Member(name string) (*Struct, bool) {
	for _, m := range s.Members {
		if m.Name == name {
			return m, true
		}
	}

	return nil, false
}

// Build folds a flat set of dotted paths into a nested Struct tree rooted
// at the empty path. Paths are assumed already split on unquoted dots by
// the caller (normally hocon.Config.EntrySet's Path strings).
//
// Invariant: every path in paths produces exactly one leaf Struct reachable
// from the root by following its dot-separated segments; intermediate
// Structs are created on demand and shared across paths with a common
// prefix.
func Build(paths []string) *Struct {
	index := map[string]*Struct{"": {Name: ""}}

	get := func(path string) *Struct {
		if s, ok := index[path]; ok {
			return s
		}

		s := &Struct{Name: keypath.SimpleOf(path)}
		index[path] = s

		return s
	}

	var attach func(path string)

	attach = func(path string) {
		if path == "" {
			return
		}

		child := get(path)
		parentPath := keypath.ParentOf(path)
		parent := get(parentPath)

		if _, exists := parent.Member(child.Name); !exists {
			parent.Members = append(parent.Members, child)
		}

		attach(parentPath)
	}

	for _, p := range paths {
		get(p)
		attach(p)
	}

	return index[""]
}
