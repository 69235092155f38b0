package keypath

import "strings"

// Key is an ordered sequence of dot-separated identifiers. The zero value
// is Root, the empty key.
type Key struct {
	path string
}

// Root is the empty key: the top of the config tree.
var Root = Key{}

// New wraps a dotted path string as a Key.
func New(path string) Key {
	return Key{path: path}
}

// String returns the underlying dotted path.
func (k Key) String() string {
	return k.path
}

// IsRoot reports whether k is the empty key.
func (k Key) IsRoot() bool {
	return k.path == ""
}

// Parent returns the key with its last segment dropped, or Root if k has no
// parent (k is already Root or a single segment).
func (k Key) Parent() Key {
	return Key{path: ParentOf(k.path)}
}

// Simple returns the last dot-separated segment of k, or the whole path if
// it contains no dot.
func (k Key) Simple() string {
	return SimpleOf(k.path)
}

// Child returns the key formed by appending name as a new final segment.
func (k Key) Child(name string) Key {
	if k.IsRoot() {
		return Key{path: name}
	}

	return Key{path: k.path + "." + name}
}

// ParentOf returns the substring of path before the last ".", or "" if path
// contains no dot. Dots inside quotes are not treated specially.
func ParentOf(path string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return ""
	}

	return path[:i]
}

// SimpleOf returns the substring of path after the last ".", or the whole
// path if it contains no dot.
func SimpleOf(path string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return path
	}

	return path[i+1:]
}

// AdjustName applies the final name-adjustment rule from the model builder:
// names containing "$" are preserved verbatim; otherwise a single leading
// and/or trailing '"' is stripped.
func AdjustName(name string) string {
	if strings.Contains(name, "$") {
		return name
	}

	name = strings.TrimPrefix(name, `"`)
	name = strings.TrimSuffix(name, `"`)

	return name
}

// Compare orders two keys lexicographically by their dotted path, suitable
// for deterministic sibling sorts where no other ordering signal applies.
func Compare(a, b Key) int {
	return strings.Compare(a.path, b.path)
}
