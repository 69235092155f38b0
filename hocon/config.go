package hocon

import "strings"

// Config is an object-valued node: an ordered mapping from simple key name
// to Value.
type Config struct {
	order    []string
	children map[string]*Value
}

// NewConfig returns an empty Config, ready for Set.
func NewConfig() *Config {
	return &Config{children: make(map[string]*Value)}
}

// Set inserts or replaces the value at the immediate child key name,
// preserving first-seen insertion order.
func (c *Config) Set(name string, v *Value) {
	if _, exists := c.children[name]; !exists {
		c.order = append(c.order, name)
	}

	c.children[name] = v
}

// Keys returns the immediate child key names in insertion order.
func (c *Config) Keys() []string {
	return c.order
}

// Entry is one flat path/value pair from Config.EntrySet.
type Entry struct {
	Path  string
	Value *Value
}

// EntrySet returns the flat, depth-first set of (path, value) leaf entries
// under c. Object-valued children are not themselves emitted as entries;
// their leaves are emitted with dotted paths instead.
func (c *Config) EntrySet() []Entry {
	var entries []Entry

	c.collect("", &entries)

	return entries
}

func (c *Config) collect(prefix string, out *[]Entry) {
	for _, name := range c.order {
		v := c.children[name]

		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		if v.kind == KindObject {
			v.object.collect(path, out)

			continue
		}

		*out = append(*out, Entry{Path: path, Value: v})
	}
}

// GetValue returns the value at a dotted path. It descends through
// object-valued intermediate segments.
func (c *Config) GetValue(path string) (*Value, bool) {
	segs := strings.Split(path, ".")

	cur := c

	for i, seg := range segs {
		v, ok := cur.children[seg]
		if !ok {
			return nil, false
		}

		if i == len(segs)-1 {
			return v, true
		}

		if v.kind != KindObject {
			return nil, false
		}

		cur = v.object
	}

	return nil, false
}

// GetConfig returns the nested Config at a dotted path. The value at path
// must be KindObject.
func (c *Config) GetConfig(path string) (*Config, bool) {
	v, ok := c.GetValue(path)
	if !ok || v.kind != KindObject {
		return nil, false
	}

	return v.object, true
}

// toMap renders c as a native map[string]any, for Value.Unwrapped on a
// KindObject value.
func (c *Config) toMap() map[string]any {
	m := make(map[string]any, len(c.order))

	for _, k := range c.order {
		m[k] = c.children[k].Unwrapped()
	}

	return m
}
