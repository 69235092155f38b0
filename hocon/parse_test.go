package hocon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebastian-peter/tscfg/hocon"
)

func TestParseFlatEntries(t *testing.T) {
	t.Parallel()

	cfg, err := hocon.Parse(`
a = "int"
b = "string | hello"
c = 42
d = true
`)
	require.NoError(t, err)

	entries := cfg.EntrySet()
	got := make(map[string]hocon.Kind, len(entries))

	for _, e := range entries {
		got[e.Path] = e.Value.ValueType()
	}

	assert.Equal(t, map[string]hocon.Kind{
		"a": hocon.KindString,
		"b": hocon.KindString,
		"c": hocon.KindNumber,
		"d": hocon.KindBoolean,
	}, got)
}

func TestParseNestedObject(t *testing.T) {
	t.Parallel()

	cfg, err := hocon.Parse(`
srv {
  host = "string"
  port = "int | 8080"
}
`)
	require.NoError(t, err)

	entries := cfg.EntrySet()
	require.Len(t, entries, 2)
	assert.Equal(t, "srv.host", entries[0].Path)
	assert.Equal(t, "srv.port", entries[1].Path)

	nested, ok := cfg.GetConfig("srv")
	require.True(t, ok)
	assert.Len(t, nested.EntrySet(), 2)
}

func TestParseDottedShorthand(t *testing.T) {
	t.Parallel()

	cfg, err := hocon.Parse(`
a.b.c = 1
a.d = 2
`)
	require.NoError(t, err)

	v, ok := cfg.GetValue("a.b.c")
	require.True(t, ok)
	assert.Equal(t, "1", v.UnwrappedString())

	v2, ok := cfg.GetValue("a.d")
	require.True(t, ok)
	assert.Equal(t, "2", v2.UnwrappedString())
}

func TestParseCommentsAttachToKey(t *testing.T) {
	t.Parallel()

	cfg, err := hocon.Parse(`
# @define abstract
Animal {
  name = "string"
}
`)
	require.NoError(t, err)

	v, ok := cfg.GetValue("Animal")
	require.True(t, ok)
	assert.Equal(t, []string{"@define abstract"}, v.Origin().Comments)
}

func TestParseTrailingCommentAttachesToEnclosingKey(t *testing.T) {
	t.Parallel()

	cfg, err := hocon.Parse(`
Dog { # @define extends Animal
  breed = "string"
}
`)
	require.NoError(t, err)

	dog, ok := cfg.GetValue("Dog")
	require.True(t, ok)
	assert.Equal(t, []string{"@define extends Animal"}, dog.Origin().Comments)

	nested, ok := cfg.GetConfig("Dog")
	require.True(t, ok)

	breed, ok := nested.GetValue("breed")
	require.True(t, ok)
	assert.Empty(t, breed.Origin().Comments)
}

func TestParseList(t *testing.T) {
	t.Parallel()

	cfg, err := hocon.Parse(`xs = ["int", "string"]`)
	require.NoError(t, err)

	v, ok := cfg.GetValue("xs")
	require.True(t, ok)
	assert.Equal(t, hocon.KindList, v.ValueType())
	assert.Equal(t, "[int,string]", v.Render())
	assert.Len(t, v.Elements(), 2)
}

func TestParseLineNumbers(t *testing.T) {
	t.Parallel()

	cfg, err := hocon.Parse("a = 1\nb = 2\n")
	require.NoError(t, err)

	va, _ := cfg.GetValue("a")
	vb, _ := cfg.GetValue("b")
	assert.Equal(t, 1, va.Origin().Line)
	assert.Equal(t, 2, vb.Origin().Line)
}
