package irschema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebastian-peter/tscfg/hocon"
	"github.com/sebastian-peter/tscfg/irschema"
	"github.com/sebastian-peter/tscfg/model"
)

func renderFrom(t *testing.T, src string) map[string]any {
	t.Helper()

	cfg, err := hocon.Parse(src)
	require.NoError(t, err)

	res, err := model.Build(cfg)
	require.NoError(t, err)

	schema := irschema.Render(res.Root)

	b, err := json.Marshal(schema)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))

	return got
}

func TestRenderPrimitives(t *testing.T) {
	t.Parallel()

	got := renderFrom(t, `
a = "int"
b = "string | hello"
c = true
`)

	assert.Equal(t, "object", got["type"])
	assert.False(t, got["additionalProperties"].(bool))

	props, ok := got["properties"].(map[string]any)
	require.True(t, ok)

	assert.Equal(t, map[string]any{"type": "integer"}, props["a"])
	assert.Equal(t, map[string]any{"type": "string", "default": "hello"}, props["b"])
	assert.Equal(t, map[string]any{"type": "boolean", "default": "true"}, props["c"])

	required, ok := got["required"].([]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"a"}, required)
}

func TestRenderNestedObjectNotRequiredWhenOptional(t *testing.T) {
	t.Parallel()

	got := renderFrom(t, `
srv {
  host = "string"
  port = "int | 8080"
}
`)

	props := got["properties"].(map[string]any)
	srv := props["srv"].(map[string]any)

	assert.Equal(t, "object", srv["type"])
	assert.Equal(t, []any{"host"}, srv["required"])

	srvProps := srv["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "string"}, srvProps["host"])
	assert.Equal(t, map[string]any{"type": "integer", "default": "8080"}, srvProps["port"])
}

func TestRenderAbstractMemberOmittedAtRoot(t *testing.T) {
	t.Parallel()

	got := renderFrom(t, `
# @define abstract
Animal { name = "string" }
Dog { # @define extends Animal
  breed = "string"
}
`)

	props := got["properties"].(map[string]any)
	_, hasAnimal := props["Animal"]
	assert.False(t, hasAnimal)

	dog := props["Dog"].(map[string]any)
	dogProps := dog["properties"].(map[string]any)
	_, hasBreed := dogProps["breed"]
	assert.True(t, hasBreed)
}

func TestRenderEnumType(t *testing.T) {
	t.Parallel()

	cfg, err := hocon.Parse(`
# @define enum
colors = [red, green, blue]
`)
	require.NoError(t, err)

	res, err := model.Build(cfg)
	require.NoError(t, err)

	schema := irschema.RenderEffective(memberAnn(t, res.Root.Members, "colors"))
	assert.Equal(t, "string", schema.Type)
	assert.Equal(t, []any{"red", "green", "blue"}, schema.Enum)
}

func TestRenderEffectiveMergesParentClassMembers(t *testing.T) {
	t.Parallel()

	cfg, err := hocon.Parse(`
# @define abstract
Animal { name = "string" }
Dog { # @define extends Animal
  breed = "string"
}
`)
	require.NoError(t, err)

	res, err := model.Build(cfg)
	require.NoError(t, err)

	dog := memberAnn(t, res.Root.Members, "Dog")
	schema := irschema.RenderEffective(dog)

	require.NotNil(t, schema.Properties)
	_, hasName := schema.Properties["name"]
	_, hasBreed := schema.Properties["breed"]
	assert.True(t, hasName)
	assert.True(t, hasBreed)
}

func memberAnn(t *testing.T, members []model.Member, name string) *model.AnnType {
	t.Helper()

	for _, m := range members {
		if m.Name == name {
			return m.Ann
		}
	}

	require.Failf(t, "member not found", "no member named %q", name)

	return nil
}
