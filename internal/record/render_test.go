package record

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/fieldset/internal/schema"
)

func renderGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRender_Person(t *testing.T) {
	s := personSchema(t)

	james, err := Construct(s, map[string]any{
		"name":   "JAMES",
		"age":    34,
		"income": 24000.0,
	})
	require.NoError(t, err)

	want := "Person(\n" +
		"  # The name\n" +
		"  name='JAMES'\n" +
		"\n" +
		"  # The person's age\n" +
		"  age=34\n" +
		"\n" +
		"  # The person's income\n" +
		"  income=24000.0\n" +
		")"
	assert.Equal(t, want, james.Render())
	assert.Equal(t, want, james.String())

	renderGoldie(t).Assert(t, "person_render", []byte(james.Render()))
}

func TestRender_DogAncestorFieldsFirst(t *testing.T) {
	s := dogSchema(t)

	mike, err := Construct(s, map[string]any{
		"name":    "mike",
		"habitat": "land",
		"weight":  50.0,
		"bark":    "ARF",
	})
	require.NoError(t, err)

	renderGoldie(t).Assert(t, "dog_render", []byte(mike.Render()))
}

func TestRender_FloatKeepsDecimalPoint(t *testing.T) {
	assert.Equal(t, "24000.0", renderFloat(24000.0))
	assert.Equal(t, "50.0", renderFloat(50.0))
	assert.Equal(t, "0.5", renderFloat(0.5))
	assert.Equal(t, "-3.25", renderFloat(-3.25))
	assert.Equal(t, "0.0", renderFloat(0))
}

func TestRender_ValueForms(t *testing.T) {
	assert.Equal(t, "'ARF'", renderValue("ARF"))
	assert.Equal(t, "42", renderValue(42))
	assert.Equal(t, "true", renderValue(true))
	assert.Equal(t, "false", renderValue(false))
	assert.Equal(t, "1.5", renderValue(1.5))
}

func TestRender_BoolField(t *testing.T) {
	flag := schema.New("Flag", nil, []schema.DeclaredField{
		{Name: "enabled", Type: schema.Bool, Field: schema.Field{Label: "Whether the flag is on"}},
	})
	s, err := flag.Resolve()
	require.NoError(t, err)

	inst, err := Construct(s, map[string]any{"enabled": true})
	require.NoError(t, err)

	assert.Equal(t, "Flag(\n  # Whether the flag is on\n  enabled=true\n)", inst.Render())
}
