package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructionsFromText(t *testing.T) {
	var in Instructions
	require.NoError(t, json.Unmarshal([]byte(`"Wash the rice. Boil it..  Serve. "`), &in))

	assert.True(t, in.IsRaw())
	assert.Equal(t, []string{"Wash the rice", "Boil it", "Serve"}, in.Steps())

	out, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `"Wash the rice. Boil it..  Serve. "`, string(out))
}

func TestInstructionsFromList(t *testing.T) {
	var in Instructions
	require.NoError(t, json.Unmarshal([]byte(`["Wash. Rinse", "Boil"]`), &in))

	assert.False(t, in.IsRaw())
	assert.Equal(t, []string{"Wash. Rinse", "Boil"}, in.Steps(), "explicit steps are not split")
}

func TestInstructionsNullAndEmpty(t *testing.T) {
	var in Instructions
	require.NoError(t, json.Unmarshal([]byte(`null`), &in))
	assert.Empty(t, in.Steps())

	assert.Empty(t, RawText(" . .").Steps())
	assert.NotNil(t, RawText("").Steps())

	out, err := json.Marshal(Instructions{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestInstructionsRejectsOtherTypes(t *testing.T) {
	var in Instructions
	assert.Error(t, json.Unmarshal([]byte(`{"step": 1}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &in))
}

func TestStepsReturnsCopy(t *testing.T) {
	in := Steps("a", "b")
	steps := in.Steps()
	steps[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, in.Steps())
}

func TestParseDiet(t *testing.T) {
	tag, ok := ParseDiet(" Vegan ")
	assert.True(t, ok)
	assert.Equal(t, DietVegan, tag)

	tag, ok = ParseDiet("gluten-free")
	assert.True(t, ok)
	assert.Equal(t, DietGlutenFree, tag)

	tag, ok = ParseDiet("paleo")
	assert.False(t, ok)
	assert.Equal(t, DietNone, tag)
}

func TestRecipeSupportsWithoutDietary(t *testing.T) {
	r := Recipe{Name: "plain", Ingredients: []string{"tofu"}}
	assert.False(t, r.Supports(DietVegan))
}

func TestLoadStatusString(t *testing.T) {
	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "not found", NotFound.String())
	assert.Equal(t, "parse error", ParseError.String())
}
