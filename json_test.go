package goquadratic_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quad "github.com/njchilds90/goquadratic"
)

func TestToJSON_Standard(t *testing.T) {
	s, err := quad.ToJSON(mustStandard(t, 1, 0, -4))
	require.NoError(t, err)
	assert.JSONEq(t, `{"form":"standard","a":1,"b":0,"c":-4}`, s)
}

func TestJSON_FormsRoundTrip(t *testing.T) {
	v := mustVertex(t, 2, 3, -5)
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var v2 quad.Vertex
	require.NoError(t, json.Unmarshal(b, &v2))
	assert.Equal(t, v, v2)

	f := mustFactored(t, 1, 2, 0)
	b, err = json.Marshal(f)
	require.NoError(t, err)
	var f2 quad.Factored
	require.NoError(t, json.Unmarshal(b, &f2))
	assert.Equal(t, f, f2)
	assert.Equal(t, 2, f2.RootCount())
}

func TestJSON_UnmarshalNormalizesFactored(t *testing.T) {
	var f quad.Factored
	require.NoError(t, json.Unmarshal([]byte(`{"form":"fac","a":3,"b":-1,"c":-1}`), &f))
	assert.Equal(t, 1, f.RootCount())
	assert.Equal(t, "y = 3(x + 1)^2", f.String())
}

func TestJSON_UnmarshalRejects(t *testing.T) {
	var s quad.Standard
	err := json.Unmarshal([]byte(`{"form":"standard","a":0,"b":1,"c":1}`), &s)
	assert.ErrorIs(t, err, quad.ErrInvalidLeadingCoefficient)

	err = json.Unmarshal([]byte(`{"form":"vertex","a":1,"b":1,"c":1}`), &s)
	assert.ErrorIs(t, err, quad.ErrUnknownForm)

	assert.Error(t, json.Unmarshal([]byte(`{"a":"one"}`), &s))
}

func TestFormFromJSON(t *testing.T) {
	f, err := quad.FormFromJSON(map[string]interface{}{"form": "vertex", "a": 2.0, "b": 3.0, "c": -5.0})
	require.NoError(t, err)
	assert.Equal(t, quad.KindVertex, f.Kind())
	assert.Equal(t, "y = 2(x - 3)^2 - 5", f.String())

	f, err = quad.FormFromJSON(map[string]interface{}{"a": 1.0})
	require.NoError(t, err)
	assert.Equal(t, "y = x^2", f.String())

	_, err = quad.FormFromJSON(map[string]interface{}{"b": 1.0})
	assert.Error(t, err)
	_, err = quad.FormFromJSON(map[string]interface{}{"a": "1"})
	assert.Error(t, err)
	_, err = quad.FormFromJSON(map[string]interface{}{"form": 3.0, "a": 1.0})
	assert.Error(t, err)
	_, err = quad.FormFromJSON(nil)
	assert.Error(t, err)
}

func TestEquation_MarshalJSON(t *testing.T) {
	e, err := quad.NewEquation(1, 0, -4, quad.KindStandard)
	require.NoError(t, err)
	b, err := json.Marshal(e)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "standard", out["origin"])
	assert.Equal(t, 16.0, out["discriminant"])
	assert.Equal(t, -4.0, out["y_intercept"])
	assert.Equal(t, []interface{}{2.0, -2.0}, out["x_intercepts"])
	factored, ok := out["factored"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "factored", factored["form"])
}

func TestEquation_MarshalJSON_NoRoots(t *testing.T) {
	e, err := quad.NewEquation(1, 0, 4, quad.KindStandard)
	require.NoError(t, err)
	b, err := json.Marshal(e)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Nil(t, out["factored"])
	assert.Nil(t, out["x_intercepts"])
	assert.Equal(t, []interface{}{0.0, 4.0}, out["vertex_point"])
}
