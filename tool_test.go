package goquadratic_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quad "github.com/njchilds90/goquadratic"
)

func toolCall(t *testing.T, tool, params string) quad.ToolResponse {
	t.Helper()
	var p map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(params), &p))
	return quad.HandleToolCall(quad.ToolRequest{Tool: tool, Params: p})
}

func TestHandleToolCall_Describe(t *testing.T) {
	resp := toolCall(t, "describe", `{"form":{"form":"vertex","a":2,"b":3,"c":-5}}`)
	require.Empty(t, resp.Error)
	assert.Equal(t, "y = 2(x - 3)^{2} - 5", resp.LaTeX)
	assert.True(t, strings.HasPrefix(resp.String, "Standard form: y = 2x^2 - 12x + 13\n"), resp.String)
	_, ok := resp.Result.(*quad.Equation)
	assert.True(t, ok, "want *Equation result, got %T", resp.Result)
}

func TestHandleToolCall_Evaluate(t *testing.T) {
	resp := toolCall(t, "evaluate", `{"form":{"a":1,"b":0,"c":-4},"x":3,"method":"fac"}`)
	require.Empty(t, resp.Error)
	assert.Equal(t, 5.0, resp.Result)
	assert.Equal(t, "5", resp.String)

	resp = toolCall(t, "evaluate", `{"form":{"a":1,"b":0,"c":4},"x":3,"method":"factored"}`)
	assert.Contains(t, resp.Error, "no real solution")

	resp = toolCall(t, "evaluate", `{"form":{"a":1,"b":0,"c":4}}`)
	assert.Equal(t, "missing param: x", resp.Error)
}

func TestHandleToolCall_Solve(t *testing.T) {
	resp := toolCall(t, "solve", `{"form":{"a":1,"b":0,"c":-4},"y":0}`)
	require.Empty(t, resp.Error)
	assert.Equal(t, []float64{2, -2}, resp.Result)
	assert.Equal(t, "(2, -2)", resp.String)

	resp = toolCall(t, "solve", `{"form":{"a":1,"b":0,"c":-4},"y":0,"method":"vertex"}`)
	require.Empty(t, resp.Error)
	assert.Equal(t, []float64{-2, 2}, resp.Result)

	resp = toolCall(t, "solve", `{"form":{"a":1,"b":0,"c":4},"y":0}`)
	assert.Equal(t, "no real solution", resp.Error)
}

func TestHandleToolCall_Convert(t *testing.T) {
	resp := toolCall(t, "convert", `{"form":{"a":1,"b":-2,"c":1},"to":"factored"}`)
	require.Empty(t, resp.Error)
	assert.Equal(t, "y = (x - 1)^2", resp.String)
	m, ok := resp.Result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "factored", m["form"])

	resp = toolCall(t, "convert", `{"form":{"a":1,"b":0,"c":4},"to":"factored"}`)
	assert.NotEmpty(t, resp.Error)

	resp = toolCall(t, "convert", `{"form":{"a":1,"b":0,"c":4},"to":"cubic"}`)
	assert.Contains(t, resp.Error, "unknown form")
}

func TestHandleToolCall_Discriminant(t *testing.T) {
	resp := toolCall(t, "discriminant", `{"form":{"form":"factored","a":1,"b":2,"c":-2}}`)
	require.Empty(t, resp.Error)
	assert.Equal(t, 16.0, resp.Result)
}

func TestHandleToolCall_Fit(t *testing.T) {
	resp := toolCall(t, "fit", `{"points":[[0,1],[1,0],[2,3]]}`)
	require.Empty(t, resp.Error)
	m, ok := resp.Result.(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 2, m["a"], 1e-9)

	resp = toolCall(t, "fit", `{"points":[[0,1],[1]]}`)
	assert.NotEmpty(t, resp.Error)
}

func TestHandleToolCall_NonFiniteResults(t *testing.T) {
	resp := toolCall(t, "evaluate", `{"form":{"a":1e200},"x":1e200}`)
	assert.Contains(t, resp.Error, "not a finite number")
	assert.Nil(t, resp.Result)

	resp = toolCall(t, "solve", `{"form":{"form":"vertex","a":1e-10},"y":1e308,"method":"vertex"}`)
	assert.Contains(t, resp.Error, "not a finite number")

	resp = toolCall(t, "describe", `{"form":{"a":1,"b":1e200}}`)
	assert.Contains(t, resp.Error, "not a finite number")

	resp = quad.HandleToolCall(quad.ToolRequest{Tool: "evaluate", Params: map[string]interface{}{
		"form": map[string]interface{}{"a": 1.0},
		"x":    math.NaN(),
	}})
	assert.Contains(t, resp.Error, "param x")

	for _, r := range []quad.ToolResponse{
		toolCall(t, "evaluate", `{"form":{"a":1e200},"x":1e200}`),
		toolCall(t, "describe", `{"form":{"a":1,"b":1e200}}`),
	} {
		_, err := json.Marshal(r)
		assert.NoError(t, err)
	}
}

func TestHandleToolCall_BadForm(t *testing.T) {
	resp := toolCall(t, "describe", `{"form":{"a":0,"b":1,"c":1}}`)
	assert.Contains(t, resp.Error, "leading coefficient")

	resp = toolCall(t, "describe", `{"form":"y = x^2"}`)
	assert.Equal(t, "param form must be an object", resp.Error)

	resp = toolCall(t, "describe", `{}`)
	assert.Equal(t, "missing param: form", resp.Error)
}

func TestHandleToolCall_UnknownTool(t *testing.T) {
	resp := quad.HandleToolCall(quad.ToolRequest{Tool: "nonexistent", Params: map[string]interface{}{}})
	if resp.Error == "" {
		t.Error("expected error for unknown tool")
	}
}

func TestToolSpec(t *testing.T) {
	spec := quad.ToolSpec()
	var m struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal([]byte(spec), &m))
	var names []string
	for _, tool := range m.Tools {
		names = append(names, tool.Name)
	}
	assert.Equal(t, quad.Tools(), names)
}
