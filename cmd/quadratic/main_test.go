package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", "--", "1", "0", "-4")
	require.NoError(t, err)
	assert.Contains(t, out, "Standard form: y = x^2 - 4\n")
	assert.Contains(t, out, "Factored form: y = (x - 2)(x + 2)\n")
	assert.Contains(t, out, "Vertex: (0, -4)")
}

func TestEval_VertexForm(t *testing.T) {
	out, err := run(t, "eval", "--form", "vertex", "--x", "1", "--", "2", "3", "-5")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestEval_NoFactoredForm(t *testing.T) {
	_, err := run(t, "eval", "--method", "factored", "--x", "1", "1", "0", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no real roots")
}

func TestSolve(t *testing.T) {
	out, err := run(t, "solve", "--y", "5", "--method", "factored", "--", "1", "0", "-4")
	require.NoError(t, err)
	assert.Equal(t, "x = (3, -3)\n", out)

	out, err = run(t, "solve", "--y", "-5", "--", "1", "0", "-4")
	require.NoError(t, err)
	assert.Equal(t, "no real solution\n", out)
}

func TestConvert(t *testing.T) {
	out, err := run(t, "convert", "--to", "factored", "--", "1", "-2", "1")
	require.NoError(t, err)
	assert.Equal(t, "y = (x - 1)^2\n", out)

	out, err = run(t, "convert", "--to", "vertex", "--latex", "--", "2", "-12", "13")
	require.NoError(t, err)
	assert.Equal(t, "y = 2(x - 3)^{2} - 5\n", out)
}

func TestConvert_JSON(t *testing.T) {
	out, err := run(t, "--json", "convert", "--to", "vertex", "--", "1", "0", "-4")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "vertex", got["form"])
	assert.Equal(t, 1.0, got["a"])
	assert.Equal(t, -4.0, got["c"])
}

func TestFit(t *testing.T) {
	out, err := run(t, "--json", "fit", "0,1", "1,0", "2,3")
	require.NoError(t, err)

	var got struct{ A, B, C float64 }
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 2.0, got.A, 1e-9)
	assert.InDelta(t, -3.0, got.B, 1e-9)
	assert.InDelta(t, 1.0, got.C, 1e-9)
}

func TestFit_BadPoint(t *testing.T) {
	_, err := run(t, "fit", "0,1", "1;0", "2,3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want x,y")
}

func TestPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.svg")
	out, err := run(t, "plot", "-o", path, "--", "1", "0", "-4")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestPlot_UnsupportedFormat(t *testing.T) {
	_, err := run(t, "plot", "-o", filepath.Join(t.TempDir(), "p.gif"), "1", "0", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero leading", []string{"describe", "0", "1", "2"}},
		{"not a number", []string{"describe", "one", "1", "2"}},
		{"unknown form", []string{"describe", "--form", "cubic", "1", "1", "2"}},
		{"too few args", []string{"describe", "1", "2"}},
		{"NaN coefficient", []string{"describe", "--", "NaN", "0", "0"}},
		{"infinite coefficient", []string{"describe", "--", "1", "-Inf", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
