package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quad "github.com/njchilds90/goquadratic"
)

func equation(t *testing.T, a, b, c float64) *quad.Equation {
	t.Helper()
	e, err := quad.NewEquation(a, b, c, quad.KindStandard)
	require.NoError(t, err)
	return e
}

func TestXRange_IncludesIntercepts(t *testing.T) {
	xmin, xmax := XRange(equation(t, 1, 0, -100), 2)
	assert.Equal(t, -11.0, xmin)
	assert.Equal(t, 11.0, xmax)

	xmin, xmax = XRange(equation(t, 1, 0, 4), 2)
	assert.Equal(t, -2.0, xmin)
	assert.Equal(t, 2.0, xmax)
}

func TestYRange_KeepsAxisVisible(t *testing.T) {
	// y = x^2 + 4 stays above the axis on [-2, 2]
	ymin, ymax := YRange(equation(t, 1, 0, 4), -2, 2, 101)
	assert.Less(t, ymin, 0.0)
	assert.Greater(t, ymax, 8.0)
}

func TestNew_Validates(t *testing.T) {
	e := equation(t, 1, 0, -4)
	_, err := New(e, Options{Width: 6, Height: 4, Samples: 1, Span: 5})
	assert.Error(t, err)
	_, err = New(e, Options{Width: 6, Height: 4, Samples: 10, Span: 0})
	assert.Error(t, err)

	p, err := New(e, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "y = x^2 - 4", p.Title.Text)
}

func TestWriteTo_PNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, equation(t, -2, 3, 1), DefaultOptions(), "png"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")), "output is not a PNG")
}

func TestWriteTo_SVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, equation(t, 1, -2, 1), DefaultOptions(), "svg"))
	assert.Contains(t, buf.String(), "<svg")
}

func TestWriteTo_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteTo(&buf, equation(t, 1, 0, 0), DefaultOptions(), "bmp"))
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parabola.png")
	require.NoError(t, Save(path, equation(t, 1, 0, -4), DefaultOptions()))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
