package goquadratic

import (
	"fmt"
	"strings"
)

// ============================================================
// Equation: all three forms of one quadratic
// ============================================================

// Equation holds the standard, vertex and factored forms of one
// quadratic together with its intercepts and vertex. Everything is
// computed by NewEquation and never changes afterwards.
type Equation struct {
	origin   Kind
	standard Standard
	vertex   Vertex
	factored Factored
	hasRoots bool

	yIntercept  float64
	xIntercepts Roots
	hasXInts    bool
}

// NewEquation builds the form named by origin from (a, b, c) and derives
// the other two from it.
func NewEquation(a, b, c float64, origin Kind) (*Equation, error) {
	f, err := NewForm(origin, a, b, c)
	if err != nil {
		return nil, fmt.Errorf("new equation: %w", err)
	}
	return FromForm(f)
}

// FromForm builds an Equation around an existing form. It fails with
// ErrNonFinite when a derived coefficient, intercept or the discriminant
// overflows.
func FromForm(f Form) (*Equation, error) {
	if f == nil {
		return nil, ErrUnknownForm
	}
	if a, _, _ := f.Coefficients(); a == 0 {
		return nil, ErrInvalidLeadingCoefficient
	}
	e := &Equation{origin: f.Kind()}
	e.standard = f.ToStandard()
	e.vertex = f.ToVertex()
	e.factored, e.hasRoots = f.ToFactored()

	e.yIntercept = e.standard.EvaluateAt(0)
	if e.hasRoots {
		e.xIntercepts, e.hasXInts = e.factored.SolveForX(0)
	}
	if err := e.checkFinite(); err != nil {
		return nil, err
	}
	return e, nil
}

// checkFinite rejects equations whose derived values overflowed.
func (e *Equation) checkFinite() error {
	sa, sb, sc := e.standard.Coefficients()
	va, vh, vk := e.vertex.Coefficients()
	fa, r1, r2 := e.factored.Coefficients()
	vals := []float64{sa, sb, sc, va, vh, vk, fa, r1, r2, e.yIntercept, e.Discriminant()}
	return checkFinite(append(vals, e.xIntercepts.Values()...)...)
}

func (e *Equation) Origin() Kind                { return e.origin }
func (e *Equation) Standard() Standard          { return e.standard }
func (e *Equation) Vertex() Vertex              { return e.vertex }
func (e *Equation) Factored() (Factored, bool)  { return e.factored, e.hasRoots }
func (e *Equation) YIntercept() float64         { return e.yIntercept }
func (e *Equation) XIntercepts() (Roots, bool)  { return e.xIntercepts, e.hasXInts }
func (e *Equation) VertexPoint() (x, y float64) { return e.vertex.Point() }
func (e *Equation) Discriminant() float64       { return e.standard.Discriminant() }

// Form returns the stored form for method; false when method is factored
// and the equation has no real roots, or method is not a known Kind.
func (e *Equation) Form(method Kind) (Form, bool) {
	switch method {
	case KindStandard:
		return e.standard, true
	case KindVertex:
		return e.vertex, true
	case KindFactored:
		if e.hasRoots {
			return e.factored, true
		}
	}
	return nil, false
}

// EvaluateAt evaluates y at x using the form selected by method.
func (e *Equation) EvaluateAt(x float64, method Kind) (float64, bool) {
	f, ok := e.Form(method)
	if !ok {
		return 0, false
	}
	return f.EvaluateAt(x), true
}

// SolveForX solves for x at y using the form selected by method.
func (e *Equation) SolveForX(y float64, method Kind) (Roots, bool) {
	f, ok := e.Form(method)
	if !ok {
		return Roots{}, false
	}
	return f.SolveForX(y)
}

func (e *Equation) String() string {
	factored := "none"
	if e.hasRoots {
		factored = e.factored.String()
	}
	vx, vy := e.VertexPoint()
	lines := []string{
		"Standard form: " + e.standard.String(),
		"Vertex form: " + e.vertex.String(),
		"Factored form: " + factored,
		"y intercept: y = " + formatNum(e.yIntercept),
		"x intercept: x = " + e.xIntercepts.String(),
		"Vertex: (" + formatNum(vx) + ", " + formatNum(vy) + ")",
	}
	return strings.Join(lines, "\n")
}
