package goquadratic

import "math"

// ============================================================
// Vertex form: y = a·(x − h)² + k
// ============================================================

// Vertex holds a parabola by its leading coefficient and vertex (h, k).
type Vertex struct{ a, h, k float64 }

func NewVertex(a, h, k float64) (Vertex, error) {
	if err := checkCoefficients(a, h, k); err != nil {
		return Vertex{}, err
	}
	return newVertex(a, h, k), nil
}

func newVertex(a, h, k float64) Vertex { return Vertex{a: a, h: h, k: k} }

func (v Vertex) Kind() Kind                      { return KindVertex }
func (v Vertex) Coefficients() (a, b, c float64) { return v.a, v.h, v.k }
func (v Vertex) A() float64                      { return v.a }
func (v Vertex) Point() (h, k float64)           { return v.h, v.k }
func (v Vertex) ToVertex() Vertex                { return v }

func (v Vertex) EvaluateAt(x float64) float64 {
	d := x - v.h
	return v.a*d*d + v.k
}

// SolveForX inverts the square directly. Two solutions are ordered h−√d, h+√d.
func (v Vertex) SolveForX(y float64) (Roots, bool) {
	d := (y - v.k) / v.a
	switch {
	case d < 0:
		return Roots{}, false
	case d == 0:
		return oneRoot(v.h), true
	}
	sq := math.Sqrt(d)
	return twoRoots(v.h-sq, v.h+sq), true
}

func (v Vertex) ToStandard() Standard {
	return newStandard(v.a, -2*v.a*v.h, v.a*v.h*v.h+v.k)
}

func (v Vertex) ToFactored() (Factored, bool) { return v.ToStandard().ToFactored() }

func (v Vertex) String() string { return v.render(false) }
func (v Vertex) LaTeX() string  { return v.render(true) }

func (v Vertex) render(latex bool) string {
	r := renderer{latex: latex}
	if v.a != 0 {
		r.lead(v.a)
		r.shift(v.h)
		r.square()
	}
	r.constant(v.k)
	return r.String()
}
