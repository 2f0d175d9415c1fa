package goquadratic

// ============================================================
// Standard form: y = a·x² + b·x + c
// ============================================================

// Standard holds the coefficients of y = a·x² + b·x + c.
type Standard struct{ a, b, c float64 }

// NewStandard rejects a == 0 and non-finite coefficients.
func NewStandard(a, b, c float64) (Standard, error) {
	if err := checkCoefficients(a, b, c); err != nil {
		return Standard{}, err
	}
	return newStandard(a, b, c), nil
}

func newStandard(a, b, c float64) Standard { return Standard{a: a, b: b, c: c} }

func (s Standard) Kind() Kind                      { return KindStandard }
func (s Standard) Coefficients() (a, b, c float64) { return s.a, s.b, s.c }
func (s Standard) A() float64                      { return s.a }
func (s Standard) B() float64                      { return s.b }
func (s Standard) C() float64                      { return s.c }
func (s Standard) ToStandard() Standard            { return s }
func (s Standard) Discriminant() float64           { return Discriminant(s.a, s.b, s.c) }

func (s Standard) EvaluateAt(x float64) float64 { return s.a*x*x + s.b*x + s.c }

func (s Standard) SolveForX(y float64) (Roots, bool) { return SolveRoots(s.a, s.b, s.c-y) }

// ToVertex completes the square: h = b/(2a), k = c − a·h².
func (s Standard) ToVertex() Vertex {
	h := (s.b / s.a) / 2
	k := -(s.a * h * h) + s.c
	return newVertex(s.a, -h, k)
}

// ToFactored reports false when the parabola never crosses the x-axis.
func (s Standard) ToFactored() (Factored, bool) {
	roots, ok := SolveRoots(s.a, s.b, s.c)
	if !ok {
		return Factored{}, false
	}
	return newFactored(s.a, roots.First(), roots.Second()), true
}

func (s Standard) String() string { return s.render(false) }
func (s Standard) LaTeX() string  { return s.render(true) }

func (s Standard) render(latex bool) string {
	r := renderer{latex: latex}
	if s.a != 0 {
		r.lead(s.a)
		r.write("x")
		r.square()
	}
	r.linear(s.b)
	r.constant(s.c)
	if s.a == 0 && s.b == 0 && s.c == 0 {
		r.write("0")
	}
	return r.String()
}
