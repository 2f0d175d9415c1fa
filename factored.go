package goquadratic

// ============================================================
// Factored form: y = a·(x − r1)·(x − r2)
// ============================================================

// Factored stores the leading coefficient and both roots. A double root
// is stored twice with count 1.
type Factored struct {
	a, r1, r2 float64
	count     int
}

// NewFactored normalizes its roots: equal roots collapse to a double
// root, and a zero second root is moved into first position.
func NewFactored(a, r1, r2 float64) (Factored, error) {
	if err := checkCoefficients(a, r1, r2); err != nil {
		return Factored{}, err
	}
	return newFactored(a, r1, r2), nil
}

func newFactored(a, r1, r2 float64) Factored {
	if r1 == r2 {
		return Factored{a: a, r1: r1, r2: r1, count: 1}
	}
	if r2 == 0 {
		r1, r2 = 0, r1
	}
	return Factored{a: a, r1: r1, r2: r2, count: 2}
}

func (f Factored) Kind() Kind                      { return KindFactored }
func (f Factored) Coefficients() (a, b, c float64) { return f.a, f.r1, f.r2 }
func (f Factored) A() float64                      { return f.a }
func (f Factored) RootCount() int                  { return f.count }
func (f Factored) ToFactored() (Factored, bool)    { return f, true }

func (f Factored) Roots() Roots {
	if f.count == 1 {
		return oneRoot(f.r1)
	}
	return twoRoots(f.r1, f.r2)
}

func (f Factored) EvaluateAt(x float64) float64 { return f.a * (x - f.r1) * (x - f.r2) }

func (f Factored) SolveForX(y float64) (Roots, bool) { return f.ToStandard().SolveForX(y) }

func (f Factored) ToStandard() Standard {
	return newStandard(f.a, f.a*(-f.r1-f.r2), f.a*f.r1*f.r2)
}

// ToVertex places the vertex midway between the roots.
func (f Factored) ToVertex() Vertex {
	h := (f.r1 + f.r2) / 2
	return newVertex(f.a, h, f.EvaluateAt(h))
}

func (f Factored) String() string { return f.render(false) }
func (f Factored) LaTeX() string  { return f.render(true) }

func (f Factored) render(latex bool) string {
	r := renderer{latex: latex}
	if f.a == 0 {
		return r.String()
	}
	r.lead(f.a)
	r.shift(f.r1)
	if f.count == 1 {
		r.square()
	} else {
		r.shift(f.r2)
	}
	return r.String()
}
