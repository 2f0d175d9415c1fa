package goquadratic

import (
	"math"
	"strings"
)

// ============================================================
// Roots: zero, one or two real solutions
// ============================================================

// Roots holds the real solutions of a quadratic. It is always returned
// alongside an ok flag; a false flag means there is no real solution.
type Roots struct {
	vals [2]float64
	n    int
}

func oneRoot(r float64) Roots       { return Roots{vals: [2]float64{r, r}, n: 1} }
func twoRoots(r1, r2 float64) Roots { return Roots{vals: [2]float64{r1, r2}, n: 2} }

func (r Roots) Len() int { return r.n }

// First returns the first solution. For a double root First and Second agree.
func (r Roots) First() float64 { return r.vals[0] }

func (r Roots) Second() float64 {
	if r.n == 1 {
		return r.vals[0]
	}
	return r.vals[1]
}

// Values returns a fresh slice of length Len().
func (r Roots) Values() []float64 {
	out := make([]float64, r.n)
	copy(out, r.vals[:r.n])
	return out
}

func (r Roots) String() string {
	if r.n == 0 {
		return "none"
	}
	parts := make([]string, r.n)
	for i := 0; i < r.n; i++ {
		parts[i] = formatNum(r.vals[i])
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ============================================================
// Root Solver
// ============================================================

// Discriminant returns b² − 4ac.
func Discriminant(a, b, c float64) float64 { return b*b - 4*a*c }

// SolveRoots solves a·x² + b·x + c = 0 with the quadratic formula.
// With two roots the + branch comes first. The caller guarantees a ≠ 0.
func SolveRoots(a, b, c float64) (Roots, bool) {
	disc := Discriminant(a, b, c)
	switch {
	case disc < 0:
		return Roots{}, false
	case disc == 0:
		return oneRoot(-b / (2 * a)), true
	}
	sq := math.Sqrt(disc)
	return twoRoots((-b+sq)/(2*a), (-b-sq)/(2*a)), true
}
