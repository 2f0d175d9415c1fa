// Package goquadratic models a single-variable quadratic equation in its
// three canonical representations and converts between them.
//
// Design goals:
//   - Immutable value types, safe to share between goroutines
//   - Explicit "no real solution" results instead of NaN or nil sentinels
//   - Stable, human-readable text and LaTeX output
//   - AI/LLM friendly: JSON and tool-call APIs over the same kernel
package goquadratic

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidLeadingCoefficient is returned when a == 0.
	ErrInvalidLeadingCoefficient = errors.New("goquadratic: leading coefficient must be nonzero")
	// ErrUnknownForm is returned for a form name or Kind outside the three representations.
	ErrUnknownForm = errors.New("goquadratic: unknown form")
	// ErrNonFinite is returned for NaN or infinite coefficients, and for
	// derived values that overflow.
	ErrNonFinite = errors.New("goquadratic: value is not a finite number")
)

// ============================================================
// Kind
// ============================================================

// Kind names one of the three representations.
type Kind int

const (
	KindStandard Kind = iota + 1
	KindVertex
	KindFactored
)

func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindVertex:
		return "vertex"
	case KindFactored:
		return "factored"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) valid() bool { return k >= KindStandard && k <= KindFactored }

// ParseKind accepts the long names and the short std/vert/fac aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "std":
		return KindStandard, nil
	case "vertex", "vert":
		return KindVertex, nil
	case "factored", "fac":
		return KindFactored, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownForm, s)
}

// ============================================================
// Form
// ============================================================

// Form is one representation of y = f(x). The meaning of the b and c
// coefficients depends on Kind:
//
//	standard  y = a·x² + b·x + c
//	vertex    y = a·(x − b)² + c
//	factored  y = a·(x − b)·(x − c)
type Form interface {
	Kind() Kind
	Coefficients() (a, b, c float64)
	EvaluateAt(x float64) float64
	SolveForX(y float64) (Roots, bool)
	ToStandard() Standard
	ToVertex() Vertex
	ToFactored() (Factored, bool)
	String() string
	LaTeX() string
}

var (
	_ Form = Standard{}
	_ Form = Vertex{}
	_ Form = Factored{}
)

// NewForm builds the representation selected by kind.
func NewForm(kind Kind, a, b, c float64) (Form, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownForm, kind)
	}
	if err := checkCoefficients(a, b, c); err != nil {
		return nil, err
	}
	switch kind {
	case KindVertex:
		return newVertex(a, b, c), nil
	case KindFactored:
		return newFactored(a, b, c), nil
	}
	return newStandard(a, b, c), nil
}

func checkCoefficients(a, b, c float64) error {
	if err := checkFinite(a, b, c); err != nil {
		return err
	}
	if a == 0 {
		return ErrInvalidLeadingCoefficient
	}
	return nil
}

func checkFinite(vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrNonFinite, v)
		}
	}
	return nil
}
