package goquadratic

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// ErrDegeneratePoints is returned when sample points do not determine a parabola.
var ErrDegeneratePoints = errors.New("goquadratic: points do not determine a quadratic")

const (
	// equivTol is the absolute and relative tolerance used by Equivalent.
	equivTol = 1e-9
	// flatTol bounds a fitted leading coefficient that is treated as zero.
	flatTol = 1e-12
)

type Point struct{ X, Y float64 }

// FitPoints returns the standard form through the given points. Three
// points give the exact interpolating parabola; more give the least
// squares fit. Fewer than three distinct x values, or points on a line,
// yield ErrDegeneratePoints.
//
// x is centred and scaled to [-1, 1] before solving, so abscissae far
// from the origin stay well conditioned.
func FitPoints(points ...Point) (Standard, error) {
	if len(points) < 3 {
		return Standard{}, fmt.Errorf("%w: need at least 3 points, got %d", ErrDegeneratePoints, len(points))
	}
	distinct := make(map[float64]struct{}, len(points))
	var mean float64
	for i, p := range points {
		if err := checkFinite(p.X, p.Y); err != nil {
			return Standard{}, fmt.Errorf("fit: point %d: %w", i, err)
		}
		distinct[p.X] = struct{}{}
		mean += (p.X - mean) / float64(i+1)
	}
	if len(distinct) < 3 {
		return Standard{}, fmt.Errorf("%w: need 3 distinct x values, got %d", ErrDegeneratePoints, len(distinct))
	}
	var spread float64
	for _, p := range points {
		spread = math.Max(spread, math.Abs(p.X-mean))
	}

	design := mat.NewDense(len(points), 3, nil)
	obs := mat.NewVecDense(len(points), nil)
	for i, p := range points {
		u := (p.X - mean) / spread
		design.Set(i, 0, u*u)
		design.Set(i, 1, u)
		design.Set(i, 2, 1)
		obs.SetVec(i, p.Y)
	}

	var coef mat.VecDense
	if err := coef.SolveVec(design, obs); err != nil {
		// a finite Condition still carries a solution
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 0) {
			return Standard{}, fmt.Errorf("%w: %v", ErrDegeneratePoints, err)
		}
	}
	ua, ub, uc := coef.AtVec(0), coef.AtVec(1), coef.AtVec(2)
	scale := math.Max(1, math.Max(math.Abs(ub), math.Abs(uc)))
	if scalar.EqualWithinAbs(ua, 0, flatTol*scale) {
		return Standard{}, fmt.Errorf("%w: points are collinear", ErrDegeneratePoints)
	}

	// expand ua·u² + ub·u + uc with u = (x − mean)/spread
	s2 := spread * spread
	a := ua / s2
	b := ub/spread - 2*ua*mean/s2
	c := ua*mean*mean/s2 - ub*mean/spread + uc
	if err := checkFinite(a, b, c); err != nil {
		return Standard{}, fmt.Errorf("fit: %w", err)
	}
	return newStandard(a, b, c), nil
}

// Equivalent reports whether two forms describe the same parabola, by
// comparing their standard coefficients within a small tolerance.
func Equivalent(f, g Form) bool {
	fa, fb, fc := f.ToStandard().Coefficients()
	ga, gb, gc := g.ToStandard().Coefficients()
	return scalar.EqualWithinAbsOrRel(fa, ga, equivTol, equivTol) &&
		scalar.EqualWithinAbsOrRel(fb, gb, equivTol, equivTol) &&
		scalar.EqualWithinAbsOrRel(fc, gc, equivTol, equivTol)
}
