package goquadratic

import (
	"math"
	"strconv"
	"strings"
)

// renderer builds the "y = ..." text of a form. Plain text prints a
// coefficient magnitude only when it exceeds 1; LaTeX prints every
// magnitude other than 1.
type renderer struct {
	sb    strings.Builder
	latex bool
}

func (r *renderer) write(s string) { r.sb.WriteString(s) }

func (r *renderer) String() string { return "y = " + r.sb.String() }

func (r *renderer) showMagnitude(m float64) bool {
	if r.latex {
		return m != 1
	}
	return m > 1
}

// lead writes the sign and magnitude of the leading coefficient.
func (r *renderer) lead(a float64) {
	if a < 0 {
		r.write("-")
	}
	if m := math.Abs(a); r.showMagnitude(m) {
		r.write(formatNum(m))
	}
}

func (r *renderer) sign(v float64) {
	if v > 0 {
		r.write(" + ")
	} else {
		r.write(" - ")
	}
}

// linear writes the b·x term; zero is omitted.
func (r *renderer) linear(b float64) {
	if b == 0 {
		return
	}
	r.sign(b)
	if m := math.Abs(b); r.showMagnitude(m) {
		r.write(formatNum(m))
	}
	r.write("x")
}

// constant writes a trailing constant term; zero is omitted.
func (r *renderer) constant(c float64) {
	if c == 0 {
		return
	}
	r.sign(c)
	r.write(formatNum(math.Abs(c)))
}

// shift writes the factor (x − h). A zero shift is a bare x.
func (r *renderer) shift(h float64) {
	if h == 0 {
		r.write("x")
		return
	}
	r.write("(x")
	r.sign(-h)
	r.write(formatNum(math.Abs(h)))
	r.write(")")
}

func (r *renderer) square() {
	if r.latex {
		r.write("^{2}")
		return
	}
	r.write("^2")
}

// formatNum prints the shortest decimal that round-trips, so 2.0 is "2".
// Negative zero prints as "0".
func formatNum(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
