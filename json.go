package goquadratic

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// JSON Serialization
// ============================================================

type formJSON struct {
	Form string  `json:"form"`
	A    float64 `json:"a"`
	B    float64 `json:"b"`
	C    float64 `json:"c"`
}

func marshalForm(f Form) ([]byte, error) {
	a, b, c := f.Coefficients()
	return json.Marshal(formJSON{Form: f.Kind().String(), A: a, B: b, C: c})
}

// unmarshalForm decodes data and checks that its "form" field, when set, names want.
func unmarshalForm(data []byte, want Kind) (formJSON, error) {
	var raw formJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return raw, err
	}
	if raw.Form != "" {
		k, err := ParseKind(raw.Form)
		if err != nil {
			return raw, err
		}
		if k != want {
			return raw, fmt.Errorf("%w: want %s, got %s", ErrUnknownForm, want, k)
		}
	}
	return raw, checkCoefficients(raw.A, raw.B, raw.C)
}

func (s Standard) MarshalJSON() ([]byte, error) { return marshalForm(s) }
func (v Vertex) MarshalJSON() ([]byte, error)   { return marshalForm(v) }
func (f Factored) MarshalJSON() ([]byte, error) { return marshalForm(f) }

func (s *Standard) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalForm(data, KindStandard)
	if err != nil {
		return err
	}
	*s = newStandard(raw.A, raw.B, raw.C)
	return nil
}

func (v *Vertex) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalForm(data, KindVertex)
	if err != nil {
		return err
	}
	*v = newVertex(raw.A, raw.B, raw.C)
	return nil
}

func (f *Factored) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalForm(data, KindFactored)
	if err != nil {
		return err
	}
	*f = newFactored(raw.A, raw.B, raw.C)
	return nil
}

// ToJSON encodes any form as {"form","a","b","c"}.
func ToJSON(f Form) (string, error) {
	b, err := marshalForm(f)
	return string(b), err
}

// FormFromJSON decodes a generic JSON object such as a tool parameter.
// A missing "form" field means standard form.
func FormFromJSON(data map[string]interface{}) (Form, error) {
	if data == nil {
		return nil, fmt.Errorf("form must be an object")
	}
	kind := KindStandard
	if v, ok := data["form"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("field 'form' must be a string")
		}
		k, err := ParseKind(s)
		if err != nil {
			return nil, err
		}
		kind = k
	}
	var coeffs [3]float64
	for i, key := range []string{"a", "b", "c"} {
		v, ok := data[key]
		if !ok {
			if key == "a" {
				return nil, fmt.Errorf("%s: missing %q", kind, key)
			}
			continue
		}
		n, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("%s: %q must be a number", kind, key)
		}
		coeffs[i] = n
	}
	return NewForm(kind, coeffs[0], coeffs[1], coeffs[2])
}

type equationJSON struct {
	Origin       string    `json:"origin"`
	Standard     Standard  `json:"standard"`
	Vertex       Vertex    `json:"vertex"`
	Factored     *Factored `json:"factored"`
	Discriminant float64   `json:"discriminant"`
	YIntercept   float64   `json:"y_intercept"`
	XIntercepts  []float64 `json:"x_intercepts"`
	VertexPoint  []float64 `json:"vertex_point"`
}

// MarshalJSON encodes every derived property. Absent factored form and
// x-intercepts are null.
func (e *Equation) MarshalJSON() ([]byte, error) {
	vx, vy := e.VertexPoint()
	out := equationJSON{
		Origin:       e.origin.String(),
		Standard:     e.standard,
		Vertex:       e.vertex,
		Discriminant: e.Discriminant(),
		YIntercept:   e.yIntercept,
		VertexPoint:  []float64{vx, vy},
	}
	if e.hasRoots {
		f := e.factored
		out.Factored = &f
	}
	if e.hasXInts {
		out.XIntercepts = e.xIntercepts.Values()
	}
	return json.Marshal(out)
}
