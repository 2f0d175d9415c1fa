package goquadratic

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// MCP Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

const errNoRealSolution = "no real solution"

// Tools lists the names HandleToolCall understands, in ToolSpec order.
func Tools() []string {
	return []string{"describe", "evaluate", "solve", "convert", "discriminant", "fit", "tool_spec"}
}

func HandleToolCall(req ToolRequest) ToolResponse {
	getEquation := func() (*Equation, error) {
		v, ok := req.Params["form"]
		if !ok {
			return nil, fmt.Errorf("missing param: form")
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("param form must be an object")
		}
		f, err := FormFromJSON(m)
		if err != nil {
			return nil, err
		}
		return FromForm(f)
	}
	getNumber := func(key string) (float64, error) {
		v, ok := req.Params[key]
		if !ok {
			return 0, fmt.Errorf("missing param: %s", key)
		}
		n, ok := v.(float64)
		if !ok {
			return 0, fmt.Errorf("param %s must be a number", key)
		}
		if err := checkFinite(n); err != nil {
			return 0, fmt.Errorf("param %s: %w", key, err)
		}
		return n, nil
	}
	getKind := func(key string) (Kind, error) {
		v, ok := req.Params[key]
		if !ok {
			return KindStandard, nil
		}
		s, ok := v.(string)
		if !ok {
			return 0, fmt.Errorf("param %s must be a string", key)
		}
		return ParseKind(s)
	}
	getPoints := func(key string) ([]Point, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("param %s must be array", key)
		}
		pts := make([]Point, len(raw))
		for i, r := range raw {
			pair, ok := r.([]interface{})
			if !ok || len(pair) != 2 {
				return nil, fmt.Errorf("param %s[%d] must be an [x, y] pair", key, i)
			}
			x, xok := pair[0].(float64)
			y, yok := pair[1].(float64)
			if !xok || !yok {
				return nil, fmt.Errorf("param %s[%d] must hold numbers", key, i)
			}
			pts[i] = Point{X: x, Y: y}
		}
		return pts, nil
	}
	respond := func(f Form) ToolResponse {
		a, b, c := f.Coefficients()
		return ToolResponse{
			Result: map[string]interface{}{"form": f.Kind().String(), "a": a, "b": b, "c": c},
			LaTeX:  f.LaTeX(),
			String: f.String(),
		}
	}
	respondRoots := func(r Roots, ok bool) ToolResponse {
		if !ok {
			return ToolResponse{Result: []float64{}, Error: errNoRealSolution}
		}
		if err := checkFinite(r.Values()...); err != nil {
			return ToolResponse{Error: "solve: " + err.Error()}
		}
		return ToolResponse{Result: r.Values(), String: r.String()}
	}

	switch req.Tool {
	case "describe":
		e, err := getEquation()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		f, _ := e.Form(e.Origin())
		return ToolResponse{Result: e, LaTeX: f.LaTeX(), String: e.String()}

	case "evaluate":
		e, err := getEquation()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		x, err := getNumber("x")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		method, err := getKind("method")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		y, ok := e.EvaluateAt(x, method)
		if !ok {
			return ToolResponse{Error: fmt.Sprintf("no %s form: %s", method, errNoRealSolution)}
		}
		if err := checkFinite(y); err != nil {
			return ToolResponse{Error: "evaluate: " + err.Error()}
		}
		return ToolResponse{Result: y, String: formatNum(y)}

	case "solve":
		e, err := getEquation()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		y, err := getNumber("y")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		method, err := getKind("method")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respondRoots(e.SolveForX(y, method))

	case "convert":
		e, err := getEquation()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		to, err := getKind("to")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		f, ok := e.Form(to)
		if !ok {
			return ToolResponse{Error: fmt.Sprintf("no %s form: %s", to, errNoRealSolution)}
		}
		return respond(f)

	case "discriminant":
		e, err := getEquation()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		d := e.Discriminant()
		return ToolResponse{Result: d, String: formatNum(d)}

	case "fit":
		pts, err := getPoints("points")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		s, err := FitPoints(pts...)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(s)

	case "tool_spec":
		return ToolResponse{Result: ToolSpec(), String: "MCP tool specification"}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// ============================================================
// Tool spec
// ============================================================

func ToolSpec() string {
	formHelp := `form={"form":"standard|vertex|factored","a":n,"b":n,"c":n}`
	tools := []map[string]interface{}{
		ts("describe", "All three forms, intercepts, vertex and discriminant. "+formHelp, []string{"form"}, map[string]string{"form": "object"}),
		ts("evaluate", "y at x. Optional method selects the form used", []string{"form", "x"}, map[string]string{"form": "object", "x": "number", "method": "string"}),
		ts("solve", "x value(s) at y. Optional method selects the form used", []string{"form", "y"}, map[string]string{"form": "object", "y": "number", "method": "string"}),
		ts("convert", "Convert to the form named by to", []string{"form", "to"}, map[string]string{"form": "object", "to": "string"}),
		ts("discriminant", "b^2 - 4ac of the standard form", []string{"form"}, map[string]string{"form": "object"}),
		ts("fit", "Quadratic through points=[[x,y],...] (3 exact, more least squares)", []string{"points"}, map[string]string{"points": "array"}),
		ts("tool_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
