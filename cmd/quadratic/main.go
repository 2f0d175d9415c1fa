// cmd/quadratic — command line front end for goquadratic.
//
// Usage:
//
//	quadratic describe -- 1 0 -4
//	quadratic eval --form vertex --x 1 -- 2 3 -5
//	quadratic solve --y 5 --method factored -- 1 0 -4
//	quadratic convert --to factored -- 1 -2 1
//	quadratic fit 0,1 1,0 2,3
//	quadratic plot -o parabola.png -- 1 0 -4
//
// Flags go before "--" so negative coefficients are not read as flags.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	quad "github.com/njchilds90/goquadratic"
	"github.com/njchilds90/goquadratic/internal/chart"
	"github.com/njchilds90/goquadratic/internal/config"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	form       string
	configPath string
	jsonOut    bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "quadratic",
		Short: "Convert, evaluate, solve and plot quadratic equations",
		Long: `quadratic works with y = ax^2 + bx + c in standard, vertex and factored form.
Coefficients are given as three numbers a b c, interpreted according to --form.
Put them after "--" when any of them is negative.`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVarP(&opts.form, "form", "f", "standard", "Form of the coefficients: standard|vertex|factored")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to YAML config file")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "Print JSON instead of text")

	root.AddCommand(
		newDescribeCmd(opts),
		newEvalCmd(opts),
		newSolveCmd(opts),
		newConvertCmd(opts),
		newFitCmd(opts),
		newPlotCmd(opts),
	)
	return root
}

// parseEquation reads "a b c" positional arguments.
func parseEquation(opts *options, args []string) (*quad.Equation, error) {
	kind, err := quad.ParseKind(opts.form)
	if err != nil {
		return nil, err
	}
	var coeffs [3]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i+1, err)
		}
		coeffs[i] = v
	}
	return quad.NewEquation(coeffs[0], coeffs[1], coeffs[2], kind)
}

func parseKindFlag(s string) (quad.Kind, error) {
	k, err := quad.ParseKind(s)
	if err != nil {
		return 0, fmt.Errorf("--method/--to: %w", err)
	}
	return k, nil
}

func printResult(cmd *cobra.Command, opts *options, v interface{}, text string) error {
	if opts.jsonOut {
		return printJSON(cmd.OutOrStdout(), v)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newDescribeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "describe a b c",
		Short: "Show all three forms, intercepts and vertex",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseEquation(opts, args)
			if err != nil {
				return err
			}
			return printResult(cmd, opts, e, e.String())
		},
	}
}

func newEvalCmd(opts *options) *cobra.Command {
	var (
		x      float64
		method string
	)
	cmd := &cobra.Command{
		Use:   "eval a b c --x X",
		Short: "Evaluate y at x",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseEquation(opts, args)
			if err != nil {
				return err
			}
			k, err := parseKindFlag(method)
			if err != nil {
				return err
			}
			y, ok := e.EvaluateAt(x, k)
			if !ok {
				return fmt.Errorf("no %s form: equation has no real roots", k)
			}
			return printResult(cmd, opts, map[string]float64{"x": x, "y": y}, strconv.FormatFloat(y, 'g', -1, 64))
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "x value")
	cmd.Flags().StringVar(&method, "method", "standard", "Form used to evaluate")
	return cmd
}

func newSolveCmd(opts *options) *cobra.Command {
	var (
		y      float64
		method string
	)
	cmd := &cobra.Command{
		Use:   "solve a b c --y Y",
		Short: "Solve for x at y",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseEquation(opts, args)
			if err != nil {
				return err
			}
			k, err := parseKindFlag(method)
			if err != nil {
				return err
			}
			roots, ok := e.SolveForX(y, k)
			if !ok {
				return printResult(cmd, opts, []float64{}, "no real solution")
			}
			return printResult(cmd, opts, roots.Values(), "x = "+roots.String())
		},
	}
	cmd.Flags().Float64Var(&y, "y", 0, "y value")
	cmd.Flags().StringVar(&method, "method", "standard", "Form used to solve")
	return cmd
}

func newConvertCmd(opts *options) *cobra.Command {
	var (
		to    string
		latex bool
	)
	cmd := &cobra.Command{
		Use:   "convert a b c --to FORM",
		Short: "Convert to another form",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseEquation(opts, args)
			if err != nil {
				return err
			}
			k, err := parseKindFlag(to)
			if err != nil {
				return err
			}
			f, ok := e.Form(k)
			if !ok {
				return fmt.Errorf("no %s form: equation has no real roots", k)
			}
			text := f.String()
			if latex {
				text = f.LaTeX()
			}
			return printResult(cmd, opts, f, text)
		},
	}
	cmd.Flags().StringVar(&to, "to", "vertex", "Target form")
	cmd.Flags().BoolVar(&latex, "latex", false, "Print LaTeX")
	return cmd
}

func newFitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fit x,y x,y x,y [x,y...]",
		Short: "Fit a quadratic through points (least squares beyond three)",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pts := make([]quad.Point, len(args))
			for i, arg := range args {
				p, err := parsePoint(arg)
				if err != nil {
					return err
				}
				pts[i] = p
			}
			s, err := quad.FitPoints(pts...)
			if err != nil {
				return err
			}
			return printResult(cmd, opts, s, s.String())
		},
	}
}

func parsePoint(s string) (quad.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return quad.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return quad.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return quad.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return quad.Point{X: x, Y: y}, nil
}

func newPlotCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "plot a b c -o FILE",
		Short: "Draw the parabola with its vertex and intercepts",
		Long:  "Draw the parabola. The output format follows the file extension: " + strings.Join(chart.Formats, ", ") + ".",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))

			e, err := parseEquation(opts, args)
			if err != nil {
				return err
			}
			ext := strings.TrimPrefix(filepath.Ext(output), ".")
			if !supportedFormat(ext) {
				return fmt.Errorf("unsupported output format %q (want %s)", ext, strings.Join(chart.Formats, ", "))
			}
			chartOpts := chart.Options{
				Width:   cfg.Plot.Width,
				Height:  cfg.Plot.Height,
				Samples: cfg.Plot.Samples,
				Span:    cfg.Plot.Span,
			}
			if err := chart.Save(output, e, chartOpts); err != nil {
				return err
			}
			logger.Debug("plot written", "path", output, "equation", e.Standard().String())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "parabola.png", "Output file")
	return cmd
}

func supportedFormat(ext string) bool {
	for _, f := range chart.Formats {
		if f == ext {
			return true
		}
	}
	return false
}
