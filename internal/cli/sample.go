package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"honnef.co/go/falloff"
	"honnef.co/go/falloff/internal/config"
	"honnef.co/go/falloff/stroke"
)

// Row is one sample of a potential.
type Row struct {
	T      float64 `json:"t" yaml:"t"`
	Length float64 `json:"length" yaml:"length"`
	Weight float64 `json:"weight" yaml:"weight"`
}

func newSampleCmd(a *app) *cobra.Command {
	var (
		points string
		click  float64
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Evaluate a potential at evenly spaced points of a stroke.",
		Long: `Evaluate a potential at evenly spaced points of a stroke.

The stroke is given by its control points as "x,y x,y x,y …": an odd number
of at least three, where every consecutive triple starting at an even index
is a quadratic Bézier chunk.`,
		Example: `  falloff sample --points "0,0 50,0 100,0" --click 0.5 --action 20
  falloff sample --points "0,0 20,40 40,0 60,-40 80,0" --click 0.3 --kind exp --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := parsePoints(points)
			if err != nil {
				return err
			}
			s, err := stroke.NewStroke(pts...)
			if err != nil {
				return err
			}
			cfg := a.cfg
			if err := falloff.CheckParameters(click, cfg.Potential.ActionLength); err != nil {
				return err
			}

			p := falloff.New(cfg.Kind())
			p.Configure(s, click, cfg.Potential.ActionLength)

			ts := sampleParams(s, cfg.Sample)
			weights, err := falloff.Sample(cmd.Context(), p, ts, cfg.Sample.Workers)
			if err != nil {
				return err
			}
			rows := make([]Row, len(ts))
			for i, t := range ts {
				rows[i] = Row{T: t, Length: s.LengthAt(t), Weight: weights[i]}
			}
			a.log.Info("sampled potential",
				zap.Stringer("kind", cfg.Kind()),
				zap.Float64("click", click),
				zap.Float64("action_length", cfg.Potential.ActionLength),
				zap.Float64("stroke_length", s.Length()),
				zap.Int("samples", len(rows)))

			out := cmd.OutOrStdout()
			return render(out, resolveFormat(cfg.Output.Format, out), rows)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&points, "points", "p", "", `stroke control points, "x,y x,y x,y …"`)
	flags.Float64Var(&click, "click", 0.5, "click parameter in [0, 1]")
	flags.StringP("kind", "k", "bezier", "potential kind (bezier, exp)")
	flags.Float64P("action", "a", 20, "action length")
	flags.IntP("count", "n", 20, "number of intervals; count+1 samples are taken")
	flags.Int("workers", 0, "evaluation goroutines (0 uses GOMAXPROCS)")
	flags.Bool("by-length", false, "space samples evenly in arclength")
	flags.StringP("format", "f", config.FormatAuto, "output format (auto, table, yaml, json)")
	_ = cmd.MarkFlagRequired("points")

	mustBind(a.v, "potential.kind", flags.Lookup("kind"))
	mustBind(a.v, "potential.action_length", flags.Lookup("action"))
	mustBind(a.v, "sample.count", flags.Lookup("count"))
	mustBind(a.v, "sample.workers", flags.Lookup("workers"))
	mustBind(a.v, "sample.by_length", flags.Lookup("by-length"))
	mustBind(a.v, "output.format", flags.Lookup("format"))
	return cmd
}

func mustBind(v *viper.Viper, key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("cli: binding %s: %v", key, err))
	}
}

// parsePoints parses whitespace- or semicolon-separated "x,y" pairs.
func parsePoints(s string) ([]stroke.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
	pts := make([]stroke.Point, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("point %q: want x,y", f)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", f, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", f, err)
		}
		pts = append(pts, stroke.Pt(x, y))
	}
	return pts, nil
}

func sampleParams(s *stroke.Stroke, cfg config.SampleConfig) []float64 {
	ts := falloff.Params(cfg.Count)
	if !cfg.ByLength {
		return ts
	}
	total := s.Length()
	for i, u := range ts {
		ts[i] = s.ParamAtLength(u * total)
	}
	return ts
}

// resolveFormat turns "auto" into a table on terminals and YAML elsewhere.
func resolveFormat(format string, w io.Writer) string {
	if format != config.FormatAuto {
		return format
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return config.FormatTable
	}
	return config.FormatYAML
}

func render(w io.Writer, format string, rows []Row) error {
	switch format {
	case config.FormatTable:
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "t\tlength\tweight\t")
		for _, r := range rows {
			fmt.Fprintf(tw, "%.4f\t%.4f\t%.6f\t\n", r.T, r.Length, r.Weight)
		}
		return tw.Flush()
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatJSON:
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
