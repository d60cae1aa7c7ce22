package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rustyeddy/tradecharts/chart"
	"github.com/rustyeddy/tradecharts/config"
	"github.com/rustyeddy/tradecharts/id"
	"github.com/rustyeddy/tradecharts/market"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the draw commands for one frame",
	Long: `Resolve the visible candles of the sample series and print their
draw commands.

The view comes from --left/--right when given, otherwise from the camera
after the config's pan/zoom steps.

Examples:
  tradecharts render
  tradecharts render --left -200 --right 400 --format json
  tradecharts render -c chart.yaml`,
	RunE: runRender,
}

var (
	renderLeft   float64
	renderRight  float64
	renderFormat string
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().Float64Var(&renderLeft, "left", 0, "left edge of the view in chart pixels")
	renderCmd.Flags().Float64Var(&renderRight, "right", 0, "right edge of the view in chart pixels")
	renderCmd.Flags().StringVar(&renderFormat, "format", "", "output format: yaml or json (overrides config)")
}

// Frame is one rendered view.
type Frame struct {
	ID        string              `json:"id" yaml:"id"`
	ViewLeft  float64             `json:"view_left" yaml:"view_left"`
	ViewRight float64             `json:"view_right" yaml:"view_right"`
	Visible   chart.IndexRange    `json:"visible" yaml:"visible"`
	Commands  []chart.DrawCommand `json:"commands" yaml:"commands"`
}

// DrawCandle makes Frame a chart.Renderer that records what it is given.
func (f *Frame) DrawCandle(cmd chart.DrawCommand) error {
	f.Commands = append(f.Commands, cmd)
	return nil
}

// RenderFrame draws the visible part of v into a new frame.
func RenderFrame(v *chart.Viewport, left, right float64) (*Frame, error) {
	f := &Frame{
		ID:        id.Frame(),
		ViewLeft:  left,
		ViewRight: right,
		Visible:   v.VisibleRange(left, right),
		Commands:  []chart.DrawCommand{},
	}
	if _, err := v.Render(f, left, right); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteFrame encodes f as yaml or json.
func WriteFrame(w io.Writer, f *Frame, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// viewBounds picks the view from explicit flags or the configured camera.
func viewBounds(cmd *cobra.Command, cfg *config.Config) (float64, float64) {
	if cmd.Flags().Changed("left") || cmd.Flags().Changed("right") {
		return renderLeft, renderRight
	}
	cam := chart.NewCamera(cfg.Chart.Width, cfg.Chart.Height)
	cfg.Camera.Apply(cam)
	return cam.Bounds()
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	v, err := chart.NewViewportWithLayout(market.NewSeriesFrom(market.SampleCandles()), cfg.Chart)
	if err != nil {
		return err
	}

	left, right := viewBounds(cmd, cfg)
	f, err := RenderFrame(v, left, right)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	log.Debug("frame rendered",
		zap.String("frame", f.ID),
		zap.Float64("left", left),
		zap.Float64("right", right),
		zap.Stringer("visible", f.Visible),
	)

	format := cfg.Render.Format
	if renderFormat != "" {
		format = renderFormat
	}
	return WriteFrame(cmd.OutOrStdout(), f, format)
}
