package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/sevak/internal/core/scale"
	"github.com/hay-kot/sevak/internal/core/styles"
	"github.com/hay-kot/sevak/pkg/iojson"
	"github.com/hay-kot/sevak/pkg/logutils"
)

// Scale modes accepted by --mode.
const (
	ModeScale            = "scale"
	ModeVertical         = "vertical"
	ModeModerate         = "moderate"
	ModeModerateVertical = "moderate-vertical"
	ModeFont             = "font"
	ModeSize             = "size"
	ModeHeight           = "height"
	ModeWidth            = "width"
)

var scaleModes = []string{
	ModeScale, ModeVertical, ModeModerate, ModeModerateVertical,
	ModeFont, ModeSize, ModeHeight, ModeWidth,
}

type ScaleCmd struct {
	flags *Flags

	mode     string
	factor   float64
	width    float64
	height   float64
	terminal bool
	format   string
}

// NewScaleCmd creates a new scale command
func NewScaleCmd(flags *Flags) *ScaleCmd {
	return &ScaleCmd{flags: flags}
}

// Register adds the scale command to the application
func (cmd *ScaleCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "scale",
		Usage:     "Convert design sizes into device sizes",
		UsageText: "sevak scale [options] <size>...",
		Description: `Converts sizes authored against the 390x844 design canvas into sizes for a
display.

The display defaults to the one captured at startup from the config file.
Use --width and --height to size for another display, or --terminal to use
the size of the current terminal in cells.

Modes:
  scale, size, width     size * short / 390
  vertical, height       size * long / 844
  moderate, font         size + (scale - size) * factor
  moderate-vertical      size + (vertical - size) * factor`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "mode",
				Aliases:     []string{"m"},
				Usage:       "scaling mode",
				Value:       ModeScale,
				Destination: &cmd.mode,
			},
			&cli.Float64Flag{
				Name:        "factor",
				Usage:       "blend factor for moderated modes (defaults to display.factor)",
				Destination: &cmd.factor,
			},
			&cli.Float64Flag{
				Name:        "width",
				Usage:       "display width in logical pixels",
				Destination: &cmd.width,
			},
			&cli.Float64Flag{
				Name:        "height",
				Usage:       "display height in logical pixels",
				Destination: &cmd.height,
			},
			&cli.BoolFlag{
				Name:        "terminal",
				Usage:       "use the current terminal size as the display",
				Destination: &cmd.terminal,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

// ScaleResult is one converted size.
type ScaleResult struct {
	Input  float64 `json:"input"`
	Output float64 `json:"output"`
}

// ScaleReport is the JSON output of the scale command.
type ScaleReport struct {
	Mode    string        `json:"mode"`
	Factor  float64       `json:"factor"`
	Display scale.Metrics `json:"display"`
	Results []ScaleResult `json:"results"`
}

func (cmd *ScaleCmd) run(ctx context.Context, c *cli.Command) error {
	if err := cmd.flags.Ready(); err != nil {
		return err
	}

	if c.Args().Len() == 0 {
		return fmt.Errorf("at least one size is required")
	}

	sizes := make([]float64, 0, c.Args().Len())
	for _, arg := range c.Args().Slice() {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", arg, err)
		}
		sizes = append(sizes, v)
	}

	scaler, err := cmd.scaler()
	if err != nil {
		return err
	}

	factor := cmd.flags.Config.Display.FactorOrDefault()
	if c.IsSet("factor") {
		factor = cmd.factor
	}

	fn, err := scaleFunc(scaler, cmd.mode, factor)
	if err != nil {
		return err
	}

	report := ScaleReport{
		Mode:    cmd.mode,
		Factor:  factor,
		Display: scaler.Metrics(),
		Results: make([]ScaleResult, len(sizes)),
	}
	for i, size := range sizes {
		report.Results[i] = ScaleResult{Input: size, Output: fn(size)}
	}

	logger := logutils.Component("scale")
	logger.Debug().
		Str("mode", cmd.mode).
		Float64("factor", factor).
		Int("sizes", len(sizes)).
		Msg("scaled sizes")

	if cmd.format == "json" {
		return iojson.WriteWith(c.Root().Writer, os.Stderr, report)
	}
	return writeScaleText(c.Root().Writer, report)
}

// scaler picks the display: explicit flags, then the terminal, then the
// process default captured at startup.
func (cmd *ScaleCmd) scaler() (*scale.Scaler, error) {
	guideline := cmd.flags.Config.Display.Guideline()

	switch {
	case cmd.width > 0 || cmd.height > 0:
		if cmd.width <= 0 || cmd.height <= 0 {
			return nil, fmt.Errorf("--width and --height must both be positive")
		}
		return scale.NewWithGuideline(scale.Metrics{Width: cmd.width, Height: cmd.height}, guideline)
	case cmd.terminal:
		m, err := scale.TerminalMetrics(int(os.Stdout.Fd()))
		if err != nil {
			return nil, fmt.Errorf("read terminal size: %w", err)
		}
		return scale.NewWithGuideline(m, guideline)
	default:
		return scale.Default(), nil
	}
}

func scaleFunc(s *scale.Scaler, mode string, factor float64) (func(float64) float64, error) {
	switch mode {
	case ModeScale:
		return s.Scale, nil
	case ModeSize:
		return s.Size, nil
	case ModeWidth:
		return s.Width, nil
	case ModeVertical:
		return s.VerticalScale, nil
	case ModeHeight:
		return s.Height, nil
	case ModeModerate:
		return func(v float64) float64 { return s.ModerateScale(v, factor) }, nil
	case ModeFont:
		return func(v float64) float64 { return s.Font(v, factor) }, nil
	case ModeModerateVertical:
		return func(v float64) float64 { return s.ModerateVerticalScale(v, factor) }, nil
	default:
		return nil, fmt.Errorf("unknown mode %q (valid: %v)", mode, scaleModes)
	}
}

func writeScaleText(w io.Writer, r ScaleReport) error {
	header := fmt.Sprintf("%s  %s",
		styles.TextPrimaryBoldStyle.Render(r.Mode),
		styles.TextMutedStyle.Render(fmt.Sprintf("display %gx%g factor %g", r.Display.Width, r.Display.Height, r.Factor)),
	)
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, res := range r.Results {
		_, err := fmt.Fprintf(w, "  %s %s %s\n",
			strconv.FormatFloat(res.Input, 'f', -1, 64),
			styles.TextMutedStyle.Render("→"),
			strconv.FormatFloat(res.Output, 'f', 2, 64),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
