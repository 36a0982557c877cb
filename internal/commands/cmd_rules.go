package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/sevak/internal/core/forms"
	"github.com/hay-kot/sevak/internal/core/styles"
	"github.com/hay-kot/sevak/internal/core/validate"
)

type RulesCmd struct {
	flags *Flags
	raw   bool
	width int
}

// NewRulesCmd creates a new rules command
func NewRulesCmd(flags *Flags) *RulesCmd {
	return &RulesCmd{flags: flags}
}

// Register adds the rules command to the application
func (cmd *RulesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rules",
		Usage:     "Show forms and their validation rules",
		UsageText: "sevak rules [options] [form]",
		Description: `Lists every form (or only the named one) with the rules applied to each
field, after config overrides, followed by the preset catalog.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without rendering",
				Destination: &cmd.raw,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "word wrap width for rendered output",
				Value:       100,
				Destination: &cmd.width,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RulesCmd) run(ctx context.Context, c *cli.Command) error {
	if err := cmd.flags.Ready(); err != nil {
		return err
	}

	names := cmd.flags.Forms.Names()
	if name := c.Args().First(); name != "" {
		names = []string{name}
	}

	defs := make([]forms.Definition, 0, len(names))
	for _, name := range names {
		def, err := cmd.flags.Forms.Get(name)
		if err != nil {
			return err
		}
		defs = append(defs, def)
	}

	md := RulesMarkdown(defs)
	if cmd.raw {
		_, err := fmt.Fprint(c.Root().Writer, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(cmd.width),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render rules: %w", err)
	}

	_, err = fmt.Fprint(c.Root().Writer, out)
	return err
}

// RulesMarkdown documents defs and the preset catalog as markdown.
func RulesMarkdown(defs []forms.Definition) string {
	var b strings.Builder

	b.WriteString("# Forms\n\n")
	for _, def := range defs {
		fmt.Fprintf(&b, "## %s\n\n", def.Name)
		if def.Title != "" {
			fmt.Fprintf(&b, "%s\n\n", def.Title)
		}

		b.WriteString("| Field | Label | Rule |\n|---|---|---|\n")
		for _, f := range def.Fields {
			fmt.Fprintf(&b, "| `%s` | %s | %s |\n", f.Name, f.Label, DescribeRule(f.Rule))
		}
		b.WriteString("\n")
	}

	b.WriteString("# Presets\n\n")
	for _, name := range validate.PresetNames() {
		rule, _ := validate.Preset(name)
		fmt.Fprintf(&b, "- `%s`: %s\n", name, DescribeRule(rule))
	}

	return b.String()
}

// DescribeRule summarises the constraints of r in one line.
func DescribeRule(r validate.Rule) string {
	var parts []string
	if r.Required {
		parts = append(parts, "required")
	}
	if r.MinLength > 0 {
		parts = append(parts, fmt.Sprintf("min %d", r.MinLength))
	}
	if r.MaxLength > 0 {
		parts = append(parts, fmt.Sprintf("max %d", r.MaxLength))
	}
	if r.Pattern != nil {
		parts = append(parts, "pattern `"+strings.ReplaceAll(r.Pattern.String(), "|", `\|`)+"`")
	}
	if r.Custom != nil {
		parts = append(parts, "custom check")
	}
	if len(parts) == 0 {
		return "optional"
	}
	return strings.Join(parts, ", ")
}
