package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/sevak/internal/core/forms"
	"github.com/hay-kot/sevak/internal/core/styles"
	"github.com/hay-kot/sevak/pkg/iojson"
	"github.com/hay-kot/sevak/pkg/logutils"
)

// ErrFormInvalid is returned when submitted values fail validation.
var ErrFormInvalid = errors.New("form is invalid")

type ValidateCmd struct {
	flags  *Flags
	form   string
	format string
	input  iojson.FileReader[map[string]string]
}

// NewValidateCmd creates a new validate command
func NewValidateCmd(flags *Flags) *ValidateCmd {
	return &ValidateCmd{flags: flags}
}

// Register adds the validate command to the application
func (cmd *ValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "validate",
		Usage:     "Validate form values against a form's rules",
		UsageText: "sevak validate --form <name> [-f values.json]",
		Description: `Reads a JSON object of field values and validates it against the named form.

Every field with a rule is checked; fields missing from the input are
validated as empty. Input fields without a rule are ignored.

Example:
  echo '{"email":"asha@example.in","password":"secret"}' | sevak validate --form login`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "form",
				Usage:       "form name (see 'sevak rules')",
				Required:    true,
				Destination: &cmd.form,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
			cmd.input.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

// ValidationReport is the JSON output of the validate command.
type ValidationReport struct {
	Form   string            `json:"form"`
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

func (cmd *ValidateCmd) run(ctx context.Context, c *cli.Command) error {
	if err := cmd.flags.Ready(); err != nil {
		return err
	}

	def, err := cmd.flags.Forms.Get(cmd.form)
	if err != nil {
		return err
	}

	values, err := cmd.input.Read()
	if err != nil {
		return fmt.Errorf("read values: %w", err)
	}

	report := Validate(def, values)

	logger := logutils.Component("validate")
	logger.Debug().
		Str("form", def.Name).
		Bool("valid", report.Valid).
		Int("errors", len(report.Errors)).
		Msg("validated form")

	if cmd.format == "json" {
		err = iojson.WriteWith(c.Root().Writer, os.Stderr, report)
	} else {
		err = writeValidationText(c.Root().Writer, def, report)
	}
	if err != nil {
		return err
	}

	if !report.Valid {
		return ErrFormInvalid
	}
	return nil
}

// Validate runs values through a fresh instance of def.
func Validate(def forms.Definition, values map[string]string) ValidationReport {
	form := def.NewForm()
	valid := form.ValidateForm(values)
	return ValidationReport{
		Form:   def.Name,
		Valid:  valid,
		Errors: form.Errors(),
	}
}

// writeValidationText prints one line per field in form order.
func writeValidationText(w io.Writer, def forms.Definition, r ValidationReport) error {
	title := def.Title
	if title == "" {
		title = def.Name
	}
	if _, err := fmt.Fprintln(w, styles.TextPrimaryBoldStyle.Render(title)); err != nil {
		return err
	}

	for _, f := range def.Fields {
		line := fmt.Sprintf("  %s %s", styles.TextSuccessStyle.Render(styles.IconPass), f.Name)
		if msg, ok := r.Errors[f.Name]; ok {
			line = fmt.Sprintf("  %s %s %s",
				styles.TextErrorStyle.Render(styles.IconFail),
				f.Name,
				styles.TextErrorStyle.Render(msg),
			)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	summary := styles.TextSuccessStyle.Render("valid")
	if !r.Valid {
		summary = styles.TextErrorStyle.Render(fmt.Sprintf("%d invalid field(s)", len(r.Errors)))
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}
