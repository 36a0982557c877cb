package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/sevak/internal/core/forms"
	"github.com/hay-kot/sevak/internal/core/styles"
	"github.com/hay-kot/sevak/internal/core/validate"
	"github.com/hay-kot/sevak/pkg/iojson"
	"github.com/hay-kot/sevak/pkg/logutils"
)

type FormCmd struct {
	flags *Flags
}

// NewFormCmd creates a new form command
func NewFormCmd(flags *Flags) *FormCmd {
	return &FormCmd{flags: flags}
}

// Register adds the form command to the application
func (cmd *FormCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "form",
		Usage:     "Fill in a form interactively",
		UsageText: "sevak form <name>",
		Description: `Opens the named form in the terminal. Each input is validated as you type
with the same rules the client uses; submitting runs the full form check and
prints the values as JSON.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *FormCmd) run(ctx context.Context, c *cli.Command) error {
	if err := cmd.flags.Ready(); err != nil {
		return err
	}

	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("form name is required")
	}

	def, err := cmd.flags.Forms.Get(name)
	if err != nil {
		return err
	}

	logger := logutils.Component("form")
	form := def.NewForm()
	values := make(map[string]*string, len(def.Fields))

	err = buildHuhForm(def, form, values).
		WithTheme(styles.FormTheme()).
		WithProgramOptions(tea.WithOutput(os.Stderr)).
		RunWithContext(ctx)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("form: %w", err)
	}

	data := make(map[string]string, len(values))
	for field, v := range values {
		data[field] = *v
	}

	if !form.ValidateForm(data) {
		logger.Warn().Str("form", def.Name).Msg("submitted form failed validation")
		return fmt.Errorf("%w: %w", ErrFormInvalid, form.Err())
	}

	logger.Debug().Str("form", def.Name).Msg("form submitted")
	return iojson.WriteWith(c.Root().Writer, os.Stderr, data)
}

// buildHuhForm creates one huh input per field, bound to values and
// validated through form.
func buildHuhForm(def forms.Definition, form *validate.Form, values map[string]*string) *huh.Form {
	inputs := make([]huh.Field, 0, len(def.Fields))

	for _, f := range def.Fields {
		v := new(string)
		values[f.Name] = v

		label := f.Label
		if label == "" {
			label = f.Name
		}

		input := huh.NewInput().
			Key(f.Name).
			Title(label).
			Value(v).
			Validate(validate.HuhValidator(form, f.Name))
		if f.Secret {
			input = input.EchoMode(huh.EchoModePassword)
		}
		if f.Rule.Required {
			input = input.Description("required")
		}

		inputs = append(inputs, input)
	}

	return huh.NewForm(huh.NewGroup(inputs...).Title(def.Title))
}
