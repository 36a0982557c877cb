package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/sevak/internal/core/styles"
	"github.com/hay-kot/sevak/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "sevak config validate [options]",
				Description: "Validates the configuration file and every rule file it includes: display sizes, presets, patterns, and length bounds.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// ConfigIssue is one problem found in the configuration.
type ConfigIssue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	issues := ConfigIssues(cmd.flags.ConfigErr)

	var err error
	if cmd.format == "json" {
		out := struct {
			Path   string        `json:"path"`
			Valid  bool          `json:"valid"`
			Issues []ConfigIssue `json:"issues,omitempty"`
		}{
			Path:   cmd.flags.ConfigPath,
			Valid:  len(issues) == 0,
			Issues: issues,
		}
		err = iojson.WriteWith(c.Root().Writer, os.Stderr, out)
	} else {
		err = writeConfigIssues(c.Root().Writer, cmd.flags.ConfigPath, issues)
	}
	if err != nil {
		return err
	}

	if len(issues) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// ConfigIssues flattens a config load error into one issue per field. Errors
// that are not field errors (unreadable file, bad YAML) become a single issue.
func ConfigIssues(err error) []ConfigIssue {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []ConfigIssue{{Message: err.Error()}}
	}

	issues := make([]ConfigIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, ConfigIssue{Field: fe.Field, Message: fe.Err.Error()})
	}
	return issues
}

func writeConfigIssues(w io.Writer, path string, issues []ConfigIssue) error {
	if _, err := fmt.Fprintln(w, styles.TextMutedStyle.Render(path)); err != nil {
		return err
	}

	if len(issues) == 0 {
		_, err := fmt.Fprintln(w, styles.TextSuccessStyle.Render(styles.IconPass+" Configuration is valid"))
		return err
	}

	for _, issue := range issues {
		field := issue.Field
		if field == "" {
			field = "config"
		}
		_, err := fmt.Fprintf(w, "%s %s: %s\n",
			styles.TextErrorStyle.Render(styles.IconFail),
			styles.TextForegroundBoldStyle.Render(field),
			issue.Message,
		)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, styles.TextErrorStyle.Render(fmt.Sprintf("%d error(s) found", len(issues))))
	return err
}
