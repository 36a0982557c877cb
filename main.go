package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/sevak/internal/commands"
	"github.com/hay-kot/sevak/internal/core/config"
	"github.com/hay-kot/sevak/internal/core/scale"
	"github.com/hay-kot/sevak/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "sevak",
		Usage:     "Scaling and form validation toolkit for the sevak marketplace client",
		UsageText: "sevak [global options] command [command options]",
		Description: `sevak exposes the engines shared by every screen of the marketplace client.

'sevak scale' converts design sizes authored on the 390x844 canvas into
sizes for a display. 'sevak validate' and 'sevak form' run values through
the same form rules the client uses for login, sign up, profile, booking,
and achievement screens.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("SEVAK_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("SEVAK_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("SEVAK_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			// Config errors are reported by the commands so that
			// 'config validate' can still describe them.
			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				log.Debug().Err(err).Str("path", flags.ConfigPath).Msg("config failed to load")
				flags.ConfigErr = err
				return ctx, nil
			}
			flags.Config = cfg

			registry, err := cfg.Registry()
			if err != nil {
				flags.ConfigErr = err
				return ctx, nil
			}
			flags.Forms = registry

			// Display metrics are captured once per process.
			scaler, err := cfg.Display.Scaler()
			if err != nil {
				flags.ConfigErr = err
				return ctx, nil
			}
			scale.InitWith(scaler)

			log.Debug().
				Float64("width", cfg.Display.Width).
				Float64("height", cfg.Display.Height).
				Int("forms", len(registry.Names())).
				Msg("sevak ready")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewScaleCmd(flags).Register(app)
	app = commands.NewValidateCmd(flags).Register(app)
	app = commands.NewFormCmd(flags).Register(app)
	app = commands.NewRulesCmd(flags).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags).Register(app)

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
