package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/sevak/internal/core/config"
	"github.com/hay-kot/sevak/internal/core/forms"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Forms holds the built-in forms merged with configured overrides
	Forms *forms.Registry

	// ConfigErr is set when the Before hook could not load the config.
	// Commands other than 'config validate' refuse to run with it set.
	ConfigErr error
}

// Ready returns the error that prevented the config from loading, if any.
func (f *Flags) Ready() error {
	if f.ConfigErr != nil {
		return fmt.Errorf("load config: %w", f.ConfigErr)
	}
	return nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "sevak", "config.yaml")
}
