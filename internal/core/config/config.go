// Package config handles configuration loading and validation for sevak.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/sevak/internal/core/forms"
	"github.com/hay-kot/sevak/internal/core/scale"
	"github.com/hay-kot/sevak/internal/core/validate"
)

// Config holds the application configuration.
type Config struct {
	Display   DisplayConfig         `yaml:"display"`
	RuleFiles []string              `yaml:"rule_files"` // doublestar globs, relative to the config file
	Forms     map[string]FormConfig `yaml:"forms"`
}

// DisplayConfig describes the display the client is sized for and the design
// canvas sizes are authored against.
type DisplayConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	GuidelineWidth  float64 `yaml:"guideline_width"`
	GuidelineHeight float64 `yaml:"guideline_height"`
	// Factor is the moderated-scale blend. nil means scale.DefaultFactor; 0
	// is a valid value that disables moderated scaling.
	Factor *float64 `yaml:"factor"`
}

// FormConfig overrides or defines a form.
type FormConfig struct {
	Title  string        `yaml:"title"`
	Fields []FieldConfig `yaml:"fields"`
}

// FieldConfig is the YAML form of a validate.Rule.
type FieldConfig struct {
	Name      string `yaml:"name"`
	Label     string `yaml:"label"`
	Secret    bool   `yaml:"secret"`
	Preset    string `yaml:"preset"`   // catalog rule to start from
	Required  *bool  `yaml:"required"` // nil keeps the preset's value
	MinLength int    `yaml:"min_length"`
	MaxLength int    `yaml:"max_length"`
	Pattern   string `yaml:"pattern"` // must match the entire value
	Message   string `yaml:"message"`
}

// ruleFile is the shape of a file matched by rule_files.
type ruleFile struct {
	Forms map[string]FormConfig `yaml:"forms"`
}

// DefaultConfig returns a Config sized for the reference display.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Width:           scale.GuidelineBaseWidth,
			Height:          scale.GuidelineBaseHeight,
			GuidelineWidth:  scale.GuidelineBaseWidth,
			GuidelineHeight: scale.GuidelineBaseHeight,
		},
		Forms: map[string]FormConfig{},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			if err := cfg.loadRuleFiles(filepath.Dir(configPath)); err != nil {
				return nil, err
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// loadRuleFiles merges the forms of every file matched by RuleFiles. Files
// are applied in sorted order; a later field with the same name wins.
func (c *Config) loadRuleFiles(baseDir string) error {
	var paths []string
	for _, pattern := range c.RuleFiles {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(baseDir, pattern)
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return fmt.Errorf("rule_files %q: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}

	slices.Sort(paths)
	paths = slices.Compact(paths)

	if c.Forms == nil {
		c.Forms = map[string]FormConfig{}
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read rule file: %w", err)
		}

		var rf ruleFile
		if err := yaml.Unmarshal(data, &rf); err != nil {
			return fmt.Errorf("parse rule file %s: %w", path, err)
		}

		for name, fc := range rf.Forms {
			c.Forms[name] = mergeFormConfig(c.Forms[name], fc)
		}
		log.Debug().Str("path", path).Int("forms", len(rf.Forms)).Msg("loaded rule file")
	}

	return nil
}

func mergeFormConfig(base, over FormConfig) FormConfig {
	if over.Title != "" {
		base.Title = over.Title
	}
	for _, f := range over.Fields {
		i := slices.IndexFunc(base.Fields, func(existing FieldConfig) bool { return existing.Name == f.Name })
		if i < 0 {
			base.Fields = append(base.Fields, f)
			continue
		}
		base.Fields[i] = f
	}
	return base
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Display.Width == 0 {
		c.Display.Width = defaults.Display.Width
	}
	if c.Display.Height == 0 {
		c.Display.Height = defaults.Display.Height
	}
	if c.Display.GuidelineWidth == 0 {
		c.Display.GuidelineWidth = defaults.Display.GuidelineWidth
	}
	if c.Display.GuidelineHeight == 0 {
		c.Display.GuidelineHeight = defaults.Display.GuidelineHeight
	}
	if c.Forms == nil {
		c.Forms = map[string]FormConfig{}
	}
}

// FactorOrDefault returns the configured blend factor.
func (d DisplayConfig) FactorOrDefault() float64 {
	if d.Factor == nil {
		return scale.DefaultFactor
	}
	return *d.Factor
}

// Metrics returns the configured display metrics.
func (d DisplayConfig) Metrics() scale.Metrics {
	return scale.Metrics{Width: d.Width, Height: d.Height}
}

// Guideline returns the configured design canvas.
func (d DisplayConfig) Guideline() scale.Guideline {
	return scale.Guideline{Width: d.GuidelineWidth, Height: d.GuidelineHeight}
}

// Scaler builds a scaler for the configured display and canvas.
func (d DisplayConfig) Scaler() (*scale.Scaler, error) {
	return scale.NewWithGuideline(d.Metrics(), d.Guideline())
}

// Rule converts the field config into a validation rule. The preset, if any,
// is the starting point; explicit values override it.
func (f FieldConfig) Rule() (validate.Rule, error) {
	var rule validate.Rule
	if f.Preset != "" {
		preset, ok := validate.Preset(f.Preset)
		if !ok {
			return validate.Rule{}, fmt.Errorf("unknown preset %q", f.Preset)
		}
		rule = preset
	}

	if f.Required != nil {
		rule.Required = *f.Required
	}
	if f.MinLength > 0 {
		rule.MinLength = f.MinLength
	}
	if f.MaxLength > 0 {
		rule.MaxLength = f.MaxLength
	}
	if f.Pattern != "" {
		re, err := validate.CompilePattern(f.Pattern)
		if err != nil {
			return validate.Rule{}, err
		}
		rule.Pattern = re
	}
	if f.Message != "" {
		rule.Message = f.Message
	}

	return rule, nil
}

// Definition converts the form config into a form definition named name.
func (fc FormConfig) Definition(name string) (forms.Definition, error) {
	def := forms.Definition{Name: name, Title: fc.Title}
	for _, f := range fc.Fields {
		rule, err := f.Rule()
		if err != nil {
			return forms.Definition{}, fmt.Errorf("form %q: field %q: %w", name, f.Name, err)
		}
		def.Fields = append(def.Fields, forms.Field{
			Name:   f.Name,
			Label:  f.Label,
			Secret: f.Secret,
			Rule:   rule,
		})
	}
	return def, nil
}

// Registry returns the built-in forms with the configured forms merged on
// top, in sorted form-name order.
func (c *Config) Registry() (*forms.Registry, error) {
	reg := forms.Builtin()

	names := make([]string, 0, len(c.Forms))
	for name := range c.Forms {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		def, err := c.Forms[name].Definition(name)
		if err != nil {
			return nil, err
		}
		reg.Merge(def)
	}

	return reg, nil
}
