package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/sevak/internal/core/validate"
)

// Validate checks that the configuration is valid. Errors are returned as
// criterio field errors keyed by their YAML path.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		c.validateDisplay(),
		c.validateForms(),
	)
}

func (c *Config) validateDisplay() error {
	return criterio.ValidateStruct(
		criterio.Run("display.width", c.Display.Width, positive),
		criterio.Run("display.height", c.Display.Height, positive),
		criterio.Run("display.guideline_width", c.Display.GuidelineWidth, positive),
		criterio.Run("display.guideline_height", c.Display.GuidelineHeight, positive),
	)
}

func positive(v float64) error {
	if v <= 0 {
		return fmt.Errorf("must be greater than 0, got %v", v)
	}
	return nil
}

func (c *Config) validateForms() error {
	var errs criterio.FieldErrorsBuilder

	for _, name := range slices.Sorted(maps.Keys(c.Forms)) {
		form := c.Forms[name]
		seen := make(map[string]bool, len(form.Fields))

		for i, f := range form.Fields {
			prefix := fmt.Sprintf("forms.%s.fields[%d]", name, i)

			if f.Name == "" {
				errs = errs.Append(prefix+".name", fmt.Errorf("name is required"))
			} else if seen[f.Name] {
				errs = errs.Append(prefix+".name", fmt.Errorf("duplicate field name %q", f.Name))
			}
			seen[f.Name] = true

			if f.Preset != "" {
				if _, ok := validate.Preset(f.Preset); !ok {
					errs = errs.Append(prefix+".preset", fmt.Errorf("unknown preset %q (valid: %v)", f.Preset, validate.PresetNames()))
				}
			}

			if f.Pattern != "" {
				if _, err := validate.CompilePattern(f.Pattern); err != nil {
					errs = errs.Append(prefix+".pattern", err)
				}
			}

			if f.MinLength < 0 {
				errs = errs.Append(prefix+".min_length", fmt.Errorf("cannot be negative"))
			}
			if f.MaxLength < 0 {
				errs = errs.Append(prefix+".max_length", fmt.Errorf("cannot be negative"))
			}
			if f.MinLength > 0 && f.MaxLength > 0 && f.MinLength > f.MaxLength {
				errs = errs.Append(prefix+".min_length", fmt.Errorf("min_length %d exceeds max_length %d", f.MinLength, f.MaxLength))
			}
		}
	}

	return errs.ToError()
}
