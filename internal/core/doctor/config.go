package doctor

import (
	"context"
	"errors"
	"os"

	"github.com/hay-kot/criterio"
)

// ConfigCheck reports whether the config file loaded, listing every field
// error when it did not.
type ConfigCheck struct {
	path string
	err  error
}

// NewConfigCheck creates a config check for the file at path. err is the
// error returned when loading it, if any.
func NewConfigCheck(path string, err error) *ConfigCheck {
	return &ConfigCheck{path: path, err: err}
}

func (c *ConfigCheck) Name() string {
	return "Config"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if c.err == nil {
		detail := c.path
		if _, err := os.Stat(c.path); errors.Is(err, os.ErrNotExist) {
			detail = "not found, using defaults"
		}
		result.Items = append(result.Items, CheckItem{
			Label:  "config file",
			Status: StatusPass,
			Detail: detail,
		})
		return result
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(c.err, &fieldErrs) {
		result.Items = append(result.Items, CheckItem{
			Label:  "config file",
			Status: StatusFail,
			Detail: c.err.Error(),
		})
		return result
	}

	for _, fe := range fieldErrs {
		result.Items = append(result.Items, CheckItem{
			Label:  fe.Field,
			Status: StatusFail,
			Detail: fe.Err.Error(),
		})
	}

	return result
}
