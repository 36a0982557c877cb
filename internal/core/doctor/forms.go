package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/hay-kot/sevak/internal/core/forms"
)

// FormsCheck reports every registered form, warning about fields that accept
// any value.
type FormsCheck struct {
	registry *forms.Registry
}

// NewFormsCheck creates a new forms check.
func NewFormsCheck(registry *forms.Registry) *FormsCheck {
	return &FormsCheck{registry: registry}
}

func (c *FormsCheck) Name() string {
	return "Forms"
}

func (c *FormsCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	for _, name := range c.registry.Names() {
		def, err := c.registry.Get(name)
		if err != nil {
			result.Items = append(result.Items, CheckItem{Label: name, Status: StatusFail, Detail: err.Error()})
			continue
		}

		if len(def.Fields) == 0 {
			result.Items = append(result.Items, CheckItem{Label: name, Status: StatusFail, Detail: "no fields"})
			continue
		}

		var open []string
		for _, f := range def.Fields {
			r := f.Rule
			if !r.Required && r.MinLength == 0 && r.MaxLength == 0 && r.Pattern == nil && r.Custom == nil {
				open = append(open, f.Name)
			}
		}

		item := CheckItem{
			Label:  name,
			Status: StatusPass,
			Detail: fmt.Sprintf("%d fields", len(def.Fields)),
		}
		if len(open) > 0 {
			item.Status = StatusWarn
			item.Detail = fmt.Sprintf("unconstrained fields: %s", strings.Join(open, ", "))
		}
		result.Items = append(result.Items, item)
	}

	return result
}
