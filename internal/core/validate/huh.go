package validate

import "errors"

// HuhValidator adapts one field of form to the func(string) error signature
// used by huh inputs. Every call clears the field's previous error, so an edit
// gives immediate relief, and records the new failure if there is one.
func HuhValidator(form *Form, field string) func(string) error {
	return func(value string) error {
		form.ClearError(field)

		msg := form.ValidateField(field, value)
		if msg == "" {
			return nil
		}

		form.SetFieldError(field, msg)
		return errors.New(msg)
	}
}
