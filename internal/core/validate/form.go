package validate

import (
	"errors"
	"maps"
	"slices"

	"github.com/hay-kot/criterio"
)

// Form owns the rule set and the error map for one mounted form. It is not
// safe for concurrent use; a form has a single writer, the user editing it.
type Form struct {
	rules  RuleSet
	errors map[string]string
}

// NewForm returns a Form with an empty error map. rules must not be modified
// afterwards.
func NewForm(rules RuleSet) *Form {
	return &Form{
		rules:  rules,
		errors: map[string]string{},
	}
}

// Rules returns the rule set the form validates against.
func (f *Form) Rules() RuleSet { return f.rules }

// ValidateField validates a single value without touching the error map.
func (f *Form) ValidateField(field, value string) string {
	return f.rules.ValidateField(field, value)
}

// ValidateForm validates every field that has a rule, replacing the error map
// with the failures. Fields missing from data are validated as "" and entries
// in data without a rule are ignored. It reports whether the form is valid.
func (f *Form) ValidateForm(data map[string]string) bool {
	errs := make(map[string]string)
	for field := range f.rules {
		if msg := f.rules.ValidateField(field, data[field]); msg != "" {
			errs[field] = msg
		}
	}
	f.errors = errs
	return len(errs) == 0
}

// Errors returns a copy of the error map.
func (f *Form) Errors() map[string]string {
	return maps.Clone(f.errors)
}

// Error returns the current error for field, or "".
func (f *Form) Error(field string) string {
	return f.errors[field]
}

// HasErrors reports whether any field currently has an error.
func (f *Form) HasErrors() bool {
	return len(f.errors) > 0
}

// ClearErrors empties the error map.
func (f *Form) ClearErrors() {
	f.errors = map[string]string{}
}

// ClearError removes the error for field, if any.
func (f *Form) ClearError(field string) {
	delete(f.errors, field)
}

// SetFieldError records an error the rule set cannot know about, such as a
// server rejecting an already registered email.
func (f *Form) SetFieldError(field, message string) {
	f.errors[field] = message
}

// Err returns the error map as criterio field errors sorted by field name, or
// nil when the form has no errors.
func (f *Form) Err() error {
	var errs criterio.FieldErrorsBuilder
	for _, field := range slices.Sorted(maps.Keys(f.errors)) {
		errs = errs.Append(field, errors.New(f.errors[field]))
	}
	return errs.ToError()
}
