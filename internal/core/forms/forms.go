// Package forms defines the marketplace forms and the rules their fields are
// validated with.
package forms

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hay-kot/sevak/internal/core/validate"
)

// ErrUnknownForm is returned when a form name is not registered.
var ErrUnknownForm = errors.New("unknown form")

// Field is one input of a form, in display order.
type Field struct {
	Name   string
	Label  string
	Secret bool // masked input (passwords)
	Rule   validate.Rule
}

// Definition is a named, ordered list of fields.
type Definition struct {
	Name   string
	Title  string
	Fields []Field
}

// Rules returns the rule set for the definition's fields.
func (d Definition) Rules() validate.RuleSet {
	rs := make(validate.RuleSet, len(d.Fields))
	for _, f := range d.Fields {
		rs[f.Name] = f.Rule
	}
	return rs
}

// NewForm returns a fresh validate.Form for one mounted instance of the form.
func (d Definition) NewForm() *validate.Form {
	return validate.NewForm(d.Rules())
}

// Field returns the field named name.
func (d Definition) Field(name string) (Field, bool) {
	i := slices.IndexFunc(d.Fields, func(f Field) bool { return f.Name == name })
	if i < 0 {
		return Field{}, false
	}
	return d.Fields[i], true
}

// Registry holds form definitions by name.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry returns a registry holding defs.
func NewRegistry(defs ...Definition) *Registry {
	r := &Registry{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		r.defs[d.Name] = d
	}
	return r
}

// Get returns the definition registered under name.
func (r *Registry) Get(name string) (Definition, error) {
	d, ok := r.defs[name]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownForm, name)
	}
	return d, nil
}

// Names returns the registered form names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Merge applies override on top of the registered form with the same name.
// Fields with a matching name replace the existing rule and label in place,
// new fields are appended, and unknown forms are registered as-is. An empty
// Title keeps the existing one.
func (r *Registry) Merge(override Definition) {
	base, ok := r.defs[override.Name]
	if !ok {
		r.defs[override.Name] = override
		return
	}

	merged := Definition{
		Name:   base.Name,
		Title:  base.Title,
		Fields: slices.Clone(base.Fields),
	}
	if override.Title != "" {
		merged.Title = override.Title
	}

	for _, f := range override.Fields {
		i := slices.IndexFunc(merged.Fields, func(existing Field) bool { return existing.Name == f.Name })
		if i < 0 {
			merged.Fields = append(merged.Fields, f)
			continue
		}
		if f.Label == "" {
			f.Label = merged.Fields[i].Label
		}
		merged.Fields[i] = f
	}

	r.defs[override.Name] = merged
}
