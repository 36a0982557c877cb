// Package validate provides the declarative form validation engine shared by
// every form in the client.
//
// A RuleSet maps field names to rules. Fields are validated independently; a
// field without a rule is never flagged. A Form pairs one RuleSet with the
// error map the UI renders beneath each input.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"
)

// Result is the outcome of a custom predicate.
type Result struct {
	invalid bool
	message string
}

// Valid returns a passing Result.
func Valid() Result { return Result{} }

// Invalid returns a failing Result. An empty message makes the engine fall
// back to "<field> is invalid".
func Invalid(message string) Result { return Result{invalid: true, message: message} }

// IsValid reports whether the predicate passed.
func (r Result) IsValid() bool { return !r.invalid }

// Message returns the failure message, empty for a passing Result.
func (r Result) Message() string { return r.message }

// Predicate validates a single field value.
type Predicate func(value string) Result

// Rule is the set of constraints for one field. MinLength and MaxLength are
// unset when zero and count runes, not bytes.
type Rule struct {
	Required  bool
	MinLength int
	MaxLength int
	// Pattern must match the entire value.
	Pattern *regexp.Regexp
	Custom  Predicate
	// Message overrides the default text for required, length, and pattern
	// failures. Custom failures use the predicate's own message.
	Message string
}

// RuleSet maps field names to their rules.
type RuleSet map[string]Rule

// ValidateField checks value against the rule registered for field and returns
// the first failure message, or "" when the value is valid or field has no rule.
// A panicking Custom predicate is not recovered.
func (rs RuleSet) ValidateField(field, value string) string {
	rule, ok := rs[field]
	if !ok {
		return ""
	}
	return rule.check(field, value)
}

func (r Rule) check(field, value string) string {
	empty := strings.TrimSpace(value) == ""

	if r.Required && empty {
		return r.messageOr("%s is required", field)
	}
	if empty {
		return ""
	}

	length := utf8.RuneCountInString(value)
	if r.MinLength > 0 && length < r.MinLength {
		return r.messageOr("%s must be at least %d characters", field, r.MinLength)
	}
	if r.MaxLength > 0 && length > r.MaxLength {
		return r.messageOr("%s must be no more than %d characters", field, r.MaxLength)
	}
	if r.Pattern != nil && !fullMatch(r.Pattern, value) {
		return r.messageOr("%s is invalid", field)
	}

	if r.Custom != nil {
		res := r.Custom(value)
		if res.IsValid() {
			return ""
		}
		if res.Message() != "" {
			return res.Message()
		}
		return fmt.Sprintf("%s is invalid", field)
	}

	return ""
}

func (r Rule) messageOr(format string, args ...any) string {
	if r.Message != "" {
		return r.Message
	}
	return fmt.Sprintf(format, args...)
}

// anchored caches the full-match form of every pattern the engine has seen.
var anchored sync.Map // *regexp.Regexp -> *regexp.Regexp

func fullMatch(re *regexp.Regexp, value string) bool {
	full, ok := anchored.Load(re)
	if !ok {
		full, _ = anchored.LoadOrStore(re, regexp.MustCompile(`^(?:`+re.String()+`)$`))
	}
	return full.(*regexp.Regexp).MatchString(value)
}

// CompilePattern compiles expr so that it only matches whole values.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", expr, err)
	}
	return re, nil
}

// MustCompilePattern is CompilePattern that panics on error. Use it for
// patterns that are compiled into the binary.
func MustCompilePattern(expr string) *regexp.Regexp {
	re, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}
	return re
}
