package validate

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleSet_ValidateField(t *testing.T) {
	okOrBad := func(v string) Result {
		if v == "ok" {
			return Valid()
		}
		return Invalid("bad value")
	}

	tests := []struct {
		name  string
		rule  Rule
		value string
		want  string
	}{
		{"no rules, empty", Rule{}, "", ""},
		{"no rules, non-empty", Rule{}, "hello", ""},
		{"required, empty", Rule{Required: true}, "", "field is required"},
		{"required, whitespace", Rule{Required: true}, "   ", "field is required"},
		{"required, non-empty", Rule{Required: true}, "x", ""},
		{"required, custom message", Rule{Required: true, Message: "fill me"}, "", "fill me"},
		{"min_length, empty optional skips", Rule{MinLength: 10}, "", ""},
		{"min_length, whitespace optional skips", Rule{MinLength: 10}, "  ", ""},
		{"min_length, too short", Rule{MinLength: 3, MaxLength: 5}, "ab", "field must be at least 3 characters"},
		{"min_length, exact", Rule{MinLength: 3, MaxLength: 5}, "abc", ""},
		{"max_length, too long", Rule{MinLength: 3, MaxLength: 5}, "abcdef", "field must be no more than 5 characters"},
		{"max_length, exact", Rule{MaxLength: 5}, "abcde", ""},
		{"length counts runes", Rule{MaxLength: 4}, "पूजा", ""},
		{"length override message", Rule{MinLength: 3, Message: "too short"}, "ab", "too short"},
		{"pattern, matches", Rule{Pattern: regexp.MustCompile(`\d+`)}, "123", ""},
		{"pattern, partial match fails", Rule{Pattern: regexp.MustCompile(`\d+`)}, "123abc", "field is invalid"},
		{"pattern, alternation full match", Rule{Pattern: regexp.MustCompile(`a|ab`)}, "ab", ""},
		{"pattern, override message", Rule{Pattern: regexp.MustCompile(`\d+`), Message: "digits only"}, "x", "digits only"},
		{"pattern, empty optional skips", Rule{Pattern: regexp.MustCompile(`\d+`)}, "", ""},
		{"custom, valid", Rule{Custom: okOrBad}, "ok", ""},
		{"custom, invalid message", Rule{Custom: okOrBad}, "no", "bad value"},
		{"custom, empty message falls back", Rule{Custom: func(string) Result { return Invalid("") }}, "x", "field is invalid"},
		{"custom ignores rule message", Rule{Custom: okOrBad, Message: "override"}, "no", "bad value"},
		{"custom skipped for empty optional", Rule{Custom: okOrBad}, "", ""},
		{"required before custom", Rule{Required: true, Custom: okOrBad}, "", "field is required"},
		{"min_length before pattern", Rule{MinLength: 4, Pattern: regexp.MustCompile(`\d+`)}, "ab", "field must be at least 4 characters"},
		{"pattern before custom", Rule{Pattern: regexp.MustCompile(`\d+`), Custom: okOrBad}, "ok", "field is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := RuleSet{"field": tt.rule}
			assert.Equal(t, tt.want, rs.ValidateField("field", tt.value))
		})
	}
}

func TestRuleSet_ValidateField_UnknownField(t *testing.T) {
	rs := RuleSet{"email": Email()}
	assert.Empty(t, rs.ValidateField("nonexistentField", "anything"))
	assert.Empty(t, rs.ValidateField("nonexistentField", ""))
}

func TestRuleSet_ValidateField_CustomPanicPropagates(t *testing.T) {
	rs := RuleSet{"field": {Custom: func(string) Result { panic("boom") }}}
	assert.PanicsWithValue(t, "boom", func() {
		rs.ValidateField("field", "x")
	})
}

func TestResult(t *testing.T) {
	assert.True(t, Valid().IsValid())
	assert.Empty(t, Valid().Message())

	r := Invalid("nope")
	assert.False(t, r.IsValid())
	assert.Equal(t, "nope", r.Message())
	assert.False(t, Invalid("").IsValid())
}

func TestCompilePattern(t *testing.T) {
	re, err := CompilePattern(`\d{6}`)
	require.NoError(t, err)
	assert.True(t, re.MatchString("560001"))
	assert.False(t, re.MatchString("5600012"))
	assert.False(t, re.MatchString("pin 560001"))

	_, err = CompilePattern(`(`)
	require.Error(t, err)

	assert.Panics(t, func() { MustCompilePattern(`[`) })
}
