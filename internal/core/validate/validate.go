package validate

import (
	"slices"
	"strings"
	"unicode"
)

// emailPattern is intentionally permissive; the server has the final say.
var emailPattern = MustCompilePattern(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// Email requires a well-formed email address.
func Email() Rule {
	return Rule{
		Required: true,
		Pattern:  emailPattern,
		Message:  "Please enter a valid email address",
	}
}

// StrongPassword requires a password that passes CheckStrongPassword.
func StrongPassword() Rule {
	return Rule{Required: true, Custom: CheckStrongPassword}
}

// Password is the password rule used on sign up and reset screens.
func Password() Rule {
	return Rule{Required: true, Custom: CheckStrongPassword}
}

// BasicPassword is kept separate from Password so screens can diverge, but
// today it runs the same strength check.
func BasicPassword() Rule {
	return Rule{Required: true, Custom: CheckStrongPassword}
}

// CurrentPassword only requires a value. It validates an existing credential,
// so strength rules do not apply.
func CurrentPassword() Rule {
	return Rule{Required: true, Message: "Current password is required"}
}

// Name requires a personal name made of letters and name punctuation.
func Name() Rule {
	return Rule{Required: true, Custom: CheckName}
}

// Phone requires a phone number that passes CheckPhone.
func Phone() Rule {
	return Rule{Required: true, Custom: CheckPhone}
}

// Required returns a rule for free-text fields that only need a value. An
// empty message uses the default "<field> is required".
func Required(message string) Rule {
	return Rule{Required: true, Message: message}
}

var presets = map[string]func() Rule{
	"email":           Email,
	"password":        Password,
	"strongPassword":  StrongPassword,
	"basicPassword":   BasicPassword,
	"currentPassword": CurrentPassword,
	"name":            Name,
	"phone":           Phone,
	"required":        func() Rule { return Required("") },
}

// Preset returns the catalog rule registered under name.
func Preset(name string) (Rule, bool) {
	fn, ok := presets[name]
	if !ok {
		return Rule{}, false
	}
	return fn(), true
}

// PresetNames returns the catalog names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

const (
	minPasswordLength = 8
	minNameLength     = 2
	maxNameLength     = 50
	minPhoneDigits    = 10
	maxPhoneDigits    = 15
)

// CheckStrongPassword requires at least 8 characters with an upper case
// letter, a lower case letter, a digit, and a symbol.
func CheckStrongPassword(value string) Result {
	if len([]rune(value)) < minPasswordLength {
		return Invalid("Password must be at least 8 characters")
	}

	var upper, lower, digit, symbol bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}

	switch {
	case !upper:
		return Invalid("Password must contain an uppercase letter")
	case !lower:
		return Invalid("Password must contain a lowercase letter")
	case !digit:
		return Invalid("Password must contain a number")
	case !symbol:
		return Invalid("Password must contain a special character")
	}
	return Valid()
}

// CheckName accepts letters from any script, marks, spaces, and the
// punctuation found in names (apostrophe, hyphen, period).
func CheckName(value string) Result {
	name := strings.TrimSpace(value)
	n := len([]rune(name))
	if n < minNameLength {
		return Invalid("Name must be at least 2 characters")
	}
	if n > maxNameLength {
		return Invalid("Name must be no more than 50 characters")
	}

	for _, r := range name {
		switch {
		case unicode.IsLetter(r), unicode.IsMark(r), r == ' ', r == '\'', r == '-', r == '.':
		default:
			return Invalid("Name can only contain letters, spaces, apostrophes, hyphens, and periods")
		}
	}
	if !unicode.IsLetter([]rune(name)[0]) {
		return Invalid("Name must start with a letter")
	}
	return Valid()
}

// CheckPhone accepts 10 to 15 digits with an optional leading plus. Spaces,
// hyphens, and parentheses are ignored.
func CheckPhone(value string) Result {
	s := strings.TrimSpace(value)
	s = strings.TrimPrefix(s, "+")

	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ', r == '-', r == '(', r == ')':
		default:
			return Invalid("Phone number can only contain digits")
		}
	}

	if digits < minPhoneDigits || digits > maxPhoneDigits {
		return Invalid("Please enter a valid phone number")
	}
	return Valid()
}
