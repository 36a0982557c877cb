package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{
		"basicPassword", "currentPassword", "email", "name",
		"password", "phone", "required", "strongPassword",
	}, PresetNames())

	for _, name := range PresetNames() {
		rule, ok := Preset(name)
		assert.True(t, ok, name)
		assert.True(t, rule.Required, "%s should be required", name)
	}

	_, ok := Preset("zipcode")
	assert.False(t, ok)
}

func TestEmail(t *testing.T) {
	rs := RuleSet{"email": Email()}

	assert.Empty(t, rs.ValidateField("email", "seva@example.in"))
	assert.Empty(t, rs.ValidateField("email", "first.last+tag@sub.example.com"))
	assert.Equal(t, "Please enter a valid email address", rs.ValidateField("email", ""))
	assert.Equal(t, "Please enter a valid email address", rs.ValidateField("email", "not-an-email"))
	assert.Equal(t, "Please enter a valid email address", rs.ValidateField("email", "a@b"))
	assert.Equal(t, "Please enter a valid email address", rs.ValidateField("email", "a@b.com trailing"))
}

func TestCheckStrongPassword(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"Abcdef1!", ""},
		{"Ab1!", "Password must be at least 8 characters"},
		{"abcdefg1!", "Password must contain an uppercase letter"},
		{"ABCDEFG1!", "Password must contain a lowercase letter"},
		{"Abcdefgh!", "Password must contain a number"},
		{"Abcdefgh1", "Password must contain a special character"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckStrongPassword(tt.value).Message())
			assert.Equal(t, tt.want == "", CheckStrongPassword(tt.value).IsValid())
		})
	}
}

func TestPasswordPresetsShareStrengthCheck(t *testing.T) {
	weak := "password"
	for _, rule := range []Rule{Password(), BasicPassword(), StrongPassword()} {
		rs := RuleSet{"password": rule}
		assert.Equal(t, "Password must contain an uppercase letter", rs.ValidateField("password", weak))
	}

	current := RuleSet{"password": CurrentPassword()}
	assert.Empty(t, current.ValidateField("password", weak), "current password has no strength check")
	assert.Equal(t, "Current password is required", current.ValidateField("password", " "))
}

func TestCheckName(t *testing.T) {
	valid := []string{"Alice", "Ravi Kumar", "O'Brien", "Jean-Luc", "Dr. Sharma", "अर्जुन", "José"}
	for _, v := range valid {
		assert.True(t, CheckName(v).IsValid(), v)
	}

	invalid := map[string]string{
		"A":           "Name must be at least 2 characters",
		"Agent 007":   "Name can only contain letters, spaces, apostrophes, hyphens, and periods",
		"-Ravi":       "Name must start with a letter",
		"bob@example": "Name can only contain letters, spaces, apostrophes, hyphens, and periods",
	}
	for v, want := range invalid {
		assert.Equal(t, want, CheckName(v).Message(), v)
	}

	long := make([]rune, 51)
	for i := range long {
		long[i] = 'a'
	}
	assert.Equal(t, "Name must be no more than 50 characters", CheckName(string(long)).Message())
}

func TestCheckPhone(t *testing.T) {
	valid := []string{"9876543210", "+91 98765 43210", "(080) 2345-6789", "+447911123456"}
	for _, v := range valid {
		assert.True(t, CheckPhone(v).IsValid(), v)
	}

	assert.Equal(t, "Please enter a valid phone number", CheckPhone("12345").Message())
	assert.Equal(t, "Please enter a valid phone number", CheckPhone("1234567890123456").Message())
	assert.Equal(t, "Phone number can only contain digits", CheckPhone("98765abc10").Message())
}

func TestRequiredPreset(t *testing.T) {
	rs := RuleSet{
		"address": Required(""),
		"notes":   Required("Tell us what you need"),
	}
	assert.Equal(t, "address is required", rs.ValidateField("address", ""))
	assert.Equal(t, "Tell us what you need", rs.ValidateField("notes", "\t"))
	assert.Empty(t, rs.ValidateField("notes", "fix the tap"))
}
