package forms

import "github.com/hay-kot/sevak/internal/core/validate"

var (
	datePattern    = validate.MustCompilePattern(`\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])`)
	pincodePattern = validate.MustCompilePattern(`[1-9]\d{5}`)
	yearPattern    = validate.MustCompilePattern(`(19|20)\d{2}`)
)

func optional(maxLength int) validate.Rule {
	return validate.Rule{MaxLength: maxLength}
}

func address() validate.Rule {
	return validate.Rule{Required: true, MinLength: 10, MaxLength: 200}
}

func date() validate.Rule {
	return validate.Rule{Required: true, Pattern: datePattern, Message: "Please enter a date as YYYY-MM-DD"}
}

// Builtin returns a registry holding the forms the client ships with.
func Builtin() *Registry {
	return NewRegistry(
		Definition{
			Name:  "login",
			Title: "Log in",
			Fields: []Field{
				{Name: "email", Label: "Email", Rule: validate.Email()},
				{Name: "password", Label: "Password", Secret: true, Rule: validate.CurrentPassword()},
			},
		},
		Definition{
			Name:  "signup",
			Title: "Create an account",
			Fields: []Field{
				{Name: "name", Label: "Full name", Rule: validate.Name()},
				{Name: "email", Label: "Email", Rule: validate.Email()},
				{Name: "phone", Label: "Phone", Rule: validate.Phone()},
				{Name: "password", Label: "Password", Secret: true, Rule: validate.StrongPassword()},
			},
		},
		Definition{
			Name:  "profile",
			Title: "Edit profile",
			Fields: []Field{
				{Name: "name", Label: "Full name", Rule: validate.Name()},
				{Name: "phone", Label: "Phone", Rule: validate.Phone()},
				{Name: "email", Label: "Email", Rule: validate.Email()},
				{Name: "city", Label: "City", Rule: optional(60)},
				{Name: "bio", Label: "About you", Rule: optional(500)},
			},
		},
		Definition{
			Name:  "change-password",
			Title: "Change password",
			Fields: []Field{
				{Name: "current_password", Label: "Current password", Secret: true, Rule: validate.CurrentPassword()},
				{Name: "new_password", Label: "New password", Secret: true, Rule: validate.StrongPassword()},
			},
		},
		Definition{
			Name:  "booking",
			Title: "Book a service",
			Fields: []Field{
				{Name: "service", Label: "Service", Rule: validate.Required("Please choose a service")},
				{Name: "date", Label: "Date", Rule: date()},
				{Name: "address", Label: "Address", Rule: address()},
				{Name: "pincode", Label: "Pincode", Rule: validate.Rule{
					Required: true,
					Pattern:  pincodePattern,
					Message:  "Please enter a valid 6 digit pincode",
				}},
				{Name: "notes", Label: "Notes for the provider", Rule: optional(300)},
			},
		},
		Definition{
			Name:  "puja-booking",
			Title: "Book a puja",
			Fields: []Field{
				{Name: "puja", Label: "Puja", Rule: validate.Required("Please choose a puja")},
				{Name: "date", Label: "Date", Rule: date()},
				{Name: "address", Label: "Address", Rule: address()},
				{Name: "gotra", Label: "Gotra", Rule: optional(60)},
				{Name: "attendees", Label: "Attendees", Rule: validate.Rule{
					Pattern: validate.MustCompilePattern(`[1-9]\d{0,2}`),
					Message: "Attendees must be a number between 1 and 999",
				}},
			},
		},
		Definition{
			Name:  "achievement",
			Title: "Add achievement",
			Fields: []Field{
				{Name: "title", Label: "Title", Rule: validate.Rule{Required: true, MaxLength: 100}},
				{Name: "year", Label: "Year", Rule: validate.Rule{
					Required: true,
					Pattern:  yearPattern,
					Message:  "Please enter a four digit year",
				}},
				{Name: "description", Label: "Description", Rule: optional(500)},
			},
		},
		Definition{
			Name:  "experience",
			Title: "Add experience",
			Fields: []Field{
				{Name: "title", Label: "Role", Rule: validate.Required("")},
				{Name: "organisation", Label: "Organisation", Rule: validate.Required("")},
				{Name: "years", Label: "Years", Rule: validate.Rule{
					Required: true,
					Pattern:  validate.MustCompilePattern(`\d{1,2}`),
					Message:  "Years must be a number up to 99",
				}},
				{Name: "summary", Label: "Summary", Rule: optional(500)},
			},
		},
	)
}
