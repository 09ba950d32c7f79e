package validation

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var emailPattern = regexp.MustCompile(`(?i)^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)

func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("emailaddr", validateEmailAddr); err != nil {
		return fmt.Errorf("register emailaddr rule: %w", err)
	}
	return nil
}

func validateEmailAddr(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // required reports empty values
	}
	return emailPattern.MatchString(value)
}

var fieldLabels = map[string]string{
	"firstName":     "First name",
	"lastName":      "Last name",
	"email":         "Email",
	"password":      "Password",
	"skillsToTeach": "Skills to teach",
	"skillsToLearn": "Skills to learn",
}

var messages = map[string]string{
	"email/emailaddr":         "Please enter a valid email address.",
	"confirmPassword/eqfield": "Passwords do not match.",
	"skillsToTeach/required":  "Please enter at least one skill to teach.",
	"skillsToLearn/required":  "Please enter at least one skill to learn.",
	"terms/required":          "You must accept the terms.",
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := messages[fe.Field()+"/"+fe.Tag()]; ok {
		return msg
	}

	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}
