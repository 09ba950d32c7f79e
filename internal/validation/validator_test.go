package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() SignupForm {
	return SignupForm{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane.doe@example.com",
		Password:        "s3cretpass",
		ConfirmPassword: "s3cretpass",
		SkillsToTeach:   "Guitar, Cooking",
		SkillsToLearn:   "Python",
		Terms:           true,
	}
}

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New()
	require.NoError(t, err)
	return v
}

func TestValidate_ValidForm(t *testing.T) {
	report := newValidator(t).Validate(validForm())
	assert.True(t, report.Valid())
	assert.Len(t, report, len(Fields))
	assert.Empty(t, report.Errors())
}

func TestValidate_ShortPassword(t *testing.T) {
	f := validForm()
	f.Password = "abc"
	f.ConfirmPassword = "abc"

	report := newValidator(t).Validate(f)
	assert.False(t, report.Valid())
	assert.Equal(t, "Password must be at least 8 characters.", report["password"].Message)
	assert.True(t, report["confirmPassword"].Valid)
}

func TestValidate_PasswordMismatch(t *testing.T) {
	v := newValidator(t)
	f := validForm()
	f.Password = "abc124"
	f.ConfirmPassword = "abc123"

	report := v.Validate(f)
	assert.Equal(t, FieldStatus{Valid: false, Message: "Passwords do not match."}, report["confirmPassword"])

	st, err := v.ValidateField(f, "confirmPassword")
	require.NoError(t, err)
	assert.Equal(t, "Passwords do not match.", st.Message)
}

func TestValidate_RuleOrderStopsAtFirstFailure(t *testing.T) {
	f := validForm()
	f.FirstName = "   "
	f.LastName = "D"
	f.Email = ""

	report := newValidator(t).Validate(f)
	assert.Equal(t, "First name is required.", report["firstName"].Message)
	assert.Equal(t, "Last name must be at least 2 characters.", report["lastName"].Message)
	assert.Equal(t, "Email is required.", report["email"].Message)
}

func TestValidate_EmailPattern(t *testing.T) {
	v := newValidator(t)
	tests := []struct {
		email string
		valid bool
	}{
		{"john.doe@email.com", true},
		{"JOHN@Example.ORG", true},
		{"no-at-sign.com", false},
		{"a@b.c", false},
		{"a b@c.com", false},
	}
	for _, tt := range tests {
		f := validForm()
		f.Email = tt.email
		st, err := v.ValidateField(f, "email")
		require.NoError(t, err)
		assert.Equal(t, tt.valid, st.Valid, tt.email)
	}
}

func TestValidate_TermsAndSkills(t *testing.T) {
	f := validForm()
	f.Terms = false
	f.SkillsToTeach = " "

	report := newValidator(t).Validate(f)
	assert.Equal(t, "You must accept the terms.", report["terms"].Message)
	assert.Equal(t, "Please enter at least one skill to teach.", report["skillsToTeach"].Message)
	assert.Len(t, report.Errors(), 2)
}

func TestValidateField_UnknownField(t *testing.T) {
	_, err := newValidator(t).ValidateField(validForm(), "nickname")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidateField_OnlyReportsRequestedField(t *testing.T) {
	f := validForm()
	f.FirstName = ""
	st, err := newValidator(t).ValidateField(f, "lastName")
	require.NoError(t, err)
	assert.True(t, st.Valid)
}
