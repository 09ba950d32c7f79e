package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrUnknownField = errors.New("unknown field")

// SignupForm carries the raw signup field values. Rules run in tag order and
// stop at the first failure of each field.
type SignupForm struct {
	FirstName       string `json:"firstName" validate:"required,min=2"`
	LastName        string `json:"lastName" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,emailaddr"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
	Bio             string `json:"bio"`
	SkillsToTeach   string `json:"skillsToTeach" validate:"required"`
	SkillsToLearn   string `json:"skillsToLearn" validate:"required"`
	Terms           bool   `json:"terms" validate:"required"`
}

// Normalized returns the form with every text value trimmed.
func (f SignupForm) Normalized() SignupForm {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.Password = strings.TrimSpace(f.Password)
	f.ConfirmPassword = strings.TrimSpace(f.ConfirmPassword)
	f.Bio = strings.TrimSpace(f.Bio)
	f.SkillsToTeach = strings.TrimSpace(f.SkillsToTeach)
	f.SkillsToLearn = strings.TrimSpace(f.SkillsToLearn)
	return f
}

// Fields lists the validated field names in form order.
var Fields = []string{
	"firstName",
	"lastName",
	"email",
	"password",
	"confirmPassword",
	"bio",
	"skillsToTeach",
	"skillsToLearn",
	"terms",
}

var structFieldByName = map[string]string{
	"firstName":       "FirstName",
	"lastName":        "LastName",
	"email":           "Email",
	"password":        "Password",
	"confirmPassword": "ConfirmPassword",
	"bio":             "Bio",
	"skillsToTeach":   "SkillsToTeach",
	"skillsToLearn":   "SkillsToLearn",
	"terms":           "Terms",
}

type FieldStatus struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Report maps every field name to its status.
type Report map[string]FieldStatus

func (r Report) Valid() bool {
	for _, st := range r {
		if !st.Valid {
			return false
		}
	}
	return true
}

// Errors returns only the failing fields and their messages.
func (r Report) Errors() map[string]string {
	out := make(map[string]string)
	for name, st := range r {
		if !st.Valid {
			out[name] = st.Message
		}
	}
	return out
}

type Validator struct {
	validate *validator.Validate
}

func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := registerRules(v); err != nil {
		return nil, err
	}
	return &Validator{validate: v}, nil
}

// Validate runs every rule of every field. It has no side effects.
func (v *Validator) Validate(form SignupForm) Report {
	form = form.Normalized()

	report := make(Report, len(Fields))
	for _, name := range Fields {
		report[name] = FieldStatus{Valid: true}
	}
	v.collect(report, v.validate.Struct(form))
	return report
}

// ValidateField runs the rules of a single field, as done when the field
// loses focus. Cross-field rules still see the other values of form.
func (v *Validator) ValidateField(form SignupForm, name string) (FieldStatus, error) {
	structField, ok := structFieldByName[name]
	if !ok {
		return FieldStatus{}, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	form = form.Normalized()

	report := Report{name: {Valid: true}}
	v.collect(report, v.validate.StructPartial(form, structField))
	return report[name], nil
}

func (v *Validator) collect(report Report, err error) {
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable on programmer error, e.g. a non-struct argument.
		for name := range report {
			report[name] = FieldStatus{Valid: false, Message: err.Error()}
		}
		return
	}
	for _, fe := range verrs {
		if _, tracked := report[fe.Field()]; !tracked {
			continue
		}
		report[fe.Field()] = FieldStatus{Valid: false, Message: messageFor(fe)}
	}
}
