package signup

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"tradeaskill/internal/domain/user"
	"tradeaskill/internal/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrEmailTaken = errors.New("email already registered")
	ErrUpstream   = errors.New("failed to create account")
	ErrInternal   = errors.New("internal error")
)

type UsersAPI interface {
	FetchUsers(ctx context.Context) ([]user.Profile, error)
	CreateUser(ctx context.Context, u user.NewUser) error
}

type ProfileSigner interface {
	SignIn(ctx context.Context, sessionID string, p user.Profile) error
}

type FormValidator interface {
	Validate(form validation.SignupForm) validation.Report
	ValidateField(form validation.SignupForm, name string) (validation.FieldStatus, error)
}

type Options struct {
	DuplicateCheck bool
	BcryptCost     int
}

type Service struct {
	validator FormValidator
	users     UsersAPI
	profiles  ProfileSigner
	opts      Options
	logger    *log.Logger

	now   func() time.Time
	newID func() string
}

func NewService(v FormValidator, users UsersAPI, profiles ProfileSigner, opts Options, logger *log.Logger) *Service {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		validator: v,
		users:     users,
		profiles:  profiles,
		opts:      opts,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// CheckField validates one field, as on blur.
func (s *Service) CheckField(form validation.SignupForm, name string) (validation.FieldStatus, error) {
	return s.validator.ValidateField(form, name)
}

// Register validates the form, creates the user upstream and, on success,
// makes it the session's current user. The report is returned with
// ErrValidation so the caller can show the inline messages.
func (s *Service) Register(ctx context.Context, sessionID string, form validation.SignupForm) (user.Profile, validation.Report, error) {
	report := s.validator.Validate(form)
	if !report.Valid() {
		return user.Profile{}, report, ErrValidation
	}
	form = form.Normalized()

	if s.opts.DuplicateCheck {
		taken, err := s.emailTaken(ctx, form.Email)
		if err != nil {
			s.logf("[Signup] Duplicate check failed email=%s err=%v", form.Email, err)
			return user.Profile{}, report, ErrUpstream
		}
		if taken {
			report["email"] = validation.FieldStatus{Valid: false, Message: "An account with this email already exists."}
			return user.Profile{}, report, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.opts.BcryptCost)
	if err != nil {
		return user.Profile{}, report, ErrInternal
	}

	p := user.Profile{
		ID:            s.newID(),
		FirstName:     form.FirstName,
		LastName:      form.LastName,
		Email:         form.Email,
		Bio:           form.Bio,
		DateJoined:    s.now().UTC().Format(time.RFC3339),
		SkillsToTeach: SplitSkills(form.SkillsToTeach),
		SkillsToLearn: SplitSkills(form.SkillsToLearn),
	}

	if err := s.users.CreateUser(ctx, user.NewUser{Profile: p, PasswordHash: string(hash)}); err != nil {
		s.logf("[Signup] Create user failed email=%s err=%v", p.Email, err)
		return user.Profile{}, report, ErrUpstream
	}

	if err := s.profiles.SignIn(ctx, sessionID, p); err != nil {
		s.logf("[Signup] Persist profile failed session=%s err=%v", sessionID, err)
		return user.Profile{}, report, ErrInternal
	}
	s.logf("[Signup] Account created id=%s", p.ID)
	return p, report, nil
}

func (s *Service) emailTaken(ctx context.Context, email string) (bool, error) {
	existing, err := s.users.FetchUsers(ctx)
	if err != nil {
		return false, err
	}
	email = strings.ToLower(email)
	for _, u := range existing {
		if strings.ToLower(strings.TrimSpace(u.Email)) == email {
			return true, nil
		}
	}
	return false, nil
}

// SplitSkills turns "Guitar, , Cooking" into ["Guitar", "Cooking"].
func SplitSkills(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
