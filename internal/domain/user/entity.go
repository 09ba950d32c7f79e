package user

import (
	"errors"
	"slices"
)

var ErrNotFound = errors.New("user not found")

const (
	GuestFirstName = "Guest"
	GuestLastName  = "User"
	GuestEmail     = "guest@example.com"
	GuestBio       = "Welcome to TradeASkill! Sign in to personalize your profile."
)

type Profile struct {
	ID              string   `json:"id,omitempty"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email"`
	Bio             string   `json:"bio"`
	Rating          float64  `json:"rating"`
	CompletedTrades int      `json:"completedTrades"`
	DateJoined      string   `json:"dateJoined,omitempty"`
	SkillsToTeach   []string `json:"skillsToTeach"`
	SkillsToLearn   []string `json:"skillsToLearn"`
}

// NewUser is the body posted to the users endpoint at signup.
type NewUser struct {
	Profile
	PasswordHash string `json:"passwordHash"`
}

// GuestProfile is the fallback shown when nothing is persisted for a session.
// It is deterministic: no id and no join date.
func GuestProfile() Profile {
	return Profile{
		FirstName:     GuestFirstName,
		LastName:      GuestLastName,
		Email:         GuestEmail,
		Bio:           GuestBio,
		SkillsToTeach: []string{},
		SkillsToLearn: []string{},
	}
}

func (p Profile) IsGuest() bool {
	return p.ID == "" && p.Email == GuestEmail
}

func (p Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// Clone returns a copy whose skill lists do not alias p's.
func (p Profile) Clone() Profile {
	out := p
	out.SkillsToTeach = slices.Clone(p.SkillsToTeach)
	out.SkillsToLearn = slices.Clone(p.SkillsToLearn)
	if out.SkillsToTeach == nil {
		out.SkillsToTeach = []string{}
	}
	if out.SkillsToLearn == nil {
		out.SkillsToLearn = []string{}
	}
	return out
}
