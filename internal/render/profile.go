package render

import (
	"tradeaskill/internal/domain/user"
)

type ProfileStats struct {
	Rating          float64 `json:"rating"`
	CompletedTrades int     `json:"completedTrades"`
	DateJoined      string  `json:"dateJoined"`
}

type SkillTag struct {
	List  string `json:"list"`
	Label string `json:"label"`
}

type ProfileView struct {
	FullName    string       `json:"fullName"`
	Initials    string       `json:"initials"`
	Email       string       `json:"email"`
	Bio         string       `json:"bio"`
	Stats       ProfileStats `json:"stats"`
	TeachSkills []SkillTag   `json:"teachSkills"`
	LearnSkills []SkillTag   `json:"learnSkills"`
	LoggedIn    bool         `json:"loggedIn"`
	AuthAction  string       `json:"authAction"`
}

// Profile builds the profile page view. today is shown when the profile has
// no join date yet, matching the guest view.
func Profile(p user.Profile, loggedIn bool, today string) ProfileView {
	joined := p.DateJoined
	if joined == "" {
		joined = today
	}

	v := ProfileView{
		FullName:    p.FullName(),
		Initials:    Initials(p.FullName()),
		Email:       p.Email,
		Bio:         p.Bio,
		Stats:       ProfileStats{Rating: p.Rating, CompletedTrades: p.CompletedTrades, DateJoined: joined},
		TeachSkills: tags("teach", p.SkillsToTeach),
		LearnSkills: tags("learn", p.SkillsToLearn),
		LoggedIn:    loggedIn,
		AuthAction:  "Sign In",
	}
	if loggedIn {
		v.AuthAction = "Sign Out"
	}
	return v
}

func tags(list string, skills []string) []SkillTag {
	out := make([]SkillTag, 0, len(skills))
	for _, s := range skills {
		out = append(out, SkillTag{List: list, Label: s})
	}
	return out
}
