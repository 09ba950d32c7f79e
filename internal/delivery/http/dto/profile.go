package dto

import (
	"tradeaskill/internal/domain/user"
	"tradeaskill/internal/render"
)

// ProfileResponse pairs the stored profile with its rendered view.
type ProfileResponse struct {
	Profile user.Profile       `json:"profile"`
	View    render.ProfileView `json:"view"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
}

type SkillRequest struct {
	Skill string `json:"skill"`
}
