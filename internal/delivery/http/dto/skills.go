package dto

import "tradeaskill/internal/usecase/catalog"

type SkillsResponse struct {
	catalog.Page
	Query SkillsQuery `json:"query"`
}

// SkillsQuery echoes the filter controls back so the client can restore them.
type SkillsQuery struct {
	Search   string `json:"q"`
	Category string `json:"category"`
	Level    string `json:"level"`
	Sort     string `json:"sort"`
	View     string `json:"view"`
}
