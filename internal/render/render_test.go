package render

import (
	"testing"

	"tradeaskill/internal/domain/skill"
	"tradeaskill/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Alex Johnson":     "AJ",
		"Dr. Emily Foster": "DE",
		"kevin":            "K",
		"anna  kozlov":     "AK",
		"":                 "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Initials(in), in)
	}
}

func TestRender_EmptySignalsEmptyState(t *testing.T) {
	out := Render(nil, ViewGrid)
	assert.True(t, out.Empty)
	assert.Equal(t, NoResultsMessage, out.Message)
	assert.Empty(t, out.Cards)
}

func TestCapitalize_FirstCharacterOnly(t *testing.T) {
	tests := []struct{ in, want string }{
		{"web development", "Web development"},
		{"music", "Music"},
		{"Already Upper", "Already Upper"},
		{"éclair art", "Éclair art"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Capitalize(tt.in), tt.in)
	}

	out := Render([]skill.Record{{Title: "Site", Category: "web development", Level: "beginner"}}, ViewGrid)
	require.Len(t, out.Cards, 1)
	assert.Equal(t, "Web development", out.Cards[0].CategoryLabel)
}

func TestRender_Cards(t *testing.T) {
	records := skill.Bundled()[3:4]
	out := Render(records, ViewGrid)

	require.False(t, out.Empty)
	require.Len(t, out.Cards, 1)
	c := out.Cards[0]
	assert.Equal(t, "Guitar Basics", c.Title)
	assert.Equal(t, "Music", c.CategoryLabel)
	assert.Equal(t, "Beginner", c.LevelLabel)
	assert.Equal(t, "3-4 weeks", c.Duration)
	assert.Equal(t, "SW", c.Teacher.Initials)
	assert.Equal(t, 4.9, c.Teacher.Rating)
	assert.Equal(t, 41, c.Teacher.CompletedTrades)
	assert.Equal(t, "Guitar Basics", c.View.Value)
	assert.Equal(t, "Sarah Williams", c.Contact.Value)
}

func TestRender_ViewModeOnlyChangesLayout(t *testing.T) {
	grid := Render(skill.Bundled(), ViewGrid)
	list := Render(skill.Bundled(), ParseViewMode("LIST"))

	assert.Equal(t, grid.Cards, list.Cards)
	assert.Equal(t, "skills-grid", grid.Layout.ContainerClass)
	assert.Equal(t, "skills-list", list.Layout.ContainerClass)
	assert.Equal(t, ViewGrid, ParseViewMode("mosaic"))
}

func TestProfileView(t *testing.T) {
	v := Profile(user.GuestProfile(), false, "2026-10-19")
	assert.Equal(t, "Guest User", v.FullName)
	assert.Equal(t, "2026-10-19", v.Stats.DateJoined)
	assert.Equal(t, "Sign In", v.AuthAction)
	assert.Empty(t, v.TeachSkills)

	p := user.Profile{FirstName: "John", LastName: "Doe", DateJoined: "2025-01-01", SkillsToTeach: []string{"Web Design"}}
	v = Profile(p, true, "2026-10-19")
	assert.Equal(t, "JD", v.Initials)
	assert.Equal(t, "2025-01-01", v.Stats.DateJoined)
	assert.Equal(t, "Sign Out", v.AuthAction)
	assert.Equal(t, []SkillTag{{List: "teach", Label: "Web Design"}}, v.TeachSkills)
}
