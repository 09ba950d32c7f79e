package render

import (
	"strings"
	"unicode/utf8"

	"tradeaskill/internal/domain/skill"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

const NoResultsMessage = "No skills found matching your criteria. Try adjusting your search or filters."

func ParseViewMode(raw string) ViewMode {
	if ViewMode(strings.ToLower(strings.TrimSpace(raw))) == ViewList {
		return ViewList
	}
	return ViewGrid
}

type Layout struct {
	View           ViewMode `json:"view"`
	ContainerClass string   `json:"containerClass"`
	CardClass      string   `json:"cardClass"`
}

type Action struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type TeacherSummary struct {
	Name            string  `json:"name"`
	Initials        string  `json:"initials"`
	Rating          float64 `json:"rating"`
	CompletedTrades int     `json:"completedTrades"`
}

type Card struct {
	ID            skill.ID       `json:"id"`
	Title         string         `json:"title"`
	Category      string         `json:"category"`
	CategoryLabel string         `json:"categoryLabel"`
	Description   string         `json:"description"`
	Level         string         `json:"level"`
	LevelLabel    string         `json:"levelLabel"`
	Duration      string         `json:"duration"`
	Teacher       TeacherSummary `json:"teacher"`
	View          Action         `json:"view"`
	Contact       Action         `json:"contact"`
}

// Output is either an empty state or one card per record, never both.
type Output struct {
	Empty   bool   `json:"empty"`
	Message string `json:"message,omitempty"`
	Layout  Layout `json:"layout"`
	Cards   []Card `json:"cards"`
}

func LayoutFor(mode ViewMode) Layout {
	if mode == ViewList {
		return Layout{View: ViewList, ContainerClass: "skills-list", CardClass: "skill-card list-view"}
	}
	return Layout{View: ViewGrid, ContainerClass: "skills-grid", CardClass: "skill-card"}
}

func Render(records []skill.Record, mode ViewMode) Output {
	layout := LayoutFor(mode)
	if len(records) == 0 {
		return Output{Empty: true, Message: NoResultsMessage, Layout: layout, Cards: []Card{}}
	}

	cards := make([]Card, 0, len(records))
	for _, r := range records {
		cards = append(cards, Card{
			ID:            r.ID,
			Title:         r.Title,
			Category:      r.Category,
			CategoryLabel: Capitalize(r.Category),
			Description:   r.Description,
			Level:         r.Level,
			LevelLabel:    Capitalize(r.Level),
			Duration:      r.Duration,
			Teacher: TeacherSummary{
				Name:            r.Teacher.Name,
				Initials:        Initials(r.Teacher.Name),
				Rating:          r.Teacher.Rating,
				CompletedTrades: r.Teacher.CompletedTrades,
			},
			View:    Action{Kind: "view", Label: "View", Value: r.Title},
			Contact: Action{Kind: "contact", Label: "Message", Value: r.Teacher.Name},
		})
	}
	return Output{Layout: layout, Cards: cards}
}

// Capitalize uppercases the first character and leaves the rest as is, so
// "web development" becomes "Web development".
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}

// Initials takes the first letter of each space separated token, uppercased,
// keeping at most two.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, tok := range strings.Split(name, " ") {
		if tok == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(tok)
		b.WriteRune(r)
		n++
		if n == 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}
