package search

import (
	"cmp"
	"slices"
	"strings"

	"tradeaskill/internal/domain/skill"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortField string

const (
	SortByTitle    SortField = "title"
	SortByRating   SortField = "rating"
	SortByDuration SortField = "duration"
)

type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

type SortKey struct {
	Field     SortField
	Direction SortDirection
}

var DefaultSort = SortKey{Field: SortByTitle, Direction: Asc}

func (k SortKey) String() string {
	return string(k.Field) + "-" + string(k.Direction)
}

// ParseSortKey reads the "<field>-<direction>" form used by the sort control.
// Unknown fields fall back to DefaultSort; an unknown direction means ascending.
func ParseSortKey(raw string) SortKey {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return DefaultSort
	}
	field, dir, _ := strings.Cut(raw, "-")

	k := SortKey{Field: SortField(field), Direction: Asc}
	switch k.Field {
	case SortByTitle, SortByRating, SortByDuration:
	default:
		return DefaultSort
	}
	if SortDirection(dir) == Desc {
		k.Direction = Desc
	}
	return k
}

// FilterState is the active combination of search term, category, level and
// sort selection. Empty predicates always pass.
type FilterState struct {
	Term     string
	Category string
	Level    string
	Sort     SortKey
}

type Engine struct {
	locale language.Tag
}

func NewEngine(locale string) Engine {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.English
	}
	return Engine{locale: tag}
}

// Apply filters with the default English collation.
func Apply(records []skill.Record, st FilterState) []skill.Record {
	return NewEngine("en").Apply(records, st)
}

// Apply returns the records matching every predicate of st, ordered by
// st.Sort. The sort is stable and records is never modified.
func (e Engine) Apply(records []skill.Record, st FilterState) []skill.Record {
	term := strings.ToLower(strings.TrimSpace(st.Term))

	out := make([]skill.Record, 0, len(records))
	for _, r := range records {
		if !matchesTerm(r, term) {
			continue
		}
		if st.Category != "" && r.Category != st.Category {
			continue
		}
		if st.Level != "" && r.Level != st.Level {
			continue
		}
		out = append(out, r)
	}

	sortKey := st.Sort
	if sortKey.Field == "" {
		sortKey = DefaultSort
	}

	// Collator keeps internal buffers and is not safe to share across goroutines.
	coll := collate.New(e.locale)
	slices.SortStableFunc(out, func(a, b skill.Record) int {
		var c int
		switch sortKey.Field {
		case SortByRating:
			c = cmp.Compare(a.Teacher.Rating, b.Teacher.Rating)
		case SortByDuration:
			c = CompareLeadingNumbers(a.Duration, b.Duration)
		default:
			c = coll.CompareString(a.Title, b.Title)
		}
		if sortKey.Direction == Desc {
			return -c
		}
		return c
	})
	return out
}

func matchesTerm(r skill.Record, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Title), term) ||
		strings.Contains(strings.ToLower(r.Description), term) ||
		strings.Contains(strings.ToLower(r.Teacher.Name), term)
}

// LeadingDigits returns the digits at the start of a duration such as
// "3-4 weeks" or "10 Lessons", without leading zeros. Text without a leading
// number, or with only zeros, yields "".
func LeadingDigits(s string) string {
	s = strings.TrimLeft(s, " \t")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return strings.TrimLeft(s[:end], "0")
}

// CompareLeadingNumbers orders two durations by their leading numbers. The
// digits are compared as strings, so numbers of any length order correctly.
func CompareLeadingNumbers(a, b string) int {
	da, db := LeadingDigits(a), LeadingDigits(b)
	if c := cmp.Compare(len(da), len(db)); c != 0 {
		return c
	}
	return strings.Compare(da, db)
}

// Categories returns the distinct categories in first-seen order.
func Categories(records []skill.Record) []string {
	return distinct(records, func(r skill.Record) string { return r.Category })
}

// Levels returns the distinct levels in first-seen order.
func Levels(records []skill.Record) []string {
	return distinct(records, func(r skill.Record) string { return r.Level })
}

func distinct(records []skill.Record, key func(skill.Record) string) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0)
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
