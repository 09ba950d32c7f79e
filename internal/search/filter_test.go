package search

import (
	"testing"

	"tradeaskill/internal/domain/skill"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(records []skill.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Title)
	}
	return out
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		raw  string
		want SortKey
	}{
		{"", DefaultSort},
		{"title-asc", SortKey{SortByTitle, Asc}},
		{"rating-desc", SortKey{SortByRating, Desc}},
		{"Duration-DESC", SortKey{SortByDuration, Desc}},
		{"rating", SortKey{SortByRating, Asc}},
		{"price-desc", DefaultSort},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortKey(tt.raw))
		})
	}
}

func TestLeadingDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3-4 weeks", "3"},
		{"10 Lessons", "10"},
		{"  12 sessions", "12"},
		{"007 days", "7"},
		{"self-paced", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LeadingDigits(tt.in), tt.in)
	}
}

func TestCompareLeadingNumbers(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"3-4 weeks", "10 Lessons", -1},
		{"10000001 weeks", "10000000 weeks", 1},
		{"99999999999999999999 weeks", "100000000000000000000 weeks", -1},
		{"05 weeks", "5 days", 0},
		{"self-paced", "1 week", -1},
		{"self-paced", "0 weeks", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompareLeadingNumbers(tt.a, tt.b), tt.a+" vs "+tt.b)
	}
}

func TestApply_DurationBeyondIntRange(t *testing.T) {
	records := []skill.Record{
		{Title: "B", Duration: "10000001 weeks"},
		{Title: "A", Duration: "10000000 weeks"},
		{Title: "C", Duration: "2 weeks"},
	}
	got := Apply(records, FilterState{Sort: SortKey{SortByDuration, Asc}})
	assert.Equal(t, []string{"C", "A", "B"}, titles(got))
}

func TestApply_RatingDescending(t *testing.T) {
	records := []skill.Record{
		{ID: skill.NumberID("12"), Title: "Piano Fundamentals", Duration: "6-8 weeks", Teacher: skill.Teacher{Name: "Anna Kozlov", Rating: 4.8}},
		{ID: skill.NumberID("4"), Title: "Guitar Basics", Duration: "3-4 weeks", Teacher: skill.Teacher{Name: "Sarah Williams", Rating: 4.9}},
	}

	got := Apply(records, FilterState{Sort: SortKey{SortByRating, Desc}})
	assert.Equal(t, []string{"Guitar Basics", "Piano Fundamentals"}, titles(got))
}

func TestApply_SearchIsCaseInsensitive(t *testing.T) {
	for _, term := range []string{"guitar", "GUITAR", "  Guitar "} {
		got := Apply(skill.Bundled(), FilterState{Term: term})
		assert.Equal(t, []string{"Guitar Basics"}, titles(got), term)
	}
}

func TestApply_SearchMatchesDescriptionAndTeacher(t *testing.T) {
	got := Apply(skill.Bundled(), FilterState{Term: "kozlov"})
	assert.Equal(t, []string{"Piano Fundamentals"}, titles(got))

	got = Apply(skill.Bundled(), FilterState{Term: "risotto"})
	assert.Equal(t, []string{"Italian Cooking"}, titles(got))
}

func TestApply_PredicatesAreConjunctive(t *testing.T) {
	got := Apply(skill.Bundled(), FilterState{Category: "technology", Level: "beginner"})
	assert.Equal(t, []string{"JavaScript Programming"}, titles(got))

	got = Apply(skill.Bundled(), FilterState{Term: "guitar", Category: "arts"})
	assert.Empty(t, got)
}

func TestApply_TitleAscendingDefault(t *testing.T) {
	got := Apply(skill.Bundled(), FilterState{})
	require.Len(t, got, 12)
	assert.Equal(t, "Advanced React Development", got[0].Title)
	assert.Equal(t, "Yoga for Beginners", got[len(got)-1].Title)
}

func TestApply_StableOnTies(t *testing.T) {
	got := Apply(skill.Bundled(), FilterState{Sort: SortKey{SortByRating, Desc}})
	require.Len(t, got, 12)
	// 4.9 ties keep catalog order.
	assert.Equal(t, []string{
		"JavaScript Programming",
		"Guitar Basics",
		"Italian Cooking",
		"French Language Basics",
		"Advanced React Development",
	}, titles(got[:5]))

	got = Apply(skill.Bundled(), FilterState{Sort: SortKey{SortByDuration, Asc}})
	assert.Equal(t, []string{
		"Guitar Basics",
		"JavaScript Programming",
		"Watercolor Painting",
		"Yoga for Beginners",
		"Italian Cooking",
	}, titles(got[:5]))
}

func TestApply_IdempotentAndPure(t *testing.T) {
	in := skill.Bundled()
	before := titles(in)

	states := []FilterState{
		{},
		{Term: "learn", Sort: SortKey{SortByDuration, Desc}},
		{Level: "beginner", Sort: SortKey{SortByRating, Asc}},
		{Category: "music", Sort: SortKey{SortByTitle, Desc}},
	}
	for _, st := range states {
		once := Apply(in, st)
		twice := Apply(once, st)
		assert.Equal(t, titles(once), titles(twice))
	}
	assert.Equal(t, before, titles(in))
}

func TestCategoriesAndLevels(t *testing.T) {
	assert.Equal(t, []string{"technology", "languages", "arts", "music", "cooking", "business", "sports"}, Categories(skill.Bundled()))
	assert.Equal(t, []string{"beginner", "intermediate", "advanced"}, Levels(skill.Bundled()))
}
