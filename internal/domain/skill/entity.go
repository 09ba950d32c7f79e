package skill

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// ID is a skill identifier as the upstream API sent it. It remembers whether
// the value arrived as a JSON number or a JSON string and is written back the
// same way, so "007" stays a string and 7 stays a number.
type ID struct {
	raw     string
	numeric bool
}

// NumberID returns an ID that marshals as a JSON number. raw must be a valid
// JSON number literal.
func NumberID(raw string) ID { return ID{raw: raw, numeric: true} }

// StringID returns an ID that marshals as a JSON string.
func StringID(raw string) ID { return ID{raw: raw} }

func (id ID) String() string { return id.raw }

// Numeric reports whether the ID was a JSON number.
func (id ID) Numeric() bool { return id.numeric }

func (id ID) IsZero() bool { return id == ID{} }

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ID{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = StringID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("skill id: %w", err)
	}
	*id = NumberID(n.String())
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	switch {
	case id.IsZero():
		return []byte("null"), nil
	case id.numeric && json.Valid([]byte(id.raw)):
		return []byte(id.raw), nil
	default:
		return json.Marshal(id.raw)
	}
}

type Teacher struct {
	Name            string  `json:"name"`
	Rating          float64 `json:"rating"`
	CompletedTrades int     `json:"completedTrades"`
	Bio             string  `json:"bio,omitempty"`
}

type Record struct {
	ID          ID      `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Level       string  `json:"level"`
	Duration    string  `json:"duration"`
	Teacher     Teacher `json:"teacher"`
}
