package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DietTag names a dietary capability a recipe may declare
type DietTag string

const (
	// DietNone disables dietary filtering
	DietNone DietTag = "none"
	// DietVegan is the vegan tag
	DietVegan DietTag = "vegan"
	// DietVegetarian is the vegetarian tag
	DietVegetarian DietTag = "vegetarian"
	// DietGlutenFree is the gluten-free tag
	DietGlutenFree DietTag = "gluten-free"
)

// KnownDiets lists the tags offered to users, in prompt order
var KnownDiets = []DietTag{DietVegan, DietVegetarian, DietGlutenFree, DietNone}

// ParseDiet canonicalizes user input and reports whether it is a known tag.
// Unknown input yields DietNone.
func ParseDiet(s string) (DietTag, bool) {
	tag := DietTag(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range KnownDiets {
		if tag == known {
			return tag, true
		}
	}
	return DietNone, false
}

// Recipe represents a single catalog entry
type Recipe struct {
	Name         string                 `json:"name"`
	Ingredients  []string               `json:"ingredients"`
	Nutrition    map[string]interface{} `json:"nutrition,omitempty"`
	Price        float64                `json:"price"`
	Dietary      map[string]bool        `json:"dietary,omitempty"`
	Instructions Instructions           `json:"instructions"`
}

// Supports reports whether the recipe declares the diet tag as satisfied.
// A missing dietary map or key counts as false.
func (r *Recipe) Supports(diet DietTag) bool {
	return r.Dietary[string(diet)]
}

// Instructions holds cooking steps either as one block of text or as an
// explicit list of steps
type Instructions struct {
	raw   string
	steps []string
	isRaw bool
}

// RawText wraps free text that is split into steps on demand
func RawText(text string) Instructions {
	return Instructions{raw: text, isRaw: true}
}

// Steps wraps an explicit ordered list of steps
func Steps(steps ...string) Instructions {
	return Instructions{steps: steps}
}

// IsRaw reports whether the instructions were given as a single string
func (in Instructions) IsRaw() bool {
	return in.isRaw
}

// Steps returns the ordered cooking steps. Raw text is split on periods,
// fragments are trimmed and empty ones dropped.
func (in Instructions) Steps() []string {
	if !in.isRaw {
		out := make([]string, len(in.steps))
		copy(out, in.steps)
		return out
	}

	var steps []string
	for _, fragment := range strings.Split(in.raw, ".") {
		if step := strings.TrimSpace(fragment); step != "" {
			steps = append(steps, step)
		}
	}
	if steps == nil {
		steps = []string{}
	}
	return steps
}

// UnmarshalJSON accepts a string, an array of strings or null
func (in *Instructions) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*in = Instructions{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*in = RawText(text)
		return nil
	}

	var steps []string
	if err := json.Unmarshal(data, &steps); err != nil {
		return fmt.Errorf("instructions must be a string or a list of strings: %w", err)
	}
	*in = Steps(steps...)
	return nil
}

// MarshalJSON writes the instructions back in the form they were given
func (in Instructions) MarshalJSON() ([]byte, error) {
	if in.isRaw {
		return json.Marshal(in.raw)
	}
	if in.steps == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(in.steps)
}

// SavedMeal is a meal history entry
type SavedMeal struct {
	Name       string  `json:"name"`
	MatchScore float64 `json:"match_score"`
}

// LoadStatus describes the outcome of loading a persisted collection
type LoadStatus int

const (
	// Loaded means the data was read and parsed
	Loaded LoadStatus = iota
	// NotFound means the source does not exist yet
	NotFound
	// ParseError means the source exists but could not be decoded
	ParseError
)

func (s LoadStatus) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case NotFound:
		return "not found"
	case ParseError:
		return "parse error"
	default:
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
}

// PantrySnapshot is the pantry a chat last sent to the bot
type PantrySnapshot struct {
	ChatID      int64     `json:"chat_id"`
	Items       []string  `json:"items"`
	LastUpdated time.Time `json:"last_updated"`
}
