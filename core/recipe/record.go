package recipe

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// PlaceholderTitle is used when no title could be recovered from the output.
	PlaceholderTitle = "Untitled Recipe"
	// PlaceholderIngredients is the single entry substituted when no
	// ingredient lines could be recovered.
	PlaceholderIngredients = "Ingredients could not be extracted"
	// PlaceholderSteps is the single entry substituted when no step lines
	// could be recovered.
	PlaceholderSteps = "Steps could not be extracted"
)

// Record is the structured result of one recipe generation. Ingredients and
// Steps are always non-empty ordered slices; callers never need to nil-check
// them. Quantities stay embedded in the ingredient text and are not parsed
// further.
type Record struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	CreatedAt   time.Time `json:"created_at"`
}

// newRecord finalises a record: blank titles and empty sections are replaced
// with their placeholders, and a fresh id and creation timestamp are
// assigned. Every record handed out by this package goes through here.
func newRecord(title string, ingredients, steps []string) Record {
	if strings.TrimSpace(title) == "" {
		title = PlaceholderTitle
	}
	if len(ingredients) == 0 {
		ingredients = []string{PlaceholderIngredients}
	}
	if len(steps) == 0 {
		steps = []string{PlaceholderSteps}
	}
	return Record{
		ID:          uuid.NewString(),
		Title:       title,
		Ingredients: ingredients,
		Steps:       steps,
		CreatedAt:   time.Now().UTC(),
	}
}
