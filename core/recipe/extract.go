package recipe

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"
)

// payload mirrors the JSON object the generation prompt asks the model to
// produce. Instructions is accepted as a synonym for steps because models
// frequently use either key.
type payload struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Steps        []string `json:"steps"`
	Instructions []string `json:"instructions"`
}

func (p payload) steps() []string {
	if len(p.Steps) > 0 {
		return p.Steps
	}
	return p.Instructions
}

// Extract recovers a [Record] from the raw output fragments of a completed
// generation job. It never fails; it degrades through four strategies in
// order:
//
//  1. Strict: concatenate the fragments, take the greedy span from the first
//     '{' to the last '}', and parse it as standard JSON.
//  2. Repaired: run the same span through jsonrepair (quoting bare keys,
//     normalising single quotes, dropping trailing commas) and retry the
//     strict parse.
//  3. Heuristic: scan the raw text line by line, tracking title, ingredient
//     and step sections by keyword and Markdown heading.
//  4. Fallback: when nothing at all was recognised, build a minimal record
//     from the raw text via [Fallback].
//
// Whatever strategy succeeds, missing fields are defaulted so the returned
// record always has a title and non-empty ingredient and step lists.
func Extract(fragments []string) Record {
	raw := strings.Join(fragments, "")
	if strings.TrimSpace(raw) == "" {
		return Fallback(raw)
	}

	if span, ok := jsonSpan(raw); ok {
		if p, err := parsePayload(span); err == nil {
			return newRecord(p.Title, p.Ingredients, p.steps())
		}
		if repaired, err := jsonrepair.JSONRepair(span); err == nil {
			if p, parseErr := parsePayload(repaired); parseErr == nil {
				return newRecord(p.Title, p.Ingredients, p.steps())
			}
		}
	}

	title, ingredients, steps := scanLines(raw)
	if title == "" && len(ingredients) == 0 && len(steps) == 0 {
		return Fallback(raw)
	}
	return newRecord(title, ingredients, steps)
}

// Fallback builds a last-resort record from the caller's original input
// text. The title embeds the current time so repeated failures remain
// distinguishable, ingredients fall back to the placeholder, and the input
// is split on ". " into step-like fragments so the user still sees their
// own narration laid out as a recipe.
func Fallback(input string) Record {
	title := fmt.Sprintf("Recipe from %s", time.Now().Format("Jan 2 15:04"))
	var steps []string
	for _, part := range strings.Split(input, ". ") {
		if part = strings.TrimSpace(part); part != "" {
			steps = append(steps, part)
		}
	}
	return newRecord(title, nil, steps)
}

// jsonSpan returns the greedy substring from the first '{' to the last '}'.
// This is deliberately not a balanced-bracket scan: model output typically
// contains exactly one object, possibly wrapped in prose or a code fence,
// and the greedy span captures it whole.
func jsonSpan(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

func parsePayload(span string) (payload, error) {
	var p payload
	if err := json.Unmarshal([]byte(span), &p); err != nil {
		return payload{}, err
	}
	return p, nil
}

const (
	sectionNone = iota
	sectionIngredients
	sectionSteps
)

// scanLines is the heuristic stage: a simple section-tracking scanner used
// when no JSON object can be parsed at all. Keyword and heading lines set
// the title or switch the active section; every other non-empty,
// non-heading line is appended to the active section with its leading
// bullet or number marker stripped.
func scanLines(raw string) (title string, ingredients, steps []string) {
	section := sectionNone
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		switch {
		case title == "" && (strings.HasPrefix(line, "# ") || strings.Contains(lower, "title")):
			title = cleanTitle(line)
		case strings.Contains(lower, "ingredient"):
			section = sectionIngredients
		case strings.Contains(lower, "instruction") || strings.Contains(lower, "step"):
			section = sectionSteps
		case strings.HasPrefix(line, "#"):
			// unrecognised heading, not content
		default:
			entry := stripMarker(line)
			if entry == "" {
				continue
			}
			switch section {
			case sectionIngredients:
				ingredients = append(ingredients, entry)
			case sectionSteps:
				steps = append(steps, entry)
			}
		}
	}
	return title, ingredients, steps
}

// cleanTitle strips heading markers and an optional "title:" prefix from a
// title-bearing line, along with surrounding quote and punctuation noise.
func cleanTitle(line string) string {
	t := strings.TrimSpace(strings.TrimLeft(line, "#"))
	if i := strings.Index(strings.ToLower(t), "title"); i >= 0 {
		t = t[i+len("title"):]
	}
	return strings.Trim(t, " \t:-\"',")
}

// stripMarker removes a leading bullet ("-", "*", "•", ">") or number
// marker ("1.", "2)", "3:") from a content line.
func stripMarker(line string) string {
	t := strings.TrimLeft(strings.TrimSpace(line), "-*•> \t")
	i := 0
	for i < len(t) && t[i] >= '0' && t[i] <= '9' {
		i++
	}
	if i > 0 && i < len(t) && (t[i] == '.' || t[i] == ')' || t[i] == ':') {
		t = t[i+1:]
	}
	return strings.TrimSpace(t)
}
