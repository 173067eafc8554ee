package main

import (
	"fmt"
	"strings"

	"souschef/core/recipe"
)

// render lays a record out for the terminal: a title banner followed by
// numbered ingredients and numbered steps.
func render(r recipe.Record) string {
	var b strings.Builder

	banner := strings.Repeat("=", len(r.Title)+4)
	fmt.Fprintf(&b, "%s\n  %s\n%s\n\n", banner, r.Title, banner)

	b.WriteString("Ingredients:\n")
	for i, ingredient := range r.Ingredients {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, ingredient)
	}

	b.WriteString("\nSteps:\n")
	for i, step := range r.Steps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}

	return b.String()
}
