package main

import (
	"strings"
	"testing"

	"souschef/core/recipe"
	"souschef/providers/source"
	"souschef/providers/source/webpage"
)

func TestRender(t *testing.T) {
	record := recipe.Record{
		Title:       "Masala Chai",
		Ingredients: []string{"2 cups water", "1 tea bag"},
		Steps:       []string{"Boil the water", "Add the tea"},
	}

	got := render(record)

	for _, want := range []string{
		"  Masala Chai\n",
		"  1. 2 cups water\n",
		"  2. 1 tea bag\n",
		"  1. Boil the water\n",
		"  2. Add the tea\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("render output missing %q:\n%s", want, got)
		}
	}
	if !strings.HasPrefix(got, "====") {
		t.Errorf("render output should start with a banner:\n%s", got)
	}
}

func TestResolveSource(t *testing.T) {
	t.Run("url wins", func(t *testing.T) {
		src, err := resolveSource("example.com/chai", []string{"ignored"}, strings.NewReader(""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		page, ok := src.(webpage.Page)
		if !ok || page.URL != "example.com/chai" {
			t.Errorf("source = %#v, want webpage source for the URL", src)
		}
	})

	t.Run("args joined", func(t *testing.T) {
		src, err := resolveSource("", []string{"boil", "water"}, strings.NewReader(""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text, ok := src.(source.Text); !ok || string(text) != "boil water" {
			t.Errorf("source = %#v, want joined args", src)
		}
	})

	t.Run("stdin fallback", func(t *testing.T) {
		src, err := resolveSource("", nil, strings.NewReader("  narrated recipe\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text, ok := src.(source.Text); !ok || string(text) != "narrated recipe" {
			t.Errorf("source = %#v, want trimmed stdin text", src)
		}
	})

	t.Run("empty stdin is an error", func(t *testing.T) {
		if _, err := resolveSource("", nil, strings.NewReader("   \n")); err == nil {
			t.Fatal("expected error for empty narration")
		}
	})
}
