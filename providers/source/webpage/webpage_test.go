package webpage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTranscript_ConvertsHTMLToMarkdown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>
			<h1>Masala Chai</h1>
			<h2>Ingredients</h2>
			<ul><li>2 cups water</li><li>1 tea bag</li></ul>
			<h2>Steps</h2>
			<ol><li>Boil the water</li><li>Add the tea</li></ol>
		</body></html>`))
	}))
	defer server.Close()

	got, err := Page{URL: server.URL, Client: server.Client()}.Transcript(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Masala Chai", "Ingredients", "2 cups water", "Boil the water"} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown should contain %q, got:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<h1>") {
		t.Error("markdown should not contain raw HTML tags")
	}
}

func TestTranscript_EmptyURL(t *testing.T) {
	_, err := Page{}.Transcript(context.Background())
	if err == nil {
		t.Fatal("expected error for empty URL")
	}
}

func TestTranscript_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Page{URL: server.URL, Client: server.Client()}.Transcript(context.Background())
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected 404 error, got %v", err)
	}
}

func TestTranscript_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<p>too late</p>"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Page{URL: server.URL, Client: server.Client()}.Transcript(ctx)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
