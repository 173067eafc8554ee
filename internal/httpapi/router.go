// Package httpapi exposes recipe generation over HTTP: POST /v1/recipes
// accepts narration text (or a page URL) and responds with the structured
// record, plus health and Prometheus metrics endpoints.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"souschef/core/recipe"
	"souschef/providers/source"
	"souschef/providers/source/webpage"
)

// Generator is the caller-facing generation entry point. It is satisfied by
// *generate.Generator.
type Generator interface {
	FromText(ctx context.Context, text string) (recipe.Record, error)
	FromSource(ctx context.Context, src source.Source) (recipe.Record, error)
}

type router struct {
	generator Generator
}

// NewRouter builds the HTTP handler for the souschef daemon.
func NewRouter(generator Generator) http.Handler {
	rt := &router{generator: generator}

	r := chi.NewRouter()
	r.Use(logging)
	r.Get("/healthz", rt.handleHealth)
	r.Post("/v1/recipes", rt.handleGenerate)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// GenerateRequest is the body of POST /v1/recipes. Exactly one of Text and
// URL must be set.
type GenerateRequest struct {
	Text string `json:"text,omitempty"`
	URL  string `json:"url,omitempty"`
}

// GenerateResponse wraps the record with a degradation flag. Degraded is
// true when the remote job was unusable and the record was built by the
// minimal fallback; the record itself is always valid.
type GenerateResponse struct {
	Recipe   recipe.Record `json:"recipe"`
	Degraded bool          `json:"degraded"`
	Failure  string        `json:"failure,omitempty"`
}

func (rt *router) handleGenerate(w http.ResponseWriter, req *http.Request) {
	var body GenerateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if (body.Text == "") == (body.URL == "") {
		respondWithError(w, http.StatusBadRequest, "exactly one of text and url must be set")
		return
	}

	GenerationsTotal.Inc()

	var (
		record recipe.Record
		err    error
	)
	if body.URL != "" {
		record, err = rt.generator.FromSource(req.Context(), webpage.Page{URL: body.URL})
	} else {
		record, err = rt.generator.FromText(req.Context(), body.Text)
	}

	response := GenerateResponse{Recipe: record}
	if err != nil {
		GenerationFallbacksTotal.Inc()
		response.Degraded = true
		response.Failure = err.Error()
	}
	respondWithJSON(w, http.StatusOK, response)
}

func (rt *router) handleHealth(w http.ResponseWriter, req *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("http request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start).String())
	})
}
