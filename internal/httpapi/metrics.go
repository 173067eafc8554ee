package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	GenerationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "souschef_generations_total",
		Help: "Total number of recipe generations requested",
	})
	GenerationFallbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "souschef_generation_fallbacks_total",
		Help: "Total number of generations that degraded to the fallback record",
	})
	JobPollsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "souschef_job_polls_total",
		Help: "Total number of remote job poll attempts",
	})
)

func init() {
	prometheus.MustRegister(GenerationsTotal, GenerationFallbacksTotal, JobPollsTotal)
}
