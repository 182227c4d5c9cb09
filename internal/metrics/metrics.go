// Package metrics holds the service's prometheus collectors. They register
// on the default registry and are exposed on /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	GenerationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptforge_generations_total",
			Help: "Generations served, by selected template id (or \"ai\" for the fallback generator)",
		},
		[]string{"template"},
	)
	DeploymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptforge_deployments_total",
			Help: "Deployment attempts by terminal status",
		},
		[]string{"status"},
	)
	AIFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "promptforge_ai_fallbacks_total",
			Help: "Generations answered by the AI fallback instead of a catalog template",
		},
	)
)

func init() {
	prometheus.MustRegister(GenerationsTotal, DeploymentsTotal, AIFallbacks)
}
