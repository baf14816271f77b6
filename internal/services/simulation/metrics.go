package simulation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "greensim_requests_total",
		Help: "API requests handled, by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	limitingFactorTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "greensim_limiting_factor_total",
		Help: "Limiting factor attribution across rate computations.",
	}, []string{"factor"})

	simulatedDays = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "greensim_simulated_days",
		Help:    "Horizon length of growth simulations, in days.",
		Buckets: []float64{1, 7, 14, 30, 90, 180, 365},
	})
)
