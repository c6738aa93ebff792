// Package metrics holds the prometheus collectors of the aid-connect services.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeAccepted       = "accepted"
	OutcomeOutOfRange     = "out_of_range"
	OutcomeBelowThreshold = "below_threshold"
	OutcomeUnavailable    = "unavailable"
)

var (
	// MatchDuration records how long one matching pass takes, lookups included.
	MatchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "aidconnect_match_duration_seconds",
		Help:    "Time spent computing ranked matches for a request",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	})

	// MatchCandidates counts evaluated offers by what happened to them.
	MatchCandidates = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "aidconnect_match_candidates_total",
		Help: "Offers evaluated by the matching engine",
	}, []string{"outcome"})

	// RatingFallbacks counts helper lookups that fell back to the neutral rating.
	RatingFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "aidconnect_rating_fallback_total",
		Help: "Helper rating lookups answered by the fallback rating",
	})

	// AIFallbacks counts AI calls replaced by their default answer.
	AIFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "aidconnect_ai_fallback_total",
		Help: "AI classifier or moderator calls that fell back to defaults",
	}, []string{"service"}) // service = "classifier", "moderator"
)

func init() {
	prometheus.MustRegister(
		MatchDuration,
		MatchCandidates,
		RatingFallbacks,
		AIFallbacks,
	)
}

// Handler returns the prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
