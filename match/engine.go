// Package match ranks active help offers against a help request.
//
// A matching pass fetches the offers of the request's category, measures the
// great-circle distance to each of them, looks up the helper's community
// rating and keeps the offers whose weighted score passes the acceptance
// threshold, best first.
package match

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aidconnect/aid-connect-api/metrics"
	"github.com/aidconnect/aid-connect-api/schema"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "match")
}

// CandidateFetcher returns the active offers of a category, leaving out the
// offers owned by the requester. The order is not significant.
type CandidateFetcher interface {
	ActiveOffers(ctx context.Context, category schema.Category, requesterID string) ([]schema.HelpOffer, error)
}

// ReliabilityLookup resolves the 0-5 community rating of a helper.
type ReliabilityLookup interface {
	HelperRating(ctx context.Context, userID string) (float64, error)
}

// Matcher finds ranked candidate offers for a request
type Matcher interface {
	FindMatches(ctx context.Context, request schema.HelpRequest, limit int) ([]schema.MatchCandidate, error)
}

// Engine is the Matcher backed by an offer source and a rating source. It
// keeps no state between calls and writes nothing.
type Engine struct {
	offers  CandidateFetcher
	ratings ReliabilityLookup
}

func NewEngine(offers CandidateFetcher, ratings ReliabilityLookup) *Engine {
	return &Engine{
		offers:  offers,
		ratings: ratings,
	}
}

// FindMatches runs one matching pass for the request and returns at most
// limit candidates sorted by match score. Only a failing offer query is
// returned as an error; a helper whose rating cannot be read is scored with
// FallbackHelperRating. Returned scores are rounded, so the lowest one a
// consumer can see is 0.3 itself.
func (e *Engine) FindMatches(ctx context.Context, request schema.HelpRequest, limit int) ([]schema.MatchCandidate, error) {
	start := time.Now()
	defer func() {
		metrics.MatchDuration.Observe(time.Since(start).Seconds())
	}()

	offers, err := e.offers.ActiveOffers(ctx, request.Category, request.UserID)
	if err != nil {
		log.WithFields(logrus.Fields{
			"request_id": request.RequestID,
			"category":   request.Category,
			"error":      err,
		}).Error("fetch candidate offers")
		return nil, err
	}

	candidates := make([]schema.MatchCandidate, 0, len(offers))
	for _, offer := range offers {
		// a full or paused offer must never be handed out, whatever the query returned
		if !offer.Available() || offer.UserID == request.UserID {
			metrics.MatchCandidates.WithLabelValues(metrics.OutcomeUnavailable).Inc()
			continue
		}

		distance := Distance(request.Location, offer.Location)
		if !withinRange(offer, distance) {
			metrics.MatchCandidates.WithLabelValues(metrics.OutcomeOutOfRange).Inc()
			continue
		}

		rating := e.helperRating(ctx, offer.UserID)

		candidate, ok := Score(request, offer, distance, rating)
		if !ok {
			metrics.MatchCandidates.WithLabelValues(metrics.OutcomeBelowThreshold).Inc()
			continue
		}

		metrics.MatchCandidates.WithLabelValues(metrics.OutcomeAccepted).Inc()
		candidates = append(candidates, candidate)
	}

	ranked := Rank(candidates, limit)

	log.WithFields(logrus.Fields{
		"request_id": request.RequestID,
		"offers":     len(offers),
		"accepted":   len(candidates),
		"returned":   len(ranked),
	}).Debug("matching pass done")

	return ranked, nil
}

func (e *Engine) helperRating(ctx context.Context, userID string) float64 {
	rating, err := e.ratings.HelperRating(ctx, userID)
	if err != nil {
		log.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err,
		}).Debug("helper rating unavailable, use fallback rating")
		metrics.RatingFallbacks.Inc()
		return FallbackHelperRating
	}

	return rating
}
