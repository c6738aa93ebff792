package match

import (
	"math"
	"strconv"

	"github.com/aidconnect/aid-connect-api/schema"
)

const (
	DistanceWeight    = 0.4
	CategoryWeight    = 0.3
	ReliabilityWeight = 0.3

	// MismatchedCategoryScore applies when an offer is scored against a
	// request of another category. The candidate query filters by category,
	// so this only shows up on direct calls.
	MismatchedCategoryScore = 0.5

	// AcceptanceThreshold is exclusive: a score equal to it is rejected.
	AcceptanceThreshold = 0.3

	MaxHelperRating = 5.0

	// FallbackHelperRating is used whenever a helper's rating cannot be read.
	FallbackHelperRating = 3.0
)

// WeightedScore combines the three partial scores into the final match score
func WeightedScore(distanceScore, categoryScore, reliabilityScore float64) float64 {
	// explicit conversions keep the products from being fused into FMA
	return float64(distanceScore*DistanceWeight) +
		float64(categoryScore*CategoryWeight) +
		float64(reliabilityScore*ReliabilityWeight)
}

// DistanceScore decays linearly from 1 at the helper's position to 0 at the
// offer's search radius. It never goes below 0.
func DistanceScore(distance float64, maxDistance int) float64 {
	return math.Max(0, 1-distance/float64(maxDistance))
}

func CategoryScore(request, offer schema.Category) float64 {
	if request == offer {
		return 1.0
	}
	return MismatchedCategoryScore
}

// ReliabilityScore maps a 0-5 community rating onto 0-1
func ReliabilityScore(helperRating float64) float64 {
	return math.Min(helperRating/MaxHelperRating, 1.0)
}

// withinRange is the hard cutoff on the offer's own search radius. A NaN
// distance or an offer without a radius never passes.
func withinRange(offer schema.HelpOffer, distance float64) bool {
	if offer.MaxDistance <= 0 || math.IsNaN(distance) {
		return false
	}
	return distance <= float64(offer.MaxDistance)
}

// Score evaluates one offer against a request. It returns false when the
// offer is out of its search radius or when the final score does not exceed
// AcceptanceThreshold. The threshold is checked before rounding; the returned
// candidate carries the score rounded to 2 decimals and the distance rounded
// to whole meters. An accepted score just above the threshold therefore reads
// 0.3 once rounded.
func Score(request schema.HelpRequest, offer schema.HelpOffer, distance, helperRating float64) (schema.MatchCandidate, bool) {
	if !withinRange(offer, distance) {
		return schema.MatchCandidate{}, false
	}

	final := WeightedScore(
		DistanceScore(distance, offer.MaxDistance),
		CategoryScore(request.Category, offer.Category),
		ReliabilityScore(helperRating),
	)
	if final <= AcceptanceThreshold {
		return schema.MatchCandidate{}, false
	}

	return schema.MatchCandidate{
		OfferID:      offer.OfferID,
		UserID:       offer.UserID,
		Title:        offer.Title,
		Distance:     int(math.RoundToEven(distance)),
		MatchScore:   roundScore(final),
		HelperRating: helperRating,
	}, true
}

// roundScore rounds half to even on the exact binary value, two decimals
func roundScore(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
