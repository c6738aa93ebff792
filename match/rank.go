package match

import (
	"sort"

	"github.com/aidconnect/aid-connect-api/schema"
)

const DefaultLimit = 10

// Rank orders candidates by match score, highest first, and keeps at most
// limit of them. Candidates with equal scores keep the order they were
// evaluated in; callers must not rely on any particular order among ties.
// A limit of zero or less yields an empty list.
func Rank(candidates []schema.MatchCandidate, limit int) []schema.MatchCandidate {
	if limit <= 0 {
		return []schema.MatchCandidate{}
	}

	ranked := make([]schema.MatchCandidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
