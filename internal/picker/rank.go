package picker

import (
	"sort"

	"svupick/internal/catalog"
)

// Rank orders candidates by rating descending with title ascending as the
// deterministic tie-break (case-sensitive, as stored), then truncates to n.
// Truncation happens only after the full sort. Fewer than n candidates
// returns all of them; no padding, no error. Unknown ratings cannot reach
// this stage, the filter removes them.
func Rank(candidates []catalog.Episode, n int) []catalog.Episode {
	ranked := make([]catalog.Episode, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].Title < ranked[j].Title
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
