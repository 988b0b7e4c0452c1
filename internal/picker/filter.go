package picker

import "svupick/internal/catalog"

// Criteria bundles every threshold the filter engine applies besides the
// requested range. Construct it from config so tests can use alternate
// bounds without touching package state.
type Criteria struct {
	MinRating      float64
	SeasonFloor    int
	SeasonCeiling  int
	ExcludeSeasons map[int]struct{}
}

// Filter returns the episodes passing every predicate, in original relative
// order. The predicates short-circuit in priority order: excluded season,
// range membership, allowed season interval, Huang presence, Finn/Munch
// weight, trial weight, rating gate. An empty result is a valid outcome, not
// an error, and filtering an already-filtered set with the same parameters
// returns the identical set.
func Filter(episodes []catalog.Episode, rng Range, crit Criteria) []catalog.Episode {
	out := make([]catalog.Episode, 0, len(episodes))
	for _, ep := range episodes {
		if _, excluded := crit.ExcludeSeasons[ep.Season]; excluded {
			continue
		}
		pos := ep.LinearPosition()
		if pos < rng.Start() || pos > rng.End() {
			continue
		}
		if ep.Season < crit.SeasonFloor || ep.Season > crit.SeasonCeiling {
			continue
		}
		if !ep.FeaturesHuang {
			continue
		}
		if ep.HeavyFinnMunch {
			continue
		}
		if ep.HeavyTrial {
			continue
		}
		if !ep.RatingKnown || ep.Rating < crit.MinRating {
			continue
		}
		out = append(out, ep)
	}
	return out
}
