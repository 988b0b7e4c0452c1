package enrich

import (
	"context"
	"log/slog"

	"svupick/internal/catalog"
	"svupick/internal/logging"
	"svupick/internal/ratingcache"
	"svupick/internal/services/omdb"
)

// Enricher resolves missing ratings for catalog episodes. A nil cache is
// valid and simply skips the cache layer.
type Enricher struct {
	ratings omdb.Ratings
	cache   *ratingcache.Store
	logger  *slog.Logger
}

// New returns an enricher backed by the given rating source. The cache may
// be nil.
func New(ratings omdb.Ratings, cache *ratingcache.Store, logger *slog.Logger) *Enricher {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Enricher{
		ratings: ratings,
		cache:   cache,
		logger:  logging.NewComponentLogger(logger, "enrich"),
	}
}

// Apply fills in ratings for episodes whose rating is unknown or effectively
// zero, provided they carry an IMDb identifier. Each episode triggers at most
// one remote lookup; failed lookups are logged and skipped.
func (e *Enricher) Apply(ctx context.Context, episodes []catalog.Episode) {
	if e == nil || e.ratings == nil {
		return
	}
	for i := range episodes {
		e.enrichOne(ctx, &episodes[i])
	}
}

func (e *Enricher) enrichOne(ctx context.Context, ep *catalog.Episode) {
	if !needsRating(ep) {
		return
	}

	if rating, found, err := e.cache.Lookup(ctx, ep.IMDbID); err != nil {
		e.logger.Warn("rating cache lookup failed",
			logging.String(logging.FieldIMDbID, ep.IMDbID),
			logging.Error(err))
	} else if found {
		ep.Rating = rating
		ep.RatingKnown = true
		return
	}

	rating, known, err := e.ratings.Lookup(ctx, ep.IMDbID)
	if err != nil {
		e.logger.Warn("rating lookup failed",
			logging.String(logging.FieldIMDbID, ep.IMDbID),
			logging.String(logging.FieldTitle, ep.Title),
			logging.String(logging.FieldEpisodeLabel, ep.Label()),
			logging.Error(err))
		return
	}
	if !known {
		return
	}

	ep.Rating = rating
	ep.RatingKnown = true
	e.logger.Debug("rating backfilled",
		logging.String(logging.FieldIMDbID, ep.IMDbID),
		logging.String(logging.FieldEpisodeLabel, ep.Label()),
		logging.Float64("rating", rating))
	if err := e.cache.Put(ctx, ep.IMDbID, rating); err != nil {
		e.logger.Warn("rating cache write failed",
			logging.String(logging.FieldIMDbID, ep.IMDbID),
			logging.Error(err))
	}
}

func needsRating(ep *catalog.Episode) bool {
	if ep.IMDbID == "" {
		return false
	}
	return !ep.RatingKnown || ep.Rating < 0.1
}
