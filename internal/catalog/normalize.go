package catalog

import (
	"math"
	"strconv"
	"strings"
)

// truthyValues is the closed vocabulary accepted for boolean columns.
// Matching is case-insensitive; anything else, including absence, is false.
// This is not general truthiness: "on" and "enabled" are deliberately false.
var truthyValues = map[string]struct{}{
	"1":    {},
	"true": {},
	"yes":  {},
	"y":    {},
	"t":    {},
}

// NormalizeRow coerces a loosely-typed CSV row into an Episode. It is a pure
// mapping: missing or unparseable fields degrade to defaults, never to an
// error. Season and episode default to 0; the rating defaults to unknown
// (never 0.0, which is itself a valid rating); the title falls back to the
// alternate "name" column before defaulting to empty.
func NormalizeRow(row map[string]string) Episode {
	title := strings.TrimSpace(row["title"])
	if title == "" {
		title = strings.TrimSpace(row["name"])
	}

	rating, known := parseRating(row["imdb_rating"])

	return Episode{
		Season:         parseInt(row["season"]),
		Episode:        parseInt(row["episode"]),
		Title:          title,
		AirDate:        strings.TrimSpace(row["air_date"]),
		IMDbID:         strings.TrimSpace(row["imdb_id"]),
		Rating:         rating,
		RatingKnown:    known,
		FeaturesHuang:  parseBool(row["features_george_huang"]),
		HeavyFinnMunch: parseBool(row["heavy_finn_munch"]),
		HeavyTrial:     parseBool(row["heavy_trial"]),
		Plot:           strings.TrimSpace(row["one_sentence_plot"]),
		Reason:         strings.TrimSpace(row["one_sentence_reason"]),
	}
}

func parseInt(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseRating returns a known rating only for finite values. ParseFloat
// accepts "nan" and "inf" spellings, and NaN would slip through every
// comparison in the rating gate, so both count as unknown.
func parseRating(value string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseBool(value string) bool {
	_, ok := truthyValues[strings.ToLower(strings.TrimSpace(value))]
	return ok
}
