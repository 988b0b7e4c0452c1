package catalog

import "fmt"

// Episode is a single normalized catalog record. Records are immutable once
// normalized except for the enrichment backfill: a rating may be filled in
// from OMDb exactly once when it is unknown or implausibly near zero.
type Episode struct {
	Season  int
	Episode int
	Title   string
	AirDate string
	IMDbID  string

	// Rating is only meaningful when RatingKnown is true. An unknown rating
	// is never encoded as a sentinel value inside the valid [0,10] range.
	Rating      float64
	RatingKnown bool

	FeaturesHuang  bool
	HeavyFinnMunch bool
	HeavyTrial     bool

	Plot   string
	Reason string
}

// LinearPosition collapses season and episode into a single comparable
// position (season*100 + episode). Episode numbers never reach 100 within a
// season, so ordering on this value matches catalog order.
func (e Episode) LinearPosition() int {
	return e.Season*100 + e.Episode
}

// Label renders the familiar SxEy form, e.g. "S2E21".
func (e Episode) Label() string {
	return fmt.Sprintf("S%dE%d", e.Season, e.Episode)
}
