package picker

import (
	"fmt"
	"strconv"
	"strings"

	"svupick/internal/services"
)

// Range is an inclusive season/episode interval parsed from the compact
// "SxEy>SxEy" form. It carries no catalog knowledge: out-of-catalog positions
// are accepted here and rejected later by the filter predicates.
type Range struct {
	StartSeason  int
	StartEpisode int
	EndSeason    int
	EndEpisode   int
}

// Start returns the linearized start position.
func (r Range) Start() int {
	return r.StartSeason*100 + r.StartEpisode
}

// End returns the linearized end position.
func (r Range) End() int {
	return r.EndSeason*100 + r.EndEpisode
}

// String reconstructs the canonical range expression.
func (r Range) String() string {
	return fmt.Sprintf("S%dE%d>S%dE%d", r.StartSeason, r.StartEpisode, r.EndSeason, r.EndEpisode)
}

// ParseRange parses an expression like "S2E1>S6E20". Exactly one '>'
// separator is required; each side must begin with 'S' and contain 'E' after
// it, with both numeric components parsing as integers. A descending range is
// rejected, not swapped. Every failure carries the offending literal text.
func ParseRange(expr string) (Range, error) {
	left, right, ok := strings.Cut(expr, ">")
	if !ok || strings.Contains(right, ">") {
		return Range{}, services.Wrap(services.ErrInputFormat, "picker", "range",
			fmt.Sprintf("invalid range format %q, expected 'SxEy>SxEy'", expr), nil)
	}

	startSeason, startEpisode, err := parsePoint(left)
	if err != nil {
		return Range{}, services.Wrap(services.ErrInputFormat, "picker", "range",
			fmt.Sprintf("invalid range format %q, expected 'SxEy>SxEy'", expr), err)
	}
	endSeason, endEpisode, err := parsePoint(right)
	if err != nil {
		return Range{}, services.Wrap(services.ErrInputFormat, "picker", "range",
			fmt.Sprintf("invalid range format %q, expected 'SxEy>SxEy'", expr), err)
	}

	r := Range{
		StartSeason:  startSeason,
		StartEpisode: startEpisode,
		EndSeason:    endSeason,
		EndEpisode:   endEpisode,
	}
	if r.End() < r.Start() {
		return Range{}, services.Wrap(services.ErrInputFormat, "picker", "range",
			fmt.Sprintf("range end must not precede range start in %q", expr), nil)
	}
	return r, nil
}

func parsePoint(s string) (season, episode int, err error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "S") {
		return 0, 0, fmt.Errorf("point %q does not start with season marker", s)
	}
	idx := strings.Index(s, "E")
	if idx < 1 {
		return 0, 0, fmt.Errorf("point %q is missing episode marker", s)
	}
	season, err = strconv.Atoi(s[1:idx])
	if err != nil {
		return 0, 0, fmt.Errorf("season in point %q: %w", s, err)
	}
	episode, err = strconv.Atoi(s[idx+1:])
	if err != nil {
		return 0, 0, fmt.Errorf("episode in point %q: %w", s, err)
	}
	return season, episode, nil
}
