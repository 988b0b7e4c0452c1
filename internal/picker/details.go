package picker

import (
	"strings"

	"svupick/internal/catalog"
)

// bulletCount is the fixed shape of a detail expansion: 4 plot bullets and
// 4 reason bullets, always non-empty.
const bulletCount = 4

// placeholderBullet fills the expansion when a free-text field is empty.
const placeholderBullet = "(No detail available)"

// Expansion is the fixed-shape detail view for a single episode.
type Expansion struct {
	Title       string
	AirDate     string
	Rating      float64
	RatingKnown bool
	Plot        [bulletCount]string
	Reason      [bulletCount]string
}

// Expand derives the detail expansion from a record's two free-text fields.
// The splitter is a deliberate heuristic, not language-aware parsing: clauses
// beyond the fourth are dropped, and short inputs pad by repeating the
// previous chunk. Both edge behaviors are part of the observable contract.
func Expand(ep catalog.Episode) Expansion {
	return Expansion{
		Title:       ep.Title,
		AirDate:     ep.AirDate,
		Rating:      ep.Rating,
		RatingKnown: ep.RatingKnown,
		Plot:        expandSentence(ep.Plot),
		Reason:      expandSentence(ep.Reason),
	}
}

func expandSentence(sentence string) [bulletCount]string {
	var bullets [bulletCount]string
	if strings.TrimSpace(sentence) == "" {
		for i := range bullets {
			bullets[i] = placeholderBullet
		}
		return bullets
	}

	clauses := splitClauses(sentence)
	if len(clauses) >= bulletCount {
		copy(bullets[:], clauses[:bulletCount])
		return bullets
	}

	return chunkWords(sentence)
}

// splitClauses treats " and " as a comma, splits on commas, and keeps the
// trimmed non-empty fragments.
func splitClauses(sentence string) []string {
	replaced := strings.ReplaceAll(sentence, " and ", ", ")
	parts := strings.Split(replaced, ",")
	clauses := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			clauses = append(clauses, trimmed)
		}
	}
	return clauses
}

// chunkWords re-splits the original sentence into 4 contiguous word chunks of
// total/4 words each (integer division, minimum 1). Words beyond the fourth
// chunk are dropped; missing chunks repeat the previous non-empty chunk so
// exactly 4 non-empty bullets always emerge, even from a single word.
func chunkWords(sentence string) [bulletCount]string {
	words := strings.Fields(sentence)
	approx := len(words) / bulletCount
	if approx < 1 {
		approx = 1
	}

	var bullets [bulletCount]string
	filled := 0
	for i := 0; i < bulletCount; i++ {
		lo := i * approx
		hi := lo + approx
		if lo > len(words) {
			lo = len(words)
		}
		if hi > len(words) {
			hi = len(words)
		}
		chunk := strings.TrimSpace(strings.Join(words[lo:hi], " "))
		if chunk != "" {
			bullets[filled] = chunk
			filled++
		}
	}
	for i := filled; i < bulletCount; i++ {
		bullets[i] = bullets[i-1]
	}
	return bullets
}
