package catalog

import "sync"

// Loader memoizes catalog loads for the duration of a session, keyed only by
// path. Each call returns an independent copy so callers can mutate records
// (the enrichment backfill) without affecting later loads.
type Loader struct {
	mu    sync.Mutex
	cache map[string][]Episode
}

// NewLoader constructs an empty session loader.
func NewLoader() *Loader {
	return &Loader{cache: make(map[string][]Episode)}
}

// Load returns the episodes at path, reading the file at most once per
// session. An empty path yields the built-in sample set.
func (l *Loader) Load(path string) ([]Episode, error) {
	if path == "" {
		return SampleEpisodes(), nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if cached, ok := l.cache[path]; ok {
		return copyEpisodes(cached), nil
	}

	episodes, err := LoadCSV(path)
	if err != nil {
		return nil, err
	}
	l.cache[path] = episodes
	return copyEpisodes(episodes), nil
}

func copyEpisodes(episodes []Episode) []Episode {
	out := make([]Episode, len(episodes))
	copy(out, episodes)
	return out
}
