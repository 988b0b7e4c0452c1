package config

const (
	defaultSeasonFloor    = 1
	defaultSeasonCeiling  = 12
	defaultMinRating      = 8.0
	defaultResultCount    = 3
	defaultOMDbBaseURL    = "http://www.omdbapi.com/"
	defaultOMDbTimeout    = 8
	defaultRatingCacheLoc = "~/.cache/svupick/ratings.db"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Picker: Picker{
			SeasonFloor:   defaultSeasonFloor,
			SeasonCeiling: defaultSeasonCeiling,
			MinRating:     defaultMinRating,
			ResultCount:   defaultResultCount,
		},
		OMDb: OMDb{
			BaseURL:        defaultOMDbBaseURL,
			TimeoutSeconds: defaultOMDbTimeout,
		},
		RatingCache: RatingCache{
			Enabled: false,
			Path:    defaultRatingCacheLoc,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
