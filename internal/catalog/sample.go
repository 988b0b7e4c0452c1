package catalog

// SampleEpisodes returns the built-in fallback set used when no catalog file
// is configured. Three well-known entries keep the tool usable out of the box.
func SampleEpisodes() []Episode {
	return []Episode{
		{
			Season:        2,
			Episode:       21,
			Title:         "Scourge",
			AirDate:       "2001-05-11",
			IMDbID:        "tt0629728",
			Rating:        8.5,
			RatingKnown:   true,
			FeaturesHuang: true,
			Plot:          "The SVU hunts a sadistic serial killer whose crimes escalate in brutality and psychological complexity.",
			Reason:        "A tense, profiler-driven episode where George Huang's insights meaningfully shape the investigation.",
		},
		{
			Season:        3,
			Episode:       1,
			Title:         "Repression",
			AirDate:       "2001-09-28",
			IMDbID:        "tt0629715",
			Rating:        8.2,
			RatingKnown:   true,
			FeaturesHuang: true,
			Plot:          "A rape case hinges on repressed childhood memories, raising doubts about truth, trauma, and memory.",
			Reason:        "Classic Huang-focused psychology episode with moral ambiguity and no trial-heavy payoff.",
		},
		{
			Season:        3,
			Episode:       2,
			Title:         "Wrath",
			AirDate:       "2001-10-05",
			IMDbID:        "tt0629756",
			Rating:        8.3,
			RatingKnown:   true,
			FeaturesHuang: true,
			Plot:          "A killer seeks revenge against people tied to Benson's past cases, turning SVU's history against them.",
			Reason:        "High emotional stakes, strong profiling, and relentless momentum without courtroom drag.",
		},
	}
}
