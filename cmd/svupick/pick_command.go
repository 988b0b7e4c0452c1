package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"svupick/internal/catalog"
	"svupick/internal/picker"
	"svupick/internal/services"
)

type pickResult struct {
	Rank        int     `json:"rank"`
	Episode     string  `json:"episode"`
	Title       string  `json:"title"`
	AirDate     string  `json:"air_date,omitempty"`
	Rating      float64 `json:"rating"`
	RatingKnown bool    `json:"rating_known"`
	Plot        string  `json:"plot,omitempty"`
	Reason      string  `json:"reason,omitempty"`
}

func newPickCommand(ctx *commandContext) *cobra.Command {
	var rangeExpr string
	var dataPath string
	var count int
	var minRating float64
	var excludeSeasons string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick ranked episode recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			expr := strings.TrimSpace(rangeExpr)
			if expr == "" {
				expr = fmt.Sprintf("S%dE1>S%dE99", cfg.Picker.SeasonFloor, cfg.Picker.SeasonCeiling)
			}
			rng, err := picker.ParseRange(expr)
			if err != nil {
				return err
			}

			crit := picker.Criteria{
				MinRating:     cfg.Picker.MinRating,
				SeasonFloor:   cfg.Picker.SeasonFloor,
				SeasonCeiling: cfg.Picker.SeasonCeiling,
			}
			if cmd.Flags().Changed("min-rating") {
				crit.MinRating = minRating
			}
			if crit.ExcludeSeasons, err = parseExcludeSeasons(excludeSeasons); err != nil {
				return err
			}

			resultCount := cfg.Picker.ResultCount
			if cmd.Flags().Changed("num") {
				resultCount = count
			}
			if resultCount < 1 {
				return services.Wrap(services.ErrInputFormat, "picker", "pick",
					fmt.Sprintf("result count must be at least 1, got %d", resultCount), nil)
			}

			episodes, err := ctx.loadEpisodes(cmd, dataPath)
			if err != nil {
				return err
			}

			candidates := picker.Filter(episodes, rng, crit)
			ranked := picker.Rank(candidates, resultCount)

			if jsonOutput {
				return writeJSON(cmd, buildPickResults(ranked))
			}

			out := cmd.OutOrStdout()
			if len(ranked) == 0 {
				fmt.Fprintln(out, renderStatusLine(statusInfo,
					fmt.Sprintf("no episodes matched %s with the current filters", rng), isTerminal(out)))
				return nil
			}

			rows := make([][]string, 0, len(ranked))
			for i, ep := range ranked {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					ep.Label(),
					ep.Title,
					ep.AirDate,
					formatRating(ep.Rating, ep.RatingKnown),
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"#", "Episode", "Title", "Air Date", "Rating"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight}))

			for i, ep := range ranked {
				fmt.Fprintf(out, "\n%d. %s (%s", i+1, ep.Title, ep.Label())
				if ep.AirDate != "" {
					fmt.Fprintf(out, ", aired %s", ep.AirDate)
				}
				fmt.Fprintf(out, ", rating %s)\n", formatRating(ep.Rating, ep.RatingKnown))
				if ep.Plot != "" {
					fmt.Fprintf(out, "   Plot: %s\n", ep.Plot)
				}
				if ep.Reason != "" {
					fmt.Fprintf(out, "   Why:  %s\n", ep.Reason)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rangeExpr, "range", "r", "", "Episode range expression, e.g. S2E1>S6E20")
	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "Path to a catalog CSV file")
	cmd.Flags().IntVarP(&count, "num", "n", 0, "Number of recommendations to return")
	cmd.Flags().Float64Var(&minRating, "min-rating", 0, "Minimum IMDb rating")
	cmd.Flags().StringVar(&excludeSeasons, "exclude-seasons", "", "Comma-separated seasons to skip, e.g. 2,6")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit results as JSON")
	return cmd
}

func buildPickResults(ranked []catalog.Episode) []pickResult {
	results := make([]pickResult, 0, len(ranked))
	for i, ep := range ranked {
		results = append(results, pickResult{
			Rank:        i + 1,
			Episode:     ep.Label(),
			Title:       ep.Title,
			AirDate:     ep.AirDate,
			Rating:      ep.Rating,
			RatingKnown: ep.RatingKnown,
			Plot:        ep.Plot,
			Reason:      ep.Reason,
		})
	}
	return results
}

func parseExcludeSeasons(value string) (map[int]struct{}, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	seasons := make(map[int]struct{})
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		season, err := strconv.Atoi(part)
		if err != nil {
			return nil, services.Wrap(services.ErrInputFormat, "picker", "pick",
				fmt.Sprintf("invalid season %q in exclude list", part), err)
		}
		seasons[season] = struct{}{}
	}
	return seasons, nil
}

func formatRating(rating float64, known bool) string {
	if !known {
		return "unknown"
	}
	return strconv.FormatFloat(rating, 'f', 1, 64)
}
