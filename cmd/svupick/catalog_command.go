package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	var dataPath string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the loaded episode catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			episodes, err := ctx.loadEpisodes(cmd, dataPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(episodes))
			for _, ep := range episodes {
				rows = append(rows, []string{
					ep.Label(),
					ep.Title,
					ep.AirDate,
					formatRating(ep.Rating, ep.RatingKnown),
					yesNo(ep.FeaturesHuang),
					yesNo(ep.HeavyFinnMunch),
					yesNo(ep.HeavyTrial),
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"Episode", "Title", "Air Date", "Rating", "Huang", "Finn/Munch", "Trial"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignLeft}))
			fmt.Fprintf(out, "%s loaded\n", pluralize(len(episodes), "episode"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "Path to a catalog CSV file")
	return cmd
}

func pluralize(count int, noun string) string {
	if count == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(count) + " " + noun + "s"
}
