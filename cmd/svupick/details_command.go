package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"

	"svupick/internal/catalog"
	"svupick/internal/picker"
	"svupick/internal/services"
)

func newDetailsCommand(ctx *commandContext) *cobra.Command {
	var dataPath string

	cmd := &cobra.Command{
		Use:   "details TITLE",
		Short: "Show expanded details for one episode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			cmd.SetContext(services.WithTitle(cmd.Context(), title))
			episodes, err := ctx.loadEpisodes(cmd, dataPath)
			if err != nil {
				return err
			}

			ep, found := findByTitle(episodes, title)
			if !found {
				return services.Wrap(services.ErrNotFound, "details", "lookup",
					fmt.Sprintf("no episode titled %q in the catalog", title), nil)
			}

			expansion := picker.Expand(ep)
			out := cmd.OutOrStdout()
			colorize := isTerminal(out)
			for _, line := range renderSectionHeader(fmt.Sprintf("%s (%s)", expansion.Title, ep.Label()), colorize) {
				fmt.Fprintln(out, line)
			}
			if expansion.AirDate != "" {
				fmt.Fprintf(out, "Aired:  %s\n", expansion.AirDate)
			}
			fmt.Fprintf(out, "Rating: %s\n", formatRating(expansion.Rating, expansion.RatingKnown))

			fmt.Fprintln(out, "\nPlot:")
			for _, bullet := range expansion.Plot {
				fmt.Fprintf(out, "  - %s\n", bullet)
			}
			fmt.Fprintln(out, "\nWhy it was picked:")
			for _, bullet := range expansion.Reason {
				fmt.Fprintf(out, "  - %s\n", bullet)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "Path to a catalog CSV file")
	return cmd
}

// findByTitle returns the first episode whose title matches under Unicode
// case folding.
func findByTitle(episodes []catalog.Episode, title string) (catalog.Episode, bool) {
	folder := cases.Fold()
	want := folder.String(title)
	for _, ep := range episodes {
		if folder.String(ep.Title) == want {
			return ep, true
		}
	}
	return catalog.Episode{}, false
}
