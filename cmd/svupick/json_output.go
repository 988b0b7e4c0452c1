package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// writeJSON renders the pick results (or any other payload) as indented
// JSON on the command's stdout, so `pick --json` output can be piped into
// jq or consumed by scripts.
func writeJSON(cmd *cobra.Command, payload any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
