// Package cli defines the cobra command tree for the trip planner.
package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

var (
	flagFormat string
	flagConfig string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tripplanner",
		Short:         "Plan budget trips day by day",
		Long:          "Builds a day-by-day travel itinerary for a destination, budget and trip length. Serve it over HTTP or plan from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./configs/config.yaml or ./config.yaml)")

	root.AddCommand(
		newServeCmd(),
		newPlanCmd(),
		newCatalogCmd(),
	)

	return root
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
