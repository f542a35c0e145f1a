package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tripplanner/services"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List transport, stay and food options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := services.NewCatalog()
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string][]services.Option{
					string(services.CategoryTransport):     catalog.Options(services.CategoryTransport),
					string(services.CategoryAccommodation): catalog.Options(services.CategoryAccommodation),
					string(services.CategoryFood):          catalog.Options(services.CategoryFood),
				})
			}
			return printCatalog(cmd.OutOrStdout(), catalog)
		},
	}
}

func printCatalog(out io.Writer, catalog *services.Catalog) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tNAME\tCOST\tUNIT\tLEVEL")
	for _, category := range []services.Category{
		services.CategoryTransport, services.CategoryAccommodation, services.CategoryFood,
	} {
		for _, opt := range catalog.Options(category) {
			level := opt.Tag
			if level == "" {
				level = fmt.Sprintf("%g km/h", opt.SpeedKmh)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", category, opt.Name, formatINR(opt.Cost), opt.Unit, level)
		}
	}
	return w.Flush()
}
