package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tripplanner/config"
	"tripplanner/services"
)

type planOptions struct {
	location  string
	interests string
	budget    float64
	days      int
	start     string
	style     string
	transport string
	stay      string
	seed      uint64
	jsonPath  string
	pdfPath   string
}

type planResult struct {
	Itinerary       *services.Itinerary `json:"itinerary"`
	TotalCost       float64             `json:"total_cost"`
	RemainingBudget float64             `json:"remaining_budget"`
}

func newPlanCmd() *cobra.Command {
	var opts planOptions

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build an itinerary in the terminal",
		Long:  "Geocode a destination, build a day-by-day itinerary and print it. Optionally save the JSON document or the PDF.",
		Example: `  tripplanner plan --location "Goa, India" --budget 25000 --days 4
  tripplanner plan --location Paris --days 3 --stay budget_hotel --pdf paris.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				opts.seed = cfg.Planner.Seed
			}
			return runPlan(cmd, cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.location, "location", "", "destination, e.g. \"Jaipur, India\" (required)")
	cmd.Flags().StringVar(&opts.interests, "interests", "", "free-text interests, echoed into the description")
	cmd.Flags().Float64Var(&opts.budget, "budget", 0, "total budget in INR (default: planner.default_budget)")
	cmd.Flags().IntVar(&opts.days, "days", 0, "number of days (default: planner.default_days)")
	cmd.Flags().StringVar(&opts.start, "start", "", "start date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&opts.style, "style", "", "travel style (budget|comfort|adventure)")
	cmd.Flags().StringVar(&opts.transport, "transport", "", "preferred transport (walking|public_transport|bike_rental|ride_share)")
	cmd.Flags().StringVar(&opts.stay, "stay", "", "preferred stay (hostel|budget_hotel|airbnb_shared|airbnb_private)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for reproducible plans (0: time based)")
	cmd.Flags().StringVar(&opts.jsonPath, "json", "", "also write the itinerary JSON document to this file")
	cmd.Flags().StringVar(&opts.pdfPath, "pdf", "", "also write the PDF to this file")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}

func (o planOptions) tripRequest(cfg *config.Config) (services.TripRequest, error) {
	req := services.TripRequest{
		Location:           o.location,
		Interests:          o.interests,
		Budget:             o.budget,
		Days:               o.days,
		TravelStyle:        o.style,
		PreferredTransport: o.transport,
		PreferredStay:      o.stay,
	}
	if req.Budget == 0 {
		req.Budget = cfg.Planner.DefaultBudget
	}
	if req.Days == 0 {
		req.Days = cfg.Planner.DefaultDays
	}
	if o.start != "" {
		d, err := services.ParseDate(o.start)
		if err != nil {
			return req, &services.ValidationError{Field: "start", Message: "use YYYY-MM-DD"}
		}
		req.StartDate = d
	}
	req.ApplyDefaults()
	return req, nil
}

func runPlan(cmd *cobra.Command, cfg *config.Config, opts planOptions) error {
	req, err := opts.tripRequest(cfg)
	if err != nil {
		return err
	}

	a, err := newApp(cfg, opts.seed)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := req.Validate(cfg.Planner.Limits(), a.planner.Catalog()); err != nil {
		return err
	}

	it, err := a.planner.Build(cmd.Context(), req)
	if err != nil {
		return err
	}

	if opts.jsonPath != "" {
		data, err := services.ExportJSON(it)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.jsonPath, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", opts.jsonPath, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved itinerary JSON to %s\n", opts.jsonPath)
	}
	if opts.pdfPath != "" {
		data, err := services.GeneratePDFBytes(it)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.pdfPath, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", opts.pdfPath, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved itinerary PDF to %s\n", opts.pdfPath)
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), planResult{
			Itinerary:       it,
			TotalCost:       services.TotalCost(it),
			RemainingBudget: services.RemainingBudget(it),
		})
	}
	printItinerary(cmd.OutOrStdout(), it)
	return nil
}
