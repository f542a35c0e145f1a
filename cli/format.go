package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tripplanner/services"
)

// formatINR groups thousands and drops paise on whole amounts: ₹40,000 or ₹75.50.
func formatINR(amount float64) string {
	p := message.NewPrinter(language.English)
	if amount == math.Trunc(amount) {
		return p.Sprintf("₹%.0f", amount)
	}
	return p.Sprintf("₹%.2f", amount)
}

func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}

// printItinerary prints the day-by-day plan followed by the cost summary.
func printItinerary(w io.Writer, it *services.Itinerary) {
	fmt.Fprintf(w, "Trip Itinerary - %s\n", it.Location)
	fmt.Fprintf(w, "%s\n\n", it.Description)

	if n := len(it.Plans); n > 0 {
		fmt.Fprintf(w, "  Dates:      %s to %s (%d days)\n", it.Plans[0].Date, it.Plans[n-1].Date, it.Days)
	}
	fmt.Fprintf(w, "  Budget:     %s\n", formatINR(it.Budget))
	fmt.Fprintf(w, "  Transport:  %s\n", it.PreferredTransport)
	fmt.Fprintf(w, "  Stay:       %s\n", it.PreferredStay)
	fmt.Fprintf(w, "  Location:   %.4f, %.4f\n\n", it.Coordinates.Lat, it.Coordinates.Lon)

	alloc := it.Allocation
	fmt.Fprintln(w, "Daily budget allocation")
	fmt.Fprintf(w, "  Accommodation:  %s\n", formatINR(alloc.Accommodation))
	fmt.Fprintf(w, "  Food:           %s\n", formatINR(alloc.Food))
	fmt.Fprintf(w, "  Transport:      %s\n", formatINR(alloc.Transport))
	fmt.Fprintf(w, "  Activities:     %s\n", formatINR(alloc.Activities))

	for i, day := range it.Plans {
		fmt.Fprintf(w, "\nDay %d - %s\n", i+1, day.Date)
		printDay(w, day)
	}

	fmt.Fprintln(w)
	printCostSummary(w, it)
}

func printDay(w io.Writer, day services.DayPlan) {
	acc := day.Accommodation
	fmt.Fprintf(w, "  %-11s %s (%s) %s/night\n", "Stay:", titleCase(acc.Name), acc.Comfort, formatINR(acc.CostPerNight))

	for _, m := range day.Meals {
		fmt.Fprintf(w, "  %-11s %s %s\n", titleCase(m.Meal)+":", m.Type, formatINR(m.Cost))
	}

	for _, act := range day.Activities {
		tr := act.Transport
		fmt.Fprintf(w, "  %-11s %s %s + %s %s (%d min)\n",
			act.TimeSlot+":", act.Name, formatINR(act.EstimatedCost), tr.Mode, formatINR(tr.Cost), tr.TimeMinutes)
	}
}

func printCostSummary(w io.Writer, it *services.Itinerary) {
	fmt.Fprintf(w, "Total estimated cost:  %s\n", formatINR(services.TotalCost(it)))

	remaining := services.RemainingBudget(it)
	if remaining < 0 {
		fmt.Fprintf(w, "Over budget by:        %s\n", formatINR(-remaining))
		return
	}
	fmt.Fprintf(w, "Remaining budget:      %s\n", formatINR(remaining))
}
