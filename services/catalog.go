package services

// Category names one of the catalog tables.
type Category string

const (
	CategoryTransport     Category = "transport"
	CategoryAccommodation Category = "accommodation"
	CategoryFood          Category = "food"
)

// Option is a single catalog entry. Cost is per km, per night or per meal
// depending on the category; Tag is the comfort or experience level.
type Option struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Cost     float64  `json:"cost"`
	Unit     string   `json:"unit"`
	Tag      string   `json:"tag"`
	SpeedKmh float64  `json:"speed_kmh,omitempty"`
}

// Catalog holds the static transport, accommodation and food tables.
// Entries are never mutated after NewCatalog returns.
type Catalog struct {
	tables   map[Category][]Option
	defaults map[Category]string
}

// NewCatalog returns the built-in tables (prices in INR).
func NewCatalog() *Catalog {
	return &Catalog{
		tables: map[Category][]Option{
			CategoryTransport: {
				{"walking", CategoryTransport, 0, "per_km", "", 5},
				{"public_transport", CategoryTransport, 12.5, "per_km", "", 20},
				{"bike_rental", CategoryTransport, 8.5, "per_km", "", 12},
				{"ride_share", CategoryTransport, 100.0, "per_km", "", 25},
			},
			CategoryAccommodation: {
				{"hostel", CategoryAccommodation, 1600, "per_night", "basic", 0},
				{"budget_hotel", CategoryAccommodation, 3700, "per_night", "standard", 0},
				{"airbnb_shared", CategoryAccommodation, 2500, "per_night", "standard", 0},
				{"airbnb_private", CategoryAccommodation, 5000, "per_night", "good", 0},
			},
			CategoryFood: {
				{"street_food", CategoryFood, 400, "per_meal", "local", 0},
				{"budget_restaurant", CategoryFood, 800, "per_meal", "standard", 0},
				{"cooking", CategoryFood, 250, "per_meal", "homely", 0},
				{"mid_range_restaurant", CategoryFood, 1200, "per_meal", "nice", 0},
			},
		},
		defaults: map[Category]string{
			CategoryTransport:     "public_transport",
			CategoryAccommodation: "hostel",
			CategoryFood:          "street_food",
		},
	}
}

// Lookup returns the named option, or the category default when name is not
// in the table. An unknown category yields the zero Option.
func (c *Catalog) Lookup(category Category, name string) Option {
	if opt, ok := c.find(category, name); ok {
		return opt
	}
	opt, _ := c.find(category, c.defaults[category])
	return opt
}

// Has reports whether name is a recognized entry of category.
func (c *Catalog) Has(category Category, name string) bool {
	_, ok := c.find(category, name)
	return ok
}

// Default returns the fallback entry name for category.
func (c *Catalog) Default(category Category) string {
	return c.defaults[category]
}

// Options lists a category's entries in table order.
func (c *Catalog) Options(category Category) []Option {
	out := make([]Option, len(c.tables[category]))
	copy(out, c.tables[category])
	return out
}

// Names lists a category's entry names in table order.
func (c *Catalog) Names(category Category) []string {
	names := make([]string, 0, len(c.tables[category]))
	for _, opt := range c.tables[category] {
		names = append(names, opt.Name)
	}
	return names
}

func (c *Catalog) find(category Category, name string) (Option, bool) {
	for _, opt := range c.tables[category] {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}
