// Package category defines the closed set of item categories and a
// keyword-based suggestion helper for uncategorized item names.
package category

// The category values are lowercase wire identifiers; display labels
// live in Label. The set is closed: validation rejects anything else.
const (
	Fruits        = "fruits"
	Salad         = "salad"
	Vegetables    = "vegetables"
	Dairy         = "dairy"
	Meat          = "meat"
	Fish          = "fish"
	Frozen        = "frozen"
	Snacks        = "snacks"
	Beverages     = "beverages"
	HouseholdCare = "household care"
	Health        = "health"
	Pet           = "pet"
	Home          = "home"
	Other         = "other"
)

var all = []string{
	Fruits,
	Salad,
	Vegetables,
	Dairy,
	Meat,
	Fish,
	Frozen,
	Snacks,
	Beverages,
	HouseholdCare,
	Health,
	Pet,
	Home,
	Other,
}

var labels = map[string]string{
	Fruits:        "Fruits",
	Salad:         "Salad",
	Vegetables:    "Vegetables",
	Dairy:         "Dairy",
	Meat:          "Meat",
	Fish:          "Fish",
	Frozen:        "Frozen",
	Snacks:        "Snacks",
	Beverages:     "Beverages",
	HouseholdCare: "Household Care",
	Health:        "Health",
	Pet:           "Pet",
	Home:          "Home",
	Other:         "Other",
}

// All returns the categories in display order.
func All() []string {
	out := make([]string, len(all))
	copy(out, all)
	return out
}

// Valid reports whether c is a member of the closed category set.
func Valid(c string) bool {
	_, ok := labels[c]
	return ok
}

// Label returns the display label for a category, or "" if unknown.
func Label(c string) string {
	return labels[c]
}
