package category

import "strings"

// Suggest returns the category for the given item name. It performs
// case-insensitive matching: exact match first, then substring match.
// Falls back to "other" if no match is found.
func Suggest(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return Other
	}

	// Phase 1: exact match
	if cat, ok := exactMatch[name]; ok {
		return cat
	}

	// Phase 2: substring match (ordered longer/more-specific first)
	for _, entry := range substringMatches {
		if strings.Contains(name, entry.keyword) {
			return entry.category
		}
	}

	return Other
}

var exactMatch = map[string]string{
	// Fruits
	"apple":        Fruits,
	"apples":       Fruits,
	"banana":       Fruits,
	"bananas":      Fruits,
	"orange":       Fruits,
	"oranges":      Fruits,
	"lemon":        Fruits,
	"lemons":       Fruits,
	"lime":         Fruits,
	"limes":        Fruits,
	"grapes":       Fruits,
	"strawberries": Fruits,
	"blueberries":  Fruits,
	"raspberries":  Fruits,
	"watermelon":   Fruits,
	"pineapple":    Fruits,
	"mango":        Fruits,
	"peach":        Fruits,
	"peaches":      Fruits,
	"pear":         Fruits,
	"pears":        Fruits,

	// Salad
	"lettuce": Salad,
	"spinach": Salad,
	"kale":    Salad,
	"arugula": Salad,
	"romaine": Salad,

	// Vegetables
	"tomato":      Vegetables,
	"tomatoes":    Vegetables,
	"potato":      Vegetables,
	"potatoes":    Vegetables,
	"onion":       Vegetables,
	"onions":      Vegetables,
	"garlic":      Vegetables,
	"broccoli":    Vegetables,
	"carrots":     Vegetables,
	"celery":      Vegetables,
	"cucumber":    Vegetables,
	"cucumbers":   Vegetables,
	"peppers":     Vegetables,
	"mushrooms":   Vegetables,
	"corn":        Vegetables,
	"zucchini":    Vegetables,
	"asparagus":   Vegetables,
	"green beans": Vegetables,
	"avocado":     Vegetables,
	"avocados":    Vegetables,

	// Dairy
	"milk":           Dairy,
	"eggs":           Dairy,
	"butter":         Dairy,
	"cheese":         Dairy,
	"yogurt":         Dairy,
	"cream cheese":   Dairy,
	"sour cream":     Dairy,
	"heavy cream":    Dairy,
	"cottage cheese": Dairy,

	// Meat
	"chicken":       Meat,
	"beef":          Meat,
	"pork":          Meat,
	"turkey":        Meat,
	"bacon":         Meat,
	"sausage":       Meat,
	"ham":           Meat,
	"steak":         Meat,
	"ground beef":   Meat,
	"ground turkey": Meat,
	"hot dogs":      Meat,
	"deli meat":     Meat,
	"lamb":          Meat,

	// Fish
	"salmon":  Fish,
	"shrimp":  Fish,
	"tuna":    Fish,
	"cod":     Fish,
	"crab":    Fish,
	"lobster": Fish,
	"tilapia": Fish,

	// Frozen
	"ice cream":      Frozen,
	"frozen pizza":   Frozen,
	"frozen veggies": Frozen,
	"frozen fruit":   Frozen,
	"frozen waffles": Frozen,
	"popsicles":      Frozen,

	// Beverages
	"water":           Beverages,
	"juice":           Beverages,
	"coffee":          Beverages,
	"tea":             Beverages,
	"soda":            Beverages,
	"beer":            Beverages,
	"wine":            Beverages,
	"lemonade":        Beverages,
	"sparkling water": Beverages,

	// Snacks
	"chips":        Snacks,
	"crackers":     Snacks,
	"cookies":      Snacks,
	"popcorn":      Snacks,
	"pretzels":     Snacks,
	"granola bars": Snacks,
	"trail mix":    Snacks,
	"candy":        Snacks,
	"chocolate":    Snacks,

	// Household care
	"paper towels":      HouseholdCare,
	"toilet paper":      HouseholdCare,
	"trash bags":        HouseholdCare,
	"dish soap":         HouseholdCare,
	"laundry detergent": HouseholdCare,
	"sponges":           HouseholdCare,
	"aluminum foil":     HouseholdCare,
	"plastic wrap":      HouseholdCare,
	"bleach":            HouseholdCare,
	"napkins":           HouseholdCare,

	// Health
	"shampoo":    Health,
	"soap":       Health,
	"toothpaste": Health,
	"deodorant":  Health,
	"lotion":     Health,
	"sunscreen":  Health,
	"floss":      Health,
	"band-aids":  Health,
	"vitamins":   Health,

	// Pet
	"dog food":   Pet,
	"cat food":   Pet,
	"cat litter": Pet,

	// Home
	"light bulbs": Home,
	"batteries":   Home,
	"candles":     Home,
}

type substringEntry struct {
	keyword  string
	category string
}

// Ordered with longer/more-specific keywords first for deterministic priority.
var substringMatches = []substringEntry{
	// Meat — longer phrases first
	{"chicken breast", Meat},
	{"chicken thigh", Meat},
	{"chicken wing", Meat},
	{"ground beef", Meat},
	{"ground turkey", Meat},
	{"deli meat", Meat},
	{"pork chop", Meat},
	{"hot dog", Meat},
	{"chicken", Meat},
	{"beef", Meat},
	{"bacon", Meat},
	{"sausage", Meat},
	{"steak", Meat},

	// Fish
	{"salmon", Fish},
	{"shrimp", Fish},
	{"tuna", Fish},
	{"fish", Fish},

	// Dairy
	{"cream cheese", Dairy},
	{"sour cream", Dairy},
	{"heavy cream", Dairy},
	{"cottage cheese", Dairy},
	{"greek yogurt", Dairy},
	{"almond milk", Dairy},
	{"oat milk", Dairy},
	{"yogurt", Dairy},
	{"cheese", Dairy},
	{"milk", Dairy},
	{"butter", Dairy},
	{"cream", Dairy},
	{"egg", Dairy},

	// Salad
	{"salad mix", Salad},
	{"baby spinach", Salad},
	{"lettuce", Salad},
	{"spinach", Salad},
	{"kale", Salad},
	{"salad", Salad},

	// Vegetables
	{"green onion", Vegetables},
	{"sweet potato", Vegetables},
	{"bell pepper", Vegetables},
	{"cherry tomato", Vegetables},
	{"cabbage", Vegetables},
	{"cauliflower", Vegetables},
	{"squash", Vegetables},
	{"tomato", Vegetables},
	{"potato", Vegetables},
	{"onion", Vegetables},
	{"pepper", Vegetables},
	{"carrot", Vegetables},
	{"celery", Vegetables},
	{"veggie", Vegetables},

	// Fruits
	{"melon", Fruits},
	{"berry", Fruits},
	{"berries", Fruits},
	{"apple", Fruits},
	{"banana", Fruits},
	{"fruit", Fruits},

	// Frozen
	{"frozen", Frozen},
	{"ice cream", Frozen},
	{"popsicle", Frozen},

	// Beverages
	{"sparkling water", Beverages},
	{"orange juice", Beverages},
	{"apple juice", Beverages},
	{"coffee", Beverages},
	{"juice", Beverages},
	{"soda", Beverages},
	{"water", Beverages},
	{"beer", Beverages},
	{"wine", Beverages},
	{"drink", Beverages},
	{"tea", Beverages},

	// Snacks
	{"granola bar", Snacks},
	{"trail mix", Snacks},
	{"chip", Snacks},
	{"cracker", Snacks},
	{"cookie", Snacks},
	{"popcorn", Snacks},
	{"pretzel", Snacks},
	{"candy", Snacks},
	{"chocolate", Snacks},
	{"snack", Snacks},

	// Household care
	{"paper towel", HouseholdCare},
	{"toilet paper", HouseholdCare},
	{"trash bag", HouseholdCare},
	{"garbage bag", HouseholdCare},
	{"dish soap", HouseholdCare},
	{"laundry", HouseholdCare},
	{"detergent", HouseholdCare},
	{"cleaner", HouseholdCare},
	{"cleaning", HouseholdCare},
	{"sponge", HouseholdCare},
	{"foil", HouseholdCare},
	{"plastic wrap", HouseholdCare},

	// Health
	{"body wash", Health},
	{"shampoo", Health},
	{"conditioner", Health},
	{"toothpaste", Health},
	{"toothbrush", Health},
	{"deodorant", Health},
	{"lotion", Health},
	{"sunscreen", Health},
	{"razor", Health},
	{"tissue", Health},
	{"band-aid", Health},
	{"vitamin", Health},
	{"medicine", Health},

	// Pet
	{"dog food", Pet},
	{"cat food", Pet},
	{"litter", Pet},
	{"pet", Pet},

	// Home
	{"light bulb", Home},
	{"battery", Home},
	{"candle", Home},
}
