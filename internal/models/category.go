// Package models defines the domain types shared across the application:
// the closed category set, expense records and amount parsing.
package models

import (
	"sort"
	"strings"
)

// Category is one label from the fixed, closed category enumeration.
type Category string

// The full category set. This is build-time configuration shared by the
// categorizer, the ledger and the response formatter; it is never mutated
// at runtime.
const (
	CategoryFood           Category = "food"
	CategoryCoffee         Category = "coffee"
	CategoryOnlineFood     Category = "online_food"
	CategoryGroceries      Category = "groceries"
	CategoryDining         Category = "dining"
	CategorySnacks         Category = "snacks"
	CategoryAlcohol        Category = "alcohol"
	CategoryTravel         Category = "travel"
	CategoryLodging        Category = "lodging"
	CategoryTransportation Category = "transportation"
	CategoryShopping       Category = "shopping"
	CategoryClothing       Category = "clothing"
	CategoryElectronics    Category = "electronics"
	CategoryFurniture      Category = "furniture"
	CategoryEntertainment  Category = "entertainment"
	CategoryUtilities      Category = "utilities"
	CategoryHealth         Category = "health"
	CategoryInsurance      Category = "insurance"
	CategoryEducation      Category = "education"
	CategoryBooks          Category = "books"
	CategoryPersonalCare   Category = "personal_care"
	CategoryRent           Category = "rent"
	CategoryFuel           Category = "fuel"
	CategoryMaintenance    Category = "maintenance"
	CategorySubscriptions  Category = "subscriptions"
	CategoryInvestments    Category = "investments"
	CategoryCharity        Category = "charity"
	CategoryPetCare        Category = "pet_care"
	CategoryOfficeSupplies Category = "office_supplies"
	CategoryCommunication  Category = "communication"
	CategoryFitness        Category = "fitness"
	CategoryBeauty         Category = "beauty"
	CategoryStationery     Category = "stationery"
	CategoryMiscellaneous  Category = "miscellaneous"
	CategoryOthers         Category = "others"
)

// AllCategories lists every member of the category set in its canonical
// order. Used as the candidate list for zero-shot classification.
var AllCategories = []Category{
	CategoryFood,
	CategoryCoffee,
	CategoryOnlineFood,
	CategoryGroceries,
	CategoryDining,
	CategorySnacks,
	CategoryAlcohol,
	CategoryTravel,
	CategoryLodging,
	CategoryTransportation,
	CategoryShopping,
	CategoryClothing,
	CategoryElectronics,
	CategoryFurniture,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryHealth,
	CategoryInsurance,
	CategoryEducation,
	CategoryBooks,
	CategoryPersonalCare,
	CategoryRent,
	CategoryFuel,
	CategoryMaintenance,
	CategorySubscriptions,
	CategoryInvestments,
	CategoryCharity,
	CategoryPetCare,
	CategoryOfficeSupplies,
	CategoryCommunication,
	CategoryFitness,
	CategoryBeauty,
	CategoryStationery,
	CategoryMiscellaneous,
	CategoryOthers,
}

// categoryGlyphs maps each category to its display glyph for message
// formatting. Missing entries simply render without a glyph.
var categoryGlyphs = map[Category]string{
	CategoryFood:           "🍽️",
	CategoryCoffee:         "☕️",
	CategoryOnlineFood:     "🍔",
	CategoryGroceries:      "🛒",
	CategoryDining:         "🍴",
	CategorySnacks:         "🍟",
	CategoryAlcohol:        "🍺",
	CategoryTravel:         "✈️",
	CategoryLodging:        "🏨",
	CategoryTransportation: "🚖",
	CategoryShopping:       "🛍️",
	CategoryClothing:       "👗",
	CategoryElectronics:    "📱",
	CategoryFurniture:      "🛋️",
	CategoryEntertainment:  "🎬",
	CategoryUtilities:      "💡",
	CategoryHealth:         "🏥",
	CategoryInsurance:      "🛡️",
	CategoryEducation:      "📚",
	CategoryBooks:          "📖",
	CategoryPersonalCare:   "💅",
	CategoryRent:           "🏠",
	CategoryFuel:           "⛽️",
	CategoryMaintenance:    "🔧",
	CategorySubscriptions:  "🔔",
	CategoryInvestments:    "💹",
	CategoryCharity:        "❤️",
	CategoryPetCare:        "🐾",
	CategoryOfficeSupplies: "🖊️",
	CategoryCommunication:  "📞",
	CategoryFitness:        "🏋️",
	CategoryBeauty:         "💄",
	CategoryStationery:     "✏️",
	CategoryMiscellaneous:  "🗃️",
	CategoryOthers:         "❓",
}

// String returns the category label.
func (c Category) String() string {
	return string(c)
}

// Glyph returns the display glyph for the category, or an empty string if
// none is configured.
func (c Category) Glyph() string {
	return categoryGlyphs[c]
}

// IsValid reports whether the category is a member of the category set.
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory returns the category for a label if it is a member of the
// category set. The label is trimmed and lowercased first, since labels often
// arrive from external classifiers with inconsistent casing.
func ParseCategory(label string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(label)))
	if c.IsValid() {
		return c, true
	}
	return "", false
}

// CategoryNames returns the labels of the full category set, in canonical
// order. Useful as the candidate list for external classifiers.
func CategoryNames() []string {
	names := make([]string, len(AllCategories))
	for i, c := range AllCategories {
		names[i] = string(c)
	}
	return names
}

// SortCategories returns a new slice containing the given categories
// deduplicated and in lexicographic order. Classification results are always
// presented in this stable order so repeated runs are reproducible.
func SortCategories(set map[Category]struct{}) []Category {
	if len(set) == 0 {
		return nil
	}
	out := make([]Category, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
