package orchestrator

import (
	"strings"
	"time"

	"github.com/ranjeetkulkarni/ExpenseNinja/internal/ledger"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/models"
)

// filterRule maps a keyword group to the category filter it selects.
type filterRule struct {
	keywords []string
	category models.Category
}

// filterRules is the category-filter cascade for query messages. Rules are
// evaluated top to bottom and the first matching group wins, unlike the
// classifier's union-all accumulation. The order is part of the observable
// behavior and must not be re-sorted.
//
// The last rule collapses subscription, investment and donation keywords
// into the single subscriptions bucket even though those are three distinct
// categories. That quirk is inherited behavior; changing it would silently
// reroute existing queries, so it stays.
var filterRules = []filterRule{
	{keywords: []string{"coffee"}, category: models.CategoryCoffee},
	{keywords: []string{"online", "swiggy", "blinkit"}, category: models.CategoryOnlineFood},
	{keywords: []string{"grocery", "groceries", "bigbasket", "zepto"}, category: models.CategoryGroceries},
	{keywords: []string{"dinner", "lunch", "restaurant", "dining"}, category: models.CategoryDining},
	{keywords: []string{"travel", "ola", "uber", "taxi", "train", "flight"}, category: models.CategoryTravel},
	{keywords: []string{"shopping", "clothes", "fashion"}, category: models.CategoryShopping},
	{keywords: []string{"book", "books", "novel", "magazine"}, category: models.CategoryBooks},
	{keywords: []string{"food", "snack", "alcohol"}, category: models.CategoryFood},
	{keywords: []string{"entertainment", "netflix", "disney", "prime"}, category: models.CategoryEntertainment},
	{keywords: []string{"utilities", "electricity", "water", "internet", "gas"}, category: models.CategoryUtilities},
	{keywords: []string{"health", "doctor", "pharmacy", "medicine"}, category: models.CategoryHealth},
	{keywords: []string{"education", "tuition", "school", "college", "course"}, category: models.CategoryEducation},
	{keywords: []string{"personal care", "salon", "spa", "beauty"}, category: models.CategoryPersonalCare},
	{keywords: []string{"rent", "apartment"}, category: models.CategoryRent},
	{keywords: []string{"fuel", "petrol", "diesel"}, category: models.CategoryFuel},
	{keywords: []string{"repair", "maintenance", "service"}, category: models.CategoryMaintenance},
	{keywords: []string{"subscription", "invest", "donation", "charity"}, category: models.CategorySubscriptions},
}

// DeriveFilter builds the query filter from a free-text message: an
// optional date ("yesterday") and an optional category from the first
// matching keyword group. No match on either dimension means no filter.
func DeriveFilter(text string, now time.Time) ledger.Filter {
	lower := strings.ToLower(text)

	var filter ledger.Filter
	if strings.Contains(lower, "yesterday") {
		filter.Date = now.AddDate(0, 0, -1).Format(models.DateLayout)
	}

	for _, rule := range filterRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				filter.Category = rule.category
				return filter
			}
		}
	}

	return filter
}
