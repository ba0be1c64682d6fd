package categorizer

import (
	"fmt"
	"os"
	"strings"

	"github.com/ranjeetkulkarni/ExpenseNinja/internal/models"

	"gopkg.in/yaml.v3"
)

// Trigger maps a lowercase phrase to the category labels it contributes.
// Triggers are kept as an ordered list, not a map, so matching order is
// deterministic.
type Trigger struct {
	Phrase string            `yaml:"phrase"`
	Labels []models.Category `yaml:"labels"`
}

// MappingTable is the compiled trigger table used by the substring tiers.
// Read-only after construction.
type MappingTable struct {
	triggers []Trigger
}

// NewMappingTable compiles a trigger list. Phrases are lowercased once here
// so matching never has to normalize them again.
func NewMappingTable(triggers []Trigger) *MappingTable {
	compiled := make([]Trigger, 0, len(triggers))
	for _, t := range triggers {
		phrase := strings.ToLower(strings.TrimSpace(t.Phrase))
		if phrase == "" || len(t.Labels) == 0 {
			continue
		}
		compiled = append(compiled, Trigger{Phrase: phrase, Labels: t.Labels})
	}
	return &MappingTable{triggers: compiled}
}

// Match unions the labels of every trigger whose phrase occurs as a
// substring of the given lowercase text. Multiple triggers may fire; all of
// them contribute.
func (m *MappingTable) Match(lowerText string, into map[models.Category]struct{}) []Trigger {
	var fired []Trigger
	for _, t := range m.triggers {
		if strings.Contains(lowerText, t.Phrase) {
			for _, label := range t.Labels {
				into[label] = struct{}{}
			}
			fired = append(fired, t)
		}
	}
	return fired
}

// Len returns the number of compiled triggers.
func (m *MappingTable) Len() int {
	return len(m.triggers)
}

// triggersFile is the YAML shape of an external trigger table override.
type triggersFile struct {
	Triggers []Trigger `yaml:"triggers"`
}

// LoadTriggers reads a trigger table from a YAML file. Used to override the
// built-in table without a rebuild.
func LoadTriggers(path string) ([]Trigger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read triggers file: %w", err)
	}

	var file triggersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("could not parse triggers file: %w", err)
	}

	for _, t := range file.Triggers {
		for _, label := range t.Labels {
			if !label.IsValid() {
				return nil, fmt.Errorf("trigger %q maps to unknown category %q", t.Phrase, label)
			}
		}
	}

	return file.Triggers, nil
}

// DefaultTriggers returns the built-in trigger table. Order matters only for
// log output; matching is union-all.
func DefaultTriggers() []Trigger {
	return []Trigger{
		{Phrase: "starbucks", Labels: []models.Category{models.CategoryCoffee, models.CategoryFood}},
		{Phrase: "cappuccino", Labels: []models.Category{models.CategoryCoffee, models.CategoryFood}},
		{Phrase: "filter coffee", Labels: []models.Category{models.CategoryCoffee, models.CategoryFood}},
		{Phrase: "cold coffee", Labels: []models.Category{models.CategoryCoffee, models.CategoryFood}},
		{Phrase: "chai", Labels: []models.Category{models.CategoryFood}},
		{Phrase: "dinner", Labels: []models.Category{models.CategoryDining, models.CategoryFood}},
		{Phrase: "lunch", Labels: []models.Category{models.CategoryDining, models.CategoryFood}},
		{Phrase: "restaurant", Labels: []models.Category{models.CategoryDining, models.CategoryFood}},
		{Phrase: "snack", Labels: []models.Category{models.CategorySnacks, models.CategoryFood}},
		{Phrase: "alcohol", Labels: []models.Category{models.CategoryAlcohol, models.CategoryFood}},
		{Phrase: "swiggy", Labels: []models.Category{models.CategoryOnlineFood, models.CategoryFood}},
		{Phrase: "blinkit", Labels: []models.Category{models.CategoryOnlineFood, models.CategoryFood}},
		{Phrase: "uber", Labels: []models.Category{models.CategoryTravel, models.CategoryTransportation}},
		{Phrase: "ola", Labels: []models.Category{models.CategoryTravel, models.CategoryTransportation}},
		{Phrase: "taxi", Labels: []models.Category{models.CategoryTravel, models.CategoryTransportation}},
		{Phrase: "train", Labels: []models.Category{models.CategoryTravel, models.CategoryTransportation}},
		{Phrase: "flight", Labels: []models.Category{models.CategoryTravel, models.CategoryTransportation}},
		{Phrase: "hotel", Labels: []models.Category{models.CategoryLodging, models.CategoryTravel}},
		{Phrase: "airbnb", Labels: []models.Category{models.CategoryLodging, models.CategoryTravel}},
		{Phrase: "bigbasket", Labels: []models.Category{models.CategoryGroceries}},
		{Phrase: "zepto", Labels: []models.Category{models.CategoryGroceries}},
		{Phrase: "amazon", Labels: []models.Category{models.CategoryShopping}},
		{Phrase: "ebay", Labels: []models.Category{models.CategoryShopping}},
		{Phrase: "netflix", Labels: []models.Category{models.CategoryEntertainment, models.CategorySubscriptions}},
		{Phrase: "disney", Labels: []models.Category{models.CategoryEntertainment, models.CategorySubscriptions}},
		{Phrase: "prime", Labels: []models.Category{models.CategoryEntertainment, models.CategorySubscriptions}},
		{Phrase: "electricity", Labels: []models.Category{models.CategoryUtilities}},
		{Phrase: "water", Labels: []models.Category{models.CategoryUtilities}},
		{Phrase: "gas bill", Labels: []models.Category{models.CategoryUtilities}},
		{Phrase: "internet", Labels: []models.Category{models.CategoryUtilities, models.CategoryCommunication}},
		{Phrase: "doctor", Labels: []models.Category{models.CategoryHealth}},
		{Phrase: "pharmacy", Labels: []models.Category{models.CategoryHealth}},
		{Phrase: "medicine", Labels: []models.Category{models.CategoryHealth}},
		{Phrase: "tuition", Labels: []models.Category{models.CategoryEducation}},
		{Phrase: "school", Labels: []models.Category{models.CategoryEducation}},
		{Phrase: "college", Labels: []models.Category{models.CategoryEducation}},
		{Phrase: "course", Labels: []models.Category{models.CategoryEducation}},
		{Phrase: "book", Labels: []models.Category{models.CategoryBooks}},
		{Phrase: "novel", Labels: []models.Category{models.CategoryBooks}},
		{Phrase: "magazine", Labels: []models.Category{models.CategoryBooks}},
		{Phrase: "salon", Labels: []models.Category{models.CategoryPersonalCare}},
		{Phrase: "spa", Labels: []models.Category{models.CategoryPersonalCare}},
		{Phrase: "rent", Labels: []models.Category{models.CategoryRent}},
		{Phrase: "apartment", Labels: []models.Category{models.CategoryRent}},
		{Phrase: "fuel", Labels: []models.Category{models.CategoryFuel}},
		{Phrase: "petrol", Labels: []models.Category{models.CategoryFuel}},
		{Phrase: "diesel", Labels: []models.Category{models.CategoryFuel}},
		{Phrase: "repair", Labels: []models.Category{models.CategoryMaintenance}},
		{Phrase: "service", Labels: []models.Category{models.CategoryMaintenance}},
		{Phrase: "subscription", Labels: []models.Category{models.CategorySubscriptions}},
		{Phrase: "investment", Labels: []models.Category{models.CategoryInvestments}},
		{Phrase: "stock", Labels: []models.Category{models.CategoryInvestments}},
		{Phrase: "bond", Labels: []models.Category{models.CategoryInvestments}},
		{Phrase: "donation", Labels: []models.Category{models.CategoryCharity}},
		{Phrase: "zakat", Labels: []models.Category{models.CategoryCharity}},
		{Phrase: "pet", Labels: []models.Category{models.CategoryPetCare}},
		{Phrase: "veterinary", Labels: []models.Category{models.CategoryPetCare}},
		{Phrase: "office", Labels: []models.Category{models.CategoryOfficeSupplies}},
		{Phrase: "stationery", Labels: []models.Category{models.CategoryStationery}},
		{Phrase: "clothes", Labels: []models.Category{models.CategoryClothing, models.CategoryShopping}},
		{Phrase: "fashion", Labels: []models.Category{models.CategoryClothing, models.CategoryShopping}},
		{Phrase: "gadget", Labels: []models.Category{models.CategoryElectronics, models.CategoryShopping}},
		{Phrase: "furniture", Labels: []models.Category{models.CategoryFurniture, models.CategoryShopping}},
		{Phrase: "beauty", Labels: []models.Category{models.CategoryBeauty, models.CategoryPersonalCare}},
		{Phrase: "gym", Labels: []models.Category{models.CategoryFitness}},
		{Phrase: "workout", Labels: []models.Category{models.CategoryFitness}},
		{Phrase: "misc", Labels: []models.Category{models.CategoryMiscellaneous}},
	}
}
