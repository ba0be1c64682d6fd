package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Category
		ok    bool
	}{
		{"exact", "food", CategoryFood, true},
		{"mixed case", "Online_Food", CategoryOnlineFood, true},
		{"whitespace", "  coffee ", CategoryCoffee, true},
		{"unknown", "spaceships", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCategory(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range AllCategories {
		assert.True(t, c.IsValid(), "category %q should be valid", c)
	}
	assert.False(t, Category("nonsense").IsValid())
}

func TestCategoryGlyph(t *testing.T) {
	assert.Equal(t, "🍽️", CategoryFood.Glyph())
	assert.Equal(t, "❓", CategoryOthers.Glyph())
	// Unknown categories render without a glyph
	assert.Equal(t, "", Category("nonsense").Glyph())
}

func TestSortCategories(t *testing.T) {
	set := map[Category]struct{}{
		CategoryTravel:    {},
		CategoryCoffee:    {},
		CategoryFood:      {},
		CategoryEducation: {},
	}

	got := SortCategories(set)
	assert.Equal(t, []Category{CategoryCoffee, CategoryEducation, CategoryFood, CategoryTravel}, got)
}

func TestSortCategoriesEmpty(t *testing.T) {
	assert.Empty(t, SortCategories(map[Category]struct{}{}))
}

func TestCategoryNames(t *testing.T) {
	names := CategoryNames()
	assert.Len(t, names, len(AllCategories))
	assert.Contains(t, names, "food")
	assert.Contains(t, names, "others")
}
