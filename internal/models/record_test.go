package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCategory(t *testing.T) {
	record := &ExpenseRecord{
		Categories: []Category{CategoryDining, CategoryFood},
	}

	assert.True(t, record.HasCategory(CategoryFood))
	assert.True(t, record.HasCategory(CategoryDining))
	assert.False(t, record.HasCategory(CategoryCoffee))
}

func TestJoinSplitCategoriesRoundTrip(t *testing.T) {
	categories := []Category{CategoryCoffee, CategoryFood, CategoryOnlineFood}

	joined := JoinCategories(categories)
	assert.Equal(t, "coffee, food, online_food", joined)

	back := SplitCategories(joined)
	assert.Equal(t, categories, back)
}

func TestSplitCategoriesDropsUnknownLabels(t *testing.T) {
	got := SplitCategories("food, spaceships, travel")
	assert.Equal(t, []Category{CategoryFood, CategoryTravel}, got)
}

func TestSplitCategoriesEmpty(t *testing.T) {
	assert.Nil(t, SplitCategories(""))
	assert.Nil(t, SplitCategories("   "))
}

func TestSyncCategoryList(t *testing.T) {
	record := &ExpenseRecord{
		Categories: []Category{CategoryTravel, CategoryTransportation},
	}

	record.SyncCategoryList()
	assert.Equal(t, "travel, transportation", record.CategoryList)
}

func TestFormattedDate(t *testing.T) {
	record := &ExpenseRecord{Date: "2026-08-29"}
	assert.Equal(t, "Aug 29, 2026", record.FormattedDate())

	// Unparseable dates fall through verbatim
	record.Date = "not-a-date"
	assert.Equal(t, "not-a-date", record.FormattedDate())
}

func TestRecordDateLayouts(t *testing.T) {
	day := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-30", day.Format(DateLayout))
	assert.Equal(t, "Aug 30, 2026", day.Format(DisplayDateLayout))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"plain integer", "250", "250", true},
		{"decimal", "99.50", "99.5", true},
		{"rupee prefix", "₹1200", "1200", true},
		{"dollar prefix", "$15.75", "15.75", true},
		{"padded", "  300 ", "300", true},
		{"empty", "", "", false},
		{"only currency marker", "₹", "", false},
		{"words", "lots", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if !tt.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatAmount(got))
		})
	}
}

func TestFormatAmountTrimsZeros(t *testing.T) {
	assert.Equal(t, "250", FormatAmount(decimal.NewFromInt(250)))
	assert.Equal(t, "99.5", FormatAmount(decimal.RequireFromString("99.50")))
}
