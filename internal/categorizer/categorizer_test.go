package categorizer

import (
	"context"
	"errors"
	"testing"

	"github.com/ranjeetkulkarni/ExpenseNinja/internal/logging"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCategorizer(classifier ZeroShotClassifier, recognizer EntityRecognizer) *Categorizer {
	return NewCategorizer(classifier, recognizer, &logging.MockLogger{})
}

func TestClassifyOverrides(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []models.Category
		excluded []models.Category
	}{
		{
			name:     "coffee terms add coffee and food",
			text:     "cappuccino at starbucks",
			expected: []models.Category{models.CategoryCoffee, models.CategoryFood},
		},
		{
			name:     "dining without coffee adds dining and food",
			text:     "dinner at restaurant",
			expected: []models.Category{models.CategoryDining, models.CategoryFood},
			excluded: []models.Category{models.CategoryCoffee},
		},
		{
			name:     "chai without coffee is food only",
			text:     "chai with friends",
			expected: []models.Category{models.CategoryFood},
			excluded: []models.Category{models.CategoryCoffee},
		},
		{
			name:     "chai latte with coffee term stays coffee",
			text:     "chai and cold coffee",
			expected: []models.Category{models.CategoryCoffee, models.CategoryFood},
		},
		{
			name:     "breakfast is dining",
			text:     "breakfast before work",
			expected: []models.Category{models.CategoryDining, models.CategoryFood},
		},
	}

	c := newTestCategorizer(nil, nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Classify(context.Background(), tc.text)
			for _, want := range tc.expected {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tc.excluded {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestClassifyMappingTable(t *testing.T) {
	c := newTestCategorizer(nil, nil)

	got := c.Classify(context.Background(), "Uber to airport 800")
	assert.Contains(t, got, models.CategoryTravel)
	assert.Contains(t, got, models.CategoryTransportation)

	// Multiple triggers union their labels.
	got = c.Classify(context.Background(), "netflix and swiggy night")
	assert.Contains(t, got, models.CategoryEntertainment)
	assert.Contains(t, got, models.CategorySubscriptions)
	assert.Contains(t, got, models.CategoryOnlineFood)
	assert.Contains(t, got, models.CategoryFood)
}

func TestClassifyNeverEmptyAndValid(t *testing.T) {
	c := newTestCategorizer(nil, nil)

	for _, text := range []string{"asdkjhasd", "", "Paid 250 for lunch at restaurant yesterday", "zakat"} {
		got := c.Classify(context.Background(), text)
		require.NotEmpty(t, got, "classify(%q) returned empty set", text)
		for _, label := range got {
			assert.True(t, label.IsValid(), "classify(%q) returned unknown label %q", text, label)
		}
	}
}

func TestClassifyTerminalFallback(t *testing.T) {
	c := newTestCategorizer(nil, nil)
	got := c.Classify(context.Background(), "asdkjhasd")
	assert.Equal(t, []models.Category{models.CategoryOthers}, got)
}

func TestClassifyIdempotent(t *testing.T) {
	c := newTestCategorizer(nil, nil)
	first := c.Classify(context.Background(), "lunch at restaurant and taxi home")
	second := c.Classify(context.Background(), "lunch at restaurant and taxi home")
	assert.Equal(t, first, second)
}

func TestClassifyEntityPass(t *testing.T) {
	tests := []struct {
		name       string
		recognizer *MockRecognizer
		expected   []models.Category
	}{
		{
			name:       "entity span recovers mapping hit",
			recognizer: &MockRecognizer{Spans: []string{"BigBasket"}},
			expected:   []models.Category{models.CategoryGroceries},
		},
		{
			name:       "recognizer failure degrades to terminal fallback",
			recognizer: &MockRecognizer{Err: errors.New("service unavailable")},
			expected:   []models.Category{models.CategoryOthers},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCategorizer(nil, tc.recognizer)
			// Text with no raw-substring match of its own.
			got := c.Classify(context.Background(), "weekly haul from bgbskt")
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, 1, tc.recognizer.Calls)
		})
	}
}

func TestClassifyModelFallback(t *testing.T) {
	t.Run("invoked only when tiers produced nothing", func(t *testing.T) {
		classifier := &MockClassifier{Ranked: []string{"entertainment", "shopping"}}
		c := newTestCategorizer(classifier, nil)

		got := c.Classify(context.Background(), "movie night tickets")
		assert.Equal(t, []models.Category{models.CategoryEntertainment}, got)
		assert.Equal(t, 1, classifier.Calls)

		// A mapping hit suppresses the model tier entirely.
		got = c.Classify(context.Background(), "uber ride")
		assert.Contains(t, got, models.CategoryTravel)
		assert.Equal(t, 1, classifier.Calls)
	})

	t.Run("model failure degrades to terminal fallback", func(t *testing.T) {
		classifier := &MockClassifier{Err: errors.New("timeout")}
		c := newTestCategorizer(classifier, nil)

		got := c.Classify(context.Background(), "movie night tickets")
		assert.Equal(t, []models.Category{models.CategoryOthers}, got)
	})

	t.Run("unknown model label is ignored", func(t *testing.T) {
		classifier := &MockClassifier{Ranked: []string{"not-a-category"}}
		c := newTestCategorizer(classifier, nil)

		got := c.Classify(context.Background(), "movie night tickets")
		assert.Equal(t, []models.Category{models.CategoryOthers}, got)
	})
}

func TestClassifySortedOutput(t *testing.T) {
	c := newTestCategorizer(nil, nil)
	got := c.Classify(context.Background(), "uber to the restaurant for dinner")
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, string(got[i-1]), string(got[i]))
	}
}

func TestMappingTableCompile(t *testing.T) {
	table := NewMappingTable([]Trigger{
		{Phrase: "  UBER  ", Labels: []models.Category{models.CategoryTravel}},
		{Phrase: "", Labels: []models.Category{models.CategoryFood}},
		{Phrase: "chai", Labels: nil},
	})
	require.Equal(t, 1, table.Len())

	labels := make(map[models.Category]struct{})
	fired := table.Match("uber to town", labels)
	require.Len(t, fired, 1)
	assert.Equal(t, "uber", fired[0].Phrase)
	assert.Contains(t, labels, models.CategoryTravel)
}
