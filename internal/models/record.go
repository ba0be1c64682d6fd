package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the storage format for expense dates (calendar date only,
// not the recording timestamp).
const DateLayout = "2006-01-02"

// DisplayDateLayout is the format used when rendering dates back to users.
const DisplayDateLayout = "Jan 02, 2006"

// ExpenseRecord is one persisted expense. Records are created through the
// ledger, never mutated afterwards and never deleted.
type ExpenseRecord struct {
	// ID is assigned by the store on insert and is unique per record.
	ID int64 `csv:"id"`

	// Description is the original free text of the expense message.
	Description string `csv:"description"`

	// Amount is the positive expense magnitude. Currency-agnostic.
	Amount decimal.Decimal `csv:"amount"`

	// Categories is the sorted, deduplicated label set for the expense.
	// Never empty: the categorizer falls back to "others".
	Categories []Category `csv:"-"`

	// CategoryList mirrors Categories as a comma-joined string for CSV
	// export. Populated by SyncCategoryList.
	CategoryList string `csv:"categories"`

	// Date is the calendar date the expense is attributed to, in
	// DateLayout format.
	Date string `csv:"date"`

	// RecordedAt is the insertion timestamp assigned by the store.
	RecordedAt time.Time `csv:"recorded_at"`
}

// HasCategory reports whether the record carries the given category label.
func (r *ExpenseRecord) HasCategory(c Category) bool {
	for _, existing := range r.Categories {
		if existing == c {
			return true
		}
	}
	return false
}

// SyncCategoryList refreshes the flattened CategoryList field from
// Categories. Called before CSV export.
func (r *ExpenseRecord) SyncCategoryList() {
	r.CategoryList = JoinCategories(r.Categories)
}

// FormattedDate renders the expense date for user-facing messages. Falls
// back to the raw stored value if it does not parse.
func (r *ExpenseRecord) FormattedDate() string {
	t, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return r.Date
	}
	return t.Format(DisplayDateLayout)
}

// JoinCategories flattens a category list to the comma-separated form used
// by the store and in user-facing messages.
func JoinCategories(categories []Category) string {
	labels := make([]string, len(categories))
	for i, c := range categories {
		labels[i] = string(c)
	}
	return strings.Join(labels, ", ")
}

// SplitCategories parses the comma-separated form written by JoinCategories.
// Unknown labels are dropped rather than propagated.
func SplitCategories(joined string) []Category {
	if strings.TrimSpace(joined) == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	categories := make([]Category, 0, len(parts))
	for _, part := range parts {
		if c, ok := ParseCategory(strings.TrimSpace(part)); ok {
			categories = append(categories, c)
		}
	}
	return categories
}
