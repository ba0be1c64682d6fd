package orchestrator

import (
	"regexp"
	"strings"
	"time"

	"github.com/ranjeetkulkarni/ExpenseNinja/internal/models"

	"github.com/shopspring/decimal"
)

// amountPattern recovers a numeric amount from free text, tolerating an
// optional leading currency marker and up to two decimal places.
var amountPattern = regexp.MustCompile(`[₹$]?(\d+(?:\.\d{1,2})?)`)

// queryCues mark a message as a query-expense turn. Anything else is
// treated as an add-expense attempt.
var queryCues = []string{
	"how much",
	"how many",
	"what did i spend",
	"expenses",
	"expenditure",
	"spent",
	"show",
	"list",
	"summary",
	"total",
}

// ExtractAmount recovers the expense amount from a message. Returns false
// when no numeric value is present; the ledger is never reached in that
// case.
func ExtractAmount(text string) (decimal.Decimal, bool) {
	match := amountPattern.FindStringSubmatch(text)
	if match == nil {
		return decimal.Zero, false
	}
	amount, err := models.ParseAmount(match[1])
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}
	return amount, true
}

// ResolveDate attributes an expense to a calendar date: "yesterday" in the
// message shifts it back one day, everything else lands on today.
func ResolveDate(text string, now time.Time) string {
	if strings.Contains(strings.ToLower(text), "yesterday") {
		return now.AddDate(0, 0, -1).Format(models.DateLayout)
	}
	return now.Format(models.DateLayout)
}

// isQueryIntent decides the dialogue intent for a message.
func isQueryIntent(text string) bool {
	lower := strings.ToLower(text)
	for _, cue := range queryCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}
