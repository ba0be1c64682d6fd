package orchestrator

import (
	"fmt"
	"strings"
	"time"

	"github.com/ranjeetkulkarni/ExpenseNinja/internal/ledger"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/models"
)

// FormatQueryResult renders a query outcome as one multi-line message: a
// header naming the total and the active filters, then one line per record
// in storage order.
func FormatQueryResult(result ledger.QueryResult, filter ledger.Filter) string {
	if len(result.Records) == 0 {
		return msgNoExpenses
	}

	lines := []string{queryHeader(result, filter)}
	for _, record := range result.Records {
		lines = append(lines, fmt.Sprintf("- *%s* – ₹%s on %s _(Categories: %s)_",
			record.Description,
			models.FormatAmount(record.Amount),
			record.FormattedDate(),
			models.JoinCategories(record.Categories),
		))
	}

	return strings.Join(lines, "\n")
}

func queryHeader(result ledger.QueryResult, filter ledger.Filter) string {
	total := models.FormatAmount(result.Total)

	switch {
	case filter.Category != "" && filter.Date == "":
		return fmt.Sprintf("*Your total %s expenditure %s is ₹%s, which includes:*",
			categoryTitle(filter.Category), filter.Category.Glyph(), total)
	case filter.Date != "" && filter.Category == "":
		return fmt.Sprintf("*Expenses on %s:*", displayDate(filter.Date))
	case filter.Date != "" && filter.Category != "":
		return fmt.Sprintf("*Your %s expenses %s on %s:*",
			categoryTitle(filter.Category), filter.Category.Glyph(), displayDate(filter.Date))
	default:
		return fmt.Sprintf("*Your Total Expenses are ₹%s:*", total)
	}
}

// categoryTitle renders a category label for headers: underscores become
// spaces and each word is capitalized ("online_food" -> "Online Food").
func categoryTitle(c models.Category) string {
	words := strings.Split(strings.ReplaceAll(string(c), "_", " "), " ")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

func displayDate(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(models.DisplayDateLayout)
}
