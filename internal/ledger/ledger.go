// Package ledger owns persisted expense records. It exposes Record, which
// classifies and durably stores one expense, and Query, which returns the
// matching records plus their total for an optional category/date filter.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ranjeetkulkarni/ExpenseNinja/internal/logging"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/models"

	"github.com/shopspring/decimal"
)

// ErrStorage indicates a persistence-layer failure on insert or query. The
// operation leaves no partial state behind.
var ErrStorage = errors.New("storage failure")

// Filter narrows a query's matching record set. Zero values mean "no
// filter" for that dimension; a record matches when every set dimension
// matches.
type Filter struct {
	// Category matches records whose label set contains it.
	Category models.Category
	// Date matches records attributed to exactly this calendar date
	// (models.DateLayout).
	Date string
}

// IsZero reports whether the filter matches all records.
func (f Filter) IsZero() bool {
	return f.Category == "" && f.Date == ""
}

// QueryResult is the outcome of a ledger query: the matching records in
// storage insertion order and the sum of their amounts.
type QueryResult struct {
	Records []models.ExpenseRecord
	Total   decimal.Decimal
}

// Classifier produces the category label set for an expense description.
type Classifier interface {
	Classify(ctx context.Context, text string) []models.Category
}

// Store is the persistence boundary for expense records. Insert assigns the
// record's ID and RecordedAt; Scan returns records in insertion order.
type Store interface {
	Insert(ctx context.Context, record *models.ExpenseRecord) error
	Scan(ctx context.Context, filter Filter) ([]models.ExpenseRecord, error)
	Close() error
}

// Ledger coordinates classification and persistence of expenses.
type Ledger struct {
	store      Store
	classifier Classifier
	logger     logging.Logger
}

// NewLedger creates a Ledger over the given store and classifier.
func NewLedger(store Store, classifier Classifier, logger logging.Logger) *Ledger {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Ledger{
		store:      store,
		classifier: classifier,
		logger:     logger,
	}
}

// Record classifies the description, persists a new expense record and
// returns it with its store-assigned ID and timestamp. The write is atomic:
// on storage failure nothing is committed and ErrStorage is returned.
func (l *Ledger) Record(ctx context.Context, description string, amount decimal.Decimal, date string) (*models.ExpenseRecord, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description must not be empty")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive, got %s", amount)
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid expense date %q: %w", date, err)
	}

	record := &models.ExpenseRecord{
		Description: description,
		Amount:      amount,
		Categories:  l.classifier.Classify(ctx, description),
		Date:        date,
	}

	if err := l.store.Insert(ctx, record); err != nil {
		l.logger.WithError(err).Error("Failed to persist expense record")
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	l.logger.WithFields(
		logging.Field{Key: logging.FieldRecordID, Value: record.ID},
		logging.Field{Key: logging.FieldAmount, Value: amount.String()},
		logging.Field{Key: logging.FieldCategory, Value: models.JoinCategories(record.Categories)},
		logging.Field{Key: logging.FieldDate, Value: date},
	).Info("Expense recorded")

	return record, nil
}

// Query returns the records matching the filter, in storage insertion
// order, together with the sum of their amounts. An empty match set is a
// normal result with a zero total.
func (l *Ledger) Query(ctx context.Context, filter Filter) (QueryResult, error) {
	records, err := l.store.Scan(ctx, filter)
	if err != nil {
		l.logger.WithError(err).Error("Failed to scan expense records")
		return QueryResult{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.Amount)
	}

	l.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(records)},
		logging.Field{Key: logging.FieldCategory, Value: string(filter.Category)},
		logging.Field{Key: logging.FieldDate, Value: filter.Date},
	).Debug("Expense query served")

	return QueryResult{Records: records, Total: total}, nil
}
