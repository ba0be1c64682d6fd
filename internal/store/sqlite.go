// Package store provides the persistence layer for expense records. The
// production implementation is SQLite; MemoryStore backs tests.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ranjeetkulkarni/ExpenseNinja/internal/ledger"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/logging"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/models"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS expenses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	description TEXT NOT NULL,
	amount TEXT NOT NULL,
	categories TEXT NOT NULL,
	date TEXT NOT NULL,
	recorded_at TEXT NOT NULL
);
`

// SQLiteStore persists expense records in a SQLite database. Records are
// append-only: the store exposes no update or delete.
type SQLiteStore struct {
	db     *sql.DB
	logger logging.Logger
}

// NewSQLiteStore opens (creating if necessary) the database at dbPath and
// ensures the expenses table exists.
func NewSQLiteStore(dbPath string, logger logging.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create expenses table: %w", err)
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Insert appends one expense record as a single atomic statement and fills
// in the store-assigned ID and RecordedAt.
func (s *SQLiteStore) Insert(ctx context.Context, record *models.ExpenseRecord) error {
	recordedAt := time.Now().UTC()

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO expenses (description, amount, categories, date, recorded_at) VALUES (?, ?, ?, ?, ?)",
		record.Description,
		record.Amount.String(),
		models.JoinCategories(record.Categories),
		record.Date,
		recordedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("read inserted expense id: %w", err)
	}

	record.ID = id
	record.RecordedAt = recordedAt

	s.logger.WithFields(
		logging.Field{Key: logging.FieldRecordID, Value: id},
		logging.Field{Key: logging.FieldAmount, Value: record.Amount.String()},
	).Debug("Expense saved to SQLite")

	return nil
}

// Scan returns the records matching the filter in insertion order. The date
// predicate runs in SQL; category membership is checked after decoding so
// the match stays exact per label (a stored "online_food" never matches a
// "food" filter).
func (s *SQLiteStore) Scan(ctx context.Context, filter ledger.Filter) ([]models.ExpenseRecord, error) {
	query := "SELECT id, description, amount, categories, date, recorded_at FROM expenses"
	var args []interface{}
	if filter.Date != "" {
		query += " WHERE date = ?"
		args = append(args, filter.Date)
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("scan expenses: %w", err)
	}
	defer rows.Close()

	var records []models.ExpenseRecord
	for rows.Next() {
		record, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		if filter.Category != "" && !record.HasCategory(filter.Category) {
			continue
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	return records, nil
}

func scanRow(rows *sql.Rows) (models.ExpenseRecord, error) {
	var (
		record     models.ExpenseRecord
		amount     string
		categories string
		recordedAt string
	)

	if err := rows.Scan(&record.ID, &record.Description, &amount, &categories, &record.Date, &recordedAt); err != nil {
		return models.ExpenseRecord{}, fmt.Errorf("scan expense row: %w", err)
	}

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return models.ExpenseRecord{}, fmt.Errorf("decode stored amount %q: %w", amount, err)
	}
	record.Amount = parsedAmount
	record.Categories = models.SplitCategories(categories)

	if ts, err := time.Parse(time.RFC3339Nano, recordedAt); err == nil {
		record.RecordedAt = ts
	}

	return record, nil
}
