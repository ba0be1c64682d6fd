// Package orchestrator routes inbound dialogue turns to the ledger. It
// decides whether a message is an add-expense or query-expense turn,
// extracts the amount and date hints, derives query filters from free text
// and formats the responses sent back through the relay.
package orchestrator

import (
	"context"
	"time"

	"github.com/ranjeetkulkarni/ExpenseNinja/internal/ledger"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/logging"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/models"

	"github.com/shopspring/decimal"
)

// User-facing messages. Raw internal errors never reach the user; every
// failure maps to one of these fixed strings.
const (
	msgRecorded       = "✅ *Expense Recorded Successfully!*"
	msgAmountNotFound = "❗ I couldn't detect an expense amount. Please include one in your message."
	msgRecordFailed   = "❗ There was an error recording your expense."
	msgQueryFailed    = "❗ There was an error retrieving your expenses."
	msgNoExpenses     = "❗ *No expenses found for the given criteria.*"
)

// Inbound is one message delivered by the relay.
type Inbound struct {
	Sender string
	Text   string
}

// Outbound is one message to deliver back through the relay.
type Outbound struct {
	Recipient string
	Text      string
}

// Ledger is the expense core the orchestrator drives.
type Ledger interface {
	Record(ctx context.Context, description string, amount decimal.Decimal, date string) (*models.ExpenseRecord, error)
	Query(ctx context.Context, filter ledger.Filter) (ledger.QueryResult, error)
}

// Orchestrator handles one dialogue turn end-to-end.
type Orchestrator struct {
	ledger Ledger
	logger logging.Logger
	now    func() time.Time
}

// NewOrchestrator creates an Orchestrator over the given ledger.
func NewOrchestrator(l Ledger, logger logging.Logger) *Orchestrator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Orchestrator{
		ledger: l,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock overrides the time source. Tests use this to pin "today".
func (o *Orchestrator) SetClock(now func() time.Time) {
	if now != nil {
		o.now = now
	}
}

// Handle processes one inbound message and returns the responses to
// deliver. It never fails: ledger and extraction errors become fixed
// user-facing strings.
// A message carrying an explicit amount is always an add-expense turn;
// without one, query cues decide. A message with neither is rejected
// upstream of the ledger with the amount-not-found response.
func (o *Orchestrator) Handle(ctx context.Context, in Inbound) []Outbound {
	log := o.logger.WithField(logging.FieldSender, in.Sender)

	amount, hasAmount := ExtractAmount(in.Text)
	if !hasAmount && isQueryIntent(in.Text) {
		log.WithField(logging.FieldIntent, "query_expense").Info("Handling dialogue turn")
		return o.handleQuery(ctx, in, log)
	}

	log.WithField(logging.FieldIntent, "add_expense").Info("Handling dialogue turn")
	if !hasAmount {
		log.Warn("No amount found in add-expense message")
		return []Outbound{{Recipient: in.Sender, Text: msgAmountNotFound}}
	}
	return o.handleAdd(ctx, in, amount, log)
}

func (o *Orchestrator) handleAdd(ctx context.Context, in Inbound, amount decimal.Decimal, log logging.Logger) []Outbound {
	date := ResolveDate(in.Text, o.now())

	record, err := o.ledger.Record(ctx, in.Text, amount, date)
	if err != nil {
		log.WithError(err).Error("Failed to record expense")
		return []Outbound{{Recipient: in.Sender, Text: msgRecordFailed}}
	}

	log.WithFields(
		logging.Field{Key: logging.FieldRecordID, Value: record.ID},
		logging.Field{Key: logging.FieldAmount, Value: amount.String()},
		logging.Field{Key: logging.FieldDate, Value: date},
	).Info("Expense added")

	return []Outbound{{Recipient: in.Sender, Text: msgRecorded}}
}

func (o *Orchestrator) handleQuery(ctx context.Context, in Inbound, log logging.Logger) []Outbound {
	filter := DeriveFilter(in.Text, o.now())

	log.WithFields(
		logging.Field{Key: logging.FieldCategory, Value: string(filter.Category)},
		logging.Field{Key: logging.FieldDate, Value: filter.Date},
	).Debug("Derived query filter")

	result, err := o.ledger.Query(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to query expenses")
		return []Outbound{{Recipient: in.Sender, Text: msgQueryFailed}}
	}

	return []Outbound{{Recipient: in.Sender, Text: FormatQueryResult(result, filter)}}
}
