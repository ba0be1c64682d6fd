package logging

// Standardized field names for structured logging. Keeping the key set
// fixed makes the log output easy to filter by sender, tier or record.
const (
	FieldSender    = "sender"
	FieldIntent    = "intent"
	FieldTier      = "tier"
	FieldCategory  = "category"
	FieldTrigger   = "trigger"
	FieldRecordID  = "record_id"
	FieldAmount    = "amount"
	FieldDate      = "date"
	FieldCount     = "count"
	FieldOperation = "operation"
	FieldError     = "error"
)
