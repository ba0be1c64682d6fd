package logging

// MockLogger is a Logger implementation for tests. It captures log entries
// for later inspection instead of writing them anywhere.
type MockLogger struct {
	Entries       []LogEntry
	pendingError  error
	pendingFields []Field
}

// LogEntry is a single captured log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	allFields := append(append([]Field{}, m.pendingFields...), fields...)
	m.Entries = append(m.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   m.pendingError,
	})
}

// Debug captures a debug-level entry.
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }

// Info captures an info-level entry.
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("INFO", msg, fields) }

// Warn captures a warn-level entry.
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("WARN", msg, fields) }

// Error captures an error-level entry.
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// Fatal captures a fatal-level entry. The mock does not exit.
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("FATAL", msg, fields) }

// WithError returns a logger that attaches err to subsequent entries.
// Entries still land on the receiver so tests can inspect them.
func (m *MockLogger) WithError(err error) Logger {
	return &childLogger{parent: m, err: err, fields: m.pendingFields}
}

// WithField returns a logger that attaches one field to subsequent entries.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a logger that attaches fields to subsequent entries.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	return &childLogger{
		parent: m,
		err:    m.pendingError,
		fields: append(append([]Field{}, m.pendingFields...), fields...),
	}
}

// HasEntry checks whether an entry with the given level and message exists.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, entry := range m.Entries {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}

// EntriesByLevel returns all captured entries of one level.
func (m *MockLogger) EntriesByLevel(level string) []LogEntry {
	var entries []LogEntry
	for _, entry := range m.Entries {
		if entry.Level == level {
			entries = append(entries, entry)
		}
	}
	return entries
}

// childLogger forwards entries to its root MockLogger with extra context
// attached, so derived loggers share one entry list.
type childLogger struct {
	parent *MockLogger
	err    error
	fields []Field
}

func (c *childLogger) record(level, msg string, fields []Field) {
	allFields := append(append([]Field{}, c.fields...), fields...)
	c.parent.Entries = append(c.parent.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   c.err,
	})
}

func (c *childLogger) Debug(msg string, fields ...Field) { c.record("DEBUG", msg, fields) }
func (c *childLogger) Info(msg string, fields ...Field)  { c.record("INFO", msg, fields) }
func (c *childLogger) Warn(msg string, fields ...Field)  { c.record("WARN", msg, fields) }
func (c *childLogger) Error(msg string, fields ...Field) { c.record("ERROR", msg, fields) }
func (c *childLogger) Fatal(msg string, fields ...Field) { c.record("FATAL", msg, fields) }

func (c *childLogger) WithError(err error) Logger {
	return &childLogger{parent: c.parent, err: err, fields: c.fields}
}

func (c *childLogger) WithField(key string, value interface{}) Logger {
	return c.WithFields(Field{Key: key, Value: value})
}

func (c *childLogger) WithFields(fields ...Field) Logger {
	return &childLogger{
		parent: c.parent,
		err:    c.err,
		fields: append(append([]Field{}, c.fields...), fields...),
	}
}
