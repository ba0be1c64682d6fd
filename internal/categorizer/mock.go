package categorizer

import "context"

// MockClassifier is a ZeroShotClassifier for tests. It returns the
// configured ranking or error and records the last text it saw.
type MockClassifier struct {
	Ranked   []string
	Err      error
	Calls    int
	LastText string
}

// Classify returns the configured ranking or error.
func (m *MockClassifier) Classify(_ context.Context, text string, _ []string) ([]string, error) {
	m.Calls++
	m.LastText = text
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Ranked, nil
}

// MockRecognizer is an EntityRecognizer for tests.
type MockRecognizer struct {
	Spans []string
	Err   error
	Calls int
}

// Entities returns the configured spans or error.
func (m *MockRecognizer) Entities(_ context.Context, _ string) ([]string, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Spans, nil
}
