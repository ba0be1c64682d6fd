package categorizer

import "context"

// ZeroShotClassifier is the boundary to an external text classification
// service. Implementations rank the candidate labels by confidence,
// best first. A nil ZeroShotClassifier means the service is absent, which
// callers treat as a normal branch rather than an error.
type ZeroShotClassifier interface {
	Classify(ctx context.Context, text string, candidates []string) ([]string, error)
}

// EntityRecognizer is the boundary to an external named-entity recognition
// service. Implementations return the raw span text of each recognized
// entity. A nil EntityRecognizer means the service is absent.
type EntityRecognizer interface {
	Entities(ctx context.Context, text string) ([]string, error)
}
