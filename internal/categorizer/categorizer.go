// Package categorizer classifies free-text expense descriptions into one or
// more categories using four additive evidence tiers:
// 1. Override rules that resolve ambiguous overlapping keywords
// 2. A static trigger-phrase mapping table (substring, union-all)
// 3. An NER pass re-applying the mapping table to recognized entity spans
// 4. Zero-shot model fallback, only when the label set is still empty
// A terminal fallback guarantees the result is never empty.
package categorizer

import (
	"context"
	"strings"
	"time"

	"github.com/ranjeetkulkarni/ExpenseNinja/internal/logging"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/models"
)

// defaultServiceTimeout bounds every external service call so classification
// never hangs on a slow dependency.
const defaultServiceTimeout = 10 * time.Second

// Override-rule keyword groups. Coffee terms suppress the generic
// dining/food-only branches but not their own coffee+food branch.
var (
	diningKeywords = []string{"dinner", "lunch", "breakfast", "restaurant"}
	coffeeTerms    = []string{"coffee", "cappuccino", "filter coffee", "cold coffee"}
)

// Categorizer classifies expense descriptions. It is read-only after
// construction and safe for concurrent use.
type Categorizer struct {
	table      *MappingTable
	classifier ZeroShotClassifier
	recognizer EntityRecognizer
	timeout    time.Duration
	logger     logging.Logger
}

// NewCategorizer creates a Categorizer with the built-in trigger table.
// Either service may be nil; the corresponding tier is then skipped.
func NewCategorizer(classifier ZeroShotClassifier, recognizer EntityRecognizer, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Categorizer{
		table:      NewMappingTable(DefaultTriggers()),
		classifier: classifier,
		recognizer: recognizer,
		timeout:    defaultServiceTimeout,
		logger:     logger,
	}
}

// SetTriggers replaces the trigger table. Intended for startup wiring, e.g.
// after loading an override file.
func (c *Categorizer) SetTriggers(triggers []Trigger) {
	c.table = NewMappingTable(triggers)
}

// SetServiceTimeout bounds external classifier and recognizer calls.
func (c *Categorizer) SetServiceTimeout(d time.Duration) {
	if d > 0 {
		c.timeout = d
	}
}

// Classify returns the category labels for an expense description. The
// result is deduplicated, sorted and never empty. No tier failure is fatal:
// an unavailable or erroring external service degrades specificity but
// never crashes classification.
func (c *Categorizer) Classify(ctx context.Context, text string) []models.Category {
	textLower := strings.ToLower(text)
	labels := make(map[models.Category]struct{})

	c.applyOverrides(textLower, labels)

	fired := c.table.Match(textLower, labels)
	for _, t := range fired {
		c.logger.WithFields(
			logging.Field{Key: logging.FieldTier, Value: "mapping"},
			logging.Field{Key: logging.FieldTrigger, Value: t.Phrase},
		).Debug("Trigger phrase matched")
	}

	c.applyEntityPass(ctx, text, labels)

	if len(labels) == 0 {
		c.applyModelFallback(ctx, text, labels)
	}

	if len(labels) == 0 {
		labels[models.CategoryOthers] = struct{}{}
	}

	return models.SortCategories(labels)
}

// applyOverrides runs the highest-precedence heuristics that disambiguate
// overlapping keywords before the raw substring pass.
func (c *Categorizer) applyOverrides(textLower string, labels map[models.Category]struct{}) {
	hasCoffee := containsAny(textLower, coffeeTerms)

	// "chai" without coffee terms is plain food, not coffee.
	if strings.Contains(textLower, "chai") && !strings.Contains(textLower, "coffee") {
		c.logger.WithField(logging.FieldTier, "override").Debug("Keyword override: 'chai' detected without 'coffee'")
		labels[models.CategoryFood] = struct{}{}
	}

	if containsAny(textLower, diningKeywords) && !hasCoffee {
		c.logger.WithField(logging.FieldTier, "override").Debug("Keyword override: dining keywords detected")
		labels[models.CategoryDining] = struct{}{}
		labels[models.CategoryFood] = struct{}{}
	}

	if hasCoffee {
		c.logger.WithField(logging.FieldTier, "override").Debug("Keyword override: coffee terms detected")
		labels[models.CategoryCoffee] = struct{}{}
		labels[models.CategoryFood] = struct{}{}
	}
}

// applyEntityPass re-applies the trigger table to entity spans extracted by
// the recognizer, recovering matches the raw substring pass missed due to
// tokenization or casing. Skipped silently when the service is absent or
// errors.
func (c *Categorizer) applyEntityPass(ctx context.Context, text string, labels map[models.Category]struct{}) {
	if c.recognizer == nil {
		return
	}

	nerCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	spans, err := c.recognizer.Entities(nerCtx, text)
	if err != nil {
		c.logger.WithError(err).WithField(logging.FieldTier, "ner").Warn("Entity recognition failed, skipping tier")
		return
	}

	for _, span := range spans {
		fired := c.table.Match(strings.ToLower(span), labels)
		for _, t := range fired {
			c.logger.WithFields(
				logging.Field{Key: logging.FieldTier, Value: "ner"},
				logging.Field{Key: logging.FieldTrigger, Value: t.Phrase},
			).Debug("Entity span matched trigger phrase")
		}
	}
}

// applyModelFallback asks the zero-shot classifier for its top-ranked label.
// Only called when the evidence tiers produced nothing. Skipped silently
// when the service is absent or errors.
func (c *Categorizer) applyModelFallback(ctx context.Context, text string, labels map[models.Category]struct{}) {
	if c.classifier == nil {
		return
	}

	modelCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ranked, err := c.classifier.Classify(modelCtx, text, models.CategoryNames())
	if err != nil {
		c.logger.WithError(err).WithField(logging.FieldTier, "model").Warn("Zero-shot classification failed, skipping tier")
		return
	}
	if len(ranked) == 0 {
		return
	}

	top, ok := models.ParseCategory(ranked[0])
	if !ok {
		c.logger.WithFields(
			logging.Field{Key: logging.FieldTier, Value: "model"},
			logging.Field{Key: logging.FieldCategory, Value: ranked[0]},
		).Warn("Zero-shot classifier returned unknown label, ignoring")
		return
	}

	c.logger.WithFields(
		logging.Field{Key: logging.FieldTier, Value: "model"},
		logging.Field{Key: logging.FieldCategory, Value: top},
	).Debug("Zero-shot fallback returned label")
	labels[top] = struct{}{}
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
