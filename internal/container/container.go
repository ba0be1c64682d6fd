// Package container provides dependency injection for the expenseninja
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"time"

	"github.com/ranjeetkulkarni/ExpenseNinja/internal/categorizer"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/config"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/ledger"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/logging"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/orchestrator"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/relay"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/store"
)

// Container holds all application dependencies and provides methods to access
// them. It is immutable after creation; fields are private and reached only
// through getters so nothing can rewire a dependency after startup.
type Container struct {
	logger       logging.Logger
	config       *config.Config
	store        *store.SQLiteStore
	gemini       *categorizer.GeminiClient
	categorizer  *categorizer.Categorizer
	ledger       *ledger.Ledger
	orchestrator *orchestrator.Orchestrator
	sender       *relay.TwilioSender
}

// NewContainer creates and wires all application dependencies.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	// Create AI client (if enabled)
	var gemini *categorizer.GeminiClient
	var classifier categorizer.ZeroShotClassifier
	var recognizer categorizer.EntityRecognizer
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		client, err := categorizer.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		gemini = client
		classifier = client
		if cfg.NER.Enabled {
			recognizer = client
		}
		logger.Info("AI classification enabled", logging.Field{Key: "model", Value: cfg.AI.Model})
	} else {
		logger.Info("AI classification disabled")
	}

	// Create categorizer with all dependencies
	cat := categorizer.NewCategorizer(classifier, recognizer, logger)
	cat.SetServiceTimeout(time.Duration(cfg.AI.TimeoutSeconds) * time.Second)
	if cfg.Categorizer.TriggersFile != "" {
		triggers, err := categorizer.LoadTriggers(cfg.Categorizer.TriggersFile)
		if err != nil {
			if gemini != nil {
				_ = gemini.Close()
			}
			return nil, fmt.Errorf("failed to load trigger mappings: %w", err)
		}
		cat.SetTriggers(triggers)
	}

	// Create store
	sqlStore, err := store.NewSQLiteStore(cfg.Store.Path, logger)
	if err != nil {
		if gemini != nil {
			_ = gemini.Close()
		}
		return nil, fmt.Errorf("failed to open expense store: %w", err)
	}

	// Create ledger and orchestrator
	led := ledger.NewLedger(sqlStore, cat, logger)
	orch := orchestrator.NewOrchestrator(led, logger)

	// Create outbound sender (if Twilio credentials are configured)
	var sender *relay.TwilioSender
	if cfg.Twilio.AccountSID != "" && cfg.Twilio.AuthToken != "" {
		sender = relay.NewTwilioSender(
			cfg.Twilio.AccountSID,
			cfg.Twilio.AuthToken,
			cfg.Twilio.From,
			30*time.Second,
			logger,
		)
	}

	return &Container{
		logger:       logger,
		config:       cfg,
		store:        sqlStore,
		gemini:       gemini,
		categorizer:  cat,
		ledger:       led,
		orchestrator: orch,
		sender:       sender,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the application configuration.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetCategorizer returns the wired categorizer.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

// GetLedger returns the wired expense ledger.
func (c *Container) GetLedger() *ledger.Ledger {
	return c.ledger
}

// GetOrchestrator returns the wired message orchestrator.
func (c *Container) GetOrchestrator() *orchestrator.Orchestrator {
	return c.orchestrator
}

// GetSender returns the outbound WhatsApp sender, or nil when Twilio
// credentials are not configured.
func (c *Container) GetSender() *relay.TwilioSender {
	return c.sender
}

// GetStore returns the backing expense store.
func (c *Container) GetStore() *store.SQLiteStore {
	return c.store
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	var firstErr error
	if c.gemini != nil {
		if err := c.gemini.Close(); err != nil {
			firstErr = err
		}
	}
	if c.store != nil {
		if err := c.store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
