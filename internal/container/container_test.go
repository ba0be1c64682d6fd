package container

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranjeetkulkarni/ExpenseNinja/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Log.Level = "error"
	cfg.Log.Format = "text"
	cfg.Server.Addr = ":0"
	cfg.Store.Path = filepath.Join(t.TempDir(), "expenses.db")
	cfg.AI.Enabled = false
	cfg.AI.TimeoutSeconds = 10
	return cfg
}

func TestNewContainer_NilConfig(t *testing.T) {
	c, err := NewContainer(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "configuration cannot be nil")
}

func TestNewContainer_WiresDependencies(t *testing.T) {
	cfg := testConfig(t)

	c, err := NewContainer(context.Background(), cfg)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, c.Close())
	}()

	assert.NotNil(t, c.GetLogger())
	assert.Same(t, cfg, c.GetConfig())
	assert.NotNil(t, c.GetCategorizer())
	assert.NotNil(t, c.GetLedger())
	assert.NotNil(t, c.GetOrchestrator())
	assert.NotNil(t, c.GetStore())

	// No Twilio credentials means no outbound sender
	assert.Nil(t, c.GetSender())
}

func TestNewContainer_SenderRequiresCredentials(t *testing.T) {
	cfg := testConfig(t)
	cfg.Twilio.AccountSID = "AC123"
	cfg.Twilio.AuthToken = "secret"
	cfg.Twilio.From = "whatsapp:+14155238886"

	c, err := NewContainer(context.Background(), cfg)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, c.Close())
	}()

	assert.NotNil(t, c.GetSender())
}

func TestNewContainer_BadTriggersFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Categorizer.TriggersFile = filepath.Join(t.TempDir(), "missing.yaml")

	c, err := NewContainer(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "failed to load trigger mappings")
}
