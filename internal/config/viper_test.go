package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTestEnvVars(t *testing.T) {
	t.Helper()

	vars := []string{
		"EXPENSENINJA_LOG_LEVEL",
		"EXPENSENINJA_LOG_FORMAT",
		"EXPENSENINJA_SERVER_ADDR",
		"EXPENSENINJA_STORE_PATH",
		"EXPENSENINJA_AI_ENABLED",
		"EXPENSENINJA_AI_MODEL",
		"EXPENSENINJA_AI_TIMEOUT_SECONDS",
		"EXPENSENINJA_NER_ENABLED",
		"EXPENSENINJA_CATEGORIZER_TRIGGERS_FILE",
		"GEMINI_API_KEY",
		"TWILIO_ACCOUNT_SID",
		"TWILIO_AUTH_TOKEN",
		"TWILIO_WHATSAPP_NUMBER",
	}
	for _, v := range vars {
		require.NoError(t, os.Unsetenv(v))
	}
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ":8080", config.Server.Addr)
	assert.Equal(t, "expenses.db", config.Store.Path)
	assert.False(t, config.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", config.AI.Model)
	assert.Equal(t, 10, config.AI.TimeoutSeconds)
	assert.False(t, config.NER.Enabled)
	assert.Equal(t, "", config.Categorizer.TriggersFile)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	testEnvVars := map[string]string{
		"EXPENSENINJA_LOG_LEVEL":          "debug",
		"EXPENSENINJA_LOG_FORMAT":         "json",
		"EXPENSENINJA_SERVER_ADDR":        ":9090",
		"EXPENSENINJA_STORE_PATH":         "/tmp/ledger.db",
		"EXPENSENINJA_AI_ENABLED":         "true",
		"EXPENSENINJA_AI_MODEL":           "gemini-1.5-pro",
		"EXPENSENINJA_AI_TIMEOUT_SECONDS": "20",
		"EXPENSENINJA_NER_ENABLED":        "true",
		"GEMINI_API_KEY":                  "test-api-key",
		"TWILIO_ACCOUNT_SID":              "AC123",
		"TWILIO_AUTH_TOKEN":               "secret",
		"TWILIO_WHATSAPP_NUMBER":          "whatsapp:+14155238886",
	}

	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ":9090", config.Server.Addr)
	assert.Equal(t, "/tmp/ledger.db", config.Store.Path)
	assert.True(t, config.AI.Enabled)
	assert.Equal(t, "gemini-1.5-pro", config.AI.Model)
	assert.Equal(t, 20, config.AI.TimeoutSeconds)
	assert.True(t, config.NER.Enabled)
	assert.Equal(t, "test-api-key", config.AI.APIKey)
	assert.Equal(t, "AC123", config.Twilio.AccountSID)
	assert.Equal(t, "secret", config.Twilio.AuthToken)
	assert.Equal(t, "whatsapp:+14155238886", config.Twilio.From)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configContent := `
log:
  level: "warn"
  format: "json"
server:
  addr: ":7000"
store:
  path: "bot.db"
ai:
  enabled: false
  model: "gemini-1.0-pro"
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	// Change to temp directory so config file is found
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		err := os.Chdir(originalDir)
		require.NoError(t, err)
	}()

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ":7000", config.Server.Addr)
	assert.Equal(t, "bot.db", config.Store.Path)
	assert.False(t, config.AI.Enabled)
	assert.Equal(t, "gemini-1.0-pro", config.AI.Model)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configContent := `
log:
  level: "warn"
store:
  path: "file.db"
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	// Environment variables should override config file values
	t.Setenv("EXPENSENINJA_LOG_LEVEL", "error")
	t.Setenv("GEMINI_API_KEY", "env-api-key")

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		err := os.Chdir(originalDir)
		require.NoError(t, err)
	}()

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)       // env var wins
	assert.Equal(t, "file.db", config.Store.Path)    // config file value
	assert.Equal(t, "env-api-key", config.AI.APIKey) // env var (API key)
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	clearTestEnvVars(t)

	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name: "invalid log level",
			modifyConfig: func(c *Config) {
				c.Log.Level = "invalid"
			},
			expectError: "invalid log level",
		},
		{
			name: "invalid log format",
			modifyConfig: func(c *Config) {
				c.Log.Format = "invalid"
			},
			expectError: "invalid log format",
		},
		{
			name: "empty server address",
			modifyConfig: func(c *Config) {
				c.Server.Addr = ""
			},
			expectError: "server.addr must not be empty",
		},
		{
			name: "empty store path",
			modifyConfig: func(c *Config) {
				c.Store.Path = ""
			},
			expectError: "store.path must not be empty",
		},
		{
			name: "AI enabled without API key",
			modifyConfig: func(c *Config) {
				c.AI.Enabled = true
				c.AI.APIKey = ""
			},
			expectError: "GEMINI_API_KEY required when AI is enabled",
		},
		{
			name: "invalid timeout seconds",
			modifyConfig: func(c *Config) {
				c.AI.Enabled = true
				c.AI.APIKey = "test-key"
				c.AI.TimeoutSeconds = 0
			},
			expectError: "ai.timeout_seconds must be between 1 and 300",
		},
		{
			name: "NER without AI",
			modifyConfig: func(c *Config) {
				c.NER.Enabled = true
				c.AI.Enabled = false
			},
			expectError: "ner.enabled requires ai.enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Defaults form a valid baseline to mutate
			config, err := InitializeConfig()
			require.NoError(t, err)

			tt.modifyConfig(config)
			err = validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}
