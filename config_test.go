package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultValues(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":5175", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.HandlerTimeout)
	assert.Equal(t, "http://localhost:5173", cfg.Server.ClientOrigin)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "data/wordle.db", cfg.Database.DSN)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
	assert.Equal(t, "positional", cfg.Game.Rule)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TicketTTL)
	assert.False(t, cfg.Auth.RequireTicket)
}

func TestLoadConfig_FromFile(t *testing.T) {
	clearEnv(t)

	configContent := `
server:
  addr: "127.0.0.1:9000"
  shutdown_timeout: 3s
database:
  driver: memory
log:
  level: debug
  pretty: true
game:
  rule: canonical
words:
  daily_salt: pepper
auth:
  secret: s3cret
  ticket_ttl: 2h
  require_ticket: true
`
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(configContent), 0o644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, "canonical", cfg.Game.Rule)
	assert.Equal(t, "pepper", cfg.Words.DailySalt)
	assert.Equal(t, "s3cret", cfg.Auth.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TicketTTL)
	assert.True(t, cfg.Auth.RequireTicket)
}

func TestLoadConfig_EnvironmentOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDLE_SERVER_ADDR", ":8081")
	t.Setenv("WORDLE_DATABASE_DSN", "/tmp/w.db")
	t.Setenv("WORDLE_LOG_LEVEL", "warn")
	t.Setenv("WORDLE_AUTH_SECRET", "from-env")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Server.Addr)
	assert.Equal(t, "/tmp/w.db", cfg.Database.DSN)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "from-env", cfg.Auth.Secret)
}

func TestLoadConfig_LegacyEnvNames(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "legacy")
	t.Setenv("DAILY_SALT", "legacy-salt")
	t.Setenv("CLIENT_ORIGIN", "https://play.example.com")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.Auth.Secret)
	assert.Equal(t, "legacy-salt", cfg.Words.DailySalt)
	assert.Equal(t, "https://play.example.com", cfg.Server.ClientOrigin)

	t.Setenv("WORDLE_AUTH_SECRET", "prefixed")
	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.Auth.Secret)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":5175", cfg.Server.Addr)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	clearEnv(t)
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("server: [unclosed"), 0o644))

	_, err := LoadConfig(tmpFile)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Database: DatabaseConfig{Driver: "sqlite", DSN: "x.db"},
			Game:     GameConfig{Rule: "positional"},
			Auth:     AuthConfig{TicketTTL: time.Hour},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"memory needs no dsn", func(c *Config) { c.Database = DatabaseConfig{Driver: "memory"} }, ""},
		{"unknown driver", func(c *Config) { c.Database.Driver = "postgres" }, "unknown database.driver"},
		{"sqlite without dsn", func(c *Config) { c.Database.DSN = "" }, "database.dsn"},
		{"unknown rule", func(c *Config) { c.Game.Rule = "hard" }, "game.rule"},
		{"ticket without secret", func(c *Config) { c.Auth.RequireTicket = true }, "auth.secret"},
		{"zero ttl", func(c *Config) { c.Auth.TicketTTL = 0 }, "ticket_ttl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_RejectsInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDLE_DATABASE_DRIVER", "postgres")

	_, err := LoadConfig("")
	assert.Error(t, err)
}

// clearEnv blanks every variable LoadConfig reads; viper ignores empty values.
func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"WORDLE_SERVER_ADDR",
		"WORDLE_SERVER_READ_TIMEOUT",
		"WORDLE_SERVER_WRITE_TIMEOUT",
		"WORDLE_SERVER_HANDLER_TIMEOUT",
		"WORDLE_SERVER_SHUTDOWN_TIMEOUT",
		"WORDLE_SERVER_CLIENT_ORIGIN",
		"WORDLE_SERVER_SECURE_COOKIES",
		"WORDLE_DATABASE_DRIVER",
		"WORDLE_DATABASE_DSN",
		"WORDLE_LOG_LEVEL",
		"WORDLE_LOG_PRETTY",
		"WORDLE_GAME_RULE",
		"WORDLE_WORDS_ANSWERS_FILE",
		"WORDLE_WORDS_ALLOWED_FILE",
		"WORDLE_WORDS_DAILY_SALT",
		"WORDLE_AUTH_SECRET",
		"WORDLE_AUTH_TICKET_TTL",
		"WORDLE_AUTH_REQUIRE_TICKET",
		"LOG_LEVEL",
		"CLIENT_ORIGIN",
		"WORDS_ANSWERS_FILE",
		"WORDS_ALLOWED_FILE",
		"DAILY_SALT",
		"JWT_SECRET",
	}
	for _, v := range envVars {
		t.Setenv(v, "")
	}
}
