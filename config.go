package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Game     GameConfig     `mapstructure:"game"`
	Words    WordsConfig    `mapstructure:"words"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	HandlerTimeout  time.Duration `mapstructure:"handler_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	ClientOrigin    string        `mapstructure:"client_origin"`
	SecureCookies   bool          `mapstructure:"secure_cookies"`
}

// DatabaseConfig selects the wordle repository.
type DatabaseConfig struct {
	// Driver is "sqlite" or "memory".
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// GameConfig holds game rules.
type GameConfig struct {
	// Rule is "positional" or "canonical".
	Rule string `mapstructure:"rule"`
}

// WordsConfig points at optional word list files.
type WordsConfig struct {
	AnswersFile string `mapstructure:"answers_file"`
	AllowedFile string `mapstructure:"allowed_file"`
	// DailySalt keys the answer-of-the-day sequence. When empty it is
	// derived from auth.secret.
	DailySalt   string `mapstructure:"daily_salt"`
}

// AuthConfig holds game ticket settings.
type AuthConfig struct {
	// Secret is the master secret; ticket keys are derived from it.
	Secret        string        `mapstructure:"secret"`
	TicketTTL     time.Duration `mapstructure:"ticket_ttl"`
	RequireTicket bool          `mapstructure:"require_ticket"`
}

const (
	driverSQLite = "sqlite"
	driverMemory = "memory"
)

// LoadConfig loads configuration from an optional YAML file and WORDLE_*
// environment variables. The older unprefixed names (LOG_LEVEL, JWT_SECRET, ...)
// are honoured as fallbacks.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":5175")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.handler_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.client_origin", "http://localhost:5173")
	v.SetDefault("server.secure_cookies", false)
	v.SetDefault("database.driver", driverSQLite)
	v.SetDefault("database.dsn", "data/wordle.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("game.rule", string(game.RulePositional))
	v.SetDefault("words.answers_file", "")
	v.SetDefault("words.allowed_file", "")
	v.SetDefault("words.daily_salt", "")
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.ticket_ttl", "24h")
	v.SetDefault("auth.require_ticket", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var parseErr viper.ConfigParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
			log.Warn().Err(err).Str("path", configPath).Msg("config file not read, using defaults")
		}
	}

	v.SetEnvPrefix("WORDLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	fallbacks := map[string]string{
		"log.level":            "LOG_LEVEL",
		"server.client_origin": "CLIENT_ORIGIN",
		"words.answers_file":   "WORDS_ANSWERS_FILE",
		"words.allowed_file":   "WORDS_ALLOWED_FILE",
		"words.daily_salt":     "DAILY_SALT",
		"auth.secret":          "JWT_SECRET",
	}
	for key, legacy := range fallbacks {
		envKey := "WORDLE_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envKey, legacy); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	switch c.Database.Driver {
	case driverSQLite:
		if c.Database.DSN == "" {
			errs = append(errs, errors.New("database.dsn is required for the sqlite driver"))
		}
	case driverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown database.driver %q", c.Database.Driver))
	}
	if _, err := game.ParseRule(c.Game.Rule); err != nil {
		errs = append(errs, fmt.Errorf("game.rule: %w", err))
	}
	if c.Auth.RequireTicket && c.Auth.Secret == "" {
		errs = append(errs, errors.New("auth.secret is required when auth.require_ticket is set"))
	}
	if c.Auth.TicketTTL <= 0 {
		errs = append(errs, errors.New("auth.ticket_ttl must be positive"))
	}
	return errors.Join(errs...)
}
