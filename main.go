package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/ids"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/keys"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/service"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

const devDailySalt = "local_dev_salt"

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv("WORDLE_CONFIG"), "path to YAML config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}
	setupLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// setupLogger configures the global zerolog logger.
func setupLogger(cfg LogConfig) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// repository is what the service needs plus Close for shutdown.
type repository interface {
	service.Repository
	Close() error
}

type memoryRepo struct{ *store.Memory }

func (memoryRepo) Close() error { return nil }

func openRepository(cfg DatabaseConfig) (repository, error) {
	switch cfg.Driver {
	case driverMemory:
		log.Warn().Msg("using in-memory repository; games are lost on restart")
		return memoryRepo{store.NewMemory()}, nil
	default:
		s, err := store.OpenSQLite(cfg.DSN)
		if err != nil {
			return nil, err
		}
		log.Info().Str("dsn", cfg.DSN).Msg("sqlite repository ready")
		return s, nil
	}
}

// dailySalt prefers the configured salt, then one derived from the master secret.
func dailySalt(cfg *Config) ([]byte, error) {
	switch {
	case cfg.Words.DailySalt != "":
		return []byte(cfg.Words.DailySalt), nil
	case cfg.Auth.Secret != "":
		return keys.Derive([]byte(cfg.Auth.Secret), keys.PurposeDailySalt)
	}
	log.Warn().Msg("no daily salt or auth secret configured; using development salt")
	return []byte(devDailySalt), nil
}

func newTickets(cfg AuthConfig) (*httpserver.Tickets, error) {
	if cfg.Secret == "" {
		log.Warn().Msg("auth.secret not set; game tickets disabled")
		return nil, nil
	}
	key, err := keys.Derive([]byte(cfg.Secret), keys.PurposeTicket)
	if err != nil {
		return nil, err
	}
	return httpserver.NewTickets(key, cfg.TicketTTL), nil
}

func run(ctx context.Context, cfg *Config) error {
	salt, err := dailySalt(cfg)
	if err != nil {
		return err
	}
	dict, err := words.Load(words.Options{
		AnswersFile: cfg.Words.AnswersFile,
		AllowedFile: cfg.Words.AllowedFile,
		Salt:        salt,
	})
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}

	repo, err := openRepository(cfg.Database)
	if err != nil {
		return fmt.Errorf("open repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Error().Err(err).Msg("close repository")
		}
	}()

	tickets, err := newTickets(cfg.Auth)
	if err != nil {
		return fmt.Errorf("ticket key: %w", err)
	}

	rule, _ := game.ParseRule(cfg.Game.Rule)
	svc := service.New(repo, ids.UUID{}, dict, service.WithRule(rule))
	srv := httpserver.New(svc, tickets, httpserver.Config{
		ClientOrigin:   cfg.Server.ClientOrigin,
		HandlerTimeout: cfg.Server.HandlerTimeout,
		RequireTicket:  cfg.Auth.RequireTicket,
		SecureCookies:  cfg.Server.SecureCookies,
	})

	httpSrv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Str("rule", string(rule)).Msg("starting go-wordle")
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
