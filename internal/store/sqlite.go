// internal/store/sqlite.go
//
// SQLite-backed Wordle repository.
// Responsibilities:
//   - Opening the database with a busy timeout and WAL journaling.
//   - Applying the embedded migrations in migrations/*.sql.
//   - Persisting wordles as their answer plus the raw guessed words; loaded
//     rows are replayed through game.Restore so marks and state always come
//     from the state machine.
//   - Optimistic saves: UPDATE ... WHERE guess_count = n-1.

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const memoryDSN = ":memory:"

// SQLite implements the repository on a SQLite database.
type SQLite struct {
	db  *sqlx.DB
	now func() time.Time
}

// wordleRow is the wordles table shape.
type wordleRow struct {
	ID         string `db:"id"`
	Answer     string `db:"answer"`
	Rule       string `db:"rule"`
	Guesses    string `db:"guesses"`
	GuessCount int    `db:"guess_count"`
	State      string `db:"state"`
	CreatedAt  string `db:"created_at"`
	UpdatedAt  string `db:"updated_at"`
}

// OpenSQLite opens (and creates if missing) the database at dsn and runs
// migrations. Use ":memory:" for a throwaway database.
func OpenSQLite(dsn string) (*SQLite, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, newStoreError("OpenSQLite", "", err.Error(), ErrConnectionFailed)
	}
	if err := runMigrations(db.DB); err != nil {
		db.Close()
		return nil, newStoreError("OpenSQLite", "", err.Error(), ErrMigrationFailed)
	}
	return &SQLite{db: db, now: time.Now}, nil
}

// openDB ensures the parent directory exists for file DSNs and opens the
// database with busy timeout, WAL journaling and foreign keys.
func openDB(dsn string) (*sqlx.DB, error) {
	params := "?_busy_timeout=5000&_foreign_keys=on"
	if dsn != memoryDSN {
		if dir := filepath.Dir(dsn); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
		params += "&_journal_mode=WAL"
	}

	db, err := sqlx.Open("sqlite3", dsn+params)
	if err != nil {
		return nil, err
	}
	if dsn == memoryDSN {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

func runMigrations(db *sql.DB) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Debug().Msg("migrations already applied")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}
	if v, _, err := m.Version(); err == nil {
		log.Info().Uint("version", v).Msg("migrations applied")
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Get loads and replays the wordle stored under id.
func (s *SQLite) Get(ctx context.Context, id game.ID) (game.Wordle, bool, error) {
	var row wordleRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM wordles WHERE id = ?`, string(id))
	if errors.Is(err, sql.ErrNoRows) {
		return game.Wordle{}, false, nil
	}
	if err != nil {
		return game.Wordle{}, false, newStoreError("Get", id, err.Error(), err)
	}
	w, err := rowToWordle(row)
	if err != nil {
		return game.Wordle{}, false, newStoreError("Get", id, err.Error(), ErrInvalidData)
	}
	return w, true, nil
}

// Exists reports whether a row with id is present.
func (s *SQLite) Exists(ctx context.Context, id game.ID) (bool, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(1) FROM wordles WHERE id = ?`, string(id)); err != nil {
		return false, newStoreError("Exists", id, err.Error(), err)
	}
	return n > 0, nil
}

// Save inserts a wordle without guesses, or records its latest guess.
func (s *SQLite) Save(ctx context.Context, w game.Wordle) error {
	row := wordleToRow(w)
	now := s.now().UTC().Format(time.RFC3339)
	row.CreatedAt, row.UpdatedAt = now, now

	if row.GuessCount == 0 {
		return s.insert(ctx, row)
	}
	return s.update(ctx, row)
}

func (s *SQLite) insert(ctx context.Context, row wordleRow) error {
	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO wordles (id, answer, rule, guesses, guess_count, state, created_at, updated_at)
		VALUES (:id, :answer, :rule, :guesses, :guess_count, :state, :created_at, :updated_at)`, row)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: wordles.id") {
			return newStoreError("Save", game.ID(row.ID), "id already in use", ErrDuplicateID)
		}
		return newStoreError("Save", game.ID(row.ID), err.Error(), err)
	}
	return nil
}

func (s *SQLite) update(ctx context.Context, row wordleRow) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE wordles
		SET guesses = ?, guess_count = ?, state = ?, updated_at = ?
		WHERE id = ? AND guess_count = ?`,
		row.Guesses, row.GuessCount, row.State, row.UpdatedAt, row.ID, row.GuessCount-1)
	if err != nil {
		return newStoreError("Save", game.ID(row.ID), err.Error(), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return newStoreError("Save", game.ID(row.ID), err.Error(), err)
	}
	if n == 1 {
		return nil
	}

	exists, err := s.Exists(ctx, game.ID(row.ID))
	if err != nil {
		return err
	}
	if !exists {
		return newStoreError("Save", game.ID(row.ID), "no stored wordle to update", ErrNotFound)
	}
	return newStoreError("Save", game.ID(row.ID), "stored guess count does not precede this save", ErrConflict)
}

func wordleToRow(w game.Wordle) wordleRow {
	words := w.GuessedWords()
	raw := make([]string, len(words))
	for i, word := range words {
		raw[i] = word.String()
	}
	return wordleRow{
		ID:         string(w.ID),
		Answer:     w.Answer.String(),
		Rule:       string(w.Rule),
		Guesses:    strings.Join(raw, ","),
		GuessCount: len(words),
		State:      string(w.State),
	}
}

func rowToWordle(row wordleRow) (game.Wordle, error) {
	answer, err := game.ParseWord(row.Answer)
	if err != nil {
		return game.Wordle{}, fmt.Errorf("answer %q: %w", row.Answer, err)
	}
	rule, err := game.ParseRule(row.Rule)
	if err != nil {
		return game.Wordle{}, err
	}

	var words []game.Word
	if row.Guesses != "" {
		for _, raw := range strings.Split(row.Guesses, ",") {
			word, err := game.ParseWord(raw)
			if err != nil {
				return game.Wordle{}, fmt.Errorf("guess %q: %w", raw, err)
			}
			words = append(words, word)
		}
	}
	if len(words) != row.GuessCount {
		return game.Wordle{}, fmt.Errorf("guess_count %d does not match %d stored guesses", row.GuessCount, len(words))
	}

	w, err := game.Restore(game.ID(row.ID), answer, rule, words)
	if err != nil {
		return game.Wordle{}, err
	}
	if string(w.State) != row.State {
		return game.Wordle{}, fmt.Errorf("stored state %q, replayed state %q", row.State, w.State)
	}
	return w, nil
}
