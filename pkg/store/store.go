// Package store provides the embedded SQLite persistence layer for the bot.
// It exposes the warning ledger and the suggestion/vote ledger over a single
// shared database handle.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/FlaceManagerGo/pkg/logger"
	_ "modernc.org/sqlite"
)

// Store manages the SQLite database connection
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var (
	store     *Store
	storeOnce sync.Once
)

// Init initializes the global store instance
func Init(path string) (*Store, error) {
	var err error
	storeOnce.Do(func() {
		store, err = Open(path)
	})
	return store, err
}

// Get returns the global store instance
func Get() *Store {
	return store
}

// Open opens (or creates) the database at path and ensures the schema exists
func Open(path string) (*Store, error) {
	logger.System("Abriendo la base de datos...", "Store")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite admite un único escritor; serializar las conexiones evita
	// errores SQLITE_BUSY en escrituras concurrentes.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode = WAL; PRAGMA foreign_keys = ON; PRAGMA busy_timeout = 5000;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Success("Base de datos lista.", "Store")
	return &Store{db: db}, nil
}

// createSchema creates all tables needed by the bot.
// Safe to call multiple times - uses IF NOT EXISTS.
func createSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
-- Advertencias de moderación (apéndice puro, sin updates)
CREATE TABLE IF NOT EXISTS warnings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT NOT NULL,
    reason TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_warnings_user_id ON warnings(user_id);

-- Historial de sugerencias
CREATE TABLE IF NOT EXISTS suggestions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    suggestion TEXT NOT NULL,
    message_link TEXT NOT NULL
);

-- Votos activos: como máximo una fila por (message_id, user_id)
CREATE TABLE IF NOT EXISTS votes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    message_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    vote_type TEXT NOT NULL CHECK (vote_type IN ('upvote', 'downvote', 'nota')),
    UNIQUE (message_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_message_id ON votes(message_id);
`

// Close closes the database connection
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	logger.Warn("La base de datos ha sido cerrada", "Store")
	return s.db.Close()
}

// Ping measures the database response time
func (s *Store) Ping() (time.Duration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return 0, fmt.Errorf("database not open")
	}

	start := time.Now()
	err := s.db.Ping()
	return time.Since(start), err
}

// GetStatus returns the database status string for status surfaces
func (s *Store) GetStatus() (string, bool) {
	if s == nil {
		return "🔴 | Desconectado", false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil || s.db.Ping() != nil {
		return "🔴 | Desconectado", false
	}
	return "🟢 | En linea", true
}

// DB returns the underlying database handle
func (s *Store) DB() *sql.DB {
	return s.db
}
