package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"NutriViet_V1.0/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS week_plans (
    seq        INTEGER PRIMARY KEY AUTOINCREMENT,
    id         TEXT NOT NULL UNIQUE,
    user_id    TEXT NOT NULL,
    plan       TEXT NOT NULL,
    created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_week_plans_user ON week_plans (user_id, created_at, seq);
`

// SQLiteStore keeps plans in a local SQLite file. It is the default store
// for single-node deployments and tests.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLite opens (creating if needed) the database at path.
func NewSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	log.Info().Str("path", path).Msg("Opened SQLite plan store")
	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) SaveWeekPlan(ctx context.Context, userID string, plan *models.WeekPlan, at time.Time) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode week plan: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO week_plans (id, user_id, plan, created_at) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), userID, string(data), at.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert week plan: %w", err)
	}
	return nil
}

func (s *SQLiteStore) LatestWeekPlan(ctx context.Context, userID string) (*models.WeekPlan, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT plan FROM week_plans WHERE user_id = ? ORDER BY created_at DESC, seq DESC LIMIT 1`,
		userID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load week plan: %w", err)
	}
	return decodePlan([]byte(data))
}

func (s *SQLiteStore) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := map[string]string{"driver": "sqlite"}
	if err := s.db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		log.Error().Err(err).Msg("db down")
		return stats
	}

	dbStats := s.db.Stats()
	stats["status"] = "up"
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration_ms"] = strconv.FormatInt(dbStats.WaitDuration.Milliseconds(), 10)
	return stats
}

func (s *SQLiteStore) Close() {
	if err := s.db.Close(); err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("Failed to close SQLite plan store")
		return
	}
	log.Info().Str("path", s.path).Msg("Disconnected from database")
}
