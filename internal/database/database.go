// Package database stores generated week plans, one row per save, in
// PostgreSQL or SQLite. The latest row per user is the user's current plan.
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"NutriViet_V1.0/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Service is a plan store with health reporting.
type Service interface {
	SaveWeekPlan(ctx context.Context, userID string, plan *models.WeekPlan, at time.Time) error
	// LatestWeekPlan returns nil, nil when the user has no plan.
	LatestWeekPlan(ctx context.Context, userID string) (*models.WeekPlan, error)

	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health() map[string]string

	// Close terminates the database connection.
	Close()
}

/* =================================================================================
								POSTGRES
=================================================================================*/

const postgresSchema = `
CREATE TABLE IF NOT EXISTS week_plans (
    seq        BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    id         UUID NOT NULL UNIQUE,
    user_id    TEXT NOT NULL,
    plan       JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_week_plans_user ON week_plans (user_id, created_at DESC, seq DESC);
`

// PostgresStore keeps plans in a pgx connection pool.
type PostgresStore struct {
	Dbpool *pgxpool.Pool
	name   string
}

// PostgresDSN builds the connection string from the BLUEPRINT_DB_* settings.
func PostgresDSN(username, password, host, port, database, schema string) string {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", username, password, host, port, database)
	if schema != "" {
		dsn += "&search_path=" + schema
	}
	return dsn
}

// NewPostgres connects to dsn and creates the plan table if needed.
func NewPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	name := pool.Config().ConnConfig.Database
	log.Info().Str("database", name).Msg("Connected to PostgreSQL")
	return &PostgresStore{Dbpool: pool, name: name}, nil
}

// SaveWeekPlan inserts a new row; older rows are kept as history.
func (s *PostgresStore) SaveWeekPlan(ctx context.Context, userID string, plan *models.WeekPlan, at time.Time) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode week plan: %w", err)
	}
	_, err = s.Dbpool.Exec(ctx,
		`INSERT INTO week_plans (id, user_id, plan, created_at) VALUES ($1, $2, $3, $4)`,
		uuid.New(), userID, data, at.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert week plan: %w", err)
	}
	return nil
}

func (s *PostgresStore) LatestWeekPlan(ctx context.Context, userID string) (*models.WeekPlan, error) {
	var data []byte
	err := s.Dbpool.QueryRow(ctx,
		`SELECT plan FROM week_plans WHERE user_id = $1 ORDER BY created_at DESC, seq DESC LIMIT 1`,
		userID).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load week plan: %w", err)
	}
	return decodePlan(data)
}

// Health checks the health of the database connection.
func (s *PostgresStore) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := map[string]string{"driver": "postgres"}

	if err := s.Dbpool.Ping(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		log.Error().Err(err).Msg("db down")
		return stats
	}

	poolStats := s.Dbpool.Stat()
	stats["status"] = "up"
	stats["total_conns"] = strconv.Itoa(int(poolStats.TotalConns()))
	stats["idle_conns"] = strconv.Itoa(int(poolStats.IdleConns()))
	stats["acquired_conns"] = strconv.Itoa(int(poolStats.AcquiredConns()))
	stats["max_conns"] = strconv.Itoa(int(poolStats.MaxConns()))
	stats["acquire_count"] = strconv.FormatInt(poolStats.AcquireCount(), 10)
	stats["acquire_duration_ms"] = strconv.FormatInt(poolStats.AcquireDuration().Milliseconds(), 10)
	stats["empty_acquire_count"] = strconv.FormatInt(poolStats.EmptyAcquireCount(), 10)

	if poolStats.AcquiredConns() > (poolStats.MaxConns() * 8 / 10) { // 80% capacity
		stats["message"] = "The database connection pool is experiencing heavy load."
	}
	if poolStats.EmptyAcquireCount() > 0 {
		stats["message"] = "The application has tried to acquire a connection from an empty pool. Consider increasing max connections."
	}

	return stats
}

// Close closes the database connection.
func (s *PostgresStore) Close() {
	log.Info().Str("database", s.name).Msg("Disconnected from database")
	s.Dbpool.Close()
}

func decodePlan(data []byte) (*models.WeekPlan, error) {
	var plan models.WeekPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to decode week plan: %w", err)
	}
	return &plan, nil
}
