package database

import (
	"context"
	"time"

	"go-swipehire-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPostgresConnection opens the pgx pool for the swipehire schema
// (users, profiles, swipes, matches, messages) and pings it once.
func NewPostgresConnection(connString string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}

	// Supabase fronts the database with PgBouncer in transaction mode,
	// which breaks server-side prepared statements; simple protocol
	// avoids "prepared statement already exists" errors.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	logger.Log.Info("Database connection established")
	return pool, nil
}
