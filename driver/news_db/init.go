package news_db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"news-pipeline/utils/logger"
)

// InitDBConnectionPool opens and pings a pgx pool.
func InitDBConnectionPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		logger.Logger.Error("Failed to create connection pool", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Logger.Error("Failed to ping database", "error", err)
		return nil, err
	}

	logger.Logger.Info("Connected to database",
		"database", config.ConnConfig.Database,
		"max_conns", config.MaxConns)

	return pool, nil
}
