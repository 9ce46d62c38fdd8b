package database

import (
	"context"
	"fmt"
	"time"

	"realestate-listings/pkg/logger"
	"realestate-listings/pkg/metrics"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type Database struct {
	DB *sqlx.DB
}

// NormalizeDSN forces the driver options the repositories rely on: time
// columns scan into time.Time, migrations may hold several statements and
// UPDATE reports matched rather than changed rows.
func NormalizeDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid database DSN: %w", err)
	}
	cfg.ParseTime = true
	cfg.MultiStatements = true
	cfg.ClientFoundRows = true
	if cfg.Loc == nil {
		cfg.Loc = time.UTC
	}
	return cfg.FormatDSN(), nil
}

// Open connects to MySQL, applies pool settings and pings with a timeout.
func Open(ctx context.Context, cfg Config) (*Database, error) {
	dsn, err := NormalizeDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	dbx, err := sqlx.Open("mysql", dsn)
	if err != nil {
		metrics.ObserveDB("open", "", start, err)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		dbx.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		dbx.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		dbx.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = dbx.PingContext(pingCtx)
	metrics.ObserveDB("ping", "", start, err)
	if err != nil {
		_ = dbx.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.L().Info().Msg("database connected")
	return &Database{DB: dbx}, nil
}

// Ping checks the connection, used by the health endpoint.
func (d *Database) Ping(ctx context.Context) error {
	return d.DB.PingContext(ctx)
}

func (d *Database) Close() error {
	if err := d.DB.Close(); err != nil {
		logger.L().Error().Err(err).Msg("error closing database")
		return err
	}
	logger.L().Info().Msg("database connection closed")
	return nil
}
