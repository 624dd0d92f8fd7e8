// Package sqlite implements the AssetStore on a local sqlite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/timebird7/asset-plot/internal/common"
	"github.com/timebird7/asset-plot/internal/interfaces"
	"github.com/timebird7/asset-plot/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS assets (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	asset_type TEXT NOT NULL,
	plot_type TEXT NOT NULL,
	ticker_symbol TEXT NULL,
	quantity REAL NOT NULL,
	current_price REAL,
	currency TEXT NOT NULL,
	leverage REAL
)`

// Store persists holdings in a single sqlite table.
type Store struct {
	db     *sql.DB
	path   string
	logger *common.Logger
}

// Open creates the database file (and its directory) if needed and verifies
// the connection. Paths starting with "file:" are used verbatim, which is how
// tests run against in-memory databases.
func Open(path string, logger *common.Logger) (*Store, error) {
	if logger == nil {
		logger = common.NewSilentLogger()
	}

	dsn := path
	if !strings.HasPrefix(path, "file:") {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = absPath + "?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db, path: path, logger: logger}, nil
}

// Init creates the assets table if it does not exist.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize assets table: %w", err)
	}
	return nil
}

// AddAsset validates, normalizes, and inserts a holding, assigning its ID.
func (s *Store) AddAsset(ctx context.Context, asset *models.Asset) error {
	asset.Normalize()
	if err := asset.Validate(); err != nil {
		return fmt.Errorf("invalid asset: %w", err)
	}

	var ticker sql.NullString
	if asset.TickerSymbol != "" {
		ticker = sql.NullString{String: asset.TickerSymbol, Valid: true}
	}
	var price sql.NullFloat64
	if asset.CurrentPrice != nil {
		price = sql.NullFloat64{Float64: *asset.CurrentPrice, Valid: true}
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO assets (asset_type, plot_type, ticker_symbol, quantity, current_price, currency, leverage)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(asset.AssetType), asset.PlotType, ticker, asset.Quantity, price, asset.Currency, asset.Leverage)
	if err != nil {
		return fmt.Errorf("failed to insert asset: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted id: %w", err)
	}
	asset.ID = id

	s.logger.Debug().
		Int64("id", id).
		Str("type", string(asset.AssetType)).
		Str("ticker", asset.TickerSymbol).
		Msg("Asset inserted")

	return nil
}

// ListAssets returns all holdings in insertion order.
func (s *Store) ListAssets(ctx context.Context) ([]models.Asset, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, asset_type, plot_type, ticker_symbol, quantity, current_price, currency, leverage
		 FROM assets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var (
			a         models.Asset
			assetType string
			ticker    sql.NullString
			price     sql.NullFloat64
			leverage  sql.NullFloat64
		)
		if err := rows.Scan(&a.ID, &assetType, &a.PlotType, &ticker, &a.Quantity, &price, &a.Currency, &leverage); err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		a.AssetType = models.AssetType(assetType)
		if ticker.Valid {
			a.TickerSymbol = ticker.String
		}
		if price.Valid {
			p := price.Float64
			a.CurrentPrice = &p
		}
		a.Leverage = 1.0
		if leverage.Valid && leverage.Float64 != 0 {
			a.Leverage = leverage.Float64
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate asset rows: %w", err)
	}

	return assets, nil
}

// Count returns the number of stored holdings.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ensure Store implements AssetStore
var _ interfaces.AssetStore = (*Store)(nil)
