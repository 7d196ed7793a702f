package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lavanya1309/techical-sales-web-application/models"
)

// SQLStore backs the record snapshot with a SQL database. It works against
// both SQLite (modernc.org/sqlite) and PostgreSQL (lib/pq); $N placeholders
// are understood by both drivers.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// CreateSchema creates the sales_record table.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS sales_record (
    id TEXT PRIMARY KEY,
    state TEXT NOT NULL,
    city TEXT NOT NULL,
    latitude DOUBLE PRECISION NOT NULL,
    longitude DOUBLE PRECISION NOT NULL,
    sales_2022 INTEGER NOT NULL DEFAULT 0,
    sales_2023 INTEGER NOT NULL DEFAULT 0,
    sales_2024 INTEGER NOT NULL DEFAULT 0,
    sales_2025 INTEGER NOT NULL DEFAULT 0,
    total INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_sales_record_state ON sales_record(state);
`

func (s *SQLStore) InsertMany(ctx context.Context, records []models.SalesRecord) ([]models.SalesRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stored, err := insertAll(ctx, tx, records)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit insert: %w", err)
	}
	return stored, nil
}

func (s *SQLStore) ReadAll(ctx context.Context) ([]models.SalesRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, state, city, latitude, longitude,
		       sales_2022, sales_2023, sales_2024, sales_2025, total
		FROM sales_record
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records := []models.SalesRecord{}
	for rows.Next() {
		var rec models.SalesRecord
		if err := rows.Scan(
			&rec.ID, &rec.State, &rec.City, &rec.Latitude, &rec.Longitude,
			&rec.Sales2022, &rec.Sales2023, &rec.Sales2024, &rec.Sales2025, &rec.Total,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *SQLStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sales_record`); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	return nil
}

// Replace runs the clear and the inserts in one transaction so concurrent
// readers never see the intermediate empty table.
func (s *SQLStore) Replace(ctx context.Context, records []models.SalesRecord) ([]models.SalesRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sales_record`); err != nil {
		return nil, fmt.Errorf("failed to clear records: %w", err)
	}

	stored, err := insertAll(ctx, tx, records)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit replace: %w", err)
	}
	return stored, nil
}

func insertAll(ctx context.Context, tx *sql.Tx, records []models.SalesRecord) ([]models.SalesRecord, error) {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO sales_record (id, state, city, latitude, longitude,
		                          sales_2022, sales_2023, sales_2024, sales_2025, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	stored := withIDs(records)
	for _, rec := range stored {
		_, err := stmt.ExecContext(ctx, rec.ID, rec.State, rec.City, rec.Latitude, rec.Longitude,
			rec.Sales2022, rec.Sales2023, rec.Sales2024, rec.Sales2025, rec.Total)
		if err != nil {
			return nil, fmt.Errorf("failed to insert record %s: %w", rec.City, err)
		}
	}
	return stored, nil
}
