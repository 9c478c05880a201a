package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cleishm/MACSearch/internal/domain"
	"github.com/cleishm/MACSearch/internal/repository"

	_ "modernc.org/sqlite"
)

// Repository implements repository.Repository using SQLite
type Repository struct {
	db *sql.DB
}

// New opens or creates the cache database at dbPath and migrates the
// schema. Pass ":memory:" for a cache that lives only for this run;
// reusing a file path reuses the cache across runs.
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single-writer, load-then-query access pattern; WAL still keeps
	// re-runs against a shared cache file from tripping on locks.
	if _, err := db.Exec(`PRAGMA journal_mode = WAL; PRAGMA busy_timeout = 5000;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS forwarding (
		host TEXT NOT NULL,
		port TEXT NOT NULL,
		mac  TEXT NOT NULL,
		vlan TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS polls (
		host         TEXT PRIMARY KEY,
		polled_at    TEXT NOT NULL,
		record_count INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_forwarding_mac ON forwarding(mac);
	CREATE INDEX IF NOT EXISTS idx_forwarding_vlan ON forwarding(vlan);
	CREATE INDEX IF NOT EXISTS idx_forwarding_host_port ON forwarding(host, port);
	`

	_, err := r.db.Exec(schema)
	return err
}

// ReplaceHost swaps out all cached records for one device in a single
// transaction and stamps the poll metadata.
func (r *Repository) ReplaceHost(ctx context.Context, host string, records []domain.ForwardingRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM forwarding WHERE host = ?`, host); err != nil {
		return fmt.Errorf("failed to clear records for %s: %w", host, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO forwarding (host, port, mac, vlan) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, host, rec.Port, rec.MAC, rec.VLAN); err != nil {
			return fmt.Errorf("failed to insert record for %s: %w", host, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO polls (host, polled_at, record_count) VALUES (?, ?, ?)
		ON CONFLICT(host) DO UPDATE SET
			polled_at = excluded.polled_at,
			record_count = excluded.record_count
	`, host, time.Now().UTC().Format(time.RFC3339), len(records)); err != nil {
		return fmt.Errorf("failed to record poll for %s: %w", host, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Clear removes all cached records and poll metadata.
func (r *Repository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM forwarding`); err != nil {
		return fmt.Errorf("failed to clear forwarding table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM polls`); err != nil {
		return fmt.Errorf("failed to clear poll metadata: %w", err)
	}
	return nil
}

// AllRecords returns every cached record, ordered by host, port, mac.
func (r *Repository) AllRecords(ctx context.Context) ([]domain.ForwardingRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT host, port, mac, vlan FROM forwarding ORDER BY host, port, mac
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query forwarding table: %w", err)
	}
	defer rows.Close()

	var records []domain.ForwardingRecord
	for rows.Next() {
		var rec domain.ForwardingRecord
		if err := rows.Scan(&rec.Host, &rec.Port, &rec.MAC, &rec.VLAN); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}
	return records, nil
}

// Count returns the number of cached records.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM forwarding`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// HostSummaries returns per-device poll metadata, ordered by host.
func (r *Repository) HostSummaries(ctx context.Context) ([]repository.HostSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT host, polled_at, record_count FROM polls ORDER BY host
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query poll metadata: %w", err)
	}
	defer rows.Close()

	var summaries []repository.HostSummary
	for rows.Next() {
		var s repository.HostSummary
		var polledAt string
		if err := rows.Scan(&s.Host, &polledAt, &s.RecordCount); err != nil {
			return nil, fmt.Errorf("failed to scan poll metadata: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, polledAt); err == nil {
			s.PolledAt = t
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating poll metadata: %w", err)
	}
	return summaries, nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}
