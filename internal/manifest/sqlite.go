package manifest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a requested job doesn't exist
var ErrNotFound = errors.New("not found")

// SQLiteStore implements the Store interface using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite benefits from a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewSQLiteStore creates a new SQLite-backed catalog
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// RecordJob persists a job and its parts in one transaction. Either the
// whole job lands in the catalog or none of it does.
func (s *SQLiteStore) RecordJob(ctx context.Context, job *Job, parts []*Part) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	result, err := tx.ExecContext(ctx, `
		INSERT INTO jobs (input_path, input_size, parts, output_dir, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, job.InputPath, job.InputSize, job.Parts, job.OutputDir, job.DurationMS, now)
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}

	jobID, err := result.LastInsertId()
	if err != nil {
		return err
	}
	job.ID = jobID
	job.CreatedAt = now

	for _, part := range parts {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO parts (job_id, part_index, start_offset, end_offset, output_path, size_bytes)
			VALUES (?, ?, ?, ?, ?, ?)
		`, jobID, part.PartIndex, part.StartOffset, part.EndOffset, part.OutputPath, part.SizeBytes)
		if err != nil {
			return fmt.Errorf("failed to insert part %d: %w", part.PartIndex, err)
		}
		partID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		part.ID = partID
		part.JobID = jobID
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetJob returns the most recent job for an input path
func (s *SQLiteStore) GetJob(ctx context.Context, inputPath string) (*Job, error) {
	query := `
		SELECT id, input_path, input_size, parts, output_dir, duration_ms, created_at
		FROM jobs
		WHERE input_path = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`
	var job Job
	err := s.db.QueryRowContext(ctx, query, inputPath).Scan(
		&job.ID, &job.InputPath, &job.InputSize, &job.Parts,
		&job.OutputDir, &job.DurationMS, &job.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// ListParts returns a job's parts ordered by part index
func (s *SQLiteStore) ListParts(ctx context.Context, jobID int64) ([]*Part, error) {
	query := `
		SELECT id, job_id, part_index, start_offset, end_offset, output_path, size_bytes
		FROM parts
		WHERE job_id = ?
		ORDER BY part_index
	`
	rows, err := s.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var parts []*Part
	for rows.Next() {
		var p Part
		if err := rows.Scan(&p.ID, &p.JobID, &p.PartIndex, &p.StartOffset,
			&p.EndOffset, &p.OutputPath, &p.SizeBytes); err != nil {
			return nil, err
		}
		parts = append(parts, &p)
	}
	return parts, rows.Err()
}

// Status returns catalog-wide statistics
func (s *SQLiteStore) Status(ctx context.Context) (*CatalogStatus, error) {
	status := &CatalogStatus{}

	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM jobs").Scan(&status.JobsCount)
	if err != nil {
		return nil, err
	}

	err = s.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(SUM(size_bytes), 0) FROM parts",
	).Scan(&status.PartsCount, &status.BytesWritten)
	if err != nil {
		return nil, err
	}

	// MAX(created_at) would strip the column's declared type, which breaks
	// time scanning on both drivers; order instead.
	var lastJobAt sql.NullTime
	err = s.db.QueryRowContext(ctx,
		"SELECT created_at FROM jobs ORDER BY created_at DESC, id DESC LIMIT 1",
	).Scan(&lastJobAt)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	if lastJobAt.Valid {
		status.LastJobAt = lastJobAt.Time
	}

	return status, nil
}
