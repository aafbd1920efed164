package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdavydov/leaselint/internal/model"
)

// ErrNotFound is returned when an analysis does not exist
var ErrNotFound = errors.New("analysis not found")

// Analysis is a persisted contract assessment
type Analysis struct {
	ID           string                `json:"id"`
	Jurisdiction string                `json:"jurisdiction"`
	Report       *model.ContractReport `json:"report"`
	CreatedAt    time.Time             `json:"created_at"`
}

// Store persists contract analyses in SQLite
type Store struct {
	db *sql.DB
}

// Open opens (and initializes) the analysis database at path.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS analyses (
		id TEXT PRIMARY KEY,
		jurisdiction TEXT NOT NULL,
		overall_verdict TEXT NOT NULL,
		average_score REAL NOT NULL,
		illegal_count INTEGER NOT NULL,
		clauses_evaluated INTEGER NOT NULL,
		report TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists a report and returns the stored analysis
func (s *Store) Save(ctx context.Context, report *model.ContractReport) (*Analysis, error) {
	analysis := &Analysis{
		ID:           uuid.NewString(),
		Jurisdiction: report.Jurisdiction,
		Report:       report,
		CreatedAt:    time.Now().UTC(),
	}

	blob, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, jurisdiction, overall_verdict, average_score, illegal_count, clauses_evaluated, report, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		analysis.ID, report.Jurisdiction, report.OverallVerdict, report.AverageScore,
		report.IllegalCount, report.ClausesEvaluated, string(blob), analysis.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert analysis: %w", err)
	}

	return analysis, nil
}

// Get retrieves a stored analysis by id
func (s *Store) Get(ctx context.Context, id string) (*Analysis, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, jurisdiction, report, created_at FROM analyses WHERE id = ?`, id)

	var analysis Analysis
	var blob string
	if err := row.Scan(&analysis.ID, &analysis.Jurisdiction, &blob, &analysis.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query analysis: %w", err)
	}

	var report model.ContractReport
	if err := json.Unmarshal([]byte(blob), &report); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	analysis.Report = &report

	return &analysis, nil
}

// ListEntry is a lightweight row for listings
type ListEntry struct {
	ID             string    `json:"id"`
	Jurisdiction   string    `json:"jurisdiction"`
	OverallVerdict string    `json:"overall_verdict"`
	AverageScore   float64   `json:"average_score"`
	IllegalCount   int       `json:"illegal_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// List returns recent analyses, newest first
func (s *Store) List(ctx context.Context, limit int) ([]ListEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, jurisdiction, overall_verdict, average_score, illegal_count, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []ListEntry
	for rows.Next() {
		var e ListEntry
		if err := rows.Scan(&e.ID, &e.Jurisdiction, &e.OverallVerdict, &e.AverageScore, &e.IllegalCount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Delete removes a stored analysis
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete analysis: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
