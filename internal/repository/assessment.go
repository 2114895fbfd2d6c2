// Package repository persists completed risk assessments in an embedded
// SQLite database.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/claus-risk-server/internal/domain"
)

// SQLiteStore implements domain.AssessmentStore using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (creating if needed) the assessment database at
// dbPath and prepares the schema.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// createSchema creates the database tables and indexes.
func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS assessments (
		id TEXT PRIMARY KEY,
		patient_age INTEGER NOT NULL,
		history TEXT NOT NULL,
		risk REAL,
		applicable INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_assessments_created_at ON assessments(created_at);
	CREATE INDEX IF NOT EXISTS idx_assessments_patient_age ON assessments(patient_age);
	`
	_, err := db.Exec(schema)
	return err
}

// scanner is an interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanAssessment scans a row into a RiskAssessment.
func scanAssessment(s scanner) (*domain.RiskAssessment, error) {
	a := &domain.RiskAssessment{}
	var historyJSON string
	var risk sql.NullFloat64

	err := s.Scan(&a.ID, &a.PatientAge, &historyJSON, &risk, &a.Applicable, &a.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(historyJSON), &a.History); err != nil {
		return nil, fmt.Errorf("failed to decode stored history: %w", err)
	}
	if risk.Valid {
		a.Risk = &risk.Float64
	}
	return a, nil
}

// Save persists an assessment. The family history is stored as JSON.
func (st *SQLiteStore) Save(ctx context.Context, assessment *domain.RiskAssessment) error {
	historyJSON, err := json.Marshal(assessment.History)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	if assessment.CreatedAt.IsZero() {
		assessment.CreatedAt = time.Now().UTC()
	}

	var risk sql.NullFloat64
	if assessment.Risk != nil {
		risk = sql.NullFloat64{Float64: *assessment.Risk, Valid: true}
	}

	_, err = st.db.ExecContext(ctx, `
		INSERT INTO assessments (id, patient_age, history, risk, applicable, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		assessment.ID, assessment.PatientAge, string(historyJSON),
		risk, assessment.Applicable, assessment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save assessment: %w", err)
	}
	return nil
}

// GetByID retrieves one assessment by its ID.
func (st *SQLiteStore) GetByID(ctx context.Context, id string) (*domain.RiskAssessment, error) {
	row := st.db.QueryRowContext(ctx, `
		SELECT id, patient_age, history, risk, applicable, created_at
		FROM assessments WHERE id = ?`, id)

	assessment, err := scanAssessment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAssessmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	return assessment, nil
}

// ListRecent returns up to limit assessments, newest first.
func (st *SQLiteStore) ListRecent(ctx context.Context, limit int) ([]*domain.RiskAssessment, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := st.db.QueryContext(ctx, `
		SELECT id, patient_age, history, risk, applicable, created_at
		FROM assessments ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	assessments := make([]*domain.RiskAssessment, 0)
	for rows.Next() {
		assessment, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		assessments = append(assessments, assessment)
	}
	return assessments, rows.Err()
}

// Close closes the underlying database.
func (st *SQLiteStore) Close() error {
	return st.db.Close()
}
