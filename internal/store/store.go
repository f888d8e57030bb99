// Package store persists medication records in SQLite. It replaces the
// upstream document store with an embedded database so the service runs
// self-contained.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	tinterrors "github.com/pharmakit/icontint/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS medications (
	id TEXT PRIMARY KEY,
	medicine_name TEXT NOT NULL,
	display_name TEXT NOT NULL,
	form TEXT NOT NULL,
	icon_key TEXT NOT NULL,
	medication_color TEXT NOT NULL,
	background_color TEXT NOT NULL,
	dosage TEXT NOT NULL,
	frequency INTEGER NOT NULL,
	times TEXT NOT NULL,
	course_duration_days INTEGER NOT NULL,
	start_date TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
`

// Medication is one stored medication schedule.
type Medication struct {
	ID                 string    `json:"id"`
	MedicineName       string    `json:"medicine_name"`
	DisplayName        string    `json:"display_name"`
	Form               string    `json:"form"`
	IconKey            string    `json:"icon_key"`
	MedicationColor    string    `json:"medication_color"`
	BackgroundColor    string    `json:"background_color"`
	Dosage             string    `json:"dosage"`
	Frequency          int       `json:"frequency"`
	Times              []string  `json:"times"`
	CourseDurationDays int       `json:"course_duration_days"`
	StartDate          string    `json:"start_date"`
	CreatedAt          time.Time `json:"created_at"`
}

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the medication database at path and applies the
// schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Insert stores a medication record, assigning an id and creation time when
// absent.
func (s *Store) Insert(ctx context.Context, med *Medication) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if med.ID == "" {
		med.ID = uuid.NewString()
	}
	if med.CreatedAt.IsZero() {
		med.CreatedAt = time.Now().UTC()
	}

	times, err := json.Marshal(med.Times)
	if err != nil {
		return fmt.Errorf("encode times: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO medications (
			id, medicine_name, display_name, form, icon_key,
			medication_color, background_color, dosage, frequency,
			times, course_duration_days, start_date, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		med.ID, med.MedicineName, med.DisplayName, med.Form, med.IconKey,
		med.MedicationColor, med.BackgroundColor, med.Dosage, med.Frequency,
		string(times), med.CourseDurationDays, med.StartDate,
		med.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert medication: %w", err)
	}
	return nil
}

// Get fetches one record by id, failing with NotFoundError when absent.
func (s *Store) Get(ctx context.Context, id string) (*Medication, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	med, err := scanMedication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, tinterrors.NewNotFoundError("medication", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get medication: %w", err)
	}
	return med, nil
}

// List returns all records, newest first.
func (s *Store) List(ctx context.Context) ([]Medication, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, selectColumns+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	defer rows.Close()

	var meds []Medication
	for rows.Next() {
		med, err := scanMedication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan medication: %w", err)
		}
		meds = append(meds, *med)
	}
	return meds, rows.Err()
}

// Delete removes one record by id, failing with NotFoundError when no row
// matched.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM medications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	if affected == 0 {
		return tinterrors.NewNotFoundError("medication", id)
	}
	return nil
}

const selectColumns = `
	SELECT id, medicine_name, display_name, form, icon_key,
		medication_color, background_color, dosage, frequency,
		times, course_duration_days, start_date, created_at
	FROM medications`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedication(row rowScanner) (*Medication, error) {
	var med Medication
	var times string
	var createdAt int64

	err := row.Scan(
		&med.ID, &med.MedicineName, &med.DisplayName, &med.Form, &med.IconKey,
		&med.MedicationColor, &med.BackgroundColor, &med.Dosage, &med.Frequency,
		&times, &med.CourseDurationDays, &med.StartDate, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(times), &med.Times); err != nil {
		return nil, fmt.Errorf("decode times: %w", err)
	}
	med.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &med, nil
}
