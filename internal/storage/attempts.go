package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Attempt kinds.
const (
	KindSolve    = "solve"
	KindApply    = "apply"
	KindScramble = "scramble"
)

// Attempt represents one recorded run: a solve attempt, an applied move
// sequence, or a generated scramble.
type Attempt struct {
	AttemptID  string
	CreatedAt  time.Time
	Kind       string
	CubeText   string
	MovesText  *string
	MoveCount  *int
	MaxDepth   *int
	DurationMs *int64
	Solved     bool
}

// AttemptRepository provides CRUD operations for attempts.
type AttemptRepository struct {
	db *DB
}

// NewAttemptRepository creates a new attempt repository.
func NewAttemptRepository(db *DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// Create inserts a new attempt and returns its ID. CreatedAt and
// AttemptID are assigned here.
func (r *AttemptRepository) Create(a *Attempt) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	solved := 0
	if a.Solved {
		solved = 1
	}

	_, err := r.db.Exec(`
		INSERT INTO attempts (attempt_id, created_at, kind, cube_text, moves_text, move_count, max_depth, duration_ms, solved)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), a.Kind, a.CubeText, a.MovesText, a.MoveCount, a.MaxDepth, a.DurationMs, solved)

	if err != nil {
		return "", fmt.Errorf("failed to create attempt: %w", err)
	}

	a.AttemptID = id
	a.CreatedAt = createdAt
	return id, nil
}

// Get retrieves an attempt by ID. Returns nil when not found.
func (r *AttemptRepository) Get(attemptID string) (*Attempt, error) {
	row := r.db.QueryRow(`
		SELECT attempt_id, created_at, kind, cube_text, moves_text, move_count, max_depth, duration_ms, solved
		FROM attempts
		WHERE attempt_id = ?
	`, attemptID)

	a, err := scanAttempt(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	return a, nil
}

// GetLast retrieves the most recent attempt. Returns nil when the
// history is empty.
func (r *AttemptRepository) GetLast() (*Attempt, error) {
	var attemptID string
	err := r.db.QueryRow(`
		SELECT attempt_id FROM attempts
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&attemptID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last attempt: %w", err)
	}

	return r.Get(attemptID)
}

// List retrieves recent attempts, newest first.
func (r *AttemptRepository) List(limit int) ([]Attempt, error) {
	rows, err := r.db.Query(`
		SELECT attempt_id, created_at, kind, cube_text, moves_text, move_count, max_depth, duration_ms, solved
		FROM attempts
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, *a)
	}

	return attempts, rows.Err()
}

// Delete deletes an attempt.
func (r *AttemptRepository) Delete(attemptID string) error {
	_, err := r.db.Exec("DELETE FROM attempts WHERE attempt_id = ?", attemptID)
	if err != nil {
		return fmt.Errorf("failed to delete attempt: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row rowScanner) (*Attempt, error) {
	var a Attempt
	var createdAtStr string
	var solved int

	err := row.Scan(
		&a.AttemptID, &createdAtStr, &a.Kind, &a.CubeText,
		&a.MovesText, &a.MoveCount, &a.MaxDepth, &a.DurationMs, &solved,
	)
	if err != nil {
		return nil, err
	}

	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	a.Solved = solved != 0
	return &a, nil
}
