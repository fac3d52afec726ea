package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is one recorded solve.
type Solve struct {
	SolveID    string
	CreatedAt  time.Time
	Facelets   string
	Scramble   string
	Solution   string
	MoveCount  int
	Phase1Len  int
	Nodes      int64
	DurationMs int64
}

// SolveRepository provides access to recorded solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a completed solve and returns its ID.
func (r *SolveRepository) Create(s Solve) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var scramble *string
	if s.Scramble != "" {
		scramble = &s.Scramble
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, facelets, scramble, solution,
			move_count, phase1_len, nodes, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), s.Facelets, scramble, s.Solution,
		s.MoveCount, s.Phase1Len, s.Nodes, s.DurationMs)
	if err != nil {
		return "", fmt.Errorf("failed to record solve: %w", err)
	}

	return id, nil
}

// List returns the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, facelets, COALESCE(scramble, ''), solution,
			move_count, phase1_len, nodes, duration_ms
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var createdAt string
		if err := rows.Scan(&s.SolveID, &createdAt, &s.Facelets, &s.Scramble,
			&s.Solution, &s.MoveCount, &s.Phase1Len, &s.Nodes, &s.DurationMs); err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		solves = append(solves, s)
	}
	return solves, rows.Err()
}

// Get returns one solve by ID.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var createdAt string
	err := r.db.QueryRow(`
		SELECT solve_id, created_at, facelets, COALESCE(scramble, ''), solution,
			move_count, phase1_len, nodes, duration_ms
		FROM solves WHERE solve_id = ?
	`, solveID).Scan(&s.SolveID, &createdAt, &s.Facelets, &s.Scramble,
		&s.Solution, &s.MoveCount, &s.Phase1Len, &s.Nodes, &s.DurationMs)
	if err != nil {
		return nil, fmt.Errorf("failed to get solve %s: %w", solveID, err)
	}
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &s, nil
}
