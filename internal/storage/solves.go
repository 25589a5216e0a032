package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is one recorded solver run.
type Solve struct {
	SolveID        string
	CreatedAt      time.Time
	Method         string // "cfop" or "beginner"
	Scramble       string
	Solution       string // staged solution
	Optimized      string // optimized solution
	MoveCount      int
	OptimizedCount int
	Duration       time.Duration
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create stores a solve and returns its generated ID.
func (r *SolveRepository) Create(s Solve) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, method, scramble, solution, optimized, move_count, optimized_count, duration_us)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), s.Method, s.Scramble, s.Solution, s.Optimized,
		s.MoveCount, s.OptimizedCount, s.Duration.Microseconds())

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// List returns the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, method, scramble, solution, optimized, move_count, optimized_count, duration_us
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
		var durationUs int64
		if err := rows.Scan(&s.SolveID, &createdAt, &s.Method, &s.Scramble, &s.Solution,
			&s.Optimized, &s.MoveCount, &s.OptimizedCount, &durationUs); err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		s.Duration = time.Duration(durationUs) * time.Microsecond
		solves = append(solves, s)
	}

	return solves, rows.Err()
}

// Count returns the total number of recorded solves.
func (r *SolveRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM solves").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count solves: %w", err)
	}
	return n, nil
}
