package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateAndList(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Create(Solve{
		Method:         "cfop",
		Scramble:       "R U R' U'",
		Solution:       "U R U' R' ",
		Optimized:      "U R U' R' ",
		MoveCount:      4,
		OptimizedCount: 4,
		Duration:       123 * time.Microsecond,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatal("Create returned an empty ID")
	}

	solves, err := repo.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(solves) != 1 {
		t.Fatalf("List returned %d solves, want 1", len(solves))
	}

	s := solves[0]
	if s.SolveID != id {
		t.Errorf("SolveID = %q, want %q", s.SolveID, id)
	}
	if s.Method != "cfop" || s.Scramble != "R U R' U'" {
		t.Errorf("round trip lost fields: %+v", s)
	}
	if s.Duration != 123*time.Microsecond {
		t.Errorf("Duration = %v, want 123us", s.Duration)
	}
}

func TestCount(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	for i := 0; i < 3; i++ {
		if _, err := repo.Create(Solve{Method: "beginner"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	n, err := repo.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}
}
