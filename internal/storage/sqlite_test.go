package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveSolve(4, 120, 90*time.Second); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
	if _, err := store.SaveSolve(4, 80, 60*time.Second); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
	if _, err := store.SaveSolve(4, 80, 45*time.Second); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}

	// Different board size
	if _, err := store.SaveSolve(3, 30, 20*time.Second); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}

	solves, err := store.BestSolves(4, 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}

	if len(solves) != 3 {
		t.Fatalf("Expected 3 solves, got %d", len(solves))
	}

	// Fewest moves first, ties broken by shorter duration
	if solves[0].Moves != 80 || solves[0].Duration != 45*time.Second {
		t.Errorf("Expected best solve 80 moves / 45s, got %d / %v", solves[0].Moves, solves[0].Duration)
	}
	if solves[1].Moves != 80 || solves[1].Duration != 60*time.Second {
		t.Errorf("Expected second solve 80 moves / 60s, got %d / %v", solves[1].Moves, solves[1].Duration)
	}
	if solves[2].Moves != 120 {
		t.Errorf("Expected third solve 120 moves, got %d", solves[2].Moves)
	}

	small, err := store.BestSolves(3, 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(small) != 1 {
		t.Errorf("Expected 1 solve for 3x3, got %d", len(small))
	}
}

func TestStoreBestSolvesLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveSolve(4, (i+1)*10, time.Minute)
	}

	solves, err := store.BestSolves(4, 3)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}

	if len(solves) != 3 {
		t.Errorf("Expected 3 solves with limit, got %d", len(solves))
	}
	if solves[0].Moves != 10 || solves[1].Moves != 20 || solves[2].Moves != 30 {
		t.Errorf("Solves not in expected order: %v", solves)
	}
}

func TestStoreBestMoves(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No solves yet
	best, err := store.BestMoves(4)
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 with no solves, got %d", best)
	}

	store.SaveSolve(4, 90, time.Minute)
	store.SaveSolve(4, 70, time.Minute)

	best, err = store.BestMoves(4)
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 70 {
		t.Errorf("Expected best 70, got %d", best)
	}
}

func TestStoreBoardSizes(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveSolve(5, 200, time.Minute)
	store.SaveSolve(3, 40, time.Minute)
	store.SaveSolve(3, 50, time.Minute)

	sizes, err := store.BoardSizes()
	if err != nil {
		t.Fatalf("BoardSizes() failed: %v", err)
	}
	if len(sizes) != 2 || sizes[0] != 3 || sizes[1] != 5 {
		t.Errorf("BoardSizes() = %v, expected [3 5]", sizes)
	}
}

func TestStoreClearSolves(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveSolve(4, 90, time.Minute)
	store.SaveSolve(3, 40, time.Minute)

	if err := store.ClearSolves(4); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}

	solves, _ := store.BestSolves(4, 10)
	if len(solves) != 0 {
		t.Errorf("Expected no 4x4 solves after clear, got %d", len(solves))
	}
	kept, _ := store.BestSolves(3, 10)
	if len(kept) != 1 {
		t.Errorf("Clear should not touch other board sizes, got %d", len(kept))
	}
}
