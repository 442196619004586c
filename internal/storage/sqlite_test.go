package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.kolor/kolor.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".kolor", "kolor.db"); got != want {
		t.Errorf("ExpandPath() = %q, expected %q", got, want)
	}

	if got, _ := ExpandPath("/abs/path.db"); got != "/abs/path.db" {
		t.Errorf("absolute paths should pass through, got %q", got)
	}
}

func TestStoreIntegerRoundTrip(t *testing.T) {
	store := openTestStore(t)

	// Absent key
	v, ok, err := store.GetInteger("bestScore")
	if err != nil {
		t.Fatalf("GetInteger() failed: %v", err)
	}
	if ok || v != 0 {
		t.Errorf("absent key should return (0, false), got (%d, %v)", v, ok)
	}

	if err := store.SetInteger("bestScore", 120); err != nil {
		t.Fatalf("SetInteger() failed: %v", err)
	}
	v, ok, err = store.GetInteger("bestScore")
	if err != nil || !ok || v != 120 {
		t.Errorf("GetInteger() = (%d, %v, %v), expected (120, true, nil)", v, ok, err)
	}

	// Overwrite
	if err := store.SetInteger("bestScore", 150); err != nil {
		t.Fatalf("SetInteger() overwrite failed: %v", err)
	}
	v, _, _ = store.GetInteger("bestScore")
	if v != 150 {
		t.Errorf("expected overwritten value 150, got %d", v)
	}

	if err := store.Delete("bestScore"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.GetInteger("bestScore"); ok {
		t.Error("key should be absent after Delete")
	}
}

func TestStoreNonNumericValue(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.db.Exec("INSERT INTO kv (key, value) VALUES ('bestScore', 'abc')"); err != nil {
		t.Fatal(err)
	}

	_, ok, err := store.GetInteger("bestScore")
	if !errors.Is(err, ErrNotInteger) {
		t.Errorf("expected ErrNotInteger, got %v", err)
	}
	if ok {
		t.Error("non-numeric value should not be reported as present")
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	records := []SessionRecord{
		{SessionID: "a", Score: 100, Correct: 10, Timeouts: 10, Rounds: 20},
		{SessionID: "b", Score: 50, Correct: 5, Wrong: 3, Timeouts: 15, Rounds: 20},
		{SessionID: "c", Score: 200, Correct: 20, Rounds: 20},
	}
	for _, r := range records {
		if _, err := store.SaveSession(r); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[2].SessionID != "b" || scores[2].Wrong != 3 || scores[2].Timeouts != 15 {
		t.Errorf("record fields not round-tripped: %+v", scores[2])
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveSession(SessionRecord{SessionID: string(rune('a' + i)), Score: (i + 1) * 10})
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreDuplicateSession(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSession(SessionRecord{SessionID: "same", Score: 10}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if _, err := store.SaveSession(SessionRecord{SessionID: "same", Score: 20}); err == nil {
		t.Error("saving the same session twice should fail")
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no sessions, got %d", high)
	}

	store.SaveSession(SessionRecord{SessionID: "x", Score: 100})
	store.SaveSession(SessionRecord{SessionID: "y", Score: 300})
	store.SaveSession(SessionRecord{SessionID: "z", Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Sessions != 3 || stats.HighScore != 300 || stats.TotalScore != 600 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, expected 200", stats.AvgScore)
	}
}

func TestStoreClearScoresKeepsBest(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionRecord{SessionID: "x", Score: 100})
	store.SetInteger("bestScore", 100)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if v, ok, _ := store.GetInteger("bestScore"); !ok || v != 100 {
		t.Error("ClearScores should not touch the best score")
	}
}
