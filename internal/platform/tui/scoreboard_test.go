package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/kolor/internal/storage"
)

func TestScoreRows(t *testing.T) {
	rows := scoreRows([]storage.SessionRecord{
		{Score: 150, Correct: 15, Wrong: 2, Timeouts: 5},
		{Score: 40, Correct: 4, Wrong: 9, Timeouts: 16},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, expected 2", len(rows))
	}
	want := []string{"#1", "150", "15", "2", "5"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row 0 column %d = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" {
		t.Errorf("second rank = %q", rows[1][0])
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	if view := ansi.Strip(m.View()); !strings.Contains(view, "No scores recorded yet.") {
		t.Errorf("empty scoreboard view:\n%s", view)
	}
}

func TestScoreboardWithStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i, score := range []int{30, 120, 80} {
		rec := storage.SessionRecord{
			SessionID: fmt.Sprintf("s%d", i),
			Score:     score,
			Correct:   score / 10,
			Rounds:    20,
		}
		if _, err := store.SaveSession(rec); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.scores) != 3 || m.scores[0].Score != 120 {
		t.Fatalf("unexpected scores: %+v", m.scores)
	}

	view := ansi.Strip(m.View())
	for _, want := range []string{"HIGH SCORES - KOLOR", "Sessions: 3", "Best: 120", "#1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(ScoreboardModel)
	if len(m.table.Rows()) != 3 {
		t.Errorf("resize lost rows: %d", len(m.table.Rows()))
	}

	next, cmd := m.Update(keyMsg("q"))
	m = next.(ScoreboardModel)
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit the scoreboard")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}
