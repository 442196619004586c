// Package tui provides the Bubble Tea integration for kolor.
// It handles the terminal UI loop, input mapping, and the scoreboard.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kolor/internal/games/kolor"
)

// SnapshotMsg carries session state produced by a countdown tick.
type SnapshotMsg kolor.Snapshot

// tickSink forwards countdown snapshots from the runner's goroutine into
// the program. Snapshots sent before a program is attached are dropped;
// the model reads the runner directly on its next update.
type tickSink struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (s *tickSink) attach(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = send
}

func (s *tickSink) snapshot(snap kolor.Snapshot) {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()

	if send != nil {
		send(SnapshotMsg(snap))
	}
}
