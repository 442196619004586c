package kolor

import (
	"time"

	"github.com/vovakirdan/kolor/internal/core"
)

// Snapshot is a read-only copy of the session state for rendering.
type Snapshot struct {
	ID            string
	Seq           uint64 // Increases with every state change
	Target        core.Color
	Options       Options
	Feedback      Feedback
	Remaining     time.Duration
	TimeRemaining float64 // Seconds, same value as Remaining
	RoundTime     time.Duration
	Round         int
	Rounds        int
	Score         int
	BestScore     int
	NewBest       bool // Best score was beaten and persisted at game over
	Over          bool
	Correct       int
	Wrong         int
	Timeouts      int
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	remaining := time.Duration(s.ticksLeft) * s.cfg.TickInterval()
	return Snapshot{
		ID:            s.id,
		Seq:           s.seq,
		Target:        s.target,
		Options:       s.options,
		Feedback:      s.feedback,
		Remaining:     remaining,
		TimeRemaining: remaining.Seconds(),
		RoundTime:     s.cfg.RoundTime(),
		Round:         s.round,
		Rounds:        s.cfg.Rounds,
		Score:         s.score,
		BestScore:     s.best,
		NewBest:       s.newBest,
		Over:          s.over,
		Correct:       s.correct,
		Wrong:         s.wrong,
		Timeouts:      s.timeouts,
	}
}
