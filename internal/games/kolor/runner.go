package kolor

import (
	"sync"

	"github.com/vovakirdan/kolor/internal/clock"
	"github.com/vovakirdan/kolor/internal/core"
)

// Runner owns a session's countdown. It schedules Tick on the session's tick
// interval, replaces the scheduled task whenever the round changes, cancels
// it at game over, and serializes ticks against guesses.
type Runner struct {
	mu      sync.Mutex
	session *Session
	sched   clock.Scheduler
	onTick  func(Snapshot)

	task    clock.Task
	gen     uint64 // Identifies the live task; stale firings are dropped
	round   int    // Round the live task was armed for
	running bool
}

// NewRunner wraps session. onTick, if non-nil, receives a snapshot after every
// tick that changed state. It is called without the runner's lock held, from
// the scheduler's goroutine.
func NewRunner(session *Session, sched clock.Scheduler, onTick func(Snapshot)) *Runner {
	return &Runner{
		session: session,
		sched:   sched,
		onTick:  onTick,
	}
}

// Start arms the countdown. Calling Start on a running runner does nothing.
func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return
	}
	r.running = true
	r.armLocked()
}

// Stop cancels the countdown. No tick reaches the session afterwards.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.running = false
	r.disarmLocked()
}

// Running reports whether a countdown task is live.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.task != nil
}

// Guess forwards a picked color to the session and returns the new state.
func (r *Runner) Guess(c core.Color) Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session.HandleGuess(c)
	r.syncLocked()
	return r.session.Snapshot()
}

// GuessIndex forwards a pick by option position.
func (r *Runner) GuessIndex(i int) Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session.HandleGuessIndex(i)
	r.syncLocked()
	return r.session.Snapshot()
}

// Snapshot returns the current session state.
func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Snapshot()
}

func (r *Runner) tick(gen uint64) {
	r.mu.Lock()
	// The round may have ended between the firing and acquiring the lock
	if !r.running || gen != r.gen {
		r.mu.Unlock()
		return
	}
	if !r.session.Tick() {
		r.mu.Unlock()
		return
	}
	r.syncLocked()
	snap := r.session.Snapshot()
	r.mu.Unlock()

	if r.onTick != nil {
		r.onTick(snap)
	}
}

// syncLocked restarts the countdown for a new round, or stops it at game over.
func (r *Runner) syncLocked() {
	if !r.running {
		return
	}
	switch {
	case r.session.Over():
		r.disarmLocked()
	case r.session.Round() != r.round:
		r.armLocked()
	}
}

func (r *Runner) armLocked() {
	r.disarmLocked()
	if r.session.Over() {
		return
	}

	gen := r.gen
	r.round = r.session.Round()
	r.task = r.sched.Every(r.session.Config().TickInterval(), func() { r.tick(gen) })
}

func (r *Runner) disarmLocked() {
	if r.task != nil {
		r.task.Stop()
		r.task = nil
	}
	r.gen++
}
