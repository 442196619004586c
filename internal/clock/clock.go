// Package clock provides repeating scheduled tasks with explicit
// start/stop semantics. Real drives tasks from wall time; Manual lets tests
// advance time deterministically.
package clock

import (
	"sync"
	"time"
)

// Task is a running repeating task.
type Task interface {
	// Stop cancels the task. Safe to call more than once.
	Stop()
}

// Scheduler starts repeating tasks.
type Scheduler interface {
	// Every calls fn once per period until the returned task is stopped.
	Every(period time.Duration, fn func()) Task
}

// Real schedules tasks on wall-clock time using time.Ticker.
type Real struct{}

// NewReal returns a wall-clock scheduler.
func NewReal() Real {
	return Real{}
}

// Every implements Scheduler. fn runs on a dedicated goroutine.
func (Real) Every(period time.Duration, fn func()) Task {
	t := &realTask{
		ticker: time.NewTicker(period),
		done:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

type realTask struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *realTask) run(fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			// Stop may have raced with the tick
			select {
			case <-t.done:
				return
			default:
			}
			fn()
		}
	}
}

func (t *realTask) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}
