package clock

import (
	"sync"
	"time"
)

// Manual is a Scheduler whose time only moves when Advance is called.
// Tasks fire synchronously inside Advance, in due-time order, so tests can
// step a session through whole rounds without sleeping.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	m       *Manual
	id      int
	period  time.Duration
	next    time.Duration
	fn      func()
	stopped bool
}

// NewManual returns a manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Every implements Scheduler. The first call happens one period from now.
func (m *Manual) Every(period time.Duration, fn func()) Task {
	if period <= 0 {
		panic("clock: non-positive period")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTask{
		m:      m,
		id:     m.seq,
		period: period,
		next:   m.now + period,
		fn:     fn,
	}
	m.tasks = append(m.tasks, t)
	return t
}

// Now returns the elapsed manual time.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Active returns the number of tasks that have not been stopped.
func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Advance moves time forward by d, firing every task that comes due.
// Tasks may start or stop other tasks from inside their callback.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		t := m.nextDue(target)
		if t == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = t.next
		t.next += t.period
		fn := t.fn
		m.mu.Unlock()

		fn()
	}
}

// nextDue returns the earliest live task due at or before target.
// Ties go to the task created first. Caller holds m.mu.
func (m *Manual) nextDue(target time.Duration) *manualTask {
	var best *manualTask
	for _, t := range m.tasks {
		if t.next > target {
			continue
		}
		if best == nil || t.next < best.next || (t.next == best.next && t.id < best.id) {
			best = t
		}
	}
	return best
}

func (t *manualTask) Stop() {
	m := t.m
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.stopped {
		return
	}
	t.stopped = true
	for i, other := range m.tasks {
		if other == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			break
		}
	}
}
