package clock

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestManualFiresOncePerPeriod(t *testing.T) {
	m := NewManual()
	count := 0
	m.Every(100*time.Millisecond, func() { count++ })

	m.Advance(99 * time.Millisecond)
	if count != 0 {
		t.Fatalf("task fired early: count=%d", count)
	}

	m.Advance(1 * time.Millisecond)
	if count != 1 {
		t.Fatalf("expected 1 firing at 100ms, got %d", count)
	}

	m.Advance(time.Second)
	if count != 11 {
		t.Errorf("expected 11 firings at 1.1s, got %d", count)
	}
	if m.Now() != 1100*time.Millisecond {
		t.Errorf("Now() = %v, expected 1.1s", m.Now())
	}
}

func TestManualStop(t *testing.T) {
	m := NewManual()
	count := 0
	task := m.Every(10*time.Millisecond, func() { count++ })

	m.Advance(30 * time.Millisecond)
	task.Stop()
	task.Stop() // idempotent
	m.Advance(time.Second)

	if count != 3 {
		t.Errorf("expected 3 firings before stop, got %d", count)
	}
	if m.Active() != 0 {
		t.Errorf("Active() = %d after stop, expected 0", m.Active())
	}
}

func TestManualReentrantReschedule(t *testing.T) {
	// A task that replaces itself from inside its callback, the way a round
	// change re-arms the countdown.
	m := NewManual()
	var fired []time.Duration
	var task Task
	var arm func()
	arm = func() {
		task = m.Every(50*time.Millisecond, func() {
			fired = append(fired, m.Now())
			task.Stop()
			arm()
		})
	}
	arm()

	m.Advance(200 * time.Millisecond)

	if len(fired) != 4 {
		t.Fatalf("expected 4 firings, got %d (%v)", len(fired), fired)
	}
	for i, at := range fired {
		want := time.Duration(i+1) * 50 * time.Millisecond
		if at != want {
			t.Errorf("firing %d at %v, expected %v", i, at, want)
		}
	}
	if m.Active() != 1 {
		t.Errorf("expected exactly one live task, got %d", m.Active())
	}
}

func TestManualOrdering(t *testing.T) {
	m := NewManual()
	var order []string
	m.Every(30*time.Millisecond, func() { order = append(order, "slow") })
	m.Every(20*time.Millisecond, func() { order = append(order, "fast") })

	m.Advance(60 * time.Millisecond)

	// fast@20, slow@30, fast@40, slow@60 and fast@60 (slow created first)
	expected := []string{"fast", "slow", "fast", "slow", "fast"}
	if len(order) != len(expected) {
		t.Fatalf("order = %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("order = %v, expected %v", order, expected)
		}
	}
}

func TestRealTaskStops(t *testing.T) {
	var count atomic.Int32
	task := NewReal().Every(5*time.Millisecond, func() { count.Add(1) })

	deadline := time.Now().Add(2 * time.Second)
	for count.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if count.Load() < 2 {
		t.Fatal("real task never fired")
	}

	task.Stop()
	time.Sleep(10 * time.Millisecond) // let an in-flight tick finish
	after := count.Load()
	time.Sleep(30 * time.Millisecond)
	if count.Load() != after {
		t.Errorf("task kept firing after Stop: %d -> %d", after, count.Load())
	}
}
