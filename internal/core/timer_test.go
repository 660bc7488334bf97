package core

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

// countTicks polls the clock once per millisecond for d and returns the tick offsets.
func countTicks(f *fakeClock, c *Clock, d time.Duration, base time.Time) []time.Duration {
	var ticks []time.Duration
	for elapsed := time.Duration(0); elapsed < d; elapsed += time.Millisecond {
		f.advance(time.Millisecond)
		if c.Due() {
			ticks = append(ticks, f.t.Sub(base))
		}
	}
	return ticks
}

func TestClockFiresOncePerInterval(t *testing.T) {
	f := &fakeClock{t: time.Unix(0, 0)}
	base := f.t
	c := NewClock(100*time.Millisecond, f.now)

	ticks := countTicks(f, c, 350*time.Millisecond, base)
	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond}
	if len(ticks) != len(want) {
		t.Fatalf("ticks=%v, expected %v", ticks, want)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Fatalf("ticks=%v, expected %v", ticks, want)
		}
	}
	if c.Due() {
		t.Fatal("Due fired twice for the same instant")
	}
}

func TestClockRearmKeepsSingleCadence(t *testing.T) {
	f := &fakeClock{t: time.Unix(0, 0)}
	base := f.t
	c := NewClock(100*time.Millisecond, f.now)

	f.advance(150 * time.Millisecond)
	if !c.Due() {
		t.Fatal("expected the first tick to be due at 150ms")
	}
	f.advance(30 * time.Millisecond)
	c.SetInterval(50 * time.Millisecond)
	if c.Interval() != 50*time.Millisecond {
		t.Fatalf("Interval()=%v", c.Interval())
	}

	ticks := countTicks(f, c, 220*time.Millisecond, base)
	want := []time.Duration{230 * time.Millisecond, 280 * time.Millisecond, 330 * time.Millisecond, 380 * time.Millisecond}
	if len(ticks) != len(want) {
		t.Fatalf("ticks=%v, expected %v", ticks, want)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Fatalf("ticks=%v, expected %v", ticks, want)
		}
	}
}

func TestClockDropsMissedTicks(t *testing.T) {
	f := &fakeClock{t: time.Unix(0, 0)}
	c := NewClock(10*time.Millisecond, f.now)

	f.advance(95 * time.Millisecond)
	if !c.Due() {
		t.Fatal("expected a tick after a long stall")
	}
	if c.Due() {
		t.Fatal("missed ticks must not be replayed")
	}
	if got := c.Until(); got != 10*time.Millisecond {
		t.Fatalf("Until()=%v, expected 10ms", got)
	}
}

func TestClockInvalidInterval(t *testing.T) {
	f := &fakeClock{t: time.Unix(0, 0)}
	c := NewClock(0, f.now)
	if c.Interval() != time.Millisecond {
		t.Fatalf("Interval()=%v", c.Interval())
	}
}
