package retry

import (
	"math/rand"
	"testing"
	"time"
)

func newTestTracker(maxErrors int) *Tracker {
	return NewTrackerWithRand(Config{
		MaxErrors:    maxErrors,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     5 * time.Second,
	}, rand.New(rand.NewSource(1)))
}

func TestNewTracker_Defaults(t *testing.T) {
	tr := NewTracker(Config{})
	if tr.MaxErrors() != DefaultMaxErrors {
		t.Fatalf("MaxErrors: want %d, got %d", DefaultMaxErrors, tr.MaxErrors())
	}
	if tr.initialDelay != DefaultInitialDelay || tr.maxDelay != DefaultMaxDelay {
		t.Fatalf("delays: want %v/%v, got %v/%v", DefaultInitialDelay, DefaultMaxDelay, tr.initialDelay, tr.maxDelay)
	}
	if tr.Tries() != 0 || tr.Exhausted() {
		t.Fatalf("fresh tracker must be at zero")
	}
	if tr.Delay() != 0 {
		t.Fatalf("no delay expected before the first failure")
	}
}

func TestTracker_ExhaustedAtMax(t *testing.T) {
	tr := newTestTracker(3)
	for i := 1; i <= 3; i++ {
		tr.Increment()
		if got, want := tr.Exhausted(), i >= 3; got != want {
			t.Fatalf("after %d failures Exhausted=%v, want %v", i, got, want)
		}
	}
	tr.Reset()
	if tr.Tries() != 0 || tr.Exhausted() {
		t.Fatalf("Reset must bring the tracker back to zero")
	}
}

func TestTracker_BaseIsExponentialAndCapped(t *testing.T) {
	tr := newTestTracker(100)
	want := []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
		1600 * time.Millisecond,
		3200 * time.Millisecond,
		5 * time.Second,
		5 * time.Second,
	}
	for i, w := range want {
		tr.Increment()
		if got := tr.Base(); got != w {
			t.Fatalf("try %d: base want %v, got %v", i+1, w, got)
		}
	}
	// большие значения не переполняют int64
	for i := 0; i < 80; i++ {
		tr.Increment()
	}
	if got := tr.Base(); got != 5*time.Second {
		t.Fatalf("base after many tries: want cap, got %v", got)
	}
}

func TestTracker_DelayWithinJitterBand(t *testing.T) {
	tr := newTestTracker(100)
	prevBase := time.Duration(0)
	for i := 0; i < 10; i++ {
		tr.Increment()
		base := tr.Base()
		if base < prevBase {
			t.Fatalf("base must be non-decreasing: %v after %v", base, prevBase)
		}
		prevBase = base
		for j := 0; j < 50; j++ {
			d := tr.Delay()
			if d < base/2 || d > base {
				t.Fatalf("try %d: delay %v outside [%v, %v]", i+1, d, base/2, base)
			}
		}
	}
}

func TestTracker_MaxBelowInitial(t *testing.T) {
	tr := NewTrackerWithRand(Config{InitialDelay: time.Second, MaxDelay: time.Millisecond}, rand.New(rand.NewSource(1)))
	tr.Increment()
	if got := tr.Base(); got != time.Second {
		t.Fatalf("max below initial is raised to initial, got %v", got)
	}
}
