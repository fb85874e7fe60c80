package viewport

import "testing"

func TestDefaultIsNarrow(t *testing.T) {
	s := NewSignal(DefaultConfig())
	if s.Wide() {
		t.Error("Expected new signal to read narrow")
	}
}

func TestInactiveSignalIgnoresWidth(t *testing.T) {
	s := NewSignal(DefaultConfig())
	s.Set(1024)
	if s.Wide() {
		t.Error("Expected predicate to stay false before activation even with a wide width recorded")
	}

	s.Activate()
	if !s.Wide() {
		t.Error("Expected predicate to resolve true after activation with width 1024")
	}
}

func TestSubscribeImmediateEvaluation(t *testing.T) {
	s := NewSignal(DefaultConfig())
	s.Activate()
	s.Set(800)

	var got []bool
	cancel := s.Subscribe(func(wide bool) { got = append(got, wide) })
	defer cancel()

	if len(got) != 1 || !got[0] {
		t.Fatalf("Expected immediate evaluation with current value true, got %v", got)
	}
}

func TestNotifyOnlyOnBoundaryCrossing(t *testing.T) {
	s := NewSignal(DefaultConfig())
	s.Activate()

	var got []bool
	cancel := s.Subscribe(func(wide bool) { got = append(got, wide) })
	defer cancel()

	s.Set(200) // narrow, no crossing
	s.Set(599) // still narrow
	s.Set(600) // crossing: true
	s.Set(900) // still wide
	s.Set(100) // crossing: false

	want := []bool{false, true, false}
	if len(got) != len(want) {
		t.Fatalf("Expected %d notifications, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Notification %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestActivationNotifiesWhenPredicateFlips(t *testing.T) {
	s := NewSignal(DefaultConfig())
	s.Set(700)

	var got []bool
	cancel := s.Subscribe(func(wide bool) { got = append(got, wide) })
	defer cancel()

	// Activation flips the predicate from defaulted-false to true.
	s.Activate()

	want := []bool{false, true}
	if len(got) != len(want) {
		t.Fatalf("Expected %d notifications, got %d (%v)", len(want), len(got), got)
	}
	if got[1] != true {
		t.Errorf("Expected activation to notify true, got %v", got)
	}
}

func TestCancelStopsNotifications(t *testing.T) {
	s := NewSignal(DefaultConfig())
	s.Activate()

	calls := 0
	cancel := s.Subscribe(func(bool) { calls++ })
	cancel()
	cancel() // idempotent

	s.Set(800)
	if calls != 1 {
		t.Errorf("Expected only the immediate evaluation call after cancel, got %d", calls)
	}
}

func TestNilSignalDegradesQuietly(t *testing.T) {
	var s *Signal

	if s.Wide() {
		t.Error("Expected nil signal to read narrow")
	}
	s.Activate()
	s.Set(2000)
	if s.Active() || s.Wide() {
		t.Error("Expected nil signal to stay inactive and narrow")
	}

	cancel := s.Subscribe(func(bool) { t.Error("Nil signal must not invoke subscribers") })
	cancel()
}

func TestCustomThreshold(t *testing.T) {
	s := NewSignal(DefaultConfig().WithThreshold(96))
	s.Activate()

	s.Set(95)
	if s.Wide() {
		t.Error("Expected width 95 to be narrow at threshold 96")
	}
	s.Set(96)
	if !s.Wide() {
		t.Error("Expected width 96 to be wide at threshold 96")
	}
}
