package realtime

import (
	"testing"
	"time"
)

func TestRoundClock_ExpiredWhenInactive(t *testing.T) {
	var c RoundClock
	now := time.Now().UTC()
	if c.Active() {
		t.Error("zero clock should not be active")
	}
	if !c.Expired(now, time.Minute) {
		t.Error("inactive clock should read as expired")
	}
	if c.Remaining(now, time.Minute) != 0 {
		t.Error("inactive clock should have no time remaining")
	}
}

func TestRoundClock_BeginAndExpiry(t *testing.T) {
	var c RoundClock
	now := time.Now().UTC()
	c.Begin(now)

	if !c.Active() {
		t.Error("clock should be active after Begin")
	}
	if c.Expired(now, time.Minute) {
		t.Error("should not be expired immediately after Begin")
	}
	if c.Expired(now.Add(59*time.Second), time.Minute) {
		t.Error("should not be expired before length elapses")
	}
	if !c.Expired(now.Add(61*time.Second), time.Minute) {
		t.Error("should be expired after length elapses")
	}
}

func TestRoundClock_Remaining(t *testing.T) {
	var c RoundClock
	now := time.Now().UTC()
	c.Begin(now)

	if got := c.Remaining(now.Add(40*time.Second), time.Minute); got != 20*time.Second {
		t.Errorf("Remaining %v, want 20s", got)
	}
	if got := c.Remaining(now.Add(2*time.Minute), time.Minute); got != 0 {
		t.Errorf("Remaining %v, want 0 after expiry", got)
	}
}

func TestRoundClock_Clear(t *testing.T) {
	var c RoundClock
	now := time.Now().UTC()
	c.Begin(now)
	c.Clear()

	if c.Active() {
		t.Error("clock should be inactive after Clear")
	}
	if !c.Expired(now, time.Minute) {
		t.Error("cleared clock should read as expired")
	}
}
