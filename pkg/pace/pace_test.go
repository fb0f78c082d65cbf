package pace

import (
	"context"
	"testing"
	"time"
)

func TestSleeperWaits(t *testing.T) {
	p := NewSleeper(1.0)

	start := time.Now()
	err := p.Wait(context.Background(), 50*time.Millisecond)
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if elapsed < 50*time.Millisecond {
		t.Errorf("Expected at least 50ms of waiting, got %v", elapsed)
	}
}

func TestSleeperScalesDelay(t *testing.T) {
	// Half speed scale on a 200ms delay must return well before 200ms
	p := NewSleeper(0.1)

	start := time.Now()
	err := p.Wait(context.Background(), 200*time.Millisecond)
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if elapsed >= 150*time.Millisecond {
		t.Errorf("Expected scaled-down wait, got %v", elapsed)
	}
}

func TestSleeperZeroScaleSkipsSleep(t *testing.T) {
	p := NewSleeper(0)

	start := time.Now()
	if err := p.Wait(context.Background(), time.Hour); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("Expected instant return at zero scale, waited %v", elapsed)
	}
}

func TestSleeperHonorsCancellation(t *testing.T) {
	p := NewSleeper(1.0)
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := p.Wait(ctx, 10*time.Second)
	elapsed := time.Since(start)

	if err != context.Canceled {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if elapsed >= time.Second {
		t.Errorf("Expected early return on cancel, waited %v", elapsed)
	}
}

func TestSleeperReportsPriorCancellation(t *testing.T) {
	p := NewSleeper(1.0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Wait(ctx, time.Millisecond); err != context.Canceled {
		t.Errorf("Expected context.Canceled before sleeping, got %v", err)
	}
}

func TestImmediateNeverSleeps(t *testing.T) {
	p := Immediate()

	start := time.Now()
	if err := p.Wait(context.Background(), time.Hour); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("Expected instant return, waited %v", elapsed)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Wait(ctx, 0); err != context.Canceled {
		t.Errorf("Expected cancellation to surface, got %v", err)
	}
}

func TestRecorderRemembersDelays(t *testing.T) {
	r := NewRecorder()
	ctx := context.Background()

	r.Wait(ctx, 100*time.Millisecond)
	r.Wait(ctx, 500*time.Millisecond)
	r.Wait(ctx, 100*time.Millisecond)

	if r.Count() != 3 {
		t.Fatalf("Expected 3 recorded waits, got %d", r.Count())
	}

	delays := r.Delays()
	want := []time.Duration{100 * time.Millisecond, 500 * time.Millisecond, 100 * time.Millisecond}
	for i, d := range want {
		if delays[i] != d {
			t.Errorf("Expected delay %d to be %v, got %v", i, d, delays[i])
		}
	}
}

func TestRecorderSkipsCancelledWaits(t *testing.T) {
	r := NewRecorder()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := r.Wait(ctx, time.Second); err != context.Canceled {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if r.Count() != 0 {
		t.Errorf("Expected no recorded waits after cancellation, got %d", r.Count())
	}
}
