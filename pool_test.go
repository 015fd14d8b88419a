package chat2pdf

import (
	"runtime"
	"sync"
	"testing"
	"time"
)

func TestNewExporterPoolClampsSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		n        int
		expected int
	}{
		{"positive", 3, 3},
		{"zero", 0, 1},
		{"negative", -5, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewExporterPool(tt.n, WithSettings(DefaultSettings()))
			defer p.Close()
			if got := p.Size(); got != tt.expected {
				t.Errorf("got size %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestPoolAcquireReleaseReuses(t *testing.T) {
	t.Parallel()

	p := NewExporterPool(1, WithSettings(DefaultSettings()))
	defer p.Close()

	first := p.Acquire()
	if first == nil {
		t.Fatal("nil exporter from Acquire")
	}
	p.Release(first)

	second := p.Acquire()
	if second != first {
		t.Error("expected the released exporter to be reused")
	}
	p.Release(second)
}

func TestPoolAcquireBlocksAtCapacity(t *testing.T) {
	t.Parallel()

	p := NewExporterPool(1, WithSettings(DefaultSettings()))
	defer p.Close()

	exp := p.Acquire()

	acquired := make(chan *Exporter)
	go func() {
		acquired <- p.Acquire()
	}()

	select {
	case <-acquired:
		t.Fatal("Acquire returned while the only exporter was held")
	case <-time.After(50 * time.Millisecond):
	}

	p.Release(exp)

	select {
	case got := <-acquired:
		p.Release(got)
	case <-time.After(time.Second):
		t.Fatal("Acquire did not unblock after Release")
	}
}

func TestPoolCreatesDistinctExporters(t *testing.T) {
	t.Parallel()

	p := NewExporterPool(2, WithSettings(DefaultSettings()))
	defer p.Close()

	a := p.Acquire()
	b := p.Acquire()
	if a == b {
		t.Error("expected distinct exporters up to capacity")
	}
	p.Release(a)
	p.Release(b)
}

func TestPoolCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	p := NewExporterPool(2, WithSettings(DefaultSettings()))
	exp := p.Acquire()
	p.Release(exp)

	if err := p.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("second Close must be a no-op, got: %v", err)
	}

	// Release after Close must not panic on the closed channel.
	p.Release(exp)
}

func TestPoolReleaseCloseRace(t *testing.T) {
	t.Parallel()

	// A concurrent Close must never close the channel under a Release.
	for i := 0; i < 100; i++ {
		p := NewExporterPool(1, WithSettings(DefaultSettings()))
		exp := p.Acquire()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			p.Release(exp)
		}()
		go func() {
			defer wg.Done()
			p.Close()
		}()
		wg.Wait()
	}
}

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	if got := ResolvePoolSize(5); got != 5 {
		t.Errorf("explicit workers: got %d, expected 5", got)
	}
	if got := ResolvePoolSize(12); got != 12 {
		t.Errorf("explicit workers bypass the cap: got %d, expected 12", got)
	}

	auto := ResolvePoolSize(0)
	if auto < MinPoolSize || auto > MaxPoolSize {
		t.Errorf("auto size %d outside [%d, %d]", auto, MinPoolSize, MaxPoolSize)
	}

	expected := runtime.GOMAXPROCS(0) / 2
	if expected < MinPoolSize {
		expected = MinPoolSize
	}
	if expected > MaxPoolSize {
		expected = MaxPoolSize
	}
	if auto != expected {
		t.Errorf("auto size: got %d, expected %d", auto, expected)
	}
}
