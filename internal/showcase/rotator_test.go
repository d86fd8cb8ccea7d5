package showcase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeTicker struct {
	ch      chan time.Time
	stopped chan struct{}
	once    sync.Once
}

func newFakeTicker() *fakeTicker {
	return &fakeTicker{ch: make(chan time.Time), stopped: make(chan struct{})}
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { f.once.Do(func() { close(f.stopped) }) }

func withFake(r *Rotator) *fakeTicker {
	ft := newFakeTicker()
	r.NewTicker = func(time.Duration) Ticker { return ft }
	return ft
}

func TestAdvanceCycles(t *testing.T) {
	for _, n := range []int{1, 2, 7} {
		r := New(n, 0)
		for i := 1; i <= 3*n; i++ {
			got := r.Advance()
			assert.Equal(t, i%n, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.Less(t, got, n)
		}
	}
}

func TestNextWraps(t *testing.T) {
	r := New(7, 0)
	for i := 0; i < 6; i++ {
		r.Advance()
	}
	assert.Equal(t, 6, r.Index())
	assert.Equal(t, 0, r.Next())
}

func TestEmptyRotatorIsInert(t *testing.T) {
	r := New(0, 0)
	assert.Equal(t, 0, r.Advance())
	assert.Equal(t, 0, r.Next())
}

func TestStartTicksInOrder(t *testing.T) {
	r := New(3, time.Millisecond)
	ft := withFake(r)

	got := make(chan int, 10)
	timer := r.Start(func(i int) { got <- i })

	for i := 0; i < 4; i++ {
		ft.ch <- time.Now()
	}
	timer.Stop()
	close(got)

	var seq []int
	for i := range got {
		seq = append(seq, i)
	}
	assert.Equal(t, []int{1, 2, 0, 1}, seq)
}

func TestStopPreventsFurtherTicks(t *testing.T) {
	r := New(7, time.Millisecond)
	ft := withFake(r)

	var mu sync.Mutex
	calls := 0
	timer := r.Start(func(int) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	ft.ch <- time.Now()
	timer.Stop()
	timer.Stop()

	select {
	case <-ft.stopped:
	default:
		t.Fatal("ticker not stopped")
	}

	// Nobody is receiving any more.
	select {
	case ft.ch <- time.Now():
		t.Fatal("tick delivered after Stop")
	case <-time.After(20 * time.Millisecond):
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, r.Index())
}

func TestRunReturnsOnCancel(t *testing.T) {
	r := New(7, time.Millisecond)
	withFake(r)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, nil)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow(t, "Run did not return after cancel")
	}
}

func TestRealTicker(t *testing.T) {
	r := New(2, 5*time.Millisecond)
	got := make(chan int, 1)
	timer := r.Start(func(i int) {
		select {
		case got <- i:
		default:
		}
	})
	defer timer.Stop()

	select {
	case i := <-got:
		assert.Equal(t, 1, i)
	case <-time.After(time.Second):
		t.Fatal("no tick")
	}
}
