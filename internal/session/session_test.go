package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/niranjandahal/portfolio/internal/assets"
	"github.com/niranjandahal/portfolio/internal/content"
	"github.com/niranjandahal/portfolio/internal/page"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newStore(t *testing.T, ttl time.Duration) (*Store, *clock) {
	t.Helper()
	c, err := content.Default()
	require.NoError(t, err)
	clk := &clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	st := NewStore(func() *page.Page {
		return page.New(c, page.Options{Assets: assets.New(false, ""), ShowcaseInterval: time.Hour})
	}, ttl, zap.NewNop())
	st.Now = clk.Now
	t.Cleanup(st.Close)
	return st, clk
}

func TestAcquireCreatesAndReuses(t *testing.T) {
	st, _ := newStore(t, time.Minute)

	s, created := st.Acquire("")
	require.True(t, created)
	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)

	again, created := st.Acquire(s.ID)
	assert.False(t, created)
	assert.Same(t, s, again)

	other, created := st.Acquire("stale-cookie")
	assert.True(t, created)
	assert.NotEqual(t, "stale-cookie", other.ID)
	assert.Equal(t, 2, st.Len())

	s.Do(func(p *page.Page) { assert.True(t, p.Mounted()) })
}

func TestReapUnmountsIdlePages(t *testing.T) {
	st, clk := newStore(t, time.Minute)

	idle, _ := st.Acquire("")
	clk.now = clk.now.Add(40 * time.Second)
	busy, _ := st.Acquire("")
	idle.Do(func(p *page.Page) { require.True(t, p.OpenProject(0)) })

	clk.now = clk.now.Add(30 * time.Second)
	assert.Equal(t, 1, st.Reap())

	_, ok := st.Get(idle.ID)
	assert.False(t, ok)
	select {
	case <-idle.Done():
	default:
		t.Fatal("reaped page still mounted")
	}
	idle.Do(func(p *page.Page) {
		assert.False(t, p.ScrollLocked())
		assert.Equal(t, 0, p.Motion.Scopes())
	})

	_, ok = st.Get(busy.ID)
	assert.True(t, ok)
}

func TestGetKeepsSessionAlive(t *testing.T) {
	st, clk := newStore(t, time.Minute)
	s, _ := st.Acquire("")
	for i := 0; i < 5; i++ {
		clk.now = clk.now.Add(50 * time.Second)
		_, ok := st.Get(s.ID)
		require.True(t, ok)
		assert.Equal(t, 0, st.Reap())
	}
}

func TestRunClosesOnCancel(t *testing.T) {
	st, _ := newStore(t, time.Minute)
	s, _ := st.Acquire("")

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- st.Run(ctx, time.Millisecond) }()
	cancel()

	require.NoError(t, <-errc)
	assert.Equal(t, 0, st.Len())
	select {
	case <-s.Done():
	default:
		t.Fatal("page not unmounted on shutdown")
	}
}

func TestAcquireEvictsLeastRecentlySeen(t *testing.T) {
	st, clk := newStore(t, time.Hour)
	st.Max = 3

	var live []*Session
	for i := 0; i < 3; i++ {
		s, _ := st.Acquire("")
		live = append(live, s)
		clk.now = clk.now.Add(time.Second)
	}
	// Touch the first so the second becomes the oldest.
	_, ok := st.Get(live[0].ID)
	require.True(t, ok)
	clk.now = clk.now.Add(time.Second)

	fresh, created := st.Acquire("")
	require.True(t, created)
	assert.Equal(t, 3, st.Len())

	_, ok = st.Get(live[1].ID)
	assert.False(t, ok)
	select {
	case <-live[1].Done():
	default:
		t.Fatal("evicted page still mounted")
	}
	for _, s := range []*Session{live[0], live[2], fresh} {
		_, ok := st.Get(s.ID)
		assert.True(t, ok)
	}

	for i := 0; i < 50; i++ {
		st.Acquire("")
	}
	assert.Equal(t, 3, st.Len())
}
