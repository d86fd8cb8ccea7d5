package page

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/niranjandahal/portfolio/internal/assets"
	"github.com/niranjandahal/portfolio/internal/content"
	"github.com/niranjandahal/portfolio/internal/motion"
	"github.com/niranjandahal/portfolio/internal/showcase"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeTicker struct {
	ch   chan time.Time
	once sync.Once
	stop chan struct{}
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { f.once.Do(func() { close(f.stop) }) }

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newPage(t *testing.T, prod bool) (*Page, *fakeTicker) {
	t.Helper()
	c, err := content.Default()
	require.NoError(t, err)
	p := New(c, Options{Assets: assets.New(prod, assets.DefaultBase), ViewportHeight: 1000})
	ft := &fakeTicker{ch: make(chan time.Time), stop: make(chan struct{})}
	p.Hero.Rotator().NewTicker = func(time.Duration) showcase.Ticker { return ft }
	return p, ft
}

func mounted(t *testing.T) (*Page, *fakeTicker) {
	t.Helper()
	p, ft := newPage(t, false)
	p.Mount(epoch)
	t.Cleanup(p.Unmount)
	return p, ft
}

func TestMountRegistersEverySection(t *testing.T) {
	p, _ := mounted(t)
	assert.True(t, p.Mounted())
	// Page scope plus one per section.
	assert.Equal(t, len(p.sections)+1, p.Motion.Scopes())
	assert.True(t, p.Animating())
}

func TestUnmountLeavesNothingBehind(t *testing.T) {
	p, ft := newPage(t, false)
	p.Mount(epoch)
	p.Layout(1000, map[string]motion.Box{
		HeroID:     {Top: 0, Height: 1000},
		ProjectsID: {Top: 1000, Height: 1500},
	}, epoch)
	p.Scroll(400, epoch.Add(16*time.Millisecond))
	require.True(t, p.OpenProject(2))
	require.True(t, p.ScrollLocked())

	p.Unmount()

	assert.False(t, p.Mounted())
	assert.Equal(t, 0, p.Motion.Scopes())
	assert.Equal(t, 0, p.Motion.Elements())
	assert.False(t, p.ScrollLocked())
	assert.False(t, p.Projects.Gallery.IsOpen())
	select {
	case <-ft.stop:
	default:
		t.Fatal("showcase ticker was not stopped")
	}
	select {
	case <-p.Done():
	default:
		t.Fatal("done not closed")
	}
}

func TestEventsAfterUnmountAreIgnored(t *testing.T) {
	p, _ := newPage(t, false)
	p.Mount(epoch)
	p.Unmount()

	now := epoch.Add(time.Second)
	p.Scroll(5000, now)
	p.Layout(800, map[string]motion.Box{HeroID: {Height: 900}}, now)
	assert.Nil(t, p.Frame(now))
	assert.False(t, p.OpenProject(0))
	assert.False(t, p.ScrollLocked())
	assert.Equal(t, 0, p.NextTestimonial())
	assert.Equal(t, 0, p.PrevTestimonial())
	assert.False(t, p.JumpTestimonial(3))
	assert.False(t, p.ToggleMenu(now))
	assert.False(t, p.Nav.Scrolled())
	_, ok := p.Follow("#contact")
	assert.False(t, ok)
	assert.Equal(t, 0, p.Motion.Elements())

	// Unmount and Mount after teardown stay no-ops.
	p.Unmount()
	p.Mount(now)
	assert.False(t, p.Mounted())
	assert.Equal(t, 0, p.Motion.Scopes())
}

func TestShowcaseRotatesOnTick(t *testing.T) {
	p, ft := mounted(t)
	n := len(p.Hero.Items)
	require.Equal(t, 7, n)

	for i := 1; i <= n; i++ {
		ft.ch <- epoch
		select {
		case got := <-p.Hero.Updates():
			assert.Equal(t, i%n, got)
		case <-time.After(time.Second):
			t.Fatal("no showcase update")
		}
		assert.Equal(t, (i+1)%n, p.Hero.Secondary())
	}
}

func TestModalHoldsScrollLock(t *testing.T) {
	p, _ := mounted(t)

	require.True(t, p.OpenProject(0))
	assert.True(t, p.ScrollLocked())
	require.True(t, p.OpenProject(4))
	assert.True(t, p.ScrollLocked())
	assert.Equal(t, 4, p.Projects.Gallery.SelectedIndex())

	// Scroll samples are dropped while locked.
	p.Scroll(300, epoch)
	assert.Equal(t, 0.0, p.Motion.ScrollY())

	p.CloseProject()
	assert.False(t, p.ScrollLocked())
	assert.False(t, p.OpenProject(99))
	assert.False(t, p.ScrollLocked())
}

func TestTestimonialCarouselWraps(t *testing.T) {
	p, _ := mounted(t)
	require.Len(t, p.Testimonials.Items, 5)

	assert.Equal(t, 4, p.PrevTestimonial())
	assert.Equal(t, 0, p.NextTestimonial())
	assert.Equal(t, 1, p.NextTestimonial())
	assert.True(t, p.JumpTestimonial(3))
	assert.False(t, p.JumpTestimonial(5))
	active, ok := p.Testimonials.Active()
	require.True(t, ok)
	assert.Equal(t, p.Testimonials.Items[3].Name, active.Name)
}

func TestScrollDrivesNavAndReveals(t *testing.T) {
	p, _ := mounted(t)
	p.Layout(1000, map[string]motion.Box{
		HeroID:       {Top: 0, Height: 1000},
		ProjectsID:   {Top: 1000, Height: 1500},
		ProjectsGrid: {Top: 1200, Height: 1200},
	}, epoch)

	p.Scroll(40, epoch)
	assert.False(t, p.Nav.Scrolled())
	assert.False(t, p.Motion.Entered(ProjectsGrid))

	// The grid reveals at 1200 - 0.7*1000.
	p.Scroll(500, epoch.Add(16*time.Millisecond))
	assert.True(t, p.Nav.Scrolled())
	assert.True(t, p.Motion.Entered(ProjectsGrid))

	var frame map[string]motion.PropertySet
	for now := epoch; now.Before(epoch.Add(3 * time.Second)); now = now.Add(maxFrameStep) {
		frame = p.Frame(now)
	}
	for i := range p.Projects.Gallery.Projects() {
		assert.InDelta(t, 1, frame[ElementID(ProjectCard, i)][motion.Opacity], 1e-9)
	}
	// Hero parallax at half progress.
	assert.InDelta(t, -50, frame[HeroHeadline][motion.Y], 1e-9)
}

func TestFrameStepIsCapped(t *testing.T) {
	p, _ := mounted(t)
	frame := p.Frame(epoch.Add(time.Hour))
	// The headline word reveal starts at 400ms, so one capped step leaves
	// it hidden.
	assert.InDelta(t, 0, frame[ElementID(HeroWord, 0)][motion.Opacity], 1e-9)
}

func TestMenuToggleReplaysEntrance(t *testing.T) {
	p, _ := mounted(t)
	item := ElementID(MobileMenuItem, 0)

	assert.True(t, p.ToggleMenu(epoch))
	frame := p.Frame(epoch.Add(200 * time.Millisecond))
	assert.Greater(t, frame[item][motion.Opacity], 0.0)

	assert.False(t, p.ToggleMenu(epoch.Add(200*time.Millisecond)))
	target, ok := p.Follow("#services")
	require.True(t, ok)
	assert.Equal(t, "#services", target)
	assert.False(t, p.Nav.MenuOpen())

	_, ok = p.Follow("#blog")
	assert.False(t, ok)
}

func TestViewResolvesAssetsInProduction(t *testing.T) {
	p, _ := newPage(t, true)
	p.Mount(epoch)
	defer p.Unmount()
	require.True(t, p.OpenProject(1))

	v := p.View()
	assert.Equal(t, "/portfolio", v.Root)
	assert.Equal(t, "/portfolio/logo.png", v.Asset("/logo.png"))
	require.NotNil(t, v.Modal)
	assert.Equal(t, 1, v.Modal.Index)
	assert.Equal(t, "/portfolio"+p.Content.Projects[1].Image, v.Modal.Src)
	assert.Equal(t, v.Showcase[1].Image, v.Secondary.Image)
	assert.True(t, v.Locked)
	require.NotNil(t, v.Active)
	assert.Equal(t, 0, v.Active.Index)
	assert.NotEmpty(t, v.Style(ElementID(HeroWord, 0)))
}

func TestViewInDevelopment(t *testing.T) {
	p, _ := newPage(t, false)
	v := p.View()
	assert.Equal(t, "", v.Root)
	assert.Equal(t, "/logo.png", v.Asset("/logo.png"))
	assert.Nil(t, v.Modal)
	assert.Empty(t, v.Styles)
}
