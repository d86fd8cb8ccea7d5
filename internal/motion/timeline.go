package motion

import "time"

// Tween animates the properties of one element from one set of values to
// another.
type Tween struct {
	Target   string
	From     PropertySet
	To       PropertySet
	Duration time.Duration
	// Delay is the tween's start offset within its timeline.
	Delay time.Duration
	Ease  Ease
}

func (tw Tween) end() time.Duration { return tw.Delay + tw.Duration }

// at returns the tween's values at timeline position pos.
func (tw Tween) at(pos time.Duration) PropertySet {
	var p float64
	switch {
	case pos <= tw.Delay:
		p = 0
	case tw.Duration <= 0 || pos >= tw.end():
		p = 1
	default:
		p = float64(pos-tw.Delay) / float64(tw.Duration)
	}
	ease := tw.Ease
	if ease == nil {
		ease = Linear
	}
	e := ease(p)

	out := make(PropertySet, len(tw.To))
	for k, to := range tw.To {
		from, ok := tw.From[k]
		if !ok {
			from = to
		}
		out[k] = from + (to-from)*e
	}
	return out
}

// Stagger applies the same transition to each target, delaying each by step
// more than the last, starting at offset.
func Stagger(targets []string, from, to PropertySet, d time.Duration, offset, step time.Duration, ease Ease) []Tween {
	tweens := make([]Tween, len(targets))
	for i, t := range targets {
		tweens[i] = Tween{
			Target:   t,
			From:     from,
			To:       to,
			Duration: d,
			Delay:    offset + time.Duration(i)*step,
			Ease:     ease,
		}
	}
	return tweens
}

// Direction of timeline playback.
type Direction int

const (
	Paused Direction = iota
	Forward
	Backward
)

// Timeline is a group of tweens sharing one playhead. Values are a function
// of the playhead alone, so reversing retraces the forward path exactly.
type Timeline struct {
	tweens   []Tween
	total    time.Duration
	playhead time.Duration
	dir      Direction
}

// NewTimeline builds a paused timeline at position zero.
func NewTimeline(tweens ...Tween) *Timeline {
	tl := &Timeline{}
	tl.Add(tweens...)
	return tl
}

// Add appends tweens to the timeline.
func (tl *Timeline) Add(tweens ...Tween) {
	for _, tw := range tweens {
		tl.tweens = append(tl.tweens, tw)
		if e := tw.end(); e > tl.total {
			tl.total = e
		}
	}
}

// Play runs the timeline forward from the current playhead.
func (tl *Timeline) Play() { tl.dir = Forward }

// Reverse runs the timeline backward from the current playhead.
func (tl *Timeline) Reverse() { tl.dir = Backward }

// Advance moves the playhead by dt in the current direction and reports
// whether it moved.
func (tl *Timeline) Advance(dt time.Duration) bool {
	if dt <= 0 {
		return false
	}
	before := tl.playhead
	switch tl.dir {
	case Forward:
		tl.playhead += dt
		if tl.playhead >= tl.total {
			tl.playhead = tl.total
			tl.dir = Paused
		}
	case Backward:
		tl.playhead -= dt
		if tl.playhead <= 0 {
			tl.playhead = 0
			tl.dir = Paused
		}
	}
	return tl.playhead != before
}

// Seek jumps to pos, clamped to the timeline length.
func (tl *Timeline) Seek(pos time.Duration) {
	tl.playhead = max(0, min(pos, tl.total))
}

// Progress is the playhead as a fraction of the timeline length.
func (tl *Timeline) Progress() float64 {
	if tl.total == 0 {
		return 0
	}
	return float64(tl.playhead) / float64(tl.total)
}

func (tl *Timeline) Duration() time.Duration { return tl.total }

// Active reports whether the timeline is still moving.
func (tl *Timeline) Active() bool { return tl.dir != Paused }

// Targets lists the elements the timeline animates, in tween order.
func (tl *Timeline) Targets() []string {
	seen := make(map[string]bool)
	var out []string
	for _, tw := range tl.tweens {
		if !seen[tw.Target] {
			seen[tw.Target] = true
			out = append(out, tw.Target)
		}
	}
	return out
}

// Values returns the property values of every target at the playhead. When
// several tweens touch the same target and property the later tween wins
// once it has started.
func (tl *Timeline) Values() map[string]PropertySet {
	out := make(map[string]PropertySet)
	for _, tw := range tl.tweens {
		set, ok := out[tw.Target]
		if !ok {
			set = PropertySet{}
			out[tw.Target] = set
		}
		vals := tw.at(tl.playhead)
		for k, v := range vals {
			if _, seen := set[k]; seen && tl.playhead < tw.Delay {
				continue
			}
			set[k] = v
		}
	}
	return out
}
