package transit

import "math"

// completionEpsilon absorbs float accumulation error so that frame deltas
// summing to the duration (0.1 * 10, 1/60 * 60) complete on that frame
// instead of one frame late.
const completionEpsilon = 1e-9

// Driver owns every active tween and advances them once per frame. It is the
// only place tween state changes. Not safe for concurrent use; call it from
// the game loop.
type Driver struct {
	// TimeScale multiplies every frame delta. 1 by default; 0 pauses.
	TimeScale float64

	active   []tweenInstance
	incoming []tweenInstance // begun while ticking; joins after the tick
	ticking  bool
	tasks    taskQueue
	nextID   TweenID
	frame    uint64
	closed   bool
}

// NewDriver creates an empty driver. Use it rather than a zero Driver, whose
// TimeScale of 0 keeps every tween paused.
func NewDriver() *Driver {
	return &Driver{TimeScale: 1}
}

// register moves a validated instance into the running set and applies its
// start sample so the target never shows a stale frame.
func (d *Driver) register(tw tweenInstance) (TweenID, error) {
	if d.closed {
		return 0, ErrDriverClosed
	}
	d.nextID++
	tw.id = d.nextID
	tw.state = tweenRunning
	tw.target.ApplySample(tw.sample(0))
	if d.ticking {
		d.incoming = append(d.incoming, tw)
	} else {
		d.active = append(d.active, tw)
	}
	return tw.id, nil
}

// Update advances the driver by dt seconds. Deferred tasks queued before this
// call run first; then every running tween is sampled in registration order
// with the same delta. A tween reaching its duration is sampled at exactly
// progress 1, its callback fires, and it is removed within this call.
func (d *Driver) Update(dt float64) {
	if d.closed {
		return
	}
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	if d.TimeScale < 0 {
		dt = 0
	} else {
		dt *= d.TimeScale
	}
	d.frame++

	d.tasks.drain(d.open)
	if d.closed {
		return
	}

	d.ticking = true
	for i := range d.active {
		if d.closed {
			break
		}
		tw := &d.active[i]
		if tw.state != tweenRunning {
			continue
		}
		if !tw.target.IsValid() {
			tw.complete(TargetLost)
			continue
		}
		tw.elapsed += dt
		done := tw.elapsed >= tw.duration-completionEpsilon
		p := 1.0
		if !done {
			p = Ease(tw.easing, tw.elapsed, tw.duration)
		}
		tw.target.ApplySample(tw.sample(p))
		if done {
			tw.complete(Finished)
		}
	}
	d.ticking = false

	if d.closed {
		d.active = nil
		d.incoming = nil
		return
	}
	d.compact()
}

// compact drops completed instances in place and appends tweens begun during
// the tick, preserving registration order.
func (d *Driver) compact() {
	n := 0
	for i := range d.active {
		if d.active[i].state == tweenRunning {
			d.active[n] = d.active[i]
			n++
		}
	}
	for i := n; i < len(d.active); i++ {
		d.active[i] = tweenInstance{}
	}
	d.active = d.active[:n]
	if len(d.incoming) > 0 {
		d.active = append(d.active, d.incoming...)
		for i := range d.incoming {
			d.incoming[i] = tweenInstance{}
		}
		d.incoming = d.incoming[:0]
	}
}

// Len returns the number of running tweens.
func (d *Driver) Len() int {
	n := 0
	for i := range d.active {
		if d.active[i].state == tweenRunning {
			n++
		}
	}
	return n + len(d.incoming)
}

// IsActive reports whether the tween with the given ID is still running.
func (d *Driver) IsActive(id TweenID) bool {
	for i := range d.active {
		if d.active[i].id == id {
			return d.active[i].state == tweenRunning
		}
	}
	for i := range d.incoming {
		if d.incoming[i].id == id {
			return true
		}
	}
	return false
}

// Frame returns the number of Update calls processed so far.
func (d *Driver) Frame() uint64 {
	return d.frame
}

// NextFrame schedules fn to run at the start of the next Update, before any
// tween is sampled. Tasks scheduled from inside a task run one frame later.
func (d *Driver) NextFrame(fn func()) error {
	if d.closed {
		return ErrDriverClosed
	}
	d.tasks.push(fn)
	return nil
}

// Pending returns the number of tasks waiting for the next frame.
func (d *Driver) Pending() int {
	return len(d.tasks.tasks)
}

// Close stops the driver. Pending tasks and running tweens are dropped
// without callbacks; later Begin and NextFrame calls fail with
// ErrDriverClosed.
func (d *Driver) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.tasks.clear()
	if !d.ticking {
		d.active = nil
		d.incoming = nil
	}
}

func (d *Driver) open() bool {
	return !d.closed
}

// Closed reports whether Close has been called.
func (d *Driver) Closed() bool {
	return d.closed
}
