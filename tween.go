package transit

import "math"

// TweenID identifies a registered tween. IDs are never reused by a driver.
type TweenID uint64

// tweenState is the lifecycle of one instance.
type tweenState uint8

const (
	tweenPending tweenState = iota
	tweenRunning
	tweenCompleted
)

// tweenInstance is one running interpolation. The driver owns instances by
// value; callers only ever hold a TweenID.
type tweenInstance struct {
	id       TweenID
	target   Animatable
	channels Channel

	scaleFrom, scaleTo             Vec2
	translationFrom, translationTo Vec2
	opacityFrom, opacityTo         float64

	duration float64
	elapsed  float64
	easing   EasingKind
	onDone   func(CompletionStatus)
	state    tweenState
}

// sample interpolates every driven channel at progress p.
func (tw *tweenInstance) sample(p float64) Sample {
	s := Sample{Channels: tw.channels}
	if tw.channels.Has(ChannelScale) {
		s.Scale = lerpVec2(tw.scaleFrom, tw.scaleTo, p)
	}
	if tw.channels.Has(ChannelTranslation) {
		s.Translation = lerpVec2(tw.translationFrom, tw.translationTo, p)
	}
	if tw.channels.Has(ChannelOpacity) {
		s.Opacity = lerp(tw.opacityFrom, tw.opacityTo, p)
	}
	return s
}

// complete fires the callback once and marks the instance for removal.
func (tw *tweenInstance) complete(status CompletionStatus) {
	if tw.state == tweenCompleted {
		return
	}
	tw.state = tweenCompleted
	if tw.onDone != nil {
		fn := tw.onDone
		tw.onDone = nil
		fn(status)
	}
}

// TweenBuilder configures a tween before Begin registers it with the driver.
// Channels are driven only when one of their From/To setters is called; the
// unset end defaults to the identity value (scale 1, translation 0, opacity 1).
type TweenBuilder struct {
	driver *Driver
	tw     tweenInstance
	begun  bool
}

// Create starts building a tween on target lasting duration seconds.
// Validation is deferred to Begin.
func (d *Driver) Create(target Animatable, duration float64) *TweenBuilder {
	return &TweenBuilder{
		driver: d,
		tw: tweenInstance{
			target:      target,
			duration:    duration,
			scaleFrom:   Vec2One,
			scaleTo:     Vec2One,
			opacityFrom: 1,
			opacityTo:   1,
			easing:      Linear,
			state:       tweenPending,
		},
	}
}

// FromScale sets the starting scale and drives the scale channel.
func (b *TweenBuilder) FromScale(v Vec2) *TweenBuilder {
	b.tw.scaleFrom = v
	b.tw.channels |= ChannelScale
	return b
}

// ToScale sets the ending scale and drives the scale channel.
func (b *TweenBuilder) ToScale(v Vec2) *TweenBuilder {
	b.tw.scaleTo = v
	b.tw.channels |= ChannelScale
	return b
}

// FromTranslation sets the starting translation and drives the translation channel.
func (b *TweenBuilder) FromTranslation(v Vec2) *TweenBuilder {
	b.tw.translationFrom = v
	b.tw.channels |= ChannelTranslation
	return b
}

// ToTranslation sets the ending translation and drives the translation channel.
func (b *TweenBuilder) ToTranslation(v Vec2) *TweenBuilder {
	b.tw.translationTo = v
	b.tw.channels |= ChannelTranslation
	return b
}

// FromOpacity sets the starting opacity and drives the opacity channel.
func (b *TweenBuilder) FromOpacity(v float64) *TweenBuilder {
	b.tw.opacityFrom = v
	b.tw.channels |= ChannelOpacity
	return b
}

// ToOpacity sets the ending opacity and drives the opacity channel.
func (b *TweenBuilder) ToOpacity(v float64) *TweenBuilder {
	b.tw.opacityTo = v
	b.tw.channels |= ChannelOpacity
	return b
}

// Easing sets the curve. Linear by default.
func (b *TweenBuilder) Easing(kind EasingKind) *TweenBuilder {
	b.tw.easing = kind
	return b
}

// OnComplete sets the callback invoked exactly once when the tween finishes
// or its target is lost.
func (b *TweenBuilder) OnComplete(fn func(CompletionStatus)) *TweenBuilder {
	b.tw.onDone = fn
	return b
}

// Begin validates the tween, applies its start sample and registers it with
// the driver. A builder can only be begun once.
func (b *TweenBuilder) Begin() (TweenID, error) {
	if b.begun {
		return 0, ErrAlreadyBegun
	}
	if b.tw.target == nil || !b.tw.target.IsValid() {
		return 0, ErrInvalidTarget
	}
	if math.IsNaN(b.tw.duration) || b.tw.duration <= 0 || math.IsInf(b.tw.duration, 1) {
		return 0, ErrInvalidDuration
	}
	if !b.tw.easing.Valid() {
		return 0, ErrInvalidEasing
	}
	id, err := b.driver.register(b.tw)
	if err != nil {
		return 0, err
	}
	b.begun = true
	return id, nil
}
