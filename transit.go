package transit

import "math"

// Vec2 is a 2D vector used for scale factors and translations.
type Vec2 struct {
	X, Y float64
}

// Vec2One is the identity scale.
var Vec2One = Vec2{1, 1}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// lerp interpolates between a and b. Written as a*(1-p) + b*p so that p == 1
// yields b exactly and p == 0 yields a exactly.
func lerp(a, b, p float64) float64 {
	return a*(1-p) + b*p
}

func lerpVec2(a, b Vec2, p float64) Vec2 {
	return Vec2{lerp(a.X, b.X, p), lerp(a.Y, b.Y, p)}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Size returns the rectangle's extents as a vector.
func (r Rect) Size() Vec2 {
	return Vec2{r.Width, r.Height}
}

// Channel identifies one independently interpolated attribute of a tween.
// Values can be combined with bitwise OR.
type Channel uint8

const (
	ChannelScale       Channel = 1 << iota // 2D scale factor
	ChannelTranslation                     // 2D render offset
	ChannelOpacity                         // scalar opacity in [0, 1]
)

// ChannelAll drives every channel.
const ChannelAll = ChannelScale | ChannelTranslation | ChannelOpacity

// Has reports whether c includes every channel in other.
func (c Channel) Has(other Channel) bool {
	return c&other == other
}

// Sample is one interpolated frame of a tween. Only the channels listed in
// Channels carry meaningful values.
type Sample struct {
	Channels    Channel
	Scale       Vec2
	Translation Vec2
	Opacity     float64
}

// TransitionKind selects which channel a transition primarily animates.
type TransitionKind uint8

const (
	TransitionNone        TransitionKind = iota // no animation; completes immediately
	TransitionScale                             // scale from/to, with fade
	TransitionTranslation                       // slide from/to, resolved next frame
	TransitionFade                              // opacity from/to
)

// TranslationOrigin selects the viewport edge a viewport-relative
// translation starts from.
type TranslationOrigin uint8

const (
	OriginNone   TranslationOrigin = iota // start at the resting position
	OriginLeft                            // start one viewport width to the left
	OriginRight                           // start one viewport width to the right
	OriginTop                             // start one viewport height above
	OriginBottom                          // start one viewport height below
)

// TransitionMode is the direction of a transition.
type TransitionMode uint8

const (
	Intro TransitionMode = iota // entrance
	Outro                       // exit
)

// CompletionStatus tells a completion callback how a tween ended.
type CompletionStatus uint8

const (
	Finished   CompletionStatus = iota // reached its end values
	TargetLost                         // the target became invalid first
)

// EventType identifies a kind of transition event.
type EventType uint8

const (
	EventStarted    EventType = iota // fires before a transition's tween starts advancing
	EventCompleted                   // fires after the target was notified of completion
	EventTargetLost                  // fires when the target became invalid mid-tween
	EventAborted                     // fires when a deferred transition found its target gone
)
