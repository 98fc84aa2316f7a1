package transit

import (
	"fmt"
	"math"
	"strings"

	"github.com/tanema/gween/ease"
)

// EasingKind selects an easing curve. The zero value is Linear.
type EasingKind uint8

const (
	Linear EasingKind = iota
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInExpo
	EaseOutExpo
	EaseInOutExpo
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseInBounce
	EaseOutBounce
	EaseInOutBounce

	numEasingKinds
)

var easingNames = [numEasingKinds]string{
	"Linear",
	"EaseInQuad", "EaseOutQuad", "EaseInOutQuad",
	"EaseInCubic", "EaseOutCubic", "EaseInOutCubic",
	"EaseInExpo", "EaseOutExpo", "EaseInOutExpo",
	"EaseInSine", "EaseOutSine", "EaseInOutSine",
	"EaseInBounce", "EaseOutBounce", "EaseInOutBounce",
}

// EasingKinds returns every easing kind in declaration order.
func EasingKinds() []EasingKind {
	kinds := make([]EasingKind, numEasingKinds)
	for i := range kinds {
		kinds[i] = EasingKind(i)
	}
	return kinds
}

// Valid reports whether k names one of the defined curves.
func (k EasingKind) Valid() bool {
	return k < numEasingKinds
}

func (k EasingKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("EasingKind(%d)", uint8(k))
	}
	return easingNames[k]
}

// Bounces reports whether k is one of the bounce curves, which are not
// monotonic.
func (k EasingKind) Bounces() bool {
	return k == EaseInBounce || k == EaseOutBounce || k == EaseInOutBounce
}

// ParseEasingKind parses a curve name. Both "EaseInQuad" and "InQuad" are
// accepted, case-insensitively.
func ParseEasingKind(s string) (EasingKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range easingNames {
		full := strings.ToLower(n)
		if name == full || name == strings.TrimPrefix(full, "ease") {
			return EasingKind(i), nil
		}
	}
	return Linear, fmt.Errorf("unknown easing kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k EasingKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid easing kind %d", uint8(k))
	}
	return []byte(easingNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *EasingKind) UnmarshalText(text []byte) error {
	v, err := ParseEasingKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Ease maps time t within duration to curve progress. The result is exactly
// 0 for t <= 0 and exactly 1 for t >= duration, for every kind. Unknown kinds
// and non-positive durations return 0.
func Ease(kind EasingKind, t, duration float64) float64 {
	if duration <= 0 || !kind.Valid() {
		return 0
	}
	if t <= 0 {
		return 0
	}
	if t >= duration {
		return 1
	}
	switch kind {
	case Linear:
		return LinearCurve(t, duration)
	case EaseInQuad:
		return InQuad(t, duration)
	case EaseOutQuad:
		return OutQuad(t, duration)
	case EaseInOutQuad:
		return InOutQuad(t, duration)
	case EaseInCubic:
		return InCubic(t, duration)
	case EaseOutCubic:
		return OutCubic(t, duration)
	case EaseInOutCubic:
		return InOutCubic(t, duration)
	case EaseInExpo:
		return InExpo(t, duration)
	case EaseOutExpo:
		return OutExpo(t, duration)
	case EaseInOutExpo:
		return InOutExpo(t, duration)
	case EaseInSine:
		return InSine(t, duration)
	case EaseOutSine:
		return OutSine(t, duration)
	case EaseInOutSine:
		return InOutSine(t, duration)
	case EaseInBounce:
		return InBounce(t, duration)
	case EaseOutBounce:
		return OutBounce(t, duration)
	case EaseInOutBounce:
		return InOutBounce(t, duration)
	}
	return 0
}

// TweenFunc adapts k to gween's easing signature so gween tweens follow the
// same curves as the driver.
func (k EasingKind) TweenFunc() ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		return b + c*float32(Ease(k, float64(t), float64(d)))
	}
}

// --- Curves ---
//
// Each curve takes time and duration in seconds. They are the classical
// closed forms and are not clamped; use Ease for boundary-exact results.

func LinearCurve(t, d float64) float64 {
	return t / d
}

func InQuad(t, d float64) float64 {
	t /= d
	return t * t
}

func OutQuad(t, d float64) float64 {
	t /= d
	return -t * (t - 2)
}

func InOutQuad(t, d float64) float64 {
	t /= d * 0.5
	if t < 1 {
		return 0.5 * t * t
	}
	t--
	return -0.5 * (t*(t-2) - 1)
}

func InCubic(t, d float64) float64 {
	t /= d
	return t * t * t
}

func OutCubic(t, d float64) float64 {
	t = t/d - 1
	return t*t*t + 1
}

func InOutCubic(t, d float64) float64 {
	t /= d * 0.5
	if t < 1 {
		return 0.5 * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t + 2)
}

// InExpo returns exactly 0 at t == 0; the formula alone gives 2^-10 there.
func InExpo(t, d float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t/d-1))
}

// OutExpo returns exactly 1 at t == d.
func OutExpo(t, d float64) float64 {
	if t == d {
		return 1
	}
	return 1 - math.Pow(2, -10*t/d)
}

func InOutExpo(t, d float64) float64 {
	if t == 0 {
		return 0
	}
	if t == d {
		return 1
	}
	t /= d * 0.5
	if t < 1 {
		return 0.5 * math.Pow(2, 10*(t-1))
	}
	t--
	return 0.5 * (2 - math.Pow(2, -10*t))
}

func InSine(t, d float64) float64 {
	return 1 - math.Cos(t/d*(math.Pi/2))
}

func OutSine(t, d float64) float64 {
	return math.Sin(t / d * (math.Pi / 2))
}

func InOutSine(t, d float64) float64 {
	return -0.5 * (math.Cos(math.Pi*t/d) - 1)
}

func OutBounce(t, d float64) float64 {
	t /= d
	switch {
	case t < 1/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return 7.5625*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return 7.5625*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return 7.5625*t*t + 0.984375
	}
}

// InBounce mirrors OutBounce: InBounce(t, d) == 1 - OutBounce(d-t, d).
func InBounce(t, d float64) float64 {
	return 1 - OutBounce(d-t, d)
}

// InOutBounce runs InBounce over the first half scaled into [0, 0.5] and
// OutBounce over the second half scaled into [0.5, 1].
func InOutBounce(t, d float64) float64 {
	if t < d*0.5 {
		return InBounce(t*2, d) * 0.5
	}
	return OutBounce(t*2-d, d)*0.5 + 0.5
}
