package transit

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultTransitionDuration is the duration of DefaultTransitionOptions.
const DefaultTransitionDuration = 0.5

// TransitionOptions describes one transition. The same schema serves Intro
// and Outro; the mode is supplied when the transition is played.
//
// UseViewportOrigin selects exactly one translation mode: when true the slide
// starts at the viewport edge named by Origin (plus offsets) and ends at rest;
// when false it runs from TranslationFrom to TranslationTo (plus offsets).
type TransitionOptions struct {
	Kind     TransitionKind    `yaml:"kind"`
	Origin   TranslationOrigin `yaml:"origin"`
	Easing   EasingKind        `yaml:"easing"`
	Duration float64           `yaml:"duration"`

	FadeFrom float64 `yaml:"fadeFrom"`
	FadeTo   float64 `yaml:"fadeTo"`

	ScaleFrom Vec2 `yaml:"scaleFrom"`
	ScaleTo   Vec2 `yaml:"scaleTo"`

	UseViewportOrigin     bool `yaml:"useViewportOrigin"`
	TranslationFrom       Vec2 `yaml:"translationFrom"`
	TranslationTo         Vec2 `yaml:"translationTo"`
	TranslationFromOffset Vec2 `yaml:"translationFromOffset"`
	TranslationToOffset   Vec2 `yaml:"translationToOffset"`
}

// DefaultTransitionOptions returns options with no animation, a half-second
// duration, full opacity at both ends, identity scale and viewport-relative
// translation.
func DefaultTransitionOptions() TransitionOptions {
	return TransitionOptions{
		Kind:              TransitionNone,
		Easing:            Linear,
		Duration:          DefaultTransitionDuration,
		FadeFrom:          1,
		FadeTo:            1,
		ScaleFrom:         Vec2One,
		ScaleTo:           Vec2One,
		UseViewportOrigin: true,
	}
}

// UnmarshalYAML decodes on top of DefaultTransitionOptions so omitted keys
// keep their defaults rather than zero values.
func (o *TransitionOptions) UnmarshalYAML(value *yaml.Node) error {
	type plain TransitionOptions
	p := plain(DefaultTransitionOptions())
	if err := value.Decode(&p); err != nil {
		return err
	}
	*o = TransitionOptions(p)
	return nil
}

// FadeOptions is a shorthand for a fade transition from one opacity to another.
func FadeOptions(from, to, duration float64, easing EasingKind) TransitionOptions {
	o := DefaultTransitionOptions()
	o.Kind = TransitionFade
	o.FadeFrom = from
	o.FadeTo = to
	o.Duration = duration
	o.Easing = easing
	return o
}

// ScaleOptions is a shorthand for a scale transition at full opacity.
func ScaleOptions(from, to Vec2, duration float64, easing EasingKind) TransitionOptions {
	o := DefaultTransitionOptions()
	o.Kind = TransitionScale
	o.ScaleFrom = from
	o.ScaleTo = to
	o.Duration = duration
	o.Easing = easing
	return o
}

// SlideOptions is a shorthand for a viewport-relative slide from the given edge.
func SlideOptions(origin TranslationOrigin, duration float64, easing EasingKind) TransitionOptions {
	o := DefaultTransitionOptions()
	o.Kind = TransitionTranslation
	o.Origin = origin
	o.Duration = duration
	o.Easing = easing
	return o
}

// Validate reports the first problem with o, wrapped in ErrInvalidOptions.
// Duration is not checked for TransitionNone, which never creates a tween.
func (o TransitionOptions) Validate() error {
	if o.Kind > TransitionFade {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidOptions, uint8(o.Kind))
	}
	if o.Origin > OriginBottom {
		return fmt.Errorf("%w: unknown origin %d", ErrInvalidOptions, uint8(o.Origin))
	}
	if !o.Easing.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, ErrInvalidEasing)
	}
	if o.Kind != TransitionNone && !(o.Duration > 0 && finite(o.Duration)) {
		return fmt.Errorf("%w: %v (got %v)", ErrInvalidOptions, ErrInvalidDuration, o.Duration)
	}
	for _, v := range []float64{
		o.FadeFrom, o.FadeTo,
		o.ScaleFrom.X, o.ScaleFrom.Y, o.ScaleTo.X, o.ScaleTo.Y,
		o.TranslationFrom.X, o.TranslationFrom.Y, o.TranslationTo.X, o.TranslationTo.Y,
		o.TranslationFromOffset.X, o.TranslationFromOffset.Y,
		o.TranslationToOffset.X, o.TranslationToOffset.Y,
	} {
		if !finite(v) {
			return fmt.Errorf("%w: non-finite value", ErrInvalidOptions)
		}
	}
	return nil
}

// --- Names ---

var transitionKindNames = [...]string{"None", "Scale", "Translation", "Fade"}

func (k TransitionKind) String() string {
	if int(k) < len(transitionKindNames) {
		return transitionKindNames[k]
	}
	return fmt.Sprintf("TransitionKind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k TransitionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *TransitionKind) UnmarshalText(text []byte) error {
	i, err := parseName("transition kind", string(text), transitionKindNames[:])
	if err != nil {
		return err
	}
	*k = TransitionKind(i)
	return nil
}

var originNames = [...]string{"None", "FromLeft", "FromRight", "FromTop", "FromBottom"}

func (o TranslationOrigin) String() string {
	if int(o) < len(originNames) {
		return originNames[o]
	}
	return fmt.Sprintf("TranslationOrigin(%d)", uint8(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o TranslationOrigin) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. "Left" and "FromLeft"
// are both accepted.
func (o *TranslationOrigin) UnmarshalText(text []byte) error {
	s := string(text)
	if !strings.HasPrefix(strings.ToLower(s), "from") && !strings.EqualFold(s, "none") {
		s = "From" + s
	}
	i, err := parseName("translation origin", s, originNames[:])
	if err != nil {
		return err
	}
	*o = TranslationOrigin(i)
	return nil
}

var modeNames = [...]string{"Intro", "Outro"}

func (m TransitionMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("TransitionMode(%d)", uint8(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m TransitionMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *TransitionMode) UnmarshalText(text []byte) error {
	i, err := parseName("transition mode", string(text), modeNames[:])
	if err != nil {
		return err
	}
	*m = TransitionMode(i)
	return nil
}

var eventTypeNames = [...]string{"Started", "Completed", "TargetLost", "Aborted"}

func (e EventType) String() string {
	if int(e) < len(eventTypeNames) {
		return eventTypeNames[e]
	}
	return fmt.Sprintf("EventType(%d)", uint8(e))
}

func parseName(what, s string, names []string) (int, error) {
	s = strings.TrimSpace(s)
	for i, n := range names {
		if strings.EqualFold(s, n) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", what, s)
}
