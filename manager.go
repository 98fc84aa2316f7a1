package transit

import (
	"fmt"
	"log"
	"weak"
)

// TransitionManager turns transition requests into tweens on a Driver and
// reports their progress back to targets and subscribers.
//
// Every accepted transition notifies OnAnimationStarted before its tween
// starts advancing and OnAnimationCompleted (with the same mode) after its
// final sample. Two paths end without a completion: the target becoming
// invalid mid-tween (EventTargetLost) and a deferred translation whose target
// or manager is gone by the next frame (EventAborted).
type TransitionManager struct {
	driver   *Driver
	presets  *PresetRegistry
	viewport ViewportProvider
	settings *SettingsStore
	logger   *log.Logger
	events   eventBus

	maxLayoutWait int
	closed        bool
}

// NewTransitionManager creates a manager that schedules tweens on driver.
func NewTransitionManager(driver *Driver, cfg Config) *TransitionManager {
	m := &TransitionManager{
		driver:        driver,
		presets:       NewPresetRegistry(),
		viewport:      cfg.Viewport,
		settings:      cfg.Settings,
		logger:        cfg.Logger,
		maxLayoutWait: cfg.layoutWaitFrames(),
	}
	if m.logger == nil {
		m.logger = defaultLogger
	}
	if m.settings == nil {
		m.settings = newMemorySettings(cfg.motion())
	}
	m.events.sink = cfg.Sink
	if len(cfg.Presets) > 0 {
		m.presets.Register(cfg.Presets)
	}
	return m
}

// Driver returns the driver tweens are scheduled on.
func (m *TransitionManager) Driver() *Driver {
	return m.driver
}

// Settings returns the motion settings store.
func (m *TransitionManager) Settings() *SettingsStore {
	return m.settings
}

// ShouldPlayAnimations reports whether transitions animate. When false they
// snap to their end state.
func (m *TransitionManager) ShouldPlayAnimations() bool {
	return m.settings.Settings().AnimationsEnabled
}

// SetViewport replaces the viewport provider.
func (m *TransitionManager) SetViewport(v ViewportProvider) {
	m.viewport = v
}

// Subscribe registers fn for every transition event and returns a function
// that removes it.
func (m *TransitionManager) Subscribe(fn func(TransitionEvent)) (unsubscribe func()) {
	return m.events.subscribe(fn)
}

// SetEventSink sets the optional ECS bridge. Nil removes it.
func (m *TransitionManager) SetEventSink(sink EventSink) {
	m.events.sink = sink
}

// Close detaches the manager. Deferred translations that have not resolved
// yet abort; running tweens still complete on the driver.
func (m *TransitionManager) Close() {
	m.closed = true
}

// --- Presets ---

// RegisterPresets merges presets into the registry; same-named entries are
// replaced.
func (m *TransitionManager) RegisterPresets(presets map[string]TransitionOptions) {
	m.presets.Register(presets)
}

// LoadPresets parses a YAML preset document (see ParsePresets) and registers
// its presets.
func (m *TransitionManager) LoadPresets(data []byte) error {
	presets, err := ParsePresets(data)
	if err != nil {
		return err
	}
	m.presets.Register(presets)
	return nil
}

// Preset returns the options registered under name.
func (m *TransitionManager) Preset(name string) (TransitionOptions, bool) {
	return m.presets.Lookup(name)
}

// PresetNames returns the registered preset names, sorted.
func (m *TransitionManager) PresetNames() []string {
	return m.presets.Names()
}

// --- Playback ---

// PlayPresetAnimation plays the preset registered under name. Unknown names
// return ErrUnknownPreset without touching the target.
func (m *TransitionManager) PlayPresetAnimation(target Target, name string, mode TransitionMode) error {
	if target == nil || !target.IsValid() {
		m.logger.Printf("cannot play preset %q: %v", name, ErrInvalidTarget)
		return ErrInvalidTarget
	}
	opts, ok := m.presets.Lookup(name)
	if !ok {
		m.logger.Printf("animation preset %q not found", name)
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return m.play(target, opts, mode, name)
}

// PlayTransition plays opts on target. Invalid targets and options are
// rejected before anything is notified or scheduled.
func (m *TransitionManager) PlayTransition(target Target, opts TransitionOptions, mode TransitionMode) error {
	return m.play(target, opts, mode, "")
}

// motionGate lets a target opt out of animation individually.
type motionGate interface {
	ShouldPlayAnimations() bool
}

func (m *TransitionManager) play(target Target, opts TransitionOptions, mode TransitionMode, preset string) error {
	if target == nil || !target.IsValid() {
		m.logger.Printf("cannot play transition: %v", ErrInvalidTarget)
		return ErrInvalidTarget
	}
	if err := opts.Validate(); err != nil {
		m.logger.Printf("cannot play transition for %s: %v", TargetName(target), err)
		return err
	}
	if m.closed || m.driver.Closed() {
		return ErrDriverClosed
	}

	ev := TransitionEvent{
		Mode:   mode,
		Kind:   opts.Kind,
		Target: target,
		Name:   TargetName(target),
		Preset: preset,
	}
	tracef(m.logger, "playing %s %s for %s (easing %s, %.3fs)",
		opts.Kind, mode, ev.Name, opts.Easing, opts.Duration)

	animate := m.ShouldPlayAnimations()
	if g, ok := target.(motionGate); ok && !g.ShouldPlayAnimations() {
		animate = false
	}
	if !animate || opts.Kind == TransitionNone {
		m.started(target, ev)
		if opts.Kind != TransitionNone && target.IsValid() {
			target.ApplySample(m.endSample(opts, mode))
		}
		m.completed(target, ev, Finished)
		return nil
	}

	m.started(target, ev)
	switch opts.Kind {
	case TransitionScale:
		return m.begin(target, ev, opts, opts.ScaleFrom, opts.ScaleTo, Vec2{}, Vec2{})
	case TransitionFade:
		return m.begin(target, ev, opts, Vec2One, Vec2One, Vec2{}, Vec2{})
	case TransitionTranslation:
		return m.deferTranslation(target, ev, opts, 0)
	}
	return nil
}

// deferTranslation resolves a translation at the next frame boundary, after
// layout. The continuation holds the manager weakly; if the manager was
// collected or closed, or the target disposed, it aborts without a tween.
func (m *TransitionManager) deferTranslation(target Target, ev TransitionEvent, opts TransitionOptions, attempt int) error {
	wm := weak.Make(m)
	return m.driver.NextFrame(func() {
		mgr := wm.Value()
		if mgr == nil {
			return
		}
		if mgr.closed || !target.IsValid() {
			mgr.logger.Printf("target or manager no longer valid during translation of %s", ev.Name)
			mgr.emit(ev, EventAborted)
			return
		}
		size, ok := mgr.viewportSize()
		if !ok && opts.UseViewportOrigin {
			if attempt < mgr.maxLayoutWait {
				if err := mgr.deferTranslation(target, ev, opts, attempt+1); err == nil {
					return
				}
			}
			mgr.logger.Printf("viewport unavailable for %s after %d frames; sliding from origin", ev.Name, attempt+1)
		}
		start, end := resolveTranslation(opts, ev.Mode, size)
		_ = mgr.begin(target, ev, opts, Vec2One, Vec2One, start, end)
	})
}

// begin creates the tween for a resolved transition. Translation is driven as
// identity for scale and fade transitions, scale as identity for fades and
// translations, so leftovers from an earlier transition are reset.
func (m *TransitionManager) begin(target Target, ev TransitionEvent, opts TransitionOptions, scaleFrom, scaleTo, trFrom, trTo Vec2) error {
	_, err := m.driver.Create(target, m.settings.Settings().scale(opts.Duration)).
		FromScale(scaleFrom).
		ToScale(scaleTo).
		FromTranslation(trFrom).
		ToTranslation(trTo).
		FromOpacity(opts.FadeFrom).
		ToOpacity(opts.FadeTo).
		Easing(opts.Easing).
		OnComplete(func(status CompletionStatus) {
			m.completed(target, ev, status)
		}).
		Begin()
	if err != nil {
		m.logger.Printf("cannot start tween for %s: %v", ev.Name, err)
		m.emit(ev, EventAborted)
	}
	return err
}

// endSample is the state a transition would finish in, used when animations
// are off.
func (m *TransitionManager) endSample(opts TransitionOptions, mode TransitionMode) Sample {
	s := Sample{
		Channels: ChannelAll,
		Scale:    Vec2One,
		Opacity:  opts.FadeTo,
	}
	switch opts.Kind {
	case TransitionScale:
		s.Scale = opts.ScaleTo
	case TransitionTranslation:
		size, _ := m.viewportSize()
		_, s.Translation = resolveTranslation(opts, mode, size)
	}
	return s
}

func (m *TransitionManager) viewportSize() (Vec2, bool) {
	if m.viewport == nil {
		return Vec2{}, false
	}
	return m.viewport.Viewport()
}

func (m *TransitionManager) started(target Target, ev TransitionEvent) {
	target.OnAnimationStarted(ev.Mode)
	m.emit(ev, EventStarted)
}

func (m *TransitionManager) completed(target Target, ev TransitionEvent, status CompletionStatus) {
	if status == TargetLost || !target.IsValid() {
		m.logger.Printf("target %s lost before %s transition completed", ev.Name, ev.Mode)
		m.emit(ev, EventTargetLost)
		return
	}
	target.OnAnimationCompleted(ev.Mode)
	tracef(m.logger, "completed %s %s for %s", ev.Kind, ev.Mode, ev.Name)
	m.emit(ev, EventCompleted)
}

func (m *TransitionManager) emit(ev TransitionEvent, typ EventType) {
	ev.Type = typ
	m.events.emit(ev)
}
