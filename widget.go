package transit

// AnimationType selects how a Widget animates when shown or hidden.
type AnimationType uint8

const (
	AnimationNone  AnimationType = iota // show and hide instantly
	AnimationTween                      // play Entrance/Exit through a TransitionManager
)

// AnimationSettings configures a widget's entrance and exit.
type AnimationSettings struct {
	Type     AnimationType     `yaml:"type"`
	Entrance TransitionOptions `yaml:"entrance"`
	Exit     TransitionOptions `yaml:"exit"`
}

// WidgetState tracks where a widget is in its show/hide cycle.
type WidgetState uint8

const (
	WidgetHidden  WidgetState = iota // not shown
	WidgetShowing                    // entrance playing
	WidgetShown                      // entrance finished
	WidgetHiding                     // exit playing
)

// Widget is a Node that shows and hides itself with transitions. Completion
// of the entrance calls OnShown; completion of the exit hides the node, calls
// OnHidden and, with DestroyOnHidden, disposes it.
type Widget struct {
	*Node

	Animation       AnimationSettings
	DestroyOnHidden bool
	// AnimationsDisabled opts this widget out of animation even when the
	// manager plays them.
	AnimationsDisabled bool

	OnShown  func()
	OnHidden func()

	manager *TransitionManager
	state   WidgetState
}

// NewWidget creates a hidden widget whose transitions play on manager.
// A nil manager shows and hides instantly.
func NewWidget(name string, manager *TransitionManager) *Widget {
	n := NewNode(name)
	n.Visible = false
	return &Widget{
		Node:    n,
		manager: manager,
		Animation: AnimationSettings{
			Type:     AnimationTween,
			Entrance: DefaultTransitionOptions(),
			Exit:     DefaultTransitionOptions(),
		},
	}
}

// IsValid reports whether the widget can still be animated. A nil widget is
// invalid.
func (w *Widget) IsValid() bool {
	return w != nil && w.Node.IsValid()
}

// State returns the widget's show/hide state.
func (w *Widget) State() WidgetState {
	return w.state
}

// Show makes the widget visible and plays its entrance.
func (w *Widget) Show() error {
	if !w.IsValid() {
		return ErrInvalidTarget
	}
	w.Visible = true
	w.MarkDirty()
	return w.play(w.Animation.Entrance, Intro)
}

// Hide plays the widget's exit; the node becomes invisible when it completes.
func (w *Widget) Hide() error {
	if !w.IsValid() {
		return ErrInvalidTarget
	}
	return w.play(w.Animation.Exit, Outro)
}

func (w *Widget) play(opts TransitionOptions, mode TransitionMode) error {
	if w.Animation.Type == AnimationNone || w.manager == nil {
		w.OnAnimationStarted(mode)
		w.OnAnimationCompleted(mode)
		return nil
	}
	return w.manager.PlayTransition(w, opts, mode)
}

// ShouldPlayAnimations implements the per-target opt-out consulted by the
// manager.
func (w *Widget) ShouldPlayAnimations() bool {
	return !w.AnimationsDisabled
}

// OnAnimationStarted records the transition direction and forwards to the
// node callback.
func (w *Widget) OnAnimationStarted(mode TransitionMode) {
	if mode == Intro {
		w.state = WidgetShowing
	} else {
		w.state = WidgetHiding
	}
	w.Node.OnAnimationStarted(mode)
}

// OnAnimationCompleted finishes the show or hide. A completion whose mode no
// longer matches the widget's state belongs to a superseded transition and
// only reaches the node callback.
func (w *Widget) OnAnimationCompleted(mode TransitionMode) {
	w.Node.OnAnimationCompleted(mode)
	switch {
	case mode == Intro && w.state == WidgetShowing:
		w.state = WidgetShown
		if w.OnShown != nil {
			w.OnShown()
		}
	case mode == Outro && w.state == WidgetHiding:
		w.state = WidgetHidden
		w.Visible = false
		w.MarkDirty()
		if w.OnHidden != nil {
			w.OnHidden()
		}
		if w.DestroyOnHidden {
			w.Dispose()
		}
	}
}
