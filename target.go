package transit

// Animatable is anything a tween can drive. IsValid is polled every tick;
// once it reports false the tween stops writing and completes with TargetLost.
type Animatable interface {
	IsValid() bool
	ApplySample(s Sample)
}

// Target is an Animatable that also receives transition notifications tagged
// with the transition's mode.
type Target interface {
	Animatable
	OnAnimationStarted(mode TransitionMode)
	OnAnimationCompleted(mode TransitionMode)
}

// TargetName returns a printable name for t, used in log lines and events.
func TargetName(t Animatable) string {
	type named interface{ TargetName() string }
	if n, ok := t.(named); ok {
		return n.TargetName()
	}
	return "<anonymous>"
}
