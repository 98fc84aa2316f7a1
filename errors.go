package transit

import "errors"

var (
	// ErrInvalidTarget is returned when a target is nil or no longer valid.
	ErrInvalidTarget = errors.New("transit: invalid target")
	// ErrInvalidDuration is returned for zero, negative, NaN or infinite durations.
	ErrInvalidDuration = errors.New("transit: duration must be positive and finite")
	// ErrInvalidEasing is returned for easing kinds outside the defined set.
	ErrInvalidEasing = errors.New("transit: invalid easing kind")
	// ErrInvalidOptions is returned when TransitionOptions fail validation.
	ErrInvalidOptions = errors.New("transit: invalid transition options")
	// ErrUnknownPreset is returned when a preset name is not registered.
	ErrUnknownPreset = errors.New("transit: unknown preset")
	// ErrAlreadyBegun is returned when Begin is called twice on one builder.
	ErrAlreadyBegun = errors.New("transit: tween already begun")
	// ErrDriverClosed is returned when scheduling work on a closed driver.
	ErrDriverClosed = errors.New("transit: driver closed")
)
