package transit

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in a playback script.
type scriptStep struct {
	Action  string             `yaml:"action"`
	Target  string             `yaml:"target,omitempty"`
	Mode    TransitionMode     `yaml:"mode,omitempty"`
	Preset  string             `yaml:"preset,omitempty"`
	Options *TransitionOptions `yaml:"options,omitempty"`
	Width   float64            `yaml:"width,omitempty"`
	Height  float64            `yaml:"height,omitempty"`
	Frames  int                `yaml:"frames,omitempty"`
}

// script is the top-level structure for a playback script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner sequences transition commands across frames for automated
// playback checks. Attach to a Stage via SetScriptRunner. Scripts are YAML or
// JSON:
//
//	steps:
//	  - {action: layout, width: 640, height: 480}
//	  - {action: show, target: menu}
//	  - {action: wait, frames: 30}
//	  - {action: preset, target: menu, preset: slideOut, mode: Outro}
//	  - {action: play, target: hud, mode: Intro, options: {kind: Fade, fadeFrom: 0}}
//	  - {action: dispose, target: hud}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	errs      []error
}

// LoadScript parses a playback script and returns a ScriptRunner ready to be
// attached to a Stage via SetScriptRunner.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "layout", "show", "hide", "play", "preset", "dispose", "wait":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Errors returns the errors raised by executed steps, in order.
func (r *ScriptRunner) Errors() []error {
	return r.errs
}

// step advances the runner by one frame. Called from Stage.Update.
func (r *ScriptRunner) step(s *Stage) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	if err := r.exec(s, st); err != nil {
		r.errs = append(r.errs, fmt.Errorf("step %d (%s %s): %w", r.cursor-1, st.Action, st.Target, err))
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

func (r *ScriptRunner) exec(s *Stage, st scriptStep) error {
	switch st.Action {
	case "layout":
		s.Layout(st.Width, st.Height)
		return nil
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
		return nil
	}

	switch st.Action {
	case "show", "hide":
		w := s.Widget(st.Target)
		if w == nil {
			return ErrInvalidTarget
		}
		if st.Action == "show" {
			return w.Show()
		}
		return w.Hide()
	}

	t := s.Target(st.Target)
	if t == nil {
		return ErrInvalidTarget
	}
	switch st.Action {
	case "play":
		opts := DefaultTransitionOptions()
		if st.Options != nil {
			opts = *st.Options
		}
		return s.manager.PlayTransition(t, opts, st.Mode)
	case "preset":
		return s.manager.PlayPresetAnimation(t, st.Preset, st.Mode)
	case "dispose":
		switch v := t.(type) {
		case *Widget:
			v.Dispose()
		case *Node:
			v.Dispose()
		}
	}
	return nil
}
