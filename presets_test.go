package transit

import (
	"strings"
	"testing"
)

const presetDoc = `
presets:
  fadeIn:
    kind: Fade
    fadeFrom: 0
    duration: 0.3
    easing: EaseOutQuad
  slideOut:
    kind: Translation
    origin: Right
    easing: InCubic
  pop:
    kind: Scale
    scaleFrom: {x: 0.5, y: 0.5}
`

func TestParsePresets(t *testing.T) {
	presets, err := ParsePresets([]byte(presetDoc))
	if err != nil {
		t.Fatalf("ParsePresets: %v", err)
	}
	if len(presets) != 3 {
		t.Fatalf("len = %d, want 3", len(presets))
	}
	fade := presets["fadeIn"]
	if fade.Kind != TransitionFade || fade.FadeFrom != 0 || fade.FadeTo != 1 || fade.Easing != EaseOutQuad {
		t.Errorf("fadeIn = %+v", fade)
	}
	slide := presets["slideOut"]
	if slide.Origin != OriginRight || slide.Duration != DefaultTransitionDuration || !slide.UseViewportOrigin {
		t.Errorf("slideOut = %+v", slide)
	}
	if pop := presets["pop"]; pop.ScaleFrom != (Vec2{0.5, 0.5}) || pop.ScaleTo != Vec2One {
		t.Errorf("pop = %+v", pop)
	}
}

func TestParsePresetsJSON(t *testing.T) {
	presets, err := ParsePresets([]byte(`{"presets": {"fade": {"kind": "Fade", "fadeFrom": 0.5}}}`))
	if err != nil {
		t.Fatal(err)
	}
	if presets["fade"].FadeFrom != 0.5 {
		t.Errorf("fade = %+v", presets["fade"])
	}
}

func TestParsePresetsErrors(t *testing.T) {
	tests := []struct {
		name, doc, want string
	}{
		{"empty", "presets: {}", "no presets"},
		{"malformed", "presets: [", "parse presets"},
		{"invalid", "presets: {a: {kind: Fade}, b: {kind: Scale, duration: 0}}", `"b"`},
		{"bad easing", "presets: {a: {kind: Fade, easing: Wobble}}", "parse presets"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePresets([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %s", err, tt.want)
			}
		})
	}
}

func TestMarshalPresetsRoundTrip(t *testing.T) {
	in := map[string]TransitionOptions{
		"a": FadeOptions(0, 1, 0.2, EaseInSine),
		"b": SlideOptions(OriginBottom, 1, EaseOutExpo),
	}
	data, err := MarshalPresets(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := ParsePresets(data)
	if err != nil {
		t.Fatalf("ParsePresets(%s): %v", data, err)
	}
	for name, want := range in {
		if out[name] != want {
			t.Errorf("%s = %+v, want %+v", name, out[name], want)
		}
	}
}

func TestPresetRegistry(t *testing.T) {
	r := NewPresetRegistry()
	r.Register(map[string]TransitionOptions{"b": FadeOptions(0, 1, 1, Linear)})
	r.Register(map[string]TransitionOptions{
		"a": ScaleOptions(Vec2{}, Vec2One, 1, Linear),
		"b": FadeOptions(1, 0, 2, Linear),
	})
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
	if b, ok := r.Lookup("b"); !ok || b.Duration != 2 {
		t.Errorf("b = %+v, later registration should win", b)
	}
	if _, ok := r.Lookup("missing"); ok {
		t.Error("Lookup(missing) ok")
	}
	if names := r.Names(); len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Names = %v", names)
	}
}
