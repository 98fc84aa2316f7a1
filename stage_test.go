package transit

import "testing"

func TestNewStage(t *testing.T) {
	s := NewStage(DefaultConfig())
	if s.Root() == nil || s.Root().Name != "root" {
		t.Fatal("missing root")
	}
	if s.Driver() == nil || s.Manager() == nil || s.Manager().Driver() != s.Driver() {
		t.Error("driver and manager not wired")
	}
	if _, ok := s.Viewport().Viewport(); ok {
		t.Error("viewport available before Layout")
	}
	s.Layout(800, 600)
	if size, ok := s.Manager().viewportSize(); !ok || size != (Vec2{800, 600}) {
		t.Errorf("manager viewport = %v, %v", size, ok)
	}
}

func TestStageWidgets(t *testing.T) {
	s := NewStage(Config{})
	w := s.NewWidget("menu")
	if w.Parent != s.Root() {
		t.Error("widget not attached to root")
	}
	if s.Widget("menu") != w {
		t.Error("Widget(menu) lookup failed")
	}
	if s.Target("menu") != Target(w) {
		t.Error("Target should prefer the widget")
	}

	plain := NewNode("label")
	w.AddChild(plain)
	if s.Target("label") != Target(plain) {
		t.Error("Target should fall back to the node tree")
	}
	if s.Target("missing") != nil {
		t.Error("Target(missing) should be nil")
	}

	w.Dispose()
	if s.Widget("menu") != nil {
		t.Error("disposed widget still returned")
	}
}

func TestStageUpdateSlidesAfterLayout(t *testing.T) {
	s := NewStage(Config{})
	w := s.NewWidget("panel")
	w.Animation.Entrance = SlideOptions(OriginRight, 0.5, Linear)
	if err := w.Show(); err != nil {
		t.Fatal(err)
	}

	s.Update(0)
	if len(s.Driver().active) != 0 {
		t.Fatal("slide started before layout")
	}
	s.Layout(400, 300)
	s.Update(0)
	if w.Translation != (Vec2{400, 0}) {
		t.Errorf("Translation = %v, want (400, 0)", w.Translation)
	}
	s.Update(0.5)
	if w.State() != WidgetShown {
		t.Errorf("State = %v", w.State())
	}
}

func TestStageClose(t *testing.T) {
	s := NewStage(Config{})
	w := s.NewWidget("w")
	w.Animation.Entrance = FadeOptions(0, 1, 1, Linear)
	_ = w.Show()
	s.Close()
	s.Update(1)
	if w.State() != WidgetShowing {
		t.Errorf("State = %v, closed stage should not complete", w.State())
	}
	if !s.Driver().Closed() {
		t.Error("driver not closed")
	}
}
