package ebitenview

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/transit"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestDrawOptionsCentersAndScales(t *testing.T) {
	n := transit.NewNode("n")
	n.X, n.Y = 100, 50
	n.Translation = transit.Vec2{X: 10}
	n.Scale = transit.Vec2{X: 2, Y: 2}
	n.Opacity = 0.5

	var op ebiten.DrawImageOptions
	DrawOptions(n, 20, 10, &op)

	// Top-left corner of a 20x10 image lands half the scaled size off center.
	x, y := op.GeoM.Apply(0, 0)
	if !approxEqual(x, 90, 1e-9) || !approxEqual(y, 40, 1e-9) {
		t.Errorf("top-left = (%v, %v), want (90, 40)", x, y)
	}
	x, y = op.GeoM.Apply(10, 5)
	if !approxEqual(x, 110, 1e-9) || !approxEqual(y, 50, 1e-9) {
		t.Errorf("center = (%v, %v), want (110, 50)", x, y)
	}
	if a := op.ColorScale.A(); !approxEqual(float64(a), 0.5, 1e-6) {
		t.Errorf("alpha = %v, want 0.5", a)
	}
}

func TestDrawOptionsResetsAndClamps(t *testing.T) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(1000, 1000)
	op.ColorScale.ScaleAlpha(0.1)

	n := transit.NewNode("n")
	n.Opacity = 3
	DrawOptions(n, 0, 0, &op)

	if x, y := op.GeoM.Apply(0, 0); x != 0 || y != 0 {
		t.Errorf("GeoM not reset: (%v, %v)", x, y)
	}
	if a := op.ColorScale.A(); a != 1 {
		t.Errorf("alpha = %v, want clamped 1", a)
	}
}

func TestClamp01(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{{-1, 0}, {0.3, 0.3}, {2, 1}} {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRendererAttachAndForget(t *testing.T) {
	r := NewRenderer()
	root := transit.NewNode("root")
	a := transit.NewNode("a")
	b := transit.NewNode("b")
	root.AddChild(a)
	root.AddChild(b)

	img := ebiten.NewImage(4, 4)
	r.Attach(a, img)
	r.Attach(b, img)
	r.Attach(b, nil)
	if len(r.images) != 1 {
		t.Fatalf("images = %d, want 1", len(r.images))
	}

	screen := ebiten.NewImage(16, 16)
	a.Dispose()
	r.Draw(screen, root)
	if len(r.images) != 0 {
		t.Errorf("disposed node not forgotten")
	}
}

func TestRendererClearsDirtyOnVisibleNodes(t *testing.T) {
	r := NewRenderer()
	root := transit.NewNode("root")
	shown := transit.NewNode("shown")
	hidden := transit.NewNode("hidden")
	hidden.Visible = false
	root.AddChild(shown)
	root.AddChild(hidden)
	r.Attach(shown, ebiten.NewImage(2, 2))

	r.Draw(ebiten.NewImage(8, 8), root)

	if shown.Dirty() || root.Dirty() {
		t.Error("visible nodes still dirty after Draw")
	}
	if !hidden.Dirty() {
		t.Error("hidden subtree should be skipped")
	}
}

func TestGameLayoutFeedsStage(t *testing.T) {
	stage := transit.NewStage(transit.Config{})
	g := NewGame(stage)
	w, h := g.Layout(320, 240)
	if w != 320 || h != 240 {
		t.Errorf("Layout = (%d, %d)", w, h)
	}
	if size, ok := stage.Viewport().Viewport(); !ok || size != (transit.Vec2{X: 320, Y: 240}) {
		t.Errorf("stage viewport = %v, %v", size, ok)
	}
}

func TestGameUpdateAdvancesStage(t *testing.T) {
	stage := transit.NewStage(transit.Config{})
	panel := stage.NewWidget("panel")
	panel.Animation.Entrance = transit.FadeOptions(0, 1, 10, transit.Linear)
	if err := panel.Show(); err != nil {
		t.Fatal(err)
	}
	g := NewGame(stage)
	called := false
	g.OnUpdate = func() error { called = true; return nil }
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Error("OnUpdate not called")
	}
	if panel.Opacity <= 0 || panel.Opacity >= 1 {
		t.Errorf("Opacity = %v, want partway after one tick", panel.Opacity)
	}
}
