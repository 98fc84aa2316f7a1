// Package ebitenview draws transit nodes with [Ebitengine] and runs a
// [transit.Stage] as an ebiten.Game.
//
// Images are attached to nodes with [Renderer.Attach]; [Renderer.Draw] walks
// the stage tree and draws every visible node that has an image, applying the
// node's world position, scale and opacity.
//
// [Ebitengine]: https://ebitengine.org
package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/transit"
)

// DrawOptions configures op to draw an image of size w×h for node n. The
// image is centered on the node's world position, scaled by its world scale
// and faded by its world opacity. op is reset first.
func DrawOptions(n *transit.Node, w, h float64, op *ebiten.DrawImageOptions) {
	op.GeoM.Reset()
	op.ColorScale.Reset()

	scale := n.WorldScale()
	pos := n.WorldPosition()
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale.X, scale.Y)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleAlpha(float32(clamp01(n.WorldOpacity())))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Renderer draws the nodes of a stage tree that have images attached.
type Renderer struct {
	images map[*transit.Node]*ebiten.Image
	op     ebiten.DrawImageOptions
}

// NewRenderer creates an empty renderer.
func NewRenderer() *Renderer {
	return &Renderer{images: make(map[*transit.Node]*ebiten.Image)}
}

// Attach sets the image drawn for n. A nil image detaches it.
func (r *Renderer) Attach(n *transit.Node, img *ebiten.Image) {
	if img == nil {
		delete(r.images, n)
		return
	}
	r.images[n] = img
}

// Draw renders root and its descendants depth-first. Disposed nodes are
// forgotten; invisible nodes hide their subtree.
func (r *Renderer) Draw(screen *ebiten.Image, root *transit.Node) {
	for n := range r.images {
		if n.IsDisposed() {
			delete(r.images, n)
		}
	}
	r.drawNode(screen, root)
}

func (r *Renderer) drawNode(screen *ebiten.Image, n *transit.Node) {
	if !n.Visible {
		return
	}
	if img, ok := r.images[n]; ok && n.WorldOpacity() > 0 {
		b := img.Bounds()
		DrawOptions(n, float64(b.Dx()), float64(b.Dy()), &r.op)
		screen.DrawImage(img, &r.op)
	}
	n.ClearDirty()
	for _, c := range n.Children() {
		r.drawNode(screen, c)
	}
}

// Game runs a stage as an ebiten.Game. OnUpdate, if set, runs after the
// stage advances each tick.
type Game struct {
	Stage    *transit.Stage
	Renderer *Renderer
	OnUpdate func() error
	OnDraw   func(screen *ebiten.Image)
}

// NewGame creates a Game over stage with a fresh renderer.
func NewGame(stage *transit.Stage) *Game {
	return &Game{Stage: stage, Renderer: NewRenderer()}
}

// Update implements ebiten.Game. The stage advances by one fixed tick.
func (g *Game) Update() error {
	g.Stage.Update(1 / float64(ebiten.TPS()))
	if g.OnUpdate != nil {
		return g.OnUpdate()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen, g.Stage.Root())
	if g.OnDraw != nil {
		g.OnDraw(screen)
	}
}

// Layout implements ebiten.Game and feeds the stage's viewport, which makes
// viewport-relative translations resolvable.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Stage.Layout(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
