package transit

// ViewportProvider reports the current viewport size. ok is false until the
// first layout pass has produced a size.
type ViewportProvider interface {
	Viewport() (size Vec2, ok bool)
}

// StaticViewport is a fixed-size viewport, always available.
type StaticViewport Vec2

// Viewport implements ViewportProvider.
func (v StaticViewport) Viewport() (Vec2, bool) {
	return Vec2(v), true
}

// LayoutViewport tracks the size reported by the game's layout callback.
// It is unavailable until SetSize is called with a positive size.
type LayoutViewport struct {
	size  Vec2
	valid bool
}

// SetSize records the latest layout size. Call it from ebiten.Game.Layout or
// an equivalent hook. Non-positive sizes mark the viewport unavailable.
func (v *LayoutViewport) SetSize(width, height float64) {
	v.size = Vec2{width, height}
	v.valid = width > 0 && height > 0
}

// Invalidate marks the viewport unavailable until the next SetSize.
func (v *LayoutViewport) Invalidate() {
	v.valid = false
}

// Viewport implements ViewportProvider.
func (v *LayoutViewport) Viewport() (Vec2, bool) {
	if v == nil {
		return Vec2{}, false
	}
	return v.size, v.valid
}

// Bounds returns the viewport as a rectangle at the origin.
func (v *LayoutViewport) Bounds() Rect {
	return Rect{Width: v.size.X, Height: v.size.Y}
}

// viewportTranslation returns the slide vectors for a viewport-relative
// translation. The start is one viewport extent off the named edge; the end is
// the resting position.
func viewportTranslation(origin TranslationOrigin, size Vec2) (start, end Vec2) {
	switch origin {
	case OriginLeft:
		start = Vec2{-size.X, 0}
	case OriginRight:
		start = Vec2{size.X, 0}
	case OriginTop:
		start = Vec2{0, -size.Y}
	case OriginBottom:
		start = Vec2{0, size.Y}
	}
	return start, Vec2{}
}

// resolveTranslation computes the concrete start and end of a translation
// transition. For viewport-relative options an Outro swaps the two so the
// element leaves toward the edge it came from.
func resolveTranslation(opts TransitionOptions, mode TransitionMode, size Vec2) (start, end Vec2) {
	if !opts.UseViewportOrigin {
		return opts.TranslationFrom.Add(opts.TranslationFromOffset),
			opts.TranslationTo.Add(opts.TranslationToOffset)
	}
	start, end = viewportTranslation(opts.Origin, size)
	start = start.Add(opts.TranslationFromOffset)
	end = end.Add(opts.TranslationToOffset)
	if mode == Outro {
		start, end = end, start
	}
	return start, end
}
