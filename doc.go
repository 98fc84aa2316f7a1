// Package transit animates widgets in and out of view with eased tweens.
//
// Transit provides an easing library of sixteen curves, a frame-driven tween
// [Driver], and a [TransitionManager] that turns named presets or explicit
// [TransitionOptions] into scale, slide and fade transitions with start and
// completion notifications.
//
// # Quick start
//
// The simplest setup is a [Stage], which owns a node tree, a driver and a
// manager and advances them together:
//
//	stage := transit.NewStage(transit.DefaultConfig())
//	menu := stage.NewWidget("menu")
//	menu.Animation.Entrance = transit.FadeOptions(0, 1, 0.3, transit.EaseOutQuad)
//	menu.Show()
//
//	// each frame:
//	stage.Layout(w, h)
//	stage.Update(dt)
//
// The ebitenview subpackage runs a stage as an [ebiten.Game] and draws nodes
// with attached images.
//
// # Tweens
//
// A tween interpolates up to three channels (scale, translation, opacity) of
// an [Animatable] over a duration:
//
//	id, err := driver.Create(node, 0.5).
//		FromOpacity(0).ToOpacity(1).
//		Easing(transit.EaseOutCubic).
//		OnComplete(func(s transit.CompletionStatus) { ... }).
//		Begin()
//
// The final sample of a tween is exactly its end value. A target that becomes
// invalid mid-tween ends it with [TargetLost] and is never written again.
//
// # Transitions
//
// [TransitionManager.PlayTransition] and [TransitionManager.PlayPresetAnimation]
// play a transition in [Intro] or [Outro] mode. Viewport-relative slides are
// resolved on the next frame, after layout, and reverse direction for Outro.
// Presets load from YAML:
//
//	presets:
//	  slideIn: {kind: Translation, origin: Left, duration: 0.4, easing: OutCubic}
//
// Motion settings (animations on or off, duration scale) persist through
// [SettingsStore], backed by [gdata]. When animations are off, transitions
// snap to their end state and still notify start and completion.
//
// # Easing without a driver
//
// [Ease] evaluates any [EasingKind], and [EasingKind.TweenFunc] adapts a kind
// for [gween] tweens owned by the caller.
//
// ECS integration is available through a [Donburi] event sink in transit/ecs.
//
// [gween]: https://github.com/tanema/gween
// [gdata]: https://github.com/quasilyte/gdata
// [Donburi]: https://github.com/yohamta/donburi
// [ebiten.Game]: https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2#Game
package transit
