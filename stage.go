package transit

// Stage is the top-level object that owns a node tree, a driver, a
// transition manager and the layout viewport, and advances them together once
// per frame. It is optional; the pieces can be wired by hand.
type Stage struct {
	root     *Node
	driver   *Driver
	manager  *TransitionManager
	viewport LayoutViewport
	widgets  map[string]*Widget
	runner   *ScriptRunner
}

// NewStage creates a stage with a root container. When cfg.Viewport is nil
// the stage's own LayoutViewport (fed by Layout) supplies geometry.
func NewStage(cfg Config) *Stage {
	s := &Stage{
		root:    NewNode("root"),
		driver:  NewDriver(),
		widgets: make(map[string]*Widget),
	}
	if cfg.Viewport == nil {
		cfg.Viewport = &s.viewport
	}
	s.manager = NewTransitionManager(s.driver, cfg)
	return s
}

// Root returns the stage's root node.
func (s *Stage) Root() *Node {
	return s.root
}

// Driver returns the stage's driver.
func (s *Stage) Driver() *Driver {
	return s.driver
}

// Manager returns the stage's transition manager.
func (s *Stage) Manager() *TransitionManager {
	return s.manager
}

// Viewport returns the layout viewport fed by Layout.
func (s *Stage) Viewport() *LayoutViewport {
	return &s.viewport
}

// Layout records the outside size; call it from ebiten.Game.Layout.
func (s *Stage) Layout(width, height float64) {
	s.viewport.SetSize(width, height)
}

// NewWidget creates a widget bound to the stage's manager and adds it under
// the root.
func (s *Stage) NewWidget(name string) *Widget {
	w := NewWidget(name, s.manager)
	s.AddWidget(w)
	return w
}

// AddWidget registers w by name and attaches it under the root if it has no
// parent. A widget with the same name replaces the earlier registration.
func (s *Stage) AddWidget(w *Widget) {
	if w.Parent == nil {
		s.root.AddChild(w.Node)
	}
	s.widgets[w.Name] = w
}

// Widget returns the live widget registered under name, or nil.
func (s *Stage) Widget(name string) *Widget {
	w, ok := s.widgets[name]
	if !ok {
		return nil
	}
	if !w.IsValid() {
		delete(s.widgets, name)
		return nil
	}
	return w
}

// Target resolves name to a registered widget or, failing that, to the first
// node of that name in the tree.
func (s *Stage) Target(name string) Target {
	if w := s.Widget(name); w != nil {
		return w
	}
	if n := s.root.Find(name); n != nil {
		return n
	}
	return nil
}

// SetScriptRunner attaches a runner; its next step runs at the start of each
// Update.
func (s *Stage) SetScriptRunner(r *ScriptRunner) {
	s.runner = r
}

// Update runs the script step, then advances the driver by dt seconds.
func (s *Stage) Update(dt float64) {
	if s.runner != nil {
		s.runner.step(s)
	}
	s.driver.Update(dt)
}

// Close shuts down the manager and driver.
func (s *Stage) Close() {
	s.manager.Close()
	s.driver.Close()
}
