package transit

// nodeIDCounter is a plain counter (no atomic; transit is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the basic animatable element: a named box holding the three
// transition channels. Nodes form a tree; children inherit their parent's
// translation, scale and opacity when resolved with the World* helpers.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Channels (local). Scale defaults to (1, 1) and Opacity to 1.
	Scale       Vec2
	Translation Vec2
	Opacity     float64

	// Layout position the translation channel is applied on top of.
	X, Y float64

	Visible  bool
	UserData any

	// Per-node callbacks (nil by default).
	OnAnimationStart func(mode TransitionMode)
	OnAnimationEnd   func(mode TransitionMode)

	dirty    bool
	disposed bool
}

// NewNode creates a node with identity channels.
func NewNode(name string) *Node {
	return &Node{
		ID:      nextNodeID(),
		Name:    name,
		Scale:   Vec2One,
		Opacity: 1,
		Visible: true,
		dirty:   true,
	}
}

// --- Target implementation ---

// IsValid reports whether the node is still alive.
func (n *Node) IsValid() bool {
	return n != nil && !n.disposed
}

// ApplySample writes the sampled channels. Undriven channels are left alone.
func (n *Node) ApplySample(s Sample) {
	if n.disposed {
		return
	}
	if s.Channels.Has(ChannelScale) {
		n.Scale = s.Scale
	}
	if s.Channels.Has(ChannelTranslation) {
		n.Translation = s.Translation
	}
	if s.Channels.Has(ChannelOpacity) {
		n.Opacity = s.Opacity
	}
	n.dirty = true
}

// OnAnimationStarted forwards to the OnAnimationStart callback if set.
func (n *Node) OnAnimationStarted(mode TransitionMode) {
	if n.OnAnimationStart != nil {
		n.OnAnimationStart(mode)
	}
}

// OnAnimationCompleted forwards to the OnAnimationEnd callback if set.
func (n *Node) OnAnimationCompleted(mode TransitionMode) {
	if n.OnAnimationEnd != nil {
		n.OnAnimationEnd(mode)
	}
}

// TargetName returns the node name for log lines.
func (n *Node) TargetName() string {
	return n.Name
}

// --- Dirty tracking ---

// MarkDirty flags the node for redraw.
func (n *Node) MarkDirty() {
	n.dirty = true
}

// Dirty reports whether the node changed since the last ClearDirty.
func (n *Node) Dirty() bool {
	return n.dirty
}

// ClearDirty resets the dirty flag. Renderers call it after drawing.
func (n *Node) ClearDirty() {
	n.dirty = false
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("transit: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("transit: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	child.dirty = true
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("transit: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	child.dirty = true
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// Find returns the first node named name in this subtree (depth-first,
// including n itself), or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// --- World values ---

// WorldOpacity returns the node's opacity multiplied by all ancestors'.
func (n *Node) WorldOpacity() float64 {
	a := 1.0
	for p := n; p != nil; p = p.Parent {
		a *= p.Opacity
	}
	return a
}

// WorldPosition returns the node's layout position plus translation,
// accumulated through its ancestors. Ancestor scale applies to descendants'
// offsets.
func (n *Node) WorldPosition() Vec2 {
	if n.Parent == nil {
		return Vec2{n.X + n.Translation.X, n.Y + n.Translation.Y}
	}
	ps := n.Parent.WorldScale()
	pp := n.Parent.WorldPosition()
	return Vec2{
		pp.X + (n.X+n.Translation.X)*ps.X,
		pp.Y + (n.Y+n.Translation.Y)*ps.Y,
	}
}

// WorldScale returns the product of this node's and its ancestors' scales.
func (n *Node) WorldScale() Vec2 {
	s := Vec2One
	for p := n; p != nil; p = p.Parent {
		s.X *= p.Scale.X
		s.Y *= p.Scale.Y
	}
	return s
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Running tweens on any of them
// complete with TargetLost on the driver's next tick.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
	n.OnAnimationStart = nil
	n.OnAnimationEnd = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
