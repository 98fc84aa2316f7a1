package transit

// TransitionEvent describes one step in a transition's life.
type TransitionEvent struct {
	Type   EventType
	Mode   TransitionMode
	Kind   TransitionKind
	Target Target
	// Name is the target's TargetName at the time of the event.
	Name string
	// Preset is set when the transition was played through PlayPresetAnimation.
	Preset string
}

// EventSink receives every transition event, after subscribers. It is the
// hook for bridging events into an ECS world (see the ecs module).
type EventSink interface {
	EmitEvent(event TransitionEvent)
}

// subscriber is one registered listener. Removed listeners are nil'd in place
// so removal during dispatch does not shift the slice being iterated.
type subscriber struct {
	id uint64
	fn func(TransitionEvent)
}

// eventBus fans transition events out to subscribers in subscription order.
type eventBus struct {
	subs   []subscriber
	nextID uint64
	depth  int
	sink   EventSink
}

// subscribe registers fn and returns a function that removes it. The returned
// function is idempotent.
func (b *eventBus) subscribe(fn func(TransitionEvent)) func() {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, fn: fn})
	return func() {
		for i := range b.subs {
			if b.subs[i].id == id {
				b.subs[i].fn = nil
				break
			}
		}
		if b.depth == 0 {
			b.prune()
		}
	}
}

func (b *eventBus) emit(e TransitionEvent) {
	b.depth++
	// Subscribers added during dispatch wait for the next event.
	n := len(b.subs)
	for i := 0; i < n; i++ {
		if fn := b.subs[i].fn; fn != nil {
			fn(e)
		}
	}
	b.depth--
	if b.depth == 0 {
		b.prune()
	}
	if b.sink != nil {
		b.sink.EmitEvent(e)
	}
}

func (b *eventBus) prune() {
	n := 0
	for _, s := range b.subs {
		if s.fn != nil {
			b.subs[n] = s
			n++
		}
	}
	for i := n; i < len(b.subs); i++ {
		b.subs[i] = subscriber{}
	}
	b.subs = b.subs[:n]
}

func (b *eventBus) len() int {
	n := 0
	for _, s := range b.subs {
		if s.fn != nil {
			n++
		}
	}
	return n
}
