package easel

// Selector is the interaction layer for a diagramming canvas: click and
// shift-click selection, rubber-band area selection, resize/rotate handles
// for the current selection, highlight rectangles in multi-select, and
// per-vertex editing of polylines.
//
// A Selector owns the selection set, the marquee, the highlight pool, the
// wrapped transformer widget, and the vertex anchors. Everything else belongs
// to the host and is reached through the Stage, Bus, and Node interfaces.
//
// All methods must be called from the host's update loop; the Selector is
// single-threaded by design. Call Update once per frame to advance fades,
// coalesced highlight repositioning, and the post-drag re-listen delay.
type Selector struct {
	stage Stage
	bus   Bus
	opts  Options

	enabled bool

	// Selection state. order preserves selection order for event payloads;
	// selected and removeSubs are keyed by node id.
	selected   map[uint32]Node
	order      []Node
	removeSubs map[uint32]Subscription

	overlay    Container
	highlights *highlightPool
	marquee    Shape
	rubber     rubberBand
	line       *lineEdit
	anchorTmpl Shape
	xform      *transformController

	busSubs []Subscription

	// relistenIn counts down to re-enabling stage listening after a drag.
	relistenIn float32

	destroyed bool
}

// New creates a Selector bound to the given stage and bus.
func New(stage Stage, bus Bus, opts Options) *Selector {
	opts = opts.withDefaults()

	s := &Selector{
		stage:      stage,
		bus:        bus,
		opts:       opts,
		enabled:    !opts.Disabled,
		selected:   make(map[uint32]Node),
		removeSubs: make(map[uint32]Subscription),
	}

	s.overlay = stage.NewContainer()
	s.highlights = newHighlightPool(stage, s.overlay, opts.Highlight, opts.HighlightFade)

	s.marquee = stage.NewRect(RectStyle{
		Stroke:      opts.Marquee.Stroke,
		StrokeWidth: opts.Marquee.StrokeWidth,
		Fill:        opts.Marquee.Fill,
	})
	s.marquee.SetName("selection-marquee")
	s.marquee.SetVisible(false)

	s.anchorTmpl = stage.NewRect(RectStyle{
		Stroke:       opts.Transformer.AnchorStroke,
		StrokeWidth:  defaultStrokeWidth,
		Fill:         opts.Transformer.AnchorFill,
		CornerRadius: opts.Transformer.AnchorCornerRadius,
		Listening:    true,
	})
	s.anchorTmpl.SetVisible(false)

	s.xform = newTransformController(s)

	s.busSubs = []Subscription{
		bus.On(EventMouseDown, s.onMouseDown),
		bus.On(EventMouseMove, s.onMouseMove),
		bus.On(EventMouseUp, s.onMouseUp),
		bus.On(EventMouseClick, s.onMouseClick),
		bus.On(EventMouseOut, s.onMouseOut),
	}

	return s
}

// Enabled reports whether the selector currently reacts to input and
// selection mutation.
func (s *Selector) Enabled() bool {
	return s.enabled
}

// Toggle flips the enabled state, or forces it when an argument is given.
// Returns the new state. While disabled, Select, Deselect, and SelectAll are
// no-ops and pointer input is ignored; the existing selection is untouched.
func (s *Selector) Toggle(force ...bool) bool {
	if len(force) > 0 {
		s.enabled = force[0]
	} else {
		s.enabled = !s.enabled
	}
	return s.enabled
}

// Selected returns the current selection in selection order.
// The returned slice is a copy.
func (s *Selector) Selected() []Node {
	out := make([]Node, len(s.order))
	copy(out, s.order)
	return out
}

// IsSelected reports whether n is in the current selection.
// Unlike the mutators, this pure query answers truthfully even while the
// selector is disabled.
func (s *Selector) IsSelected(n Node) bool {
	if n == nil {
		return false
	}
	_, ok := s.selected[n.ID()]
	return ok
}

// SelectedRect returns the bounding box of the current selection in stage
// space, or the zero Rect when nothing is selected.
func (s *Selector) SelectedRect() Rect {
	if len(s.order) == 0 {
		return Rect{}
	}
	r := s.order[0].ClientRect()
	for _, n := range s.order[1:] {
		r = r.Union(n.ClientRect())
	}
	return r
}

// Select replaces the current selection with the given nodes.
//
// A request that is set-equal to the current selection is a no-op and emits
// nothing. Otherwise the prior selection is fully deselected first, each
// incoming node is marked draggable and watched for removal, highlight
// overlays are created when the result has more than one member, vertex
// editing is entered when the result is exactly one point-editable node, the
// transformer's node list is rebuilt, and EventSelectedChanged is emitted
// exactly once. No-op while disabled.
func (s *Selector) Select(nodes ...Node) {
	if !s.enabled {
		return
	}

	incoming := s.filterSelectable(nodes)
	if s.sameSelection(incoming) {
		return
	}

	s.deselect(nil, false)

	for _, n := range incoming {
		id := n.ID()
		if _, dup := s.selected[id]; dup {
			continue
		}
		n.SetDraggable(true)
		node := n
		s.removeSubs[id] = n.On(NodeEventRemove, func(Event) {
			s.evict(node)
		})
		s.selected[id] = n
		s.order = append(s.order, n)
	}

	if len(s.order) > 1 {
		for _, n := range s.order {
			s.highlights.add(n)
		}
	}
	if len(s.order) == 1 {
		if pe, ok := s.order[0].(PointEditable); ok && s.order[0].Caps()&CapPointEditable != 0 {
			s.enterLineEdit(pe)
		}
	}

	s.xform.setNodes(s.order)
	s.syncLineAnchors()
	s.stage.BatchDraw()
	s.emitSelected()
}

// Deselect removes the given nodes from the selection, or the entire
// selection when called with no arguments. No-op while disabled or when the
// selection is already empty.
func (s *Selector) Deselect(nodes ...Node) {
	if !s.enabled {
		return
	}
	if len(s.selected) == 0 {
		return
	}
	s.deselect(nodes, true)
}

// SelectAll selects every child of the main content layer. No-op while
// disabled.
func (s *Selector) SelectAll() {
	if !s.enabled {
		return
	}
	s.Select(s.stage.ContentChildren()...)
}

// Update advances frame-deferred work: highlight fades and coalesced
// repositioning, and the delayed stage re-listen after a handle drag.
// dt is the frame delta in seconds.
func (s *Selector) Update(dt float32) {
	s.highlights.update(dt)
	if s.relistenIn > 0 {
		s.relistenIn -= dt
		if s.relistenIn <= 0 {
			s.relistenIn = 0
			if !s.stage.Listening() {
				s.stage.SetListening(true)
			}
		}
	}
}

// Destroy tears the selector down: the selection is cleared without emitting,
// all bus and node subscriptions are released, every owned overlay and the
// transformer widget are destroyed, and stage listening muted by an
// in-progress handle drag is restored. The Selector must not be used after
// Destroy.
func (s *Selector) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true

	s.deselect(nil, false)
	for _, sub := range s.busSubs {
		sub.Remove()
	}
	s.busSubs = nil
	s.xform.destroy()
	s.relistenIn = 0
	if !s.stage.Listening() {
		s.stage.SetListening(true)
	}
	s.highlights.clear()
	s.marquee.Destroy()
	s.anchorTmpl.Destroy()
	s.overlay.Destroy()
}

// --- Internals ---

// filterSelectable drops nil nodes and the selector's own marquee rect, which
// can leak back in through an area query over the visible marquee.
func (s *Selector) filterSelectable(nodes []Node) []Node {
	out := nodes[:0:0]
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.ID() == s.marquee.ID() {
			continue
		}
		out = append(out, n)
	}
	return out
}

// sameSelection reports whether nodes is set-equal to the current selection,
// comparing by id and ignoring order and duplicates.
func (s *Selector) sameSelection(nodes []Node) bool {
	ids := make(map[uint32]struct{}, len(nodes))
	for _, n := range nodes {
		ids[n.ID()] = struct{}{}
	}
	if len(ids) != len(s.selected) {
		return false
	}
	for id := range ids {
		if _, ok := s.selected[id]; !ok {
			return false
		}
	}
	return true
}

// deselect removes targets (the whole selection when targets is nil) from the
// selection set. Iterates over a snapshot so a node event firing mid-loop
// cannot invalidate the iteration.
func (s *Selector) deselect(targets []Node, emit bool) {
	var snapshot []Node
	if len(targets) == 0 {
		snapshot = make([]Node, len(s.order))
		copy(snapshot, s.order)
	} else {
		for _, n := range targets {
			if n == nil {
				continue
			}
			if _, ok := s.selected[n.ID()]; ok {
				snapshot = append(snapshot, n)
			}
		}
	}
	if len(snapshot) == 0 {
		return
	}

	for _, n := range snapshot {
		id := n.ID()
		n.SetDraggable(false)
		if sub := s.removeSubs[id]; sub != nil {
			sub.Remove()
			delete(s.removeSubs, id)
		}
		delete(s.selected, id)
		for i, o := range s.order {
			if o.ID() == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		if s.line != nil && s.line.node.ID() == id {
			s.exitLineEdit()
		}
		s.highlights.remove(n)
	}

	// Highlights only exist while more than one node is selected; once the
	// remainder shrinks to a single node its highlight goes too.
	if len(s.order) <= 1 {
		s.highlights.clear()
	}

	s.xform.setNodes(s.order)

	if emit {
		s.stage.BatchDraw()
		s.emitSelected()
	}
}

// evict drops a node whose removal notification fired. Runs even while the
// selector is disabled: a removed node must never linger in the selection.
func (s *Selector) evict(n Node) {
	if _, ok := s.selected[n.ID()]; !ok {
		return
	}
	s.deselect([]Node{n}, true)
}

func (s *Selector) emitSelected() {
	s.bus.Emit(EventSelectedChanged, Event{Nodes: s.Selected()})
}
