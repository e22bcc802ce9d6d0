package easel

// edgeAnchors are the side/top/bottom anchors, excluding corners. They are
// hidden when edge resizing would be ambiguous: multi-selection, or a sole
// selected node without CapEdgeResizable (text, groups).
var edgeAnchors = map[string]bool{
	"top-center":    true,
	"bottom-center": true,
	"middle-left":   true,
	"middle-right":  true,
}

// rotateAnchor is the transformer's rotation handle name.
const rotateAnchor = "rotater"

// transformController wraps the host's resize/rotate handle widget: it keeps
// the widget's node list mirroring the selection, applies per-anchor
// visibility and cursor policy, gates the selector while an anchor is pressed
// or hovered, and bridges the widget's lifecycle into bus notifications.
type transformController struct {
	s  *Selector
	tr Transformer

	subs []Subscription
	// anchorSubs tracks which anchors already carry press/hover handlers, so
	// the styler (invoked on every widget redraw) subscribes each one once.
	anchorSubs map[string][]Subscription

	// pressed/hovered gating saves the enabled state it clobbers so release
	// restores a selector the host had disabled rather than forcing it on.
	pressed    bool
	pressedWas bool
	hovered    bool
	hoveredWas bool
}

func newTransformController(s *Selector) *transformController {
	c := &transformController{
		s:          s,
		tr:         s.stage.NewTransformer(s.opts.Transformer),
		anchorSubs: make(map[string][]Subscription),
	}
	c.tr.SetAnchorStyler(c.styleAnchor)
	c.subs = []Subscription{
		c.tr.On(TransformerEventTransformStart, c.onBeforeChange),
		c.tr.On(TransformerEventTransformEnd, c.onAfterChange),
		c.tr.On(TransformerEventDragStart, c.onDragStart),
		c.tr.On(TransformerEventDragEnd, c.onDragEnd),
	}
	return c
}

// setNodes points the widget at the current selection and forces a redraw so
// the anchor styler re-evaluates visibility for the new selection shape.
func (c *transformController) setNodes(nodes []Node) {
	attached := make([]Node, len(nodes))
	copy(attached, nodes)
	c.tr.SetNodes(attached)
	c.tr.ForceUpdate()
}

func (c *transformController) destroy() {
	for _, sub := range c.subs {
		sub.Remove()
	}
	c.subs = nil
	for _, subs := range c.anchorSubs {
		for _, sub := range subs {
			sub.Remove()
		}
	}
	c.anchorSubs = nil
	c.tr.Destroy()
}

// --- Anchor policy ---

// styleAnchor is invoked by the widget for every anchor on each redraw.
func (c *transformController) styleAnchor(anchor Shape) {
	name := anchor.Name()

	if edgeAnchors[name] {
		anchor.SetVisible(c.edgeAnchorsVisible())
	}

	if _, ok := c.anchorSubs[name]; !ok {
		cursor := CursorPointer
		if name == rotateAnchor {
			cursor = CursorGrab
		}
		c.anchorSubs[name] = []Subscription{
			anchor.On(AnchorEventDown, func(Event) { c.onAnchorDown() }),
			anchor.On(AnchorEventUp, func(Event) { c.onAnchorUp() }),
			anchor.On(AnchorEventEnter, func(Event) { c.onAnchorEnter(cursor) }),
			anchor.On(AnchorEventLeave, func(Event) { c.onAnchorLeave() }),
		}
	}
}

func (c *transformController) edgeAnchorsVisible() bool {
	sel := c.s.order
	if len(sel) != 1 {
		return false
	}
	return sel[0].Caps()&CapEdgeResizable != 0
}

// Anchor press forces the selector off so an in-progress transform can't be
// disturbed by selection changes; release restores the pre-press state.
func (c *transformController) onAnchorDown() {
	if c.pressed {
		return
	}
	c.pressed = true
	c.pressedWas = c.s.enabled
	c.s.enabled = false
}

func (c *transformController) onAnchorUp() {
	if !c.pressed {
		return
	}
	c.pressed = false
	c.s.enabled = c.pressedWas
}

func (c *transformController) onAnchorEnter(cursor Cursor) {
	if !c.hovered {
		c.hovered = true
		c.hoveredWas = c.s.enabled
		c.s.enabled = false
	}
	c.s.opts.SetCursor(cursor)
}

func (c *transformController) onAnchorLeave() {
	// A release outside the anchor never delivers mouseup to it. The press
	// gate armed after the hover gate and saved the hover-disabled state, so
	// it must unwind first or its restore clobbers the hover restore.
	c.onAnchorUp()
	if c.hovered {
		c.hovered = false
		c.s.enabled = c.hoveredWas
	}
	c.s.opts.SetCursor(CursorDefault)
}

// --- Lifecycle bridging ---

// onBeforeChange notifies downstream listeners that the selection is about to
// change geometry. Listeners snapshot state on node:update:before.
func (c *transformController) onBeforeChange(Event) {
	sel := c.s.Selected()
	c.s.bus.Emit(EventNodeTransformStart, Event{Nodes: sel})
	c.s.bus.Emit(EventNodeUpdateBefore, Event{Nodes: sel})
}

func (c *transformController) onAfterChange(Event) {
	sel := c.s.Selected()
	c.s.bus.Emit(EventNodeTransformEnd, Event{Nodes: sel})
	c.s.bus.Emit(EventNodeUpdated, Event{Nodes: sel})
}

// onDragStart mutes stage-wide pointer listening for the duration of the
// drag so intermediate moves don't hit-test against content.
func (c *transformController) onDragStart(ev Event) {
	c.s.stage.SetListening(false)
	c.onBeforeChange(ev)
}

// onDragEnd re-enables stage listening only after a short delay, counted down
// by Selector.Update, so the click fired by the same pointer release is
// swallowed instead of mutating the selection.
func (c *transformController) onDragEnd(ev Event) {
	c.onAfterChange(ev)
	c.s.relistenIn = c.s.opts.RelistenDelay
}
