package easel

// The selector never owns scene-graph objects. Everything it touches in the
// host's retained-mode graph is reached through the interfaces in this file;
// the host adapts its own node and stage types to them. Overlay artifacts
// (highlight rects, the marquee, vertex anchors) are created through the
// Stage factories and destroyed by the selector, but live in the host's tree.

// Subscription is the handle returned by every event registration. Removing
// it unregisters the callback; Remove is idempotent.
type Subscription interface {
	Remove()
}

// Bus is the application event bus connecting the selector to the host.
// Raw pointer input arrives under the EventMouse* names; selection and
// transform notifications leave under the EventSelectedChanged and
// EventNode* names.
type Bus interface {
	On(event string, fn func(Event)) Subscription
	Emit(event string, ev Event)
}

// Node is a non-owning handle to a drawable object in the host scene graph.
//
// ID is a stable non-zero identity; nodes reporting ID 0 carry no identity
// and are never click-selectable. ClientRect is the node's axis-aligned
// bounding rect in stage space, including stroke. AbsoluteTransform is the
// node's full local-to-stage affine matrix.
type Node interface {
	ID() uint32
	Name() string
	Caps() Capability
	ClientRect() Rect
	Position() Vec2
	SetPosition(x, y float64)
	Size() Vec2
	Rotation() float64
	Draggable() bool
	SetDraggable(draggable bool)
	AbsoluteTransform() Transform
	On(event string, fn func(Event)) Subscription
}

// PointEditable is implemented by polyline nodes whose vertices can be edited
// one coordinate pair at a time. Points returns the flat [x0 y0 x1 y1 ...]
// list in the node's local space; SetPoint overwrites the pair at the given
// pair index. Nodes implementing this must report CapPointEditable.
type PointEditable interface {
	Node
	Points() []float64
	SetPoint(index int, x, y float64)
}

// Shape is an overlay artifact created by the selector through the Stage
// factories: a highlight rectangle, the rubber-band marquee, or a vertex
// anchor. Shapes are Nodes (they live in the host tree and can receive
// events) with pose setters the selector uses to keep them glued to their
// source node.
type Shape interface {
	Node
	SetSize(w, h float64)
	SetRotation(r float64)
	SetOffset(x, y float64)
	SetAlpha(a float64)
	Visible() bool
	SetVisible(visible bool)
	SetName(name string)
	Clone() Shape
	Destroy()
}

// Container is the internal overlay portal layer holding the selector's
// transient artifacts, separate from the host's content layer. The host is
// expected to render it untransformed (screen space).
type Container interface {
	Add(shape Shape)
	RemoveChildren()
	Destroy()
}

// Transformer is the host's built-in resize/rotate handle widget. The
// selector keeps its node list mirroring the current selection and styles
// its anchors through the styler callback, which the widget must invoke for
// every anchor each time it redraws. Anchor shapes are named by position:
// "top-left", "top-center", "top-right", "middle-left", "middle-right",
// "bottom-left", "bottom-center", "bottom-right", and "rotater".
//
// The widget must keep its anchor Shape instances stable for its lifetime.
// The selector attaches press/hover handlers to each anchor once, keyed by
// name; a widget that recreates anchors between redraws would leave the new
// instances without handlers.
type Transformer interface {
	SetNodes(nodes []Node)
	Nodes() []Node
	ForceUpdate()
	SetAnchorStyler(fn func(anchor Shape))
	On(event string, fn func(Event)) Subscription
	Destroy()
}

// Stage is the selector's window into the host canvas: pointer and viewport
// queries, bulk hit testing, group resolution, and factories for the overlay
// artifacts the selector owns.
type Stage interface {
	// PointerPosition returns the current pointer position in stage space.
	// ok is false when the pointer has never been over the canvas.
	PointerPosition() (pos Vec2, ok bool)
	// Pan is the stage's current pan offset; Scale the per-axis zoom.
	Pan() Vec2
	Scale() Vec2
	// SetListening toggles stage-wide pointer event delivery.
	SetListening(listening bool)
	Listening() bool
	// IntersectingNodes returns the content nodes overlapping rect.
	IntersectingNodes(rect Rect) []Node
	// GroupOf returns the outermost enclosing group of n, or nil.
	GroupOf(n Node) Node
	// ContentChildren returns every child of the main content layer.
	ContentChildren() []Node

	NewRect(style RectStyle) Shape
	NewContainer() Container
	NewTransformer(style TransformerStyle) Transformer

	// BatchDraw schedules a redraw of the canvas.
	BatchDraw()
}
