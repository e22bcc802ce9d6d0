package easel

import "github.com/hajimehoshi/ebiten/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied;
// the host's renderer decides how to composite overlay strokes and fills.
type Color struct {
	R, G, B, A float64
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and pan/scale pairs
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  max(r.X+r.Width, other.X+other.Width) - x,
		Height: max(r.Y+r.Height, other.Y+other.Height) - y,
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Capability is a bitmask describing what interactions a node supports.
// The selector branches on capabilities rather than concrete node types, so
// hosts with custom node kinds only need to report the right bits.
type Capability uint8

const (
	// CapEdgeResizable nodes show the side/top/bottom resize anchors when they
	// are the sole selection. Text-like nodes and groups typically omit this
	// bit, leaving only corner and rotate anchors.
	CapEdgeResizable Capability = 1 << iota
	// CapPointEditable nodes expose a flat coordinate-pair list (polylines).
	// Selecting exactly one such node enters vertex editing mode. Nodes
	// reporting this bit must also implement PointEditable.
	CapPointEditable
	// CapGroupable nodes participate in outermost-enclosing-group resolution
	// on click (Stage.GroupOf).
	CapGroupable
)

// Cursor is a pointer cursor hint applied while hovering transform anchors.
type Cursor uint8

const (
	CursorDefault Cursor = iota // host default arrow
	CursorPointer               // pointing hand, used over vertex/point anchors
	CursorGrab                  // grab hand, used over the rotate anchor
)

// EbitenShape returns the ebiten.CursorShapeType corresponding to this Cursor.
// Ebitengine has no grab-hand shape, so CursorGrab maps to the move cursor.
func (c Cursor) EbitenShape() ebiten.CursorShapeType {
	switch c {
	case CursorPointer:
		return ebiten.CursorShapePointer
	case CursorGrab:
		return ebiten.CursorShapeMove
	default:
		return ebiten.CursorShapeDefault
	}
}

// --- Event names ---

// Bus events consumed by the selector. The host forwards its raw pointer
// input through the bus under these names.
const (
	EventMouseDown  = "mouse:down"
	EventMouseMove  = "mouse:move"
	EventMouseUp    = "mouse:up"
	EventMouseClick = "mouse:click"
	EventMouseOut   = "mouse:out"
)

// Bus events emitted by the selector. Each payload carries the current
// selection as an ordered list of node handles.
const (
	EventSelectedChanged    = "selected:changed"
	EventNodeTransformStart = "node:transform:start"
	EventNodeTransformEnd   = "node:transform:end"
	EventNodeUpdateBefore   = "node:update:before"
	EventNodeUpdated        = "node:updated"
)

// Node-level events consumed via Node.On.
const (
	NodeEventRemove    = "remove"
	NodeEventTransform = "transform"
	NodeEventDragMove  = "dragmove"
)

// Transformer widget lifecycle events consumed via Transformer.On.
const (
	TransformerEventTransformStart = "transformstart"
	TransformerEventTransformEnd   = "transformend"
	TransformerEventDragStart      = "dragstart"
	TransformerEventDragEnd        = "dragend"
)

// Anchor shape events consumed via Shape.On on transform anchors.
const (
	AnchorEventDown  = "mousedown"
	AnchorEventUp    = "mouseup"
	AnchorEventEnter = "mouseenter"
	AnchorEventLeave = "mouseleave"
)

// geometryChangeEvents is the fixed list of node notifications that can move
// a highlight overlay out of alignment with its source node.
var geometryChangeEvents = []string{
	"widthchange",
	"heightchange",
	"scalexchange",
	"scaleychange",
	"skewxchange",
	"skewychange",
	"rotationchange",
	"offsetxchange",
	"offsetychange",
	"strokewidthchange",
	"transformchange",
}

// Event is the payload carried by every bus, node, and widget event.
// Fields that don't apply to a given event are left at their zero values.
type Event struct {
	// Nodes is the current selection in selection order. Valid on all events
	// emitted by the selector.
	Nodes []Node
	// Target is the hit-tested node for mouse events. Nil when the pointer is
	// over empty canvas (the stage itself).
	Target Node
	// X and Y are the pointer position in stage space.
	X, Y float64
	// Button is the pressed mouse button.
	Button MouseButton
	// Modifiers is the keyboard modifier state at event time.
	Modifiers KeyModifiers
}
