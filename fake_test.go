package easel

import "testing"

// In-memory stand-ins for the host scene graph, stage, and bus. Every
// selector test drives the real code paths through these fakes instead of a
// live rendering stage.

// --- Event table shared by all fakes ---

type fakeEvents struct {
	nextID   int
	handlers map[string]map[int]func(Event)
}

func (f *fakeEvents) On(event string, fn func(Event)) Subscription {
	if f.handlers == nil {
		f.handlers = make(map[string]map[int]func(Event))
	}
	f.nextID++
	m := f.handlers[event]
	if m == nil {
		m = make(map[int]func(Event))
		f.handlers[event] = m
	}
	m[f.nextID] = fn
	return &fakeSub{owner: f, event: event, id: f.nextID}
}

func (f *fakeEvents) fire(event string, ev Event) {
	for _, fn := range f.handlers[event] {
		fn(ev)
	}
}

func (f *fakeEvents) handlerCount(event string) int {
	return len(f.handlers[event])
}

type fakeSub struct {
	owner *fakeEvents
	event string
	id    int
}

func (s *fakeSub) Remove() {
	if m := s.owner.handlers[s.event]; m != nil {
		delete(m, s.id)
	}
}

// --- Node ---

type fakeNode struct {
	fakeEvents
	id        uint32
	name      string
	caps      Capability
	pos       Vec2
	size      Vec2
	rotation  float64
	draggable bool
	transform Transform
}

func newFakeNode(id uint32, r Rect) *fakeNode {
	return &fakeNode{
		id:        id,
		pos:       Vec2{X: r.X, Y: r.Y},
		size:      Vec2{X: r.Width, Y: r.Height},
		caps:      CapEdgeResizable,
		transform: Transform{1, 0, 0, 1, r.X, r.Y},
	}
}

func (n *fakeNode) ID() uint32 { return n.id }
func (n *fakeNode) Name() string { return n.name }
func (n *fakeNode) Caps() Capability { return n.caps }
func (n *fakeNode) Position() Vec2 { return n.pos }
func (n *fakeNode) Size() Vec2 { return n.size }
func (n *fakeNode) Rotation() float64 { return n.rotation }
func (n *fakeNode) Draggable() bool { return n.draggable }

func (n *fakeNode) ClientRect() Rect {
	return Rect{X: n.pos.X, Y: n.pos.Y, Width: n.size.X, Height: n.size.Y}
}

func (n *fakeNode) SetPosition(x, y float64) {
	n.pos = Vec2{X: x, Y: y}
	n.transform[4] = x
	n.transform[5] = y
}

func (n *fakeNode) SetDraggable(draggable bool) { n.draggable = draggable }
func (n *fakeNode) AbsoluteTransform() Transform { return n.transform }

// removeFromGraph simulates the host removing the node from the scene graph.
func (n *fakeNode) removeFromGraph() {
	n.fire(NodeEventRemove, Event{})
}

// --- Polyline node ---

type fakeLine struct {
	fakeNode
	points []float64
}

func newFakeLine(id uint32, points []float64) *fakeLine {
	l := &fakeLine{points: points}
	l.id = id
	l.caps = CapPointEditable
	l.transform = IdentityTransform
	return l
}

func (l *fakeLine) Points() []float64 { return l.points }

func (l *fakeLine) SetPoint(index int, x, y float64) {
	l.points[index*2] = x
	l.points[index*2+1] = y
}

// --- Overlay shape ---

type fakeShape struct {
	fakeNode
	stage     *fakeStage
	style     RectStyle
	offset    Vec2
	alpha     float64
	visible   bool
	destroyed bool
}

func (s *fakeShape) SetSize(w, h float64) { s.size = Vec2{X: w, Y: h} }
func (s *fakeShape) SetRotation(r float64) { s.rotation = r }
func (s *fakeShape) SetOffset(x, y float64) { s.offset = Vec2{X: x, Y: y} }
func (s *fakeShape) SetAlpha(a float64) { s.alpha = a }
func (s *fakeShape) Visible() bool { return s.visible }
func (s *fakeShape) SetVisible(visible bool) { s.visible = visible }
func (s *fakeShape) SetName(name string) { s.name = name }

func (s *fakeShape) Clone() Shape {
	return s.stage.newShape(s.style)
}

func (s *fakeShape) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.stage.liveShapes--
}

// --- Overlay container ---

type fakeContainer struct {
	children  []Shape
	destroyed bool
}

func (c *fakeContainer) Add(shape Shape) { c.children = append(c.children, shape) }
func (c *fakeContainer) RemoveChildren() { c.children = nil }
func (c *fakeContainer) Destroy() { c.destroyed = true }

// --- Transformer widget ---

var fakeAnchorNames = []string{
	"top-left", "top-center", "top-right",
	"middle-left", "middle-right",
	"bottom-left", "bottom-center", "bottom-right",
	"rotater",
}

type fakeTransformer struct {
	fakeEvents
	stage     *fakeStage
	nodes     []Node
	styler    func(Shape)
	anchors   []*fakeShape
	updates   int
	destroyed bool
}

func (t *fakeTransformer) SetNodes(nodes []Node) { t.nodes = nodes }
func (t *fakeTransformer) Nodes() []Node { return t.nodes }

func (t *fakeTransformer) ForceUpdate() {
	t.updates++
	if t.styler == nil {
		return
	}
	for _, a := range t.anchors {
		t.styler(a)
	}
}

func (t *fakeTransformer) SetAnchorStyler(fn func(Shape)) { t.styler = fn }

func (t *fakeTransformer) Destroy() {
	t.destroyed = true
	for _, a := range t.anchors {
		a.Destroy()
	}
}

func (t *fakeTransformer) anchor(name string) *fakeShape {
	for _, a := range t.anchors {
		if a.name == name {
			return a
		}
	}
	return nil
}

// --- Stage ---

type fakeStage struct {
	pointer     Vec2
	pointerOK   bool
	pan         Vec2
	scale       Vec2
	listening   bool
	content     []Node
	groups      map[uint32]Node
	transformer *fakeTransformer
	nextShapeID uint32
	liveShapes  int
	batchDraws  int
}

func newFakeStage() *fakeStage {
	return &fakeStage{
		scale:       Vec2{X: 1, Y: 1},
		listening:   true,
		groups:      make(map[uint32]Node),
		nextShapeID: 1000,
	}
}

func (st *fakeStage) PointerPosition() (Vec2, bool) { return st.pointer, st.pointerOK }
func (st *fakeStage) Pan() Vec2 { return st.pan }
func (st *fakeStage) Scale() Vec2 { return st.scale }
func (st *fakeStage) SetListening(listening bool) { st.listening = listening }
func (st *fakeStage) Listening() bool { return st.listening }
func (st *fakeStage) ContentChildren() []Node { return st.content }
func (st *fakeStage) BatchDraw() { st.batchDraws++ }

func (st *fakeStage) setPointer(x, y float64) {
	st.pointer = Vec2{X: x, Y: y}
	st.pointerOK = true
}

func (st *fakeStage) IntersectingNodes(rect Rect) []Node {
	var out []Node
	for _, n := range st.content {
		if n.ClientRect().Intersects(rect) {
			out = append(out, n)
		}
	}
	return out
}

func (st *fakeStage) GroupOf(n Node) Node {
	return st.groups[n.ID()]
}

func (st *fakeStage) newShape(style RectStyle) Shape {
	st.nextShapeID++
	st.liveShapes++
	sh := &fakeShape{stage: st, style: style, alpha: 1}
	sh.id = st.nextShapeID
	sh.transform = IdentityTransform
	return sh
}

func (st *fakeStage) NewRect(style RectStyle) Shape { return st.newShape(style) }

func (st *fakeStage) NewContainer() Container { return &fakeContainer{} }

func (st *fakeStage) NewTransformer(style TransformerStyle) Transformer {
	tr := &fakeTransformer{stage: st}
	for _, name := range fakeAnchorNames {
		a := st.newShape(RectStyle{Listening: true}).(*fakeShape)
		a.name = name
		a.visible = true
		tr.anchors = append(tr.anchors, a)
	}
	st.transformer = tr
	return tr
}

// --- Bus ---

type busRecord struct {
	name string
	ev   Event
}

type fakeBus struct {
	fakeEvents
	emitted []busRecord
}

func (b *fakeBus) Emit(event string, ev Event) {
	b.emitted = append(b.emitted, busRecord{name: event, ev: ev})
	b.fire(event, ev)
}

func (b *fakeBus) countEmitted(event string) int {
	n := 0
	for _, rec := range b.emitted {
		if rec.name == event {
			n++
		}
	}
	return n
}

func (b *fakeBus) lastEmitted(event string) (Event, bool) {
	for i := len(b.emitted) - 1; i >= 0; i-- {
		if b.emitted[i].name == event {
			return b.emitted[i].ev, true
		}
	}
	return Event{}, false
}

// --- Harness ---

func newTestSelector(t *testing.T, opts Options) (*Selector, *fakeStage, *fakeBus) {
	t.Helper()
	// Keep cursor hints out of ebiten during tests.
	if opts.SetCursor == nil {
		opts.SetCursor = func(Cursor) {}
	}
	stage := newFakeStage()
	bus := &fakeBus{}
	return New(stage, bus, opts), stage, bus
}

func selectionIDs(s *Selector) []uint32 {
	var ids []uint32
	for _, n := range s.Selected() {
		ids = append(ids, n.ID())
	}
	return ids
}

func assertSelection(t *testing.T, s *Selector, want ...uint32) {
	t.Helper()
	got := selectionIDs(s)
	if len(got) != len(want) {
		t.Fatalf("selection = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("selection = %v, want %v", got, want)
		}
	}
}
