package easel

import (
	"fmt"
	"strconv"
	"strings"
)

// anchorPrefix names vertex anchors by coordinate-pair index; syncLineAnchors
// parses the index back out of the name.
const anchorPrefix = "anchor-"

// lineEdit is the vertex editing state, live while the selection is exactly
// one point-editable node. It holds the line's transform subscriptions and
// one anchor shape per coordinate pair, parented under the selector's overlay
// container.
type lineEdit struct {
	node    PointEditable
	subs    []Subscription
	anchors []Shape
}

// enterLineEdit builds vertex anchors for pe and keeps them glued to the line
// while it moves or transforms.
func (s *Selector) enterLineEdit(pe PointEditable) {
	if s.line != nil {
		s.exitLineEdit()
	}
	le := &lineEdit{node: pe}
	s.line = le

	resync := func(Event) {
		s.syncLineAnchors()
	}
	le.subs = append(le.subs,
		pe.On(NodeEventTransform, resync),
		pe.On(NodeEventDragMove, resync),
	)

	points := pe.Points()
	for i := 0; i*2+1 < len(points); i++ {
		anchor := s.anchorTmpl.Clone()
		anchor.SetName(fmt.Sprintf("%s%d", anchorPrefix, i))
		anchor.SetVisible(true)
		anchor.SetDraggable(true)
		s.overlay.Add(anchor)

		a, idx := anchor, i
		le.subs = append(le.subs, anchor.On(NodeEventDragMove, func(Event) {
			s.moveLinePoint(a, idx)
		}))
		le.anchors = append(le.anchors, anchor)
	}
}

// exitLineEdit tears down vertex editing: line subscriptions released, anchor
// shapes destroyed and detached from the overlay container. The anchors are
// the container's only children while editing is live (highlights require a
// multi-selection, editing a sole one), so clearing it wholesale is safe.
func (s *Selector) exitLineEdit() {
	le := s.line
	if le == nil {
		return
	}
	s.line = nil
	for _, sub := range le.subs {
		sub.Remove()
	}
	for _, anchor := range le.anchors {
		anchor.Destroy()
	}
	le.anchors = nil
	s.overlay.RemoveChildren()
}

// moveLinePoint writes a dragged anchor's position back into the line's point
// list: overlay space, to stage space, to the line's local space through the
// inverse absolute transform.
func (s *Selector) moveLinePoint(anchor Shape, index int) {
	le := s.line
	if le == nil {
		return
	}
	stageP := OverlayToStage(s.stage, anchor.Position())
	lx, ly := le.node.AbsoluteTransform().Invert().Apply(stageP.X, stageP.Y)
	le.node.SetPoint(index, lx, ly)
}

// syncLineAnchors repositions every anchor over its coordinate pair: the
// line-local point mapped through the absolute transform into stage space,
// then into overlay space. Anchors whose name does not encode a valid,
// in-range pair index are left untouched.
func (s *Selector) syncLineAnchors() {
	le := s.line
	if le == nil {
		return
	}
	points := le.node.Points()
	t := le.node.AbsoluteTransform()
	size := s.opts.Transformer.AnchorSize

	for _, anchor := range le.anchors {
		index, ok := anchorIndex(anchor.Name())
		if !ok || index*2+1 >= len(points) {
			continue
		}
		sx, sy := t.Apply(points[index*2], points[index*2+1])
		pos := StageToOverlay(s.stage, Vec2{X: sx, Y: sy})
		anchor.SetPosition(pos.X, pos.Y)
		anchor.SetSize(size, size)
		anchor.SetOffset(size/2, size/2)
	}
}

// anchorIndex parses the coordinate-pair index out of an anchor name.
func anchorIndex(name string) (int, bool) {
	rest, found := strings.CutPrefix(name, anchorPrefix)
	if !found {
		return 0, false
	}
	index, err := strconv.Atoi(rest)
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}
