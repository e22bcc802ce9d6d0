package easel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// highlightEntry tracks one highlight rect and the node subscriptions keeping
// it aligned. Geometry change handlers only flip the dirty bit; the pool's
// update pass recomputes the pose once per frame no matter how many change
// notifications arrived, so transform bursts never schedule redundant work.
type highlightEntry struct {
	node  Node
	shape Shape
	subs  []Subscription
	dirty bool
	fade  *gween.Tween
}

// highlightPool owns the dashed rectangles drawn around each member of a
// multi-selection, keyed by node id.
type highlightPool struct {
	stage   Stage
	layer   Container
	style   HighlightStyle
	fadeDur float32
	entries map[uint32]*highlightEntry
}

func newHighlightPool(stage Stage, layer Container, style HighlightStyle, fadeDur float32) *highlightPool {
	return &highlightPool{
		stage:   stage,
		layer:   layer,
		style:   style,
		fadeDur: fadeDur,
		entries: make(map[uint32]*highlightEntry),
	}
}

// add creates a highlight rect for n and subscribes to every geometry change
// notification that could move it. No-op if n already has one.
func (p *highlightPool) add(n Node) {
	id := n.ID()
	if _, ok := p.entries[id]; ok {
		return
	}

	shape := p.stage.NewRect(RectStyle{
		Stroke:      p.style.Stroke,
		StrokeWidth: p.style.StrokeWidth,
		Dash:        p.style.Dash,
	})
	shape.SetName("selection-highlight")
	p.layer.Add(shape)

	e := &highlightEntry{
		node:  n,
		shape: shape,
		fade:  gween.New(0, 1, p.fadeDur, ease.OutQuad),
	}
	shape.SetAlpha(0)
	for _, event := range geometryChangeEvents {
		e.subs = append(e.subs, n.On(event, func(Event) {
			e.dirty = true
		}))
	}
	p.entries[id] = e
	p.sync(e)
}

// remove releases n's highlight, if any.
func (p *highlightPool) remove(n Node) {
	e, ok := p.entries[n.ID()]
	if !ok {
		return
	}
	p.release(e)
	delete(p.entries, n.ID())
}

// clear releases every highlight in the pool.
func (p *highlightPool) clear() {
	for id, e := range p.entries {
		p.release(e)
		delete(p.entries, id)
	}
}

// size returns the number of live highlights.
func (p *highlightPool) size() int {
	return len(p.entries)
}

// has reports whether n currently has a highlight.
func (p *highlightPool) has(n Node) bool {
	_, ok := p.entries[n.ID()]
	return ok
}

// update advances fades and recomputes the pose of every dirty entry.
// Called once per frame from Selector.Update.
func (p *highlightPool) update(dt float32) {
	for _, e := range p.entries {
		if e.fade != nil {
			alpha, done := e.fade.Update(dt)
			e.shape.SetAlpha(float64(alpha))
			if done {
				e.fade = nil
			}
		}
		if e.dirty {
			e.dirty = false
			p.sync(e)
		}
	}
}

// sync recomputes the highlight's pose from its source node: padded client
// rect, converted to overlay space, with the node's rotation applied.
func (p *highlightPool) sync(e *highlightEntry) {
	r := PaddedClientRect(e.node, p.style.Padding)
	pos := StageToOverlay(p.stage, Vec2{X: r.X, Y: r.Y})
	scale := p.stage.Scale()
	e.shape.SetPosition(pos.X, pos.Y)
	e.shape.SetSize(r.Width/scale.X, r.Height/scale.Y)
	e.shape.SetRotation(e.node.Rotation())
}

func (p *highlightPool) release(e *highlightEntry) {
	for _, sub := range e.subs {
		sub.Remove()
	}
	e.subs = nil
	e.shape.Destroy()
}
