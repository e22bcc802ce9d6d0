package easel

// The pointer state machine has two states: idle and rubber-banding. Only the
// primary button participates, and every handler early-returns while the
// selector is disabled. The marquee rect is positioned in stage space on the
// host's own layers; it is not part of the overlay container.

// rubberBand is the in-progress marquee drag state.
type rubberBand struct {
	active bool
	start  Vec2
}

// pointerAt resolves the pointer position for a mouse event, preferring the
// stage's own query and falling back to the event coordinates.
func (s *Selector) pointerAt(ev Event) Vec2 {
	if pos, ok := s.stage.PointerPosition(); ok {
		return pos
	}
	return Vec2{X: ev.X, Y: ev.Y}
}

// onMouseDown arms rubber-band selection on a press over empty canvas.
// The press first clears the current selection.
func (s *Selector) onMouseDown(ev Event) {
	if !s.enabled || ev.Button != MouseButtonLeft {
		return
	}
	if ev.Target != nil {
		return
	}

	s.Deselect()

	s.rubber.start = s.pointerAt(ev)
	s.rubber.active = true
	s.marquee.SetPosition(s.rubber.start.X, s.rubber.start.Y)
	s.marquee.SetSize(0, 0)
	s.marquee.SetVisible(false)
}

// onMouseMove grows the marquee to span the drag start and the current
// pointer position.
func (s *Selector) onMouseMove(ev Event) {
	if !s.enabled || !s.rubber.active {
		return
	}
	r := SpanRect(s.rubber.start, s.pointerAt(ev))
	s.marquee.SetPosition(r.X, r.Y)
	s.marquee.SetSize(r.Width, r.Height)
	s.marquee.SetVisible(true)
	s.stage.BatchDraw()
}

// onMouseUp resolves the marquee: every content node intersecting its area
// becomes the new selection.
func (s *Selector) onMouseUp(ev Event) {
	if !s.enabled || !s.rubber.active {
		return
	}
	s.rubber.active = false

	r := SpanRect(s.rubber.start, s.pointerAt(ev))
	s.marquee.SetVisible(false)
	s.Select(s.stage.IntersectingNodes(r)...)
}

// onMouseClick selects the clicked node, resolved to its outermost enclosing
// group when it has one. Shift-click with multi-select enabled toggles the
// target in or out of the existing selection.
func (s *Selector) onMouseClick(ev Event) {
	if !s.enabled || ev.Button != MouseButtonLeft {
		return
	}
	target := ev.Target
	if target == nil || target.ID() == 0 {
		return
	}
	if group := s.stage.GroupOf(target); group != nil {
		target = group
	}

	if ev.Modifiers&ModShift != 0 && s.opts.MultiSelect {
		if s.IsSelected(target) {
			s.Deselect(target)
		} else {
			s.Select(append(s.Selected(), target)...)
		}
		return
	}
	s.Select(target)
}

// onMouseOut cancels an in-progress rubber-band drag without committing a
// selection.
func (s *Selector) onMouseOut(ev Event) {
	if !s.enabled || !s.rubber.active {
		return
	}
	s.rubber.active = false
	s.marquee.SetVisible(false)
	s.stage.BatchDraw()
}
