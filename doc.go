// Package easel implements interactive object selection and transformation
// for 2D canvas diagramming surfaces: click-to-select, shift-click
// multi-select, rubber-band area selection, resize/rotate handles, highlight
// rectangles around multi-selected nodes, and per-vertex editing of
// polylines.
//
// Easel is an interaction layer, not a renderer. It sits on top of a
// retained-mode scene graph the host already owns, reached exclusively
// through the [Stage], [Bus], [Node], and [Transformer] interfaces. The host
// forwards raw pointer input over the bus; easel mutates the selection,
// keeps its overlays and the transform widget in sync, and emits
// selection/transform notifications back over the bus.
//
// # Quick start
//
//	sel := easel.New(stage, bus, easel.Options{MultiSelect: true})
//
//	// Host game loop, once per frame:
//	sel.Update(dt)
//
//	// Programmatic selection:
//	sel.Select(nodeA, nodeB)
//	sel.SelectAll()
//	sel.Deselect()
//
// The host adapts its node and stage types to the interfaces in graph.go.
// See examples/diagram for a complete Ebitengine host.
//
// # Events
//
// Consumed from the bus: mouse:down, mouse:move, mouse:up, mouse:click,
// mouse:out. Emitted: selected:changed, node:transform:start,
// node:transform:end, node:update:before, node:updated. Every emitted event
// carries the current selection as an ordered node list.
//
// # Threading
//
// Easel is single-threaded and frame-driven. Every method must be called
// from the host's update loop; [Selector.Update] advances all deferred work
// (highlight fades, coalesced overlay repositioning, the post-drag
// re-listen delay). There are no goroutines and no timers.
package easel
