package easel

import "github.com/hajimehoshi/ebiten/v2"

// Default style values applied by Options.withDefaults when the host leaves
// the corresponding fields zero.
const (
	defaultHighlightPadding = 4.0
	defaultStrokeWidth      = 1.0
	defaultAnchorSize       = 8.0
	defaultRelistenDelay    = 0.3  // seconds before stage listening resumes after a drag
	defaultHighlightFade    = 0.15 // seconds for a highlight rect to fade in
)

// RectStyle describes an overlay rectangle created via Stage.NewRect.
// A Fill with A == 0 means no fill.
type RectStyle struct {
	Stroke       Color
	StrokeWidth  float64
	Fill         Color
	Dash         []float64
	CornerRadius float64
	// Listening marks the shape as a pointer event target. Only vertex
	// anchors listen; highlight rects and the marquee are inert.
	Listening bool
}

// TransformerStyle configures the host's resize/rotate handle widget.
type TransformerStyle struct {
	BorderStroke       Color
	BorderStrokeWidth  float64
	BorderDash         []float64
	AnchorStroke       Color
	AnchorFill         Color
	AnchorSize         float64
	AnchorCornerRadius float64
	RotateEnabled      bool
}

// HighlightStyle configures the dashed rectangles drawn around each member of
// a multi-selection.
type HighlightStyle struct {
	Stroke      Color
	StrokeWidth float64
	Dash        []float64
	// Padding grows the highlight past the node's client rect on every side.
	Padding float64
}

// MarqueeStyle configures the rubber-band selection rectangle.
type MarqueeStyle struct {
	Stroke      Color
	Fill        Color
	StrokeWidth float64
}

// Options is the host-provided configuration bundle for New.
// The zero value is usable: the selector starts enabled, single-select, with
// the documented default styles.
type Options struct {
	// Disabled starts the selector disabled; Toggle can enable it later.
	Disabled bool
	// MultiSelect enables shift-click selection toggling.
	MultiSelect bool

	Transformer TransformerStyle
	Highlight   HighlightStyle
	Marquee     MarqueeStyle

	// RelistenDelay is the pause, in seconds of Update time, between a handle
	// drag ending and stage-wide pointer listening being re-enabled. The
	// delay swallows the spurious click fired by the same interaction.
	RelistenDelay float32
	// HighlightFade is the fade-in duration for highlight rects, in seconds.
	HighlightFade float32

	// SetCursor applies a cursor hint while hovering transform anchors.
	// Defaults to ebiten.SetCursorShape via Cursor.EbitenShape.
	SetCursor func(Cursor)
}

// withDefaults fills unset fields with the documented defaults.
func (o Options) withDefaults() Options {
	if o.Highlight.Padding == 0 {
		o.Highlight.Padding = defaultHighlightPadding
	}
	if o.Highlight.StrokeWidth == 0 {
		o.Highlight.StrokeWidth = defaultStrokeWidth
	}
	if o.Highlight.Stroke == (Color{}) {
		o.Highlight.Stroke = Color{R: 0.2, G: 0.55, B: 1, A: 1}
	}
	if o.Highlight.Dash == nil {
		o.Highlight.Dash = []float64{4, 4}
	}
	if o.Marquee.StrokeWidth == 0 {
		o.Marquee.StrokeWidth = defaultStrokeWidth
	}
	if o.Marquee.Stroke == (Color{}) {
		o.Marquee.Stroke = Color{R: 0.2, G: 0.55, B: 1, A: 1}
	}
	if o.Marquee.Fill == (Color{}) {
		o.Marquee.Fill = Color{R: 0.2, G: 0.55, B: 1, A: 0.15}
	}
	if o.Transformer.AnchorSize == 0 {
		o.Transformer.AnchorSize = defaultAnchorSize
	}
	if o.Transformer.BorderStrokeWidth == 0 {
		o.Transformer.BorderStrokeWidth = defaultStrokeWidth
	}
	if o.RelistenDelay == 0 {
		o.RelistenDelay = defaultRelistenDelay
	}
	if o.HighlightFade == 0 {
		o.HighlightFade = defaultHighlightFade
	}
	if o.SetCursor == nil {
		o.SetCursor = func(c Cursor) {
			ebiten.SetCursorShape(c.EbitenShape())
		}
	}
	return o
}
