package easel

// Transform is a 2D affine matrix in column-major [a, b, c, d, tx, ty] layout:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Transform [6]float64

// IdentityTransform is the identity affine matrix.
var IdentityTransform = Transform{1, 0, 0, 1, 0, 0}

// Multiply returns t * other (other applied first).
func (t Transform) Multiply(other Transform) Transform {
	return Transform{
		t[0]*other[0] + t[2]*other[1],
		t[1]*other[0] + t[3]*other[1],
		t[0]*other[2] + t[2]*other[3],
		t[1]*other[2] + t[3]*other[3],
		t[0]*other[4] + t[2]*other[5] + t[4],
		t[1]*other[4] + t[3]*other[5] + t[5],
	}
}

// Invert computes the inverse of the matrix.
// Returns the identity matrix if the matrix is singular.
func (t Transform) Invert() Transform {
	det := t[0]*t[3] - t[2]*t[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityTransform
	}
	invDet := 1.0 / det
	a := t[3] * invDet
	b := -t[1] * invDet
	c := -t[2] * invDet
	d := t[0] * invDet
	return Transform{
		a, b, c, d,
		-(a*t[4] + c*t[5]),
		-(b*t[4] + d*t[5]),
	}
}

// Apply transforms the point (x, y) by the matrix.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t[0]*x + t[2]*y + t[4], t[1]*x + t[3]*y + t[5]
}

// --- Geometry adapter ---

// Pure helpers bridging node geometry, stage space, and overlay (screen)
// space. Overlay artifacts live on an untransformed layer, so a stage-space
// point maps to overlay space by undoing the stage pan and zoom.

// PaddedClientRect returns n's client rect grown by padding on every side.
func PaddedClientRect(n Node, padding float64) Rect {
	r := n.ClientRect()
	return Rect{
		X:      r.X - padding,
		Y:      r.Y - padding,
		Width:  r.Width + 2*padding,
		Height: r.Height + 2*padding,
	}
}

// StageToOverlay converts a stage-space point to overlay space by subtracting
// the stage pan offset and dividing by the per-axis zoom scale.
func StageToOverlay(st Stage, p Vec2) Vec2 {
	pan := st.Pan()
	scale := st.Scale()
	return Vec2{
		X: (p.X - pan.X) / scale.X,
		Y: (p.Y - pan.Y) / scale.Y,
	}
}

// OverlayToStage is the inverse of StageToOverlay.
func OverlayToStage(st Stage, p Vec2) Vec2 {
	pan := st.Pan()
	scale := st.Scale()
	return Vec2{
		X: p.X*scale.X + pan.X,
		Y: p.Y*scale.Y + pan.Y,
	}
}

// SpanRect returns the axis-aligned rectangle spanning points a and b.
func SpanRect(a, b Vec2) Rect {
	return Rect{
		X:      min(a.X, b.X),
		Y:      min(a.Y, b.Y),
		Width:  max(a.X, b.X) - min(a.X, b.X),
		Height: max(a.Y, b.Y) - min(a.Y, b.Y),
	}
}
