package geom

// Basis interpolates points with a uniform cubic B-spline and returns the
// result as a path of cubic Béziers.
//
// The curve is clamped at both ends: it starts at the first point and ends at
// the last, but in general passes through none of the interior points, being
// pulled toward them instead. This is the same curve that d3's curveBasis
// produces, so paths can be compared against a browser rendering.
//
// Degenerate inputs produce degenerate paths: no points yield an empty path,
// a single point yields a lone MoveTo, and two points yield a straight line.
func Basis(points []Point) BezPath {
	var p BezPath
	switch len(points) {
	case 0:
		return nil
	case 1:
		p.MoveTo(points[0])
		return p
	case 2:
		p.MoveTo(points[0])
		p.LineTo(points[1])
		return p
	}

	p = make(BezPath, 0, len(points)+2)
	p.MoveTo(points[0])
	p.LineTo(Point(Vec2(points[0]).Mul(5).Add(Vec2(points[1])).Div(6)))
	// b0 and b1 are the two most recent points of the control polygon; each
	// further point closes one span of the spline.
	b0, b1 := points[0], points[1]
	for _, pt := range points[2:] {
		basisSpan(&p, b0, b1, pt)
		b0, b1 = b1, pt
	}
	basisSpan(&p, b0, b1, b1)
	p.LineTo(b1)
	return p
}

// basisSpan appends the Bézier form of the B-spline span whose control
// polygon is p0, p1, p2. The span ends at (p0 + 4·p1 + p2) / 6.
func basisSpan(p *BezPath, p0, p1, p2 Point) {
	c1 := Point(Vec2(p0).Mul(2).Add(Vec2(p1)).Div(3))
	c2 := Point(Vec2(p0).Add(Vec2(p1).Mul(2)).Div(3))
	end := Point(Vec2(p0).Add(Vec2(p1).Mul(4)).Add(Vec2(p2)).Div(6))
	p.CubicTo(c1, c2, end)
}
