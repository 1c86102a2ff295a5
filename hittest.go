package huecurve

import "honnef.co/go/huecurve/geom"

// DefaultHandleRadius is the radius within which a pointer hits a handle
// when no [HitTester] is configured.
const DefaultHandleRadius = 7

// HitTester resolves a point in curve-local coordinates to the handle drawn
// there. It is implemented by whatever draws the handles, as only it knows
// their on-screen extent and stacking order.
type HitTester interface {
	HitTest(p geom.Point) (handle int, ok bool)
}

// HitTesterFunc adapts a function to the [HitTester] interface.
type HitTesterFunc func(p geom.Point) (int, bool)

func (fn HitTesterFunc) HitTest(p geom.Point) (int, bool) { return fn(p) }

// HandleAt returns the index of the handle whose disc of the given radius
// contains p. Later handles are drawn on top of earlier ones and win ties.
func HandleAt(handles []geom.Point, p geom.Point, radius float64) (int, bool) {
	r2 := radius * radius
	for i := len(handles) - 1; i >= 0; i-- {
		if handles[i].DistanceSquared(p) <= r2 {
			return i, true
		}
	}
	return -1, false
}
