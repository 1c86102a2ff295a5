package huecurve

import "honnef.co/go/huecurve/geom"

// DefaultDragMargin is how far, in pixels, handles may be dragged past the
// left and right edges of the curve.
const DefaultDragMargin = 14

// Option configures a [Curve] in [New].
type Option func(*settings)

type settings struct {
	guides     Guides
	handles    []geom.Point
	hasHandles bool
	margin     float64
	hit        HitTester
	keyboard   *Keyboard
	accuracy   float64
	origin     geom.Point
}

// WithGuides sets the fractions at which the curve is sampled. The default
// is [EvenGuides]([DefaultGuideCount]).
func WithGuides(g Guides) Option {
	return func(s *settings) { s.guides = g }
}

// WithHandles sets the initial handles, replacing the default pair of
// handles in the middle of the curve.
func WithHandles(handles []geom.Point) Option {
	return func(s *settings) {
		s.handles = handles
		s.hasHandles = true
	}
}

// WithDragMargin sets how far handles may be dragged past the left and right
// edges. Handles can never be dragged past the top or bottom edge.
func WithDragMargin(margin float64) Option {
	return func(s *settings) { s.margin = max(margin, 0) }
}

// WithHitTester sets the hit tester used to resolve gestures to handles.
func WithHitTester(h HitTester) Option {
	return func(s *settings) { s.hit = h }
}

// WithKeyboard makes the curve use kb for modifier state and deletion
// instead of a private keyboard. The curve doesn't close kb.
func WithKeyboard(kb *Keyboard) Option {
	return func(s *settings) { s.keyboard = kb }
}

// WithAccuracy sets the accuracy of arc length computations. The default is
// [geom.DefaultAccuracy].
func WithAccuracy(accuracy float64) Option {
	return func(s *settings) { s.accuracy = accuracy }
}

// WithOrigin sets the offset of the curve's surface within the viewport.
func WithOrigin(origin geom.Point) Option {
	return func(s *settings) { s.origin = origin }
}
