// Package huecurve implements an interactive curve editor for picking colors
// along a path through a hue/lightness field.
//
// A [Curve] owns an ordered list of handles. The handles are interpolated with
// a uniform cubic B-spline (see [geom.Basis]) and the resulting path is
// sampled at fixed fractions of its arc length, the curve's [Guides]. Moving,
// adding and deleting handles moves the guides along with the path, and every
// change is announced with an update event. Consumers, such as the gradient
// sampler in package gradient, query [Curve.HandlePositions] in response.
//
// # Input
//
// The curve doesn't talk to any windowing system. Hosts feed it pointer
// gestures ([Curve.DragStart], [Curve.Drag], [Curve.DragEnd], [Curve.Click])
// in curve-local coordinates and key events through a [Keyboard]. Which
// handle lies under the pointer is decided by a [HitTester], normally
// implemented by whatever draws the handles.
//
// # Events
//
// [Emitter] is the small synchronous publish/subscribe type used throughout
// the module. Listeners are identified by the handle returned when they are
// registered, not by function value.
//
// # Logging
//
// The package logs through [log/slog]. Nothing is logged unless a logger is
// installed with [SetLogger].
package huecurve
