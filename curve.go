package huecurve

import (
	"fmt"
	"slices"

	"honnef.co/go/huecurve/geom"
)

// Event identifies the events emitted by a [Curve].
type Event int

const (
	// EventUpdate is emitted after every change to the curve's geometry or
	// selection. It carries no payload; listeners query the curve.
	EventUpdate Event = iota + 1
	EventDragStart
	EventDrag
	EventDragEnd
	EventClick
)

func (ev Event) String() string {
	switch ev {
	case EventUpdate:
		return "update"
	case EventDragStart:
		return "dragstart"
	case EventDrag:
		return "drag"
	case EventDragEnd:
		return "dragend"
	case EventClick:
		return "click"
	default:
		return fmt.Sprintf("Event(%d)", int(ev))
	}
}

// Gesture describes a pointer gesture delivered to a curve.
type Gesture struct {
	Kind Event
	// Point is the pointer position in curve-local coordinates.
	Point geom.Point
	// Handle is the index of the handle under the pointer, or -1.
	Handle int
}

// maxNestedUpdates bounds how many times update listeners may cause another
// update from within an update.
const maxNestedUpdates = 8

// Curve is an editable curve. Its shape is defined by an ordered list of
// handles, interpolated with a basis spline (see [geom.Basis]). The curve is
// sampled at fixed fractions of its arc length, its guides, whose positions
// follow the handles as they are edited.
//
// Handles are edited with pointer gestures and the keyboard:
//
//   - dragging a handle moves it, within the curve's bounds widened by the
//     drag margin on the left and right;
//   - starting a drag on empty space while shift is held appends a handle
//     there and drags it;
//   - clicking or starting to drag a handle selects it;
//   - releasing delete or backspace removes the selected handle, selecting
//     the handle before it.
//
// Every change is followed by [EventUpdate]. Geometry is always recomputed
// in full (interpolation, arc length, guide positions) before the event is
// emitted, so that listeners and renderers observe the same frame.
//
// A Curve is not safe for concurrent use.
type Curve struct {
	size     geom.Size
	origin   geom.Point
	margin   float64
	accuracy float64
	guides   Guides

	handles []geom.Point
	// seedHandles is set when the curve was created without a size and
	// without explicit handles; the default handles are placed once the
	// size is known.
	seedHandles bool
	selected    int
	dragging    int

	hit          HitTester
	kb           *Keyboard
	ownsKeyboard bool
	keyListeners []*Listener[KeyEvent]

	path      *geom.Path
	positions []geom.Point

	updates  Emitter[Event, struct{}]
	gestures Emitter[Event, Gesture]
	emitting bool
	pending  bool
}

var deleteKeys = [...]string{"delete", "backspace"}

// New returns a curve for a surface of the given size.
//
// Width and height must be finite and positive. As a special case, both may
// be zero for a surface that hasn't been laid out yet; the curve then waits
// for [Curve.UpdateSize] before placing its default handles.
func New(width, height float64, opts ...Option) (*Curve, error) {
	s := settings{
		guides:   EvenGuides(DefaultGuideCount),
		margin:   DefaultDragMargin,
		accuracy: geom.DefaultAccuracy,
	}
	for _, opt := range opts {
		opt(&s)
	}

	sz := geom.Sz(width, height)
	if !sz.IsValid() && sz != (geom.Size{}) {
		return nil, fmt.Errorf("new curve of size %s: %w", sz, ErrInvalidDimension)
	}
	guides, err := s.guides.normalize()
	if err != nil {
		return nil, fmt.Errorf("new curve: %w", err)
	}
	if !s.origin.IsFinite() {
		return nil, fmt.Errorf("new curve with origin %s: %w", s.origin, ErrNonFinitePoint)
	}

	c := &Curve{
		size:     sz,
		origin:   s.origin,
		margin:   s.margin,
		accuracy: s.accuracy,
		guides:   guides,
		selected: -1,
		dragging: -1,
		hit:      s.hit,
		kb:       s.keyboard,
	}
	switch {
	case s.hasHandles:
		if err := checkFinite(s.handles); err != nil {
			return nil, fmt.Errorf("new curve: %w", err)
		}
		c.handles = slices.Clone(s.handles)
	case sz.IsZero():
		c.seedHandles = true
	default:
		c.handles = defaultHandles(sz)
	}

	if c.kb == nil {
		c.kb = NewKeyboard(nil)
		c.ownsKeyboard = true
	}
	for _, key := range deleteKeys {
		c.keyListeners = append(c.keyListeners, c.kb.OnKey(KeyUp, key, func(KeyEvent) {
			c.DeleteSelected()
		}))
	}

	c.recompute()
	return c, nil
}

func defaultHandles(sz geom.Size) []geom.Point {
	return []geom.Point{
		geom.Pt(sz.Width/2, sz.Height/4),
		geom.Pt(sz.Width/2, sz.Height/1.5),
	}
}

func checkFinite(points []geom.Point) error {
	for i, pt := range points {
		if !pt.IsFinite() {
			return fmt.Errorf("handle %d at %s: %w", i, pt, ErrNonFinitePoint)
		}
	}
	return nil
}

// Close detaches the curve from its keyboard and removes all listeners. A
// keyboard created by the curve itself is closed as well.
func (c *Curve) Close() {
	for i, key := range deleteKeys {
		if i < len(c.keyListeners) {
			c.kb.OffKey(KeyUp, key, c.keyListeners[i])
		}
	}
	c.keyListeners = nil
	if c.ownsKeyboard {
		c.kb.Close()
	}
	c.updates.Clear()
	c.gestures.Clear()
}

// OnUpdate registers fn to be called after every change to the curve.
func (c *Curve) OnUpdate(fn func()) *Listener[struct{}] {
	return c.updates.On(EventUpdate, func(struct{}) { fn() })
}

// OffUpdate removes a listener registered with [Curve.OnUpdate].
func (c *Curve) OffUpdate(l *Listener[struct{}]) {
	c.updates.Off(EventUpdate, l)
}

// OnGesture registers fn for a gesture event. Gesture listeners run before
// the curve acts on the gesture.
func (c *Curve) OnGesture(ev Event, fn func(Gesture)) *Listener[Gesture] {
	return c.gestures.On(ev, fn)
}

// OffGesture removes a listener registered with [Curve.OnGesture].
func (c *Curve) OffGesture(ev Event, l *Listener[Gesture]) {
	c.gestures.Off(ev, l)
}

// Keyboard returns the keyboard the curve reads modifiers and deletions
// from.
func (c *Curve) Keyboard() *Keyboard { return c.kb }

// SetHitTester replaces the hit tester. A nil hit tester restores the
// default, which tests discs of radius [DefaultHandleRadius].
func (c *Curve) SetHitTester(h HitTester) { c.hit = h }

func (c *Curve) Size() geom.Size     { return c.size }
func (c *Curve) Origin() geom.Point  { return c.origin }
func (c *Curve) DragMargin() float64 { return c.margin }

// Guides returns a copy of the curve's guide fractions.
func (c *Curve) Guides() Guides { return slices.Clone(c.guides) }

// Handles returns a copy of the curve's handles.
func (c *Curve) Handles() []geom.Point { return slices.Clone(c.handles) }

// Selected returns the index of the selected handle.
func (c *Curve) Selected() (int, bool) {
	return c.selected, c.selected >= 0
}

// Path returns a copy of the interpolated path, in curve-local coordinates.
func (c *Curve) Path() geom.BezPath { return c.path.Elements() }

// Length returns the arc length of the interpolated path.
func (c *Curve) Length() float64 { return c.path.Length() }

// Bounds returns the region handles can be dragged in.
func (c *Curve) Bounds() geom.Rect {
	return c.size.Rect().Inflate(c.margin, 0)
}

// HandlePositions returns the positions of the guides in viewport
// coordinates, in guide order: the curve-local positions offset by the
// curve's origin. The result is a snapshot and isn't affected by later
// changes to the curve.
//
// A curve without handles has no path; all of its guides then resolve to the
// origin.
func (c *Curve) HandlePositions() []geom.Point {
	out := make([]geom.Point, len(c.positions))
	for i, pt := range c.positions {
		out[i] = pt.Translate(geom.Vec2(c.origin))
	}
	return out
}

// GuidePositions is like [Curve.HandlePositions] but reports
// [ErrEmptyHandleSet] alongside the fallback positions when the curve has no
// handles.
func (c *Curve) GuidePositions() ([]geom.Point, error) {
	out := c.HandlePositions()
	if len(c.handles) == 0 {
		return out, ErrEmptyHandleSet
	}
	return out, nil
}

// LocalGuidePositions returns the positions of the guides in curve-local
// coordinates.
func (c *Curve) LocalGuidePositions() []geom.Point {
	return slices.Clone(c.positions)
}

// AddHandles replaces all handles with points and clears the selection.
func (c *Curve) AddHandles(points []geom.Point) error {
	if err := checkFinite(points); err != nil {
		return fmt.Errorf("add handles: %w", err)
	}
	c.handles = slices.Clone(points)
	c.seedHandles = false
	c.selected = -1
	c.dragging = -1
	c.update(true)
	return nil
}

// Select selects the handle at index i, reporting whether it exists.
func (c *Curve) Select(i int) bool {
	if i < 0 || i >= len(c.handles) {
		return false
	}
	c.selected = i
	c.update(false)
	return true
}

// DeleteSelected removes the selected handle, if any, and selects the handle
// before it, or the new first handle if the deleted one was first.
func (c *Curve) DeleteSelected() bool {
	i := c.selected
	if i < 0 || i >= len(c.handles) {
		c.selected = -1
		return false
	}
	c.handles = slices.Delete(c.handles, i, i+1)
	switch {
	case len(c.handles) == 0:
		c.selected = -1
	case i > 0:
		c.selected = i - 1
	default:
		c.selected = 0
	}
	c.dragging = -1
	Logger().Debug("deleted handle", "index", i, "remaining", len(c.handles))
	c.update(true)
	return true
}

// UpdateSize resizes the curve's surface, scaling all handles so that their
// position relative to the surface is preserved. Sizes that aren't finite and
// positive are rejected and leave the curve untouched.
func (c *Curve) UpdateSize(width, height float64) error {
	sz := geom.Sz(width, height)
	if !sz.IsValid() {
		Logger().Warn("rejecting curve resize", "size", sz.String())
		return fmt.Errorf("resize curve to %s: %w", sz, ErrInvalidDimension)
	}
	if c.size.IsZero() {
		// Nothing to scale from.
		if c.seedHandles {
			c.handles = defaultHandles(sz)
			c.seedHandles = false
		}
	} else {
		sx, sy := c.size.Ratio(sz)
		for i, h := range c.handles {
			c.handles[i] = h.Scale(sx, sy)
		}
	}
	c.size = sz
	c.update(true)
	return nil
}

// SetOrigin moves the curve's surface within the viewport.
func (c *Curve) SetOrigin(origin geom.Point) error {
	if !origin.IsFinite() {
		return fmt.Errorf("set origin to %s: %w", origin, ErrNonFinitePoint)
	}
	c.origin = origin
	c.update(false)
	return nil
}

func (c *Curve) hitTest(p geom.Point) (int, bool) {
	var (
		i  int
		ok bool
	)
	if c.hit != nil {
		i, ok = c.hit.HitTest(p)
	} else {
		i, ok = HandleAt(c.handles, p, DefaultHandleRadius)
	}
	if !ok || i < 0 || i >= len(c.handles) {
		return -1, false
	}
	return i, true
}

func (c *Curve) gesture(kind Event, p geom.Point) (Gesture, bool) {
	if !p.IsFinite() {
		Logger().Warn("ignoring gesture at non-finite point", "event", kind.String())
		return Gesture{}, false
	}
	g := Gesture{Kind: kind, Point: p, Handle: -1}
	if i, ok := c.hitTest(p); ok {
		g.Handle = i
	}
	c.gestures.Emit(kind, g)
	return g, true
}

// Click selects the handle at p, if any.
func (c *Curve) Click(p geom.Point) {
	g, ok := c.gesture(EventClick, p)
	if !ok || g.Handle < 0 {
		return
	}
	c.selected = g.Handle
	c.update(false)
}

// DragStart begins a drag gesture at p. If p is on a handle, that handle is
// selected and will follow the drag. Otherwise, if shift is held, a new
// handle is appended at p.
func (c *Curve) DragStart(p geom.Point) {
	g, ok := c.gesture(EventDragStart, p)
	if !ok {
		return
	}
	switch {
	case g.Handle >= 0:
		c.selected = g.Handle
		c.dragging = g.Handle
		c.update(false)
	case c.kb.Test("shift"):
		c.handles = append(c.handles, c.Bounds().Clamp(p))
		c.seedHandles = false
		c.selected = len(c.handles) - 1
		c.dragging = c.selected
		Logger().Debug("appended handle", "index", c.selected, "point", p.String())
		c.update(true)
	default:
		c.dragging = -1
	}
}

// Drag moves the handle being dragged to p, clamped to [Curve.Bounds].
func (c *Curve) Drag(p geom.Point) {
	if _, ok := c.gesture(EventDrag, p); !ok {
		return
	}
	if c.dragging < 0 || c.dragging >= len(c.handles) {
		return
	}
	c.handles[c.dragging] = c.Bounds().Clamp(p)
	c.update(true)
}

// DragEnd ends the current drag gesture.
func (c *Curve) DragEnd(p geom.Point) {
	c.gesture(EventDragEnd, p)
	c.dragging = -1
}

// update recomputes geometry if requested and emits EventUpdate. Updates
// requested by update listeners are deferred until the current emit returns.
func (c *Curve) update(geometry bool) {
	if geometry {
		c.recompute()
	}
	if c.emitting {
		c.pending = true
		return
	}
	for depth := 1; ; depth++ {
		c.emitUpdate()
		if !c.pending {
			return
		}
		c.pending = false
		if depth >= maxNestedUpdates {
			Logger().Warn("dropping nested curve update", "depth", depth)
			return
		}
	}
}

func (c *Curve) emitUpdate() {
	c.emitting = true
	defer func() { c.emitting = false }()
	c.updates.Emit(EventUpdate, struct{}{})
}

// recompute interpolates the handles, measures the resulting path and
// resolves every guide on it, in that order.
func (c *Curve) recompute() {
	c.path = geom.Interpolate(c.handles, c.accuracy)
	if len(c.positions) != len(c.guides) {
		c.positions = make([]geom.Point, len(c.guides))
	}
	for i, f := range c.guides {
		pt, err := c.path.PointAtFraction(f)
		if err != nil {
			// No handles; see HandlePositions.
			pt = geom.Point{}
		}
		c.positions[i] = pt
	}
	Logger().Debug("recomputed curve",
		"handles", len(c.handles),
		"length", c.path.Length(),
		"guides", len(c.guides))
}
