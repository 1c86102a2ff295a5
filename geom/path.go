package geom

import (
	"errors"
	"slices"
	"sort"
)

// ErrEmptyPath is returned when querying positions on a path that has no
// points at all.
var ErrEmptyPath = errors.New("geom: empty path")

// Path is a [BezPath] prepared for arc length queries. It caches the length
// of every segment so that positions along the path can be resolved without
// remeasuring the whole path.
//
// A Path is immutable once created.
type Path struct {
	elements BezPath
	segments []PathSegment
	// cumulative[i] is the length of the path up to and including segment i.
	cumulative []float64
	accuracy   float64
}

// NewPath measures p. The accuracy applies to every segment individually.
func NewPath(p BezPath, accuracy float64) *Path {
	if accuracy <= 0 {
		accuracy = DefaultAccuracy
	}
	path := &Path{
		elements: slices.Clone(p),
		accuracy: accuracy,
	}
	var total float64
	for seg := range p.Segments() {
		total += seg.Arclen(accuracy)
		path.segments = append(path.segments, seg)
		path.cumulative = append(path.cumulative, total)
	}
	return path
}

// Interpolate builds the basis spline through points (see [Basis]) and
// measures it.
func Interpolate(points []Point, accuracy float64) *Path {
	return NewPath(Basis(points), accuracy)
}

// Elements returns a copy of the path's elements.
func (p *Path) Elements() BezPath {
	return slices.Clone(p.elements)
}

// Length returns the total arc length of the path.
func (p *Path) Length() float64 {
	if len(p.cumulative) == 0 {
		return 0
	}
	return p.cumulative[len(p.cumulative)-1]
}

// Start returns the first point of the path.
func (p *Path) Start() (Point, error) {
	if len(p.elements) == 0 {
		return Point{}, ErrEmptyPath
	}
	return p.elements[0].EndPoint(), nil
}

// End returns the last point of the path.
func (p *Path) End() (Point, error) {
	if len(p.elements) == 0 {
		return Point{}, ErrEmptyPath
	}
	return p.elements[len(p.elements)-1].EndPoint(), nil
}

// PointAtLength returns the point at the given distance from the start of
// the path, measured along the path. Distances are clamped to [0, Length()],
// mirroring SVG's getPointAtLength. A path without segments resolves every
// distance to its only point.
func (p *Path) PointAtLength(length float64) (Point, error) {
	if len(p.elements) == 0 {
		return Point{}, ErrEmptyPath
	}
	if len(p.segments) == 0 || length <= 0 {
		return p.Start()
	}
	total := p.Length()
	if length >= total {
		return p.End()
	}
	i := sort.SearchFloat64s(p.cumulative, length)
	if i == len(p.segments) {
		i--
	}
	var before float64
	if i > 0 {
		before = p.cumulative[i-1]
	}
	seg := p.segments[i]
	t := seg.SolveForArclen(length-before, p.accuracy)
	return seg.Eval(t), nil
}

// PointAtFraction returns the point at fraction f of the path's length.
func (p *Path) PointAtFraction(f float64) (Point, error) {
	return p.PointAtLength(f * p.Length())
}

// BoundingBox returns the bounding box of the path. Empty paths have a
// zero-sized box at the origin.
func (p *Path) BoundingBox() Rect {
	return p.elements.BoundingBox()
}
