package huecurve

import "errors"

var (
	// ErrInvalidDimension is returned for widths and heights that aren't
	// finite positive numbers.
	ErrInvalidDimension = errors.New("huecurve: invalid dimension")
	// ErrEmptyHandleSet is reported when guide positions are requested from
	// a curve without handles.
	ErrEmptyHandleSet = errors.New("huecurve: empty handle set")
	// ErrNonFinitePoint is returned for handle coordinates that are infinite
	// or NaN.
	ErrNonFinitePoint = errors.New("huecurve: non-finite point")
	// ErrInvalidGuide is returned for guide fractions that are NaN.
	ErrInvalidGuide = errors.New("huecurve: invalid guide fraction")
)
