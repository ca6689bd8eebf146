package clipline

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrInvalidRegion is returned when a Clip or Viewport is constructed
// with an empty or inverted extent.
var ErrInvalidRegion = errors.New("clipline: invalid region")

// Clip is an inclusive axis-aligned rectangle with its minimum corner
// at the origin of T and its maximum corner at (xmax, ymax). A Clip
// is semantically a Viewport whose minimum corner is zero.
type Clip[T Coordinate] struct {
	xmax, ymax T
}

// NewClip constructs a Clip from its maximum corner. It fails if
// xmax or ymax is negative.
func NewClip[T Coordinate](xmax, ymax T) (Clip[T], error) {
	var zero T
	if xmax < zero || ymax < zero {
		return Clip[T]{}, fmt.Errorf("%w: max corner (%v, %v) has a negative component", ErrInvalidRegion, xmax, ymax)
	}
	return Clip[T]{xmax: xmax, ymax: ymax}, nil
}

// ClipFromSize constructs a Clip spanning (0,0)-(w-1,h-1). It fails
// if w or h is zero.
func ClipFromSize[T Coordinate](w, h T) (Clip[T], error) {
	var zero T
	if w == zero || h == zero {
		return Clip[T]{}, fmt.Errorf("%w: zero-sized clip %vx%v", ErrInvalidRegion, w, h)
	}
	return Clip[T]{xmax: w - 1, ymax: h - 1}, nil
}

// Min returns the minimum corner of c, always the origin of T.
func (c Clip[T]) Min() Point[T] { var zero T; return Point[T]{X: zero, Y: zero} }

// Max returns the maximum corner of c.
func (c Clip[T]) Max() Point[T] { return Point[T]{X: c.xmax, Y: c.ymax} }

// Contains reports whether p lies inside c, inclusive of its edges.
func (c Clip[T]) Contains(p Point[T]) bool {
	var zero T
	return zero <= p.X && p.X <= c.xmax && zero <= p.Y && p.Y <= c.ymax
}

func (c Clip[T]) String() string {
	return fmt.Sprintf("Clip(0, 0)-(%v, %v)", c.xmax, c.ymax)
}

// Viewport is an inclusive axis-aligned rectangle with minimum corner
// (xmin, ymin) and maximum corner (xmax, ymax).
type Viewport[T Coordinate] struct {
	xmin, ymin, xmax, ymax T
}

// NewViewport constructs a Viewport from its two corners. It fails if
// xmin > xmax or ymin > ymax.
func NewViewport[T Coordinate](xmin, ymin, xmax, ymax T) (Viewport[T], error) {
	if xmax < xmin || ymax < ymin {
		return Viewport[T]{}, fmt.Errorf("%w: min corner (%v, %v) exceeds max corner (%v, %v)", ErrInvalidRegion, xmin, ymin, xmax, ymax)
	}
	return Viewport[T]{xmin: xmin, ymin: ymin, xmax: xmax, ymax: ymax}, nil
}

// ViewportFromMinSize constructs a Viewport spanning
// (xmin,ymin)-(xmin+w-1,ymin+h-1). It fails if w or h is zero or if
// the maximum corner would overflow T.
func ViewportFromMinSize[T Coordinate](xmin, ymin, w, h T) (Viewport[T], error) {
	var zero T
	if w == zero || h == zero {
		return Viewport[T]{}, fmt.Errorf("%w: zero-sized viewport %vx%v", ErrInvalidRegion, w, h)
	}
	xmax := xmin + (w - 1)
	ymax := ymin + (h - 1)
	if xmax < xmin || ymax < ymin {
		return Viewport[T]{}, fmt.Errorf("%w: viewport at (%v, %v) of size %vx%v overflows the coordinate type", ErrInvalidRegion, xmin, ymin, w, h)
	}
	return Viewport[T]{xmin: xmin, ymin: ymin, xmax: xmax, ymax: ymax}, nil
}

// Min returns the minimum corner of v.
func (v Viewport[T]) Min() Point[T] { return Point[T]{X: v.xmin, Y: v.ymin} }

// Max returns the maximum corner of v.
func (v Viewport[T]) Max() Point[T] { return Point[T]{X: v.xmax, Y: v.ymax} }

// Contains reports whether p lies inside v, inclusive of its edges.
func (v Viewport[T]) Contains(p Point[T]) bool {
	return v.xmin <= p.X && p.X <= v.xmax && v.ymin <= p.Y && p.Y <= v.ymax
}

// Project maps p from v's coordinate frame to a zero-based point,
// assuming v.Contains(p).
func (v Viewport[T]) Project(p Point[T]) Point[T] {
	return Point[T]{X: p.X - v.xmin, Y: p.Y - v.ymin}
}

func (v Viewport[T]) String() string {
	return fmt.Sprintf("Viewport(%v, %v)-(%v, %v)", v.xmin, v.ymin, v.xmax, v.ymax)
}

// region is the common shape the Kuzmin clipper needs from either a
// Clip or a Viewport.
type region[T Coordinate] interface {
	Min() Point[T]
	Max() Point[T]
	Contains(Point[T]) bool
}

// ProjectTo retypes p as the unsigned counterpart U of T. Go methods
// cannot introduce their own type parameters, so the retyping half of
// the *_proj family is a free function rather than a method.
func ProjectTo[T Coordinate, U constraints.Unsigned](p Point[T]) Point[U] {
	return Point[U]{X: U(p.X), Y: U(p.Y)}
}

// PointProj reports whether v contains p and, if so, returns p
// projected to v's origin and retyped to the unsigned counterpart U
// of T.
func PointProj[T Coordinate, U constraints.Unsigned](v Viewport[T], p Point[T]) (Point[U], bool) {
	if !v.Contains(p) {
		return Point[U]{}, false
	}
	return ProjectTo[T, U](v.Project(p)), true
}

// ClipPointProj reports whether c contains p and, if so, returns p
// retyped to the unsigned counterpart U of T. A Clip's origin is
// already zero, so projection needs only the retype, not the shift
// Viewport's PointProj also performs.
func ClipPointProj[T Coordinate, U constraints.Unsigned](c Clip[T], p Point[T]) (Point[U], bool) {
	if !c.Contains(p) {
		return Point[U]{}, false
	}
	return ProjectTo[T, U](p), true
}
