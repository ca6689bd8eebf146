package clipline

import "fmt"

// AxisCursor rasterizes a line segment where one coordinate is
// constant: LineAx (horizontal) and LineAy (vertical), each forward
// or backward. Rather than four distinct compile-time types, a single
// engine carries a runtime "major" flag selecting which coordinate
// varies and a runtime step sign - the same collapse the upstream
// crate made from four historical axis-aligned types down to one
// LineAu<const YX: bool, C> (_examples/original_source/src/line_a.rs).
// Go has no const generics, so the compile-time YX flag becomes the
// runtime field major below.
type AxisCursor[T Coordinate] struct {
	u0, u1 T
	v      T
	su     int8
	major  bool // false: X varies (LineAx); true: Y varies (LineAy)
}

func newAxisCursor[T Coordinate](major bool, v, u0, u1 T, su int8) AxisCursor[T] {
	return AxisCursor[T]{u0: u0, u1: u1, v: v, su: su, major: major}
}

// LineAxForward constructs a horizontal cursor stepping from x1 toward
// x2 in the +x direction. It fails if x1 >= x2.
func LineAxForward[T Coordinate](y, x1, x2 T) (AxisCursor[T], bool) {
	if x1 >= x2 {
		return AxisCursor[T]{}, false
	}
	return newAxisCursor(false, y, x1, x2, 1), true
}

// LineAxBackward constructs a horizontal cursor stepping from x1
// toward x2 in the -x direction. It fails if x1 <= x2.
func LineAxBackward[T Coordinate](y, x1, x2 T) (AxisCursor[T], bool) {
	if x1 <= x2 {
		return AxisCursor[T]{}, false
	}
	return newAxisCursor(false, y, x1, x2, -1), true
}

// LineAyForward constructs a vertical cursor stepping from y1 toward
// y2 in the +y direction. It fails if y1 >= y2.
func LineAyForward[T Coordinate](x, y1, y2 T) (AxisCursor[T], bool) {
	if y1 >= y2 {
		return AxisCursor[T]{}, false
	}
	return newAxisCursor(true, x, y1, y2, 1), true
}

// LineAyBackward constructs a vertical cursor stepping from y1 toward
// y2 in the -y direction. It fails if y1 <= y2.
func LineAyBackward[T Coordinate](x, y1, y2 T) (AxisCursor[T], bool) {
	if y1 <= y2 {
		return AxisCursor[T]{}, false
	}
	return newAxisCursor(true, x, y1, y2, -1), true
}

// lineAx constructs the generic (direction-inferring) horizontal
// cursor used by the dispatcher. It fails only if x1 == x2.
func lineAx[T Coordinate](y, x1, x2 T) (AxisCursor[T], bool) {
	su := sign(x1, x2)
	if su == 0 {
		return AxisCursor[T]{}, false
	}
	return newAxisCursor(false, y, x1, x2, su), true
}

// lineAy constructs the generic (direction-inferring) vertical cursor
// used by the dispatcher. It fails only if y1 == y2.
func lineAy[T Coordinate](x, y1, y2 T) (AxisCursor[T], bool) {
	su := sign(y1, y2)
	if su == 0 {
		return AxisCursor[T]{}, false
	}
	return newAxisCursor(true, x, y1, y2, su), true
}

func (a AxisCursor[T]) IsEmpty() bool { return a.u0 == a.u1 }

func (a AxisCursor[T]) Len() uint64 { return absDiff(a.u0, a.u1) }

func (a AxisCursor[T]) point(u T) Point[T] {
	if a.major {
		return Point[T]{X: a.v, Y: u}
	}
	return Point[T]{X: u, Y: a.v}
}

func (a AxisCursor[T]) Head() (Point[T], bool) {
	if a.IsEmpty() {
		return Point[T]{}, false
	}
	return a.point(a.u0), true
}

func (a *AxisCursor[T]) PopHead() (Point[T], bool) {
	p, ok := a.Head()
	if !ok {
		return p, false
	}
	a.u0 = T(int64(a.u0) + int64(a.su))
	return p, true
}

func (a AxisCursor[T]) Tail() (Point[T], bool) {
	if a.IsEmpty() {
		return Point[T]{}, false
	}
	ut := T(int64(a.u1) - int64(a.su))
	return a.point(ut), true
}

func (a *AxisCursor[T]) PopTail() (Point[T], bool) {
	p, ok := a.Tail()
	if !ok {
		return p, false
	}
	a.u1 = T(int64(a.u1) - int64(a.su))
	return p, true
}

func (a AxisCursor[T]) String() string {
	name := "LineAx"
	if a.major {
		name = "LineAy"
	}
	return fmt.Sprintf("%s(v=%v, u0=%v, u1=%v, su=%d)", name, a.v, a.u0, a.u1, a.su)
}
