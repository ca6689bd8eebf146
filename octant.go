package clipline

import "fmt"

// OctantCursor rasterizes a general (non-axis, non-diagonal) segment
// using Bresenham's midpoint algorithm. One engine with a runtime
// major-axis flag and runtime step signs replaces the eight
// historical LineB0..LineB7 types, grounded on the upstream crate's
// LineBu<const YX: bool, C> (_examples/original_source/src/line_b.rs),
// which collapsed all eight octants into one generic engine plus a
// compile-time flag long before this port existed.
//
// PopTail/Tail are unsupported: the upstream crate itself never
// implements reverse iteration for its octant cursor (line_b.rs calls
// derive::iter_fwd! but not derive::iter_rev!, unlike line_a.rs and
// line_d.rs), because reconstructing the midpoint error term at an
// arbitrary offset from the tail in O(1) needs the same floor-division
// derivation as Kuzmin clipping and was judged not worth the
// complexity for a reverse-only convenience. Tail and PopTail always
// report false here; omitting backward iteration is acceptable on a
// specialization that cannot maintain the error invariant from both
// ends.
type OctantCursor[T Coordinate] struct {
	u0, v0 T
	u1     T
	du, dv uint64
	err    int64
	su, sv int8
	major  bool // false: x is the major axis (LineBx); true: y is (LineBy)
}

func octantFromDeltas[T Coordinate](major bool, u0, v0, u1 T, du, dv uint64, su, sv int8) OctantCursor[T] {
	e0 := 2*int64(dv) - int64(du)
	return OctantCursor[T]{u0: u0, v0: v0, u1: u1, du: du, dv: dv, err: e0, su: su, sv: sv, major: major}
}

// lineB constructs the octant cursor for an arbitrary endpoint pair.
// It fails if dx == dy (diagonal) or if either delta is zero (axis or
// empty): those are handled by the axis/diagonal specializations.
func lineB[T Coordinate](x1, y1, x2, y2 T) (OctantCursor[T], bool) {
	dx := absDiff(x1, x2)
	dy := absDiff(y1, y2)
	if dx == 0 || dy == 0 || dx == dy {
		return OctantCursor[T]{}, false
	}
	sx := sign(x1, x2)
	sy := sign(y1, y2)
	if dx > dy {
		return octantFromDeltas(false, x1, y1, x2, dx, dy, sx, sy), true
	}
	return octantFromDeltas(true, y1, x1, y2, dy, dx, sy, sx), true
}

// octantCtor builds one of the eight named LineB0..LineB7
// constructors: major selects which axis has the larger delta, and
// wantSu/wantSv pin the expected step signs so that e.g. LineB0 (the
// +x-major, +x, +y octant) rejects an endpoint pair that actually
// falls into a different octant.
func octantCtor[T Coordinate](major bool, wantSu, wantSv int8) func(x1, y1, x2, y2 T) (OctantCursor[T], bool) {
	return func(x1, y1, x2, y2 T) (OctantCursor[T], bool) {
		var u0, v0, u1 T
		var du, dv uint64
		var su, sv int8
		if major {
			u0, v0, u1 = y1, x1, y2
			du, dv = absDiff(y1, y2), absDiff(x1, x2)
			su, sv = sign(y1, y2), sign(x1, x2)
		} else {
			u0, v0, u1 = x1, y1, x2
			du, dv = absDiff(x1, x2), absDiff(y1, y2)
			su, sv = sign(x1, x2), sign(y1, y2)
		}
		if du == 0 || dv == 0 || du <= dv || su != wantSu || sv != wantSv {
			return OctantCursor[T]{}, false
		}
		return octantFromDeltas(major, u0, v0, u1, du, dv, su, sv), true
	}
}

// LineB0 has major axis x and step signs (sx,sy) = (+1,+1), with 0 < Δy < Δx.
func LineB0[T Coordinate](x1, y1, x2, y2 T) (OctantCursor[T], bool) { return octantCtor[T](false, 1, 1)(x1, y1, x2, y2) }

// LineB1 has major axis x and step signs (sx,sy) = (+1,-1).
func LineB1[T Coordinate](x1, y1, x2, y2 T) (OctantCursor[T], bool) { return octantCtor[T](false, 1, -1)(x1, y1, x2, y2) }

// LineB2 has major axis x and step signs (sx,sy) = (-1,+1).
func LineB2[T Coordinate](x1, y1, x2, y2 T) (OctantCursor[T], bool) { return octantCtor[T](false, -1, 1)(x1, y1, x2, y2) }

// LineB3 has major axis x and step signs (sx,sy) = (-1,-1).
func LineB3[T Coordinate](x1, y1, x2, y2 T) (OctantCursor[T], bool) { return octantCtor[T](false, -1, -1)(x1, y1, x2, y2) }

// LineB4 has major axis y and step signs (sx,sy) = (+1,+1), with 0 < Δx < Δy.
func LineB4[T Coordinate](x1, y1, x2, y2 T) (OctantCursor[T], bool) { return octantCtor[T](true, 1, 1)(x1, y1, x2, y2) }

// LineB5 has major axis y and step signs (sx,sy) = (+1,-1).
func LineB5[T Coordinate](x1, y1, x2, y2 T) (OctantCursor[T], bool) { return octantCtor[T](true, -1, 1)(x1, y1, x2, y2) }

// LineB6 has major axis y and step signs (sx,sy) = (-1,+1).
func LineB6[T Coordinate](x1, y1, x2, y2 T) (OctantCursor[T], bool) { return octantCtor[T](true, 1, -1)(x1, y1, x2, y2) }

// LineB7 has major axis y and step signs (sx,sy) = (-1,-1).
func LineB7[T Coordinate](x1, y1, x2, y2 T) (OctantCursor[T], bool) { return octantCtor[T](true, -1, -1)(x1, y1, x2, y2) }

func (o OctantCursor[T]) IsEmpty() bool { return o.u0 == o.u1 }

func (o OctantCursor[T]) Len() uint64 { return absDiff(o.u0, o.u1) }

func (o OctantCursor[T]) point() Point[T] {
	if o.major {
		return Point[T]{X: o.v0, Y: o.u0}
	}
	return Point[T]{X: o.u0, Y: o.v0}
}

func (o OctantCursor[T]) Head() (Point[T], bool) {
	if o.IsEmpty() {
		return Point[T]{}, false
	}
	return o.point(), true
}

// PopHead yields the current pixel and advances the midpoint error
// accumulator: e starts at 2*dv - du (a clipped cursor starts at the
// value the unclipped one holds at its entry pixel) and satisfies
// 2*(dv-du) <= e < 2*dv throughout iteration.
func (o *OctantCursor[T]) PopHead() (Point[T], bool) {
	p, ok := o.Head()
	if !ok {
		return p, false
	}
	if o.err >= 0 {
		o.v0 = T(int64(o.v0) + int64(o.sv))
		o.err += 2 * (int64(o.dv) - int64(o.du))
	} else {
		o.err += 2 * int64(o.dv)
	}
	o.u0 = T(int64(o.u0) + int64(o.su))
	return p, true
}

func (o OctantCursor[T]) Tail() (Point[T], bool)    { return Point[T]{}, false }
func (o *OctantCursor[T]) PopTail() (Point[T], bool) { return Point[T]{}, false }

func (o OctantCursor[T]) String() string {
	name := "LineBx"
	if o.major {
		name = "LineBy"
	}
	return fmt.Sprintf("%s(u0=%v, v0=%v, u1=%v, du=%v, dv=%v, err=%d, su=%d, sv=%d)",
		name, o.u0, o.v0, o.u1, o.du, o.dv, o.err, o.su, o.sv)
}
