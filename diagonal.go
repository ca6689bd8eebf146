package clipline

import "fmt"

// DiagonalCursor rasterizes a line segment where |Δx| = |Δy| != 0.
// One engine with runtime step signs replaces the four historical
// quadrant types (LineD0..LineD3), grounded on the upstream crate's
// single LineD{x0,y0,x1,sx,sy} type
// (_examples/original_source/src/line_d.rs).
type DiagonalCursor[T Coordinate] struct {
	x0, y0, x1 T
	sx, sy     int8
}

func newDiagonalCursor[T Coordinate](x0, y0, x1 T, sx, sy int8) DiagonalCursor[T] {
	return DiagonalCursor[T]{x0: x0, y0: y0, x1: x1, sx: sx, sy: sy}
}

// LineD0 constructs a diagonal cursor for the +x,+y quadrant. It
// fails unless x2 > x1, y2 > y1 and x2-x1 == y2-y1.
func LineD0[T Coordinate](x1, y1, x2, y2 T) (DiagonalCursor[T], bool) {
	if x2 <= x1 || y2 <= y1 || absDiff(x1, x2) != absDiff(y1, y2) {
		return DiagonalCursor[T]{}, false
	}
	return newDiagonalCursor(x1, y1, x2, 1, 1), true
}

// LineD1 constructs a diagonal cursor for the +x,-y quadrant. It
// fails unless x2 > x1, y2 < y1 and x2-x1 == y1-y2.
func LineD1[T Coordinate](x1, y1, x2, y2 T) (DiagonalCursor[T], bool) {
	if x2 <= x1 || y2 >= y1 || absDiff(x1, x2) != absDiff(y1, y2) {
		return DiagonalCursor[T]{}, false
	}
	return newDiagonalCursor(x1, y1, x2, 1, -1), true
}

// LineD2 constructs a diagonal cursor for the -x,+y quadrant. It
// fails unless x2 < x1, y2 > y1 and x1-x2 == y2-y1.
func LineD2[T Coordinate](x1, y1, x2, y2 T) (DiagonalCursor[T], bool) {
	if x2 >= x1 || y2 <= y1 || absDiff(x1, x2) != absDiff(y1, y2) {
		return DiagonalCursor[T]{}, false
	}
	return newDiagonalCursor(x1, y1, x2, -1, 1), true
}

// LineD3 constructs a diagonal cursor for the -x,-y quadrant. It
// fails unless x2 < x1, y2 < y1 and x1-x2 == y1-y2.
func LineD3[T Coordinate](x1, y1, x2, y2 T) (DiagonalCursor[T], bool) {
	if x2 >= x1 || y2 >= y1 || absDiff(x1, x2) != absDiff(y1, y2) {
		return DiagonalCursor[T]{}, false
	}
	return newDiagonalCursor(x1, y1, x2, -1, -1), true
}

// lineD constructs the generic (quadrant-inferring) diagonal cursor
// used by the dispatcher. It fails unless |Δx| = |Δy| != 0.
func lineD[T Coordinate](x1, y1, x2, y2 T) (DiagonalCursor[T], bool) {
	if absDiff(x1, x2) != absDiff(y1, y2) || x1 == x2 {
		return DiagonalCursor[T]{}, false
	}
	sx := sign(x1, x2)
	sy := sign(y1, y2)
	return newDiagonalCursor(x1, y1, x2, sx, sy), true
}

func (d DiagonalCursor[T]) IsEmpty() bool { return d.x0 == d.x1 }

func (d DiagonalCursor[T]) Len() uint64 { return absDiff(d.x0, d.x1) }

func (d DiagonalCursor[T]) Head() (Point[T], bool) {
	if d.IsEmpty() {
		return Point[T]{}, false
	}
	return Point[T]{X: d.x0, Y: d.y0}, true
}

func (d *DiagonalCursor[T]) PopHead() (Point[T], bool) {
	p, ok := d.Head()
	if !ok {
		return p, false
	}
	d.x0 = T(int64(d.x0) + int64(d.sx))
	d.y0 = T(int64(d.y0) + int64(d.sy))
	return p, true
}

func (d DiagonalCursor[T]) Tail() (Point[T], bool) {
	if d.IsEmpty() {
		return Point[T]{}, false
	}
	xt := T(int64(d.x1) - int64(d.sx))
	dxt := absDiff(d.x0, xt)
	yt := T(int64(d.y0) + int64(d.sy)*int64(dxt))
	return Point[T]{X: xt, Y: yt}, true
}

func (d *DiagonalCursor[T]) PopTail() (Point[T], bool) {
	p, ok := d.Tail()
	if !ok {
		return p, false
	}
	d.x1 = p.X
	return p, true
}

func (d DiagonalCursor[T]) String() string {
	return fmt.Sprintf("LineD(x0=%v, y0=%v, x1=%v, sx=%d, sy=%d)", d.x0, d.y0, d.x1, d.sx, d.sy)
}
