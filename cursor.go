package clipline

import (
	"iter"

	"deedles.dev/xiter"
)

// Cursor is the iterator-like handle shared by every rasterizer shape.
// It is half-open: it yields the start pixel of a segment but never
// the unclipped end pixel. Cursors are value types; they own no heap
// memory and retain no reference to any Region used to clip them.
type Cursor[T Coordinate] interface {
	// Head returns the next pixel without consuming it, or false if
	// the cursor is exhausted.
	Head() (Point[T], bool)
	// PopHead consumes and returns the next pixel, advancing from the
	// start of the segment toward its end.
	PopHead() (Point[T], bool)
	// Tail returns the last remaining pixel without consuming it, or
	// false if the cursor is exhausted.
	Tail() (Point[T], bool)
	// PopTail consumes and returns the last remaining pixel, retreating
	// from the end of the segment toward its start.
	PopTail() (Point[T], bool)
	// Len returns the exact number of pixels the cursor will still
	// yield.
	Len() uint64
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
}

// Seq adapts any Cursor into a forward iter.Seq, consuming it via
// repeated PopHead calls. Ranging over the sequence to completion
// leaves the cursor empty.
func Seq[T Coordinate](cur Cursor[T]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for {
			p, ok := cur.PopHead()
			if !ok {
				return
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Drain consumes cur from the head, calling yield for each pixel
// until the cursor is empty or yield returns false.
func Drain[T Coordinate](cur Cursor[T], yield func(Point[T]) bool) {
	for {
		p, ok := cur.PopHead()
		if !ok {
			return
		}
		if !yield(p) {
			return
		}
	}
}

// Enumerate adapts cur into an indexed sequence, pairing each pixel
// with its position along the cursor (0 at the head).
func Enumerate[T Coordinate](cur Cursor[T]) iter.Seq2[int, Point[T]] {
	return xiter.Enumerate(Seq(cur))
}

// emptyCursor is the Cursor for the Empty line kind: coincident
// endpoints yield no pixels.
type emptyCursor[T Coordinate] struct{}

func (emptyCursor[T]) Head() (Point[T], bool)    { return Point[T]{}, false }
func (emptyCursor[T]) PopHead() (Point[T], bool) { return Point[T]{}, false }
func (emptyCursor[T]) Tail() (Point[T], bool)    { return Point[T]{}, false }
func (emptyCursor[T]) PopTail() (Point[T], bool) { return Point[T]{}, false }
func (emptyCursor[T]) Len() uint64               { return 0 }
func (emptyCursor[T]) IsEmpty() bool             { return true }
func (emptyCursor[T]) String() string            { return "Empty" }
