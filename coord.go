// Package clipline rasterizes directed, half-open line segments on an
// integer grid and clips them pixel-perfectly to an axis-aligned
// rectangular region.
//
// The rasterizers reproduce the same pixel sequence an unclipped
// Bresenham/midpoint line algorithm would produce, split into
// specializations for the axis-aligned, diagonal and general
// (octant) cases. Clipping uses Kuzmin's method: entry and exit
// pixels, and the seed Bresenham error term, are derived in integer
// arithmetic so that a clipped cursor yields exactly the subsequence
// of the unclipped rasterization that lies inside the region.
package clipline

import "golang.org/x/exp/constraints"

// Coordinate is the numeric domain every exported type in this
// package is parameterized over: any signed or unsigned integer
// width Go supports generically.
type Coordinate interface {
	constraints.Integer
}

// Point is a pair of coordinates on the grid.
type Point[T Coordinate] struct {
	X, Y T
}

// Pt constructs a Point.
func Pt[T Coordinate](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// absDiff returns |b - a| widened to uint64. The difference between
// the two extremes of a signed T can exceed T's own positive range
// (e.g. int16's min to max is 65535, one past int16's 32767 maximum),
// so deltas are never stored back into T - only actual coordinate
// values are. The comparison is done natively in T, like sign below:
// reinterpreting through int64 first would flip the wrong way for a
// pair of large uint64/uintptr values straddling math.MaxInt64.
func absDiff[T Coordinate](a, b T) uint64 {
	if a < b {
		return uint64(b) - uint64(a)
	}
	return uint64(a) - uint64(b)
}

func sign[T Coordinate](a, b T) int8 {
	switch {
	case a < b:
		return 1
	case a > b:
		return -1
	default:
		return 0
	}
}

