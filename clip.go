package clipline

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// This file implements Kuzmin's method: given a rectangular region
// and a line segment, compute in integer arithmetic the entry pixel,
// the exit pixel, and the seed Bresenham error term, so iterating the
// clipped cursor yields exactly the subsequence of the unclipped
// rasterization that lies inside the region.
//
// The octant case is solved once, in a local, always-canonical
// coordinate space: k = su*(u-u0) and m = sv*(v-v0) are the forward
// offsets from the start along the major and minor axes. In that
// space the segment always runs from (0,0) to (du,dv) with du >= dv
// > 0 and positive slope - the canonical octant - regardless of the
// original su, sv and major/minor assignment. The region's bounds on
// u and v are turned into bounds on k and m by the same offset, the
// canonical algorithm runs once, and the result is mapped back by
// reversing the offset. This is reflection (all seven non-canonical
// octants reduce to the canonical case by reflection) expressed as a
// change of origin and direction instead of a sign flip, so it works
// uniformly for signed and unsigned T.

// floorYAt and floorXAt are the two Kuzmin crossing formulas,
// specialized to a segment whose local origin is (0,0): the y (resp.
// x) value at which the canonical line x->y (slope dv/du, 0 < dv <=
// du) crosses the vertical (resp. horizontal) line x = at (resp.
// y = at).
func floorYAt(at, du, dv int64) int64 {
	return floorDiv(2*dv*at-du, 2*du) + 1
}

func floorXAt(at, du, dv int64) int64 {
	return floorDiv(2*du*at-du-1, 2*dv) + 1
}

// canonicalOctantClip runs Kuzmin's method on the canonical segment
// (0,0)-(du,dv) (du >= dv > 0) clipped to the box [wx1,wx2]x[wy1,wy2].
// It returns the entry point, the exit pixel's x (the new exclusive
// terminal major coordinate), and whether any pixel survives.
func canonicalOctantClip(du, dv, wx1, wy1, wx2, wy2 int64) (ex, ey, exitX int64, ok bool) {
	if wx1 > wx2 || wy1 > wy2 {
		return 0, 0, 0, false
	}

	ex, ey = 0, 0
	if wx1 > ex {
		ex, ey = wx1, floorYAt(wx1, du, dv)
	}
	if wy1 > ey {
		if cx := floorXAt(wy1, du, dv); cx > ex {
			ex, ey = cx, wy1
		}
	}

	exitX = du
	exitY := dv
	if wx2+1 < exitX {
		exitX, exitY = wx2+1, floorYAt(wx2+1, du, dv)
	}
	if wy2+1 <= exitY {
		if cx := floorXAt(wy2+1, du, dv); cx < exitX {
			exitX = cx
		}
	}

	if ex >= exitX || ey < wy1 || ey > wy2 {
		return 0, 0, 0, false
	}
	return ex, ey, exitX, true
}

// intervalBound returns the (possibly unbounded) offset interval
// [lo,hi] such that u0 + su*k lies within [boundLo,boundHi] for
// k in [lo,hi].
func intervalBound[T Coordinate](u0 T, su int8, boundLo, boundHi T) (lo, hi int64) {
	if su > 0 {
		return int64(boundLo) - int64(u0), int64(boundHi) - int64(u0)
	}
	return int64(u0) - int64(boundHi), int64(u0) - int64(boundLo)
}

func clampInterval(lo, hi, naturalLo, naturalHi int64) (int64, int64) {
	return maxI64(lo, naturalLo), minI64(hi, naturalHi)
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// clipOctant clips a general octant segment, described in major/minor
// (u,v) terms, to the region bounds [uLo,uHi]x[vLo,vHi] given in the
// same u/v terms.
func clipOctant[T Coordinate](major bool, u0, v0, u1 T, du, dv uint64, su, sv int8, uLo, uHi, vLo, vHi T) (OctantCursor[T], bool) {
	kLo, kHi := intervalBound(u0, su, uLo, uHi)
	kLo, kHi = clampInterval(kLo, kHi, 0, int64(du))
	mLo, mHi := intervalBound(v0, sv, vLo, vHi)
	mLo, mHi = clampInterval(mLo, mHi, 0, int64(dv))

	ek, em, exitK, ok := canonicalOctantClip(int64(du), int64(dv), kLo, mLo, kHi, mHi)
	if !ok {
		return OctantCursor[T]{}, false
	}

	newU0 := T(int64(u0) + int64(su)*ek)
	newV0 := T(int64(v0) + int64(sv)*em)
	newU1 := T(int64(u0) + int64(su)*exitK)
	// e_k = 2*dv*(ek+1) - 2*du*em - du: the +2*dv term (beyond the
	// straightforward 2*dv*ek - 2*du*em - du one might expect from the
	// entry/exit crossing formulas alone) falls out of the midpoint
	// algorithm's own seed e0 = 2*dv - du at ek=em=0, not just from the
	// crossing geometry.
	errSeed := 2*int64(dv)*(ek+1) - 2*int64(du)*em - int64(du)
	return OctantCursor[T]{
		u0: newU0, v0: newV0, u1: newU1,
		du: du, dv: dv, err: errSeed, su: su, sv: sv, major: major,
	}, true
}

// clipAxisRange clips the half-open stepped range [u0,u1) (step su)
// to [lo,hi] by pure interval intersection. boundLo/boundHi from
// intervalBound are inclusive, so the exclusive terminal is one past
// boundHi, capped at the range's own natural exclusive terminal.
func clipAxisRange[T Coordinate](u0, u1 T, su int8, lo, hi T) (T, T, bool) {
	d := wideDelta(u0, u1)
	boundLo, boundHi := intervalBound(u0, su, lo, hi)
	k0 := maxI64(0, boundLo)
	k1 := minI64(d, boundHi+1)
	if k0 >= k1 {
		return u0, u1, false
	}
	return T(int64(u0) + int64(su)*k0), T(int64(u0) + int64(su)*k1), true
}

// clipLine dispatches (p1,p2) to its shape and clips it to the
// inclusive box [min,max], returning the cursor for the surviving
// portion, or false if the segment lies entirely outside the box.
func clipLine[T Coordinate](min, max Point[T], p1, p2 Point[T]) (Cursor[T], bool) {
	switch Classify(p1, p2) {
	case KindEmpty:
		return emptyCursor[T]{}, false
	case KindAxis:
		if p1.Y == p2.Y {
			if p1.Y < min.Y || p1.Y > max.Y {
				return emptyCursor[T]{}, false
			}
			su := sign(p1.X, p2.X)
			u0, u1, ok := clipAxisRange(p1.X, p2.X, su, min.X, max.X)
			if !ok {
				return emptyCursor[T]{}, false
			}
			c := newAxisCursor(false, p1.Y, u0, u1, su)
			return &c, true
		}
		if p1.X < min.X || p1.X > max.X {
			return emptyCursor[T]{}, false
		}
		sv := sign(p1.Y, p2.Y)
		v0, v1, ok := clipAxisRange(p1.Y, p2.Y, sv, min.Y, max.Y)
		if !ok {
			return emptyCursor[T]{}, false
		}
		c := newAxisCursor(true, p1.X, v0, v1, sv)
		return &c, true
	case KindDiagonal:
		sx := sign(p1.X, p2.X)
		sy := sign(p1.Y, p2.Y)
		d := wideDelta(p1.X, p2.X)
		// kxLo/kxHi/kyLo/kyHi are inclusive offset bounds (intervalBound);
		// the exclusive terminal is one past the tighter inclusive max.
		kxLo, kxHi := intervalBound(p1.X, sx, min.X, max.X)
		kyLo, kyHi := intervalBound(p1.Y, sy, min.Y, max.Y)
		k0 := maxI64(0, maxI64(kxLo, kyLo))
		k1 := minI64(d, minI64(kxHi, kyHi)+1)
		if k0 >= k1 {
			return emptyCursor[T]{}, false
		}
		nx0 := T(int64(p1.X) + int64(sx)*k0)
		ny0 := T(int64(p1.Y) + int64(sy)*k0)
		nx1 := T(int64(p1.X) + int64(sx)*k1)
		c := newDiagonalCursor(nx0, ny0, nx1, sx, sy)
		return &c, true
	default:
		dx := absDiff(p1.X, p2.X)
		dy := absDiff(p1.Y, p2.Y)
		sx := sign(p1.X, p2.X)
		sy := sign(p1.Y, p2.Y)
		var c OctantCursor[T]
		var ok bool
		if dx > dy {
			c, ok = clipOctant(false, p1.X, p1.Y, p2.X, dx, dy, sx, sy, min.X, max.X, min.Y, max.Y)
		} else {
			c, ok = clipOctant(true, p1.Y, p1.X, p2.Y, dy, dx, sy, sx, min.Y, max.Y, min.X, max.X)
		}
		if !ok {
			return emptyCursor[T]{}, false
		}
		return &c, true
	}
}

// Line clips the half-open segment (p1,p2) to c and returns a cursor
// over the surviving portion, or false if the segment lies entirely
// outside c.
func (c Clip[T]) Line(p1, p2 Point[T]) (Cursor[T], bool) {
	return regionLine[T](c, p1, p2)
}

// Line clips the half-open segment (p1,p2) to v and returns a cursor
// over the surviving portion, or false if the segment lies entirely
// outside v.
func (v Viewport[T]) Line(p1, p2 Point[T]) (Cursor[T], bool) {
	return regionLine[T](v, p1, p2)
}

// projCursor wraps a Cursor[T] and retypes each pixel it yields to the
// unsigned counterpart U of T, shifted so v's minimum corner becomes
// the origin. It exists only behind LineProj: once a segment has been
// clipped to v, every point it yields already satisfies v.Contains, so
// the retype below can never observe an out-of-range value.
type projCursor[T Coordinate, U constraints.Unsigned] struct {
	inner  Cursor[T]
	origin Point[T]
}

func (p projCursor[T, U]) shift(q Point[T]) Point[U] {
	return ProjectTo[T, U](Point[T]{X: q.X - p.origin.X, Y: q.Y - p.origin.Y})
}

func (p projCursor[T, U]) Head() (Point[U], bool) {
	q, ok := p.inner.Head()
	if !ok {
		return Point[U]{}, false
	}
	return p.shift(q), true
}

func (p *projCursor[T, U]) PopHead() (Point[U], bool) {
	q, ok := p.inner.PopHead()
	if !ok {
		return Point[U]{}, false
	}
	return p.shift(q), true
}

func (p projCursor[T, U]) Tail() (Point[U], bool) {
	q, ok := p.inner.Tail()
	if !ok {
		return Point[U]{}, false
	}
	return p.shift(q), true
}

func (p *projCursor[T, U]) PopTail() (Point[U], bool) {
	q, ok := p.inner.PopTail()
	if !ok {
		return Point[U]{}, false
	}
	return p.shift(q), true
}

func (p projCursor[T, U]) Len() uint64   { return p.inner.Len() }
func (p projCursor[T, U]) IsEmpty() bool { return p.inner.IsEmpty() }

func (p projCursor[T, U]) String() string {
	return fmt.Sprintf("Proj(%v)", p.inner)
}

// LineProj clips (p1,p2) to v and, if any pixel survives, returns a
// cursor yielding that surviving portion retyped to the unsigned
// counterpart U of T and shifted to v's origin - the cursor analogue
// of PointProj.
func LineProj[T Coordinate, U constraints.Unsigned](v Viewport[T], p1, p2 Point[T]) (Cursor[U], bool) {
	cur, ok := v.Line(p1, p2)
	if !ok {
		return emptyCursor[U]{}, false
	}
	return &projCursor[T, U]{inner: cur, origin: v.Min()}, true
}

// regionLine clips (p1,p2) to any region (Clip or Viewport), sharing
// one implementation between both concrete types' Line methods.
func regionLine[T Coordinate, R region[T]](r R, p1, p2 Point[T]) (Cursor[T], bool) {
	return clipLine(r.Min(), r.Max(), p1, p2)
}
