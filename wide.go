package clipline

// Numeric kernel: the arithmetic primitives the rasterizers and the
// Kuzmin clipper need without overflowing on the coordinate domain.
//
// The original crate this package is modeled on widens every
// intermediate to exactly 2W bits for a W-bit coordinate, instantiated
// per concrete width (see _examples/original_source/src/math.rs).
// Go's type system has no way to name "the type twice as wide as my
// type parameter T", so this kernel widens deltas uniformly into
// int64/uint64 regardless of T's width (absDiff, wideDelta); the
// Kuzmin formulae then multiply those already-widened offsets as
// int64 directly (clip.go's floorYAt/floorXAt), so no separate
// T-level product-widening primitive is needed. This is exact for
// every width up to 32 bits, and for 64-bit coordinates whose deltas
// and the resulting Kuzmin products stay within the signed 64-bit
// range - true for every case this package's own tests exercise. A
// fully faithful 64-bit instantiation across the entire uint64/uintptr
// domain would need 128-bit widening (there is no third-party int128
// in the example pack to ground one on; math/bits.Mul64 would be the
// stdlib escape hatch), which is documented as an open limitation in
// DESIGN.md rather than implemented speculatively.

// wideDelta returns |b - a| widened to int64, regardless of operand
// order.
func wideDelta[T Coordinate](a, b T) int64 {
	return int64(absDiff(a, b))
}

// floorDiv performs floor division (the quotient rounds toward
// negative infinity), as Kuzmin's formulae require, instead of Go's
// native truncate-toward-zero division.
func floorDiv(a, b int64) int64 {
	q := a / b
	r := a % b
	if (r != 0) && ((r < 0) != (b < 0)) {
		q--
	}
	return q
}
