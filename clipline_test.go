package clipline_test

import (
	"testing"

	"github.com/nxsaken/clipline"
	"github.com/stretchr/testify/require"
)

func TestClassifyShapeTotality(t *testing.T) {
	cases := []struct {
		p1, p2 clipline.Point[int32]
		want   clipline.Kind
	}{
		{clipline.Pt[int32](3, 3), clipline.Pt[int32](3, 3), clipline.KindEmpty},
		{clipline.Pt[int32](0, 5), clipline.Pt[int32](9, 5), clipline.KindAxis},
		{clipline.Pt[int32](5, 0), clipline.Pt[int32](5, 9), clipline.KindAxis},
		{clipline.Pt[int32](0, 0), clipline.Pt[int32](4, 4), clipline.KindDiagonal},
		{clipline.Pt[int32](0, 0), clipline.Pt[int32](10, 5), clipline.KindOctant},
	}
	for _, c := range cases {
		require.Equal(t, c.want, clipline.Classify(c.p1, c.p2), "%v -> %v", c.p1, c.p2)
	}
}

// TestClassifyShapeUint64Straddle checks Classify against a uint64
// pair straddling math.MaxInt64, where naively comparing deltas via a
// cast to int64 would flip the sign and misclassify the shape.
func TestClassifyShapeUint64Straddle(t *testing.T) {
	const hi, lo uint64 = 1 << 63, 100
	p1 := clipline.Pt(hi, uint64(0))
	p2 := clipline.Pt(lo, hi-lo)
	require.Equal(t, clipline.KindDiagonal, clipline.Classify(p1, p2))

	up1 := clipline.Pt(uintptr(hi), uintptr(0))
	up2 := clipline.Pt(uintptr(lo), uintptr(hi-lo))
	require.Equal(t, clipline.KindDiagonal, clipline.Classify(up1, up2))
}

// TestLineScenarioS1 reproduces spec scenario S1.
func TestLineScenarioS1(t *testing.T) {
	cur := clipline.Line(clipline.Pt[int32](0, 0), clipline.Pt[int32](10, 10))
	require.Equal(t, uint64(10), cur.Len())

	want := make([]clipline.Point[int32], 10)
	for i := range want {
		want[i] = clipline.Pt(int32(i), int32(i))
	}
	require.Equal(t, want, drain[int32](cur))
}

// TestLineScenarioS2 reproduces spec scenario S2.
func TestLineScenarioS2(t *testing.T) {
	cur := clipline.Line(clipline.Pt[int32](0, 0), clipline.Pt[int32](10, 5))
	want := []clipline.Point[int32]{
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 2}, {X: 4, Y: 2},
		{X: 5, Y: 3}, {X: 6, Y: 3}, {X: 7, Y: 4}, {X: 8, Y: 4}, {X: 9, Y: 5},
	}
	require.Equal(t, want, drain[int32](cur))
}

func TestLineEmptyCoincident(t *testing.T) {
	cur := clipline.Line(clipline.Pt[int32](3, 3), clipline.Pt[int32](3, 3))
	require.True(t, cur.IsEmpty())
	require.Equal(t, uint64(0), cur.Len())
	_, ok := cur.PopHead()
	require.False(t, ok)
}

// TestExactLength checks universal property 2: an unclipped cursor's
// Len equals max(|dx|, |dy|), or 0 for coincident endpoints.
func TestExactLength(t *testing.T) {
	cases := []struct{ x1, y1, x2, y2 int32 }{
		{0, 0, 0, 0},
		{0, 5, 12, 5},
		{5, 0, 5, -7},
		{0, 0, 6, 6},
		{0, 0, 10, 5},
		{0, 0, 5, 10},
		{-3, -3, 3, 8},
	}
	for _, c := range cases {
		cur := clipline.Line(clipline.Pt(c.x1, c.y1), clipline.Pt(c.x2, c.y2))
		dx := c.x2 - c.x1
		if dx < 0 {
			dx = -dx
		}
		dy := c.y2 - c.y1
		if dy < 0 {
			dy = -dy
		}
		want := dx
		if dy > want {
			want = dy
		}
		require.Equal(t, uint64(want), cur.Len(), "len(%v -> %v)", c, c)
	}
}

// TestHeadNeverYieldsEnd checks universal property 3: the cursor
// yields p1 first and never yields p2.
func TestHeadNeverYieldsEnd(t *testing.T) {
	endpoints := [][4]int32{
		{0, 0, 10, 10},
		{0, 0, 10, 5},
		{0, 0, -10, -5},
		{2, 7, 2, -3},
	}
	for _, e := range endpoints {
		p1, p2 := clipline.Pt(e[0], e[1]), clipline.Pt(e[2], e[3])
		cur := clipline.Line(p1, p2)
		first, ok := cur.Head()
		require.True(t, ok)
		require.Equal(t, p1, first)

		for {
			p, ok := cur.PopHead()
			if !ok {
				break
			}
			require.NotEqual(t, p2, p)
		}
	}
}

// TestTotalDomain checks universal property 10: constructors accept
// endpoints at the extremes of T.
func TestTotalDomain(t *testing.T) {
	const min16, max16 = int16(-32768), int16(32767)
	cur := clipline.Line(clipline.Pt(min16, min16), clipline.Pt(max16, max16))
	require.False(t, cur.IsEmpty())
	// 65535, computed outside int16 (max16-min16 itself overflows int16).
	require.Equal(t, uint64(65535), cur.Len())

	first, ok := cur.Head()
	require.True(t, ok)
	require.Equal(t, clipline.Pt(min16, min16), first)
}

// TestTotalDomainInt64 checks property 10 at a 64-bit signed width.
func TestTotalDomainInt64(t *testing.T) {
	const min64, max64 = int64(-1 << 62), int64(1<<62 - 1)
	cur := clipline.Line(clipline.Pt(min64, min64), clipline.Pt(max64, max64))
	require.False(t, cur.IsEmpty())
	require.Equal(t, uint64(1<<63-1), cur.Len())

	first, ok := cur.Head()
	require.True(t, ok)
	require.Equal(t, clipline.Pt(min64, min64), first)
}

// TestTotalDomainUint64Straddle checks property 10 for a uint64 line
// whose endpoints straddle math.MaxInt64, the exact case a
// sign-reinterpreting absDiff gets wrong.
func TestTotalDomainUint64Straddle(t *testing.T) {
	const hi, lo uint64 = 1<<63 + 1000, 1<<63 - 1000
	cur := clipline.Line(clipline.Pt(lo, uint64(0)), clipline.Pt(hi, uint64(2000)))
	require.False(t, cur.IsEmpty())
	require.Equal(t, uint64(2000), cur.Len())

	first, ok := cur.Head()
	require.True(t, ok)
	require.Equal(t, clipline.Pt(lo, uint64(0)), first)
}

// TestTotalDomainUintptr checks property 10 at uintptr, which is
// 64-bit on the platforms this module's tests run on.
func TestTotalDomainUintptr(t *testing.T) {
	const hi, lo uintptr = 1<<63 + 1000, 1<<63 - 1000
	cur := clipline.Line(clipline.Pt(lo, uintptr(0)), clipline.Pt(hi, uintptr(2000)))
	require.False(t, cur.IsEmpty())
	require.Equal(t, uint64(2000), cur.Len())
}

func TestSeqAdapterMatchesDrain(t *testing.T) {
	cur := clipline.Line(clipline.Pt[int32](0, 0), clipline.Pt[int32](10, 5))
	var viaSeq []clipline.Point[int32]
	for p := range clipline.Seq[int32](cur) {
		viaSeq = append(viaSeq, p)
	}

	cur2 := clipline.Line(clipline.Pt[int32](0, 0), clipline.Pt[int32](10, 5))
	require.Equal(t, drain[int32](cur2), viaSeq)
}

func TestEnumerateAdapter(t *testing.T) {
	cur := clipline.Line(clipline.Pt[int32](0, 0), clipline.Pt[int32](4, 4))
	i := 0
	for idx, p := range clipline.Enumerate[int32](cur) {
		require.Equal(t, i, idx)
		require.Equal(t, clipline.Pt(int32(i), int32(i)), p)
		i++
	}
	require.Equal(t, 4, i)
}
