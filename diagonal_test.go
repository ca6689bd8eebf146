package clipline_test

import (
	"testing"

	"github.com/nxsaken/clipline"
	"github.com/stretchr/testify/require"
)

func TestLineD0(t *testing.T) {
	c, ok := clipline.LineD0[int32](0, 0, 4, 4)
	require.True(t, ok)
	require.Equal(t, uint64(4), c.Len())

	pts := drain[int32](&c)
	require.Equal(t, []clipline.Point[int32]{
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3},
	}, pts)
}

func TestLineD1(t *testing.T) {
	c, ok := clipline.LineD1[int32](0, 4, 4, 0)
	require.True(t, ok)
	pts := drain[int32](&c)
	require.Equal(t, []clipline.Point[int32]{
		{X: 0, Y: 4}, {X: 1, Y: 3}, {X: 2, Y: 2}, {X: 3, Y: 1},
	}, pts)
}

func TestLineD2RejectsWrongQuadrant(t *testing.T) {
	_, ok := clipline.LineD2[int32](0, 0, 4, 4)
	require.False(t, ok)
}

func TestLineD3(t *testing.T) {
	c, ok := clipline.LineD3[int32](4, 4, 0, 0)
	require.True(t, ok)
	pts := drain[int32](&c)
	require.Equal(t, []clipline.Point[int32]{
		{X: 4, Y: 4}, {X: 3, Y: 3}, {X: 2, Y: 2}, {X: 1, Y: 1},
	}, pts)
}

func TestDiagonalRejectsMismatchedDeltas(t *testing.T) {
	_, ok := clipline.LineD0[int32](0, 0, 4, 5)
	require.False(t, ok)
}

func TestDiagonalHeadTailDuality(t *testing.T) {
	c, ok := clipline.LineD0[int32](0, 0, 5, 5)
	require.True(t, ok)

	head, ok := c.PopHead()
	require.True(t, ok)
	require.Equal(t, clipline.Pt[int32](0, 0), head)

	tail, ok := c.PopTail()
	require.True(t, ok)
	require.Equal(t, clipline.Pt[int32](4, 4), tail)

	require.Equal(t, uint64(3), c.Len())
}
