package clipline_test

import (
	"testing"

	"github.com/nxsaken/clipline"
	"github.com/stretchr/testify/require"
)

func drain[T clipline.Coordinate](cur clipline.Cursor[T]) []clipline.Point[T] {
	var out []clipline.Point[T]
	clipline.Drain[T](cur, func(p clipline.Point[T]) bool {
		out = append(out, p)
		return true
	})
	return out
}

func TestLineAxForward(t *testing.T) {
	c, ok := clipline.LineAxForward[int32](5, 0, 4)
	require.True(t, ok)
	require.Equal(t, uint64(4), c.Len())
	require.False(t, c.IsEmpty())

	pts := drain[int32](&c)
	require.Equal(t, []clipline.Point[int32]{
		{X: 0, Y: 5}, {X: 1, Y: 5}, {X: 2, Y: 5}, {X: 3, Y: 5},
	}, pts)
}

func TestLineAxBackward(t *testing.T) {
	c, ok := clipline.LineAxBackward[int32](5, 4, 0)
	require.True(t, ok)

	pts := drain[int32](&c)
	require.Equal(t, []clipline.Point[int32]{
		{X: 4, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 5}, {X: 1, Y: 5},
	}, pts)
}

func TestLineAxRejectsBackwardEndpoints(t *testing.T) {
	_, ok := clipline.LineAxForward[int32](5, 4, 0)
	require.False(t, ok)
}

func TestLineAyForward(t *testing.T) {
	c, ok := clipline.LineAyForward[int32](5, 0, 4)
	require.True(t, ok)
	pts := drain[int32](&c)
	require.Equal(t, []clipline.Point[int32]{
		{X: 5, Y: 0}, {X: 5, Y: 1}, {X: 5, Y: 2}, {X: 5, Y: 3},
	}, pts)
}

func TestAxisHeadTailDuality(t *testing.T) {
	c, ok := clipline.LineAxForward[int32](0, 0, 5)
	require.True(t, ok)

	head, ok := c.PopHead()
	require.True(t, ok)
	require.Equal(t, clipline.Pt[int32](0, 0), head)

	tail, ok := c.PopTail()
	require.True(t, ok)
	require.Equal(t, clipline.Pt[int32](4, 0), tail)

	require.Equal(t, uint64(3), c.Len())

	rest := drain[int32](&c)
	require.Equal(t, []clipline.Point[int32]{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, rest)
}

func TestAxisEmptyCoincident(t *testing.T) {
	_, ok := clipline.LineAxForward[int32](0, 3, 3)
	require.False(t, ok)
}
