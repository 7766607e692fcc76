package j1cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackBasic(t *testing.T) {
	var s stack
	require.EqualValues(t, 0, s.sp)
	require.Empty(t, s.dump())

	s.push(1)
	s.push(2)
	s.push(3)

	require.Len(t, s.dump(), 3)
	require.EqualValues(t, 3, s.peek())

	s.replace(4)
	require.EqualValues(t, 4, s.pop())
	require.Len(t, s.dump(), 2)
	require.EqualValues(t, s.depth(), len(s.dump()))

	for _, v := range []uint16{3, 4, 5, 6, 7, 8, 9} {
		s.push(v)
	}
	require.EqualValues(t, 9, s.depth())
	require.EqualValues(t, 9, s.sp)
}

func TestStackWrap(t *testing.T) {
	var s stack
	for i := uint16(1); i < 34; i++ {
		s.push(i)
	}
	require.Equal(t, []uint16{33}, s.dump())
	require.EqualValues(t, 1, s.depth())
	require.Equal(t, [32]uint16{
		32, 33, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31,
	}, s.data)
}

func TestStackMovePointer(t *testing.T) {
	var s stack
	s.push(1)
	s.push(2)
	s.push(3)
	require.EqualValues(t, 3, s.depth())
	require.EqualValues(t, 3, s.peek())

	s.moveSP(-1)
	require.EqualValues(t, 2, s.depth())
	require.EqualValues(t, 2, s.peek())

	s.moveSP(1)
	require.EqualValues(t, 3, s.depth())
	require.EqualValues(t, 3, s.peek())
}
