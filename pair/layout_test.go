package pair

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type marker struct{}

func TestZeroState(t *testing.T) {
	require.True(t, ZeroState[struct{}]())
	require.True(t, ZeroState[marker]())
	require.True(t, ZeroState[[0]int64]())
	require.True(t, ZeroState[Pair[marker, struct{}]]())
	require.False(t, ZeroState[int8]())
	require.False(t, ZeroState[*marker]())
}

func TestEmptySecondIsFree(t *testing.T) {
	l := LayoutOf[int64, marker]()
	require.Equal(t, unsafe.Sizeof(int64(0)), l.Size)
	require.Equal(t, uintptr(0), l.Second)
	require.Equal(t, uintptr(0), l.Padding())
	require.True(t, l.Compressed())

	require.Equal(t, unsafe.Sizeof(int64(0)), unsafe.Sizeof(Pair[int64, struct{}]{}))
	require.Equal(t, uintptr(1), unsafe.Sizeof(Pair[byte, marker]{}))
}

func TestBothEmpty(t *testing.T) {
	l := LayoutOf[marker, struct{}]()
	require.Equal(t, uintptr(0), l.Size)
	require.True(t, l.Compressed())
}

func TestEmptyFirstIsBestEffort(t *testing.T) {
	l := LayoutOf[marker, int64]()
	require.Equal(t, uintptr(0), l.First)
	require.GreaterOrEqual(t, l.Size, l.Second)
	require.Equal(t, l.Size == l.Second, l.Compressed())
}

func TestNoEmptyElements(t *testing.T) {
	l := LayoutOf[int32, int64]()
	require.Equal(t, uintptr(4), l.First)
	require.Equal(t, uintptr(8), l.Second)
	require.Equal(t, l.Size-12, l.Padding())
	require.True(t, l.Compressed())
}
