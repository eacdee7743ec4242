package pair

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrdering(t *testing.T) {
	require.True(t, Less(Make(1, 2), Make(1, 3)))
	require.True(t, Equal(Make(1, 2), Make(1, 2)))
	require.True(t, Greater(Make(2, 1), Make(1, 3)))
	require.True(t, LexicographicalCompare(Make(1, 2), Make(1, 3)))
	require.False(t, LexicographicalCompare(Make(1, 3), Make(1, 3)))
	require.True(t, LessEqual(Make(1, 3), Make(1, 3)))
	require.True(t, GreaterEqual(Make(1, 3), Make(1, 3)))
	require.True(t, Less(Make("a", 9), Make("b", 0)))
}

func TestOperatorsAgree(t *testing.T) {
	var ps []Pair[int, int]
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			ps = append(ps, Make(i, j))
		}
	}

	for _, a := range ps {
		for _, b := range ps {
			c := Compare(a, b)
			require.Equal(t, -Compare(b, a), c)
			require.Equal(t, Less(a, b), Greater(b, a))
			require.Equal(t, c < 0, Less(a, b))
			require.Equal(t, c <= 0, LessEqual(a, b))
			require.Equal(t, c > 0, Greater(a, b))
			require.Equal(t, c >= 0, GreaterEqual(a, b))
			require.Equal(t, c == 0, Equal(a, b))
			require.Equal(t, !Equal(a, b), NotEqual(a, b))
			require.Equal(t, a == b, Equal(a, b))

			want := a.First() < b.First() || (a.First() == b.First() && a.Second() < b.Second())
			require.Equal(t, want, Less(a, b), "%v < %v", a, b)
		}
	}
}

func TestEqualityLaws(t *testing.T) {
	ps := []Pair[string, int]{
		Make("a", 1), Make("a", 1), Make("a", 2), Make("b", 1), Make("", 0),
	}

	for _, a := range ps {
		require.True(t, Equal(a, a))
		for _, b := range ps {
			require.Equal(t, Equal(a, b), Equal(b, a))
			for _, c := range ps {
				if Equal(a, b) && Equal(b, c) {
					require.True(t, Equal(a, c))
				}
			}
		}
	}
}

func TestCompareNaN(t *testing.T) {
	nan := Make(math.NaN(), 1)
	require.Equal(t, -1, Compare(nan, Make(math.Inf(-1), 1)))
	require.Equal(t, 0, Compare(nan, nan))
	require.False(t, Equal(nan, nan))
}

func TestSort(t *testing.T) {
	ps := []Pair[int, string]{
		Make(2, "a"), Make(1, "b"), Make(1, "a"), Make(0, "z"),
	}
	Sort(ps)
	require.Equal(t, []Pair[int, string]{
		Make(0, "z"), Make(1, "a"), Make(1, "b"), Make(2, "a"),
	}, ps)
}

func TestEqualFuncAndCompareFunc(t *testing.T) {
	a := Make([]int{1, 2}, "x")
	b := Make([]int{1, 2}, "X")

	require.False(t, EqualFunc(a, b, slices.Equal[[]int], func(x, y string) bool { return x == y }))
	require.True(t, EqualFunc(a, b, slices.Equal[[]int], strings.EqualFold))

	require.Equal(t, 1, CompareFunc(a, b, slices.Compare[[]int], cmp.Compare[string]))
	require.Equal(t, -1, CompareFunc(Make([]int{1}, "z"), a, slices.Compare[[]int], cmp.Compare[string]))
}

type version struct{ major, minor int }

func (v version) Cmp(other version) int {
	if c := cmp.Compare(v.major, other.major); c != 0 {
		return c
	}
	return cmp.Compare(v.minor, other.minor)
}

func TestCompareBy(t *testing.T) {
	a := Make(version{1, 2}, version{0, 1})
	b := Make(version{1, 2}, version{0, 3})

	require.Equal(t, -1, CompareBy(a, b))
	require.Equal(t, 1, CompareBy(b, a))
	require.Equal(t, 0, CompareBy(a, a))
	require.Equal(t, 1, CompareBy(Make(version{2, 0}, version{0, 0}), b))
}
