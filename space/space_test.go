package space_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spacesearch/space"
)

func line(limit int) space.Funcs[int] {
	return space.Funcs[int]{
		Next: func(n int) iter.Seq[int] {
			if n >= limit {
				return space.Values[int]()
			}
			return space.Values(n + 1)
		},
		Solved: func(n int) bool { return n == limit },
	}
}

func TestFuncs_NilClosures(t *testing.T) {
	var f space.Funcs[int]
	assert.False(t, f.IsSolution(0))
	assert.Empty(t, slices.Collect(f.Successors(0)))

	var sf space.ScoredFuncs[string, float64]
	assert.Equal(t, 0.0, sf.Score("x"))

	var wf space.WeightedFuncs[int, int]
	assert.False(t, wf.IsSolution(1))
	assert.Equal(t, 0, wf.Score(1))
	for range wf.WeightedSuccessors(1) {
		t.Fatal("nil Next must yield nothing")
	}
}

func TestFuncs_Delegates(t *testing.T) {
	f := line(3)
	require.Equal(t, []int{1}, slices.Collect(f.Successors(0)))
	require.Empty(t, slices.Collect(f.Successors(3)))
	assert.True(t, f.IsSolution(3))
	assert.False(t, f.IsSolution(2))
}

func TestUnit_LiftsWithUnitCosts(t *testing.T) {
	w := space.Unit[int, float64](line(2), func(n int) float64 { return float64(2 - n) })

	var got []space.Edge[int, float64]
	for e := range space.Edges[int, float64](w, 0) {
		got = append(got, e)
	}
	require.Equal(t, []space.Edge[int, float64]{{To: 1, Cost: 1}}, got)
	assert.Equal(t, 2.0, w.Score(0))
	assert.True(t, w.IsSolution(2))
}

func TestEdges_StopsEarly(t *testing.T) {
	w := space.WeightedFuncs[int, int]{
		Next: func(int) iter.Seq2[int, int] {
			return func(yield func(int, int) bool) {
				for i := 0; ; i++ {
					if !yield(i, i) {
						return
					}
				}
			}
		},
	}
	var n int
	for range space.Edges[int, int](w, 0) {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}
