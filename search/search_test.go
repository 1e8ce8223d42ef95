package search_test

import (
	"bytes"
	"context"
	"iter"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spacesearch/gridspace"
	"github.com/katalvlaran/spacesearch/search"
	"github.com/katalvlaran/spacesearch/space"
	"github.com/katalvlaran/spacesearch/unguided"
)

// tree is the complete binary tree 1..limit: n → 2n, 2n+1.
func tree(limit int, solved func(int) bool) space.Funcs[int] {
	return space.Funcs[int]{
		Next: func(n int) iter.Seq[int] {
			if 2*n+1 > limit {
				return space.Values[int]()
			}
			return space.Values(2*n, 2*n+1)
		},
		Solved: solved,
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := search.New[int, int, struct{}, int, int](nil, tree(1, nil))
	require.ErrorIs(t, err, search.ErrNilManager)

	m := unguided.NewNoRoute[int](tree(1, nil), 1)
	_, err = search.New[int, int, struct{}, int, int](m, nil)
	require.ErrorIs(t, err, search.ErrNilSpace)

	_, err = m.Searcher(search.WithMaxExpansions(-1))
	require.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = unguided.NewNoRoute[int](nil, 1).Searcher()
	require.ErrorIs(t, err, search.ErrNilSpace)
}

func TestSearcher_AllYieldsEverySolution(t *testing.T) {
	// only leaves (8..15) may be solutions; solved states are not expanded
	sp := tree(15, func(n int) bool { return n >= 8 && n%3 == 0 })
	s, err := unguided.NewNoRoute[int](sp, 1).Searcher()
	require.NoError(t, err)

	var got []int
	for n := range s.All() {
		got = append(got, n)
	}
	assert.Equal(t, []int{9, 12, 15}, got)
	assert.Equal(t, search.Exhausted, s.Status())
	assert.Equal(t, 3, s.Stats().Solutions)
	assert.NoError(t, s.Err())
}

func TestSearcher_ResumesAfterSolution(t *testing.T) {
	sp := tree(7, func(n int) bool { return n == 2 || n == 3 })
	s, err := unguided.NewNoRoute[int](sp, 1).Searcher()
	require.NoError(t, err)
	require.Equal(t, search.Ready, s.Status())

	first, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, 2, first)
	assert.Equal(t, search.Solved, s.Status())

	second, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, 3, second)

	_, ok = s.Next()
	assert.False(t, ok)
	assert.Equal(t, search.Exhausted, s.Status())
}

func TestSearcher_ExhaustedIsFinal(t *testing.T) {
	exhausts := 0
	hook := func(e search.Event) {
		if e == search.EventExhaust {
			exhausts++
		}
	}
	s, err := unguided.NewNoRoute[int](tree(7, nil), 1).Searcher(search.WithHook(hook))
	require.NoError(t, err)

	_, ok := s.Next()
	require.False(t, ok)
	_, ok = s.Next()
	require.False(t, ok)

	assert.Equal(t, search.Exhausted, s.Status())
	assert.Equal(t, 1, exhausts)
	assert.Equal(t, 7, s.Stats().Popped)
	assert.Equal(t, 7, s.Stats().Expanded)
}

func TestSearcher_Budget(t *testing.T) {
	pl := gridspace.NewPlane(gridspace.Point{X: 1000, Y: 1000}, gridspace.Conn4)
	m := unguided.NewHashableNoRoute[gridspace.Point](pl, gridspace.Point{})
	s, err := m.Searcher(search.WithMaxExpansions(5))
	require.NoError(t, err)

	_, ok := s.Next()
	require.False(t, ok)
	assert.Equal(t, search.Stopped, s.Status())
	assert.ErrorIs(t, s.Err(), search.ErrBudgetExceeded)
	assert.Equal(t, 5, s.Stats().Expanded)

	// Stopped is final
	_, ok = s.Next()
	assert.False(t, ok)
	assert.Equal(t, 5, s.Stats().Expanded)
}

func TestSearcher_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pl := gridspace.NewPlane(gridspace.Point{X: 3, Y: 3}, gridspace.Conn4)
	s, err := unguided.NewHashableNoRoute[gridspace.Point](pl, gridspace.Point{}).Searcher(search.WithContext(ctx))
	require.NoError(t, err)

	_, ok := s.Next()
	require.False(t, ok)
	assert.Equal(t, search.Stopped, s.Status())
	assert.ErrorIs(t, s.Err(), context.Canceled)
	assert.Zero(t, s.Stats().Popped)
}

func TestSearcher_CancelMidExpansion(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sp := space.Funcs[int]{
		Next: func(n int) iter.Seq[int] {
			return func(yield func(int) bool) {
				for i := 1; ; i++ {
					if i == 3 {
						cancel()
					}
					if !yield(n*10 + i) {
						return
					}
				}
			}
		},
	}
	s, err := unguided.NewNoRoute[int](sp, 0).Searcher(search.WithContext(ctx))
	require.NoError(t, err)

	_, ok := s.Next()
	require.False(t, ok)
	assert.ErrorIs(t, s.Err(), context.Canceled)
	assert.Equal(t, 2, s.Stats().Generated, "the successor after cancel is never wrapped")
}

func TestSearcher_StatsBalance(t *testing.T) {
	g, start, err := gridspace.ParseMaze([]string{
		"S...",
		".##.",
		"...G",
	}, gridspace.Conn4)
	require.NoError(t, err)

	events := map[search.Event]int{}
	m := unguided.NewHashableRoute[gridspace.Point](g, start)
	s, err := m.Searcher(search.WithHook(func(e search.Event) { events[e]++ }))
	require.NoError(t, err)

	_, ok := s.Next()
	require.True(t, ok)

	st := s.Stats()
	assert.Equal(t, st.Generated, st.Admitted+st.Rejected)
	assert.Equal(t, st.Popped, st.Expanded+st.Solutions)
	assert.Equal(t, st.Popped, events[search.EventPop])
	assert.Equal(t, st.Expanded, events[search.EventExpand])
	assert.Equal(t, st.Admitted, events[search.EventAdmit])
	assert.Equal(t, st.Rejected, events[search.EventReject])
	assert.Equal(t, 1, events[search.EventSolve])
	assert.Equal(t, m.Visited().Len(), st.Admitted+1)
}

func TestSearcher_Logger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := unguided.NewNoRoute[int](tree(3, nil), 1).Searcher(search.WithLogger(l))
	require.NoError(t, err)
	_, _ = s.Next()

	assert.Contains(t, buf.String(), "search: exhausted")
	assert.Contains(t, buf.String(), "expanded=3")
}

func TestWithHook_Chains(t *testing.T) {
	var order []string
	s, err := unguided.NewNoRoute[int](tree(1, nil), 1).Searcher(
		search.WithHook(func(search.Event) { order = append(order, "a") }),
		search.WithHook(nil),
		search.WithHook(func(search.Event) { order = append(order, "b") }),
	)
	require.NoError(t, err)
	_, _ = s.Next()

	// pop, expand, exhaust
	assert.Equal(t, []string{"a", "b", "a", "b", "a", "b"}, order)
}

func TestDefaultOptions(t *testing.T) {
	o := search.DefaultOptions()
	assert.NotNil(t, o.Ctx)
	assert.NotNil(t, o.Logger)
	assert.NotNil(t, o.Hook)
	assert.Zero(t, o.MaxExpansions)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "ready", search.Ready.String())
	assert.Equal(t, "solved", search.Solved.String())
	assert.Equal(t, "exhausted", search.Exhausted.String())
	assert.Equal(t, "stopped", search.Stopped.String())
	assert.Equal(t, "status(9)", search.Status(9).String())

	assert.Equal(t, "pop", search.EventPop.String())
	assert.Equal(t, "reject", search.EventReject.String())
	assert.Equal(t, "event(9)", search.Event(9).String())
}
