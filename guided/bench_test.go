package guided_test

import (
	"testing"

	"github.com/katalvlaran/spacesearch/gridspace"
	"github.com/katalvlaran/spacesearch/guided"
)

// BenchmarkHashableRoute_Plane measures a greedy descent of 200 steps.
func BenchmarkHashableRoute_Plane(b *testing.B) {
	pl := gridspace.NewPlane(gridspace.Point{X: 100, Y: 100}, gridspace.Conn4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := guided.NewHashableRoute[gridspace.Point, int](pl, gridspace.Point{}).Searcher()
		if err != nil {
			b.Fatal(err)
		}
		if _, ok := s.Next(); !ok {
			b.Fatal("no route")
		}
	}
}
