package route_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/go-graphkit/graphkit/route"
)

type ShortestPathsSuite struct {
	suite.Suite
}

func TestShortestPathsSuite(t *testing.T) {
	suite.Run(t, new(ShortestPathsSuite))
}

func (s *ShortestPathsSuite) TestGetCostExisting() {
	costs := map[int]int{1: 0, 2: 5}
	sp := route.NewShortestPaths(1, costs, map[int]int{})

	cost, ok := sp.Cost(1)
	s.Require().True(ok)
	s.Equal(0, cost)

	cost, ok = sp.Cost(2)
	s.Require().True(ok)
	s.Equal(5, cost)
}

func (s *ShortestPathsSuite) TestGetCostNonExisting() {
	sp := route.NewShortestPaths[int, float32](1, map[int]float32{}, map[int]int{})
	_, ok := sp.Cost(2)
	s.False(ok)
}

func (s *ShortestPathsSuite) TestGetPathSimple() {
	// 1 -> 2 -> 3
	costs := map[int]int{1: 0, 2: 1, 3: 2}
	preds := map[int]int{2: 1, 3: 2}
	sp := route.NewShortestPaths(1, costs, preds)

	s.Equal([]int{1, 2, 3}, sp.Path(3))
	s.Equal([]int{1, 2}, sp.Path(2))
	s.Equal([]int{1}, sp.Path(1))
}

func (s *ShortestPathsSuite) TestGetPathUnreachable() {
	sp := route.NewShortestPaths(1, map[int]int{1: 0}, map[int]int{})
	s.Nil(sp.Path(2))
}

func (s *ShortestPathsSuite) TestGetPathNoPredecessor() {
	// 1 -> 2, but 3 is in costs without a predecessor recorded.
	costs := map[int]int{1: 0, 2: 1, 3: 2}
	preds := map[int]int{2: 1}
	sp := route.NewShortestPaths(1, costs, preds)

	s.Nil(sp.Path(3))
}

func (s *ShortestPathsSuite) TestStart() {
	sp := route.NewShortestPaths[int, float32](42, map[int]float32{}, map[int]int{})
	s.Equal(42, sp.Start())
}
