package shortestpath_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/go-graphkit/graphkit/adjlist"
	"github.com/go-graphkit/graphkit/graph"
	"github.com/go-graphkit/graphkit/shortestpath"
)

type mockVertex[I comparable] struct{ id I }

func (v mockVertex[I]) ID() I { return v.id }

type weightedEdge struct{ w int }

func (e weightedEdge) Weight() int { return e.w }

type DijkstraSuite struct {
	suite.Suite
}

func TestDijkstraSuite(t *testing.T) {
	suite.Run(t, new(DijkstraSuite))
}

func (s *DijkstraSuite) buildGraph() *adjlist.Backend[int, mockVertex[int], weightedEdge] {
	b := adjlist.New[int, mockVertex[int], weightedEdge](graph.Directed{})
	for _, id := range []int{0, 1, 2, 3} {
		s.Require().NoError(b.AddVertex(mockVertex[int]{id: id}))
	}
	type e struct{ from, to, w int }
	for _, edge := range []e{{0, 1, 4}, {0, 2, 1}, {2, 1, 1}, {1, 3, 1}, {2, 3, 5}} {
		s.Require().NoError(b.AddEdge(edge.from, edge.to, weightedEdge{w: edge.w}))
	}
	return b
}

func (s *DijkstraSuite) TestShortestCosts() {
	b := s.buildGraph()
	sp, err := shortestpath.Dijkstra[int, mockVertex[int], weightedEdge, int](b, 0, nil)
	s.Require().NoError(err)

	cost, ok := sp.Cost(1)
	s.Require().True(ok)
	s.Equal(2, cost) // 0->2->1

	cost, ok = sp.Cost(3)
	s.Require().True(ok)
	s.Equal(3, cost) // 0->2->1->3

	s.Equal([]int{0, 2, 1, 3}, sp.Path(3))
}

func (s *DijkstraSuite) TestEarlyTerminationOnGoal() {
	b := s.buildGraph()
	goal := 2
	sp, err := shortestpath.Dijkstra[int, mockVertex[int], weightedEdge, int](b, 0, &goal)
	s.Require().NoError(err)

	cost, ok := sp.Cost(2)
	s.Require().True(ok)
	s.Equal(1, cost)
}

func (s *DijkstraSuite) TestUnknownStartFails() {
	b := s.buildGraph()
	_, err := shortestpath.Dijkstra[int, mockVertex[int], weightedEdge, int](b, 999, nil)
	s.Require().Error(err)
	var vnf *graph.VertexNotFoundError[int]
	s.Require().ErrorAs(err, &vnf)
}

type BellmanFordSuite struct {
	suite.Suite
}

func TestBellmanFordSuite(t *testing.T) {
	suite.Run(t, new(BellmanFordSuite))
}

func (s *BellmanFordSuite) TestAgreesWithDijkstraOnNonNegativeWeights() {
	b := adjlist.New[int, mockVertex[int], weightedEdge](graph.Directed{})
	for _, id := range []int{0, 1, 2, 3} {
		s.Require().NoError(b.AddVertex(mockVertex[int]{id: id}))
	}
	type e struct{ from, to, w int }
	for _, edge := range []e{{0, 1, 4}, {0, 2, 1}, {2, 1, 1}, {1, 3, 1}, {2, 3, 5}} {
		s.Require().NoError(b.AddEdge(edge.from, edge.to, weightedEdge{w: edge.w}))
	}

	bf, err := shortestpath.BellmanFord[int, mockVertex[int], weightedEdge, int](b, 0)
	s.Require().NoError(err)
	dij, err := shortestpath.Dijkstra[int, mockVertex[int], weightedEdge, int](b, 0, nil)
	s.Require().NoError(err)

	for _, id := range []int{1, 2, 3} {
		bfCost, _ := bf.Cost(id)
		dijCost, _ := dij.Cost(id)
		s.Equal(dijCost, bfCost)
	}
}

func (s *BellmanFordSuite) TestNegativeCycleReconstruction() {
	b := adjlist.New[string, mockVertex[string], weightedEdge](graph.Directed{})
	for _, id := range []string{"S", "A", "B", "C"} {
		s.Require().NoError(b.AddVertex(mockVertex[string]{id: id}))
	}
	type e struct {
		from, to string
		w        int
	}
	for _, edge := range []e{{"S", "A", 0}, {"A", "B", -1}, {"B", "C", -1}, {"C", "A", -1}} {
		s.Require().NoError(b.AddEdge(edge.from, edge.to, weightedEdge{w: edge.w}))
	}

	_, err := shortestpath.BellmanFord[string, mockVertex[string], weightedEdge, int](b, "S")
	s.Require().Error(err)

	var nce *shortestpath.NegativeCycleError[string]
	s.Require().ErrorAs(err, &nce)
	s.Require().NotEmpty(nce.Cycle)
	s.Equal(nce.Cycle[0], nce.Cycle[len(nce.Cycle)-1])

	// Every consecutive pair in the cycle must be a real edge in the graph.
	for i := 0; i < len(nce.Cycle)-1; i++ {
		_, ok := b.Edge(nce.Cycle[i], nce.Cycle[i+1])
		s.True(ok, "missing edge %s->%s", nce.Cycle[i], nce.Cycle[i+1])
	}
}

func (s *BellmanFordSuite) TestUnknownStartFails() {
	b := adjlist.New[int, mockVertex[int], weightedEdge](graph.Directed{})
	_, err := shortestpath.BellmanFord[int, mockVertex[int], weightedEdge, int](b, 999)
	s.Require().Error(err)
	var vnf *graph.VertexNotFoundError[int]
	s.Require().ErrorAs(err, &vnf)
}
