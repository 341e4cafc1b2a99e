package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/go-graphkit/graphkit/adjlist"
	"github.com/go-graphkit/graphkit/graph"
	"github.com/go-graphkit/graphkit/tsp"
)

type mockVertex struct{ id string }

func (v mockVertex) ID() string { return v.id }

type weightedEdge struct{ weight int }

func (e weightedEdge) Weight() int { return e.weight }

type TSPSuite struct {
	suite.Suite
}

func TestTSPSuite(t *testing.T) {
	suite.Run(t, new(TSPSuite))
}

// buildSquare is a complete 4-vertex graph whose cheapest closed tour,
// A-B-C-D-A (or its reverse), costs 7: AB=1, BC=2, CD=1, DA=3, plus the
// diagonals AC=4 and BD=5.
func (s *TSPSuite) buildSquare() *adjlist.Backend[string, mockVertex, weightedEdge] {
	b := adjlist.New[string, mockVertex, weightedEdge](graph.Undirected{})
	for _, id := range []string{"A", "B", "C", "D"} {
		s.Require().NoError(b.AddVertex(mockVertex{id: id}))
	}
	edges := []struct {
		from, to string
		w        int
	}{
		{"A", "B", 1},
		{"B", "C", 2},
		{"C", "D", 1},
		{"D", "A", 3},
		{"A", "C", 4},
		{"B", "D", 5},
	}
	for _, e := range edges {
		s.Require().NoError(b.AddEdge(e.from, e.to, weightedEdge{weight: e.w}))
	}
	return b
}

func (s *TSPSuite) totalCost(edges []graph.Edge3[string, weightedEdge]) int {
	total := 0
	for _, e := range edges {
		total += e.Edge.Weight()
	}
	return total
}

func (s *TSPSuite) TestBruteForceFindsOptimalTour() {
	g := s.buildSquare()
	path, err := tsp.BruteForce[string, mockVertex, weightedEdge, int](g, tsp.WithStart("A"))
	s.Require().NoError(err)
	s.Equal(4, path.Len())
	s.Equal(7, s.totalCost(path.Edges()))
	s.Equal("A", path.Vertices()[0])
	s.Equal("A", path.Vertices()[len(path.Vertices())-1])
}

func (s *TSPSuite) TestBranchAndBoundMatchesBruteForce() {
	g := s.buildSquare()
	exact, err := tsp.BruteForce[string, mockVertex, weightedEdge, int](g, tsp.WithStart("A"))
	s.Require().NoError(err)

	bb, err := tsp.BranchAndBound[string, mockVertex, weightedEdge, int](g, tsp.WithStart("A"))
	s.Require().NoError(err)

	s.Equal(s.totalCost(exact.Edges()), s.totalCost(bb.Edges()))
}

func (s *TSPSuite) TestNearestNeighborProducesValidClosedTour() {
	g := s.buildSquare()
	path, err := tsp.NearestNeighbor[string, mockVertex, weightedEdge, int](g, tsp.WithStart("A"))
	s.Require().NoError(err)

	vertices := path.Vertices()
	s.Equal(5, len(vertices))
	s.Equal(vertices[0], vertices[len(vertices)-1])

	seen := map[string]bool{}
	for _, id := range vertices[:len(vertices)-1] {
		s.False(seen[id], "vertex %s visited twice", id)
		seen[id] = true
	}
	s.Len(seen, 4)
}

func (s *TSPSuite) TestDoubleTreeProducesValidClosedTour() {
	g := s.buildSquare()
	path, err := tsp.DoubleTree[string, mockVertex, weightedEdge, int](g, tsp.WithStart("A"))
	s.Require().NoError(err)

	vertices := path.Vertices()
	s.Equal(5, len(vertices))
	s.Equal(vertices[0], vertices[len(vertices)-1])

	seen := map[string]bool{}
	for _, id := range vertices[:len(vertices)-1] {
		s.False(seen[id], "vertex %s visited twice", id)
		seen[id] = true
	}
	s.Len(seen, 4)
}

func (s *TSPSuite) TestEmptyGraphReturnsEmptyPath() {
	g := adjlist.New[string, mockVertex, weightedEdge](graph.Undirected{})

	path, err := tsp.BruteForce[string, mockVertex, weightedEdge, int](g)
	s.Require().NoError(err)
	s.True(path.IsEmpty())

	path, err = tsp.NearestNeighbor[string, mockVertex, weightedEdge, int](g)
	s.Require().NoError(err)
	s.True(path.IsEmpty())

	path, err = tsp.DoubleTree[string, mockVertex, weightedEdge, int](g)
	s.Require().NoError(err)
	s.True(path.IsEmpty())

	path, err = tsp.BranchAndBound[string, mockVertex, weightedEdge, int](g)
	s.Require().NoError(err)
	s.True(path.IsEmpty())
}

func (s *TSPSuite) TestIncompleteGraphFailsWithMissingEdge() {
	b := adjlist.New[string, mockVertex, weightedEdge](graph.Undirected{})
	for _, id := range []string{"A", "B", "C"} {
		s.Require().NoError(b.AddVertex(mockVertex{id: id}))
	}
	s.Require().NoError(b.AddEdge("A", "B", weightedEdge{weight: 1}))
	// no B-C or A-C edge: graph is not complete.

	_, err := tsp.BruteForce[string, mockVertex, weightedEdge, int](b, tsp.WithStart("A"))
	s.Error(err)
	var missing *tsp.MissingEdgeError[string]
	s.ErrorAs(err, &missing)
}

func (s *TSPSuite) TestUnknownStartVertexFails() {
	g := s.buildSquare()
	_, err := tsp.BruteForce[string, mockVertex, weightedEdge, int](g, tsp.WithStart("Z"))
	s.Error(err)
	var notFound *graph.VertexNotFoundError[string]
	s.ErrorAs(err, &notFound)
}
