package adjlist_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/go-graphkit/graphkit/adjlist"
	"github.com/go-graphkit/graphkit/graph"
)

type mockVertex struct {
	id int
}

func (v mockVertex) ID() int { return v.id }

// BackendSuite exercises adjlist.Backend against the invariants every
// graph.Backend implementation must satisfy.
type BackendSuite struct {
	suite.Suite
}

func TestBackendSuite(t *testing.T) {
	suite.Run(t, new(BackendSuite))
}

func (s *BackendSuite) TestPushVertex() {
	b := adjlist.New[int, mockVertex, struct{}](graph.Directed{})
	s.Require().NoError(b.AddVertex(mockVertex{1}))
	s.Require().NoError(b.AddVertex(mockVertex{2}))

	err := b.AddVertex(mockVertex{1})
	var dup *graph.DuplicateVertexError[int]
	s.Require().ErrorAs(err, &dup)
	s.Equal(1, dup.ID)
}

func (s *BackendSuite) TestPushEdgeDirected() {
	b := adjlist.New[int, mockVertex, int](graph.Directed{})
	require.NoError(s.T(), b.AddVertex(mockVertex{1}))
	require.NoError(s.T(), b.AddVertex(mockVertex{2}))

	s.Require().NoError(b.AddEdge(1, 2, 10))
	s.Require().NoError(b.AddEdge(2, 1, 30))

	var dupEdge *graph.DuplicateEdgeError[int]
	s.Require().ErrorAs(b.AddEdge(1, 2, 20), &dupEdge)

	var notFound *graph.VertexNotFoundError[int]
	s.Require().ErrorAs(b.AddEdge(3, 1, 40), &notFound)
	s.Require().ErrorAs(b.AddEdge(1, 3, 40), &notFound)
}

func (s *BackendSuite) TestPushEdgeUndirectedMirrors() {
	b := adjlist.New[int, mockVertex, int](graph.Undirected{})
	s.Require().NoError(b.AddVertex(mockVertex{1}))
	s.Require().NoError(b.AddVertex(mockVertex{2}))

	s.Require().NoError(b.AddEdge(1, 2, 10))

	var dupEdge *graph.DuplicateEdgeError[int]
	s.Require().ErrorAs(b.AddEdge(1, 2, 20), &dupEdge)

	adj1, err := b.NeighborEdges(1)
	s.Require().NoError(err)
	s.Require().Len(adj1, 1)
	s.Equal(2, adj1[0].To)
	s.Equal(10, adj1[0].Edge)

	adj2, err := b.NeighborEdges(2)
	s.Require().NoError(err)
	s.Require().Len(adj2, 1)
	s.Equal(1, adj2[0].To)
	s.Equal(10, adj2[0].Edge)

	// An undirected edge is still reported once by Edges/EdgeCount.
	s.Len(b.Edges(), 1)
	s.Equal(1, b.EdgeCount())
}

func (s *BackendSuite) TestEdgesCanonicalisesUndirectedByFromLessOrEqualTo() {
	b := adjlist.New[int, mockVertex, int](graph.Undirected{})
	s.Require().NoError(b.AddVertex(mockVertex{1}))
	s.Require().NoError(b.AddVertex(mockVertex{2}))
	// Inserted as (2, 1) — must still be reported as (1, 2).
	s.Require().NoError(b.AddEdge(2, 1, 10))

	edges := b.Edges()
	s.Require().Len(edges, 1)
	s.Equal(1, edges[0].From)
	s.Equal(2, edges[0].To)
}

func (s *BackendSuite) TestSetEdgeOverwritesDirected() {
	b := adjlist.New[int, mockVertex, int](graph.Directed{})
	s.Require().NoError(b.AddVertex(mockVertex{1}))
	s.Require().NoError(b.AddVertex(mockVertex{2}))
	s.Require().NoError(b.AddEdge(1, 2, 10))

	s.Require().NoError(b.SetEdge(1, 2, 99))
	e, ok := b.Edge(1, 2)
	s.Require().True(ok)
	s.Equal(99, e)
	s.Equal(99, b.Edges()[0].Edge)

	var notFound *graph.EdgeNotFoundError[int]
	s.Require().ErrorAs(b.SetEdge(2, 1, 1), &notFound)
}

func (s *BackendSuite) TestSetEdgeUpdatesBothDirectionsUndirected() {
	b := adjlist.New[int, mockVertex, int](graph.Undirected{})
	s.Require().NoError(b.AddVertex(mockVertex{1}))
	s.Require().NoError(b.AddVertex(mockVertex{2}))
	s.Require().NoError(b.AddEdge(2, 1, 10))

	s.Require().NoError(b.SetEdge(1, 2, 42))

	e1, _ := b.Edge(1, 2)
	e2, _ := b.Edge(2, 1)
	s.Equal(42, e1)
	s.Equal(42, e2)
	s.Equal(42, b.Edges()[0].Edge)
}

func (s *BackendSuite) TestEdgePtrMutatesInPlace() {
	b := adjlist.New[int, mockVertex, int](graph.Directed{})
	s.Require().NoError(b.AddVertex(mockVertex{1}))
	s.Require().NoError(b.AddVertex(mockVertex{2}))
	s.Require().NoError(b.AddEdge(1, 2, 10))

	p, ok := b.EdgePtr(1, 2)
	s.Require().True(ok)
	*p = 77

	e, _ := b.Edge(1, 2)
	s.Equal(77, e)

	_, ok = b.EdgePtr(2, 1)
	s.False(ok)
}

func (s *BackendSuite) TestGetVertex() {
	b := adjlist.New[int, mockVertex, struct{}](graph.Directed{})
	s.Require().NoError(b.AddVertex(mockVertex{1}))
	s.Require().NoError(b.AddVertex(mockVertex{2}))

	v, ok := b.Vertex(1)
	s.Require().True(ok)
	s.Equal(1, v.ID())

	_, ok = b.Vertex(3)
	s.False(ok)
}

func (s *BackendSuite) TestGetAllVertices() {
	b := adjlist.New[int, mockVertex, struct{}](graph.Directed{})
	s.Require().NoError(b.AddVertex(mockVertex{1}))
	s.Require().NoError(b.AddVertex(mockVertex{2}))

	vs := b.Vertices()
	s.Require().Len(vs, 2)
	s.Equal(1, vs[0].ID())
	s.Equal(2, vs[1].ID())
}

func (s *BackendSuite) TestGetAdjacentVertices() {
	b := adjlist.New[int, mockVertex, int](graph.Directed{})
	s.Require().NoError(b.AddVertex(mockVertex{1}))
	s.Require().NoError(b.AddVertex(mockVertex{2}))
	s.Require().NoError(b.AddVertex(mockVertex{3}))
	s.Require().NoError(b.AddEdge(1, 2, 5))
	s.Require().NoError(b.AddEdge(1, 3, 7))

	ns, err := b.Neighbors(1)
	s.Require().NoError(err)
	s.Equal([]int{2, 3}, ns)

	_, err = b.Neighbors(99)
	var notFound *graph.VertexNotFoundError[int]
	s.Require().ErrorAs(err, &notFound)
}

func (s *BackendSuite) TestTotalWeightDirectedVsUndirected() {
	bd := adjlist.New[int, mockVertex, weightInt](graph.Directed{})
	s.Require().NoError(bd.AddVertex(mockVertex{1}))
	s.Require().NoError(bd.AddVertex(mockVertex{2}))
	s.Require().NoError(bd.AddEdge(1, 2, weightInt(4)))
	s.Equal(4, graph.TotalWeight[int, mockVertex, weightInt, int](bd))

	bu := adjlist.New[int, mockVertex, weightInt](graph.Undirected{})
	s.Require().NoError(bu.AddVertex(mockVertex{1}))
	s.Require().NoError(bu.AddVertex(mockVertex{2}))
	s.Require().NoError(bu.AddEdge(1, 2, weightInt(4)))
	s.Equal(4, graph.TotalWeight[int, mockVertex, weightInt, int](bu))
}

func (s *BackendSuite) TestVertexAndEdgeCount() {
	b := adjlist.New[int, mockVertex, int](graph.Undirected{})
	s.Require().NoError(b.AddVertex(mockVertex{1}))
	s.Require().NoError(b.AddVertex(mockVertex{2}))
	s.Require().NoError(b.AddVertex(mockVertex{3}))
	s.Require().NoError(b.AddEdge(1, 2, 1))
	s.Require().NoError(b.AddEdge(2, 3, 1))

	s.Equal(3, b.VertexCount())
	s.Equal(2, b.EdgeCount())
}

func (s *BackendSuite) TestFromVerticesAndEdgesFailsOnFirstViolation() {
	_, err := adjlist.FromVerticesAndEdges[int, mockVertex, int](
		graph.Directed{},
		[]mockVertex{{1}, {2}},
		[]graph.Edge3[int, int]{{From: 1, To: 9, Edge: 1}},
	)
	var notFound *graph.VertexNotFoundError[int]
	s.Require().ErrorAs(err, &notFound)
	s.Equal(9, notFound.ID)
}

type weightInt int

func (w weightInt) Weight() int { return int(w) }
