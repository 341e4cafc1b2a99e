// Command graphbench loads a YAML run configuration, reads the named
// corpus, builds a graph, dispatches to one algorithm, and prints the
// result plus elapsed wall time.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-graphkit/graphkit/adjlist"
	"github.com/go-graphkit/graphkit/config"
	"github.com/go-graphkit/graphkit/flow"
	"github.com/go-graphkit/graphkit/graph"
	"github.com/go-graphkit/graphkit/loader"
	"github.com/go-graphkit/graphkit/mst"
	"github.com/go-graphkit/graphkit/route"
	"github.com/go-graphkit/graphkit/shortestpath"
	"github.com/go-graphkit/graphkit/traverse"
	"github.com/go-graphkit/graphkit/tsp"
)

type vertex struct{ id int }

func (v vertex) ID() int { return v.id }

type weightedEdge struct {
	weight int
	flow   int
}

func (e weightedEdge) Weight() int { return e.weight }

func capOf(e weightedEdge) int    { return e.weight }
func flowOf(e *weightedEdge) *int { return &e.flow }

func buildEdge(from, to int, cols []string) (weightedEdge, error) {
	if len(cols) == 0 {
		return weightedEdge{weight: 1}, nil
	}
	w, err := strconv.Atoi(cols[0])
	if err != nil {
		return weightedEdge{}, fmt.Errorf("edge %d->%d: %w", from, to, err)
	}
	return weightedEdge{weight: w}, nil
}

func main() {
	configPath := flag.String("config", "", "path to a run config YAML file")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "usage: graphbench -config run.yaml")
		os.Exit(1)
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "graphbench:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ids, edges, err := loader.LoadFile(cfg.CorpusPath, buildEdge)
	if err != nil {
		return err
	}

	dir := graph.Direction(graph.Undirected{})
	if cfg.Directed {
		dir = graph.Directed{}
	}

	vertices := make([]vertex, len(ids))
	for i, id := range ids {
		vertices[i] = vertex{id: id}
	}

	g, err := graph.WrapFromVerticesAndEdges(
		func() graph.Backend[int, vertex, weightedEdge] { return adjlist.New[int, vertex, weightedEdge](dir) },
		vertices,
		edges,
	)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := dispatch(cfg, g)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s (%s)\n", cfg.Algorithm, result, elapsed)
	return nil
}

func dispatch(cfg *config.Run, g *graph.Graph[int, vertex, weightedEdge]) (string, error) {
	switch cfg.Algorithm {
	case config.AlgorithmBFS, config.AlgorithmDFS:
		kind := traverse.KindBFS
		if cfg.Algorithm == config.AlgorithmDFS {
			kind = traverse.KindDFS
		}
		it, err := traverse.Iter[int, vertex, weightedEdge](g.Backend(), cfg.Source, kind)
		if err != nil {
			return "", err
		}
		visited := 0
		for it.Next() {
			visited++
		}
		return fmt.Sprintf("visited %d vertices", visited), nil

	case config.AlgorithmComponents:
		n := traverse.CountConnectedComponents[int, vertex, weightedEdge](g.Backend(), traverse.KindBFS)
		return fmt.Sprintf("%d connected components", n), nil

	case config.AlgorithmMSTPrim, config.AlgorithmMSTKruskal:
		out := adjlist.New[int, vertex, weightedEdge](graph.Undirected{})
		var mstErr error
		if cfg.Algorithm == config.AlgorithmMSTPrim {
			start := cfg.Source
			mstErr = mst.Prim[int, vertex, weightedEdge, int](g.Backend(), out, &start)
		} else {
			mstErr = mst.Kruskal[int, vertex, weightedEdge, int](g.Backend(), out)
		}
		if mstErr != nil {
			return "", mstErr
		}
		total := 0
		for _, e := range out.Edges() {
			total += e.Edge.Weight()
		}
		return fmt.Sprintf("spanning tree weight %d", total), nil

	case config.AlgorithmDijkstra, config.AlgorithmBellmanFord:
		var paths *route.ShortestPaths[int, int]
		var spErr error
		if cfg.Algorithm == config.AlgorithmDijkstra {
			paths, spErr = shortestpath.Dijkstra[int, vertex, weightedEdge, int](g.Backend(), cfg.Source, cfg.Sink)
		} else {
			paths, spErr = shortestpath.BellmanFord[int, vertex, weightedEdge, int](g.Backend(), cfg.Source)
		}
		if spErr != nil {
			return "", spErr
		}
		if cfg.Sink == nil {
			return fmt.Sprintf("costs computed from vertex %d", cfg.Source), nil
		}
		cost, ok := paths.Cost(*cfg.Sink)
		if !ok {
			return fmt.Sprintf("vertex %d unreachable from %d", *cfg.Sink, cfg.Source), nil
		}
		return fmt.Sprintf("shortest cost %d -> %d: %d", cfg.Source, *cfg.Sink, cost), nil

	case config.AlgorithmMaxFlow:
		residual := adjlist.New[int, vertex, flow.ResidualEdge[int]](graph.Directed{})
		maxFlow, flowErr := flow.EdmondsKarp[int, vertex, weightedEdge, int](g, cfg.Source, *cfg.Sink, residual, capOf, flowOf)
		if flowErr != nil {
			return "", flowErr
		}
		return fmt.Sprintf("max flow %d -> %d: %d", cfg.Source, *cfg.Sink, maxFlow), nil

	case config.AlgorithmTSPBruteForce, config.AlgorithmTSPBranchAndBound,
		config.AlgorithmTSPNearestNeighbor, config.AlgorithmTSPDoubleTree:
		path, tspErr := solveTSP(cfg, g.Backend())
		if tspErr != nil {
			return "", tspErr
		}
		return fmt.Sprintf("tour cost %d over %d vertices", route.TotalCost[int, weightedEdge, int](path), path.Len()), nil

	default:
		return "", fmt.Errorf("unhandled algorithm %q", cfg.Algorithm)
	}
}

func solveTSP(cfg *config.Run, b graph.Backend[int, vertex, weightedEdge]) (*route.Path[int, weightedEdge], error) {
	opt := tsp.WithStart(cfg.Source)
	switch cfg.Algorithm {
	case config.AlgorithmTSPBruteForce:
		return tsp.BruteForce[int, vertex, weightedEdge, int](b, opt)
	case config.AlgorithmTSPBranchAndBound:
		return tsp.BranchAndBound[int, vertex, weightedEdge, int](b, opt)
	case config.AlgorithmTSPNearestNeighbor:
		return tsp.NearestNeighbor[int, vertex, weightedEdge, int](b, opt)
	default:
		return tsp.DoubleTree[int, vertex, weightedEdge, int](b, opt)
	}
}
