package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Algorithm names accepted by cmd/graphbench's dispatch table.
const (
	AlgorithmBFS                = "bfs"
	AlgorithmDFS                = "dfs"
	AlgorithmComponents         = "components"
	AlgorithmMSTPrim            = "mst-prim"
	AlgorithmMSTKruskal         = "mst-kruskal"
	AlgorithmDijkstra           = "dijkstra"
	AlgorithmBellmanFord        = "bellman-ford"
	AlgorithmMaxFlow            = "max-flow"
	AlgorithmTSPBruteForce      = "tsp-brute-force"
	AlgorithmTSPBranchAndBound  = "tsp-branch-and-bound"
	AlgorithmTSPNearestNeighbor = "tsp-nearest-neighbor"
	AlgorithmTSPDoubleTree      = "tsp-double-tree"
)

var knownAlgorithms = map[string]bool{
	AlgorithmBFS:               true,
	AlgorithmDFS:                true,
	AlgorithmComponents:         true,
	AlgorithmMSTPrim:            true,
	AlgorithmMSTKruskal:         true,
	AlgorithmDijkstra:           true,
	AlgorithmBellmanFord:        true,
	AlgorithmMaxFlow:            true,
	AlgorithmTSPBruteForce:      true,
	AlgorithmTSPBranchAndBound:  true,
	AlgorithmTSPNearestNeighbor: true,
	AlgorithmTSPDoubleTree:      true,
}

// Run is one benchmark invocation: which algorithm to run, over which
// corpus, plus the handful of parameters a subset of algorithms need.
// Source/Sink are 0-indexed vertex ids into the loaded corpus; Sink is
// required for max-flow, optional for dijkstra and bellman-ford (the target
// whose cost is reported), and ignored by every other algorithm.
type Run struct {
	Algorithm  string `yaml:"algorithm"`
	CorpusPath string `yaml:"corpus_path"`
	Directed   bool   `yaml:"directed"`
	Source     int    `yaml:"source"`
	Sink       *int   `yaml:"sink"`
}

// Load reads and parses path as YAML into a *Run. Does not call Validate;
// callers should do so explicitly once the Run is loaded.
func Load(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var r Run
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &r, nil
}

// Validate checks that Algorithm names a known algorithm, CorpusPath is
// non-empty, and Sink is set whenever Algorithm is max-flow.
func (r *Run) Validate() error {
	if r.CorpusPath == "" {
		return &ValidationError{Field: "corpus_path", Msg: "must not be empty"}
	}
	if !knownAlgorithms[r.Algorithm] {
		return &ValidationError{Field: "algorithm", Msg: fmt.Sprintf("unknown algorithm %q", r.Algorithm)}
	}
	if r.Algorithm == AlgorithmMaxFlow && r.Sink == nil {
		return &ValidationError{Field: "sink", Msg: "required for " + AlgorithmMaxFlow}
	}
	return nil
}
