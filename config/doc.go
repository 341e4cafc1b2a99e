// Package config holds the YAML-backed run configuration for
// cmd/graphbench: which algorithm to run, which corpus to load it against,
// and the few parameters (source, sink, directedness) a given algorithm
// needs beyond the graph itself.
package config
