package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-graphkit/graphkit/graph"
)

// EdgeBuilder constructs an edge payload from a record's parsed endpoint
// indices and any columns beyond the first two.
type EdgeBuilder[E any] func(from, to int, cols []string) (E, error)

// LoadFile opens path and delegates to Load, wrapping any open/read failure
// from the os/bufio layer as-is (not re-typed).
func LoadFile[E any](path string, buildEdge EdgeBuilder[E]) ([]int, []graph.Edge3[int, E], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Load(f, buildEdge)
}

// Load parses r as the corpus text format and returns vertex ids 0..N-1
// alongside the parsed edges, in file order. A blank line before the
// header, an unparseable or non-positive vertex count, or an edge record
// referencing an id outside [0,N) fails with *InvalidFormatError or
// *ParseError; trailing blank lines after the header are skipped.
func Load[E any](r io.Reader, buildEdge EdgeBuilder[E]) ([]int, []graph.Edge3[int, E], error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, nil, err
		}
		return nil, nil, &InvalidFormatError{Msg: "file must contain at least one line with the vertex count"}
	}
	header := strings.TrimSpace(scanner.Text())
	n, convErr := strconv.Atoi(header)
	if convErr != nil {
		return nil, nil, &ParseError{Msg: fmt.Sprintf("cannot parse vertex count %q", header)}
	}
	if n <= 0 {
		return nil, nil, &InvalidFormatError{Msg: "vertex count must be greater than 0"}
	}

	var edges []graph.Edge3[int, E]
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) < 2 {
			return nil, nil, &InvalidFormatError{Msg: fmt.Sprintf("edge record %q missing from/to columns", line)}
		}

		from, err := strconv.Atoi(cols[0])
		if err != nil {
			return nil, nil, &ParseError{Msg: fmt.Sprintf("cannot parse \"from\" vertex %q", cols[0])}
		}
		to, err := strconv.Atoi(cols[1])
		if err != nil {
			return nil, nil, &ParseError{Msg: fmt.Sprintf("cannot parse \"to\" vertex %q", cols[1])}
		}
		if from < 0 || from >= n || to < 0 || to >= n {
			return nil, nil, &InvalidFormatError{
				Msg: fmt.Sprintf("vertex id out of range: expected 0-%d, got %d or %d", n-1, from, to),
			}
		}

		edge, err := buildEdge(from, to, cols[2:])
		if err != nil {
			return nil, nil, err
		}
		edges = append(edges, graph.Edge3[int, E]{From: from, To: to, Edge: edge})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	vertices := make([]int, n)
	for i := range vertices {
		vertices[i] = i
	}
	return vertices, edges, nil
}
