package algo

import (
	"fmt"

	"github.com/codegraph/csrengine/csr"
)

// BFSResult holds the outcome of a level-synchronous breadth-first
// traversal: Dist[v] is the number of edges on the shortest path from
// the source to v, or Infinite if v is unreachable (or reachable only
// beyond MaxDepth). Order records the nodes in the order they were
// first discovered.
type BFSResult struct {
	Dist  []uint32
	Order []csr.NodeID
}

// neighborFunc fetches one node's neighbors in a chosen direction
// (Outgoing for BFS, Incoming for FindCallers).
type neighborFunc func(v csr.NodeID) ([]csr.NodeID, error)

// BFS runs a level-synchronous breadth-first search over g's forward
// adjacency starting at source. maxDepth, if > 0, stops expanding
// beyond that many hops; 0 means unlimited.
//
// Frontier expansion follows CSR order (Outgoing's insertion order), so
// Order is fully reproducible for a given graph; Dist does not depend on
// that order since it is the unique shortest-hop-count to each node.
//
// Complexity: O(N + E) time (each node and edge visited at most once),
// O(N) memory for Dist and the frontier queues.
func BFS(g csr.View, source csr.NodeID, maxDepth uint32, opts ...Option) (*BFSResult, error) {
	return levelSynchronousBFS(g, source, maxDepth, g.Outgoing, applyOptions(opts))
}

// FindCallers runs a level-synchronous breadth-first search over g's
// reverse adjacency starting at source, returning the set of ancestors
// (direct and transitive callers) reachable within maxDepth hops.
//
// It is otherwise identical to BFS; the only difference is which CSR
// direction is walked.
func FindCallers(g csr.View, source csr.NodeID, maxDepth uint32, opts ...Option) (*BFSResult, error) {
	return levelSynchronousBFS(g, source, maxDepth, g.Incoming, applyOptions(opts))
}

func levelSynchronousBFS(g csr.View, source csr.NodeID, maxDepth uint32, neighbors neighborFunc, o options) (*BFSResult, error) {
	n := g.NodeCount()
	if source >= n {
		return nil, fmt.Errorf("algo: BFS source %d: %w", source, csr.ErrNodeOutOfRange)
	}

	dist := make([]uint32, n)
	for i := range dist {
		dist[i] = Infinite
	}
	dist[source] = 0

	order := make([]csr.NodeID, 0, n)
	order = append(order, source)

	frontier := []csr.NodeID{source}
	level := uint32(0)
	for len(frontier) > 0 {
		if maxDepth > 0 && level >= maxDepth {
			break
		}
		var next []csr.NodeID
		for _, u := range frontier {
			nbrs, err := neighbors(u)
			if err != nil {
				return nil, fmt.Errorf("algo: BFS neighbors(%d): %w", u, err)
			}
			for _, v := range nbrs {
				if dist[v] == Infinite {
					dist[v] = level + 1
					order = append(order, v)
					next = append(next, v)
				}
			}
		}
		o.logger.Debug().Uint32("level", level).Int("frontier_size", len(next)).Msg("bfs level complete")
		frontier = next
		level++
	}

	return &BFSResult{Dist: dist, Order: order}, nil
}
