// Package algo implements the CPU graph algorithm suite that operates
// directly on csr.Store slices: breadth-first traversal (forward and
// reverse), PageRank power iteration, Louvain community detection, and
// four anti-pattern matchers (God Class, Dead Code, Circular
// Dependency, Unstable Hub).
//
// Every algorithm reads csr.Store (or csr.View) slices in place — none
// copies the graph into an intermediate adjacency-list or map
// representation — so their asymptotic cost matches the complexity
// bounds documented on each function.
//
// Errors
//
// The only recoverable errors are csr.ErrNodeOutOfRange (an invalid
// source/start vertex) and ErrNumericOverflow (PageRank diverged to a
// non-finite value on a pathological graph). No algorithm retries or
// returns a partial result on error.
package algo
