// Package csr implements a bidirectional Compressed Sparse Row graph store
// for code-analysis workloads: call graphs, dependency graphs, and AST
// reference graphs with up to tens of millions of edges.
//
// What
//
//   - Stores a directed multigraph over a dense uint32 node-ID space as
//     forward and reverse CSR triples (row_offsets, col_indices, edge_weights).
//   - Builds the whole graph in one O(N+E) pass from an edge list (FromEdgeList),
//     or grows it one edge at a time (Store.AddEdge), which is O(E) per call and
//     documented as the slow path — see Builder for a buffered alternative.
//   - Offers O(1) neighbor-slice access in both directions (Outgoing/Incoming)
//     and O(1) degree queries, so CPU algorithms never walk a map to find an edge.
//
// Why
//
//   - Pointer-chasing adjacency structures thrash cache on graphs with tens of
//     millions of edges. CSR packs each node's neighbors contiguously, so a
//     traversal over one node's edges is a single cache-friendly slice scan.
//   - The same three-array layout mirrors directly onto GPU storage buffers
//     (see package gpux), so the CPU and GPU backends read identical data.
//
// Determinism
//
//	Within a single source's block, edges appear in insertion order — no
//	implicit sort is performed. FromEdgeList preserves the input edge order
//	per source; AddEdge appends to the end of its source's block.
//
// Complexity (N = node_count, E = edge_count)
//
//   - FromEdgeList: O(N + E) time, one allocation per array.
//   - AddEdge:      O(E) worst case (array shift); O(N) when growing N.
//   - Outgoing/Incoming/OutDegree/InDegree: O(1).
//
// See DESIGN.md for the grounding of this package's construction algorithm
// and error-handling style.
package csr
