// Package equivalence enforces the CPU/GPU backend contract: for any
// graph, algo.BFS and gpux's BFS kernel must agree bit-for-bit on
// every distance, and algo.PageRank and gpux's PageRank kernel must
// agree within 1e-4 max absolute error per score, given the same
// iteration count and damping.
//
// This is the harness the spec requires rather than a reusable
// library: its exported functions run both backends over an identical
// input and report where (if anywhere) they diverge, for use from both
// table-driven and property-based tests.
package equivalence
