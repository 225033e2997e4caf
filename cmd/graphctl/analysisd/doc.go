// Package analysisd is an example long-running query server built on
// top of the engine: repeated identical analytics queries (same graph,
// same algorithm, same parameters) are coalesced with
// golang.org/x/sync/singleflight so concurrent callers share one
// computation, and results are kept warm in an LRU cache keyed the
// same way. It is demonstrative wiring around the engine's core
// packages, not part of the engine itself.
package analysisd
