package algo

import "errors"

// ErrNumericOverflow is returned when PageRank's power iteration
// diverges to a non-finite value — a pathological graph or damping
// configuration rather than a programming error.
var ErrNumericOverflow = errors.New("algo: numeric overflow")

// Infinite is the sentinel BFS distance for an unreachable node (or one
// reached only beyond a requested depth cap).
const Infinite = ^uint32(0)
