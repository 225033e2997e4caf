package gpux

import "github.com/codegraph/csrengine/csr"

// WorkgroupSize is the fixed workgroup width both required shaders
// dispatch at. The spec requires at least 256; there is no reason to
// exceed the minimum since CSR row slices are rarely wide enough to
// benefit from a larger group.
const WorkgroupSize = 256

// DeviceInfo describes the acquired compute device, for diagnostics.
type DeviceInfo struct {
	Name      string
	Backend   string
	Available bool
}

// GraphBuffers holds a graph's one-shot upload: the three read-only
// storage buffers required by both kernels (row_offsets, col_indices,
// out_degrees), plus the reverse-CSR buffers PageRank's preferred
// strategy (i) needs to discover incoming edges in O(E) per iteration.
// Re-running algorithms against the same GraphBuffers reuses the
// resident upload rather than re-copying it.
type GraphBuffers struct {
	N             uint32
	RowOffsets    []uint32
	ColIndices    []uint32
	EdgeWeights   []float32
	OutDegrees    []uint32
	RevRowOffsets []uint32
	RevColIndices []uint32
}

// BFSReadback is the host-side result of a GPU BFS dispatch loop.
type BFSReadback struct {
	Distances    []uint32
	VisitedCount int
	Levels       int
}

// PageRankReadback is the host-side result of a GPU PageRank dispatch
// loop.
type PageRankReadback struct {
	Scores     []float64
	Iterations int
	Converged  bool
}

// UploadOptions controls which optional buffers accompany a graph
// upload. Edge weights are only needed by kernels that use them; BFS
// does not.
type UploadOptions struct {
	IncludeWeights bool
	IncludeReverse bool
}

// Device is the compute-capable device abstraction both the
// CPU-emulated software device and the real-hardware device (gated
// behind the "gpu" build tag) implement. Device acquisition is
// idempotent: requesting one twice returns the same handle.
type Device interface {
	Info() DeviceInfo
	Upload(g csr.View, opts UploadOptions) (*GraphBuffers, error)
	DispatchBFS(buf *GraphBuffers, source csr.NodeID, maxDepth uint32) (*BFSReadback, error)
	DispatchPageRank(buf *GraphBuffers, opts PageRankOptions) (*PageRankReadback, error)
}

// PageRankOptions mirrors algo.PageRankOptions; gpux does not import
// algo, so it stays importable without the CPU algorithm suite, and
// the equivalence harness is responsible for keeping the two in sync.
type PageRankOptions struct {
	MaxIterations int
	Tolerance     float64
	Damping       float64
}
