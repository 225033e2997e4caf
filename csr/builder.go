package csr

// Builder buffers edges and constructs a Store in one FromEdgeList pass
// at Freeze time, rather than paying the O(E) cost of AddEdge for every
// edge. This is the incremental-construction escape hatch the CSR
// design calls for: callers that need to assemble a graph edge-by-edge
// (e.g. while walking an AST) should accumulate into a Builder and
// freeze once, instead of calling Store.AddEdge in a loop.
type Builder struct {
	edges []Edge
}

// NewBuilder returns an empty Builder. sizeHint, if > 0, preallocates
// the edge buffer.
func NewBuilder(sizeHint int) *Builder {
	var buf []Edge
	if sizeHint > 0 {
		buf = make([]Edge, 0, sizeHint)
	}
	return &Builder{edges: buf}
}

// AddEdge appends (u, v, w) to the buffer. O(1) amortized; no
// validation is performed until Freeze.
func (b *Builder) AddEdge(u, v NodeID, w float32) {
	b.edges = append(b.edges, Edge{Source: u, Target: v, Weight: w})
}

// Len returns the number of edges buffered so far.
func (b *Builder) Len() int { return len(b.edges) }

// Freeze builds a Store from every edge buffered so far via
// FromEdgeList. The Builder remains usable afterward (Freeze does not
// clear the buffer), so repeated snapshots of a growing edge set are
// cheap to take at the cost of re-running the O(N+E) construction each
// time.
func (b *Builder) Freeze() (*Store, error) {
	return FromEdgeList(b.edges)
}
