package csr

import "fmt"

// Outgoing returns the destinations of v's outgoing edges, in insertion
// order. The returned slice aliases internal storage and must not be
// mutated by the caller; it is invalidated by any later AddEdge on this
// Store. Fails with ErrNodeOutOfRange if v >= N.
func (s *Store) Outgoing(v NodeID) ([]NodeID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v >= s.n {
		return nil, fmt.Errorf("csr: Outgoing(%d): %w", v, ErrNodeOutOfRange)
	}
	return s.colIndices[s.rowOffsets[v]:s.rowOffsets[v+1]], nil
}

// Incoming returns the sources of v's incoming edges, in the order they
// were scattered into the reverse store (insertion order for
// FromEdgeList; append order for AddEdge). Same aliasing and lifetime
// rules as Outgoing.
func (s *Store) Incoming(v NodeID) ([]NodeID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v >= s.n {
		return nil, fmt.Errorf("csr: Incoming(%d): %w", v, ErrNodeOutOfRange)
	}
	return s.revColIndices[s.revRowOffsets[v]:s.revRowOffsets[v+1]], nil
}

// OutgoingWeights returns the weights parallel to Outgoing(v).
func (s *Store) OutgoingWeights(v NodeID) ([]float32, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v >= s.n {
		return nil, fmt.Errorf("csr: OutgoingWeights(%d): %w", v, ErrNodeOutOfRange)
	}
	return s.edgeWeights[s.rowOffsets[v]:s.rowOffsets[v+1]], nil
}

// IncomingWeights returns the weights parallel to Incoming(v).
func (s *Store) IncomingWeights(v NodeID) ([]float32, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v >= s.n {
		return nil, fmt.Errorf("csr: IncomingWeights(%d): %w", v, ErrNodeOutOfRange)
	}
	return s.revEdgeWeights[s.revRowOffsets[v]:s.revRowOffsets[v+1]], nil
}

// OutDegree returns len(Outgoing(v)) in O(1).
func (s *Store) OutDegree(v NodeID) (uint32, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v >= s.n {
		return 0, fmt.Errorf("csr: OutDegree(%d): %w", v, ErrNodeOutOfRange)
	}
	return s.rowOffsets[v+1] - s.rowOffsets[v], nil
}

// InDegree returns len(Incoming(v)) in O(1).
func (s *Store) InDegree(v NodeID) (uint32, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v >= s.n {
		return 0, fmt.Errorf("csr: InDegree(%d): %w", v, ErrNodeOutOfRange)
	}
	return s.revRowOffsets[v+1] - s.revRowOffsets[v], nil
}

// RowOffsets, ColIndices, and EdgeWeights expose the raw forward CSR
// arrays read-only, for consumers that need bulk access rather than
// per-node slices — the GPU buffer uploader (package gpux) and the
// equivalence harness are the two intended callers. The returned slices
// alias internal storage; do not mutate them.
func (s *Store) RowOffsets() []uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rowOffsets
}

// ColIndices exposes the raw forward col_indices array read-only.
func (s *Store) ColIndices() []uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.colIndices
}

// EdgeWeights exposes the raw forward edge_weights array read-only.
func (s *Store) EdgeWeights() []float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.edgeWeights
}

// RevRowOffsets exposes the raw reverse row_offsets array read-only.
func (s *Store) RevRowOffsets() []uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revRowOffsets
}

// RevColIndices exposes the raw reverse col_indices array read-only.
func (s *Store) RevColIndices() []uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revColIndices
}

// RevEdgeWeights exposes the raw reverse edge_weights array read-only.
func (s *Store) RevEdgeWeights() []float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revEdgeWeights
}

// Stats computes an O(N) snapshot of the Store's shape — node/edge
// counts, max and average out-degree, and the number of dangling
// (out-degree 0) nodes. Intended for diagnostics and for sizing GPU
// uploads ahead of time, not for hot-path use.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		NodeCount: s.n,
		EdgeCount: uint32(len(s.colIndices)),
	}
	for v := uint32(0); v < s.n; v++ {
		d := s.rowOffsets[v+1] - s.rowOffsets[v]
		if d > st.MaxOutDegree {
			st.MaxOutDegree = d
		}
		if d == 0 {
			st.DanglingNodes++
		}
	}
	if s.n > 0 {
		st.AvgOutDegree = float64(len(s.colIndices)) / float64(s.n)
	}
	return st
}
