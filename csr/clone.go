package csr

// Clone returns a deep copy of s: every array is duplicated, so
// mutating the clone (or the original) via AddEdge/SetLabel never
// affects the other. Useful before handing a Store to a GPU upload or an
// algorithm that wants to snapshot a graph that is still being built.
func (s *Store) Clone() *Store {
	s.mu.RLock()
	defer s.mu.RUnlock()

	labels := make(map[uint32]string, len(s.labels))
	for k, v := range s.labels {
		labels[k] = v
	}

	return &Store{
		n:              s.n,
		rowOffsets:     append([]uint32(nil), s.rowOffsets...),
		colIndices:     append([]uint32(nil), s.colIndices...),
		edgeWeights:    append([]float32(nil), s.edgeWeights...),
		revRowOffsets:  append([]uint32(nil), s.revRowOffsets...),
		revColIndices:  append([]uint32(nil), s.revColIndices...),
		revEdgeWeights: append([]float32(nil), s.revEdgeWeights...),
		labels:         labels,
	}
}
