package csr

import "fmt"

// AddEdge inserts a single edge (u, v, w) into the Store.
//
// If max(u,v) >= N, both offset arrays grow to size max(u,v)+2 first
// (new nodes start with zero edges in both directions). The edge is then
// spliced into u's forward block and v's reverse block by shifting the
// tail of colIndices/edgeWeights (resp. the reverse arrays) one slot to
// the right and bumping every offset after the insertion point by one.
//
// This is O(E) worst case, by design — batch construction via
// FromEdgeList or Builder is the performant path; AddEdge exists for
// incremental updates where O(E) per edge is acceptable.
func (s *Store) AddEdge(u, v NodeID, w float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := u
	if v > maxID {
		maxID = v
	}
	if uint64(maxID)+1 > maxCapacity {
		return fmt.Errorf("csr: AddEdge node id %d: %w", maxID, ErrCapacityExceeded)
	}
	if uint64(len(s.colIndices))+1 > maxCapacity {
		return fmt.Errorf("csr: AddEdge edge count: %w", ErrCapacityExceeded)
	}

	if maxID >= s.n {
		s.growTo(maxID + 1)
	}

	insertForward(&s.rowOffsets, &s.colIndices, &s.edgeWeights, u, v, w)
	insertForward(&s.revRowOffsets, &s.revColIndices, &s.revEdgeWeights, v, u, w)

	return nil
}

// growTo extends both offset arrays so the Store has newN nodes, with
// the new slots replicating the final cumulative edge count (the new
// nodes start with zero out/in edges).
func (s *Store) growTo(newN uint32) {
	grow := func(offsets []uint32, n uint32) []uint32 {
		last := offsets[len(offsets)-1]
		grown := make([]uint32, newN+1)
		copy(grown, offsets)
		for i := uint32(len(offsets)); i <= newN; i++ {
			grown[i] = last
		}
		return grown
	}
	s.rowOffsets = grow(s.rowOffsets, s.n)
	s.revRowOffsets = grow(s.revRowOffsets, s.n)
	s.n = newN
}

// insertForward splices (target, weight) into source's block of offsets/
// cols/weights, shifting the tail right by one slot and incrementing
// every offset after source.
func insertForward(offsets *[]uint32, cols *[]uint32, weights *[]float32, source, target NodeID, weight float32) {
	pos := (*offsets)[source+1]

	*cols = append(*cols, 0)
	copy((*cols)[pos+1:], (*cols)[pos:len(*cols)-1])
	(*cols)[pos] = target

	*weights = append(*weights, 0)
	copy((*weights)[pos+1:], (*weights)[pos:len(*weights)-1])
	(*weights)[pos] = weight

	for i := source + 1; i < uint32(len(*offsets)); i++ {
		(*offsets)[i]++
	}
}

// SetLabel assigns a human-readable name to node v. v need not currently
// have any edges, but must be within [0, N).
func (s *Store) SetLabel(v NodeID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v >= s.n {
		return fmt.Errorf("csr: SetLabel(%d): %w", v, ErrNodeOutOfRange)
	}
	s.labels[v] = name
	return nil
}

// Label returns the name assigned to v, if any.
func (s *Store) Label(v NodeID) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name, ok := s.labels[v]
	return name, ok
}

// NodeCount returns N, the size of the dense node-ID space.
func (s *Store) NodeCount() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.n
}

// EdgeCount returns E, the number of forward (and, symmetrically,
// reverse) edges currently stored.
func (s *Store) EdgeCount() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return uint32(len(s.colIndices))
}
