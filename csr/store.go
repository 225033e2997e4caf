package csr

import "fmt"

// FromEdgeList builds a Store from a batch of edges in one O(N+E) pass.
//
// N is computed as 1 + the maximum source or target ID seen (0 if edges
// is empty). Forward and reverse CSR are built together via a two-pass
// count-then-scatter: pass one tallies per-source and per-target degrees,
// an exclusive prefix sum turns those tallies into offsets, and pass two
// scatters each edge into its forward and reverse bucket using per-source
// (resp. per-target) cursors seeded at the bucket's offset. Because the
// cursor only ever advances, edges within one source's block land in
// their original relative order.
//
// Complexity: O(N + E) time, one allocation per resulting array.
func FromEdgeList(edges []Edge) (*Store, error) {
	n, err := nodeCountOf(edges)
	if err != nil {
		return nil, err
	}
	e := uint64(len(edges))
	if e > maxCapacity {
		return nil, fmt.Errorf("csr: %d edges: %w", e, ErrCapacityExceeded)
	}

	outDeg := make([]uint32, n)
	inDeg := make([]uint32, n)
	for _, ed := range edges {
		outDeg[ed.Source]++
		inDeg[ed.Target]++
	}

	rowOffsets := prefixSum(outDeg)
	revRowOffsets := prefixSum(inDeg)

	colIndices := make([]uint32, len(edges))
	edgeWeights := make([]float32, len(edges))
	revColIndices := make([]uint32, len(edges))
	revEdgeWeights := make([]float32, len(edges))

	fwdCursor := append([]uint32(nil), rowOffsets[:n]...)
	revCursor := append([]uint32(nil), revRowOffsets[:n]...)

	for _, ed := range edges {
		fi := fwdCursor[ed.Source]
		colIndices[fi] = ed.Target
		edgeWeights[fi] = ed.Weight
		fwdCursor[ed.Source]++

		ri := revCursor[ed.Target]
		revColIndices[ri] = ed.Source
		revEdgeWeights[ri] = ed.Weight
		revCursor[ed.Target]++
	}

	return &Store{
		n:              uint32(n),
		rowOffsets:     rowOffsets,
		colIndices:     colIndices,
		edgeWeights:    edgeWeights,
		revRowOffsets:  revRowOffsets,
		revColIndices:  revColIndices,
		revEdgeWeights: revEdgeWeights,
		labels:         make(map[uint32]string),
	}, nil
}

// nodeCountOf computes 1 + max(source, target) over all edges, or 0 for
// an empty slice, and rejects a count that would overflow the uint32 ID
// space.
func nodeCountOf(edges []Edge) (uint32, error) {
	var maxID uint32
	var any bool
	for _, ed := range edges {
		any = true
		if ed.Source > maxID {
			maxID = ed.Source
		}
		if ed.Target > maxID {
			maxID = ed.Target
		}
	}
	if !any {
		return 0, nil
	}
	if uint64(maxID)+1 > maxCapacity {
		return 0, fmt.Errorf("csr: node id %d: %w", maxID, ErrCapacityExceeded)
	}
	return maxID + 1, nil
}

// prefixSum returns the exclusive prefix sum of degrees as a slice of
// length len(degrees)+1, with offsets[0]=0 and offsets[len(degrees)]
// equal to the total.
func prefixSum(degrees []uint32) []uint32 {
	offsets := make([]uint32, len(degrees)+1)
	var sum uint32
	for i, d := range degrees {
		offsets[i] = sum
		sum += d
	}
	offsets[len(degrees)] = sum
	return offsets
}
