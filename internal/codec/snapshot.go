package codec

import "github.com/codegraph/csrengine/csr"

// FromStore builds a Snapshot from a live Store: the edges batch walks
// forward CSR node by node (source-grouped, insertion order preserved
// within each source), and the nodes batch includes only labeled IDs.
func FromStore(s *csr.Store) Snapshot {
	n := s.NodeCount()
	snap := Snapshot{}

	for v := csr.NodeID(0); v < n; v++ {
		targets, _ := s.Outgoing(v)
		weights, _ := s.OutgoingWeights(v)
		for i, t := range targets {
			snap.Edges = append(snap.Edges, EdgeRecord{Source: v, Target: t, Weight: weights[i]})
		}
		if name, ok := s.Label(v); ok {
			snap.Nodes = append(snap.Nodes, NodeRecord{NodeID: v, Name: name})
		}
	}
	return snap
}

// ToStore reconstructs a Store from a Snapshot: the edges batch is
// passed to csr.FromEdgeList (which rebuilds both CSR directions), and
// the labels are replayed afterward.
func ToStore(snap Snapshot) (*csr.Store, error) {
	edges := make([]csr.Edge, len(snap.Edges))
	for i, r := range snap.Edges {
		edges[i] = csr.Edge{Source: r.Source, Target: r.Target, Weight: r.Weight}
	}
	s, err := csr.FromEdgeList(edges)
	if err != nil {
		return nil, err
	}
	for _, r := range snap.Nodes {
		if err := s.SetLabel(r.NodeID, r.Name); err != nil {
			return nil, err
		}
	}
	return s, nil
}
