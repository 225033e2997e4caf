package csr

// View is a read-only handle onto a Store: it exposes the accessor
// methods but not AddEdge or SetLabel, so a caller that only needs to
// query a graph — the GPU uploader and the equivalence harness are the
// two intended users — cannot accidentally mutate the Store it was
// handed.
type View interface {
	NodeCount() uint32
	EdgeCount() uint32
	Outgoing(v NodeID) ([]NodeID, error)
	Incoming(v NodeID) ([]NodeID, error)
	OutgoingWeights(v NodeID) ([]float32, error)
	IncomingWeights(v NodeID) ([]float32, error)
	OutDegree(v NodeID) (uint32, error)
	InDegree(v NodeID) (uint32, error)
	Label(v NodeID) (string, bool)
	RowOffsets() []uint32
	ColIndices() []uint32
	EdgeWeights() []float32
	RevRowOffsets() []uint32
	RevColIndices() []uint32
	RevEdgeWeights() []float32
	Stats() Stats
}

// AsView narrows s to its read-only View. *Store already implements
// every method of View; this is documentation-by-type, not a wrapper.
func AsView(s *Store) View { return s }
