package codec

// EdgeRecord is one row of the edges batch: source, target, weight, in
// forward-CSR order (source-grouped, original insertion order within
// each source).
type EdgeRecord struct {
	Source uint32
	Target uint32
	Weight float32
}

// NodeRecord is one row of the nodes batch. Only labeled nodes appear;
// a reader must treat any node ID missing from this batch as
// unlabeled.
type NodeRecord struct {
	NodeID uint32
	Name   string
}

// Snapshot is the full pair of record batches handed to a Writer, or
// produced by a Reader.
type Snapshot struct {
	Edges []EdgeRecord
	Nodes []NodeRecord
}

// Writer persists a Snapshot to the external columnar store.
type Writer interface {
	Write(s Snapshot) error
}

// Reader reconstructs a Snapshot from the external columnar store.
type Reader interface {
	Read() (Snapshot, error)
}
