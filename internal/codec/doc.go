// Package codec defines the record layout the engine hands to an
// external columnar persistence collaborator, per the external
// interfaces contract: an edges batch (source, target, weight columns
// in forward-CSR order) and a nodes batch (node_id, nullable name
// columns, present only for labeled nodes).
//
// Writer and Reader are the seams a real columnar codec (Parquet,
// Arrow IPC, or similar) implements; this package does not ship one.
// The only concrete implementation here, gobBuffer, is a round-trip
// test fixture built on encoding/gob — see DESIGN.md for why the
// production codec is left as an external collaborator rather than
// implemented against a specific format.
package codec
