package csr

import "errors"

// Sentinel errors for the csr package.
//
// Callers MUST use errors.Is to branch on these; messages are not part of
// the contract and may change. Sentinels are never wrapped with formatted
// text at their definition site — call sites attach context with %w.
var (
	// ErrNodeOutOfRange is returned when a lookup references a node ID >= N.
	ErrNodeOutOfRange = errors.New("csr: node out of range")

	// ErrCapacityExceeded is returned when N or E would exceed the uint32
	// ID space (2^32).
	ErrCapacityExceeded = errors.New("csr: capacity exceeded")
)
