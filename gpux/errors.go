package gpux

import "errors"

// The four GPU failure modes. None triggers an automatic CPU fallback
// inside this package — the caller decides whether to retry or fall
// back, per the propagation policy shared with package algo.
var (
	ErrGpuUnavailable         = errors.New("gpux: no compute device available")
	ErrShaderCompileFailed    = errors.New("gpux: shader compile failed")
	ErrBufferAllocationFailed = errors.New("gpux: buffer allocation failed")
	ErrDeviceLost             = errors.New("gpux: device lost")
)
