package gpux

import "sync"

var (
	defaultOnce   sync.Once
	defaultDevice Device
)

// Acquire returns the process-wide compute device, creating it on
// first call. Acquisition is idempotent and shared: every caller gets
// the same handle, matching the spec's shared-resource policy — there
// is no per-graph device, and no locking is needed on top because
// Device implementations do not mutate shared state outside of a
// single GraphBuffers binding.
//
// The default build links only the software device. Building with the
// "gpu" tag links device.NewRealDevice instead; see device_real.go.
func Acquire() (Device, error) {
	var err error
	defaultOnce.Do(func() {
		defaultDevice, err = acquireDevice()
	})
	return defaultDevice, err
}
