//go:build !gpu

package gpux

// acquireDevice links the CPU-emulated software device. This is the
// build linked by default: a CPU-only binary carries no graphics
// dependency at all.
func acquireDevice() (Device, error) {
	return NewSoftwareDevice(), nil
}
