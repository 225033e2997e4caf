//go:build gpu

package gpux

import (
	"context"

	"github.com/codegraph/csrengine/gpux/device"
)

// acquireDevice links the real WebGPU-backed device. Building with the
// "gpu" tag pulls in github.com/rajveermalviya/go-webgpu/wgpu via
// gpux/device; the default build never sees this dependency.
func acquireDevice() (Device, error) {
	return device.NewRealDevice(context.Background())
}
