// Package gpux implements the GPU acceleration backend: a WebGPU-style
// abstraction (storage buffers, uniform buffers, atomic u32 operations,
// 256-wide workgroups, asynchronous buffer mapping) over which
// level-synchronous BFS and SpMV-style PageRank kernels run.
//
// The default Device, returned by NewSoftwareDevice, emulates these
// kernels on the CPU with one goroutine per 256-wide workgroup so that
// CPU-only builds carry no graphics dependency — the real compute
// device lives behind the "gpu" build tag in device_real.go and is
// never compiled into a default build.
//
// Every Device implementation must satisfy the CPU/GPU equivalence
// contract checked by package equivalence: bit-identical BFS distances,
// and PageRank scores within 1e-4 max absolute error of the CPU
// implementation in package algo.
package gpux
