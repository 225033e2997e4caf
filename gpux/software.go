package gpux

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/codegraph/csrengine/csr"
	"github.com/codegraph/csrengine/internal/obs"
)

// softwareDevice emulates the WebGPU-style kernels on the CPU: each
// workgroup of WorkgroupSize threads becomes one goroutine, and the
// atomic storage-buffer operations the kernels require (atomicMin,
// atomicStore, atomicLoad) become sync/atomic calls over []uint32.
// This is the only Device compiled into a CPU-only build.
type softwareDevice struct {
	logger zerolog.Logger
}

// NewSoftwareDevice returns the default, always-available Device. It
// never fails: the CPU emulation needs no graphics driver, no adapter
// negotiation, nothing that can be "unavailable". Its logger is
// obs.Default() (zerolog.Nop()) tagged with component "gpux";
// NewSoftwareDevice takes no logger, so its Debug lines are discarded.
func NewSoftwareDevice() Device {
	return &softwareDevice{logger: obs.Component(obs.Default(), "gpux")}
}

func (d *softwareDevice) Info() DeviceInfo {
	return DeviceInfo{Name: "software", Backend: "cpu-emulated", Available: true}
}

// Upload copies the graph's CSR slices into a GraphBuffers value. There
// is no real device memory here, so this is a plain slice copy rather
// than a staging-buffer transfer, but it has the same one-shot
// semantics: the caller reuses the returned GraphBuffers across
// dispatches instead of re-uploading.
func (d *softwareDevice) Upload(g csr.View, opts UploadOptions) (*GraphBuffers, error) {
	n := g.NodeCount()
	buf := &GraphBuffers{
		N:          n,
		RowOffsets: append([]uint32(nil), g.RowOffsets()...),
		ColIndices: append([]uint32(nil), g.ColIndices()...),
		OutDegrees: make([]uint32, n),
	}
	for v := uint32(0); v < n; v++ {
		buf.OutDegrees[v] = buf.RowOffsets[v+1] - buf.RowOffsets[v]
	}
	if opts.IncludeWeights {
		buf.EdgeWeights = append([]float32(nil), g.EdgeWeights()...)
	}
	if opts.IncludeReverse {
		buf.RevRowOffsets = append([]uint32(nil), g.RevRowOffsets()...)
		buf.RevColIndices = append([]uint32(nil), g.RevColIndices()...)
	}
	return buf, nil
}

const distInfinite = math.MaxUint32

// DispatchBFS runs the level-synchronous BFS kernel. The host-side loop
// matches the spec's dispatch pseudocode exactly: reset `updated`,
// dispatch one goroutine per workgroup for the current level, wait for
// all of them, check `updated`, repeat until a level produces no
// change.
func (d *softwareDevice) DispatchBFS(buf *GraphBuffers, source csr.NodeID, maxDepth uint32) (*BFSReadback, error) {
	n := buf.N
	if n == 0 || source >= n {
		return &BFSReadback{Distances: nil}, nil
	}

	distances := make([]uint32, n)
	for i := range distances {
		distances[i] = distInfinite
	}
	distances[source] = 0

	level := uint32(0)
	for {
		if maxDepth > 0 && level >= maxDepth {
			break
		}
		var updated uint32

		numWorkgroups := (n + WorkgroupSize - 1) / WorkgroupSize
		var wg sync.WaitGroup
		wg.Add(int(numWorkgroups))
		for wgID := uint32(0); wgID < numWorkgroups; wgID++ {
			go func(wgID uint32) {
				defer wg.Done()
				start := wgID * WorkgroupSize
				end := start + WorkgroupSize
				if end > n {
					end = n
				}
				for node := start; node < end; node++ {
					bfsKernelThread(node, level, buf, distances, &updated)
				}
			}(wgID)
		}
		wg.Wait()

		changed := atomic.LoadUint32(&updated)
		d.logger.Debug().Uint32("level", level).Uint32("updated", changed).Msg("gpux bfs level complete")
		if changed == 0 {
			break
		}
		level++
	}

	visited := 0
	for _, dist := range distances {
		if dist != distInfinite {
			visited++
		}
	}
	return &BFSReadback{Distances: distances, VisitedCount: visited, Levels: int(level) + 1}, nil
}

// bfsKernelThread is the body of one BFS kernel thread (one node).
func bfsKernelThread(node, currentLevel uint32, buf *GraphBuffers, distances []uint32, updated *uint32) {
	if atomic.LoadUint32(&distances[node]) != currentLevel {
		return
	}
	start, end := buf.RowOffsets[node], buf.RowOffsets[node+1]
	for _, v := range buf.ColIndices[start:end] {
		newDist := currentLevel + 1
		for {
			old := atomic.LoadUint32(&distances[v])
			if old <= newDist {
				break
			}
			if atomic.CompareAndSwapUint32(&distances[v], old, newDist) {
				atomic.StoreUint32(updated, 1)
				break
			}
		}
	}
}

// DispatchPageRank runs the SpMV-style PageRank kernel. It follows
// strategy (i) from the spec: the reverse-CSR buffers must have been
// uploaded (opts.IncludeReverse=true at Upload time), so each node's
// incoming edges are read in O(in-degree) from its reverse-CSR row,
// O(N + E) per iteration, rather than by scanning all forward edges.
func (d *softwareDevice) DispatchPageRank(buf *GraphBuffers, opts PageRankOptions) (*PageRankReadback, error) {
	n := buf.N
	if n == 0 {
		return &PageRankReadback{Converged: true}, nil
	}
	if buf.RevRowOffsets == nil || buf.RevColIndices == nil {
		return nil, ErrBufferAllocationFailed
	}

	current := make([]float64, n)
	initial := 1.0 / float64(n)
	for v := range current {
		current[v] = initial
	}
	next := make([]float64, n)

	d_ := opts.Damping
	invN := 1.0 / float64(n)

	result := &PageRankReadback{}
	for iter := 0; iter < opts.MaxIterations; iter++ {
		// Host reads current_scores back to compute dangling_sum, as
		// the spec's correctness-first design mandates.
		var dangling float64
		for v := uint32(0); v < n; v++ {
			if buf.OutDegrees[v] == 0 {
				dangling += current[v]
			}
		}
		base := (1-d_)*invN + d_*dangling*invN

		numWorkgroups := (n + WorkgroupSize - 1) / WorkgroupSize
		var wg sync.WaitGroup
		wg.Add(int(numWorkgroups))
		for wgID := uint32(0); wgID < numWorkgroups; wgID++ {
			go func(wgID uint32) {
				defer wg.Done()
				start := wgID * WorkgroupSize
				end := start + WorkgroupSize
				if end > n {
					end = n
				}
				for v := start; v < end; v++ {
					pageRankKernelThread(v, base, d_, buf, current, next)
				}
			}(wgID)
		}
		wg.Wait()

		var delta float64
		for v := uint32(0); v < n; v++ {
			diff := next[v] - current[v]
			if diff < 0 {
				diff = -diff
			}
			delta += diff
		}
		current, next = next, current
		result.Iterations = iter + 1

		d.logger.Debug().Int("iteration", iter).Float64("delta", delta).Msg("gpux pagerank iteration complete")

		if delta < opts.Tolerance*float64(n) {
			result.Converged = true
			break
		}
	}

	result.Scores = current
	return result, nil
}

func pageRankKernelThread(v uint32, base, damping float64, buf *GraphBuffers, current, next []float64) {
	start, end := buf.RevRowOffsets[v], buf.RevRowOffsets[v+1]
	var contribution float64
	for _, u := range buf.RevColIndices[start:end] {
		contribution += current[u] / float64(buf.OutDegrees[u])
	}
	next[v] = base + damping*contribution
}
