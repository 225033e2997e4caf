package algo

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/codegraph/csrengine/csr"
	"github.com/codegraph/csrengine/internal/obs"
)

// Default PageRank tunables, applied both by DefaultPageRankOptions and
// by Validate when an override is out of range.
const (
	DefaultPageRankMaxIterations = 20
	DefaultPageRankTolerance     = 1e-6
	DefaultPageRankDamping       = 0.85
)

// PageRankOptions configures the power iteration. The zero value is not
// valid; use DefaultPageRankOptions and override individual fields.
type PageRankOptions struct {
	// MaxIterations caps the number of power-iteration sweeps.
	MaxIterations int
	// Tolerance is the L1-delta convergence threshold (scaled by N, per
	// the stopping rule δ < ε·N).
	Tolerance float64
	// Damping is the probability mass that follows an out-edge rather
	// than teleporting uniformly at random.
	Damping float64
	// Logger receives a Debug line per iteration reporting the L1
	// delta; defaults to zerolog.Nop() so CPU-only callers pay nothing
	// for it unless they opt in.
	Logger zerolog.Logger
}

// DefaultPageRankOptions returns the spec defaults: 20 iterations,
// 1e-6 tolerance, 0.85 damping, and a no-op logger.
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{
		MaxIterations: DefaultPageRankMaxIterations,
		Tolerance:     DefaultPageRankTolerance,
		Damping:       DefaultPageRankDamping,
		Logger:        obs.Default(),
	}
}

// Validate clamps out-of-range fields to their defaults in place, rather
// than erroring: a caller who sets Damping: 1.5 gets a usable PageRank
// call back, not a rejected one.
func (o *PageRankOptions) Validate() {
	if o.Damping < 0 || o.Damping > 1 {
		o.Damping = DefaultPageRankDamping
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultPageRankMaxIterations
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultPageRankTolerance
	}
}

// PageRankResult holds the converged (or iteration-exhausted) scores.
type PageRankResult struct {
	Scores     []float64
	Iterations int
	Converged  bool
	// MaxDiff is the largest single-node |pr_new-pr| seen on the final
	// iteration, reported for callers who want to inspect how close a
	// non-converged run got rather than just the pass/fail Converged bit.
	MaxDiff float64
}

// PageRank computes PageRank scores over g by power iteration, using
// reverse CSR to iterate each node's incoming edges — this is what
// keeps a single iteration O(N + E) instead of O(N·E): see
// DESIGN.md for why the inner loop is open-coded against reverse CSR
// rather than delegated to a general sparse-matrix package.
//
// Algorithm (matches the spec's step order exactly):
//  1. pr[v] = 1/N for all v.
//  2. Each iteration: dangling mass D = Σ pr[v] over out-degree-0 nodes;
//     base b = (1-d)/N + d·D/N; pr_new[v] = b + d·Σ_{u∈incoming(v)} pr[u]/outDegree(u);
//     δ = Σ|pr_new[v]-pr[v]|; stop if δ < ε·N.
//  3. Return pr.
func PageRank(g csr.View, opts PageRankOptions) (*PageRankResult, error) {
	opts.Validate()

	n := int(g.NodeCount())
	if n == 0 {
		return &PageRankResult{Scores: nil, Converged: true}, nil
	}

	outDeg := make([]float64, n)
	for v := 0; v < n; v++ {
		d, err := g.OutDegree(csr.NodeID(v))
		if err != nil {
			return nil, fmt.Errorf("algo: PageRank OutDegree(%d): %w", v, err)
		}
		outDeg[v] = float64(d)
	}

	pr := make([]float64, n)
	initial := 1.0 / float64(n)
	for v := range pr {
		pr[v] = initial
	}

	prNew := make([]float64, n)
	d := opts.Damping
	invN := 1.0 / float64(n)

	result := &PageRankResult{}
	for iter := 0; iter < opts.MaxIterations; iter++ {
		var dangling float64
		for v := 0; v < n; v++ {
			if outDeg[v] == 0 {
				dangling += pr[v]
			}
		}
		base := (1-d)*invN + d*dangling*invN

		for v := 0; v < n; v++ {
			in, err := g.Incoming(csr.NodeID(v))
			if err != nil {
				return nil, fmt.Errorf("algo: PageRank Incoming(%d): %w", v, err)
			}
			var contribution float64
			for _, u := range in {
				contribution += pr[u] / outDeg[u]
			}
			prNew[v] = base + d*contribution
			if math.IsNaN(prNew[v]) || math.IsInf(prNew[v], 0) {
				return nil, fmt.Errorf("algo: PageRank iteration %d node %d: %w", iter, v, ErrNumericOverflow)
			}
		}

		var delta, maxDiff float64
		for v := 0; v < n; v++ {
			diff := math.Abs(prNew[v] - pr[v])
			delta += diff
			if diff > maxDiff {
				maxDiff = diff
			}
		}
		pr, prNew = prNew, pr
		result.Iterations = iter + 1
		result.MaxDiff = maxDiff

		opts.Logger.Debug().Int("iteration", iter).Float64("delta", delta).Float64("max_diff", maxDiff).Msg("pagerank iteration complete")

		if delta < opts.Tolerance*float64(n) {
			result.Converged = true
			break
		}
	}

	result.Scores = pr
	return result, nil
}
