package algo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codegraph/csrengine/algo"
	"github.com/codegraph/csrengine/csr"
)

func sumScores(scores []float64) float64 {
	var total float64
	for _, s := range scores {
		total += s
	}
	return total
}

func TestPageRank_EmptyGraph(t *testing.T) {
	s := csr.New()
	res, err := algo.PageRank(s, algo.DefaultPageRankOptions())
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Nil(t, res.Scores)
}

func TestPageRank_ScoresSumToOne(t *testing.T) {
	// 0->1, 1->2, 2->0: symmetric cycle, all scores should converge equal.
	s, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
		{Source: 2, Target: 0, Weight: 1},
	})
	require.NoError(t, err)

	res, err := algo.PageRank(s, algo.DefaultPageRankOptions())
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.InDelta(t, 1.0, sumScores(res.Scores), 1e-6)
	for _, score := range res.Scores {
		require.InDelta(t, 1.0/3.0, score, 1e-4)
	}
}

func TestPageRank_DanglingNodeRedistributesMass(t *testing.T) {
	// 0->1, 1 is dangling (no outgoing edges).
	s, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
	})
	require.NoError(t, err)

	res, err := algo.PageRank(s, algo.DefaultPageRankOptions())
	require.NoError(t, err)
	require.InDelta(t, 1.0, sumScores(res.Scores), 1e-6)
}

func TestPageRank_HubAccumulatesHigherScore(t *testing.T) {
	// star graph: 1,2,3 all point at 0.
	s, err := csr.FromEdgeList([]csr.Edge{
		{Source: 1, Target: 0, Weight: 1},
		{Source: 2, Target: 0, Weight: 1},
		{Source: 3, Target: 0, Weight: 1},
	})
	require.NoError(t, err)

	res, err := algo.PageRank(s, algo.DefaultPageRankOptions())
	require.NoError(t, err)
	for v := 1; v < 4; v++ {
		require.Greater(t, res.Scores[0], res.Scores[v])
	}
}

func TestPageRankOptions_ValidateClampsOutOfRange(t *testing.T) {
	opts := algo.PageRankOptions{
		MaxIterations: -1,
		Tolerance:     -5,
		Damping:       1.5,
	}
	opts.Validate()
	require.Equal(t, algo.DefaultPageRankMaxIterations, opts.MaxIterations)
	require.Equal(t, algo.DefaultPageRankTolerance, opts.Tolerance)
	require.Equal(t, algo.DefaultPageRankDamping, opts.Damping)
}

func TestPageRank_NonConvergedRunReportsMaxDiff(t *testing.T) {
	// star graph: the uniform initial guess is far from stationary, so a
	// single iteration should neither converge nor leave MaxDiff at zero.
	s, err := csr.FromEdgeList([]csr.Edge{
		{Source: 1, Target: 0, Weight: 1},
		{Source: 2, Target: 0, Weight: 1},
		{Source: 3, Target: 0, Weight: 1},
	})
	require.NoError(t, err)

	opts := algo.DefaultPageRankOptions()
	opts.MaxIterations = 1
	res, err := algo.PageRank(s, opts)
	require.NoError(t, err)
	require.False(t, res.Converged)
	require.Greater(t, res.MaxDiff, 0.0)
}

func TestPageRank_NoNaNOrInf(t *testing.T) {
	s, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 0, Weight: 1},
	})
	require.NoError(t, err)

	res, err := algo.PageRank(s, algo.DefaultPageRankOptions())
	require.NoError(t, err)
	for _, score := range res.Scores {
		require.False(t, math.IsNaN(score))
		require.False(t, math.IsInf(score, 0))
	}
}
