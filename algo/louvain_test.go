package algo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codegraph/csrengine/algo"
	"github.com/codegraph/csrengine/csr"
)

func TestLouvain_EmptyGraph(t *testing.T) {
	s := csr.New()
	res, err := algo.Louvain(s, algo.DefaultLouvainOptions())
	require.NoError(t, err)
	require.Empty(t, res.Community)
}

func TestLouvain_TwoDisconnectedTriangles(t *testing.T) {
	// {0,1,2} form a triangle, {3,4,5} form a triangle, no edges between
	// the two groups: Louvain should place each group in its own
	// community.
	s, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
		{Source: 2, Target: 0, Weight: 1},
		{Source: 3, Target: 4, Weight: 1},
		{Source: 4, Target: 5, Weight: 1},
		{Source: 5, Target: 3, Weight: 1},
	})
	require.NoError(t, err)

	res, err := algo.Louvain(s, algo.DefaultLouvainOptions())
	require.NoError(t, err)
	require.Equal(t, res.Community[0], res.Community[1])
	require.Equal(t, res.Community[1], res.Community[2])
	require.Equal(t, res.Community[3], res.Community[4])
	require.Equal(t, res.Community[4], res.Community[5])
	require.NotEqual(t, res.Community[0], res.Community[3])
	require.Greater(t, res.Modularity, 0.0)
}

func TestLouvain_SingleNodeSelfLoopOnly(t *testing.T) {
	s, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 0, Weight: 0},
	})
	require.NoError(t, err)
	// zero-weight self loop only: totalWeight treated as unweighted (1.0)
	res, err := algo.Louvain(s, algo.DefaultLouvainOptions())
	require.NoError(t, err)
	require.Len(t, res.Community, 1)
}

func TestLouvain_CommunityIDsAreDense(t *testing.T) {
	s, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 2, Target: 3, Weight: 1},
	})
	require.NoError(t, err)

	res, err := algo.Louvain(s, algo.DefaultLouvainOptions())
	require.NoError(t, err)

	seen := make(map[uint32]bool)
	for _, c := range res.Community {
		seen[c] = true
	}
	for i := 0; i < len(seen); i++ {
		require.Contains(t, seen, uint32(i))
	}
}
