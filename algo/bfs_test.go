package algo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codegraph/csrengine/algo"
	"github.com/codegraph/csrengine/csr"
)

func TestBFS_ThreeNodeChain(t *testing.T) {
	// 0->1, 1->2
	s, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
	})
	require.NoError(t, err)

	res, err := algo.BFS(s, 0, 0)
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 1, 2}, res.Dist)
	require.Equal(t, []csr.NodeID{0, 1, 2}, res.Order)
}

func TestBFS_Diamond(t *testing.T) {
	// 0->1, 0->2, 1->3, 2->3
	s, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 0, Target: 2, Weight: 1},
		{Source: 1, Target: 3, Weight: 1},
		{Source: 2, Target: 3, Weight: 1},
	})
	require.NoError(t, err)

	res, err := algo.BFS(s, 0, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(0), res.Dist[0])
	require.Equal(t, uint32(1), res.Dist[1])
	require.Equal(t, uint32(1), res.Dist[2])
	require.Equal(t, uint32(2), res.Dist[3])
}

func TestBFS_MaxDepthCap(t *testing.T) {
	s, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
		{Source: 2, Target: 3, Weight: 1},
	})
	require.NoError(t, err)

	res, err := algo.BFS(s, 0, 1)
	require.NoError(t, err)
	require.Equal(t, uint32(0), res.Dist[0])
	require.Equal(t, uint32(1), res.Dist[1])
	require.Equal(t, algo.Infinite, res.Dist[2])
	require.Equal(t, algo.Infinite, res.Dist[3])
}

func TestBFS_UnreachableNode(t *testing.T) {
	// 0->1; node 2 isolated
	s, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 2, Target: 2, Weight: 1},
	})
	require.NoError(t, err)

	res, err := algo.BFS(s, 0, 0)
	require.NoError(t, err)
	require.Equal(t, algo.Infinite, res.Dist[2])
}

func TestBFS_SourceOutOfRange(t *testing.T) {
	s := csr.New()
	_, err := algo.BFS(s, 0, 0)
	require.ErrorIs(t, err, csr.ErrNodeOutOfRange)
}

func TestFindCallers_ReversesDirection(t *testing.T) {
	// 0->1, 2->1: both 0 and 2 call into 1
	s, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 2, Target: 1, Weight: 1},
	})
	require.NoError(t, err)

	res, err := algo.FindCallers(s, 1, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(0), res.Dist[1])
	require.Equal(t, uint32(1), res.Dist[0])
	require.Equal(t, uint32(1), res.Dist[2])
}
