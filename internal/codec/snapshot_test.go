package codec_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codegraph/csrengine/csr"
	"github.com/codegraph/csrengine/internal/codec"
)

func TestRoundTrip_ThousandEdgeRandomGraph(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	edges := make([]csr.Edge, 1000)
	for i := range edges {
		edges[i] = csr.Edge{
			Source: uint32(rng.Intn(200)),
			Target: uint32(rng.Intn(200)),
			Weight: rng.Float32()*20 - 10,
		}
	}
	original, err := csr.FromEdgeList(edges)
	require.NoError(t, err)
	for v := csr.NodeID(0); v < original.NodeCount(); v += 7 {
		require.NoError(t, original.SetLabel(v, "node"))
	}

	fixture := codec.NewGobFixture()
	require.NoError(t, fixture.Write(codec.FromStore(original)))

	loadedSnap, err := fixture.Read()
	require.NoError(t, err)
	reloaded, err := codec.ToStore(loadedSnap)
	require.NoError(t, err)

	require.Equal(t, original.NodeCount(), reloaded.NodeCount())
	require.Equal(t, original.EdgeCount(), reloaded.EdgeCount())
	for v := csr.NodeID(0); v < original.NodeCount(); v++ {
		oOut, _ := original.Outgoing(v)
		rOut, _ := reloaded.Outgoing(v)
		require.Equal(t, oOut, rOut)

		oName, oOK := original.Label(v)
		rName, rOK := reloaded.Label(v)
		require.Equal(t, oOK, rOK)
		require.Equal(t, oName, rName)
	}
}

func TestFromStore_OmitsUnlabeledNodes(t *testing.T) {
	s, err := csr.FromEdgeList([]csr.Edge{{Source: 0, Target: 1, Weight: 1}})
	require.NoError(t, err)
	require.NoError(t, s.SetLabel(0, "root"))

	snap := codec.FromStore(s)
	require.Len(t, snap.Nodes, 1)
	require.Equal(t, uint32(0), snap.Nodes[0].NodeID)
}
