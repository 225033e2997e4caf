package analysisd_test

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/codegraph/csrengine/algo"
	"github.com/codegraph/csrengine/cmd/graphctl/analysisd"
	"github.com/codegraph/csrengine/csr"
)

func TestServer_PageRank_ReturnsConvergedResult(t *testing.T) {
	s, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 0, Weight: 1},
	})
	require.NoError(t, err)

	srv := analysisd.NewServer(s, 8, zerolog.Nop())
	res, err := srv.PageRank(algo.DefaultPageRankOptions())
	require.NoError(t, err)
	require.True(t, res.Converged)
}

func TestServer_PageRank_ConcurrentIdenticalRequestsAgree(t *testing.T) {
	s, err := csr.FromEdgeList([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
		{Source: 2, Target: 0, Weight: 1},
	})
	require.NoError(t, err)

	srv := analysisd.NewServer(s, 8, zerolog.Nop())

	var wg sync.WaitGroup
	results := make([]*algo.PageRankResult, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := srv.PageRank(algo.DefaultPageRankOptions())
			require.NoError(t, err)
			results[i] = res
		}(i)
	}
	wg.Wait()

	for _, res := range results {
		require.Equal(t, results[0].Scores, res.Scores)
	}
}
