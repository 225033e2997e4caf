package analysisd

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/codegraph/csrengine/algo"
	"github.com/codegraph/csrengine/csr"
	"github.com/codegraph/csrengine/internal/lru"
)

// Server answers repeated PageRank queries against a fixed graph,
// coalescing concurrent identical requests and caching their results.
// Query identity is (damping, tolerance, maxIterations) — the graph
// itself is fixed for the Server's lifetime, matching the engine's
// "not safe for concurrent mutation, safe for concurrent immutable
// reads" model.
type Server struct {
	graph  csr.View
	logger zerolog.Logger

	group singleflight.Group

	mu    sync.Mutex
	cache *lru.Cache[string, *algo.PageRankResult]
}

// NewServer returns a Server over graph, caching up to cacheSize
// distinct query results.
func NewServer(graph csr.View, cacheSize int, logger zerolog.Logger) *Server {
	return &Server{
		graph:  graph,
		logger: logger,
		cache:  lru.New[string, *algo.PageRankResult](cacheSize),
	}
}

func pageRankCacheKey(opts algo.PageRankOptions) string {
	return fmt.Sprintf("pagerank:%d:%g:%g", opts.MaxIterations, opts.Tolerance, opts.Damping)
}

// PageRank returns the PageRank result for opts, computing it at most
// once across any number of concurrent identical requests.
func (s *Server) PageRank(opts algo.PageRankOptions) (*algo.PageRankResult, error) {
	key := pageRankCacheKey(opts)

	s.mu.Lock()
	if cached, ok := s.cache.Get(key); ok {
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	v, err, shared := s.group.Do(key, func() (any, error) {
		opts.Logger = s.logger
		return algo.PageRank(s.graph, opts)
	})
	if err != nil {
		return nil, err
	}

	result := v.(*algo.PageRankResult)
	if shared {
		s.logger.Debug().Str("key", key).Msg("pagerank request coalesced via singleflight")
	}

	s.mu.Lock()
	s.cache.Put(key, result)
	s.mu.Unlock()

	return result, nil
}
