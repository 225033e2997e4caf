package algo

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/codegraph/csrengine/csr"
	"github.com/codegraph/csrengine/internal/obs"
)

// LouvainOptions configures community detection.
type LouvainOptions struct {
	// Weighted selects whether edge weights participate in the
	// modularity calculation. When false, every edge contributes 1.0
	// regardless of its stored weight.
	Weighted bool
	// MaxPasses caps the number of full node sweeps, guarding against
	// pathological oscillation. 0 means unlimited (run to fixpoint).
	MaxPasses int
	// Logger receives a Debug line per pass reporting the move count;
	// defaults to zerolog.Nop().
	Logger zerolog.Logger
}

// DefaultLouvainOptions returns unweighted modularity with no pass cap
// and a no-op logger.
func DefaultLouvainOptions() LouvainOptions {
	return LouvainOptions{Weighted: false, MaxPasses: 0, Logger: obs.Default()}
}

// LouvainResult holds the community assignment and the modularity of
// the final partition.
type LouvainResult struct {
	Community  []uint32
	Modularity float64
	Passes     int
}

// Louvain runs single-level greedy modularity-maximizing community
// detection over g, treating the directed graph as its underlying
// undirected projection: a node's neighbors for the purpose of
// community assignment are the union of its outgoing and incoming
// adjacency, and a node's modularity degree is the sum of its
// out-degree and in-degree (each counted in the edge's own weight
// units). Self-loops contribute to a node's degree but are never
// considered a candidate move.
//
// Each node starts in its own community. A pass visits nodes in ID
// order; for each node it computes the modularity gain of moving into
// every community represented among its neighbors, and moves to the
// community with the largest strictly-positive gain (ties broken by
// lowest community ID; a non-positive best gain leaves the node in
// place). Passes repeat until a full sweep produces no move.
//
// This is the single-level variant of Louvain: communities are never
// coarsened into super-nodes for a second level. See SPEC_FULL.md for why
// that scope stops here.
func Louvain(g csr.View, opts LouvainOptions) (*LouvainResult, error) {
	n := int(g.NodeCount())
	if n == 0 {
		return &LouvainResult{}, nil
	}

	degree := make([]float64, n)
	community := make([]uint32, n)
	for v := range community {
		community[v] = uint32(v)
	}

	weightOf := func(w float32) float64 {
		if opts.Weighted {
			return float64(w)
		}
		return 1.0
	}

	var totalWeight float64
	for v := 0; v < n; v++ {
		outW, err := g.OutgoingWeights(csr.NodeID(v))
		if err != nil {
			return nil, err
		}
		inW, err := g.IncomingWeights(csr.NodeID(v))
		if err != nil {
			return nil, err
		}
		for _, w := range outW {
			ww := weightOf(w)
			degree[v] += ww
			totalWeight += ww
		}
		for _, w := range inW {
			degree[v] += weightOf(w)
		}
	}

	if totalWeight == 0 {
		// No edges: every node stays isolated, modularity is undefined
		// by convention taken as 0.
		return &LouvainResult{Community: compactCommunities(community), Modularity: 0}, nil
	}

	m := totalWeight
	commDegree := make([]float64, n)
	for v := 0; v < n; v++ {
		commDegree[community[v]] += degree[v]
	}

	passes := 0
	for opts.MaxPasses == 0 || passes < opts.MaxPasses {
		passes++
		moved := false
		movedCount := 0

		for v := 0; v < n; v++ {
			current := community[v]

			neighborWeight := make(map[uint32]float64)
			if err := accumulateNeighborWeight(g, csr.NodeID(v), community, weightOf, neighborWeight, true); err != nil {
				return nil, err
			}
			if err := accumulateNeighborWeight(g, csr.NodeID(v), community, weightOf, neighborWeight, false); err != nil {
				return nil, err
			}

			edgesToCurrent := neighborWeight[current]
			degreeCurrentExclV := commDegree[current] - degree[v]

			bestComm := current
			bestGain := 0.0

			candidates := make([]uint32, 0, len(neighborWeight))
			for c := range neighborWeight {
				candidates = append(candidates, c)
			}
			sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

			for _, c := range candidates {
				if c == current {
					continue
				}
				edgesToC := neighborWeight[c]
				degreeCExclV := commDegree[c]
				gain := (edgesToC-edgesToCurrent)/m - degree[v]*(degreeCExclV-degreeCurrentExclV)/(2*m*m)
				if gain > bestGain || (gain == bestGain && gain > 0 && c < bestComm) {
					bestGain = gain
					bestComm = c
				}
			}

			if bestComm != current {
				commDegree[current] -= degree[v]
				commDegree[bestComm] += degree[v]
				community[v] = bestComm
				moved = true
				movedCount++
			}
		}

		opts.Logger.Debug().Int("pass", passes).Int("moves", movedCount).Msg("louvain pass complete")

		if !moved {
			break
		}
	}

	dense := compactCommunities(community)
	q := modularity(g, dense, degree, m, weightOf)

	return &LouvainResult{Community: dense, Modularity: q, Passes: passes}, nil
}

// accumulateNeighborWeight adds v's outgoing (or incoming, if out is
// false) edge weights into acc, keyed by each neighbor's community.
// Self-loops (nbr == v) are skipped: a node cannot be moved "into"
// itself.
func accumulateNeighborWeight(g csr.View, v csr.NodeID, community []uint32, weightOf func(float32) float64, acc map[uint32]float64, out bool) error {
	var nbrs []csr.NodeID
	var weights []float32
	var err error
	if out {
		nbrs, err = g.Outgoing(v)
		if err != nil {
			return err
		}
		weights, err = g.OutgoingWeights(v)
	} else {
		nbrs, err = g.Incoming(v)
		if err != nil {
			return err
		}
		weights, err = g.IncomingWeights(v)
	}
	if err != nil {
		return err
	}
	for i, nbr := range nbrs {
		if nbr == v {
			continue
		}
		acc[community[nbr]] += weightOf(weights[i])
	}
	return nil
}

// compactCommunities renumbers the (possibly sparse) community IDs in
// raw to a dense 0..k-1 range, preserving relative order of first
// appearance by ascending original ID.
func compactCommunities(raw []uint32) []uint32 {
	ids := make([]uint32, 0)
	seen := make(map[uint32]bool)
	for _, c := range raw {
		if !seen[c] {
			seen[c] = true
			ids = append(ids, c)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	remap := make(map[uint32]uint32, len(ids))
	for i, id := range ids {
		remap[id] = uint32(i)
	}

	dense := make([]uint32, len(raw))
	for i, c := range raw {
		dense[i] = remap[c]
	}
	return dense
}

// modularity computes Q = Σ_c [ intra_c/m - (commDegree_c/2m)^2 ] over
// the final partition, where intra_c sums the weight of every forward
// edge with both endpoints in community c.
func modularity(g csr.View, community []uint32, degree []float64, m float64, weightOf func(float32) float64) float64 {
	n := len(community)
	numComm := 0
	for _, c := range community {
		if int(c)+1 > numComm {
			numComm = int(c) + 1
		}
	}

	intra := make([]float64, numComm)
	commDegree := make([]float64, numComm)
	for v := 0; v < n; v++ {
		commDegree[community[v]] += degree[v]
	}

	for v := 0; v < n; v++ {
		out, _ := g.Outgoing(csr.NodeID(v))
		outW, _ := g.OutgoingWeights(csr.NodeID(v))
		for i, u := range out {
			if community[v] == community[u] {
				intra[community[v]] += weightOf(outW[i])
			}
		}
	}

	var q float64
	for c := 0; c < numComm; c++ {
		frac := commDegree[c] / (2 * m)
		q += intra[c]/m - frac*frac
	}
	return q
}
