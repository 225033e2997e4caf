package csr_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/codegraph/csrengine/csr"
)

// genEdges draws a random small edge list over a bounded node-ID range,
// exercising multi-edges and self-loops (both are permitted per the
// data model).
func genEdges(t *rapid.T) []csr.Edge {
	maxNode := rapid.IntRange(0, 30).Draw(t, "maxNode")
	count := rapid.IntRange(0, 200).Draw(t, "edgeCount")
	edges := make([]csr.Edge, count)
	for i := range edges {
		edges[i] = csr.Edge{
			Source: uint32(rapid.IntRange(0, maxNode).Draw(t, "u")),
			Target: uint32(rapid.IntRange(0, maxNode).Draw(t, "v")),
			Weight: float32(rapid.Float64Range(-10, 10).Draw(t, "w")),
		}
	}
	return edges
}

// TestProperty_OffsetMonotonicity checks invariant 1/2: both offset
// arrays are non-decreasing, start at 0, and end at E.
func TestProperty_OffsetMonotonicity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		edges := genEdges(t)
		s, err := csr.FromEdgeList(edges)
		if err != nil {
			t.Fatal(err)
		}
		checkMonotone(t, s.RowOffsets(), s.EdgeCount())
		checkMonotone(t, s.RevRowOffsets(), s.EdgeCount())
	})
}

func checkMonotone(t *rapid.T, offsets []uint32, e uint32) {
	t.Helper()
	if offsets[0] != 0 {
		t.Fatalf("offsets[0] = %d, want 0", offsets[0])
	}
	if offsets[len(offsets)-1] != e {
		t.Fatalf("offsets[last] = %d, want %d", offsets[len(offsets)-1], e)
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			t.Fatalf("offsets not non-decreasing at %d: %d < %d", i, offsets[i], offsets[i-1])
		}
	}
}

// TestProperty_TransposeConsistency checks invariant 5: the forward and
// reverse multisets of (u,v,w) triples are transposes of each other.
func TestProperty_TransposeConsistency(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		edges := genEdges(t)
		s, err := csr.FromEdgeList(edges)
		if err != nil {
			t.Fatal(err)
		}

		type triple struct {
			u, v uint32
			w    float32
		}
		fwd := map[triple]int{}
		for v := uint32(0); v < s.NodeCount(); v++ {
			out, _ := s.Outgoing(v)
			outW, _ := s.OutgoingWeights(v)
			for i, u := range out {
				fwd[triple{v, u, outW[i]}]++
			}
		}
		rev := map[triple]int{}
		for v := uint32(0); v < s.NodeCount(); v++ {
			in, _ := s.Incoming(v)
			inW, _ := s.IncomingWeights(v)
			for i, u := range in {
				// reverse entry (v, u, w) means a forward edge (u, v, w)
				rev[triple{u, v, inW[i]}]++
			}
		}
		if len(fwd) != len(rev) {
			t.Fatalf("distinct forward triples %d != distinct transposed-reverse triples %d", len(fwd), len(rev))
		}
		for k, c := range fwd {
			if rev[k] != c {
				t.Fatalf("triple %v: forward count %d != reverse count %d", k, c, rev[k])
			}
		}
	})
}

// TestProperty_DegreeSum checks invariant 3: sum of out-degrees equals
// sum of in-degrees equals E.
func TestProperty_DegreeSum(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		edges := genEdges(t)
		s, err := csr.FromEdgeList(edges)
		if err != nil {
			t.Fatal(err)
		}

		var outSum, inSum uint32
		for v := uint32(0); v < s.NodeCount(); v++ {
			od, _ := s.OutDegree(v)
			id, _ := s.InDegree(v)
			outSum += od
			inSum += id
		}
		if outSum != s.EdgeCount() || inSum != s.EdgeCount() {
			t.Fatalf("outSum=%d inSum=%d E=%d", outSum, inSum, s.EdgeCount())
		}
	})
}

// TestProperty_AddEdgeMatchesFromEdgeList checks that building a graph
// incrementally via AddEdge yields the same adjacency as building the
// same edge list in one FromEdgeList batch.
func TestProperty_AddEdgeMatchesFromEdgeList(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		edges := genEdges(t)
		batch, err := csr.FromEdgeList(edges)
		if err != nil {
			t.Fatal(err)
		}

		incr := csr.New()
		for _, e := range edges {
			if err := incr.AddEdge(e.Source, e.Target, e.Weight); err != nil {
				t.Fatal(err)
			}
		}

		if batch.NodeCount() != incr.NodeCount() {
			t.Fatalf("node count mismatch: %d != %d", batch.NodeCount(), incr.NodeCount())
		}
		for v := uint32(0); v < batch.NodeCount(); v++ {
			bOut, _ := batch.Outgoing(v)
			iOut, _ := incr.Outgoing(v)
			if len(bOut) != len(iOut) {
				t.Fatalf("node %d: out-degree mismatch %d != %d", v, len(bOut), len(iOut))
			}
			for i := range bOut {
				if bOut[i] != iOut[i] {
					t.Fatalf("node %d: outgoing[%d] mismatch %d != %d", v, i, bOut[i], iOut[i])
				}
			}
		}
	})
}
