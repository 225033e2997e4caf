package algo

import (
	"sort"

	"github.com/codegraph/csrengine/csr"
)

// PatternKind names the anti-pattern a Match reports.
type PatternKind string

const (
	PatternGodClass    PatternKind = "god_class"
	PatternDeadCode    PatternKind = "dead_code"
	PatternCircularDep PatternKind = "circular_dependency"
	PatternUnstableHub PatternKind = "unstable_hub"
)

// Severity buckets a Match's magnitude. Thresholds are defined per
// pattern kind; see each matcher's doc comment.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Match reports one anti-pattern hit: the pattern kind, the node(s)
// involved (a single node for GodClass/DeadCode/UnstableHub, the full
// cycle for CircularDependency), and a severity bucket.
type Match struct {
	Kind     PatternKind
	Nodes    []csr.NodeID
	Severity Severity
}

// GodClass flags every node whose out-degree is at least threshold.
// Severity scales linearly with degree: low at exactly threshold,
// medium at 2x threshold, high at 3x threshold or beyond.
func GodClass(g csr.View, threshold uint32) ([]Match, error) {
	if threshold == 0 {
		threshold = 1
	}
	n := g.NodeCount()
	var matches []Match
	for v := csr.NodeID(0); v < n; v++ {
		od, err := g.OutDegree(v)
		if err != nil {
			return nil, err
		}
		if od < threshold {
			continue
		}
		matches = append(matches, Match{
			Kind:     PatternGodClass,
			Nodes:    []csr.NodeID{v},
			Severity: degreeSeverity(od, threshold),
		})
	}
	return matches, nil
}

func degreeSeverity(degree, threshold uint32) Severity {
	switch {
	case degree >= 3*threshold:
		return SeverityHigh
	case degree >= 2*threshold:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// DeadCode flags every node with zero incoming edges that still has at
// least one outgoing edge — reachable from nothing, yet not an
// isolated singleton either.
func DeadCode(g csr.View) ([]Match, error) {
	n := g.NodeCount()
	var matches []Match
	for v := csr.NodeID(0); v < n; v++ {
		id, err := g.InDegree(v)
		if err != nil {
			return nil, err
		}
		if id != 0 {
			continue
		}
		od, err := g.OutDegree(v)
		if err != nil {
			return nil, err
		}
		if od == 0 {
			continue
		}
		matches = append(matches, Match{
			Kind:     PatternDeadCode,
			Nodes:    []csr.NodeID{v},
			Severity: SeverityMedium,
		})
	}
	return matches, nil
}

const (
	colorWhite = 0
	colorGray  = 1
	colorBlack = 2
)

// CircularDependency runs a three-color DFS over g's forward adjacency
// and reports simple cycles of length at most maxLen (0 means
// unlimited). A cycle is detected when the DFS revisits a gray (still
// on the recursion stack) vertex; the reported nodes are the stack
// segment from that vertex to the top, rotated to start at its
// smallest node ID for a canonical, duplicate-free representation.
// Only cycles closed by such a back edge are reported: a simple cycle
// whose closing edge reaches an already-black vertex is not listed.
// Every node is visited once (O(N + E) total); severity is medium for
// every cycle regardless of length, since any cycle at all is a defect
// in an acyclic dependency model.
func CircularDependency(g csr.View, maxLen uint32) ([]Match, error) {
	n := g.NodeCount()
	color := make([]uint8, n)
	var stack []csr.NodeID
	onStack := make(map[csr.NodeID]int, n)
	seen := make(map[string]bool)
	var matches []Match

	var visit func(v csr.NodeID) error
	visit = func(v csr.NodeID) error {
		color[v] = colorGray
		onStack[v] = len(stack)
		stack = append(stack, v)

		nbrs, err := g.Outgoing(v)
		if err != nil {
			return err
		}
		for _, u := range nbrs {
			switch color[u] {
			case colorWhite:
				if err := visit(u); err != nil {
					return err
				}
			case colorGray:
				start := onStack[u]
				cycle := append([]csr.NodeID(nil), stack[start:]...)
				if maxLen == 0 || uint32(len(cycle)) <= maxLen {
					canon := canonicalRotation(cycle)
					sig := cycleSignature(canon)
					if !seen[sig] {
						seen[sig] = true
						matches = append(matches, Match{
							Kind:     PatternCircularDep,
							Nodes:    canon,
							Severity: SeverityMedium,
						})
					}
				}
			case colorBlack:
				// cross/forward edge, not a cycle
			}
		}

		stack = stack[:len(stack)-1]
		delete(onStack, v)
		color[v] = colorBlack
		return nil
	}

	for v := csr.NodeID(0); v < n; v++ {
		if color[v] == colorWhite {
			if err := visit(v); err != nil {
				return nil, err
			}
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return cycleSignature(matches[i].Nodes) < cycleSignature(matches[j].Nodes)
	})
	return matches, nil
}

// canonicalRotation rotates cycle so it starts at its smallest node
// ID, giving every discovery order of the same cycle an identical
// representation.
func canonicalRotation(cycle []csr.NodeID) []csr.NodeID {
	minIdx := 0
	for i, v := range cycle {
		if v < cycle[minIdx] {
			minIdx = i
		}
	}
	out := make([]csr.NodeID, len(cycle))
	for i := range cycle {
		out[i] = cycle[(minIdx+i)%len(cycle)]
	}
	return out
}

func cycleSignature(cycle []csr.NodeID) string {
	b := make([]byte, 0, len(cycle)*5)
	for i, v := range cycle {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendUint32(b, v)
	}
	return string(b)
}

func appendUint32(b []byte, v uint32) []byte {
	if v == 0 {
		return append(b, '0')
	}
	var tmp [10]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(b, tmp[i:]...)
}

// UnstableHubOptions configures the supplemented fourth pattern.
type UnstableHubOptions struct {
	// ChurnFactor is the multiple of the graph's mean in-degree a node
	// must reach to be flagged: the threshold is ChurnFactor x mean,
	// rounded down to a whole in-degree (and at least 1). A node with
	// in-degree 0 is never flagged regardless of ChurnFactor.
	ChurnFactor float64
}

// DefaultUnstableHubOptions flags nodes whose in-degree is at least 3x
// the graph's mean in-degree (rounded down).
func DefaultUnstableHubOptions() UnstableHubOptions {
	return UnstableHubOptions{ChurnFactor: 3.0}
}

// UnstableHub flags nodes whose in-degree crosses a high-churn
// threshold relative to the graph's mean in-degree: symbols that a
// disproportionate share of the rest of the graph depends on, and
// whose change would ripple outward the most. Severity scales with how
// far past the threshold the node sits, the same banding as GodClass.
func UnstableHub(g csr.View, opts UnstableHubOptions) ([]Match, error) {
	n := g.NodeCount()
	if n == 0 {
		return nil, nil
	}

	inDeg := make([]uint32, n)
	var total uint64
	for v := csr.NodeID(0); v < n; v++ {
		id, err := g.InDegree(v)
		if err != nil {
			return nil, err
		}
		inDeg[v] = id
		total += uint64(id)
	}
	mean := float64(total) / float64(n)
	if mean == 0 {
		return nil, nil
	}
	threshold := uint32(mean * opts.ChurnFactor)
	if threshold == 0 {
		threshold = 1
	}

	var matches []Match
	for v := csr.NodeID(0); v < n; v++ {
		if inDeg[v] < threshold {
			continue
		}
		matches = append(matches, Match{
			Kind:     PatternUnstableHub,
			Nodes:    []csr.NodeID{v},
			Severity: degreeSeverity(inDeg[v], threshold),
		})
	}
	return matches, nil
}
