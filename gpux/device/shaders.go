//go:build gpu

package device

import "github.com/codegraph/csrengine/gpux/shaders"

// loadShaders reads both required WGSL kernels from the embedded
// gpux/shaders.FS. Binding 1/2 of the PageRank kernel carry the
// reverse CSR under the row_offsets/col_indices names — see
// gpux/shaders/pagerank.wgsl's header comment — implementing strategy
// (i) from the spec.
func loadShaders() (bfsSource, pageRankSource string, err error) {
	bfsSource, err = shaders.BFS()
	if err != nil {
		return "", "", err
	}
	pageRankSource, err = shaders.PageRank()
	if err != nil {
		return "", "", err
	}
	return bfsSource, pageRankSource, nil
}
