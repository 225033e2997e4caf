// Package shaders embeds the WGSL source for both required compute
// kernels so a real Device implementation can load them without a
// runtime file-system dependency.
package shaders

import "embed"

//go:embed bfs.wgsl pagerank.wgsl
var FS embed.FS

// BFS returns the BFS kernel's WGSL source.
func BFS() (string, error) {
	b, err := FS.ReadFile("bfs.wgsl")
	return string(b), err
}

// PageRank returns the PageRank kernel's WGSL source.
func PageRank() (string, error) {
	b, err := FS.ReadFile("pagerank.wgsl")
	return string(b), err
}
