package command

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/codegraph/csrengine/csr"
)

// loadEdgeList reads a newline-delimited "source target weight" file
// into a Store. Blank lines and lines starting with "#" are skipped.
func loadEdgeList(path string) (*csr.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphctl: open %s: %w", path, err)
	}
	defer f.Close()

	var edges []csr.Edge
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("graphctl: %s:%d: expected 3 fields, got %d", path, lineNo, len(fields))
		}
		source, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("graphctl: %s:%d: source: %w", path, lineNo, err)
		}
		target, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("graphctl: %s:%d: target: %w", path, lineNo, err)
		}
		weight, err := strconv.ParseFloat(fields[2], 32)
		if err != nil {
			return nil, fmt.Errorf("graphctl: %s:%d: weight: %w", path, lineNo, err)
		}
		edges = append(edges, csr.Edge{Source: uint32(source), Target: uint32(target), Weight: float32(weight)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphctl: scan %s: %w", path, err)
	}

	return csr.FromEdgeList(edges)
}
