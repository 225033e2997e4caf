// Command graphctl is a thin CLI driver over the engine: it loads an
// edge list, runs one of the CPU algorithms from package algo against
// it, and prints the result. It exists as ambient
// tooling around the engine, not as part of its core API surface.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/codegraph/csrengine/cmd/graphctl/internal/command"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if err := command.Root(logger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
