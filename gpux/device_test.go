package gpux_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codegraph/csrengine/gpux"
)

func TestAcquire_IsIdempotent(t *testing.T) {
	a, err := gpux.Acquire()
	require.NoError(t, err)
	b, err := gpux.Acquire()
	require.NoError(t, err)
	require.Same(t, a, b)
}

func TestAcquire_DefaultBuildIsSoftwareDevice(t *testing.T) {
	dev, err := gpux.Acquire()
	require.NoError(t, err)
	require.Equal(t, "software", dev.Info().Name)
}
