//go:build !cgo

package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrelaycoreVersionWithoutCgo(t *testing.T) {
	_, err := LibrelaycoreVersion()
	require.ErrorIs(t, err, ErrNotLinked)
}

func TestVersionWithoutCgo(t *testing.T) {
	// Version is total even when the core is not linked in.
	assert.Equal(t, "unknown", Version())
}
