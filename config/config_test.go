package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cfg := New()
	require.NotNil(t, cfg.PoolConfig)
	require.Equal(t, uintptr(0), cfg.PoolConfig.Capacity)
	require.False(t, cfg.PoolConfig.Verbose)
	require.Equal(t, BackendGo, cfg.PoolConfig.Backend)
}
