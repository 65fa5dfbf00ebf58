package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylo/internal/app"
	"go.trai.ch/stylo/internal/core/ports"
	_ "go.trai.ch/stylo/internal/wiring"
)

// TestGraftResolvesComponents builds the full node graph the CLI starts from.
// Node lookup is keyed by output type, so two nodes sharing a type would fail here.
func TestGraftResolvesComponents(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](t.Context())
	require.NoError(t, err)
	require.NotNil(t, components)
	assert.NotNil(t, components.App)
	assert.NotNil(t, components.Logger)
}

func TestGraftSharesMetricsRecorder(t *testing.T) {
	cache := graft.NewMemoryCache()
	recorder, _, err := graft.ExecuteFor[ports.Metrics](t.Context(), graft.WithCache(cache))
	require.NoError(t, err)
	server, _, err := graft.ExecuteFor[ports.MetricsServer](t.Context(), graft.WithCache(cache))
	require.NoError(t, err)

	assert.Same(t, recorder, server)
}
