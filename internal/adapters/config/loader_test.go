package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylo/internal/adapters/config"
	"go.trai.ch/stylo/internal/core/domain"
	"go.trai.ch/stylo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stylo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load_Success(t *testing.T) {
	path := writeConfig(t, `
version: "1"
style: compressed
sourceMap: true
roots:
  - styles:dist
  - themes
watch: true
debug: false
extensions: [".scss", "css"]
loadPaths: ["vendor"]
postProcess: ["autoprefixer", "--replace"]
debounce: 120ms
metricsAddr: ":9090"
logFormat: json
`)
	dir := filepath.Dir(path)

	o, err := newLoader(t).Load(path)
	require.NoError(t, err)

	require.NotNil(t, o.Style)
	assert.Equal(t, domain.StyleCompressed, *o.Style)
	assert.Equal(t, domain.Ptr(true), o.SourceMap)
	assert.Equal(t, domain.Ptr(true), o.Watch)
	assert.Equal(t, domain.Ptr(false), o.Debug)
	assert.Equal(t, []string{".scss", "css"}, o.Extensions)
	assert.Equal(t, []string{filepath.Join(dir, "vendor")}, o.LoadPaths)
	assert.Equal(t, []string{"autoprefixer", "--replace"}, o.PostProcess)
	assert.Equal(t, domain.Ptr(120*time.Millisecond), o.Debounce)
	assert.Equal(t, domain.Ptr(":9090"), o.MetricsAddr)
	assert.Equal(t, domain.Ptr(domain.LogJSON), o.LogFormat)

	require.Len(t, o.Roots, 2)
	source, output, err := domain.ParseRootMapping(o.Roots[0], "/unrelated")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "styles"), source, "roots are relative to the config file")
	assert.Equal(t, filepath.Join(dir, "dist"), output)
}

func TestLoader_Load_Empty(t *testing.T) {
	o, err := newLoader(t).Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, domain.ConfigOverrides{}, o)

	cfg := domain.DefaultConfig().Apply(o)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_NotFound(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "stylo.yaml"))
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoader_Load_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "roots: [unterminated"},
		{name: "unknown key", content: "outputStyle: compressed"},
		{name: "bad debounce", content: "debounce: soon"},
		{name: "wrong type", content: "watch: [1, 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t).Load(writeConfig(t, tt.content))
			require.ErrorIs(t, err, domain.ErrConfigParseFailed)
		})
	}
}
