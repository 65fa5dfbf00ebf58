package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylo/cmd/stylo/commands"
	"go.trai.ch/stylo/internal/app"
	"go.trai.ch/stylo/internal/build"
	"go.trai.ch/stylo/internal/core/domain"
)

type mockApp struct {
	buildFunc func(ctx context.Context, opts app.BuildOptions) error
	cleaned   bool
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Clean(_ context.Context) error {
	m.cleaned = true
	return nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.BuildOptions
		mock := &mockApp{buildFunc: func(_ context.Context, opts app.BuildOptions) error {
			captured = opts
			return nil
		}}

		_, err := execute(t, mock,
			"styles:dist", "admin",
			"-s", "compressed",
			"--source-map",
			"-w",
			"--debug",
			"--ext", "scss,sass",
			"-I", "vendor", "-I", "node_modules",
			"--debounce", "200ms",
			"--metrics-addr", ":9090",
			"--log-format", "json",
			"-c", "ci.yaml",
		)
		require.NoError(t, err)

		o := captured.Overrides
		assert.Equal(t, "ci.yaml", captured.ConfigPath)
		assert.Equal(t, []string{"styles:dist", "admin"}, o.Roots)
		assert.Equal(t, domain.StyleCompressed, *o.Style)
		assert.True(t, *o.SourceMap)
		assert.True(t, *o.Watch)
		assert.True(t, *o.Debug)
		assert.Equal(t, []string{"scss", "sass"}, o.Extensions)
		assert.Equal(t, []string{"vendor", "node_modules"}, o.LoadPaths)
		assert.Equal(t, 200*time.Millisecond, *o.Debounce)
		assert.Equal(t, ":9090", *o.MetricsAddr)
		assert.Equal(t, domain.LogJSON, *o.LogFormat)
	})

	t.Run("unset flags leave the config file in charge", func(t *testing.T) {
		var captured app.BuildOptions
		mock := &mockApp{buildFunc: func(_ context.Context, opts app.BuildOptions) error {
			captured = opts
			return nil
		}}

		_, err := execute(t, mock)
		require.NoError(t, err)
		assert.Equal(t, domain.ConfigOverrides{}, captured.Overrides)
		assert.Empty(t, captured.ConfigPath)
	})

	t.Run("build subcommand", func(t *testing.T) {
		var captured app.BuildOptions
		mock := &mockApp{buildFunc: func(_ context.Context, opts app.BuildOptions) error {
			captured = opts
			return nil
		}}

		_, err := execute(t, mock, "build", "styles", "--watch=false")
		require.NoError(t, err)
		assert.Equal(t, []string{"styles"}, captured.Overrides.Roots)
		assert.False(t, *captured.Overrides.Watch)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{buildFunc: func(_ context.Context, _ app.BuildOptions) error {
			return errors.New("simulated error")
		}}

		_, err := execute(t, mock, "styles")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Clean(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "clean")
	require.NoError(t, err)
	assert.True(t, mock.cleaned)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "stylo version "+build.Version)

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}
