package domain_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylo/internal/core/domain"
)

func TestConfig_Apply_Precedence(t *testing.T) {
	file := domain.ConfigOverrides{
		Style:      domain.Ptr(domain.StyleCompressed),
		SourceMap:  domain.Ptr(true),
		Roots:      []string{"from-file"},
		Extensions: []string{"scss", ".CSS", ".scss"},
		Debounce:   domain.Ptr(200 * time.Millisecond),
	}
	cli := domain.ConfigOverrides{
		Style: domain.Ptr(domain.StyleExpanded),
		Roots: []string{"from-cli:out"},
		Watch: domain.Ptr(true),
	}

	cfg := domain.DefaultConfig().Apply(file).Apply(cli)

	assert.Equal(t, domain.StyleExpanded, cfg.Style, "cli wins over file")
	assert.True(t, cfg.SourceMap, "file wins over defaults")
	assert.Equal(t, []string{"from-cli:out"}, cfg.Roots)
	assert.True(t, cfg.Watch)
	assert.False(t, cfg.Debug)
	assert.Equal(t, []string{".scss", ".css"}, cfg.Extensions)
	assert.Equal(t, 200*time.Millisecond, cfg.Debounce)
	assert.Equal(t, domain.LogPretty, cfg.LogFormat)
}

func TestConfig_Apply_EmptyOverridesKeepDefaults(t *testing.T) {
	cfg := domain.DefaultConfig().Apply(domain.ConfigOverrides{})

	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestConfig_Validate(t *testing.T) {
	valid := domain.DefaultConfig()
	valid.Roots = []string{"styles"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr error
	}{
		{name: "no roots", mutate: func(c *domain.Config) { c.Roots = nil }, wantErr: domain.ErrNoRoots},
		{name: "bad style", mutate: func(c *domain.Config) { c.Style = "nested" }, wantErr: domain.ErrInvalidConfig},
		{name: "bad log format", mutate: func(c *domain.Config) { c.LogFormat = "xml" }, wantErr: domain.ErrInvalidConfig},
		{name: "negative debounce", mutate: func(c *domain.Config) { c.Debounce = -time.Second }, wantErr: domain.ErrInvalidConfig},
		{name: "no extensions", mutate: func(c *domain.Config) { c.Extensions = nil }, wantErr: domain.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestConfig_Entries(t *testing.T) {
	cwd := filepath.FromSlash("/work")
	cfg := domain.DefaultConfig().Apply(domain.ConfigOverrides{
		Style:     domain.Ptr(domain.StyleCompressed),
		SourceMap: domain.Ptr(true),
		Roots:     []string{"styles:dist", "themes", "styles:ignored"},
		LoadPaths: []string{"vendor"},
	})

	entries, err := cfg.Entries(cwd)
	require.NoError(t, err)
	require.Len(t, entries, 2, "duplicate source roots are collapsed")

	assert.Equal(t, filepath.FromSlash("/work/styles"), entries[0].SourceRoot)
	assert.Equal(t, filepath.FromSlash("/work/dist"), entries[0].OutputRoot)
	assert.Equal(t, filepath.FromSlash("/work/themes"), entries[1].OutputRoot)
	assert.Equal(t, domain.CompileOptions{
		Style:     domain.StyleCompressed,
		SourceMap: true,
		LoadPaths: []string{filepath.FromSlash("/work/vendor")},
	}, entries[0].Options)
}

func TestConfigOverrides_ResolveAgainst(t *testing.T) {
	o := domain.ConfigOverrides{
		Roots:     []string{"styles:dist"},
		LoadPaths: []string{"vendor", filepath.FromSlash("/abs/lib")},
	}

	resolved, err := o.ResolveAgainst(filepath.FromSlash("/project"))
	require.NoError(t, err)

	source, output, err := domain.ParseRootMapping(resolved.Roots[0], filepath.FromSlash("/elsewhere"))
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/project/styles"), source)
	assert.Equal(t, filepath.FromSlash("/project/dist"), output)
	assert.Equal(t, []string{filepath.FromSlash("/project/vendor"), filepath.FromSlash("/abs/lib")}, resolved.LoadPaths)
}
