package domain

import (
	"slices"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// LogFormat selects the log handler.
type LogFormat string

const (
	// LogPretty renders colored, human readable lines.
	LogPretty LogFormat = "pretty"
	// LogJSON renders one JSON object per line.
	LogJSON LogFormat = "json"
)

// Config is the fully merged run configuration.
type Config struct {
	Style       OutputStyle
	SourceMap   bool
	Roots       []string
	Watch       bool
	Debug       bool
	Extensions  []string
	LoadPaths   []string
	PostProcess []string
	Debounce    time.Duration
	MetricsAddr string
	LogFormat   LogFormat
}

// ConfigOverrides holds the options set by one configuration layer.
// Nil fields leave the lower layer untouched.
type ConfigOverrides struct {
	Style       *OutputStyle
	SourceMap   *bool
	Roots       []string
	Watch       *bool
	Debug       *bool
	Extensions  []string
	LoadPaths   []string
	PostProcess []string
	Debounce    *time.Duration
	MetricsAddr *string
	LogFormat   *LogFormat
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Style:      StyleExpanded,
		Extensions: DefaultExtensions(),
		Debounce:   DefaultDebounce,
		LogFormat:  LogPretty,
	}
}

// Apply returns a copy of c with every option set in o replacing the current value.
// Layers are applied lowest precedence first: defaults, then file, then command line.
func (c Config) Apply(o ConfigOverrides) Config {
	if o.Style != nil {
		c.Style = *o.Style
	}
	if o.SourceMap != nil {
		c.SourceMap = *o.SourceMap
	}
	if o.Roots != nil {
		c.Roots = slices.Clone(o.Roots)
	}
	if o.Watch != nil {
		c.Watch = *o.Watch
	}
	if o.Debug != nil {
		c.Debug = *o.Debug
	}
	if o.Extensions != nil {
		c.Extensions = normalizeExtensions(o.Extensions)
	}
	if o.LoadPaths != nil {
		c.LoadPaths = slices.Clone(o.LoadPaths)
	}
	if o.PostProcess != nil {
		c.PostProcess = slices.Clone(o.PostProcess)
	}
	if o.Debounce != nil {
		c.Debounce = *o.Debounce
	}
	if o.MetricsAddr != nil {
		c.MetricsAddr = *o.MetricsAddr
	}
	if o.LogFormat != nil {
		c.LogFormat = *o.LogFormat
	}
	return c
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if !slices.Contains(out, ext) {
			out = append(out, ext)
		}
	}
	return out
}

// Validate checks the merged configuration once at startup.
func (c Config) Validate() error {
	if !c.Style.Valid() {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "unknown output style, expected compressed or expanded"), "style", string(c.Style))
	}
	if c.LogFormat != LogPretty && c.LogFormat != LogJSON {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "unknown log format"), "log_format", string(c.LogFormat))
	}
	if c.Debounce < 0 {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "debounce must not be negative"), "debounce", c.Debounce.String())
	}
	if len(c.Extensions) == 0 {
		return zerr.Wrap(ErrInvalidConfig, "at least one unit extension is required")
	}
	if len(c.Roots) == 0 {
		return ErrNoRoots
	}
	return nil
}

// Entries expands the configured root mappings into entry configurations.
// Relative paths are resolved against cwd.
func (c Config) Entries(cwd string) ([]EntryConfig, error) {
	loadPaths := make([]string, len(c.LoadPaths))
	for i, p := range c.LoadPaths {
		loadPaths[i] = absolute(p, cwd)
	}

	entries := make([]EntryConfig, 0, len(c.Roots))
	seen := make(map[string]struct{}, len(c.Roots))
	for _, mapping := range c.Roots {
		source, output, err := ParseRootMapping(mapping, cwd)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[source]; dup {
			continue
		}
		seen[source] = struct{}{}

		entries = append(entries, EntryConfig{
			SourceRoot: source,
			OutputRoot: output,
			Options: CompileOptions{
				Style:     c.Style,
				SourceMap: c.SourceMap,
				LoadPaths: slices.Clone(loadPaths),
			},
		})
	}
	return entries, nil
}

// ResolveAgainst rewrites the relative paths in o to be relative to dir.
// Config files use it so that roots and load paths are relative to the file, not the cwd.
func (o ConfigOverrides) ResolveAgainst(dir string) (ConfigOverrides, error) {
	if o.Roots != nil {
		roots := make([]string, len(o.Roots))
		for i, mapping := range o.Roots {
			source, output, err := ParseRootMapping(mapping, dir)
			if err != nil {
				return o, err
			}
			roots[i] = source + ":" + output
		}
		o.Roots = roots
	}
	if o.LoadPaths != nil {
		paths := make([]string, len(o.LoadPaths))
		for i, p := range o.LoadPaths {
			paths[i] = absolute(p, dir)
		}
		o.LoadPaths = paths
	}
	return o, nil
}

// Ptr returns a pointer to v. It keeps override literals short.
func Ptr[T any](v T) *T {
	return &v
}
