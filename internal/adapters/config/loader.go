// Package config provides the configuration loader for stylo.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/stylo/internal/core/domain"
	"go.trai.ch/stylo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the file at path and converts it into configuration overrides.
// Roots and load paths are resolved against the directory containing the file.
func (l *Loader) Load(path string) (domain.ConfigOverrides, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return domain.ConfigOverrides{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	data, err := os.ReadFile(absPath) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ConfigOverrides{}, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no config file"), "path", absPath)
		}
		return domain.ConfigOverrides{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", absPath)
	}

	file, err := parse(data)
	if err != nil {
		return domain.ConfigOverrides{}, zerr.With(err, "path", absPath)
	}

	overrides, err := toOverrides(file)
	if err != nil {
		return domain.ConfigOverrides{}, zerr.With(err, "path", absPath)
	}

	l.logger.Debug("loaded config from " + absPath)

	return overrides.ResolveAgainst(filepath.Dir(absPath))
}

// parse decodes a Stylofile, rejecting keys it does not know.
func parse(data []byte) (*Stylofile, error) {
	var file Stylofile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(domain.ErrConfigParseFailed, err)
	}

	return &file, nil
}

func toOverrides(file *Stylofile) (domain.ConfigOverrides, error) {
	o := domain.ConfigOverrides{
		SourceMap:   file.SourceMap,
		Roots:       file.Roots,
		Watch:       file.Watch,
		Debug:       file.Debug,
		Extensions:  file.Extensions,
		LoadPaths:   file.LoadPaths,
		PostProcess: file.PostProcess,
		MetricsAddr: file.MetricsAddr,
	}

	if file.Style != nil {
		o.Style = domain.Ptr(domain.OutputStyle(*file.Style))
	}
	if file.LogFormat != nil {
		o.LogFormat = domain.Ptr(domain.LogFormat(*file.LogFormat))
	}
	if file.Debounce != nil {
		d, err := time.ParseDuration(*file.Debounce)
		if err != nil {
			return o, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "debounce", *file.Debounce)
		}
		o.Debounce = &d
	}

	return o, nil
}
