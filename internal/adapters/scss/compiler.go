// Package scss implements the built-in transformer: an import-flattening SCSS bundler.
package scss

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stylo/internal/core/domain"
	"go.trai.ch/stylo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Transformer = (*Compiler)(nil)

// Compiler flattens entry units into single CSS artifacts.
type Compiler struct{}

// NewCompiler creates a new Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile flattens the unit at path and writes the artifact below the entry's output root.
func (c *Compiler) Compile(ctx context.Context, path string, entry domain.EntryConfig) (*domain.CompileResult, error) {
	path = filepath.Clean(path)

	out, err := entry.OutputPath(path, domain.OutputExt)
	if err != nil {
		return nil, domain.NewCompileError(path, err)
	}

	b := newBundler(entry.Options.LoadPaths)
	if err := b.include(ctx, path); err != nil {
		return nil, domain.NewCompileError(path, err)
	}

	css := b.out.String()
	compressed := entry.Options.Style == domain.StyleCompressed
	if compressed {
		if css, err = compress(css); err != nil {
			return nil, domain.NewCompileError(path, zerr.Wrap(err, "failed to compress output"))
		}
	} else if css != "" && css[len(css)-1] != '\n' {
		css += "\n"
	}

	result := &domain.CompileResult{
		From:          path,
		To:            out,
		IncludedFiles: b.included,
	}

	if entry.Options.SourceMap {
		mapPath := out + domain.SourceMapExt
		doc, err := buildSourceMap(out, b.out, !compressed)
		if err != nil {
			return nil, domain.NewCompileError(path, zerr.Wrap(err, "failed to encode source map"))
		}
		if err := writeIfChanged(mapPath, doc); err != nil {
			return nil, domain.NewCompileError(path, err)
		}
		if !compressed {
			css += "\n"
		}
		css += "/*# sourceMappingURL=" + filepath.Base(mapPath) + " */\n"
		result.MapPath = mapPath
	}

	if err := writeIfChanged(out, []byte(css)); err != nil {
		return nil, domain.NewCompileError(path, err)
	}

	return result, nil
}

// writeIfChanged writes data to path unless the file already holds the same content,
// so unchanged artifacts keep their modification time.
func writeIfChanged(path string, data []byte) error {
	if existing, err := os.ReadFile(path); err == nil { //nolint:gosec // Output path is derived from configured roots
		if xxhash.Sum64(existing) == xxhash.Sum64(data) {
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrOutputWriteFailed, err.Error()), "path", path)
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrOutputWriteFailed, err.Error()), "path", path)
	}
	return nil
}
