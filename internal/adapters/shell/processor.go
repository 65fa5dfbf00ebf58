// Package shell provides the post-process hook adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/stylo/internal/core/domain"
	"go.trai.ch/stylo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PostProcessor = (*Processor)(nil)

// Environment variables describing the artifact to the post-process command.
const (
	EnvInput  = "STYLO_INPUT"
	EnvOutput = "STYLO_OUTPUT"
	EnvMap    = "STYLO_MAP"
)

// Processor implements ports.PostProcessor using os/exec.
type Processor struct {
	logger ports.Logger
}

// NewProcessor creates a new Processor.
func NewProcessor(logger ports.Logger) *Processor {
	return &Processor{logger: logger}
}

// Process runs command in the directory of the compiled artifact. The artifact paths are
// exported through STYLO_INPUT, STYLO_OUTPUT and, when a map was written, STYLO_MAP.
// Stdout lines are logged at debug level and stderr lines as warnings.
func (p *Processor) Process(ctx context.Context, command []string, result *domain.CompileResult) error {
	if len(command) == 0 || result == nil {
		return nil
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...) //nolint:gosec // user provided command
	cmd.Dir = filepath.Dir(result.To)
	cmd.Env = append(os.Environ(), EnvInput+"="+result.From, EnvOutput+"="+result.To)
	if result.MapPath != "" {
		cmd.Env = append(cmd.Env, EnvMap+"="+result.MapPath)
	}

	stdout := &lineWriter{emit: p.logger.Debug}
	stderr := &lineWriter{emit: p.logger.Warn}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	stdout.Flush()
	stderr.Flush()
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	wrapped := zerr.Wrap(domain.ErrPostProcessFailed, err.Error())
	wrapped = zerr.With(wrapped, "command", strings.Join(command, " "))
	wrapped = zerr.With(wrapped, "exit_code", exitCode)
	return zerr.With(wrapped, "path", result.To)
}

// lineWriter forwards complete lines to emit, buffering partial writes.
type lineWriter struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	emit func(string)
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Keep the incomplete line for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(strings.TrimRight(line, "\r\n"))
	}
	return len(p), nil
}

// Flush emits any trailing output that did not end with a newline.
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}
