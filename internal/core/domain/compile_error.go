package domain

import (
	"errors"
	"sync"
)

// CompileError is a failure to compile a single entry unit.
// It never aborts sibling units.
type CompileError struct {
	Path string
	Err  error
}

// NewCompileError wraps err for the unit at path. An error that already is a
// CompileError is returned unchanged.
func NewCompileError(path string, err error) error {
	if err == nil {
		return nil
	}
	var ce *CompileError
	if errors.As(err, &ce) {
		return err
	}
	return &CompileError{Path: path, Err: err}
}

func (e *CompileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// ErrorCollector accumulates unit-level errors from concurrent workers.
type ErrorCollector struct {
	mu   sync.Mutex
	errs []error
}

// Add records err. Nil errors are ignored.
func (c *ErrorCollector) Add(err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, err)
}

// Len returns the number of recorded errors.
func (c *ErrorCollector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errs)
}

// Errors returns the recorded errors in the order they were added.
func (c *ErrorCollector) Errors() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]error(nil), c.errs...)
}

// Err joins the recorded errors, or returns nil when there are none.
func (c *ErrorCollector) Err() error {
	return errors.Join(c.Errors()...)
}
