package domain

import "go.trai.ch/zerr"

var (
	// ErrEnumerationFailed is returned when a source root cannot be enumerated.
	ErrEnumerationFailed = zerr.New("failed to enumerate source root")

	// ErrCompileFailed is returned when one or more units failed to compile in a one-shot run.
	ErrCompileFailed = zerr.New("one or more units failed to compile")

	// ErrNoRoots is returned when neither the command line nor the config file names a root.
	ErrNoRoots = zerr.New("no roots specified")

	// ErrInvalidRootMapping is returned when a source[:output] mapping cannot be parsed.
	ErrInvalidRootMapping = zerr.New("invalid root mapping")

	// ErrInvalidConfig is returned when the merged configuration fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrWatchFailed is returned when a watch subscription cannot be established.
	ErrWatchFailed = zerr.New("failed to watch source root")

	// ErrImportNotFound is returned when an import cannot be resolved to a file.
	ErrImportNotFound = zerr.New("import not found")

	// ErrImportCycle is returned when a unit imports itself through a chain of imports.
	ErrImportCycle = zerr.New("import cycle detected")

	// ErrOutputWriteFailed is returned when a compiled artifact cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output")

	// ErrPostProcessFailed is returned when the post-process command exits with an error.
	ErrPostProcessFailed = zerr.New("post-process command failed")

	// ErrDebugWriteFailed is returned when a debug artifact cannot be written.
	ErrDebugWriteFailed = zerr.New("failed to write debug artifact")

	// ErrMetricsServeFailed is returned when the metrics endpoint cannot be served.
	ErrMetricsServeFailed = zerr.New("failed to serve metrics")
)
