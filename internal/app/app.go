// Package app implements the application layer for stylo.
package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.trai.ch/stylo/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/stylo/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/stylo/internal/core/domain"
	"go.trai.ch/stylo/internal/core/ports"
	"go.trai.ch/stylo/internal/engine/orchestrator"
	"go.trai.ch/stylo/internal/engine/pipeline"
	"go.trai.ch/stylo/internal/engine/watch"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	enumerator   ports.SourceEnumerator
	transformer  ports.Transformer
	post         ports.PostProcessor
	hasher       ports.ContentHasher
	watchers     ports.WatcherFactory
	tracer       ports.Tracer
	metrics      ports.Metrics
	server       ports.MetricsServer
	debug        ports.DebugWriter
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	enumerator ports.SourceEnumerator,
	transformer ports.Transformer,
	post ports.PostProcessor,
	hasher ports.ContentHasher,
	watchers ports.WatcherFactory,
	tracer ports.Tracer,
	metrics ports.Metrics,
	server ports.MetricsServer,
	debug ports.DebugWriter,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		enumerator:   enumerator,
		transformer:  transformer,
		post:         post,
		hasher:       hasher,
		watchers:     watchers,
		tracer:       tracer,
		metrics:      metrics,
		server:       server,
		debug:        debug,
	}
}

// BuildOptions configures a single invocation.
type BuildOptions struct {
	// ConfigPath names the config file. When empty, stylo.yaml in WorkDir is read if it
	// exists. A file named here must exist.
	ConfigPath string
	// Overrides are the options set on the command line.
	Overrides domain.ConfigOverrides
	// WorkDir resolves relative roots. It defaults to the process working directory.
	WorkDir string
}

// loggerSettings is implemented by loggers whose output can be reconfigured at runtime.
type loggerSettings interface {
	SetJSON(enable bool)
	SetDebug(enable bool)
}

// Build compiles every configured root once and, in watch mode, keeps watching them
// until ctx is canceled.
//
// Unit compile failures of a one-shot run are logged and reported as
// domain.ErrCompileFailed once every unit was tried. Cancellation of ctx never interrupts
// a one-shot run. Any other error is fatal.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return zerr.Wrap(err, "failed to get working directory")
		}
		workDir = wd
	}

	cfg, missing, err := a.loadConfig(opts, workDir)
	if err != nil {
		return err
	}
	if s, ok := a.logger.(loggerSettings); ok {
		s.SetJSON(cfg.LogFormat == domain.LogJSON)
		s.SetDebug(cfg.Debug)
	}
	if missing {
		a.logger.Warn("no " + domain.ConfigFileName + " found, using defaults")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	entries, err := cfg.Entries(workDir)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	serveCtx, stopServing := context.WithCancel(gctx)
	defer stopServing()

	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			return a.server.Serve(serveCtx, cfg.MetricsAddr)
		})
	}
	g.Go(func() error {
		defer stopServing()
		return a.run(gctx, cfg, entries, workDir)
	})
	return g.Wait()
}

// loadConfig merges defaults, the config file and the command line. missing reports
// that the default config file does not exist.
func (a *App) loadConfig(opts BuildOptions, workDir string) (cfg domain.Config, missing bool, err error) {
	path := opts.ConfigPath
	required := path != ""
	if path == "" {
		path = domain.ConfigFileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	cfg = domain.DefaultConfig()
	file, err := a.configLoader.Load(path)
	switch {
	case err == nil:
		cfg = cfg.Apply(file)
	case errors.Is(err, domain.ErrConfigNotFound) && !required:
		missing = true
	default:
		return cfg, false, err
	}

	return cfg.Apply(opts.Overrides), missing, nil
}

func (a *App) run(ctx context.Context, cfg domain.Config, entries []domain.EntryConfig, workDir string) error {
	tracer := a.tracer
	popts := pipeline.Options{PostProcess: cfg.PostProcess, WorkDir: workDir}

	if cfg.Debug {
		provider := telemetry.NewProvider(a.logger)
		otel.SetTracerProvider(provider)
		defer func() {
			_ = provider.Shutdown(context.WithoutCancel(ctx))
		}()
		tracer = telemetry.NewOTelTracerFrom(provider, telemetry.InstrumentationName)
		popts.Debug = a.debug
	}

	graph := domain.NewDependencyGraph()
	collector := &domain.ErrorCollector{}
	compiler := pipeline.NewCompiler(a.transformer, a.post, tracer, a.metrics, a.logger, popts)
	orch := orchestrator.NewOrchestrator(a.enumerator, fs.NewUnitFilter(cfg.Extensions), compiler, a.logger)

	if err := orch.Run(context.WithoutCancel(ctx), entries, graph, collector); err != nil {
		return err
	}
	failed := collector.Errors()
	for _, err := range failed {
		a.logger.Error(err)
	}

	if !cfg.Watch {
		a.writeGraph(cfg, graph)
		if len(failed) > 0 {
			return zerr.With(zerr.Wrap(domain.ErrCompileFailed, strconv.Itoa(len(failed))+" of the units failed"), "failed", len(failed))
		}
		return nil
	}

	coord := watch.NewCoordinator(a.watchers, compiler, graph, a.hasher, a.metrics, tracer, a.logger, cfg.Debounce)
	err := coord.Run(ctx, entries)
	a.writeGraph(cfg, graph)
	return err
}

func (a *App) writeGraph(cfg domain.Config, graph *domain.DependencyGraph) {
	if !cfg.Debug {
		return
	}
	if err := a.debug.WriteGraph(graph.Snapshot()); err != nil {
		a.logger.Warn("could not write debug artifact: " + err.Error())
	}
}

// Clean removes the debug artifacts of previous runs.
func (a *App) Clean(_ context.Context) error {
	a.logger.Info("removing debug artifacts...")
	if err := a.debug.Clean(); err != nil {
		return zerr.Wrap(err, "failed to remove debug artifacts")
	}
	a.logger.Info("removed debug artifacts")
	return nil
}
