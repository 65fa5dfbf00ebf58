// Package main is the entry point for the stylo style-sheet compiler.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylo/cmd/stylo/commands"
	"go.trai.ch/stylo/internal/app"
	"go.trai.ch/stylo/internal/core/domain"
	_ "go.trai.ch/stylo/internal/wiring"
)

const (
	exitFatal        = 1
	exitCompileError = 2
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, resolveComponents))
}

func resolveComponents(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, func() {}, err
}

func run(ctx context.Context, args []string, stderr io.Writer, provider ComponentProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitFatal
	}
	defer cleanup()

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		// Unit errors were already reported one by one.
		if errors.Is(err, domain.ErrCompileFailed) {
			return exitCompileError
		}
		components.Logger.Error(err)
		return exitFatal
	}
	return 0
}
