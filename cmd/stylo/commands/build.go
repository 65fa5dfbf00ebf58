package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stylo/internal/app"
	"go.trai.ch/stylo/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [source[:output]...]",
		Short: "Compile the given roots (the default command)",
		Args:  cobra.ArbitraryArgs,
		RunE:  c.runBuild,
	}
	addBuildFlags(cmd)
	return cmd
}

func addBuildFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("config", "c", "", "Path to the config file (default stylo.yaml)")
	flags.StringP("style", "s", string(domain.StyleExpanded), "Output style: expanded or compressed")
	flags.Bool("source-map", false, "Write a source map next to every output file")
	flags.BoolP("watch", "w", false, "Keep running and recompile on changes")
	flags.Bool("debug", false, "Enable debug logging and write debug artifacts to .stylo/debug")
	flags.StringSlice("ext", domain.DefaultExtensions(), "File extensions treated as entry units")
	flags.StringArrayP("load-path", "I", nil, "Additional directory to resolve imports from")
	flags.Duration("debounce", domain.DefaultDebounce, "Window in which watch events are coalesced")
	flags.String("metrics-addr", "", "Serve Prometheus metrics on this address")
	flags.String("log-format", string(domain.LogPretty), "Log format: pretty or json")
}

func (c *CLI) runBuild(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	return c.app.Build(cmd.Context(), app.BuildOptions{
		ConfigPath: configPath,
		Overrides:  overrides(cmd, args),
	})
}

// overrides collects the options given on the command line. Flags left at their default
// do not override the config file.
func overrides(cmd *cobra.Command, args []string) domain.ConfigOverrides {
	flags := cmd.Flags()
	var o domain.ConfigOverrides

	if len(args) > 0 {
		o.Roots = args
	}
	if flags.Changed("style") {
		v, _ := flags.GetString("style")
		o.Style = domain.Ptr(domain.OutputStyle(v))
	}
	if flags.Changed("source-map") {
		v, _ := flags.GetBool("source-map")
		o.SourceMap = &v
	}
	if flags.Changed("watch") {
		v, _ := flags.GetBool("watch")
		o.Watch = &v
	}
	if flags.Changed("debug") {
		v, _ := flags.GetBool("debug")
		o.Debug = &v
	}
	if flags.Changed("ext") {
		o.Extensions, _ = flags.GetStringSlice("ext")
	}
	if flags.Changed("load-path") {
		o.LoadPaths, _ = flags.GetStringArray("load-path")
	}
	if flags.Changed("debounce") {
		v, _ := flags.GetDuration("debounce")
		o.Debounce = &v
	}
	if flags.Changed("metrics-addr") {
		v, _ := flags.GetString("metrics-addr")
		o.MetricsAddr = &v
	}
	if flags.Changed("log-format") {
		v, _ := flags.GetString("log-format")
		o.LogFormat = domain.Ptr(domain.LogFormat(v))
	}
	return o
}
