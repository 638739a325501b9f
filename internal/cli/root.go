package cli

// root.go - root command wiring and logger setup

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version information, injected at build time via ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersion overrides the version information shown by --version.
// The main package calls this with values injected at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute builds the vtdump command tree and runs it with ctx.
// Cancelling ctx aborts the running command.
//
// Logging goes to stderr at info level, or debug level when --verbose
// is set. The logger is attached to the command context and retrieved
// by subcommands through loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:   "vtdump",
		Short: "vtdump inspects Mapbox Vector Tiles",
		Long: `vtdump decodes Mapbox Vector Tiles from files or mbtiles databases and
prints their layers, per-feature bounding boxes, full GeoJSON, or
whole-database statistics.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("vtdump %s (commit %s, built %s)\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLayersCmd())
	root.AddCommand(newBBoxCmd())
	root.AddCommand(newDumpCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newInfoCmd())

	return root.ExecuteContext(ctx)
}
