// Package cmd provides the root command and CLI setup for codelimit.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/codelimit/internal/adapter"
	"github.com/mouse-blink/codelimit/internal/controller"
	"github.com/mouse-blink/codelimit/internal/domain"
	"github.com/mouse-blink/codelimit/internal/languages"
	m "github.com/mouse-blink/codelimit/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var configLoader adapter.ConfigLoader
var registry *languages.Registry
var workflow domain.Workflow
var ui controller.UI
var logLevel = new(slog.LevelVar)

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	configLoader = adapter.NewLocalConfigLoader()
	registry = languages.NewRegistry()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		registry,
		logger,
	)
}

var verboseFlag bool
var excludeFlags []string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codelimit",
		Short: "Find functions that are too long to maintain",
		Long: `CodeLimit measures the length of every function in a codebase and flags the
ones that are hard to maintain or unmaintainable.

Supported languages are detected by file extension; run "codelimit languages"
to list them. Thresholds, the suppression marker and exclude patterns can be
set in .codelimit.yaml or through CODELIMIT_* environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if verboseFlag {
				logLevel.Set(slog.LevelDebug)
			} else {
				logLevel.Set(slog.LevelWarn)
			}

			return nil
		},
	}
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log progress and skipped files to stderr")
	cmd.PersistentFlags().StringArrayVar(&excludeFlags, "exclude", nil, "exclude paths matching a glob (can be repeated)")
	cmd.Flags().BoolP("version", "V", false, "print the version and exit")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(version string) {
	rootCmd.Version = version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the configuration of root and adds the --exclude patterns.
func loadConfig(root m.Path) (m.Config, error) {
	cfg, err := configLoader.Load(root)
	if err != nil {
		return cfg, err
	}

	cfg.Excludes = append(cfg.Excludes, excludeFlags...)

	return cfg, adapter.Validate(cfg)
}

// pathArg returns the single optional path argument, defaulting to the working directory.
func pathArg(args []string) m.Path {
	if len(args) == 0 {
		return "."
	}

	return m.Path(args[0])
}
