package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/codelimit/internal/domain"
)

var reportFullFlag bool
var reportTotalsFlag bool
var reportFormatFlag string

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [path]",
		Short: "Show the stored report of a codebase",
		Long: `Report lists the functions above the hard-to-maintain threshold, longest
first, from the report written by the last scan of path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root := pathArg(args)

			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			return workflow.Report(domain.ReportArgs{
				Root:   root,
				Config: cfg,
				Full:   reportFullFlag,
				Totals: reportTotalsFlag,
				Format: reportFormatFlag,
			})
		},
	}
	cmd.Flags().BoolVar(&reportFullFlag, "full", false, "list every function instead of the longest ten")
	cmd.Flags().BoolVar(&reportTotalsFlag, "totals", false, "show totals per language")
	cmd.Flags().StringVar(&reportFormatFlag, "format", domain.FormatText, "output format: text or json")

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
