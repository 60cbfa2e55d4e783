package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/codelimit/internal/domain"
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a codebase and store its report",
		Long: `Scan measures every function below path (default: the current directory),
stores the report in .codelimit_cache and prints totals per language.
Files whose checksum did not change since the last scan are not measured again.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := pathArg(args)

			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			return workflow.Scan(cmd.Context(), domain.ScanArgs{Root: root, Config: cfg})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
