package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/codelimit/internal/domain"
	m "github.com/mouse-blink/codelimit/internal/model"
)

var checkQuietFlag bool

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check paths...",
		Short: "Fail when files contain unmaintainable functions",
		Long: `Check measures the given files and directories without using the report
cache and exits with status 1 when any function is unmaintainable.
Suitable as a pre-commit hook.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(".")
			if err != nil {
				return err
			}

			paths := make([]m.Path, 0, len(args))
			for _, arg := range args {
				paths = append(paths, m.Path(arg))
			}

			return workflow.Check(cmd.Context(), domain.CheckArgs{
				Paths:  paths,
				Config: cfg,
				Quiet:  checkQuietFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&checkQuietFlag, "quiet", "q", false, "print nothing when the check passes")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
