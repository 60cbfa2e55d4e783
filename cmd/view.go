package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/codelimit/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [path]",
		Short: "Browse the stored report interactively",
		Long:  "Browse the functions of the last scan of path and show their source.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root := pathArg(args)

			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			return workflow.View(domain.ViewArgs{Root: root, Config: cfg})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
