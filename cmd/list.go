package cmd

import (
	"github.com/spf13/cobra"

	"autoi18n.dev/pkg/autoi18n/internal/domain"
)

const listLongDescription = `List component files and the number of translatable strings in each.

` + dirArgHelp

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List files and translatable string counts",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{ScanArgs: scanArgs(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
