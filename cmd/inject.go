package cmd

import (
	"github.com/spf13/cobra"

	"autoi18n.dev/pkg/autoi18n/internal/domain"
)

const injectLongDescription = `Replace extracted text in components with t('<key>') lookups, importing
useTranslation from react-i18next and calling it in the component body when
missing. Running it again on rewritten files changes nothing.

` + dirArgHelp

// injectCmd represents the inject command.
var injectCmd = newInjectCmd()

func newInjectCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "inject [dir]",
		Short: "Inject translation keys back into components",
		Long:  injectLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Inject(cmd.Context(), domain.InjectArgs{
				ScanArgs: scanArgs(args),
				DryRun:   dryRun,
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, dryRunFlagName, false, "print a diff instead of writing files")

	return cmd
}

func init() {
	rootCmd.AddCommand(injectCmd)
}
