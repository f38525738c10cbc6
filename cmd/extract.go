package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"autoi18n.dev/pkg/autoi18n/internal/domain"
	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

const extractLongDescription = `Scan component sources, collect their static text and attribute values,
and write them to <locales>/<source>.json keyed by file scope.

` + dirArgHelp

// extractCmd represents the extract command.
var extractCmd = newExtractCmd()

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract [dir]",
		Short: "Extract static text from components",
		Long:  extractLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Extract(cmd.Context(), domain.ExtractArgs{
				ScanArgs:   scanArgs(args),
				LocalesDir: m.Path(viper.GetString(localesDirKey)),
				SourceLang: viper.GetString(sourceLangKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
