// Package cmd provides the root command and CLI setup for auto-i18n.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"autoi18n.dev/pkg/autoi18n/internal/adapter"
	"autoi18n.dev/pkg/autoi18n/internal/controller"
	"autoi18n.dev/pkg/autoi18n/internal/domain"
	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

var sourceFileAdapter adapter.SourceFileAdapter
var fsAdapter adapter.SourceFSAdapter
var localeStore adapter.LocaleStore
var workflow domain.Workflow
var ui controller.UI

// includePatterns and excludePatterns filter the scanned files.
var includePatterns []string
var excludePatterns []string

var localesDirFlag string
var sourceLangFlag string
var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	sourceFileAdapter = adapter.NewLocalSourceFileAdapter()
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	localeStore = adapter.NewLocaleStore()
	workflow = domain.NewWorkflow(fsAdapter, sourceFileAdapter, localeStore, ui)
}

const dirArgHelp = `The optional [dir] argument is the project root to scan (default ".").
File selection uses doublestar globs relative to it:
  - **/*.{js,jsx,ts,tsx}   every component source (default include)
  - **/node_modules/**     excluded by default, with **/.next/** and **/dist/**`

const rootLongDescription = `auto-i18n finds user-facing text in React/Next.js components,
extracts it into a locale file, translates it with an AI model and rewrites
the components to look the text up through react-i18next.

` + dirArgHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "auto-i18n",
		Short:         "Zero-effort localization for React/Next.js",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringArrayVarP(&includePatterns, includeFlagName, "i", viper.GetStringSlice(includeConfigKey), "include files matching glob (can be repeated)")
	bindFlagToConfig(flags.Lookup(includeFlagName), includeConfigKey)

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching glob (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.StringVar(&localesDirFlag, localesFlagName, viper.GetString(localesDirKey), "directory holding <lang>.json locale files")
	bindFlagToConfig(flags.Lookup(localesFlagName), localesDirKey)

	flags.StringVar(&sourceLangFlag, sourceFlagName, viper.GetString(sourceLangKey), "language code of the extracted text")
	bindFlagToConfig(flags.Lookup(sourceFlagName), sourceLangKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// scanArgs builds the file selection from the optional [dir] argument and
// the configured globs.
func scanArgs(args []string) domain.ScanArgs {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	return domain.ScanArgs{
		Root:    m.Path(root),
		Include: viper.GetStringSlice(includeConfigKey),
		Exclude: viper.GetStringSlice(excludeConfigKey),
	}
}
