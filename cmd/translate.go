package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"autoi18n.dev/pkg/autoi18n/internal/adapter"
	"autoi18n.dev/pkg/autoi18n/internal/domain"
	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

// translateCmd represents the translate command.
var translateCmd = newTranslateCmd()

func newTranslateCmd() *cobra.Command {
	var (
		langs    []string
		apiKey   string
		model    string
		parallel int
	)

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate extracted keys using AI",
		Long: `Translate <locales>/<source>.json into every target language and write
<locales>/<lang>.json. Translations are cached by source text, so unchanged
text is never sent twice.

The API key is taken from --key, then the OPENAI_API_KEY environment variable
(a .env file in the working directory is loaded), then translate.api_key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets := langs
			if len(targets) == 0 {
				targets = viper.GetStringSlice(targetLangsKey)
			}

			if len(targets) == 0 {
				return fmt.Errorf("specify a target language with --%s or %s in %s", langFlagName, targetLangsKey, configFileName)
			}

			key := resolveAPIKey(apiKey, os.LookupEnv)
			if key == "" {
				return fmt.Errorf("%s is missing, provide it with --%s or the environment", apiKeyEnvVar, keyFlagName)
			}

			if !cmd.Flags().Changed(modelFlagName) {
				model = viper.GetString(translateModelKey)
			}

			if !cmd.Flags().Changed(parallelFlagName) {
				parallel = viper.GetInt(translateParallel)
			}

			return workflow.Translate(cmd.Context(), domain.TranslateArgs{
				LocalesDir:  m.Path(viper.GetString(localesDirKey)),
				SourceLang:  viper.GetString(sourceLangKey),
				TargetLangs: targets,
				Parallel:    parallel,
				Translator: adapter.NewChatTranslator(adapter.ChatTranslatorConfig{
					APIKey:  key,
					BaseURL: viper.GetString(translateBaseURLKey),
					Model:   model,
					Timeout: time.Duration(viper.GetInt(translateTimeoutKey)) * time.Second,
				}),
				Cache: openTranslationCache(),
			})
		},
	}

	cmd.Flags().StringArrayVarP(&langs, langFlagName, "l", nil, "target language code (can be repeated, overrides locales.targets)")
	cmd.Flags().StringVarP(&apiKey, keyFlagName, "k", "", "OpenAI API key (overrides env var and config)")
	cmd.Flags().StringVar(&model, modelFlagName, adapter.DefaultTranslatorModel, "chat model used for translation")
	cmd.Flags().IntVar(&parallel, parallelFlagName, defaultTranslateParallel, "number of languages translated concurrently")

	return cmd
}

func openTranslationCache() adapter.TranslationCache {
	path, err := adapter.DefaultCachePath()
	if err != nil {
		return nil
	}

	return adapter.NewFileTranslationCache(path)
}

func init() {
	rootCmd.AddCommand(translateCmd)
}
