package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command.
var configCmd = newConfigCmd()

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  "Print the configuration after merging defaults, " + configFileName + ", environment and flags.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := yaml.Marshal(effectiveConfig())
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}

			cmd.Print(string(out))

			return nil
		},
	}
}

// effectiveConfig returns viper's merged settings with secrets masked.
func effectiveConfig() map[string]interface{} {
	settings := viper.AllSettings()

	if section, ok := settings["translate"].(map[string]interface{}); ok {
		if key, ok := section["api_key"].(string); ok && key != "" {
			section["api_key"] = maskSecret(key)
		}
	}

	return settings
}

func maskSecret(secret string) string {
	const visible = 4
	if len(secret) <= visible {
		return strings.Repeat("*", len(secret))
	}

	return strings.Repeat("*", len(secret)-visible) + secret[len(secret)-visible:]
}

func init() {
	rootCmd.AddCommand(configCmd)
}
