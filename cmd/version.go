package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, Go version and tree-sitter binding version of auto-i18n.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("auto-i18n version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)

			for _, dep := range info.Deps {
				if dep.Path == "github.com/smacker/go-tree-sitter" {
					cmd.Println("tree-sitter\t", dep.Version)
				}
			}
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
