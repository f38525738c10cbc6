// Package main is the entry point for the auto-i18n CLI.
package main

import "autoi18n.dev/pkg/autoi18n/cmd"

func main() {
	cmd.Execute()
}
