package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bottombar",
	Short: "Pinned bottom status region demos",
	Long: `Bottombar keeps a fixed-height status region pinned to the bottom of
the terminal while ordinary output scrolls above it.

Available commands:
  demo     - Progress dashboard over a stream of computed results
  logdemo  - Structured log records scrolling above a framed status region

When stdout is not a terminal both demos fall back to plain output with no
escape sequences.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(logDemoCmd)
}
