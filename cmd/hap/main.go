package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hap",
		Short: "A forgiving HTML5 parsing toolkit",
	}

	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newTraceCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newAuditCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newUICmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
