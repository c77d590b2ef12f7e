package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Silvio777-hub/Agentic-HTML5-Parser/html5"
)

// readInput treats arg as a file path when one exists, otherwise as a
// literal document. "-" reads standard input.
func readInput(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	if st, err := os.Stat(arg); err == nil && !st.IsDir() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", arg, err)
		}
		return string(data), nil
	}
	return arg, nil
}

// budgetFlags registers the resource budget flags on cmd and returns the
// config they fill in.
func budgetFlags(cmd *cobra.Command) *html5.Config {
	cfg := html5.DefaultConfig()
	cmd.Flags().DurationVar(&cfg.MaxParsingTime, "max-time", cfg.MaxParsingTime, "parsing time budget")
	cmd.Flags().IntVar(&cfg.MaxTreeDepth, "max-depth", cfg.MaxTreeDepth, "tree depth budget")
	cmd.Flags().IntVar(&cfg.MaxTokenCount, "max-tokens", cfg.MaxTokenCount, "token count budget")
	return &cfg
}
