package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Silvio777-hub/Agentic-HTML5-Parser/format"
	"github.com/Silvio777-hub/Agentic-HTML5-Parser/html5"
)

func newTraceCmd() *cobra.Command {
	var cfg *html5.Config

	cmd := &cobra.Command{
		Use:   "trace <file-or-markup>",
		Short: "Parse an HTML document and dump tokens, tree and execution trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := readInput(args[0])
			if err != nil {
				return err
			}

			result, err := html5.ParseWithTrace(markup, *cfg)
			if err != nil {
				return err
			}

			if err := format.NewJSONEncoder(os.Stdout).Encode(result); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cfg = budgetFlags(cmd)

	return cmd
}
