package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Silvio777-hub/Agentic-HTML5-Parser/format"
	"github.com/Silvio777-hub/Agentic-HTML5-Parser/html5"
)

func newInspectCmd() *cobra.Command {
	var noColor bool
	var cfg *html5.Config

	cmd := &cobra.Command{
		Use:   "inspect <file-or-markup>",
		Short: "Render the parsed tree as a colorized outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := readInput(args[0])
			if err != nil {
				return err
			}

			tree, err := html5.Parse(markup, *cfg)
			if err != nil {
				return err
			}

			encoder := format.NewInspectEncoder(os.Stdout, !noColor)
			if err := encoder.Encode(&html5.Result{Tree: tree}); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cfg = budgetFlags(cmd)
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")

	return cmd
}
