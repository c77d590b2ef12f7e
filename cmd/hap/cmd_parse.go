package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Silvio777-hub/Agentic-HTML5-Parser/format"
	"github.com/Silvio777-hub/Agentic-HTML5-Parser/html5"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var cfg *html5.Config

	cmd := &cobra.Command{
		Use:   "parse <file-or-markup>",
		Short: "Parse an HTML document and dump the tree",
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

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewInspectEncoder(os.Stdout, false)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(&html5.Result{Tree: tree}); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cfg = budgetFlags(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")

	return cmd
}
