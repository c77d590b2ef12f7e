package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Silvio777-hub/Agentic-HTML5-Parser/format"
	"github.com/Silvio777-hub/Agentic-HTML5-Parser/html5"
)

func newTokenizeCmd() *cobra.Command {
	var outputFormat string
	var cfg *html5.Config

	cmd := &cobra.Command{
		Use:   "tokenize <file-or-markup>",
		Short: "Tokenize an HTML document and dump the token sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := readInput(args[0])
			if err != nil {
				return err
			}

			tokens, err := html5.Tokenize(markup, *cfg)
			if err != nil {
				return err
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "line":
				encoder = format.NewLineEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(&html5.Result{Tokens: tokens}); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cfg = budgetFlags(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (json, line)")

	return cmd
}
