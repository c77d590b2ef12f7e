package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Silvio777-hub/Agentic-HTML5-Parser/ir"
)

func newRenderCmd() *cobra.Command {
	var showIR bool

	cmd := &cobra.Command{
		Use:   "render <file-or-text>",
		Short: "Convert plain text into an HTML5 document",
		Long: `Convert plain text into an HTML5 document through the intermediate
representation: lines starting with '#' become headers, lines starting
with '-' become list items, everything else becomes a paragraph.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args[0])
			if err != nil {
				return err
			}

			elements := ir.Preprocess(text)

			if showIR {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(elements)
			}

			fmt.Println(ir.Generate(elements))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showIR, "ir", false, "dump the intermediate representation instead of HTML")

	return cmd
}
