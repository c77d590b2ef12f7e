package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Silvio777-hub/Agentic-HTML5-Parser/audit"
	"github.com/Silvio777-hub/Agentic-HTML5-Parser/format"
	"github.com/Silvio777-hub/Agentic-HTML5-Parser/html5"
)

func newQueryCmd() *cobra.Command {
	var byID string
	var byTag string
	var cfg *html5.Config

	cmd := &cobra.Command{
		Use:   "query <file-or-markup>",
		Short: "Search the parsed tree by id or tag name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if byID == "" && byTag == "" {
				return fmt.Errorf("must provide --id or --tag")
			}

			markup, err := readInput(args[0])
			if err != nil {
				return err
			}

			tree, err := html5.Parse(markup, *cfg)
			if err != nil {
				return err
			}

			var matches []*html5.Node
			if byID != "" {
				if n := audit.ByID(tree, byID); n != nil {
					matches = append(matches, n)
				}
			} else {
				matches = audit.ByTag(tree, byTag)
			}

			if len(matches) == 0 {
				return fmt.Errorf("no matching elements")
			}

			encoder := format.NewInspectEncoder(os.Stdout, false)
			for _, match := range matches {
				wrapper := &html5.Node{Name: html5.DocumentName}
				wrapper.Children = []*html5.Node{match}
				if err := encoder.Encode(&html5.Result{Tree: wrapper}); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			return nil
		},
	}

	cfg = budgetFlags(cmd)
	cmd.Flags().StringVar(&byID, "id", "", "select the element with this id")
	cmd.Flags().StringVar(&byTag, "tag", "", "select all elements with this tag name")

	return cmd
}
