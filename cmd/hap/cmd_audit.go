package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Silvio777-hub/Agentic-HTML5-Parser/audit"
	"github.com/Silvio777-hub/Agentic-HTML5-Parser/html5"
)

type auditReport struct {
	Nesting       audit.NestingReport        `json:"nesting"`
	Accessibility []audit.AccessibilityIssue `json:"accessibility"`
	Integrity     audit.IntegrityReport      `json:"integrity"`
}

func newAuditCmd() *cobra.Command {
	var asJSON bool
	var maxDepth int
	var maxNodes int
	var cfg *html5.Config

	cmd := &cobra.Command{
		Use:          "audit <file-or-markup>",
		Short:        "Audit a document for content-model, accessibility and structural issues",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := readInput(args[0])
			if err != nil {
				return err
			}

			tree, err := html5.Parse(markup, *cfg)
			if err != nil {
				return err
			}

			report := auditReport{
				Nesting:       audit.AuditNesting(tree),
				Accessibility: audit.AuditAccessibility(tree),
				Integrity: audit.VerifyIntegrity(tree, audit.IntegrityLimits{
					MaxDepth: maxDepth,
					MaxNodes: maxNodes,
				}),
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			printAuditReport(report)

			if !report.Nesting.Passed() || len(report.Accessibility) > 0 || !report.Integrity.Valid {
				return errors.New("audit failed")
			}
			return nil
		},
	}

	limits := audit.DefaultIntegrityLimits()
	cfg = budgetFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the report as JSON")
	cmd.Flags().IntVar(&maxDepth, "integrity-depth", limits.MaxDepth, "structural depth limit")
	cmd.Flags().IntVar(&maxNodes, "integrity-nodes", limits.MaxNodes, "structural node count limit")

	return cmd
}

func printAuditReport(report auditReport) {
	fmt.Printf("content model: score %d/100\n", report.Nesting.Score)
	for _, v := range report.Nesting.Violations {
		fmt.Printf("  %s\n", v)
	}

	if len(report.Accessibility) == 0 {
		fmt.Println("accessibility: no issues")
	} else {
		fmt.Println("accessibility:")
		for _, issue := range report.Accessibility {
			fmt.Printf("  [%s] %s: %s\n", issue.Severity, issue.Element, issue.Issue)
		}
	}

	status := "ok"
	if !report.Integrity.Valid {
		status = "violated"
	}
	fmt.Printf("structure: %d nodes, depth %d (%s)\n",
		report.Integrity.NodeCount, report.Integrity.MaxDepth, status)
	for _, issue := range report.Integrity.Issues {
		fmt.Printf("  %s\n", issue)
	}
}
