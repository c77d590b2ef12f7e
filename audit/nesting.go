package audit

import (
	"fmt"

	"github.com/Silvio777-hub/Agentic-HTML5-Parser/html5"
)

// forbiddenChildren maps a parent tag to the tags it must not contain
// directly. The recovering parser accepts such markup; the auditor
// reports it after the fact.
var forbiddenChildren = map[string]map[string]bool{
	"p": {
		"div":        true,
		"p":          true,
		"blockquote": true,
		"header":     true,
		"footer":     true,
		"section":    true,
		"article":    true,
	},
	"ul": {
		"p":   true,
		"div": true,
	},
	"li": {
		"header": true,
		"footer": true,
	},
}

// NestingViolation records one forbidden parent/child pairing.
type NestingViolation struct {
	Parent string `json:"parent"`
	Child  string `json:"child"`
}

func (v NestingViolation) String() string {
	return fmt.Sprintf("invalid nesting: <%s> inside <%s>", v.Child, v.Parent)
}

// NestingReport is the outcome of a content-model audit. Score starts at
// 100 and loses 10 points per violation, floored at zero.
type NestingReport struct {
	Score      int                `json:"score"`
	Violations []NestingViolation `json:"violations"`
}

func (r NestingReport) Passed() bool { return r.Score == 100 }

// AuditNesting checks every parent/child pair in the tree against the
// content-model rules and returns a scored report.
func AuditNesting(root *html5.Node) NestingReport {
	var violations []NestingViolation
	root.Walk(func(n *html5.Node) bool {
		forbidden := forbiddenChildren[n.Name]
		if forbidden == nil {
			return true
		}
		for _, child := range n.Children {
			if forbidden[child.Name] {
				violations = append(violations, NestingViolation{Parent: n.Name, Child: child.Name})
			}
		}
		return true
	})

	score := 100 - 10*len(violations)
	if score < 0 {
		score = 0
	}
	return NestingReport{Score: score, Violations: violations}
}
