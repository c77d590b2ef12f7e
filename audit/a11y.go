package audit

import (
	"strings"

	"github.com/Silvio777-hub/Agentic-HTML5-Parser/html5"
)

type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityWarning  Severity = "WARNING"
)

// AccessibilityIssue describes one accessibility defect found in the
// tree. NodeID carries the offending element's id attribute when it has
// one.
type AccessibilityIssue struct {
	Element  string   `json:"element"`
	Issue    string   `json:"issue"`
	Severity Severity `json:"severity"`
	NodeID   string   `json:"node_id,omitempty"`
}

var headingNames = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// AuditAccessibility scans the tree for common accessibility defects:
// images without meaningful alt text and headings without content.
func AuditAccessibility(root *html5.Node) []AccessibilityIssue {
	var issues []AccessibilityIssue
	root.Walk(func(n *html5.Node) bool {
		switch {
		case n.Name == "img":
			if alt, ok := n.Attributes.Get("alt"); !ok || strings.TrimSpace(alt) == "" {
				issues = append(issues, issueFor(n, "missing 'alt' attribute", SeverityCritical))
			}
		case headingNames[n.Name]:
			if strings.TrimSpace(TextContent(n)) == "" {
				issues = append(issues, issueFor(n, "empty heading", SeverityWarning))
			}
		}
		return true
	})
	return issues
}

func issueFor(n *html5.Node, issue string, severity Severity) AccessibilityIssue {
	id, _ := n.Attributes.Get("id")
	return AccessibilityIssue{
		Element:  n.Name,
		Issue:    issue,
		Severity: severity,
		NodeID:   id,
	}
}
