package audit

import (
	"fmt"

	"github.com/Silvio777-hub/Agentic-HTML5-Parser/html5"
)

// IntegrityLimits are the structural bounds enforced by VerifyIntegrity.
// They are checked after parsing, independently of the parser's own
// budgets.
type IntegrityLimits struct {
	MaxDepth int
	MaxNodes int
}

func DefaultIntegrityLimits() IntegrityLimits {
	return IntegrityLimits{
		MaxDepth: 100,
		MaxNodes: 1000,
	}
}

// IntegrityReport describes whether a tree stays within its structural
// limits, along with the measured size.
type IntegrityReport struct {
	Valid     bool     `json:"valid"`
	NodeCount int      `json:"node_count"`
	MaxDepth  int      `json:"max_depth"`
	Issues    []string `json:"issues,omitempty"`
}

// VerifyIntegrity measures the tree and checks it against limits.
func VerifyIntegrity(root *html5.Node, limits IntegrityLimits) IntegrityReport {
	nodeCount := root.CountNodes()
	depth := root.Depth()

	var issues []string
	if nodeCount > limits.MaxNodes {
		issues = append(issues, fmt.Sprintf("node count (%d) exceeds limit (%d)", nodeCount, limits.MaxNodes))
	}
	if depth > limits.MaxDepth {
		issues = append(issues, fmt.Sprintf("tree depth (%d) exceeds limit (%d)", depth, limits.MaxDepth))
	}

	return IntegrityReport{
		Valid:     len(issues) == 0,
		NodeCount: nodeCount,
		MaxDepth:  depth,
		Issues:    issues,
	}
}
