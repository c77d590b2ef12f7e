// Package audit provides post-parse verification of the tree: selector
// queries, content-model checks, accessibility checks, and structural
// integrity limits.
package audit

import "github.com/Silvio777-hub/Agentic-HTML5-Parser/html5"

// ByID returns the first node (in pre-order) whose id attribute equals
// id, or nil if no such node exists.
func ByID(root *html5.Node, id string) *html5.Node {
	var found *html5.Node
	root.Walk(func(n *html5.Node) bool {
		if v, ok := n.Attributes.Get("id"); ok && v == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// ByTag returns all element nodes with the given tag name, in pre-order.
func ByTag(root *html5.Node, name string) []*html5.Node {
	var matches []*html5.Node
	root.Walk(func(n *html5.Node) bool {
		if n.Name == name {
			matches = append(matches, n)
		}
		return true
	})
	return matches
}

// TextContent returns the concatenated text of all text nodes in the
// subtree rooted at n, in document order.
func TextContent(n *html5.Node) string {
	var text string
	n.Walk(func(c *html5.Node) bool {
		if c.IsText() {
			text += c.Text
		}
		return true
	})
	return text
}
