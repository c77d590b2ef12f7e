package html5

import "strings"

// Reserved node names for the non-element node kinds. Element nodes use
// their (lowercased) tag name.
const (
	DocumentName = "#document"
	TextName     = "#text"
	CommentName  = "#comment"
)

// Node is one node of the ownership tree: the document root, an element,
// a text run, or a comment. Children are exclusively owned by their
// parent; Parent is a non-owning back-reference used only for navigation,
// never for ownership or traversal termination.
type Node struct {
	Name       string
	Attributes AttributeList
	Children   []*Node
	Text       string
	Parent     *Node
}

func (n *Node) IsDocument() bool { return n.Name == DocumentName }
func (n *Node) IsText() bool     { return n.Name == TextName }
func (n *Node) IsComment() bool  { return n.Name == CommentName }

func (n *Node) IsElement() bool {
	return n.Name != "" && !strings.HasPrefix(n.Name, "#")
}

// AppendChild adds child as the last child of n and sets its parent
// back-reference.
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

// LastChild returns the last child of n, or nil if n has none.
func (n *Node) LastChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// Walk visits n and its descendants in pre-order. Returning false from
// visit stops the walk.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}

// Depth returns the height of the subtree rooted at n, counting n itself.
func (n *Node) Depth() int {
	max := 0
	for _, child := range n.Children {
		if d := child.Depth(); d > max {
			max = d
		}
	}
	return 1 + max
}

// CountNodes returns the number of nodes in the subtree rooted at n,
// counting n itself.
func (n *Node) CountNodes() int {
	total := 1
	for _, child := range n.Children {
		total += child.CountNodes()
	}
	return total
}

func (n *Node) String() string {
	var sb strings.Builder
	n.stringIndent(&sb, 0)
	return sb.String()
}

func (n *Node) stringIndent(sb *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
	sb.WriteString(n.Name)
	for _, a := range n.Attributes {
		sb.WriteString(" ")
		sb.WriteString(a.Name)
		sb.WriteString("=")
		sb.WriteString(strings.ReplaceAll(a.Value, "\n", `\n`))
	}
	if n.Text != "" {
		sb.WriteString(" ")
		sb.WriteString(strings.ReplaceAll(n.Text, "\n", `\n`))
	}
	sb.WriteString("\n")
	for _, child := range n.Children {
		child.stringIndent(sb, indent+1)
	}
}
