package html5

import "fmt"

// implicitClosers maps a currently-open tag to the set of incoming start
// tags that close it before insertion. The rules are applied repeatedly
// against the top of the stack until none fires.
var implicitClosers = map[string]map[string]bool{
	"p": {
		"div": true, "blockquote": true, "section": true, "article": true,
		"nav": true, "aside": true, "header": true, "footer": true,
		"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	},
	"li": {
		"li": true,
	},
}

// treeBuilder folds a token sequence into an ownership tree using an
// explicit stack of open elements, root pushed first.
type treeBuilder struct {
	root   *Node
	open   []*Node
	halted bool

	gov   *governor
	trace *Trace
}

func newTreeBuilder(gov *governor, trace *Trace) *treeBuilder {
	root := &Node{Name: DocumentName}
	return &treeBuilder{
		root:  root,
		open:  []*Node{root},
		gov:   gov,
		trace: trace,
	}
}

// run consumes the token sequence and returns the root of the tree.
// Identical token sequences always yield identical trees.
func (b *treeBuilder) run(tokens []Token) *Node {
	b.trace.addEvent(EventTreeConstructionStart, map[string]any{"token_count": len(tokens)})

	for _, tok := range tokens {
		if b.halted {
			break
		}
		if err := b.gov.checkConsume(); err != nil {
			b.trace.addError(err.Error())
			break
		}
		switch tok.Type {
		case TokenEOF:
			b.halted = true
		case TokenStartTag:
			b.startTag(tok)
		case TokenEndTag:
			b.endTag(tok)
		case TokenCharacter:
			b.character(tok)
		case TokenComment:
			b.comment(tok)
		case TokenDoctype, TokenParseError:
			// Neither contributes structure. ParseError tokens were
			// already accounted for by the stage that produced them.
		}
	}

	// Document-end closure of whatever is still open, LIFO. This is
	// normal and records no error.
	b.open = b.open[:1]

	b.trace.addEvent(EventTreeConstructionComplete, map[string]any{
		"tree_depth": b.root.Depth(),
		"node_count": b.root.CountNodes(),
	})
	return b.root
}

func (b *treeBuilder) top() *Node {
	return b.open[len(b.open)-1]
}

func (b *treeBuilder) startTag(tok Token) {
	// Implicit closure: keep popping while a rule fires against the
	// current top of the stack.
	for len(b.open) > 1 {
		top := b.top()
		closers, ok := implicitClosers[top.Name]
		if !ok || !closers[tok.Name] {
			break
		}
		b.open = b.open[:len(b.open)-1]
		b.trace.addEvent(EventImplicitClosure, map[string]any{
			"closed":  top.Name,
			"trigger": tok.Name,
		})
	}

	node := &Node{Name: tok.Name, Attributes: tok.Attributes}

	if tok.SelfClosing || voidElements[tok.Name] {
		b.top().AppendChild(node)
		return
	}

	if err := b.gov.checkDepth(len(b.open) + 1); err != nil {
		b.trace.addError(err.Error())
		b.halted = true
		return
	}

	b.top().AppendChild(node)
	b.open = append(b.open, node)
}

func (b *treeBuilder) endTag(tok Token) {
	// Search the stack top-down for a matching open element; the root
	// is never a candidate.
	match := -1
	for i := len(b.open) - 1; i >= 1; i-- {
		if b.open[i].Name == tok.Name {
			match = i
			break
		}
	}
	if match == -1 {
		b.trace.addError(fmt.Sprintf("end tag </%s> has no matching open element", tok.Name))
		return
	}

	// Close everything above and including the match. Intervening
	// elements are closed implicitly rather than treated as a fatal
	// mismatch.
	for i := len(b.open) - 1; i > match; i-- {
		b.trace.addEvent(EventImplicitClosure, map[string]any{
			"closed":  b.open[i].Name,
			"trigger": "/" + tok.Name,
		})
	}
	b.open = b.open[:match]
}

func (b *treeBuilder) character(tok Token) {
	top := b.top()
	if last := top.LastChild(); last != nil && last.IsText() {
		last.Text += tok.Data
		return
	}
	top.AppendChild(&Node{Name: TextName, Text: tok.Data})
}

func (b *treeBuilder) comment(tok Token) {
	b.top().AppendChild(&Node{Name: CommentName, Text: tok.Data})
}
