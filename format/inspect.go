package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/Silvio777-hub/Agentic-HTML5-Parser/html5"
)

const (
	colorTag     = "\033[94m"
	colorAttrKey = "\033[92m"
	colorAttrVal = "\033[93m"
	colorComment = "\033[90m"
	colorReset   = "\033[0m"
)

// InspectEncoder renders the tree as an indented, optionally colorized
// outline for human inspection in a terminal.
type InspectEncoder struct {
	w      io.Writer
	color  bool
	result *html5.Result
}

func NewInspectEncoder(w io.Writer, color bool) *InspectEncoder {
	return &InspectEncoder{w: w, color: color}
}

func (e *InspectEncoder) Encode(result *html5.Result) error {
	e.result = result
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *InspectEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	if e.result.Tree != nil {
		for _, child := range e.result.Tree.Children {
			e.writeNode(&sb, child, 0)
		}
	}
	return []byte(sb.String()), nil
}

func (e *InspectEncoder) writeNode(sb *strings.Builder, n *html5.Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	switch {
	case n.IsText():
		text := strings.TrimSpace(n.Text)
		if text != "" {
			fmt.Fprintf(sb, "%s%s\n", prefix, text)
		}
	case n.IsComment():
		fmt.Fprintf(sb, "%s%s<!--%s-->%s\n", prefix, e.paint(colorComment), n.Text, e.paint(colorReset))
	default:
		sb.WriteString(prefix)
		fmt.Fprintf(sb, "%s<%s", e.paint(colorTag), n.Name)
		for _, attr := range n.Attributes {
			fmt.Fprintf(sb, " %s%s=%s\"%s\"",
				e.paint(colorAttrKey), attr.Name,
				e.paint(colorAttrVal), attr.Value,
			)
		}
		fmt.Fprintf(sb, "%s>%s\n", e.paint(colorTag), e.paint(colorReset))

		for _, child := range n.Children {
			e.writeNode(sb, child, indent+1)
		}

		fmt.Fprintf(sb, "%s%s</%s>%s\n", prefix, e.paint(colorTag), n.Name, e.paint(colorReset))
	}
}

func (e *InspectEncoder) paint(code string) string {
	if !e.color {
		return ""
	}
	return code
}
