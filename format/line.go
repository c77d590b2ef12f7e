package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/Silvio777-hub/Agentic-HTML5-Parser/html5"
)

// LineEncoder renders the token sequence one token per line with
// tab-separated fields, a shape suited to grep and awk.
type LineEncoder struct {
	w      io.Writer
	result *html5.Result
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(result *html5.Result) error {
	e.result = result
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, tok := range e.result.Tokens {
		switch tok.Type {
		case html5.TokenStartTag, html5.TokenEndTag:
			fmt.Fprintf(&sb, "%s\t%s\t%s\t%s\n",
				tok.Type,
				tok.Name,
				attributesStr(tok.Attributes),
				selfClosingStr(tok.SelfClosing),
			)
		case html5.TokenCharacter, html5.TokenComment, html5.TokenParseError:
			fmt.Fprintf(&sb, "%s\t%s\n", tok.Type, escapeData(tok.Data))
		case html5.TokenDoctype:
			fmt.Fprintf(&sb, "%s\t%s\n", tok.Type, tok.Name)
		default:
			fmt.Fprintf(&sb, "%s\n", tok.Type)
		}
	}
	return []byte(sb.String()), nil
}

func attributesStr(attrs html5.AttributeList) string {
	if len(attrs) == 0 {
		return "-"
	}
	var parts []string
	for _, a := range attrs {
		parts = append(parts, a.Name+"="+a.Value)
	}
	return strings.Join(parts, ",")
}

func selfClosingStr(selfClosing bool) string {
	if selfClosing {
		return "self-closing"
	}
	return "-"
}

func escapeData(data string) string {
	data = strings.ReplaceAll(data, "\t", `\t`)
	return strings.ReplaceAll(data, "\n", `\n`)
}
