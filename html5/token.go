package html5

import "fmt"

type TokenType int

const (
	TokenDoctype TokenType = iota
	TokenStartTag
	TokenEndTag
	TokenComment
	TokenCharacter
	TokenEOF
	TokenParseError
)

var tokenTypeNames = map[TokenType]string{
	TokenDoctype:    "DOCTYPE",
	TokenStartTag:   "StartTag",
	TokenEndTag:     "EndTag",
	TokenComment:    "Comment",
	TokenCharacter:  "Character",
	TokenEOF:        "EOF",
	TokenParseError: "ParseError",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// LookupTokenType resolves a serialized type name back to its TokenType.
func LookupTokenType(name string) (TokenType, bool) {
	for typ, n := range tokenTypeNames {
		if n == name {
			return typ, true
		}
	}
	return 0, false
}

// Attribute is a single name/value pair on a start tag. A valueless
// (boolean) attribute has an empty Value.
type Attribute struct {
	Name  string
	Value string
}

// AttributeList is an ordered mapping from attribute name to value.
// Names are unique; Set keeps the position of the first occurrence and
// the value of the last.
type AttributeList []Attribute

func (l AttributeList) Get(name string) (string, bool) {
	for _, a := range l {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (l *AttributeList) Set(name, value string) {
	for i, a := range *l {
		if a.Name == name {
			(*l)[i].Value = value
			return
		}
	}
	*l = append(*l, Attribute{Name: name, Value: value})
}

// Token is one lexical unit produced by the tokenizer.
//
// Name is set for DOCTYPE, StartTag and EndTag tokens. Attributes and
// SelfClosing are meaningful for StartTag tokens only. Data carries the
// payload of Character and Comment tokens and the message of ParseError
// tokens.
type Token struct {
	Type        TokenType
	Name        string
	Attributes  AttributeList
	SelfClosing bool
	Data        string
}

func (t Token) String() string {
	switch t.Type {
	case TokenCharacter:
		return fmt.Sprintf("Char(%q)", t.Data)
	case TokenStartTag:
		if t.SelfClosing {
			return fmt.Sprintf("<%s/>", t.Name)
		}
		return fmt.Sprintf("<%s>", t.Name)
	case TokenEndTag:
		return fmt.Sprintf("</%s>", t.Name)
	case TokenComment:
		return fmt.Sprintf("Comment(%q)", t.Data)
	case TokenParseError:
		return fmt.Sprintf("ParseError(%q)", t.Data)
	case TokenDoctype:
		return fmt.Sprintf("DOCTYPE(%s)", t.Name)
	}
	return t.Type.String()
}

// voidElements never have children and are never pushed onto the stack
// of open elements; self-closing is implied even without a trailing slash.
var voidElements = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
	"link":  true,
	"meta":  true,
}

// IsVoidElement reports whether tag names an element from the fixed
// void-element set.
func IsVoidElement(name string) bool {
	return voidElements[name]
}
