package html5

import (
	"fmt"
	"strings"
	"unicode"
)

// tokenizerState enumerates the finite set of lexer states. The cursor
// only ever moves forward; the few places that need lookahead (</, <!--,
// <!DOCTYPE) peek a bounded number of runes without backtracking.
type tokenizerState int

const (
	stateData tokenizerState = iota
	stateTagOpen
	stateEndTagOpen
	stateTagName
	stateBeforeAttributeName
	stateAttributeName
	stateAfterAttributeName
	stateBeforeAttributeValue
	stateAttributeValueDoubleQuoted
	stateAttributeValueSingleQuoted
	stateAttributeValueUnquoted
	stateAfterAttributeValue
	stateSelfClosingStartTag
	stateMarkupDeclarationOpen
	stateComment
)

type tokenizer struct {
	input []rune
	pos   int
	state tokenizerState

	tokens []Token
	halted bool

	// pending constructs
	text      []rune // current character run
	tag       Token  // tag under construction
	inTag     bool
	attrName  []rune
	attrValue []rune
	comment   []rune

	gov   *governor
	trace *Trace
}

func newTokenizer(markup string, gov *governor, trace *Trace) *tokenizer {
	return &tokenizer{
		input: []rune(markup),
		state: stateData,
		gov:   gov,
		trace: trace,
	}
}

func (t *tokenizer) current() (rune, bool) {
	if t.pos >= len(t.input) {
		return 0, false
	}
	return t.input[t.pos], true
}

func (t *tokenizer) peek(n int) rune {
	if t.pos+n >= len(t.input) {
		return 0
	}
	return t.input[t.pos+n]
}

func (t *tokenizer) advance() {
	if t.pos < len(t.input) {
		t.pos++
	}
}

// hasPrefixFold reports whether the input at the cursor starts with
// prefix, ASCII case-insensitively.
func (t *tokenizer) hasPrefixFold(prefix string) bool {
	if t.pos+len(prefix) > len(t.input) {
		return false
	}
	return strings.EqualFold(string(t.input[t.pos:t.pos+len(prefix)]), prefix)
}

// run drives the state machine over the whole input and returns the
// token sequence, which always ends with exactly one EOF token.
func (t *tokenizer) run() []Token {
	t.trace.addEvent(EventTokenizationStart, map[string]any{"length": len(t.input)})

	for !t.halted {
		c, ok := t.current()
		switch t.state {
		case stateData:
			t.dataState(c, ok)
		case stateTagOpen:
			t.tagOpenState(c, ok)
		case stateEndTagOpen:
			t.endTagOpenState(c, ok)
		case stateTagName:
			t.tagNameState(c, ok)
		case stateBeforeAttributeName:
			t.beforeAttributeNameState(c, ok)
		case stateAttributeName:
			t.attributeNameState(c, ok)
		case stateAfterAttributeName:
			t.afterAttributeNameState(c, ok)
		case stateBeforeAttributeValue:
			t.beforeAttributeValueState(c, ok)
		case stateAttributeValueDoubleQuoted:
			t.attributeValueQuotedState(c, ok, '"')
		case stateAttributeValueSingleQuoted:
			t.attributeValueQuotedState(c, ok, '\'')
		case stateAttributeValueUnquoted:
			t.attributeValueUnquotedState(c, ok)
		case stateAfterAttributeValue:
			t.afterAttributeValueState(c, ok)
		case stateSelfClosingStartTag:
			t.selfClosingStartTagState(c, ok)
		case stateMarkupDeclarationOpen:
			t.markupDeclarationOpenState()
		case stateComment:
			t.commentState(c, ok)
		}
	}

	t.trace.addEvent(EventTokenizationComplete, map[string]any{"token_count": len(t.tokens)})
	return t.tokens
}

func (t *tokenizer) dataState(c rune, ok bool) {
	switch {
	case !ok:
		t.flushText()
		t.finish()
	case c == '<':
		t.advance()
		t.state = stateTagOpen
	default:
		t.text = append(t.text, c)
		t.advance()
	}
}

func (t *tokenizer) tagOpenState(c rune, ok bool) {
	switch {
	case !ok:
		t.parseError("unexpected end of input after '<'")
		t.text = append(t.text, '<')
		t.state = stateData
	case c == '/':
		t.advance()
		t.state = stateEndTagOpen
	case c == '!':
		t.advance()
		t.state = stateMarkupDeclarationOpen
	case isASCIILetter(c):
		t.flushText()
		t.tag = Token{Type: TokenStartTag}
		t.inTag = true
		t.state = stateTagName
	default:
		// Stray '<': re-interpret it as literal character data and
		// resume in data state at the same position.
		t.parseError(fmt.Sprintf("unexpected character %q after '<'", c))
		t.text = append(t.text, '<')
		t.state = stateData
	}
}

func (t *tokenizer) endTagOpenState(c rune, ok bool) {
	switch {
	case !ok:
		t.parseError("unexpected end of input after '</'")
		t.text = append(t.text, '<', '/')
		t.state = stateData
	case isASCIILetter(c):
		t.flushText()
		t.tag = Token{Type: TokenEndTag}
		t.inTag = true
		t.state = stateTagName
	default:
		t.parseError(fmt.Sprintf("expected tag name after '</', got %q", c))
		t.text = append(t.text, '<', '/')
		t.state = stateData
	}
}

func (t *tokenizer) tagNameState(c rune, ok bool) {
	switch {
	case !ok:
		t.eofInTag()
	case c == '>':
		t.advance()
		t.emitTag()
		t.state = stateData
	case c == '/':
		t.advance()
		t.state = stateSelfClosingStartTag
	case isWhitespace(c):
		t.advance()
		t.state = stateBeforeAttributeName
	default:
		t.tag.Name += string(unicode.ToLower(c))
		t.advance()
	}
}

func (t *tokenizer) beforeAttributeNameState(c rune, ok bool) {
	switch {
	case !ok:
		t.eofInTag()
	case isWhitespace(c):
		t.advance()
	case c == '>':
		t.advance()
		t.emitTag()
		t.state = stateData
	case c == '/':
		t.advance()
		t.state = stateSelfClosingStartTag
	default:
		t.attrName = append(t.attrName[:0], unicode.ToLower(c))
		t.attrValue = t.attrValue[:0]
		t.advance()
		t.state = stateAttributeName
	}
}

func (t *tokenizer) attributeNameState(c rune, ok bool) {
	switch {
	case !ok:
		t.commitAttribute()
		t.eofInTag()
	case isWhitespace(c):
		t.advance()
		t.state = stateAfterAttributeName
	case c == '=':
		t.advance()
		t.state = stateBeforeAttributeValue
	case c == '>':
		t.commitAttribute()
		t.advance()
		t.emitTag()
		t.state = stateData
	case c == '/':
		t.commitAttribute()
		t.advance()
		t.state = stateSelfClosingStartTag
	default:
		t.attrName = append(t.attrName, unicode.ToLower(c))
		t.advance()
	}
}

func (t *tokenizer) afterAttributeNameState(c rune, ok bool) {
	switch {
	case !ok:
		t.commitAttribute()
		t.eofInTag()
	case isWhitespace(c):
		t.advance()
	case c == '=':
		t.advance()
		t.state = stateBeforeAttributeValue
	case c == '>':
		t.commitAttribute()
		t.advance()
		t.emitTag()
		t.state = stateData
	case c == '/':
		t.commitAttribute()
		t.advance()
		t.state = stateSelfClosingStartTag
	default:
		// Previous attribute was valueless; a new one begins here.
		t.commitAttribute()
		t.attrName = append(t.attrName[:0], unicode.ToLower(c))
		t.attrValue = t.attrValue[:0]
		t.advance()
		t.state = stateAttributeName
	}
}

func (t *tokenizer) beforeAttributeValueState(c rune, ok bool) {
	switch {
	case !ok:
		t.commitAttribute()
		t.eofInTag()
	case isWhitespace(c):
		t.advance()
	case c == '"':
		t.advance()
		t.state = stateAttributeValueDoubleQuoted
	case c == '\'':
		t.advance()
		t.state = stateAttributeValueSingleQuoted
	case c == '>':
		t.parseError(fmt.Sprintf("missing value for attribute %q", string(t.attrName)))
		t.commitAttribute()
		t.advance()
		t.emitTag()
		t.state = stateData
	default:
		t.attrValue = append(t.attrValue, c)
		t.advance()
		t.state = stateAttributeValueUnquoted
	}
}

func (t *tokenizer) attributeValueQuotedState(c rune, ok bool, quote rune) {
	switch {
	case !ok:
		// Close the value with whatever was read and emit the tag.
		t.parseError(fmt.Sprintf("unterminated quoted value for attribute %q", string(t.attrName)))
		t.commitAttribute()
		t.emitTag()
		t.finish()
	case c == quote:
		t.commitAttribute()
		t.advance()
		t.state = stateAfterAttributeValue
	default:
		t.attrValue = append(t.attrValue, c)
		t.advance()
	}
}

func (t *tokenizer) attributeValueUnquotedState(c rune, ok bool) {
	switch {
	case !ok:
		t.commitAttribute()
		t.eofInTag()
	case isWhitespace(c):
		t.commitAttribute()
		t.advance()
		t.state = stateBeforeAttributeName
	case c == '>':
		t.commitAttribute()
		t.advance()
		t.emitTag()
		t.state = stateData
	default:
		t.attrValue = append(t.attrValue, c)
		t.advance()
	}
}

func (t *tokenizer) afterAttributeValueState(c rune, ok bool) {
	switch {
	case !ok:
		t.eofInTag()
	case isWhitespace(c):
		t.advance()
		t.state = stateBeforeAttributeName
	case c == '>':
		t.advance()
		t.emitTag()
		t.state = stateData
	case c == '/':
		t.advance()
		t.state = stateSelfClosingStartTag
	default:
		t.parseError("missing whitespace between attributes")
		t.state = stateBeforeAttributeName
	}
}

func (t *tokenizer) selfClosingStartTagState(c rune, ok bool) {
	switch {
	case !ok:
		t.eofInTag()
	case c == '>':
		t.tag.SelfClosing = true
		t.advance()
		t.emitTag()
		t.state = stateData
	default:
		t.parseError(fmt.Sprintf("unexpected character %q after '/' in tag", c))
		t.state = stateBeforeAttributeName
	}
}

// markupDeclarationOpenState routes '<!' to a comment, a DOCTYPE, or a
// bogus comment. This is the one place with multi-rune lookahead, and it
// is bounded by len("DOCTYPE").
func (t *tokenizer) markupDeclarationOpenState() {
	switch {
	case t.hasPrefixFold("--"):
		t.advance()
		t.advance()
		t.flushText()
		t.comment = t.comment[:0]
		t.state = stateComment
	case t.hasPrefixFold("doctype"):
		for i := 0; i < len("doctype"); i++ {
			t.advance()
		}
		t.flushText()
		t.doctype()
		t.state = stateData
	default:
		// Bogus comment: everything up to the next '>' becomes
		// comment data.
		t.parseError("incorrectly opened comment")
		t.flushText()
		t.comment = t.comment[:0]
		for {
			c, ok := t.current()
			if !ok {
				break
			}
			t.advance()
			if c == '>' {
				break
			}
			t.comment = append(t.comment, c)
		}
		t.emit(Token{Type: TokenComment, Data: string(t.comment)})
		t.state = stateData
	}
}

// doctype consumes the remainder of a '<!DOCTYPE' declaration. The name
// is whatever sits between the keyword and the closing bracket.
func (t *tokenizer) doctype() {
	var name []rune
	for {
		c, ok := t.current()
		if !ok {
			t.parseError("unterminated DOCTYPE")
			break
		}
		t.advance()
		if c == '>' {
			break
		}
		name = append(name, unicode.ToLower(c))
	}
	t.emit(Token{Type: TokenDoctype, Name: strings.TrimFunc(string(name), isWhitespace)})
}

func (t *tokenizer) commentState(c rune, ok bool) {
	switch {
	case !ok:
		t.parseError("unterminated comment")
		t.emit(Token{Type: TokenComment, Data: string(t.comment)})
		t.finish()
	case c == '-' && t.peek(1) == '-' && t.peek(2) == '>':
		t.advance()
		t.advance()
		t.advance()
		t.emit(Token{Type: TokenComment, Data: string(t.comment)})
		t.state = stateData
	default:
		t.comment = append(t.comment, c)
		t.advance()
	}
}

// commitAttribute moves the pending attribute onto the tag under
// construction. On a duplicate name the last occurrence wins while the
// position of the first is kept.
func (t *tokenizer) commitAttribute() {
	if len(t.attrName) == 0 {
		return
	}
	t.tag.Attributes.Set(string(t.attrName), string(t.attrValue))
	t.attrName = t.attrName[:0]
	t.attrValue = t.attrValue[:0]
}

// eofInTag handles end of input with a tag still under construction: the
// tag is emitted with whatever was accumulated and one parse error is
// recorded.
func (t *tokenizer) eofInTag() {
	t.parseError(fmt.Sprintf("unterminated tag <%s>: missing '>' before end of input", t.tag.Name))
	t.emitTag()
	t.finish()
}

func (t *tokenizer) emitTag() {
	if !t.inTag {
		return
	}
	tag := t.tag
	t.tag = Token{}
	t.inTag = false
	if tag.Type == TokenStartTag && voidElements[tag.Name] {
		tag.SelfClosing = true
	}
	t.emit(tag)
}

// flushText emits the pending character run, if any, as one coalesced
// Character token.
func (t *tokenizer) flushText() {
	if len(t.text) == 0 {
		return
	}
	data := string(t.text)
	t.text = t.text[:0]
	t.emit(Token{Type: TokenCharacter, Data: data})
}

// parseError records a recovered malformed-input condition and emits a
// ParseError token at the current point in the sequence.
func (t *tokenizer) parseError(msg string) {
	t.trace.addError(msg)
	t.emit(Token{Type: TokenParseError, Data: msg})
}

// emit appends one token after consulting the governor. On a budget
// violation the token is dropped and the sequence is terminated early
// with an EOF token.
func (t *tokenizer) emit(tok Token) {
	if t.halted {
		return
	}
	if err := t.gov.checkEmit(); err != nil {
		t.trace.addError(err.Error())
		t.finish()
		return
	}
	t.tokens = append(t.tokens, tok)
	details := map[string]any{"type": tok.Type.String()}
	switch tok.Type {
	case TokenStartTag, TokenEndTag, TokenDoctype:
		details["name"] = tok.Name
	case TokenCharacter, TokenComment:
		// Record only the length, not the payload, so pathological
		// inputs cannot blow up the trace.
		details["length"] = len(tok.Data)
	}
	t.trace.addEvent(EventTokenEmitted, details)
}

// finish terminates the sequence with exactly one EOF token and halts
// the state machine.
func (t *tokenizer) finish() {
	if !t.halted {
		t.tokens = append(t.tokens, Token{Type: TokenEOF})
		t.halted = true
	}
}

func isASCIILetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Whitespace per the markup grammar: TAB, LF, FF, CR or SPACE.
func isWhitespace(c rune) bool {
	return c == '\t' || c == '\n' || c == '\f' || c == '\r' || c == ' '
}
