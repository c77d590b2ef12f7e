package html5

import (
	"testing"
)

func mustTokenize(t *testing.T, markup string) []Token {
	t.Helper()
	tokens, err := Tokenize(markup, DefaultConfig())
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", markup, err)
	}
	return tokens
}

func tokensOfType(tokens []Token, typ TokenType) []Token {
	var out []Token
	for _, tok := range tokens {
		if tok.Type == typ {
			out = append(out, tok)
		}
	}
	return out
}

func TestTokenizeBasicTags(t *testing.T) {
	tokens := mustTokenize(t, "<p>Hello</p>")

	want := []Token{
		{Type: TokenStartTag, Name: "p"},
		{Type: TokenCharacter, Data: "Hello"},
		{Type: TokenEndTag, Name: "p"},
		{Type: TokenEOF},
	}
	if len(tokens) != len(want) {
		t.Fatalf("len(tokens) = %d, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		if tokens[i].Type != w.Type || tokens[i].Name != w.Name || tokens[i].Data != w.Data {
			t.Errorf("tokens[%d] = %v, want %v", i, tokens[i], w)
		}
	}
}

func TestTokenizeAttributes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  AttributeList
	}{
		{
			name:  "double quoted",
			input: `<a href="https://example.com">`,
			want:  AttributeList{{Name: "href", Value: "https://example.com"}},
		},
		{
			name:  "single quoted",
			input: `<a href='x y'>`,
			want:  AttributeList{{Name: "href", Value: "x y"}},
		},
		{
			name:  "unquoted",
			input: `<a href=plain>`,
			want:  AttributeList{{Name: "href", Value: "plain"}},
		},
		{
			name:  "boolean",
			input: `<input disabled>`,
			want:  AttributeList{{Name: "disabled", Value: ""}},
		},
		{
			name:  "boolean followed by valued",
			input: `<input disabled type="text">`,
			want: AttributeList{
				{Name: "disabled", Value: ""},
				{Name: "type", Value: "text"},
			},
		},
		{
			name:  "value after whitespace around equals",
			input: `<a href = "x">`,
			want:  AttributeList{{Name: "href", Value: "x"}},
		},
		{
			name:  "names lowered, values preserved",
			input: `<DIV CLASS="Main">`,
			want:  AttributeList{{Name: "class", Value: "Main"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mustTokenize(t, tt.input)
			starts := tokensOfType(tokens, TokenStartTag)
			if len(starts) != 1 {
				t.Fatalf("start tags = %d, want 1: %v", len(starts), tokens)
			}
			got := starts[0].Attributes
			if len(got) != len(tt.want) {
				t.Fatalf("attributes = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("attribute[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenizeDuplicateAttributeLastWins(t *testing.T) {
	tokens := mustTokenize(t, `<a href="1" href="2">`)
	starts := tokensOfType(tokens, TokenStartTag)
	if len(starts) != 1 {
		t.Fatalf("start tags = %d, want 1", len(starts))
	}
	attrs := starts[0].Attributes
	if len(attrs) != 1 {
		t.Fatalf("attributes = %v, want exactly one entry", attrs)
	}
	if got, _ := attrs.Get("href"); got != "2" {
		t.Errorf("href = %q, want %q", got, "2")
	}
}

func TestTokenizeVoidElements(t *testing.T) {
	tests := []struct {
		input string
		name  string
	}{
		{"<br>", "br"},
		{"<hr>", "hr"},
		{`<img src="x.png">`, "img"},
		{"<input>", "input"},
		{`<link rel="stylesheet">`, "link"},
		{"<meta>", "meta"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mustTokenize(t, tt.input)
			starts := tokensOfType(tokens, TokenStartTag)
			if len(starts) != 1 {
				t.Fatalf("start tags = %d, want 1", len(starts))
			}
			if !starts[0].SelfClosing {
				t.Errorf("SelfClosing = false for void element %s", tt.name)
			}
		})
	}
}

func TestTokenizeExplicitSelfClosing(t *testing.T) {
	tokens := mustTokenize(t, "<widget/>")
	starts := tokensOfType(tokens, TokenStartTag)
	if len(starts) != 1 || !starts[0].SelfClosing {
		t.Fatalf("want one self-closing start tag, got %v", tokens)
	}
}

func TestTokenizeComment(t *testing.T) {
	tokens := mustTokenize(t, "a<!-- note -->b")
	comments := tokensOfType(tokens, TokenComment)
	if len(comments) != 1 {
		t.Fatalf("comments = %d, want 1: %v", len(comments), tokens)
	}
	if comments[0].Data != " note " {
		t.Errorf("comment data = %q, want %q", comments[0].Data, " note ")
	}
	if len(tokensOfType(tokens, TokenParseError)) != 0 {
		t.Errorf("unexpected parse errors: %v", tokens)
	}
}

func TestTokenizeUnterminatedComment(t *testing.T) {
	tokens := mustTokenize(t, "<!-- dangling")
	comments := tokensOfType(tokens, TokenComment)
	if len(comments) != 1 || comments[0].Data != " dangling" {
		t.Fatalf("want comment with accumulated data, got %v", tokens)
	}
	if len(tokensOfType(tokens, TokenParseError)) != 1 {
		t.Errorf("want one parse error, got %v", tokens)
	}
}

func TestTokenizeBogusComment(t *testing.T) {
	tokens := mustTokenize(t, "<!foo>")
	if len(tokensOfType(tokens, TokenParseError)) != 1 {
		t.Errorf("want one parse error, got %v", tokens)
	}
	comments := tokensOfType(tokens, TokenComment)
	if len(comments) != 1 || comments[0].Data != "foo" {
		t.Errorf("want bogus comment token, got %v", tokens)
	}
}

func TestTokenizeBogusCommentResumesData(t *testing.T) {
	tokens := mustTokenize(t, "<!foo>bar<b>x</b>")

	// One bogus comment, then normal tokenization resumes; nothing loops.
	want := []Token{
		{Type: TokenParseError, Data: "incorrectly opened comment"},
		{Type: TokenComment, Data: "foo"},
		{Type: TokenCharacter, Data: "bar"},
		{Type: TokenStartTag, Name: "b"},
		{Type: TokenCharacter, Data: "x"},
		{Type: TokenEndTag, Name: "b"},
		{Type: TokenEOF},
	}
	if len(tokens) != len(want) {
		t.Fatalf("len(tokens) = %d, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		if tokens[i].Type != w.Type || tokens[i].Name != w.Name || tokens[i].Data != w.Data {
			t.Errorf("tokens[%d] = %v, want %v", i, tokens[i], w)
		}
	}
}

func TestTokenizeDoctype(t *testing.T) {
	for _, input := range []string{"<!DOCTYPE html>", "<!doctype html>"} {
		t.Run(input, func(t *testing.T) {
			tokens := mustTokenize(t, input)
			doctypes := tokensOfType(tokens, TokenDoctype)
			if len(doctypes) != 1 {
				t.Fatalf("doctypes = %d, want 1: %v", len(doctypes), tokens)
			}
			if doctypes[0].Name != "html" {
				t.Errorf("doctype name = %q, want %q", doctypes[0].Name, "html")
			}
		})
	}
}

func TestTokenizeStrayLessThan(t *testing.T) {
	tokens := mustTokenize(t, "a < b")

	if len(tokensOfType(tokens, TokenParseError)) != 1 {
		t.Fatalf("want one parse error, got %v", tokens)
	}
	chars := tokensOfType(tokens, TokenCharacter)
	if len(chars) != 1 || chars[0].Data != "a < b" {
		t.Errorf("want '<' re-interpreted as character data, got %v", tokens)
	}
}

func TestTokenizeUnterminatedTag(t *testing.T) {
	tokens := mustTokenize(t, "<div text")

	if len(tokensOfType(tokens, TokenParseError)) != 1 {
		t.Fatalf("want one parse error, got %v", tokens)
	}
	starts := tokensOfType(tokens, TokenStartTag)
	if len(starts) != 1 || starts[0].Name != "div" {
		t.Fatalf("want emitted div tag, got %v", tokens)
	}
	if _, ok := starts[0].Attributes.Get("text"); !ok {
		t.Errorf("want attribute data as parsed so far, got %v", starts[0].Attributes)
	}
}

func TestTokenizeUnterminatedQuotedValue(t *testing.T) {
	tokens := mustTokenize(t, `<a href="unfinished`)

	if len(tokensOfType(tokens, TokenParseError)) != 1 {
		t.Fatalf("want one parse error, got %v", tokens)
	}
	starts := tokensOfType(tokens, TokenStartTag)
	if len(starts) != 1 {
		t.Fatalf("want emitted a tag, got %v", tokens)
	}
	if got, _ := starts[0].Attributes.Get("href"); got != "unfinished" {
		t.Errorf("href = %q, want value closed with whatever was read", got)
	}
}

func TestTokenizeAlwaysEndsWithEOF(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"<p>ok</p>",
		"<div text",
		`<a href="x`,
		"< misplaced",
		"<!-- unterminated",
		"</",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tokens := mustTokenize(t, input)
			if len(tokens) == 0 {
				t.Fatal("empty token sequence")
			}
			if tokens[len(tokens)-1].Type != TokenEOF {
				t.Errorf("last token = %v, want EOF", tokens[len(tokens)-1])
			}
			if len(tokensOfType(tokens, TokenEOF)) != 1 {
				t.Errorf("want exactly one EOF token, got %v", tokens)
			}
		})
	}
}

func TestTokenizeCoalescesCharacterRuns(t *testing.T) {
	tokens := mustTokenize(t, "ab<b>cd</b>ef")
	chars := tokensOfType(tokens, TokenCharacter)
	want := []string{"ab", "cd", "ef"}
	if len(chars) != len(want) {
		t.Fatalf("character tokens = %v, want %v", chars, want)
	}
	for i, w := range want {
		if chars[i].Data != w {
			t.Errorf("chars[%d] = %q, want %q", i, chars[i].Data, w)
		}
	}
}

func TestTokenizeLowercasesTagNames(t *testing.T) {
	tokens := mustTokenize(t, "<DIV></DiV>")
	if tokens[0].Name != "div" || tokens[1].Name != "div" {
		t.Errorf("tag names not lowercased: %v", tokens)
	}
}
