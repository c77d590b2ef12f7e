package ir

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Silvio777-hub/Agentic-HTML5-Parser/audit"
	"github.com/Silvio777-hub/Agentic-HTML5-Parser/html5"
)

func TestPreprocess(t *testing.T) {
	input := "# Title\nThis is a paragraph.\n- Item 1\n- Item 2\n\n  \nAnother paragraph."

	want := []Element{
		{Tag: "div", Attributes: html5.AttributeList{{Name: "class", Value: "header"}}, Content: "Title"},
		{Tag: "p", Content: "This is a paragraph."},
		{Tag: "li", Content: "Item 1"},
		{Tag: "li", Content: "Item 2"},
		{Tag: "p", Content: "Another paragraph."},
	}
	if diff := cmp.Diff(want, Preprocess(input)); diff != "" {
		t.Errorf("Preprocess (-want +got):\n%s", diff)
	}
}

func TestPreprocessEmptyInput(t *testing.T) {
	if got := Preprocess("   \n\n  "); len(got) != 0 {
		t.Errorf("Preprocess(blank) = %v, want none", got)
	}
}

func TestGenerate(t *testing.T) {
	elements := []Element{
		{Tag: "div", Attributes: html5.AttributeList{{Name: "class", Value: "header"}}, Content: "Title"},
		{Tag: "p", Content: "Body text."},
		{Tag: "li", Content: "Item 1"},
	}

	got := Generate(elements)
	want := "<!DOCTYPE html>\n<html>\n<body>\n" +
		"  <div class=\"header\">Title</div>\n" +
		"  <p>Body text.</p>\n" +
		"  <li>Item 1</li>\n" +
		"</body>\n</html>"
	if got != want {
		t.Errorf("Generate =\n%s\nwant\n%s", got, want)
	}
}

func TestGenerateDefaultsToParagraph(t *testing.T) {
	got := Generate([]Element{{Content: "untagged"}})
	if !strings.Contains(got, "<p>untagged</p>") {
		t.Errorf("Generate = %s, want untagged content wrapped in p", got)
	}
}

func TestGeneratedDocumentParsesCleanly(t *testing.T) {
	elements := Preprocess("# Heading\nFirst paragraph.\n- one\n- two")

	result, err := html5.ParseWithTrace(Generate(elements), html5.DefaultConfig())
	if err != nil {
		t.Fatalf("ParseWithTrace error: %v", err)
	}
	if len(result.Trace.Errors) != 0 {
		t.Fatalf("generated document is not clean: %v", result.Trace.Errors)
	}

	if n := len(audit.ByTag(result.Tree, "li")); n != 2 {
		t.Errorf("li elements = %d, want 2", n)
	}
	if n := len(audit.ByTag(result.Tree, "p")); n != 1 {
		t.Errorf("p elements = %d, want 1", n)
	}
	divs := audit.ByTag(result.Tree, "div")
	if len(divs) != 1 {
		t.Fatalf("div elements = %d, want 1", len(divs))
	}
	if class, _ := divs[0].Attributes.Get("class"); class != "header" {
		t.Errorf("div class = %q, want header", class)
	}
	if got := audit.TextContent(divs[0]); got != "Heading" {
		t.Errorf("div text = %q, want Heading", got)
	}
}
