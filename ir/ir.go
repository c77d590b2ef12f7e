// Package ir turns plain text into an intermediate representation of
// HTML elements and renders that representation back out as a complete
// HTML5 document.
package ir

import (
	"fmt"
	"strings"

	"github.com/Silvio777-hub/Agentic-HTML5-Parser/html5"
)

// Element is one flat entry of the intermediate representation: a tag,
// its attributes, and its text content.
type Element struct {
	Tag        string              `json:"tag"`
	Attributes html5.AttributeList `json:"attributes,omitempty"`
	Content    string              `json:"content"`
}

// Preprocess converts text into IR line by line: lines starting with '#'
// become header divs, lines starting with '-' become list items, and
// everything else becomes a paragraph. Blank lines are skipped.
func Preprocess(text string) []Element {
	var elements []Element
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "#"):
			elements = append(elements, Element{
				Tag:        "div",
				Attributes: html5.AttributeList{{Name: "class", Value: "header"}},
				Content:    strings.TrimSpace(strings.TrimLeft(line, "#")),
			})
		case strings.HasPrefix(line, "-"):
			elements = append(elements, Element{
				Tag:     "li",
				Content: strings.TrimSpace(strings.TrimLeft(line, "-")),
			})
		default:
			elements = append(elements, Element{Tag: "p", Content: line})
		}
	}
	return elements
}

// Generate renders IR into a complete HTML5 document with one element
// per line inside the body.
func Generate(elements []Element) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<body>\n")
	for _, el := range elements {
		tag := el.Tag
		if tag == "" {
			tag = "p"
		}
		sb.WriteString("  <")
		sb.WriteString(tag)
		for _, attr := range el.Attributes {
			fmt.Fprintf(&sb, " %s=\"%s\"", attr.Name, attr.Value)
		}
		sb.WriteString(">")
		sb.WriteString(el.Content)
		sb.WriteString("</")
		sb.WriteString(tag)
		sb.WriteString(">\n")
	}
	sb.WriteString("</body>\n</html>")
	return sb.String()
}
