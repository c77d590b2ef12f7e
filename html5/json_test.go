package html5

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTreeJSONRoundTrip(t *testing.T) {
	inputs := []string{
		"<p>Hello</p>",
		`<div id="app" class="main"><p>Text<div>Block</div></div>`,
		"<ul><li>a<li>b</ul><!--note-->",
		`<img src="x.png" alt="">tail`,
		"<div text",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tree := mustParse(t, input)

			data, err := json.Marshal(tree)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var restored Node
			if err := json.Unmarshal(data, &restored); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if diff := diffTree(tree, &restored); diff != "" {
				t.Errorf("round trip changed the tree (-original +restored):\n%s", diff)
			}
		})
	}
}

func TestTreeJSONRebuildsParents(t *testing.T) {
	tree := mustParse(t, "<div><p>x</p></div>")
	data, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var restored Node
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	div := restored.Children[0]
	if div.Parent != &restored {
		t.Error("child parent back-reference not rebuilt")
	}
	if div.Children[0].Parent != div {
		t.Error("grandchild parent back-reference not rebuilt")
	}
}

func TestAttributeOrderPreserved(t *testing.T) {
	attrs := AttributeList{
		{Name: "zeta", Value: "1"},
		{Name: "alpha", Value: "2"},
		{Name: "mid", Value: "3"},
	}
	data, err := json.Marshal(attrs)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(data), `{"zeta":"1","alpha":"2","mid":"3"}`; got != want {
		t.Fatalf("marshal = %s, want %s", got, want)
	}

	var restored AttributeList
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(restored) != len(attrs) {
		t.Fatalf("restored = %v, want %v", restored, attrs)
	}
	for i := range attrs {
		if restored[i] != attrs[i] {
			t.Errorf("restored[%d] = %+v, want %+v", i, restored[i], attrs[i])
		}
	}
}

func TestTokenJSONShape(t *testing.T) {
	tok := Token{
		Type: TokenStartTag,
		Name: "a",
		Attributes: AttributeList{
			{Name: "href", Value: "x"},
		},
		SelfClosing: true,
	}
	data, err := json.Marshal(tok)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var shape map[string]any
	if err := json.Unmarshal(data, &shape); err != nil {
		t.Fatalf("unmarshal shape: %v", err)
	}
	if shape["type"] != "StartTag" {
		t.Errorf("type = %v, want StartTag", shape["type"])
	}
	if shape["name"] != "a" {
		t.Errorf("name = %v, want a", shape["name"])
	}
	if shape["self_closing"] != true {
		t.Errorf("self_closing = %v, want true", shape["self_closing"])
	}

	var restored Token
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal token: %v", err)
	}
	if restored.Type != tok.Type || restored.Name != tok.Name || !restored.SelfClosing {
		t.Errorf("restored = %+v, want %+v", restored, tok)
	}
	if v, _ := restored.Attributes.Get("href"); v != "x" {
		t.Errorf("restored href = %q, want x", v)
	}
}

func TestCharacterTokenJSONOmitsTagFields(t *testing.T) {
	data, err := json.Marshal(Token{Type: TokenCharacter, Data: "hi"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	for _, unwanted := range []string{"name", "attributes", "self_closing"} {
		if strings.Contains(s, unwanted) {
			t.Errorf("character token JSON %s carries %q", s, unwanted)
		}
	}
}

func TestTraceJSONShape(t *testing.T) {
	result := mustParseWithTrace(t, "<div text")

	data, err := json.Marshal(result.Trace)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var shape struct {
		Events []struct {
			Timestamp float64        `json:"timestamp"`
			Type      string         `json:"type"`
			Details   map[string]any `json:"details"`
		} `json:"events"`
		Errors   []string `json:"errors"`
		Duration float64  `json:"duration"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		t.Fatalf("unmarshal shape: %v", err)
	}
	if len(shape.Events) == 0 {
		t.Error("serialized trace has no events")
	}
	if len(shape.Errors) != 1 {
		t.Errorf("serialized errors = %v, want one entry", shape.Errors)
	}
	if shape.Duration < 0 {
		t.Errorf("duration = %v, want non-negative", shape.Duration)
	}
	if shape.Events[0].Type != string(EventTokenizationStart) {
		t.Errorf("first event = %q, want %s", shape.Events[0].Type, EventTokenizationStart)
	}
}

func TestResultJSONIncludesAllArtifacts(t *testing.T) {
	result := mustParseWithTrace(t, "<p>x</p>")

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil {
		t.Fatalf("unmarshal shape: %v", err)
	}
	for _, key := range []string{"tokens", "tree", "trace"} {
		if _, ok := shape[key]; !ok {
			t.Errorf("serialized result missing %q", key)
		}
	}
}
