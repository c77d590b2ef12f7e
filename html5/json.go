package html5

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON serializes the list as a JSON object whose keys appear in
// attribute order.
func (l AttributeList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(a.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(a.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores the list from a JSON object, preserving key
// order as encountered in the document.
func (l *AttributeList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("attributes: expected JSON object, got %v", tok)
	}
	out := (*l)[:0]
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("attributes: expected string key, got %v", keyTok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("attributes: value for %q: %w", key, err)
		}
		out.Set(key, value)
	}
	*l = out
	return nil
}

type jsonToken struct {
	Type        string        `json:"type"`
	Name        string        `json:"name,omitempty"`
	Attributes  AttributeList `json:"attributes,omitempty"`
	SelfClosing bool          `json:"self_closing,omitempty"`
	Data        string        `json:"data,omitempty"`
}

func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonToken{
		Type:        t.Type.String(),
		Name:        t.Name,
		Attributes:  t.Attributes,
		SelfClosing: t.SelfClosing,
		Data:        t.Data,
	})
}

func (t *Token) UnmarshalJSON(data []byte) error {
	var jt jsonToken
	if err := json.Unmarshal(data, &jt); err != nil {
		return err
	}
	typ, ok := LookupTokenType(jt.Type)
	if !ok {
		return fmt.Errorf("unknown token type %q", jt.Type)
	}
	t.Type = typ
	t.Name = jt.Name
	t.Attributes = jt.Attributes
	t.SelfClosing = jt.SelfClosing
	t.Data = jt.Data
	return nil
}

type jsonNode struct {
	Name       string        `json:"name,omitempty"`
	Attributes AttributeList `json:"attributes,omitempty"`
	Children   []*Node       `json:"children,omitempty"`
	Text       string        `json:"text,omitempty"`
}

// MarshalJSON serializes the node per the external TreeNode shape: name
// is present for elements and comments, text for text runs and comments;
// the document root carries neither. Parent is never serialized.
func (n *Node) MarshalJSON() ([]byte, error) {
	name := n.Name
	if n.IsText() || n.IsDocument() {
		name = ""
	}
	return json.Marshal(jsonNode{
		Name:       name,
		Attributes: n.Attributes,
		Children:   n.Children,
		Text:       n.Text,
	})
}

// UnmarshalJSON restores a node serialized by MarshalJSON, rebuilding
// the parent back-references of its children.
func (n *Node) UnmarshalJSON(data []byte) error {
	var jn jsonNode
	if err := json.Unmarshal(data, &jn); err != nil {
		return err
	}
	switch {
	case jn.Name != "":
		n.Name = jn.Name
	case jn.Text != "":
		n.Name = TextName
	default:
		n.Name = DocumentName
	}
	n.Attributes = jn.Attributes
	n.Text = jn.Text
	n.Children = jn.Children
	for _, child := range n.Children {
		child.Parent = n
	}
	return nil
}

type jsonEvent struct {
	Timestamp float64        `json:"timestamp"`
	Type      string         `json:"type"`
	Details   map[string]any `json:"details,omitempty"`
}

type jsonTrace struct {
	Events   []jsonEvent `json:"events"`
	Errors   []string    `json:"errors"`
	Duration float64     `json:"duration"`
}

// MarshalJSON serializes the trace with timestamps and duration in
// seconds, matching the shape consumed by reporting collaborators.
func (t *Trace) MarshalJSON() ([]byte, error) {
	events := make([]jsonEvent, len(t.Events))
	for i, ev := range t.Events {
		events[i] = jsonEvent{
			Timestamp: ev.Timestamp.Seconds(),
			Type:      string(ev.Type),
			Details:   ev.Details,
		}
	}
	errors := t.Errors
	if errors == nil {
		errors = []string{}
	}
	return json.Marshal(jsonTrace{
		Events:   events,
		Errors:   errors,
		Duration: t.Duration.Seconds(),
	})
}
