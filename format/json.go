package format

import (
	"encoding/json"
	"io"

	"github.com/Silvio777-hub/Agentic-HTML5-Parser/html5"
)

type JSONEncoder struct {
	w      io.Writer
	result *html5.Result
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(result *html5.Result) error {
	e.result = result
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	view := struct {
		Tokens []html5.Token `json:"tokens,omitempty"`
		Tree   *html5.Node   `json:"tree,omitempty"`
		Trace  *html5.Trace  `json:"trace,omitempty"`
	}{
		Tokens: e.result.Tokens,
		Tree:   e.result.Tree,
		Trace:  e.result.Trace,
	}
	return json.MarshalIndent(view, "", "  ")
}
