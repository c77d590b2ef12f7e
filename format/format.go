package format

import (
	"encoding"

	"github.com/Silvio777-hub/Agentic-HTML5-Parser/html5"
)

// Encoder renders a parse result to an output stream. Each encoder picks
// the artifacts it knows how to render; absent artifacts are skipped.
type Encoder interface {
	encoding.TextMarshaler
	Encode(result *html5.Result) error
}
