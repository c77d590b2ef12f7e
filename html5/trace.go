package html5

import "time"

// EventType labels one kind of recorded tokenizer or tree-builder activity.
type EventType string

const (
	// Stage boundary markers
	EventTokenizationStart        EventType = "tokenization_start"
	EventTokenizationComplete     EventType = "tokenization_complete"
	EventTreeConstructionStart    EventType = "tree_construction_start"
	EventTreeConstructionComplete EventType = "tree_construction_complete"

	// Per-token and per-action events
	EventTokenEmitted    EventType = "token_emitted"
	EventImplicitClosure EventType = "implicit_closure"
	EventParseError      EventType = "parse_error"
)

// Event is one timestamped record of parsing activity. Timestamp is the
// offset from the start of the owning trace, so timestamps within one
// trace are monotonically non-decreasing.
type Event struct {
	Timestamp time.Duration
	Type      EventType
	Details   map[string]any
}

// Trace accumulates the chronological event log and error log of exactly
// one parse invocation. A Trace is created fresh per call, threaded
// through the tokenizer and tree builder of that call, and never shared
// across invocations.
type Trace struct {
	Events   []Event
	Errors   []string
	Duration time.Duration

	start time.Time
}

func newTrace() *Trace {
	return &Trace{start: time.Now()}
}

func (t *Trace) addEvent(typ EventType, details map[string]any) {
	t.Events = append(t.Events, Event{
		Timestamp: time.Since(t.start),
		Type:      typ,
		Details:   details,
	})
}

// addError records one recovered malformed-input condition or budget
// violation, both in the error log and as a parse_error event.
func (t *Trace) addError(msg string) {
	t.Errors = append(t.Errors, msg)
	t.addEvent(EventParseError, map[string]any{"message": msg})
}

func (t *Trace) finalize() {
	t.Duration = time.Since(t.start)
}
