// Package html5 provides a forgiving, budgeted HTML tokenizer and
// DOM-tree builder with instrumented execution tracing.
//
// # Overview
//
// The package converts a markup string into an ordered sequence of
// lexical tokens, then folds those tokens into an ownership tree under
// implicit-closure and void-element rules. Both stages run under
// cooperative resource budgets and record a replayable event log.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Markup    │────▶│  Tokenizer  │────▶│ TreeBuilder │
//	│  (string)   │     │  (tokens)   │     │   (tree)    │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │                   │
//	                           ▼                   ▼
//	                    ┌─────────────┐     ┌─────────────┐
//	                    │  Governor   │     │    Trace    │
//	                    │  (budgets)  │     │  (events)   │
//	                    └─────────────┘     └─────────────┘
//
// # Entry Points
//
//	// Tokenize turns markup into tokens; the sequence always ends
//	// with exactly one EOF token.
//	func Tokenize(markup string, cfg Config) ([]Token, error)
//
//	// Parse tokenizes and builds the tree in one call.
//	func Parse(markup string, cfg Config) (*Node, error)
//
//	// ParseWithTrace additionally returns the token sequence and the
//	// full execution trace; all three artifacts come from one shared
//	// governor and recorder.
//	func ParseWithTrace(markup string, cfg Config) (*Result, error)
//
// # Error Recovery
//
// Malformed markup never fails a call. Unterminated tags, unterminated
// quoted attribute values, stray '<' characters and end tags without a
// matching open element are recovered locally, recorded as ParseError
// tokens and trace errors, and processing continues from a well-defined
// state. The only error these functions return is an invalid
// configuration (a zero or negative budget), which fails fast before any
// tokenization begins.
//
// # Resource Budgets
//
// Config carries three per-call ceilings: MaxTokenCount, MaxTreeDepth
// and MaxParsingTime. The governor is consulted once per token emitted
// and once per token consumed; on a violation the current stage halts,
// records token_budget_exceeded, depth_budget_exceeded or
// time_budget_exceeded in the trace, and a well-formed partial result is
// still returned. The checks are cooperative: a host that must guarantee
// hard termination on untrusted input should add an externally killable
// isolation boundary.
//
// # Thread Safety
//
// Every call creates fresh tokenizer, builder, governor and trace
// instances and mutates no state outside its own invocation, so
// independent parses may run concurrently without coordination. The
// artifacts of one call must not be mutated from multiple goroutines.
//
// # Example
//
//	tree, err := html5.Parse("<p>Hello<div>World</div>", html5.DefaultConfig())
//	if err != nil { // invalid configuration only
//		return err
//	}
//	// tree now has a p element (text "Hello") followed by a div:
//	// the open p closes implicitly before the div begins.
package html5
