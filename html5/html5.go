package html5

// Result bundles the three artifacts of one traced parse invocation.
// ParseWithTrace always returns all three together, never a subset.
type Result struct {
	Tokens []Token `json:"tokens"`
	Tree   *Node   `json:"tree"`
	Trace  *Trace  `json:"trace"`
}

// Tokenize turns markup into an ordered token sequence ending with
// exactly one EOF token. Malformed markup never fails the call; it is
// recovered from and reported through ParseError tokens. The only
// returned error is an invalid configuration.
func Tokenize(markup string, cfg Config) ([]Token, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	trace := newTrace()
	gov := newGovernor(cfg)
	return newTokenizer(markup, gov, trace).run(), nil
}

// Build folds a token sequence into an ownership tree. The sequence is
// expected to come from Tokenize with the same budgets; building is
// deterministic, so identical sequences always yield identical trees.
func Build(tokens []Token, cfg Config) (*Node, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	trace := newTrace()
	gov := newGovernor(cfg)
	return newTreeBuilder(gov, trace).run(tokens), nil
}

// Parse tokenizes markup and builds the tree under one shared governor.
func Parse(markup string, cfg Config) (*Node, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	trace := newTrace()
	gov := newGovernor(cfg)
	tokens := newTokenizer(markup, gov, trace).run()
	return newTreeBuilder(gov, trace).run(tokens), nil
}

// ParseWithTrace runs the tokenizer and the tree builder under one shared
// governor and trace recorder and returns tokens, tree and trace
// atomically. The trace belongs to this invocation alone.
func ParseWithTrace(markup string, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	trace := newTrace()
	gov := newGovernor(cfg)
	tokens := newTokenizer(markup, gov, trace).run()
	tree := newTreeBuilder(gov, trace).run(tokens)
	trace.finalize()
	return &Result{Tokens: tokens, Tree: tree, Trace: trace}, nil
}
