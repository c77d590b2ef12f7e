package html5

import (
	"fmt"
	"time"
)

// Config carries the resource budgets for one parse invocation. Budgets
// are supplied per call by the caller; there is no process-wide default
// state.
type Config struct {
	// MaxParsingTime bounds the wall-clock time of one invocation.
	MaxParsingTime time.Duration
	// MaxTreeDepth bounds the height of the open-element stack,
	// root included.
	MaxTreeDepth int
	// MaxTokenCount bounds the length of the emitted token sequence,
	// the terminating EOF token included.
	MaxTokenCount int
}

// DefaultConfig returns the budgets the upstream tooling ships with.
func DefaultConfig() Config {
	return Config{
		MaxParsingTime: 5 * time.Second,
		MaxTreeDepth:   1000,
		MaxTokenCount:  100000,
	}
}

// Validate reports whether the configuration is usable. A zero or
// negative budget is a caller error and fails fast before any
// tokenization begins.
func (c Config) Validate() error {
	if c.MaxParsingTime <= 0 {
		return fmt.Errorf("invalid configuration: MaxParsingTime must be positive, got %s", c.MaxParsingTime)
	}
	if c.MaxTreeDepth <= 0 {
		return fmt.Errorf("invalid configuration: MaxTreeDepth must be positive, got %d", c.MaxTreeDepth)
	}
	if c.MaxTokenCount <= 0 {
		return fmt.Errorf("invalid configuration: MaxTokenCount must be positive, got %d", c.MaxTokenCount)
	}
	return nil
}

// Budget violation reasons as they appear in the trace error log.
const (
	reasonTokenBudget = "token_budget_exceeded"
	reasonDepthBudget = "depth_budget_exceeded"
	reasonTimeBudget  = "time_budget_exceeded"
)

// governor enforces the budgets cooperatively. It is consulted once per
// token emitted by the tokenizer, once per token consumed by the tree
// builder, and on every push onto the open-element stack. A nil return
// means processing may continue.
type governor struct {
	cfg     Config
	start   time.Time
	emitted int
}

func newGovernor(cfg Config) *governor {
	return &governor{cfg: cfg, start: time.Now()}
}

func (g *governor) checkTime() error {
	if elapsed := time.Since(g.start); elapsed > g.cfg.MaxParsingTime {
		return fmt.Errorf("%s: parsing ran for %s, budget is %s", reasonTimeBudget, elapsed, g.cfg.MaxParsingTime)
	}
	return nil
}

// checkEmit is called before each non-EOF token emission. One slot is
// reserved for the terminating EOF token so a truncated sequence still
// fits the budget.
func (g *governor) checkEmit() error {
	if err := g.checkTime(); err != nil {
		return err
	}
	g.emitted++
	if g.emitted >= g.cfg.MaxTokenCount {
		return fmt.Errorf("%s: token count reached limit %d", reasonTokenBudget, g.cfg.MaxTokenCount)
	}
	return nil
}

// checkConsume is called once per token consumed by the tree builder.
func (g *governor) checkConsume() error {
	return g.checkTime()
}

// checkDepth is called before a push would grow the open-element stack
// to the given height.
func (g *governor) checkDepth(height int) error {
	if height > g.cfg.MaxTreeDepth {
		return fmt.Errorf("%s: tree depth %d exceeds limit %d", reasonDepthBudget, height, g.cfg.MaxTreeDepth)
	}
	return nil
}
