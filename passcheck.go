// passcheck.go
// Package passcheck evaluates a candidate password against a configurable
// set of independent strength rules and reports a per-rule verdict plus an
// aggregate summary.
//
// Four rules are evaluated in a fixed order: minimum length, presence of
// digits, presence of special characters, and a fuzzy best-match search of
// the password against a wordlist of known weak passwords, ranked by
// normalized edit-distance similarity rather than exact match.
//
// This package uses the functional options pattern to allow configuration
// of parameters like the minimum length, the similarity threshold, the
// wordlist and logging.
package passcheck

import (
	"context"
	"fmt"

	"github.com/baditaflorin/go_password_strength/internal/adapters/logger"
	"github.com/baditaflorin/go_password_strength/internal/adapters/wordlist"
	"github.com/baditaflorin/go_password_strength/internal/core/domain"
	"github.com/baditaflorin/go_password_strength/internal/core/engine"
	"github.com/baditaflorin/go_password_strength/internal/core/similarity"
	"github.com/baditaflorin/go_password_strength/internal/ports"
	"github.com/baditaflorin/l"
)

// Re-exported domain types; callers consume these from evaluation reports.
type (
	Report     = domain.Report
	RuleResult = domain.RuleResult
	Summary    = domain.Summary
	RuleID     = domain.RuleID
	Status     = domain.Status
)

// Rule identifiers, in evaluation order.
const (
	RuleMinLength    = domain.RuleMinLength
	RuleDigits       = domain.RuleDigits
	RuleSpecialChars = domain.RuleSpecialChars
	RuleWordlist     = domain.RuleWordlist
)

// Rule statuses.
const (
	StatusPass    = domain.StatusPass
	StatusFail    = domain.StatusFail
	StatusIgnored = domain.StatusIgnored
)

// Default configuration values.
const (
	DefaultMinLength         = engine.DefaultMinLength
	DefaultSimilarityPercent = engine.DefaultSimilarityPercent
)

// ParseRuleID resolves a rule identifier string (as used in flags and
// config files) to its RuleID.
func ParseRuleID(s string) (RuleID, error) { return domain.ParseRuleID(s) }

type checkerConfig struct {
	MinLength         int
	SimilarityPercent int
	Ignore            map[domain.RuleID]bool
	WordlistPath      string
	Wordlist          ports.Source
	Logger            ports.Logger
}

// Option defines a functional option for configuring the Checker.
type Option func(*checkerConfig)

// WithMinLength overrides the minimum password length.
func WithMinLength(n int) Option {
	return func(cfg *checkerConfig) {
		cfg.MinLength = n
	}
}

// WithSimilarityPercent overrides the collision similarity threshold, in
// percent. Values above 99 are clamped at evaluation time.
func WithSimilarityPercent(p int) Option {
	return func(cfg *checkerConfig) {
		cfg.SimilarityPercent = p
	}
}

// WithIgnore suppresses the given rules. Ignored rules report an Ignored
// outcome and do not count toward the aggregate pass percentage.
func WithIgnore(ids ...RuleID) Option {
	return func(cfg *checkerConfig) {
		for _, id := range ids {
			cfg.Ignore[id] = true
		}
	}
}

// WithWordlistPath checks collisions against the wordlist file at path
// instead of the embedded default list. A path that cannot be read surfaces
// as the collision rule's own failure, not as a constructor error.
func WithWordlistPath(path string) Option {
	return func(cfg *checkerConfig) {
		cfg.WordlistPath = path
	}
}

// WithWordlist checks collisions against an explicit wordlist source,
// bypassing path resolution.
func WithWordlist(src ports.Source) Option {
	return func(cfg *checkerConfig) {
		cfg.Wordlist = src
	}
}

// WithWordlistText checks collisions against raw wordlist text, one entry
// per line.
func WithWordlistText(name, text string) Option {
	return func(cfg *checkerConfig) {
		cfg.Wordlist = wordlist.FromString(name, text)
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *checkerConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithPortsLogger sets a custom logger already adapted to the internal
// logging interface.
func WithPortsLogger(lg ports.Logger) Option {
	return func(cfg *checkerConfig) {
		cfg.Logger = lg
	}
}

// WithQuietLogging discards all log output.
func WithQuietLogging() Option {
	return func(cfg *checkerConfig) {
		cfg.Logger = logger.NewNopLogger()
	}
}

// Checker evaluates passwords against the configured rule set.
type Checker struct {
	config    checkerConfig
	logger    ports.Logger
	evaluator *engine.Evaluator
}

// New creates a new Checker with the provided functional options.
// If no logger is provided, a default logger is created. Returns an error
// if the configuration is invalid; evaluation never starts with a bad
// configuration.
func New(opts ...Option) (*Checker, error) {
	cfg := checkerConfig{
		MinLength:         DefaultMinLength,
		SimilarityPercent: DefaultSimilarityPercent,
		Ignore:            make(map[domain.RuleID]bool),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Logger == nil {
		lg, err := createDefaultLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = lg
	}

	scorer := similarity.NewScorer(cfg.Logger)
	eval, err := engine.New(engine.Config{
		MinLength:         cfg.MinLength,
		SimilarityPercent: cfg.SimilarityPercent,
		Ignore:            cfg.Ignore,
	}, cfg.Logger, scorer)
	if err != nil {
		return nil, err
	}

	return &Checker{
		config:    cfg,
		logger:    cfg.Logger,
		evaluator: eval,
	}, nil
}

// Evaluate runs all configured rules against the password. The wordlist
// source is resolved once per run and shared read-only across rules; a
// resolution failure is confined to the collision rule's outcome. The only
// error returned is a cancelled context before evaluation starts; the run
// itself is synchronous and never aborts mid-way.
func (c *Checker) Evaluate(ctx context.Context, password string) (domain.Report, error) {
	select {
	case <-ctx.Done():
		c.logger.Error("Evaluation cancelled", "error", ctx.Err())
		return domain.Report{}, fmt.Errorf("evaluation cancelled: %w", ctx.Err())
	default:
	}

	wl, wlErr := c.resolveWordlist()
	return c.evaluator.Evaluate(password, wl, wlErr), nil
}

// resolveWordlist picks the wordlist source for one evaluation run.
func (c *Checker) resolveWordlist() (ports.Source, error) {
	if c.config.Wordlist != nil {
		return c.config.Wordlist, nil
	}
	if c.config.WordlistPath == "" {
		c.logger.Info("No wordlist provided, defaulting to internal wordlist")
	}
	return wordlist.Resolve(c.config.WordlistPath)
}

// Close releases the logger. Call when the Checker owns its logger.
func (c *Checker) Close() error {
	return c.logger.Close()
}
