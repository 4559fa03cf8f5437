// Package engine orchestrates running the full rule set against a password.
package engine

import (
	"errors"
	"fmt"

	"github.com/baditaflorin/go_password_strength/internal/core/domain"
	"github.com/baditaflorin/go_password_strength/internal/core/rules"
	"github.com/baditaflorin/go_password_strength/internal/ports"
)

// Config holds configuration for the evaluator.
type Config struct {
	// MinLength is the minimum password length. Must be positive.
	MinLength int
	// SimilarityPercent is the collision threshold in percent, 0-100.
	// Values above 99 are clamped at evaluation time.
	SimilarityPercent int
	// Ignore is the set of rules to suppress.
	Ignore map[domain.RuleID]bool
}

// Default configuration values.
const (
	DefaultMinLength         = 8
	DefaultSimilarityPercent = 97
)

// DefaultConfig returns a default evaluator configuration.
func DefaultConfig() Config {
	return Config{
		MinLength:         DefaultMinLength,
		SimilarityPercent: DefaultSimilarityPercent,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.MinLength <= 0 {
		return errors.New("minimum length must be positive")
	}
	if c.SimilarityPercent < 0 || c.SimilarityPercent > 100 {
		return errors.New("similarity threshold must be between 0 and 100")
	}
	return nil
}

// Evaluator runs every configured rule in declaration order and tallies the
// outcomes. Rules execute strictly sequentially; no rule failure aborts the
// run.
type Evaluator struct {
	config Config
	logger ports.Logger
	scorer ports.Scorer
}

// New creates a new rule set evaluator.
func New(config Config, logger ports.Logger, scorer ports.Scorer) (*Evaluator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{
		config: config,
		logger: logger,
		scorer: scorer,
	}, nil
}

// Evaluate runs all rules against the password. The wordlist source is
// resolved by the caller once per run and shared read-only; a resolution
// error is confined to the collision rule's own outcome.
func (e *Evaluator) Evaluate(password string, wl ports.Source, wlErr error) domain.Report {
	e.logger.Debug("Starting password evaluation",
		"min_length", e.config.MinLength,
		"similarity_percent", e.config.SimilarityPercent,
		"ignored", len(e.config.Ignore),
	)

	ruleCfg := rules.Config{
		MinLength:         e.config.MinLength,
		SimilarityPercent: e.config.SimilarityPercent,
	}
	env := rules.Env{
		Scorer:      e.scorer,
		Wordlist:    wl,
		WordlistErr: wlErr,
		Logger:      e.logger,
	}

	report := domain.Report{Password: password}
	for _, id := range domain.AllRules() {
		var result domain.RuleResult
		if e.config.Ignore[id] {
			result = domain.RuleResult{
				Rule:   id,
				Name:   rules.DisplayName(id, ruleCfg),
				Status: domain.StatusIgnored,
				Detail: fmt.Sprintf("disabled with --ignore %s", id),
			}
		} else {
			result = rules.Evaluate(id, password, ruleCfg, env)
		}

		report.Results = append(report.Results, result)
		report.Summary.Total++
		switch result.Status {
		case domain.StatusPass:
			report.Summary.Passed++
			report.Summary.Enabled++
		case domain.StatusFail:
			report.Summary.Enabled++
		case domain.StatusIgnored:
			report.Summary.Ignored++
		}

		e.logger.Debug("Rule evaluated",
			"rule", result.Rule.String(),
			"status", result.Status.String(),
			"detail", result.Detail,
		)
	}

	e.logger.Info("Password evaluation complete",
		"passed", report.Summary.Passed,
		"enabled", report.Summary.Enabled,
		"total", report.Summary.Total,
		"pass_percent", report.Summary.FormatPassPercent(),
	)

	return report
}
