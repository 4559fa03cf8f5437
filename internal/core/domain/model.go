package domain

import (
	"fmt"
	"math"
)

// RuleID identifies one of the password strength rules. The set of rules is
// closed; dispatch over it is exhaustive.
type RuleID int

const (
	// RuleMinLength checks the password against a minimum character count.
	RuleMinLength RuleID = iota
	// RuleDigits checks for at least one ASCII digit.
	RuleDigits
	// RuleSpecialChars checks for at least one ASCII punctuation character.
	RuleSpecialChars
	// RuleWordlist checks the password for near-matches in a wordlist of
	// known weak passwords.
	RuleWordlist

	ruleCount
)

// AllRules returns every rule in evaluation order.
func AllRules() []RuleID {
	rules := make([]RuleID, 0, ruleCount)
	for id := RuleID(0); id < ruleCount; id++ {
		rules = append(rules, id)
	}
	return rules
}

// String returns the stable identifier used in flags, config files and JSON.
func (id RuleID) String() string {
	switch id {
	case RuleMinLength:
		return "min-length"
	case RuleDigits:
		return "digits"
	case RuleSpecialChars:
		return "special-chars"
	case RuleWordlist:
		return "wordlist"
	default:
		return fmt.Sprintf("rule(%d)", int(id))
	}
}

// ParseRuleID resolves a rule identifier string to its RuleID.
func ParseRuleID(s string) (RuleID, error) {
	for id := RuleID(0); id < ruleCount; id++ {
		if id.String() == s {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown rule %q", s)
}

// Status is the tri-state outcome of a single rule evaluation. Ignored is
// produced only by the ignore configuration and is never conflated with Fail.
type Status int

const (
	StatusPass Status = iota
	StatusFail
	StatusIgnored
)

// String returns the human-readable verdict for the status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "success"
	case StatusFail:
		return "failure"
	case StatusIgnored:
		return "ignored"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// RuleResult holds the outcome of evaluating a single rule.
type RuleResult struct {
	// Rule is the identifier of the evaluated rule.
	Rule RuleID
	// Name is the display name of the rule.
	Name string
	// Status is the tri-state verdict.
	Status Status
	// Detail holds additional diagnostic information. Empty on a plain
	// pass; rules that compute something worth reporting (for example the
	// best wordlist match) set it on pass as well.
	Detail string
}

// Summary aggregates the outcomes of an evaluation run.
type Summary struct {
	// Passed counts rules whose status is StatusPass.
	Passed int
	// Enabled counts rules not suppressed by the ignore configuration.
	Enabled int
	// Ignored counts rules suppressed by the ignore configuration.
	Ignored int
	// Total is the number of rules evaluated, Enabled + Ignored.
	Total int
}

// PassPercent returns the percentage of enabled rules that passed. ok is
// false when no rules were enabled, in which case the percentage is
// undefined and must be rendered as an explicit sentinel, never as NaN.
func (s Summary) PassPercent() (float64, bool) {
	if s.Enabled == 0 {
		return 0, false
	}
	return float64(s.Passed) / float64(s.Enabled) * 100.0, true
}

// FormatPassPercent renders the pass percentage, or "N/A" when it is
// undefined.
func (s Summary) FormatPassPercent() string {
	pct, ok := s.PassPercent()
	if !ok {
		return "N/A"
	}
	if pct == math.Trunc(pct) {
		return fmt.Sprintf("%d", int(pct))
	}
	return fmt.Sprintf("%.1f", pct)
}

// AllPassed reports whether every enabled rule passed.
func (s Summary) AllPassed() bool {
	return s.Passed == s.Enabled
}

// Report is the full outcome of one evaluation run.
type Report struct {
	// Password is the evaluated password, echoed for presentation.
	Password string
	// Results holds one entry per rule, in evaluation order.
	Results []RuleResult
	// Summary aggregates the results.
	Summary Summary
}
