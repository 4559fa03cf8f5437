// Package rules implements the individual password strength rules.
//
// The rule set is a closed set of domain.RuleID variants dispatched through
// a single Evaluate function, so adding a rule without handling it is a
// compile-visible omission rather than a silent runtime gap.
package rules

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/baditaflorin/go_password_strength/internal/core/domain"
	"github.com/baditaflorin/go_password_strength/internal/ports"
)

// Maximum usable similarity threshold in percent. Higher configured values
// are clamped so an exact match always counts as a collision.
const MaxSimilarityPercent = 99

// Config holds the rule-specific configuration values. It is read-only for
// the duration of an evaluation.
type Config struct {
	// MinLength is the minimum password length in Unicode scalar values.
	MinLength int
	// SimilarityPercent is the similarity threshold in percent at or above
	// which a wordlist match counts as a collision.
	SimilarityPercent int
}

// Env carries the shared read-only collaborators a rule may need.
type Env struct {
	Scorer ports.Scorer
	// Wordlist is the resolved wordlist source, nil when resolution failed.
	Wordlist ports.Source
	// WordlistErr is the resolution error, surfaced as the collision
	// rule's own failure.
	WordlistErr error
	Logger      ports.Logger
}

// DisplayName returns the presentation name for a rule.
func DisplayName(id domain.RuleID, cfg Config) string {
	switch id {
	case domain.RuleMinLength:
		return fmt.Sprintf("At least %d characters", cfg.MinLength)
	case domain.RuleDigits:
		return "numbers"
	case domain.RuleSpecialChars:
		return "quirky characters"
	case domain.RuleWordlist:
		return "collisions in wordlist"
	default:
		return id.String()
	}
}

// Evaluate runs a single rule against the password and returns its result.
func Evaluate(id domain.RuleID, password string, cfg Config, env Env) domain.RuleResult {
	result := domain.RuleResult{
		Rule: id,
		Name: DisplayName(id, cfg),
	}

	switch id {
	case domain.RuleMinLength:
		result.Status, result.Detail = evaluateMinLength(password, cfg.MinLength)
	case domain.RuleDigits:
		result.Status, result.Detail = evaluateDigits(password)
	case domain.RuleSpecialChars:
		result.Status, result.Detail = evaluateSpecialChars(password)
	case domain.RuleWordlist:
		result.Status, result.Detail = evaluateWordlist(password, cfg, env)
	default:
		result.Status = domain.StatusFail
		result.Detail = fmt.Sprintf("unknown rule %s", id)
	}

	return result
}

// evaluateMinLength checks the password length in Unicode scalar values,
// not bytes, so multi-byte characters count once.
func evaluateMinLength(password string, minLength int) (domain.Status, string) {
	length := utf8.RuneCountInString(password)
	if length >= minLength {
		return domain.StatusPass, ""
	}
	return domain.StatusFail, fmt.Sprintf("Password too short: %d/%d characters", length, minLength)
}

// evaluateDigits checks for at least one ASCII digit. Non-ASCII digit
// characters deliberately do not count.
func evaluateDigits(password string) (domain.Status, string) {
	for _, r := range password {
		if r >= '0' && r <= '9' {
			return domain.StatusPass, ""
		}
	}
	return domain.StatusFail, "No numeric characters in password"
}

// evaluateSpecialChars checks for at least one ASCII punctuation character.
func evaluateSpecialChars(password string) (domain.Status, string) {
	for _, r := range password {
		if isASCIIPunct(r) {
			return domain.StatusPass, ""
		}
	}
	return domain.StatusFail, "No special characters in password"
}

// evaluateWordlist searches the wordlist for the closest entry and fails
// when its similarity reaches the configured threshold.
func evaluateWordlist(password string, cfg Config, env Env) (domain.Status, string) {
	if env.WordlistErr != nil {
		env.Logger.Error("Wordlist resolution failed", "error", env.WordlistErr)
		return domain.StatusFail, env.WordlistErr.Error()
	}
	if env.Wordlist == nil {
		env.Logger.Error("No wordlist source configured")
		return domain.StatusFail, "No wordlist available to compare against"
	}

	entries := env.Wordlist.Entries()
	match, score, ok := env.Scorer.BestMatch(password, entries)
	if !ok {
		// No entries means no collision evidence either way; treat the
		// rule as failed rather than pretending the list was checked.
		env.Logger.Warn("Wordlist is empty", "wordlist", env.Wordlist.Name())
		return domain.StatusFail, fmt.Sprintf("Wordlist %s is empty, no entries to compare against", env.Wordlist.Name())
	}

	threshold := float64(min(cfg.SimilarityPercent, MaxSimilarityPercent)) / 100.0
	detail := fmt.Sprintf("Best match in wordlist is %s with similarity %s%%",
		match, strconv.FormatFloat(score*100, 'f', -1, 64))

	if score >= threshold {
		return domain.StatusFail, detail
	}
	return domain.StatusPass, detail
}

// isASCIIPunct reports whether r is in the standard ASCII punctuation set:
// !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~
func isASCIIPunct(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	default:
		return false
	}
}
