package domain

import "testing"

func TestRuleIDRoundTrip(t *testing.T) {
	for _, id := range AllRules() {
		parsed, err := ParseRuleID(id.String())
		if err != nil {
			t.Fatalf("ParseRuleID(%q) error = %v", id.String(), err)
		}
		if parsed != id {
			t.Errorf("ParseRuleID(%q) = %v, want %v", id.String(), parsed, id)
		}
	}
}

func TestParseRuleIDUnknown(t *testing.T) {
	if _, err := ParseRuleID("entropy"); err == nil {
		t.Error("expected error for unknown rule identifier")
	}
	if _, err := ParseRuleID(""); err == nil {
		t.Error("expected error for empty rule identifier")
	}
}

func TestAllRulesOrder(t *testing.T) {
	want := []RuleID{RuleMinLength, RuleDigits, RuleSpecialChars, RuleWordlist}
	got := AllRules()
	if len(got) != len(want) {
		t.Fatalf("AllRules() returned %d rules, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllRules()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusPass, "success"},
		{StatusFail, "failure"},
		{StatusIgnored, "ignored"},
	}
	for _, tc := range tests {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", int(tc.status), got, tc.want)
		}
	}
}

func TestSummaryPassPercent(t *testing.T) {
	tests := []struct {
		name      string
		summary   Summary
		want      float64
		defined   bool
		formatted string
	}{
		{
			name:      "All passed",
			summary:   Summary{Passed: 4, Enabled: 4, Total: 4},
			want:      100,
			defined:   true,
			formatted: "100",
		},
		{
			name:      "Partial",
			summary:   Summary{Passed: 3, Enabled: 4, Total: 4},
			want:      75,
			defined:   true,
			formatted: "75",
		},
		{
			name:      "Fractional",
			summary:   Summary{Passed: 2, Enabled: 3, Ignored: 1, Total: 4},
			want:      float64(2) / float64(3) * 100.0,
			defined:   true,
			formatted: "66.7",
		},
		{
			// Undefined percentage must surface as a sentinel, never NaN.
			name:      "Zero enabled",
			summary:   Summary{Passed: 0, Enabled: 0, Ignored: 4, Total: 4},
			defined:   false,
			formatted: "N/A",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.summary.PassPercent()
			if ok != tc.defined {
				t.Fatalf("PassPercent() ok = %v, want %v", ok, tc.defined)
			}
			if tc.defined && got != tc.want {
				t.Errorf("PassPercent() = %v, want %v", got, tc.want)
			}
			if formatted := tc.summary.FormatPassPercent(); formatted != tc.formatted {
				t.Errorf("FormatPassPercent() = %q, want %q", formatted, tc.formatted)
			}
		})
	}
}

func TestSummaryAllPassed(t *testing.T) {
	if !(Summary{Passed: 3, Enabled: 3, Ignored: 1, Total: 4}).AllPassed() {
		t.Error("expected AllPassed for passed == enabled")
	}
	if (Summary{Passed: 2, Enabled: 3, Total: 3}).AllPassed() {
		t.Error("expected not AllPassed for passed < enabled")
	}
	// Vacuously true when everything is ignored.
	if !(Summary{Enabled: 0, Ignored: 4, Total: 4}).AllPassed() {
		t.Error("expected AllPassed for zero enabled rules")
	}
}
