// classify_test.go covers the line classification precedence contract.
package tailer

import "testing"

func mustHighlight(t *testing.T, pattern string) HighlightRule {
	t.Helper()
	rule, err := CompileHighlight(pattern)
	if err != nil {
		t.Fatalf("CompileHighlight(%q) returned error: %v", pattern, err)
	}
	return rule
}

func TestCompileHighlightEmptyPatternIsInactive(t *testing.T) {
	for _, pattern := range []string{"", "   "} {
		rule := mustHighlight(t, pattern)
		if rule.Active() {
			t.Fatalf("expected inactive rule for pattern %q", pattern)
		}
		if rule.Matches("anything") {
			t.Fatalf("inactive rule must not match")
		}
	}
}

func TestCompileHighlightRejectsMalformedPattern(t *testing.T) {
	if _, err := CompileHighlight("boot["); err == nil {
		t.Fatalf("expected error for malformed pattern")
	}
}

func TestClassifyErrorBeatsHighlight(t *testing.T) {
	rule := mustHighlight(t, "pattern-xyz")
	category, ok := Classify("2024 error: pattern-xyz seen", rule, false)
	if !ok {
		t.Fatalf("line unexpectedly suppressed")
	}
	if category != CategoryError {
		t.Fatalf("expected error category, got %v", category)
	}
}

func TestClassifyErrorMarkersAreCaseSensitiveVariants(t *testing.T) {
	rule := HighlightRule{}
	cases := map[string]Category{
		"boot ERROR detected": CategoryError,
		"an error occurred":   CategoryError,
		"Error: bad config":   CategoryError,
		"erroneous but fine":  CategoryPlain,
		"ErRoR mixed case":    CategoryPlain,
	}
	for line, want := range cases {
		got, ok := Classify(line, rule, false)
		if !ok {
			t.Fatalf("line %q unexpectedly suppressed", line)
		}
		if got != want {
			t.Fatalf("Classify(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestClassifyHighlightMatch(t *testing.T) {
	rule := mustHighlight(t, "boot")
	category, ok := Classify("boot sequence complete", rule, false)
	if !ok || category != CategoryHighlighted {
		t.Fatalf("expected highlighted, got %v (ok=%v)", category, ok)
	}
}

func TestClassifyFilterOnlySuppressesNonMatches(t *testing.T) {
	rule := mustHighlight(t, "boot")
	if _, ok := Classify("starting service", rule, true); ok {
		t.Fatalf("non-matching line must be suppressed in filter-only mode")
	}
	category, ok := Classify("boot sequence complete", rule, true)
	if !ok || category != CategoryHighlighted {
		t.Fatalf("matching line must render highlighted, got %v (ok=%v)", category, ok)
	}
	// Error markers do not rescue a non-matching line in filter-only mode.
	if _, ok := Classify("fatal ERROR in init", rule, true); ok {
		t.Fatalf("filter-only mode must suppress error lines that do not match")
	}
}

func TestClassifyFilterOnlyWithInactiveRuleSuppressesEverything(t *testing.T) {
	if _, ok := Classify("any line at all", HighlightRule{}, true); ok {
		t.Fatalf("filter-only with no pattern must suppress all lines")
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	rule := mustHighlight(t, "pattern")
	line := "a pattern appears here"
	first, okFirst := Classify(line, rule, false)
	second, okSecond := Classify(line, rule, false)
	if first != second || okFirst != okSecond {
		t.Fatalf("classification drifted between calls: %v/%v vs %v/%v", first, okFirst, second, okSecond)
	}
}
