// File: internal/tailer/classify.go
// Brief: Line classification for the log streaming engine.

package tailer

import (
	"fmt"
	"regexp"
	"strings"
)

// Category is the rendering class assigned to a log line.
type Category int

const (
	CategoryPlain Category = iota
	CategoryError
	CategoryHighlighted
)

func (c Category) String() string {
	switch c {
	case CategoryError:
		return "error"
	case CategoryHighlighted:
		return "highlighted"
	default:
		return "plain"
	}
}

// errorMarkers are matched case-sensitively; "Error" is not covered by a
// lowercase check, so all three spellings are listed.
var errorMarkers = []string{"ERROR", "error", "Error"}

// HighlightRule is the user-supplied highlight pattern. The zero value is
// inactive, meaning no highlighting is configured.
type HighlightRule struct {
	re *regexp.Regexp
}

// CompileHighlight builds a HighlightRule from a pattern string. An empty
// pattern yields an inactive rule. A malformed pattern is a configuration
// error raised once here, never per line.
func CompileHighlight(pattern string) (HighlightRule, error) {
	if strings.TrimSpace(pattern) == "" {
		return HighlightRule{}, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return HighlightRule{}, fmt.Errorf("invalid highlight regex %q: %w", pattern, err)
	}
	return HighlightRule{re: re}, nil
}

// HighlightFromRegexp wraps an already-compiled pattern. A nil regexp yields
// an inactive rule.
func HighlightFromRegexp(re *regexp.Regexp) HighlightRule {
	return HighlightRule{re: re}
}

// Active reports whether a highlight pattern is configured.
func (r HighlightRule) Active() bool {
	return r.re != nil
}

// Matches reports whether the line matches the highlight pattern. An inactive
// rule matches nothing.
func (r HighlightRule) Matches(line string) bool {
	return r.re != nil && r.re.MatchString(line)
}

// Classify decides the rendering category for a single log line. The second
// return value is false when the line is suppressed entirely (filter-only
// mode with no highlight match).
//
// Precedence is a semantic contract: filter-only short-circuits everything;
// in normal mode an error marker beats a highlight match, which beats plain.
// Classify is pure and safe for concurrent use from many tailers.
func Classify(line string, rule HighlightRule, filterOnly bool) (Category, bool) {
	if filterOnly {
		if rule.Matches(line) {
			return CategoryHighlighted, true
		}
		return CategoryPlain, false
	}
	for _, marker := range errorMarkers {
		if strings.Contains(line, marker) {
			return CategoryError, true
		}
	}
	if rule.Matches(line) {
		return CategoryHighlighted, true
	}
	return CategoryPlain, true
}
