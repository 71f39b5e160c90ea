package finder

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher reports whether a process attribute satisfies a pattern.
// Both predicates used by Find are Matchers, so they can be unit tested
// against synthetic values without enumerating anything.
type Matcher func(value string) bool

// NewNameMatcher compiles a glob pattern for executable names. The glob
// supports '*' (any run of characters) and '?' (any single character) and
// matches case-insensitively against the whole name. An empty glob matches
// every name.
func NewNameMatcher(glob string) (Matcher, error) {
	if glob == "" {
		glob = "*"
	}
	re, err := regexp.Compile(globToRegexp(glob))
	if err != nil {
		return nil, fmt.Errorf("%w: name glob %q: %v", ErrInvalidPattern, glob, err)
	}
	return re.MatchString, nil
}

// NewCmdlineMatcher compiles a regular expression for command lines. The
// expression is unanchored and case-sensitive unless it opts into (?i).
// An empty pattern matches every command line.
func NewCmdlineMatcher(pattern string) (Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: command-line pattern %q: %v", ErrInvalidPattern, pattern, err)
	}
	return re.MatchString, nil
}

// globToRegexp translates a '*'/'?' glob into an anchored, case-insensitive
// regular expression. All other characters are matched literally.
func globToRegexp(glob string) string {
	var b strings.Builder
	b.WriteString("(?i)^")
	for _, r := range glob {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return b.String()
}
