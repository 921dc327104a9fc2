package plugin

import "strings"

// An OptionSet is an immutable membership set of option tokens.
// Tokens are matched verbatim: no trimming, no case folding.
type OptionSet map[string]struct{}

// ParseOptions splits a comma-delimited option string into a set.
// Empty input yields an empty set; parsing never fails.
func ParseOptions(raw string) OptionSet {
	set := make(OptionSet)
	if raw == "" {
		return set
	}
	for _, token := range strings.Split(raw, listSeparator) {
		if token == "" {
			continue
		}
		set[token] = struct{}{}
	}
	return set
}

// Contains reports whether the exact token is in the set.
func (s OptionSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Len returns the number of tokens in the set.
func (s OptionSet) Len() int { return len(s) }
