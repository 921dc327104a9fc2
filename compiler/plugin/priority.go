package plugin

import "strings"

// Priority controls the consultation order among plugins. High-priority
// plugins get first refusal on every field; within a tier, registration
// order is the tie-break.
type Priority int

// The three priority tiers, in consultation order.
const (
	PriorityHigh Priority = iota
	PriorityNormal
	PriorityLow
	numPriorities
)

var priorityNames = [...]string{
	PriorityHigh:   "HIGH",
	PriorityNormal: "NORMAL",
	PriorityLow:    "LOW",
}

// String returns the canonical name of the priority tier.
func (p Priority) String() string {
	if p < 0 || p >= numPriorities {
		return "NORMAL"
	}
	return priorityNames[p]
}

// ParsePriority matches s case-insensitively against the tier names.
func ParsePriority(s string) (Priority, bool) {
	for p, name := range priorityNames {
		if strings.EqualFold(s, name) {
			return Priority(p), true
		}
	}
	return PriorityNormal, false
}
