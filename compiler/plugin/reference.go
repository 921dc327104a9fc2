package plugin

import "strings"

const (
	// listSeparator delimits entries in the plugin and option lists.
	listSeparator = ","
	// prioritySeparator delimits a plugin name from its priority tier.
	prioritySeparator = ":"
)

// A Reference names a registered plugin together with the priority tier it
// should be consulted in.
type Reference struct {
	Name     string
	Priority Priority
}

// parseReference parses a plugin reference of the form "name" or
// "name:PRIORITY". All failure paths degrade: an unrecognized priority
// warns and falls back to NORMAL, and more than one separator warns and
// drops the entry. It never fails hard.
func parseReference(raw string, d *Diagnostics) (Reference, bool) {
	ref := Reference{Name: raw, Priority: PriorityNormal}
	if !strings.Contains(raw, prioritySeparator) {
		return ref, true
	}
	parts := strings.Split(raw, prioritySeparator)
	if len(parts) != 2 {
		d.Warnf("plugin: error parsing plugin and priority %q, plugin will be ignored", raw)
		return Reference{}, false
	}
	ref.Name = parts[0]
	p, ok := ParsePriority(parts[1])
	if !ok {
		d.Warnf("plugin: unrecognized priority %q for plugin %q, defaulting to NORMAL; should be one of HIGH, NORMAL, or LOW",
			parts[1], ref.Name)
		p = PriorityNormal
	}
	ref.Priority = p
	return ref, true
}
