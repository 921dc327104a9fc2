package plugin

import (
	"fmt"
	"sync"
)

// Diagnostics collects warning-level messages emitted during registry
// construction, bundle assembly and field resolution. Warnings are
// advisory: nothing in this package aborts a generation run.
//
// A Diagnostics value is safe for concurrent use; hosts processing
// multiple specifications in parallel share one collector.
type Diagnostics struct {
	mu       sync.Mutex
	warnings []string
}

// Warnf records a warning.
func (d *Diagnostics) Warnf(format string, args ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.warnings = append(d.warnings, fmt.Sprintf(format, args...))
}

// Warnings returns a copy of the recorded warnings in emission order.
func (d *Diagnostics) Warnings() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.warnings))
	copy(out, d.warnings)
	return out
}

// Len returns the number of recorded warnings.
func (d *Diagnostics) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.warnings)
}
