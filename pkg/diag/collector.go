package diag

// Collector accumulates diagnostics across a compiler pass without aborting
// on the first failure, per the propagation policy in spec §7: the
// namespace pass gathers every duplicate/unresolvable entry, and the
// lowering pass continues past individual failures so one compile emits a
// complete diagnostic set. An Internal diagnostic is recorded like any other:
// reporting one does not abort the pass in progress.
type Collector struct {
	diagnostics []*Diagnostic
}

// NewCollector constructs an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Report records a diagnostic. A nil diagnostic is ignored, so call sites
// can write `c.Report(maybeDiagnostic())` without a nil check.
func (c *Collector) Report(d *Diagnostic) {
	if d == nil {
		return
	}

	c.diagnostics = append(c.diagnostics, d)
}

// Extend appends every diagnostic from another collector (or slice) into
// this one.
func (c *Collector) Extend(ds []*Diagnostic) {
	c.diagnostics = append(c.diagnostics, ds...)
}

// HasErrors reports whether any diagnostic has been recorded.
func (c *Collector) HasErrors() bool {
	return len(c.diagnostics) > 0
}

// HasInternal reports whether any of the recorded diagnostics is Internal.
func (c *Collector) HasInternal() bool {
	for _, d := range c.diagnostics {
		if d.Is(KindInternal) {
			return true
		}
	}

	return false
}

// Diagnostics returns the accumulated diagnostics in report order. The
// compiler's top-level Compile function never returns a partial IR
// alongside a non-empty diagnostic list, per spec §7.
func (c *Collector) Diagnostics() []*Diagnostic {
	return c.diagnostics
}
