package source

import "fmt"

// Span represents a contiguous slice of some original EXPRESS source text.
// Rather than storing a string slice directly, spans retain the physical
// rune indices so that things like the enclosing line can be recovered
// later for diagnostic rendering.
type Span struct {
	// start is the first rune of this span in the original text.
	start int
	// end is one past the final rune of this span in the original text.
	end int
}

// NewSpan constructs a new span, checking its internal invariant.
func NewSpan(start, end int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the starting rune index of this span.
func (s Span) Start() int { return s.start }

// End returns one past the final rune index of this span.
func (s Span) End() int { return s.end }

// Length returns the number of runes covered by this span.
func (s Span) Length() int { return s.end - s.start }

// String gives a compact "start:end" rendering used in diagnostic output.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.start, s.end)
}
