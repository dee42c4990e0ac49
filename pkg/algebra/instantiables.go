package algebra

import "sort"

// Instantiables is a canonical, sorted, deduplicated list of PCEs: the set
// of all legal partial-complex forms a root entity may appear as, under
// its SUPERTYPE OF constraint expression.
type Instantiables struct {
	// parts is sorted per PartialComplexEntity.Less, with no duplicates.
	parts []PartialComplexEntity
}

// NewInstantiables constructs an Instantiables value from a list of PCEs,
// canonicalizing by sorting and deduplicating.
func NewInstantiables(parts ...PartialComplexEntity) Instantiables {
	return Instantiables{canonicalize(parts)}
}

// Single constructs the singleton Instantiables {{index}}, the injection of
// a bare namespace index into the algebra (spec §4.4).
func Single(index int) Instantiables {
	return Instantiables{[]PartialComplexEntity{NewPCE(index)}}
}

// Parts returns the canonical list of PCEs. The returned slice must not be
// mutated by the caller.
func (a Instantiables) Parts() []PartialComplexEntity {
	return a.parts
}

// Len returns the number of PCEs in this Instantiables value.
func (a Instantiables) Len() int {
	return len(a.parts)
}

// Equal reports whether two Instantiables values contain the same
// (canonical) set of PCEs.
func (a Instantiables) Equal(b Instantiables) bool {
	if len(a.parts) != len(b.parts) {
		return false
	}

	for i := range a.parts {
		if !a.parts[i].Equal(b.parts[i]) {
			return false
		}
	}

	return true
}

// Union computes A + B: concatenation followed by canonicalization. This is
// the combinator behind ONEOF — mutually exclusive alternatives whose
// legal instantiations are simply their union (spec §4.4).
func (a Instantiables) Union(b Instantiables) Instantiables {
	merged := make([]PartialComplexEntity, 0, len(a.parts)+len(b.parts))
	merged = append(merged, a.parts...)
	merged = append(merged, b.parts...)

	return Instantiables{canonicalize(merged)}
}

// Intersect computes A & B: the canonicalized set of pairwise intersections
// { pi & qj }. This is the combinator behind AND — simultaneous
// instantiation of every branch (spec §4.4).
func (a Instantiables) Intersect(b Instantiables) Instantiables {
	merged := make([]PartialComplexEntity, 0, len(a.parts)*len(b.parts))

	for _, p := range a.parts {
		for _, q := range b.parts {
			merged = append(merged, p.Intersect(q))
		}
	}

	return Instantiables{canonicalize(merged)}
}

// Subtract computes A - B: every alternative of A that does not also occur
// (by value) in B, preserving A's order otherwise. Per the Open Question
// resolution in spec §9, this filters by value inequality rather than by
// position.
func (a Instantiables) Subtract(b Instantiables) Instantiables {
	var kept []PartialComplexEntity

	for _, p := range a.parts {
		if !containsValue(b.parts, p) {
			kept = append(kept, p)
		}
	}

	return Instantiables{kept}
}

// Restrict computes A / B: the alternatives of A that cover (as a superset,
// allowing equality per spec §9's Open Question resolution) some element of
// B.
func (a Instantiables) Restrict(b Instantiables) Instantiables {
	var kept []PartialComplexEntity

	for _, p := range a.parts {
		for _, q := range b.parts {
			if p.Contains(q) {
				kept = append(kept, p)
				break
			}
		}
	}

	return Instantiables{kept}
}

// Oneof implements the OneOf combinator: A1 + A2 + ... + An.
func Oneof(operands []Instantiables) Instantiables {
	result := Instantiables{}
	for _, op := range operands {
		result = result.Union(op)
	}

	return result
}

// And implements the And combinator: A1 & A2 & ... & An. Requires at least
// two operands per spec §4.4 ("and with a single operand is a hard error;
// callers must use a plain reference").
func And(operands []Instantiables) Instantiables {
	if len(operands) < 2 {
		panic("algebra: And requires at least two operands")
	}

	result := operands[0]
	for _, op := range operands[1:] {
		result = result.Intersect(op)
	}

	return result
}

// AndOr implements the AndOr combinator: the sum, over every non-empty
// subset S of {1..n}, of the intersection of the operands indexed by S.
// This produces exactly 2^n - 1 terms before canonicalization collapses
// duplicates.
func AndOr(operands []Instantiables) Instantiables {
	if len(operands) == 0 {
		panic("algebra: AndOr requires at least one operand")
	}

	n := len(operands)
	result := Instantiables{}

	for mask := 1; mask < (1 << n); mask++ {
		var term *Instantiables

		for i, op := range operands {
			if mask&(1<<i) == 0 {
				continue
			}

			if term == nil {
				t := op
				term = &t
			} else {
				joined := term.Intersect(op)
				term = &joined
			}
		}

		result = result.Union(*term)
	}

	return result
}

// AsPathAll maps every alternative of this Instantiables value back out
// through resolve, typically to ns.Path values — the Instantiables
// counterpart of PCE's AsPath, also restored from
// espr/src/ir/complex_entity.rs's as_path.
func AsPathAll[T any](a Instantiables, resolve func(index int) T) [][]T {
	out := make([][]T, len(a.parts))
	for i, p := range a.parts {
		out[i] = AsPath(p, resolve)
	}

	return out
}

func containsValue(parts []PartialComplexEntity, p PartialComplexEntity) bool {
	for _, q := range parts {
		if p.Equal(q) {
			return true
		}
	}

	return false
}

func canonicalize(parts []PartialComplexEntity) []PartialComplexEntity {
	cp := append([]PartialComplexEntity(nil), parts...)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Less(cp[j]) })

	if len(cp) == 0 {
		return cp
	}

	out := cp[:1]

	for _, v := range cp[1:] {
		if !v.Equal(out[len(out)-1]) {
			out = append(out, v)
		}
	}

	return out
}
