// Package algebra implements the partial-complex-entity algebra described
// in ISO 10303-11 Annex B: a free commutative idempotent semiring over
// namespace indices, generated by PartialComplexEntity's Intersect and
// Instantiables' Union/Intersect/Subtract/Restrict.
//
// This is a direct translation of the reference implementation in
// espr/src/ir/complex_entity.rs, with the Rust operator-overload methods
// (BitAnd, Add, Sub, Div) replaced by named Go methods per the design note
// on operator overloading in spec §9: the point is totality and
// canonicalization, not the symbol.
package algebra

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// PartialComplexEntity (PCE) is a canonical, sorted, deduplicated set of
// namespace indices: one legal intersection of supertypes an instance may
// simultaneously inhabit.
type PartialComplexEntity struct {
	// indices is strictly increasing with no duplicates.
	indices []int
}

// NewPCE constructs a PCE from a set of indices, normalizing by sorting and
// deduplicating. The zero value (empty indices) is the identity for Intersect.
func NewPCE(indices ...int) PartialComplexEntity {
	cp := append([]int(nil), indices...)
	sort.Ints(cp)
	cp = dedupSorted(cp)

	return PartialComplexEntity{cp}
}

// Indices returns the sorted, deduplicated namespace indices of this PCE.
// The returned slice must not be mutated by the caller.
func (p PartialComplexEntity) Indices() []int {
	return p.indices
}

// Len returns the number of indices in this PCE.
func (p PartialComplexEntity) Len() int {
	return len(p.indices)
}

// Equal reports whether two PCEs contain exactly the same indices.
func (p PartialComplexEntity) Equal(q PartialComplexEntity) bool {
	if len(p.indices) != len(q.indices) {
		return false
	}

	for i := range p.indices {
		if p.indices[i] != q.indices[i] {
			return false
		}
	}

	return true
}

// Less implements the total order from spec §3: lexicographic on length,
// then on content.
func (p PartialComplexEntity) Less(q PartialComplexEntity) bool {
	if len(p.indices) != len(q.indices) {
		return len(p.indices) < len(q.indices)
	}

	for i := range p.indices {
		if p.indices[i] != q.indices[i] {
			return p.indices[i] < q.indices[i]
		}
	}

	return false
}

// Intersect computes A & B: the union of the underlying index sets,
// returned as a canonical PCE. This is the "simultaneous instantiation"
// operator — idempotent, commutative, and associative (spec §8 laws 1-3).
func (p PartialComplexEntity) Intersect(q PartialComplexEntity) PartialComplexEntity {
	merged := make([]int, 0, len(p.indices)+len(q.indices))
	merged = append(merged, p.indices...)
	merged = append(merged, q.indices...)
	sort.Ints(merged)

	return PartialComplexEntity{dedupSorted(merged)}
}

// Contains reports whether every index of q also occurs in p, i.e. whether
// q's index set is a subset of (or equal to) p's. This underlies the
// Instantiables Restrict operator (spec §4.4, "/").
func (p PartialComplexEntity) Contains(q PartialComplexEntity) bool {
	if len(q.indices) > len(p.indices) {
		return false
	}

	bs := toBitset(p.indices)

	for _, idx := range q.indices {
		if !bs.Test(uint(idx)) {
			return false
		}
	}

	return true
}

// AsPath maps this PCE's namespace indices back out through resolve —
// typically to ns.Path values, for diagnostic rendering or IR labeling.
// This restores the original Rust implementation's as_path convenience
// (espr/src/ir/complex_entity.rs), dropped by the distillation but useful
// wherever a PCE needs to be shown to a human rather than compared by
// value.
func AsPath[T any](p PartialComplexEntity, resolve func(index int) T) []T {
	out := make([]T, len(p.indices))
	for i, idx := range p.indices {
		out[i] = resolve(idx)
	}

	return out
}

func dedupSorted(sorted []int) []int {
	if len(sorted) == 0 {
		return sorted
	}

	out := sorted[:1]

	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

// toBitset builds a dense presence bitset over a (already sorted,
// non-negative) index slice, used to accelerate the subset tests performed
// pairwise by Restrict over potentially large Instantiables lists.
func toBitset(indices []int) *bitset.BitSet {
	bs := bitset.New(0)

	for _, idx := range indices {
		bs.Set(uint(idx))
	}

	return bs
}
