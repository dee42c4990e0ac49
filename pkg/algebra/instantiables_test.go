package algebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func set(pces ...[]int) Instantiables {
	parts := make([]PartialComplexEntity, len(pces))
	for i, p := range pces {
		parts[i] = NewPCE(p...)
	}

	return NewInstantiables(parts...)
}

func TestUnionCommutative(t *testing.T) {
	a, b := Single(1), Single(2)
	assert.True(t, a.Union(b).Equal(b.Union(a)))
}

func TestUnionAssociative(t *testing.T) {
	a, b, c := Single(1), Single(2), Single(3)
	left := a.Union(b).Union(c)
	right := a.Union(b.Union(c))
	assert.True(t, left.Equal(right))
}

func TestUnionIdempotent(t *testing.T) {
	a := Single(1)
	assert.True(t, a.Union(a).Equal(a))
}

func TestIntersectCommutative(t *testing.T) {
	a, b := set([]int{1}, []int{2}), set([]int{3})
	assert.True(t, a.Intersect(b).Equal(b.Intersect(a)))
}

func TestIntersectAssociative(t *testing.T) {
	a, b, c := Single(1), Single(2), Single(3)
	left := a.Intersect(b).Intersect(c)
	right := a.Intersect(b.Intersect(c))
	assert.True(t, left.Equal(right))
}

// Distributivity: A & (B + C) = (A & B) + (A & C).
func TestIntersectDistributesOverUnion(t *testing.T) {
	a := Single(1)
	b := Single(2)
	c := Single(3)

	left := a.Intersect(b.Union(c))
	right := a.Intersect(b).Union(a.Intersect(c))

	assert.True(t, left.Equal(right))
}

func TestSubtractSelfIsEmpty(t *testing.T) {
	a := set([]int{1}, []int{2, 3})
	assert.Equal(t, 0, a.Subtract(a).Len())
}

func TestSubtractEmptyIsIdentity(t *testing.T) {
	a := set([]int{1}, []int{2, 3})
	empty := Instantiables{}
	assert.True(t, a.Subtract(empty).Equal(a))
}

func TestRestrictCoversSomeElement(t *testing.T) {
	a := set([]int{1}, []int{1, 2}, []int{3})
	b := set([]int{1})

	restricted := a.Restrict(b)
	for _, p := range restricted.Parts() {
		covers := false
		for _, q := range b.Parts() {
			if p.Contains(q) {
				covers = true
			}
		}
		assert.True(t, covers)
	}
}

func TestCanonicalizationIdempotent(t *testing.T) {
	a := set([]int{2}, []int{1}, []int{1})
	b := NewInstantiables(a.Parts()...)
	assert.True(t, a.Equal(b))
}

// S2: oneof([single(1), single(2), single(3)]) = [{1},{2},{3}].
func TestScenarioS2(t *testing.T) {
	got := Oneof([]Instantiables{Single(1), Single(2), Single(3)})
	want := set([]int{1}, []int{2}, []int{3})
	assert.True(t, got.Equal(want))
}

// S3: and([single(1), single(2), single(3)]) = [{1,2,3}].
func TestScenarioS3(t *testing.T) {
	got := And([]Instantiables{Single(1), Single(2), Single(3)})
	want := set([]int{1, 2, 3})
	assert.True(t, got.Equal(want))
}

// S4: andor([single(1), single(2)]) = [{1},{2},{1,2}].
func TestScenarioS4(t *testing.T) {
	got := AndOr([]Instantiables{Single(1), Single(2)})
	want := set([]int{1}, []int{2}, []int{1, 2})
	assert.True(t, got.Equal(want))
	assert.Equal(t, 3, got.Len())
}

// Law 11, general case: andor of n distinct singletons has exactly 2^n-1
// canonical terms.
func TestAndOrTermCountIsTwoToTheNMinusOne(t *testing.T) {
	for n := 1; n <= 5; n++ {
		operands := make([]Instantiables, n)
		for i := 0; i < n; i++ {
			operands[i] = Single(i + 1)
		}

		got := AndOr(operands)
		want := (1 << n) - 1
		assert.Equal(t, want, got.Len(), "n=%d", n)
	}
}

// S5: A=single(1), B=[{2},{3}]: A+B = [{1},{2},{3}]; A&B = [{1,2},{1,3}].
func TestScenarioS5(t *testing.T) {
	a := Single(1)
	b := set([]int{2}, []int{3})

	union := a.Union(b)
	assert.True(t, union.Equal(set([]int{1}, []int{2}, []int{3})))

	intersect := a.Intersect(b)
	assert.True(t, intersect.Equal(set([]int{1, 2}, []int{1, 3})))
}

// S6: X = [{1},{1,2},{1,3},{1,2,4},{2,3},{4}].
// X / PCE([1]) = [{1},{1,2},{1,3},{1,2,4}].
// X / [{2},{4}] = [{1,2},{1,2,4},{2,3},{4}].
func TestScenarioS6(t *testing.T) {
	x := set([]int{1}, []int{1, 2}, []int{1, 3}, []int{1, 2, 4}, []int{2, 3}, []int{4})

	byOne := x.Restrict(Single(1))
	assert.True(t, byOne.Equal(set([]int{1}, []int{1, 2}, []int{1, 3}, []int{1, 2, 4})))

	byTwoOrFour := x.Restrict(set([]int{2}, []int{4}))
	assert.True(t, byTwoOrFour.Equal(set([]int{1, 2}, []int{1, 2, 4}, []int{2, 3}, []int{4})))
}

func TestAndPanicsOnSingleOperand(t *testing.T) {
	assert.Panics(t, func() {
		And([]Instantiables{Single(1)})
	})
}
