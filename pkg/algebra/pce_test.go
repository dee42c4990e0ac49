package algebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPCEIntersectIdempotent(t *testing.T) {
	a := NewPCE(1, 2, 3)
	assert.True(t, a.Intersect(a).Equal(a))
}

func TestPCEIntersectCommutative(t *testing.T) {
	a, b := NewPCE(1, 2), NewPCE(2, 3)
	assert.True(t, a.Intersect(b).Equal(b.Intersect(a)))
}

func TestPCEIntersectAssociative(t *testing.T) {
	a, b, c := NewPCE(1), NewPCE(2), NewPCE(3)
	left := a.Intersect(b).Intersect(c)
	right := a.Intersect(b.Intersect(c))
	assert.True(t, left.Equal(right))
}

func TestPCECanonicalizationDedupsAndSorts(t *testing.T) {
	a := NewPCE(3, 1, 2, 1, 3)
	assert.Equal(t, []int{1, 2, 3}, a.Indices())
}

func TestPCECanonicalizationIdempotent(t *testing.T) {
	a := NewPCE(3, 1, 2)
	b := NewPCE(a.Indices()...)
	assert.True(t, a.Equal(b))
}

func TestPCEContainsAllowsEquality(t *testing.T) {
	a := NewPCE(1, 2, 3)
	assert.True(t, a.Contains(a))
}

func TestPCEContainsSubset(t *testing.T) {
	a := NewPCE(1, 2, 3)
	assert.True(t, a.Contains(NewPCE(1, 3)))
	assert.False(t, NewPCE(1, 3).Contains(a))
}

// S1: PCE([1]) & PCE([2]) & PCE([3]) = PCE([1,2,3]).
func TestScenarioS1(t *testing.T) {
	got := NewPCE(1).Intersect(NewPCE(2)).Intersect(NewPCE(3))
	assert.True(t, got.Equal(NewPCE(1, 2, 3)))
}
