package ns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeDisplay(t *testing.T) {
	root := Root()
	assert.Equal(t, "", root.String())

	schema := root.Pushed(Schema, "schema1")
	assert.Equal(t, "schema1", schema.String())

	entity := schema.Pushed(Entity, "entity1")
	assert.Equal(t, "schema1.entity1", entity.String())
}

func TestScopePartialOrder(t *testing.T) {
	root := Root()
	schema1 := root.Pushed(Schema, "schema1")
	schema2 := root.Pushed(Schema, "schema2")

	assert.True(t, root.LessEqual(schema1), "root is an ancestor of schema1")
	assert.True(t, root.LessEqual(schema2), "root is an ancestor of schema2")

	// schema1 and schema2 are siblings: neither is an ancestor of the other.
	assert.False(t, schema1.LessEqual(schema2))
	assert.False(t, schema2.LessEqual(schema1))
}

func TestScopePoppedOnRoot(t *testing.T) {
	root := Root()
	_, ok := root.Popped()
	assert.False(t, ok, "popping the root scope must fail")
}

func TestPathEquality(t *testing.T) {
	schema := Root().Pushed(Schema, "s")
	a := NewPath(schema, Entity, "point")
	b := NewPath(schema, Entity, "point")
	c := NewPath(schema, Type, "point")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "distinct kinds at the same name must be distinct paths")
	assert.Equal(t, "s.point", a.String())
}

// Scope and Path hold a slice field and so are not comparable Go types;
// Key() stands in as the map-key representation used by pkg/namespace.
func TestKeyAgreesWithEqual(t *testing.T) {
	schema := Root().Pushed(Schema, "s")
	a := NewPath(schema, Entity, "point")
	b := NewPath(schema, Entity, "point")
	c := NewPath(schema, Type, "point")
	d := NewPath(Root().Pushed(Schema, "t"), Entity, "point")

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key(), "distinct kinds must produce distinct keys")
	assert.NotEqual(t, a.Key(), d.Key(), "distinct scopes must produce distinct keys")
}

func TestScopeKeyDistinguishesNestingFromConcatenation(t *testing.T) {
	flat := Root().Pushed(Schema, "ab")
	nested := Root().Pushed(Schema, "a").Pushed(Schema, "b")

	assert.NotEqual(t, flat.Key(), nested.Key(), "segment boundaries must survive encoding")
}
